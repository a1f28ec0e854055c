package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"phonedeck/internal/domain/entity"
	"phonedeck/pkg/errors"
)

// In-memory fakes mirroring the Firestore repositories' semantics.

type fakePhoneRepo struct {
	phones map[string]*entity.Phone
	nextID int
}

func newFakePhoneRepo() *fakePhoneRepo {
	return &fakePhoneRepo{phones: make(map[string]*entity.Phone)}
}

func (r *fakePhoneRepo) Create(ctx context.Context, phone *entity.Phone) error {
	if phone.ID == "" {
		r.nextID++
		phone.ID = fmt.Sprintf("phone-%d", r.nextID)
	}
	now := time.Now()
	if phone.CreatedAt.IsZero() {
		phone.CreatedAt = now
	}
	phone.UpdatedAt = now
	copied := *phone
	r.phones[phone.ID] = &copied
	return nil
}

func (r *fakePhoneRepo) GetByID(ctx context.Context, id string) (*entity.Phone, error) {
	phone, ok := r.phones[id]
	if !ok {
		return nil, errors.NotFound("Phone", nil)
	}
	copied := *phone
	return &copied, nil
}

func (r *fakePhoneRepo) List(ctx context.Context, filter map[string]interface{}, orderBy string) ([]*entity.Phone, error) {
	var phones []*entity.Phone
	for _, phone := range r.phones {
		if !matchesFilter(phone, filter) {
			continue
		}
		copied := *phone
		phones = append(phones, &copied)
	}
	sort.Slice(phones, func(i, j int) bool {
		return phones[i].ID < phones[j].ID
	})
	return phones, nil
}

func matchesFilter(phone *entity.Phone, filter map[string]interface{}) bool {
	for key, value := range filter {
		switch key {
		case "category":
			if phone.Category != value.(string) {
				return false
			}
		case "upcoming":
			if phone.Upcoming != value.(bool) {
				return false
			}
		case "latest":
			if phone.Latest != value.(bool) {
				return false
			}
		case "recommend":
			if phone.Recommend != value.(bool) {
				return false
			}
		}
	}
	return true
}

func (r *fakePhoneRepo) Update(ctx context.Context, phone *entity.Phone) error {
	if _, ok := r.phones[phone.ID]; !ok {
		return errors.NotFound("Phone", nil)
	}
	phone.UpdatedAt = time.Now()
	copied := *phone
	r.phones[phone.ID] = &copied
	return nil
}

func (r *fakePhoneRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.phones[id]; !ok {
		return errors.NotFound("Phone", nil)
	}
	delete(r.phones, id)
	return nil
}

func (r *fakePhoneRepo) AppendReview(ctx context.Context, phoneID string, review entity.Review) (*entity.Phone, error) {
	phone, ok := r.phones[phoneID]
	if !ok {
		return nil, errors.NotFound("Phone", nil)
	}
	phone.Reviews = append(phone.Reviews, review)
	phone.Rating = entity.MeanRating(phone.Reviews)
	phone.ReviewCount = len(phone.Reviews)
	phone.UpdatedAt = time.Now()
	copied := *phone
	return &copied, nil
}

type fakeWishlistRepo struct {
	items     map[string]entity.WishlistItem
	phoneRepo *fakePhoneRepo
}

func newFakeWishlistRepo(phoneRepo *fakePhoneRepo) *fakeWishlistRepo {
	return &fakeWishlistRepo{
		items:     make(map[string]entity.WishlistItem),
		phoneRepo: phoneRepo,
	}
}

func (r *fakeWishlistRepo) Add(ctx context.Context, userID, phoneID string) (*entity.WishlistItem, bool, error) {
	id := userID + "_" + phoneID
	if existing, ok := r.items[id]; ok {
		return &existing, true, nil
	}
	item := entity.WishlistItem{
		ID:        id,
		UserID:    userID,
		PhoneID:   phoneID,
		CreatedAt: time.Now(),
	}
	r.items[id] = item
	return &item, false, nil
}

func (r *fakeWishlistRepo) GetUserWishlist(ctx context.Context, userID string) ([]entity.WishlistItemWithPhone, error) {
	result := []entity.WishlistItemWithPhone{}
	var ids []string
	for id, item := range r.items {
		if item.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		item := r.items[id]
		phone, available := r.phoneRepo.phones[item.PhoneID]
		var joined *entity.Phone
		if available {
			copied := *phone
			joined = &copied
		}
		result = append(result, entity.WishlistItemWithPhone{
			ID:        item.ID,
			UserID:    item.UserID,
			PhoneID:   item.PhoneID,
			Phone:     joined,
			Available: available,
			CreatedAt: item.CreatedAt,
		})
	}
	return result, nil
}

func (r *fakeWishlistRepo) RemoveByPair(ctx context.Context, userID, phoneID string) error {
	id := userID + "_" + phoneID
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Wishlist item", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeWishlistRepo) RemoveByID(ctx context.Context, userID, id string) error {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return errors.NotFound("Wishlist item", nil)
	}
	delete(r.items, id)
	return nil
}

type fakeCompareRepo struct {
	lists map[string]*entity.CompareList
}

func newFakeCompareRepo() *fakeCompareRepo {
	return &fakeCompareRepo{lists: make(map[string]*entity.CompareList)}
}

func (r *fakeCompareRepo) Get(ctx context.Context, userID string) (*entity.CompareList, error) {
	list, ok := r.lists[userID]
	if !ok {
		return &entity.CompareList{UserID: userID, PhoneIDs: []string{}}, nil
	}
	copied := *list
	copied.PhoneIDs = append([]string{}, list.PhoneIDs...)
	return &copied, nil
}

func (r *fakeCompareRepo) AddPhone(ctx context.Context, userID, phoneID string) (*entity.CompareList, error) {
	list, ok := r.lists[userID]
	if !ok {
		list = &entity.CompareList{UserID: userID, PhoneIDs: []string{}}
		r.lists[userID] = list
	}
	if err := list.Add(phoneID); err != nil {
		return nil, errors.BadRequest("Compare list is full, remove a phone first (max 3)", err)
	}
	list.UpdatedAt = time.Now()
	copied := *list
	copied.PhoneIDs = append([]string{}, list.PhoneIDs...)
	return &copied, nil
}

func (r *fakeCompareRepo) RemovePhone(ctx context.Context, userID, phoneID string) (*entity.CompareList, error) {
	list, ok := r.lists[userID]
	if !ok {
		return nil, errors.NotFound("Compare list", nil)
	}
	list.Remove(phoneID)
	list.UpdatedAt = time.Now()
	copied := *list
	copied.PhoneIDs = append([]string{}, list.PhoneIDs...)
	return &copied, nil
}

func (r *fakeCompareRepo) Clear(ctx context.Context, userID string) error {
	delete(r.lists, userID)
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*entity.Admin)}
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	if admin.ID == "" {
		r.nextID++
		admin.ID = fmt.Sprintf("admin-%d", r.nextID)
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}
	copied := *admin
	r.admins[admin.ID] = &copied
	return nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Admin", nil)
}

func (r *fakeAdminRepo) List(ctx context.Context) ([]*entity.Admin, error) {
	var admins []*entity.Admin
	for _, admin := range r.admins {
		copied := *admin
		admins = append(admins, &copied)
	}
	sort.Slice(admins, func(i, j int) bool {
		return admins[i].ID < admins[j].ID
	})
	return admins, nil
}

func (r *fakeAdminRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.admins[id]; !ok {
		return errors.NotFound("Admin", nil)
	}
	delete(r.admins, id)
	return nil
}

type fakeBlogRepo struct {
	blogs  map[string]*entity.Blog
	nextID int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: make(map[string]*entity.Blog)}
}

func (r *fakeBlogRepo) Create(ctx context.Context, blog *entity.Blog) error {
	if blog.ID == "" {
		r.nextID++
		blog.ID = fmt.Sprintf("blog-%d", r.nextID)
	}
	now := time.Now()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now
	copied := *blog
	r.blogs[blog.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	blog, ok := r.blogs[id]
	if !ok {
		return nil, errors.NotFound("Blog post", nil)
	}
	copied := *blog
	return &copied, nil
}

func (r *fakeBlogRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.Blog, int64, error) {
	var blogs []*entity.Blog
	for _, blog := range r.blogs {
		if category != "" && blog.Category != category {
			continue
		}
		copied := *blog
		blogs = append(blogs, &copied)
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].ID < blogs[j].ID
	})
	total := int64(len(blogs))
	if offset >= len(blogs) {
		return []*entity.Blog{}, total, nil
	}
	blogs = blogs[offset:]
	if limit > 0 && limit < len(blogs) {
		blogs = blogs[:limit]
	}
	return blogs, total, nil
}

func (r *fakeBlogRepo) Update(ctx context.Context, blog *entity.Blog) error {
	if _, ok := r.blogs[blog.ID]; !ok {
		return errors.NotFound("Blog post", nil)
	}
	blog.UpdatedAt = time.Now()
	copied := *blog
	r.blogs[blog.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.blogs[id]; !ok {
		return errors.NotFound("Blog post", nil)
	}
	delete(r.blogs, id)
	return nil
}
