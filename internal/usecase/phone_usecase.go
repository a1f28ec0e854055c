package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/errors"
)

type PhoneUseCase struct {
	phoneRepo repository.PhoneRepository
}

func NewPhoneUseCase(phoneRepo repository.PhoneRepository) *PhoneUseCase {
	return &PhoneUseCase{
		phoneRepo: phoneRepo,
	}
}

type PhoneSpecsInput struct {
	Display   string `json:"display"`
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	Battery   string `json:"battery"`
	Camera    string `json:"camera"`
}

type StoreOfferInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	URL   string  `json:"url"`
}

type CreatePhoneInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Upcoming    bool              `json:"upcoming"`
	Latest      bool              `json:"latest"`
	Recommend   bool              `json:"recommend"`
	CoverImage  string            `json:"cover_image"`
	Price       float64           `json:"price"`
	Year        int               `json:"year"`
	Specs       PhoneSpecsInput   `json:"specs"`
	Stores      []StoreOfferInput `json:"stores"`
}

// UpdatePhoneInput merges onto the existing document; nil fields are left
// untouched. Derived rating fields are never writable.
type UpdatePhoneInput struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Upcoming    *bool             `json:"upcoming"`
	Latest      *bool             `json:"latest"`
	Recommend   *bool             `json:"recommend"`
	CoverImage  *string           `json:"cover_image"`
	Price       *float64          `json:"price"`
	Year        *int              `json:"year"`
	Specs       *PhoneSpecsInput  `json:"specs"`
	Stores      []StoreOfferInput `json:"stores"`
}

// PhoneFilter is the server-side rendition of the storefront filter panel:
// brand/category, price ceiling, minimum RAM and free-text name search.
type PhoneFilter struct {
	Category  string
	MaxPrice  float64
	MinRAMGB  int
	Query     string
	Upcoming  *bool
	Latest    *bool
	Recommend *bool
}

func (uc *PhoneUseCase) ListPhones(ctx context.Context, filter PhoneFilter, page, pageSize int) ([]*entity.Phone, int64, error) {
	// Equality filters go to the store; price ceiling, RAM floor and the
	// free-text query cannot be expressed as Firestore predicates alongside
	// them, so those are applied in memory over the fetched set.
	storeFilter := make(map[string]interface{})
	if filter.Category != "" {
		storeFilter["category"] = strings.ToLower(filter.Category)
	}
	if filter.Upcoming != nil {
		storeFilter["upcoming"] = *filter.Upcoming
	}
	if filter.Latest != nil {
		storeFilter["latest"] = *filter.Latest
	}
	if filter.Recommend != nil {
		storeFilter["recommend"] = *filter.Recommend
	}

	phones, err := uc.phoneRepo.List(ctx, storeFilter, "")
	if err != nil {
		return nil, 0, err
	}

	matched := filterPhones(phones, filter)
	total := int64(len(matched))

	if pageSize <= 0 {
		return matched, total, nil
	}

	offset := (page - 1) * pageSize
	if offset >= len(matched) {
		return []*entity.Phone{}, total, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

func filterPhones(phones []*entity.Phone, filter PhoneFilter) []*entity.Phone {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]*entity.Phone, 0, len(phones))
	for _, phone := range phones {
		if filter.MaxPrice > 0 && phone.Price > filter.MaxPrice {
			continue
		}
		if filter.MinRAMGB > 0 && ramGB(phone.Specs.RAM) < filter.MinRAMGB {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(phone.Name), query) {
			continue
		}
		matched = append(matched, phone)
	}

	return matched
}

// ramGB parses the leading number out of a free-text RAM spec like "8GB".
func ramGB(ram string) int {
	ram = strings.TrimSpace(ram)
	end := 0
	for end < len(ram) && ram[end] >= '0' && ram[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	value, err := strconv.Atoi(ram[:end])
	if err != nil {
		return 0
	}
	return value
}

func (uc *PhoneUseCase) GetPhone(ctx context.Context, id string) (*entity.Phone, error) {
	return uc.phoneRepo.GetByID(ctx, id)
}

func (uc *PhoneUseCase) CreatePhone(ctx context.Context, input CreatePhoneInput) (*entity.Phone, error) {
	phone := &entity.Phone{
		Name:        input.Name,
		Description: input.Description,
		Category:    strings.ToLower(input.Category),
		Upcoming:    input.Upcoming,
		Latest:      input.Latest,
		Recommend:   input.Recommend,
		CoverImage:  input.CoverImage,
		Price:       input.Price,
		Year:        input.Year,
		Specs:       specsFromInput(input.Specs),
		Stores:      storesFromInput(input.Stores),
		Reviews:     []entity.Review{},
		Rating:      0,
		ReviewCount: 0,
	}

	if err := uc.phoneRepo.Create(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

func (uc *PhoneUseCase) UpdatePhone(ctx context.Context, id string, input UpdatePhoneInput) (*entity.Phone, error) {
	phone, err := uc.phoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		phone.Name = *input.Name
	}
	if input.Description != nil {
		phone.Description = *input.Description
	}
	if input.Category != nil {
		phone.Category = strings.ToLower(*input.Category)
	}
	if input.Upcoming != nil {
		phone.Upcoming = *input.Upcoming
	}
	if input.Latest != nil {
		phone.Latest = *input.Latest
	}
	if input.Recommend != nil {
		phone.Recommend = *input.Recommend
	}
	if input.CoverImage != nil {
		phone.CoverImage = *input.CoverImage
	}
	if input.Price != nil {
		phone.Price = *input.Price
	}
	if input.Year != nil {
		phone.Year = *input.Year
	}
	if input.Specs != nil {
		phone.Specs = specsFromInput(*input.Specs)
	}
	if input.Stores != nil {
		phone.Stores = storesFromInput(input.Stores)
	}

	if err := uc.phoneRepo.Update(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

func (uc *PhoneUseCase) DeletePhone(ctx context.Context, id string) error {
	return uc.phoneRepo.Delete(ctx, id)
}

type AddReviewInput struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (uc *PhoneUseCase) AddReview(ctx context.Context, phoneID string, input AddReviewInput) (*entity.Phone, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	review := entity.Review{
		ID:        uuid.New().String(),
		User:      input.User,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	return uc.phoneRepo.AppendReview(ctx, phoneID, review)
}

func specsFromInput(input PhoneSpecsInput) entity.PhoneSpecs {
	return entity.PhoneSpecs{
		Display:   input.Display,
		Processor: input.Processor,
		RAM:       input.RAM,
		Storage:   input.Storage,
		Battery:   input.Battery,
		Camera:    input.Camera,
	}
}

func storesFromInput(inputs []StoreOfferInput) []entity.StoreOffer {
	stores := make([]entity.StoreOffer, len(inputs))
	for i, input := range inputs {
		stores[i] = entity.StoreOffer{
			Name:  input.Name,
			Price: input.Price,
			URL:   input.URL,
		}
	}
	return stores
}
