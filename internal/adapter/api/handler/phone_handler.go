package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"phonedeck/internal/usecase"
	"phonedeck/pkg/response"
	"phonedeck/pkg/utils"
)

type PhoneHandler struct {
	phoneUseCase *usecase.PhoneUseCase
}

func NewPhoneHandler(phoneUseCase *usecase.PhoneUseCase) *PhoneHandler {
	return &PhoneHandler{
		phoneUseCase: phoneUseCase,
	}
}

type phoneSpecsRequest struct {
	Display   string `json:"display"`
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	Battery   string `json:"battery"`
	Camera    string `json:"camera"`
}

type storeOfferRequest struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	URL   string  `json:"url" validate:"omitempty,url"`
}

type createPhoneRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	Category    string              `json:"category" validate:"required"`
	Upcoming    bool                `json:"upcoming"`
	Latest      bool                `json:"latest"`
	Recommend   bool                `json:"recommend"`
	CoverImage  string              `json:"cover_image" validate:"omitempty,url"`
	Price       float64             `json:"price" validate:"required,gt=0"`
	Year        int                 `json:"year"`
	Specs       phoneSpecsRequest   `json:"specs"`
	Stores      []storeOfferRequest `json:"stores" validate:"dive"`
}

type updatePhoneRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1"`
	Description *string             `json:"description"`
	Category    *string             `json:"category" validate:"omitempty,min=1"`
	Upcoming    *bool               `json:"upcoming"`
	Latest      *bool               `json:"latest"`
	Recommend   *bool               `json:"recommend"`
	CoverImage  *string             `json:"cover_image" validate:"omitempty,url"`
	Price       *float64            `json:"price" validate:"omitempty,gt=0"`
	Year        *int                `json:"year"`
	Specs       *phoneSpecsRequest  `json:"specs"`
	Stores      []storeOfferRequest `json:"stores" validate:"dive"`
}

type addReviewRequest struct {
	User    string `json:"user" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

func (h *PhoneHandler) ListPhones(c echo.Context) error {
	filter := usecase.PhoneFilter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	}
	// "brand" is what the storefront filter panel calls the category.
	if filter.Category == "" {
		filter.Category = c.QueryParam("brand")
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = value
		}
	}
	if raw := c.QueryParam("min_ram"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			filter.MinRAMGB = value
		}
	}
	filter.Upcoming = boolParam(c, "upcoming")
	filter.Latest = boolParam(c, "latest")
	filter.Recommend = boolParam(c, "recommend")

	pagination := utils.GetPaginationParams(c)

	phones, total, err := h.phoneUseCase.ListPhones(
		c.Request().Context(),
		filter,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, phones, total, pagination.Page, pagination.PageSize)
}

func (h *PhoneHandler) GetPhone(c echo.Context) error {
	phone, err := h.phoneUseCase.GetPhone(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, phone)
}

func (h *PhoneHandler) CreatePhone(c echo.Context) error {
	var req createPhoneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	phone, err := h.phoneUseCase.CreatePhone(c.Request().Context(), usecase.CreatePhoneInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Upcoming:    req.Upcoming,
		Latest:      req.Latest,
		Recommend:   req.Recommend,
		CoverImage:  req.CoverImage,
		Price:       req.Price,
		Year:        req.Year,
		Specs:       specsInput(req.Specs),
		Stores:      storesInput(req.Stores),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, phone)
}

func (h *PhoneHandler) UpdatePhone(c echo.Context) error {
	var req updatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdatePhoneInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Upcoming:    req.Upcoming,
		Latest:      req.Latest,
		Recommend:   req.Recommend,
		CoverImage:  req.CoverImage,
		Price:       req.Price,
		Year:        req.Year,
		Stores:      storesInput(req.Stores),
	}
	if req.Specs != nil {
		specs := specsInput(*req.Specs)
		input.Specs = &specs
	}

	phone, err := h.phoneUseCase.UpdatePhone(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, phone)
}

func (h *PhoneHandler) DeletePhone(c echo.Context) error {
	if err := h.phoneUseCase.DeletePhone(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Phone deleted successfully",
	})
}

func (h *PhoneHandler) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	phone, err := h.phoneUseCase.AddReview(c.Request().Context(), c.Param("id"), usecase.AddReviewInput{
		User:    req.User,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, phone)
}

func boolParam(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func specsInput(req phoneSpecsRequest) usecase.PhoneSpecsInput {
	return usecase.PhoneSpecsInput{
		Display:   req.Display,
		Processor: req.Processor,
		RAM:       req.RAM,
		Storage:   req.Storage,
		Battery:   req.Battery,
		Camera:    req.Camera,
	}
}

func storesInput(reqs []storeOfferRequest) []usecase.StoreOfferInput {
	if reqs == nil {
		return nil
	}
	stores := make([]usecase.StoreOfferInput, len(reqs))
	for i, req := range reqs {
		stores[i] = usecase.StoreOfferInput{
			Name:  req.Name,
			Price: req.Price,
			URL:   req.URL,
		}
	}
	return stores
}
