package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inndoor/config"
	"inndoor/internal/delivery/http/middleware"
	"inndoor/internal/delivery/http/response"
	"inndoor/internal/domain/entity"
	"inndoor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// PropertyHandler holds dependencies for property catalog handlers.
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler.
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// CreatePropertyRequest represents the request body for listing a property.
type CreatePropertyRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required"`

	Address   string   `json:"address" validate:"required"`
	City      string   `json:"city" validate:"required"`
	State     string   `json:"state" validate:"required"`
	Landmark  string   `json:"landmark,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Bedrooms  int     `json:"bedrooms" validate:"min=0"`
	Bathrooms int     `json:"bathrooms" validate:"min=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Pros      string  `json:"pros,omitempty"`
	Cons      string  `json:"cons,omitempty"`

	IsFurnished bool `json:"is_furnished"`
	HasParking  bool `json:"has_parking"`
	PetsAllowed bool `json:"pets_allowed"`

	AvailableFrom *time.Time `json:"available_from,omitempty"`
	MoveOutDate   *time.Time `json:"move_out_date,omitempty"`

	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`
}

// UpdatePropertyRequest represents the request body for updating a listing.
// Absent fields are left unchanged.
type UpdatePropertyRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`

	Address   *string  `json:"address,omitempty"`
	City      *string  `json:"city,omitempty"`
	State     *string  `json:"state,omitempty"`
	Landmark  *string  `json:"landmark,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Bedrooms  *int     `json:"bedrooms,omitempty"`
	Bathrooms *int     `json:"bathrooms,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Pros      *string  `json:"pros,omitempty"`
	Cons      *string  `json:"cons,omitempty"`

	IsFurnished *bool `json:"is_furnished,omitempty"`
	HasParking  *bool `json:"has_parking,omitempty"`
	PetsAllowed *bool `json:"pets_allowed,omitempty"`

	AvailableFrom *time.Time `json:"available_from,omitempty"`
	MoveOutDate   *time.Time `json:"move_out_date,omitempty"`

	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`
}

// AddImageRequest represents the request body for attaching an image.
type AddImageRequest struct {
	URI       string `json:"uri" validate:"required"`
	Caption   string `json:"caption,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// Create handles the listing creation request.
func (h *PropertyHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	property, err := h.propertyUC.Create(c.Request().Context(), userID, &usecase.CreatePropertyInput{
		Title:                req.Title,
		Description:          req.Description,
		Type:                 entity.PropertyType(req.Type),
		Address:              req.Address,
		City:                 req.City,
		State:                req.State,
		Landmark:             req.Landmark,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
		Price:                req.Price,
		Pros:                 req.Pros,
		Cons:                 req.Cons,
		IsFurnished:          req.IsFurnished,
		HasParking:           req.HasParking,
		PetsAllowed:          req.PetsAllowed,
		AvailableFrom:        req.AvailableFrom,
		MoveOutDate:          req.MoveOutDate,
		CommissionPercentage: req.CommissionPercentage,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPropertyResponse(property), "Property listed successfully")
}

// List handles catalog search. Filters arrive as query parameters.
func (h *PropertyHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ownerID, err := queryUUID(c, "owner_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	input := &usecase.ListPropertiesInput{
		Type:        entity.PropertyType(c.QueryParam("type")),
		City:        c.QueryParam("city"),
		State:       c.QueryParam("state"),
		Status:      entity.PropertyStatus(c.QueryParam("status")),
		IsVerified:  queryBool(c, "is_verified"),
		IsFurnished: queryBool(c, "is_furnished"),
		HasParking:  queryBool(c, "has_parking"),
		PetsAllowed: queryBool(c, "pets_allowed"),
		Search:      c.QueryParam("search"),
		MinPrice:    queryFloat(c, "min_price"),
		MaxPrice:    queryFloat(c, "max_price"),
		OwnerID:     ownerID,
	}
	input.Limit, input.Offset = pagination(c, h.cfg)

	lat := queryFloat(c, "latitude")
	lng := queryFloat(c, "longitude")
	radius := queryFloat(c, "radius_km")
	if lat != nil && lng != nil && radius != nil {
		input.Near = &usecase.NearFilter{
			Latitude:  *lat,
			Longitude: *lng,
			RadiusKm:  *radius,
		}
	}

	properties, err := h.propertyUC.List(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPropertyResponses(properties), "Properties retrieved successfully")
}

// Get handles retrieval of a single listing.
func (h *PropertyHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	property, err := h.propertyUC.Get(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPropertyResponse(property), "Property retrieved successfully")
}

// Update handles owner updates to a listing.
func (h *PropertyHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	var req UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	input := &usecase.UpdatePropertyInput{
		Title:                req.Title,
		Description:          req.Description,
		Address:              req.Address,
		City:                 req.City,
		State:                req.State,
		Landmark:             req.Landmark,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
		Price:                req.Price,
		Pros:                 req.Pros,
		Cons:                 req.Cons,
		IsFurnished:          req.IsFurnished,
		HasParking:           req.HasParking,
		PetsAllowed:          req.PetsAllowed,
		AvailableFrom:        req.AvailableFrom,
		MoveOutDate:          req.MoveOutDate,
		CommissionPercentage: req.CommissionPercentage,
	}
	if req.Type != nil {
		propertyType := entity.PropertyType(*req.Type)
		input.Type = &propertyType
	}
	if req.Status != nil {
		status := entity.PropertyStatus(*req.Status)
		input.Status = &status
	}

	property, err := h.propertyUC.Update(c.Request().Context(), userID, propertyID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPropertyResponse(property), "Property updated successfully")
}

// Delete handles listing removal by its owner.
func (h *PropertyHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	if err := h.propertyUC.Delete(c.Request().Context(), userID, propertyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Property deleted"}, "Property deleted successfully")
}

// IncrementViews handles the view counter bump and returns the new count.
func (h *PropertyHandler) IncrementViews(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	viewsCount, err := h.propertyUC.IncrementViews(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"views_count": viewsCount}, "View recorded successfully")
}

// Verify handles the privileged listing verification request.
func (h *PropertyHandler) Verify(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	property, err := h.propertyUC.Verify(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPropertyResponse(property), "Property verified successfully")
}

// ShareQR renders a PNG QR code encoding a shareable listing reference.
func (h *PropertyHandler) ShareQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	qrCode, err := h.propertyUC.ShareQR(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=listing-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// AddImage handles attaching an image to a listing.
func (h *PropertyHandler) AddImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	var req AddImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	image, err := h.propertyUC.AddImage(c.Request().Context(), userID, &usecase.AddPropertyImageInput{
		PropertyID: propertyID,
		URI:        req.URI,
		Caption:    req.Caption,
		IsPrimary:  req.IsPrimary,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPropertyImageResponse(image), "Image added successfully")
}

// ListImages handles retrieval of a listing's gallery.
func (h *PropertyHandler) ListImages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	images, err := h.propertyUC.ListImages(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPropertyImageResponses(images), "Images retrieved successfully")
}

// SetPrimaryImage promotes one image to primary and demotes the rest.
func (h *PropertyHandler) SetPrimaryImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	imageID, err := pathID(c, "imageId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid image ID")
	}

	if err := h.propertyUC.SetPrimaryImage(c.Request().Context(), userID, propertyID, imageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Primary image updated"}, "Primary image updated successfully")
}

// DeleteImage removes an image from a listing.
func (h *PropertyHandler) DeleteImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	imageID, err := pathID(c, "imageId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid image ID")
	}

	if err := h.propertyUC.DeleteImage(c.Request().Context(), userID, propertyID, imageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Image deleted"}, "Image deleted successfully")
}
