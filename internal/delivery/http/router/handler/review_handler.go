package handler

import (
	"log/slog"
	"net/http"

	"inndoor/config"
	"inndoor/internal/delivery/http/middleware"
	"inndoor/internal/delivery/http/response"
	"inndoor/internal/domain/entity"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		cfg:      params.Config,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for a new review.
// Exactly one of property_id and reviewed_user_id must be set.
type CreateReviewRequest struct {
	Type           string     `json:"type" validate:"required"`
	PropertyID     *uuid.UUID `json:"property_id,omitempty"`
	ReviewedUserID *uuid.UUID `json:"reviewed_user_id,omitempty"`

	Rating  int    `json:"rating" validate:"required"`
	Title   string `json:"title,omitempty"`
	Comment string `json:"comment" validate:"required"`
}

// UpdateReviewRequest represents reviewer-settable review fields.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Title   *string `json:"title,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// FlagReviewRequest represents the privileged moderation body.
type FlagReviewRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Create handles posting a review.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.Create(c.Request().Context(), userID, &usecase.CreateReviewInput{
		Type:           entity.ReviewType(req.Type),
		PropertyID:     req.PropertyID,
		ReviewedUserID: req.ReviewedUserID,
		Rating:         req.Rating,
		Title:          req.Title,
		Comment:        req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newReviewResponse(review), "Review created successfully")
}

// List handles review retrieval with filters.
func (h *ReviewHandler) List(c echo.Context) error {
	propertyID, err := queryUUID(c, "property_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	reviewedUserID, err := queryUUID(c, "reviewed_user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reviewed user ID")
	}

	reviewerID, err := queryUUID(c, "reviewer_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reviewer ID")
	}

	input := &usecase.ListReviewsInput{
		Type:           entity.ReviewType(c.QueryParam("type")),
		PropertyID:     propertyID,
		ReviewedUserID: reviewedUserID,
		ReviewerID:     reviewerID,
		IsVerifiedStay: queryBool(c, "is_verified_stay"),
	}
	input.Limit, input.Offset = pagination(c, h.cfg)

	reviews, err := h.reviewUC.List(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews), "Reviews retrieved successfully")
}

// Get handles retrieval of a single review.
func (h *ReviewHandler) Get(c echo.Context) error {
	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	review, err := h.reviewUC.Get(c.Request().Context(), reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review), "Review retrieved successfully")
}

// Update handles reviewer edits to a review.
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.reviewUC.Update(c.Request().Context(), userID, reviewID, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review), "Review updated successfully")
}

// Delete handles review removal by its author or a privileged actor.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.Delete(c.Request().Context(), userID, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"}, "Review deleted successfully")
}

// Flag handles the privileged moderation action.
func (h *ReviewHandler) Flag(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req FlagReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flag input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.Flag(c.Request().Context(), userID, reviewID, &usecase.FlagReviewInput{
		Reason: req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review), "Review flagged successfully")
}
