package handler

import (
	"log/slog"
	"net/http"

	"inndoor/config"
	"inndoor/internal/delivery/http/middleware"
	"inndoor/internal/delivery/http/response"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SavedPropertyHandlerParams holds dependencies for SavedPropertyHandler, injected by Fx.
type SavedPropertyHandlerParams struct {
	fx.In

	SavedUC usecase.SavedPropertyUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// SavedPropertyHandler holds dependencies for bookmark handlers.
type SavedPropertyHandler struct {
	savedUC usecase.SavedPropertyUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewSavedPropertyHandler is the constructor for SavedPropertyHandler.
func NewSavedPropertyHandler(params SavedPropertyHandlerParams) *SavedPropertyHandler {
	return &SavedPropertyHandler{
		savedUC: params.SavedUC,
		cfg:     params.Config,
		logger:  params.Logger,
	}
}

// SavePropertyRequest represents the request body for bookmarking a listing.
type SavePropertyRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
}

// Save handles bookmarking a listing.
func (h *SavedPropertyHandler) Save(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SavePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	saved, err := h.savedUC.Save(c.Request().Context(), userID, req.PropertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSavedPropertyResponse(saved), "Property saved successfully")
}

// List handles retrieval of the caller's bookmarks.
func (h *SavedPropertyHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pagination(c, h.cfg)

	saved, err := h.savedUC.List(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSavedPropertyResponses(saved), "Saved properties retrieved successfully")
}

// Unsave removes one of the caller's bookmarks.
func (h *SavedPropertyHandler) Unsave(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	savedID, err := pathID(c, "savedId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	if err := h.savedUC.Unsave(c.Request().Context(), userID, savedID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Bookmark removed"}, "Bookmark removed successfully")
}
