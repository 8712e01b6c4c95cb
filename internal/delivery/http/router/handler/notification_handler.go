package handler

import (
	"log/slog"
	"net/http"

	"inndoor/config"
	"inndoor/internal/delivery/http/middleware"
	"inndoor/internal/delivery/http/response"
	"inndoor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification feed handlers.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	cfg            *config.Config
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		cfg:            params.Config,
		logger:         params.Logger,
	}
}

// List handles retrieval of the caller's notification feed.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	unreadOnly := false
	if v := queryBool(c, "unread_only"); v != nil {
		unreadOnly = *v
	}

	limit, offset := pagination(c, h.cfg)

	notifications, err := h.notificationUC.List(c.Request().Context(), userID, unreadOnly, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNotificationResponses(notifications), "Notifications retrieved successfully")
}

// MarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := pathID(c, "notificationId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	notification, err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNotificationResponse(notification), "Notification marked as read")
}
