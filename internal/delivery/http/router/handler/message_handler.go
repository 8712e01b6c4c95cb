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

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// MessageHandler holds dependencies for direct messaging handlers.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// SendMessageRequest represents the request body for sending a message.
type SendMessageRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id" validate:"required"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	Content     string     `json:"content" validate:"required"`
	Attachment  string     `json:"attachment,omitempty"`
}

// Send handles sending a direct message.
func (h *MessageHandler) Send(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.messageUC.Send(c.Request().Context(), userID, &usecase.SendMessageInput{
		RecipientID: req.RecipientID,
		PropertyID:  req.PropertyID,
		Content:     req.Content,
		Attachment:  req.Attachment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMessageResponse(message), "Message sent successfully")
}

// List handles retrieval of the caller's messages.
func (h *MessageHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pagination(c, h.cfg)

	messages, err := h.messageUC.List(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMessageResponses(messages), "Messages retrieved successfully")
}

// Get handles retrieval of a single message.
func (h *MessageHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := pathID(c, "messageId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	message, err := h.messageUC.Get(c.Request().Context(), userID, messageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMessageResponse(message), "Message retrieved successfully")
}

// MarkRead marks a received message as read. Only the recipient may do this.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := pathID(c, "messageId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	message, err := h.messageUC.MarkRead(c.Request().Context(), userID, messageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMessageResponse(message), "Message marked as read")
}
