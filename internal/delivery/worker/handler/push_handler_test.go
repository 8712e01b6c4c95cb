package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inndoor/config"
	"inndoor/internal/domain/constants"
	"inndoor/internal/domain/entity"
	"inndoor/internal/domain/repository"
	"inndoor/internal/domain/service"
	mockrepo "inndoor/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushTestHandler(t *testing.T) (*PushHandler, *mockrepo.MockNotificationRepository) {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
	}
	cfg.Env.Env = constants.EnvDevelop

	notificationRepo := mockrepo.NewMockNotificationRepository(t)

	h := NewPushHandler(PushHandlerParams{
		Config:           cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationRepo: notificationRepo,
	})

	return h, notificationRepo
}

func newPushRequest(t *testing.T, event *service.DomainEvent) echo.Context {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/domain-events"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestHandlePush_KnownNotificationAcks(t *testing.T) {
	h, notificationRepo := newPushTestHandler(t)

	notification := &entity.Notification{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Type:      entity.NotificationMessageReceived,
	}
	notificationRepo.On("FindByID", mock.Anything, notification.ID).Return(notification, nil)

	c := newPushRequest(t, &service.DomainEvent{
		NotificationID: notification.ID.String(),
		AccountID:      notification.AccountID.String(),
		Type:           notification.Type,
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, c.Response().Status)
}

func TestHandlePush_MissingRecordStillAcks(t *testing.T) {
	h, notificationRepo := newPushTestHandler(t)

	notificationID := uuid.New()
	notificationRepo.On("FindByID", mock.Anything, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	c := newPushRequest(t, &service.DomainEvent{
		NotificationID: notificationID.String(),
		Type:           entity.NotificationDealInitiated,
	})

	// A record the store never had will not appear on redelivery either.
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, c.Response().Status)
}

func TestHandlePush_InvalidNotificationIDDropped(t *testing.T) {
	h, notificationRepo := newPushTestHandler(t)

	c := newPushRequest(t, &service.DomainEvent{
		NotificationID: "not-a-uuid",
		Type:           entity.NotificationReviewReceived,
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, c.Response().Status)
	notificationRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestHandlePush_LookupFailureAsksForRedelivery(t *testing.T) {
	h, notificationRepo := newPushTestHandler(t)

	notificationID := uuid.New()
	notificationRepo.On("FindByID", mock.Anything, notificationID).
		Return(nil, errors.New("connection reset"))

	c := newPushRequest(t, &service.DomainEvent{
		NotificationID: notificationID.String(),
		Type:           entity.NotificationPaymentReceived,
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, c.Response().Status)
}

func TestHandlePush_MalformedBody(t *testing.T) {
	h, _ := newPushTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
