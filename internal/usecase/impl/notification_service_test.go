package impl

import (
	"context"
	"testing"
	"time"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	mockrepo "inndoor/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_List_ScopedToCaller(t *testing.T) {
	ctx := context.Background()
	notificationRepo := mockrepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	callerID := uuid.New()
	feed := []*entity.Notification{
		{ID: uuid.New(), AccountID: callerID, Type: entity.NotificationMessageReceived},
	}
	notificationRepo.On("ListForAccount", ctx, callerID, true, 20, 0).Return(feed, nil)

	got, err := svc.List(ctx, callerID, true, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, feed, got)
}

func TestNotificationService_MarkRead_OwnNotification(t *testing.T) {
	ctx := context.Background()
	notificationRepo := mockrepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	callerID := uuid.New()
	notification := &entity.Notification{
		ID:        uuid.New(),
		AccountID: callerID,
		Type:      entity.NotificationInspectionRequest,
	}
	readAt := time.Now()
	read := &entity.Notification{
		ID:        notification.ID,
		AccountID: callerID,
		Type:      notification.Type,
		IsRead:    true,
		ReadAt:    &readAt,
	}

	notificationRepo.On("FindByID", ctx, notification.ID).Return(notification, nil).Once()
	notificationRepo.On("MarkRead", ctx, notification.ID).Return(nil)
	notificationRepo.On("FindByID", ctx, notification.ID).Return(read, nil).Once()

	got, err := svc.MarkRead(ctx, callerID, notification.ID)

	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestNotificationService_MarkRead_ForeignReadsAsMissing(t *testing.T) {
	ctx := context.Background()
	notificationRepo := mockrepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	notification := &entity.Notification{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Type:      entity.NotificationDealInitiated,
	}
	notificationRepo.On("FindByID", ctx, notification.ID).Return(notification, nil)

	_, err := svc.MarkRead(ctx, uuid.New(), notification.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
