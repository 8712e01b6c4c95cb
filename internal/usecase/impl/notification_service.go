package impl

import (
	"context"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface. It only
// reads the feed; records are created internally through the Notifier.
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// List retrieves the caller's notifications, newest first.
func (srv *notificationService) List(ctx context.Context, callerID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	return srv.notificationRepo.ListForAccount(ctx, callerID, unreadOnly, limit, offset)
}

// MarkRead marks the caller's own notification read, idempotently.
func (srv *notificationService) MarkRead(ctx context.Context, callerID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load notification")
	}

	if notification.AccountID != callerID {
		return nil, domainerrors.ErrNotFound
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}

	return srv.notificationRepo.FindByID(ctx, notificationID)
}
