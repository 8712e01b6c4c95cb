// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "inndoor/internal/delivery/context"
	"inndoor/internal/domain/entity"
	"inndoor/internal/domain/repository"
	"inndoor/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Notifier persists notification records for domain events and mirrors each
// one to the configured event publisher. Publishing is best-effort: a failed
// fan-out is logged, never surfaced to the caller, because the persisted
// record is the source of truth.
type Notifier struct {
	notificationRepo repository.NotificationRepository
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// NotifierParams holds dependencies for Notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewNotifier is the constructor for Notifier.
func NewNotifier(params NotifierParams) *Notifier {
	return &Notifier{
		notificationRepo: params.NotificationRepo,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

// Notify stores a notification addressed to accountID and fans the event out.
// When a repository factory is supplied the record joins the surrounding
// transaction; otherwise it is written directly.
func (n *Notifier) Notify(ctx context.Context, repoFactory repository.RepositoryFactory, notification *entity.Notification) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	repo := n.notificationRepo
	if repoFactory != nil {
		repo = repoFactory.NewNotificationRepository()
	}

	if err := repo.Create(ctx, notification); err != nil {
		logger.Error("failed to persist notification",
			slog.String("type", notification.Type.String()),
			slog.String("account_id", notification.AccountID.String()),
			slog.Any("error", err),
		)

		return
	}

	event := &service.DomainEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		AccountID:      notification.AccountID.String(),
		Type:           notification.Type,
		Title:          notification.Title,
	}
	if notification.PropertyID != nil {
		event.PropertyID = notification.PropertyID.String()
	}
	if notification.InspectionID != nil {
		event.InspectionID = notification.InspectionID.String()
	}
	if notification.DealID != nil {
		event.DealID = notification.DealID.String()
	}

	if err := n.eventPublisher.PublishDomainEvent(ctx, event); err != nil {
		logger.Warn("failed to publish domain event",
			slog.String("notification_id", notification.ID.String()),
			slog.String("type", notification.Type.String()),
			slog.Any("error", err),
		)
	}
}

// notificationFor builds a notification record addressed to accountID.
func notificationFor(accountID uuid.UUID, kind entity.NotificationType, title, body string) *entity.Notification {
	return &entity.Notification{
		AccountID: accountID,
		Type:      kind,
		Title:     title,
		Body:      body,
	}
}
