package postgres

import (
	"context"
	"time"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification record.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListForAccount retrieves an account's notifications, newest first.
func (repo *notificationRepository) ListForAccount(ctx context.Context, accountID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")

	if unreadOnly {
		query = query.Where("is_read = false")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead sets the read flag and timestamp, idempotent on read_at.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND read_at IS NULL", id).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NotificationModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check notification existence")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}
	}

	return nil
}

// toNotificationDomain converts a GORM model to a domain entity.
func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:           notificationM.ID,
		AccountID:    notificationM.AccountID,
		Type:         entity.NotificationType(notificationM.Type),
		Title:        notificationM.Title,
		Body:         notificationM.Body,
		PropertyID:   notificationM.PropertyID,
		InspectionID: notificationM.InspectionID,
		DealID:       notificationM.DealID,
		IsRead:       notificationM.IsRead,
		ReadAt:       notificationM.ReadAt,
		CreatedAt:    notificationM.CreatedAt,
	}
}

// fromNotificationDomain converts a domain entity to a GORM model.
func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:           notification.ID,
		AccountID:    notification.AccountID,
		Type:         notification.Type.String(),
		Title:        notification.Title,
		Body:         notification.Body,
		PropertyID:   notification.PropertyID,
		InspectionID: notification.InspectionID,
		DealID:       notification.DealID,
		IsRead:       notification.IsRead,
		ReadAt:       notification.ReadAt,
	}
}
