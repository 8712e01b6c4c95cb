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

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMessageNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByID retrieves a message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return toMessageDomain(&messageM), nil
}

// ListForAccount retrieves messages where the account is sender or
// recipient, newest first.
func (repo *messageRepository) ListForAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	query := repo.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", accountID, accountID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkRead sets the read flag and timestamp. The read_at guard makes the
// first call win and repeated calls no-ops, so the timestamp never moves.
func (repo *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ? AND read_at IS NULL", id).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark message as read")
	}

	if result.RowsAffected == 0 {
		// Either already read (fine) or missing (not).
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.MessageModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check message existence")
		}
		if count == 0 {
			return repository.ErrMessageNotFound
		}
	}

	return nil
}

// toMessageDomain converts a GORM model to a domain entity.
func toMessageDomain(messageM *model.MessageModel) *entity.Message {
	return &entity.Message{
		ID:          messageM.ID,
		SenderID:    messageM.SenderID,
		RecipientID: messageM.RecipientID,
		PropertyID:  messageM.PropertyID,
		Content:     messageM.Content,
		Attachment:  messageM.Attachment,
		IsRead:      messageM.IsRead,
		ReadAt:      messageM.ReadAt,
		CreatedAt:   messageM.CreatedAt,
	}
}

// fromMessageDomain converts a domain entity to a GORM model.
func fromMessageDomain(message *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		PropertyID:  message.PropertyID,
		Content:     message.Content,
		Attachment:  message.Attachment,
		IsRead:      message.IsRead,
		ReadAt:      message.ReadAt,
	}
}
