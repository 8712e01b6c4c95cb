package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "inndoor/internal/delivery/context"
	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	accountRepo repository.AccountRepository
	notifier    *Notifier
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	AccountRepo repository.AccountRepository
	Notifier    *Notifier
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		accountRepo: params.AccountRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send delivers a message. The caller becomes the sender; the recipient
// must exist and is notified.
func (srv *messageService) Send(ctx context.Context, callerID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	if input.RecipientID == callerID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot message yourself")
	}
	if input.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message content must not be empty")
	}

	recipient, err := srv.accountRepo.FindByID(ctx, input.RecipientID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load message recipient")
	}

	sender, err := srv.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load message sender")
	}

	message := &entity.Message{
		SenderID:    callerID,
		RecipientID: recipient.ID,
		PropertyID:  input.PropertyID,
		Content:     input.Content,
		Attachment:  input.Attachment,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	notification := notificationFor(recipient.ID, entity.NotificationMessageReceived,
		"New message",
		fmt.Sprintf("You have a new message from %s.", sender.Username))
	notification.PropertyID = input.PropertyID
	srv.notifier.Notify(ctx, nil, notification)

	srv.log(ctx).Info("Message sent",
		slog.String("message_id", message.ID.String()),
		slog.String("recipient_id", recipient.ID.String()),
	)

	return message, nil
}

// Get retrieves a message the caller sent or received. Out-of-scope lookups
// read exactly like missing ones.
func (srv *messageService) Get(ctx context.Context, callerID, messageID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load message")
	}

	if !message.InvolvesAccount(callerID) {
		return nil, domainerrors.ErrNotFound
	}

	return message, nil
}

// List retrieves messages the caller sent or received, newest first.
func (srv *messageService) List(ctx context.Context, callerID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	return srv.messageRepo.ListForAccount(ctx, callerID, limit, offset)
}

// MarkRead marks a message read. Only the recipient may do this; repeated
// calls keep the original timestamp.
func (srv *messageService) MarkRead(ctx context.Context, callerID, messageID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load message for read receipt")
	}

	if !message.InvolvesAccount(callerID) {
		return nil, domainerrors.ErrNotFound
	}
	if message.RecipientID != callerID {
		return nil, domainerrors.ErrNotRecipient
	}

	if err := srv.messageRepo.MarkRead(ctx, messageID); err != nil {
		return nil, err
	}

	return srv.messageRepo.FindByID(ctx, messageID)
}
