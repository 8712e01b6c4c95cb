package impl

import (
	"context"
	"testing"
	"time"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	mockrepo "inndoor/internal/mocks/repository"
	mockservice "inndoor/internal/mocks/service"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixtures struct {
	messageRepo      *mockrepo.MockMessageRepository
	accountRepo      *mockrepo.MockAccountRepository
	notificationRepo *mockrepo.MockNotificationRepository
	eventPublisher   *mockservice.MockEventPublisher
}

func createTestMessageService(t *testing.T) (usecase.MessageUsecase, *messageServiceFixtures) {
	t.Helper()

	fx := &messageServiceFixtures{
		messageRepo:      mockrepo.NewMockMessageRepository(t),
		accountRepo:      mockrepo.NewMockAccountRepository(t),
		notificationRepo: mockrepo.NewMockNotificationRepository(t),
		eventPublisher:   mockservice.NewMockEventPublisher(t),
	}

	notifier := NewNotifier(NotifierParams{
		NotificationRepo: fx.notificationRepo,
		EventPublisher:   fx.eventPublisher,
		Logger:           newDiscardLogger(),
	})

	svc := NewMessageService(MessageServiceParams{
		MessageRepo: fx.messageRepo,
		AccountRepo: fx.accountRepo,
		Notifier:    notifier,
		Logger:      newDiscardLogger(),
	})

	return svc, fx
}

func TestMessageService_Send_NotifiesRecipientByName(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestMessageService(t)

	sender := testAccount(entity.RoleTenant)
	recipient := testAccount(entity.RoleAgent)
	recipient.Username = "adaeze"

	fx.accountRepo.On("FindByID", ctx, recipient.ID).Return(recipient, nil)
	fx.accountRepo.On("FindByID", ctx, sender.ID).Return(sender, nil)
	fx.messageRepo.On("Create", ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(args mock.Arguments) {
			message := args.Get(1).(*entity.Message)
			message.ID = uuid.New()
		}).
		Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, recipient.ID, notification.AccountID)
			assert.Equal(t, entity.NotificationMessageReceived, notification.Type)
			assert.Contains(t, notification.Body, sender.Username)
		}).
		Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	message, err := svc.Send(ctx, sender.ID, &usecase.SendMessageInput{
		RecipientID: recipient.ID,
		Content:     "Is the flat still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, sender.ID, message.SenderID)
	assert.Equal(t, recipient.ID, message.RecipientID)
}

func TestMessageService_Send_BlocksSelfMessage(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestMessageService(t)

	callerID := uuid.New()
	_, err := svc.Send(ctx, callerID, &usecase.SendMessageInput{
		RecipientID: callerID,
		Content:     "note to self",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestMessageService(t)

	recipientID := uuid.New()
	fx.accountRepo.On("FindByID", ctx, recipientID).Return(nil, repository.ErrAccountNotFound)

	_, err := svc.Send(ctx, uuid.New(), &usecase.SendMessageInput{
		RecipientID: recipientID,
		Content:     "hello",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestMessageService_Get_ThirdPartyReadsAsMissing(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestMessageService(t)

	message := &entity.Message{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Content:     "private",
	}
	fx.messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)

	_, err := svc.Get(ctx, uuid.New(), message.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMessageService_MarkRead_SenderMayNot(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestMessageService(t)

	senderID := uuid.New()
	message := &entity.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: uuid.New(),
		Content:     "hello",
	}
	fx.messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)

	_, err := svc.MarkRead(ctx, senderID, message.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotRecipient)
}

func TestMessageService_MarkRead_Recipient(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestMessageService(t)

	recipientID := uuid.New()
	message := &entity.Message{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: recipientID,
		Content:     "hello",
	}
	readAt := time.Now()
	read := &entity.Message{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: recipientID,
		Content:     "hello",
		IsRead:      true,
		ReadAt:      &readAt,
	}

	fx.messageRepo.On("FindByID", ctx, message.ID).Return(message, nil).Once()
	fx.messageRepo.On("MarkRead", ctx, message.ID).Return(nil)
	fx.messageRepo.On("FindByID", ctx, message.ID).Return(read, nil).Once()

	got, err := svc.MarkRead(ctx, recipientID, message.ID)

	require.NoError(t, err)
	assert.True(t, got.IsRead)
	require.NotNil(t, got.ReadAt)
}
