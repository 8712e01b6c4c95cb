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

type dealServiceFixtures struct {
	txManager        *mockrepo.MockTransactionManager
	dealRepo         *mockrepo.MockDealRepository
	propertyRepo     *mockrepo.MockPropertyRepository
	notificationRepo *mockrepo.MockNotificationRepository
	eventPublisher   *mockservice.MockEventPublisher
	factory          *mockrepo.MockRepositoryFactory
}

func createTestDealService(t *testing.T) (usecase.DealUsecase, *dealServiceFixtures) {
	t.Helper()

	fx := &dealServiceFixtures{
		txManager:        mockrepo.NewMockTransactionManager(t),
		dealRepo:         mockrepo.NewMockDealRepository(t),
		propertyRepo:     mockrepo.NewMockPropertyRepository(t),
		notificationRepo: mockrepo.NewMockNotificationRepository(t),
		eventPublisher:   mockservice.NewMockEventPublisher(t),
		factory:          mockrepo.NewMockRepositoryFactory(t),
	}

	notifier := NewNotifier(NotifierParams{
		NotificationRepo: fx.notificationRepo,
		EventPublisher:   fx.eventPublisher,
		Logger:           newDiscardLogger(),
	})

	svc := NewDealService(DealServiceParams{
		TxManager:    fx.txManager,
		DealRepo:     fx.dealRepo,
		PropertyRepo: fx.propertyRepo,
		Notifier:     notifier,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return svc, fx
}

func (fx *dealServiceFixtures) runInTx(ctx context.Context) {
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func testDeal(ownerID, tenantID uuid.UUID, status entity.DealStatus) *entity.Deal {
	return &entity.Deal{
		ID:               uuid.New(),
		PropertyID:       uuid.New(),
		TenantID:         tenantID,
		OwnerID:          ownerID,
		RentAmount:       450000,
		CommissionAmount: 45000,
		Status:           status,
	}
}

func TestDealService_Initiate_SplitsCommissionWithAgent(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	tenantID := uuid.New()
	agentID := uuid.New()
	property := testProperty(uuid.New(), entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.runInTx(ctx)
	fx.factory.On("NewDealRepository").Return(fx.dealRepo)
	fx.factory.On("NewNotificationRepository").Return(fx.notificationRepo)
	fx.dealRepo.On("Create", ctx, mock.AnythingOfType("*entity.Deal")).
		Run(func(args mock.Arguments) {
			deal := args.Get(1).(*entity.Deal)
			deal.ID = uuid.New()
		}).
		Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, property.OwnerID, notification.AccountID)
			assert.Equal(t, entity.NotificationDealInitiated, notification.Type)
		}).
		Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	// 10% of 450000 at a 0.4 agent share.
	deal, err := svc.Initiate(ctx, tenantID, &usecase.InitiateDealInput{
		PropertyID:       property.ID,
		AgentID:          &agentID,
		RentAmount:       450000,
		CommissionAmount: 45000,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusInitiated, deal.Status)
	assert.Equal(t, tenantID, deal.TenantID)
	assert.Equal(t, property.OwnerID, deal.OwnerID)
	assert.InDelta(t, 18000, deal.AgentCommission, 0.001)
	assert.InDelta(t, 27000, deal.OwnerCommission, 0.001)
}

func TestDealService_Initiate_NoAgentOwnerKeepsAll(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.runInTx(ctx)
	fx.factory.On("NewDealRepository").Return(fx.dealRepo)
	fx.factory.On("NewNotificationRepository").Return(fx.notificationRepo)
	fx.dealRepo.On("Create", ctx, mock.AnythingOfType("*entity.Deal")).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	deal, err := svc.Initiate(ctx, uuid.New(), &usecase.InitiateDealInput{
		PropertyID:       property.ID,
		RentAmount:       450000,
		CommissionAmount: 45000,
	})

	require.NoError(t, err)
	assert.InDelta(t, 45000, deal.OwnerCommission, 0.001)
	assert.Zero(t, deal.AgentCommission)
}

func TestDealService_Initiate_RejectsCommissionOffListingRate(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	_, err := svc.Initiate(ctx, uuid.New(), &usecase.InitiateDealInput{
		PropertyID:       property.ID,
		RentAmount:       450000,
		CommissionAmount: 30000,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDealService_Initiate_ExplicitSplitMustCoverBothSides(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	ownerCommission := 30000.0
	_, err := svc.Initiate(ctx, uuid.New(), &usecase.InitiateDealInput{
		PropertyID:       property.ID,
		RentAmount:       450000,
		CommissionAmount: 45000,
		OwnerCommission:  &ownerCommission,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDealService_Initiate_ExplicitSplitMustSum(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	ownerCommission := 30000.0
	agentCommission := 10000.0
	_, err := svc.Initiate(ctx, uuid.New(), &usecase.InitiateDealInput{
		PropertyID:       property.ID,
		RentAmount:       450000,
		CommissionAmount: 45000,
		OwnerCommission:  &ownerCommission,
		AgentCommission:  &agentCommission,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCommissionSplitMismatch)
}

func TestDealService_Get_NonPartyReadsAsMissing(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	deal := testDeal(uuid.New(), uuid.New(), entity.DealStatusInitiated)
	fx.dealRepo.On("FindByID", ctx, deal.ID).Return(deal, nil)

	_, err := svc.Get(ctx, uuid.New(), deal.ID)

	assert.ErrorIs(t, err, domainerrors.ErrDealNotFound)
}

func TestDealService_UpdateStatus_BlocksDirectPaid(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	tenantID := uuid.New()
	deal := testDeal(uuid.New(), tenantID, entity.DealStatusPendingPayment)
	fx.dealRepo.On("FindByID", ctx, deal.ID).Return(deal, nil)

	_, err := svc.UpdateStatus(ctx, tenantID, deal.ID, &usecase.UpdateDealStatusInput{
		Status: entity.DealStatusPaid,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestDealService_UpdateStatus_FollowsLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	tenantID := uuid.New()
	deal := testDeal(uuid.New(), tenantID, entity.DealStatusInitiated)
	fx.dealRepo.On("FindByID", ctx, deal.ID).Return(deal, nil)
	fx.dealRepo.On("Update", ctx, deal).Return(nil)

	updated, err := svc.UpdateStatus(ctx, tenantID, deal.ID, &usecase.UpdateDealStatusInput{
		Status: entity.DealStatusPendingPayment,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusPendingPayment, updated.Status)
}

func TestDealService_UpdateStatus_CompletedIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	tenantID := uuid.New()
	deal := testDeal(uuid.New(), tenantID, entity.DealStatusCompleted)
	fx.dealRepo.On("FindByID", ctx, deal.ID).Return(deal, nil)

	_, err := svc.UpdateStatus(ctx, tenantID, deal.ID, &usecase.UpdateDealStatusInput{
		Status: entity.DealStatusCancelled,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestDealService_MarkPaid_RecordsPaymentAndNotifiesOwner(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	ownerID := uuid.New()
	tenantID := uuid.New()
	deal := testDeal(ownerID, tenantID, entity.DealStatusPendingPayment)
	paidAt := time.Now().Add(-time.Hour)

	fx.runInTx(ctx)
	fx.factory.On("NewDealRepository").Return(fx.dealRepo)
	fx.factory.On("NewNotificationRepository").Return(fx.notificationRepo)
	fx.dealRepo.On("FindByID", ctx, deal.ID).Return(deal, nil)
	fx.dealRepo.On("Update", ctx, deal).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, ownerID, notification.AccountID)
			assert.Equal(t, entity.NotificationPaymentReceived, notification.Type)
		}).
		Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	paid, err := svc.MarkPaid(ctx, tenantID, deal.ID, &usecase.MarkDealPaidInput{
		PaymentReference: "PSK-20260831-0042",
		PaidAt:           &paidAt,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusPaid, paid.Status)
	assert.Equal(t, "PSK-20260831-0042", paid.PaymentReference)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, paidAt.Unix(), paid.PaidAt.Unix())
}

func TestDealService_MarkPaid_RequiresPendingPayment(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestDealService(t)

	tenantID := uuid.New()
	deal := testDeal(uuid.New(), tenantID, entity.DealStatusInitiated)

	fx.runInTx(ctx)
	fx.factory.On("NewDealRepository").Return(fx.dealRepo)
	fx.dealRepo.On("FindByID", ctx, deal.ID).Return(deal, nil)

	_, err := svc.MarkPaid(ctx, tenantID, deal.ID, &usecase.MarkDealPaidInput{
		PaymentReference: "PSK-20260831-0042",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}
