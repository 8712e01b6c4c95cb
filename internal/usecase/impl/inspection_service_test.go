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

type inspectionServiceFixtures struct {
	txManager        *mockrepo.MockTransactionManager
	inspectionRepo   *mockrepo.MockInspectionRepository
	propertyRepo     *mockrepo.MockPropertyRepository
	accountRepo      *mockrepo.MockAccountRepository
	notificationRepo *mockrepo.MockNotificationRepository
	eventPublisher   *mockservice.MockEventPublisher
	factory          *mockrepo.MockRepositoryFactory
}

func createTestInspectionService(t *testing.T, adminIDs ...string) (usecase.InspectionUsecase, *inspectionServiceFixtures) {
	t.Helper()

	fx := &inspectionServiceFixtures{
		txManager:        mockrepo.NewMockTransactionManager(t),
		inspectionRepo:   mockrepo.NewMockInspectionRepository(t),
		propertyRepo:     mockrepo.NewMockPropertyRepository(t),
		accountRepo:      mockrepo.NewMockAccountRepository(t),
		notificationRepo: mockrepo.NewMockNotificationRepository(t),
		eventPublisher:   mockservice.NewMockEventPublisher(t),
		factory:          mockrepo.NewMockRepositoryFactory(t),
	}

	notifier := NewNotifier(NotifierParams{
		NotificationRepo: fx.notificationRepo,
		EventPublisher:   fx.eventPublisher,
		Logger:           newDiscardLogger(),
	})

	svc := NewInspectionService(InspectionServiceParams{
		TxManager:      fx.txManager,
		InspectionRepo: fx.inspectionRepo,
		PropertyRepo:   fx.propertyRepo,
		AccountRepo:    fx.accountRepo,
		Notifier:       notifier,
		Config:         newTestConfig(adminIDs...),
		Logger:         newDiscardLogger(),
	})

	return svc, fx
}

func (fx *inspectionServiceFixtures) runInTx(ctx context.Context) {
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func testInspection(ownerID, requesterID uuid.UUID, agentID *uuid.UUID) *entity.Inspection {
	return &entity.Inspection{
		ID:              uuid.New(),
		PropertyID:      uuid.New(),
		RequesterID:     requesterID,
		AgentID:         agentID,
		PreferredDate:   time.Now().AddDate(0, 0, 3),
		PreferredTime:   "10:30",
		Status:          entity.InspectionStatusPending,
		PropertyOwnerID: ownerID,
	}
}

func TestInspectionService_Request_NotifiesOwnerAndBumpsCounter(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	requesterID := uuid.New()
	property := testProperty(uuid.New(), entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.runInTx(ctx)
	fx.factory.On("NewInspectionRepository").Return(fx.inspectionRepo)
	fx.factory.On("NewAccountRepository").Return(fx.accountRepo)
	fx.factory.On("NewNotificationRepository").Return(fx.notificationRepo)
	fx.inspectionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Inspection")).
		Run(func(args mock.Arguments) {
			inspection := args.Get(1).(*entity.Inspection)
			inspection.ID = uuid.New()
		}).
		Return(nil)
	fx.accountRepo.On("AdjustCounters", ctx, requesterID, 0, 1).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, property.OwnerID, notification.AccountID)
			assert.Equal(t, entity.NotificationInspectionRequest, notification.Type)
		}).
		Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	inspection, err := svc.Request(ctx, requesterID, &usecase.RequestInspectionInput{
		PropertyID:    property.ID,
		PreferredDate: time.Now().AddDate(0, 0, 3),
		PreferredTime: "10:30",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.InspectionStatusPending, inspection.Status)
	assert.Equal(t, property.OwnerID, inspection.PropertyOwnerID)
}

func TestInspectionService_Request_RejectsBadTime(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	_, err := svc.Request(ctx, uuid.New(), &usecase.RequestInspectionInput{
		PropertyID:    property.ID,
		PreferredTime: "half past ten",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInspectionService_Get_NonPartyReadsAsMissing(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	inspection := testInspection(uuid.New(), uuid.New(), nil)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)

	_, err := svc.Get(ctx, uuid.New(), inspection.ID)

	assert.ErrorIs(t, err, domainerrors.ErrInspectionNotFound)
}

func TestInspectionService_Update_BlocksDirectConfirmed(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	requesterID := uuid.New()
	inspection := testInspection(uuid.New(), requesterID, nil)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)

	status := entity.InspectionStatusConfirmed
	_, err := svc.Update(ctx, requesterID, inspection.ID, &usecase.UpdateInspectionInput{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestInspectionService_Confirm_OwnerFlipsTenantFlag(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	ownerID := uuid.New()
	agentID := uuid.New()
	inspection := testInspection(ownerID, uuid.New(), &agentID)

	fx.runInTx(ctx)
	fx.factory.On("NewInspectionRepository").Return(fx.inspectionRepo)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)
	fx.inspectionRepo.On("Update", ctx, inspection).Return(nil)

	updated, err := svc.Confirm(ctx, ownerID, inspection.ID)

	require.NoError(t, err)
	assert.True(t, updated.ConfirmedByTenant)
	assert.False(t, updated.ConfirmedByAgent)
	// One side alone never confirms the inspection.
	assert.Equal(t, entity.InspectionStatusPending, updated.Status)
	fx.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInspectionService_Confirm_BothPartiesConfirm(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	ownerID := uuid.New()
	agentID := uuid.New()
	requesterID := uuid.New()
	inspection := testInspection(ownerID, requesterID, &agentID)
	inspection.ConfirmedByTenant = true

	fx.runInTx(ctx)
	fx.factory.On("NewInspectionRepository").Return(fx.inspectionRepo)
	fx.factory.On("NewNotificationRepository").Return(fx.notificationRepo)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)
	fx.inspectionRepo.On("Update", ctx, inspection).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, requesterID, notification.AccountID)
			assert.Equal(t, entity.NotificationInspectionConfirmed, notification.Type)
		}).
		Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	updated, err := svc.Confirm(ctx, agentID, inspection.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.InspectionStatusConfirmed, updated.Status)
	require.NotNil(t, updated.ConfirmedAt)
}

func TestInspectionService_Confirm_RepeatIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	ownerID := uuid.New()
	agentID := uuid.New()
	inspection := testInspection(ownerID, uuid.New(), &agentID)
	inspection.ConfirmedByTenant = true
	inspection.ConfirmedByAgent = true
	inspection.Status = entity.InspectionStatusConfirmed
	confirmedAt := time.Now().Add(-time.Hour)
	inspection.ConfirmedAt = &confirmedAt

	fx.runInTx(ctx)
	fx.factory.On("NewInspectionRepository").Return(fx.inspectionRepo)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)
	fx.inspectionRepo.On("Update", ctx, inspection).Return(nil)

	updated, err := svc.Confirm(ctx, ownerID, inspection.ID)

	require.NoError(t, err)
	assert.Equal(t, confirmedAt.Unix(), updated.ConfirmedAt.Unix())
	fx.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInspectionService_Confirm_RequesterHoldsNoFlag(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	requesterID := uuid.New()
	inspection := testInspection(uuid.New(), requesterID, nil)

	fx.runInTx(ctx)
	fx.factory.On("NewInspectionRepository").Return(fx.inspectionRepo)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)

	_, err := svc.Confirm(ctx, requesterID, inspection.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotInspectionParty)
}

func TestInspectionService_Confirm_TerminalStateConflicts(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	ownerID := uuid.New()
	inspection := testInspection(ownerID, uuid.New(), nil)
	inspection.Status = entity.InspectionStatusCancelled

	fx.runInTx(ctx)
	fx.factory.On("NewInspectionRepository").Return(fx.inspectionRepo)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)

	_, err := svc.Confirm(ctx, ownerID, inspection.ID)

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestInspectionService_AssignAgent_RequiresPrivilege(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestInspectionService(t)

	_, err := svc.AssignAgent(ctx, uuid.New(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrPrivilegedOperation)
}

func TestInspectionService_AssignAgent_ChecksAgentRole(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	svc, fx := createTestInspectionService(t, adminID.String())

	inspection := testInspection(uuid.New(), uuid.New(), nil)
	tenant := testAccount(entity.RoleTenant)

	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)
	fx.accountRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

	_, err := svc.AssignAgent(ctx, adminID, inspection.ID, tenant.ID)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInspectionService_AssignAgent_Success(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	svc, fx := createTestInspectionService(t, adminID.String())

	inspection := testInspection(uuid.New(), uuid.New(), nil)
	agent := testAccount(entity.RoleBoth)

	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)
	fx.accountRepo.On("FindByID", ctx, agent.ID).Return(agent, nil)
	fx.inspectionRepo.On("Update", ctx, inspection).Return(nil)

	updated, err := svc.AssignAgent(ctx, adminID, inspection.ID, agent.ID)

	require.NoError(t, err)
	require.NotNil(t, updated.AgentID)
	assert.Equal(t, agent.ID, *updated.AgentID)
}

func TestInspectionService_Delete_OnlyRequester(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	ownerID := uuid.New()
	inspection := testInspection(ownerID, uuid.New(), nil)
	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)

	err := svc.Delete(ctx, ownerID, inspection.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInspectionService_Delete_DecrementsCounter(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestInspectionService(t)

	requesterID := uuid.New()
	inspection := testInspection(uuid.New(), requesterID, nil)

	fx.inspectionRepo.On("FindByID", ctx, inspection.ID).Return(inspection, nil)
	fx.runInTx(ctx)
	fx.factory.On("NewInspectionRepository").Return(fx.inspectionRepo)
	fx.factory.On("NewAccountRepository").Return(fx.accountRepo)
	fx.inspectionRepo.On("Delete", ctx, inspection.ID).Return(nil)
	fx.accountRepo.On("AdjustCounters", ctx, requesterID, 0, -1).Return(nil)

	assert.NoError(t, svc.Delete(ctx, requesterID, inspection.ID))
}
