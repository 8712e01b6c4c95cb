package impl

import (
	"context"
	"testing"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	mockrepo "inndoor/internal/mocks/repository"
	mockservice "inndoor/internal/mocks/service"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type propertyServiceFixtures struct {
	txManager        *mockrepo.MockTransactionManager
	propertyRepo     *mockrepo.MockPropertyRepository
	accountRepo      *mockrepo.MockAccountRepository
	notificationRepo *mockrepo.MockNotificationRepository
	eventPublisher   *mockservice.MockEventPublisher
	qrService        *mockservice.MockQRCodeService
	factory          *mockrepo.MockRepositoryFactory
}

func createTestPropertyService(t *testing.T, adminIDs ...string) (usecase.PropertyUsecase, *propertyServiceFixtures) {
	t.Helper()

	fx := &propertyServiceFixtures{
		txManager:        mockrepo.NewMockTransactionManager(t),
		propertyRepo:     mockrepo.NewMockPropertyRepository(t),
		accountRepo:      mockrepo.NewMockAccountRepository(t),
		notificationRepo: mockrepo.NewMockNotificationRepository(t),
		eventPublisher:   mockservice.NewMockEventPublisher(t),
		qrService:        mockservice.NewMockQRCodeService(t),
		factory:          mockrepo.NewMockRepositoryFactory(t),
	}

	notifier := NewNotifier(NotifierParams{
		NotificationRepo: fx.notificationRepo,
		EventPublisher:   fx.eventPublisher,
		Logger:           newDiscardLogger(),
	})

	svc := NewPropertyService(PropertyServiceParams{
		TxManager:    fx.txManager,
		PropertyRepo: fx.propertyRepo,
		Notifier:     notifier,
		QRService:    fx.qrService,
		Config:       newTestConfig(adminIDs...),
		Logger:       newDiscardLogger(),
	})

	return svc, fx
}

// runInTx wires the transaction manager mock to run the submitted function
// against the mock factory.
func (fx *propertyServiceFixtures) runInTx(ctx context.Context) {
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func testProperty(ownerID uuid.UUID, status entity.PropertyStatus) *entity.Property {
	return &entity.Property{
		ID:                   uuid.New(),
		OwnerID:              ownerID,
		Title:                "2 bedroom flat in Yaba",
		Type:                 entity.PropertyTypeFlat,
		Status:               status,
		City:                 "Lagos",
		State:                "Lagos",
		Price:                450000,
		CommissionPercentage: 10,
	}
}

func TestPropertyService_Create_StartsAsDraft(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()

	fx.runInTx(ctx)
	fx.factory.On("NewPropertyRepository").Return(fx.propertyRepo)
	fx.factory.On("NewAccountRepository").Return(fx.accountRepo)
	fx.propertyRepo.On("Create", ctx, mock.AnythingOfType("*entity.Property")).
		Run(func(args mock.Arguments) {
			property := args.Get(1).(*entity.Property)
			property.ID = uuid.New()
		}).
		Return(nil)
	fx.accountRepo.On("AdjustCounters", ctx, ownerID, 1, 0).Return(nil)

	property, err := svc.Create(ctx, ownerID, &usecase.CreatePropertyInput{
		Title: "2 bedroom flat in Yaba",
		Type:  entity.PropertyTypeFlat,
		City:  "Lagos",
		State: "Lagos",
		Price: 450000,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PropertyStatusDraft, property.Status)
	assert.Equal(t, ownerID, property.OwnerID)
	assert.Equal(t, defaultCommissionPercentage, property.CommissionPercentage)
	assert.False(t, property.IsVerified)
}

func TestPropertyService_Create_RejectsBadCommission(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestPropertyService(t)

	commission := 120.0
	_, err := svc.Create(ctx, uuid.New(), &usecase.CreatePropertyInput{
		Title:                "flat",
		Type:                 entity.PropertyTypeFlat,
		CommissionPercentage: &commission,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCommissionOutOfRange)
}

func TestPropertyService_Get_DraftHiddenFromOthers(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusDraft)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	_, err := svc.Get(ctx, uuid.New(), property.ID)

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_Get_DraftVisibleToOwner(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusDraft)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	got, err := svc.Get(ctx, ownerID, property.ID)

	require.NoError(t, err)
	assert.Equal(t, property, got)
}

func TestPropertyService_List_FiltersDraftsAndRadius(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	callerID := uuid.New()

	// Ikeja, roughly 10 km from the search center at Yaba.
	farLat, farLng := 6.6018, 3.3515
	// Yaba itself.
	nearLat, nearLng := 6.5095, 3.3711

	visible := testProperty(uuid.New(), entity.PropertyStatusActive)
	visible.Latitude, visible.Longitude = &nearLat, &nearLng
	hiddenDraft := testProperty(uuid.New(), entity.PropertyStatusDraft)
	hiddenDraft.Latitude, hiddenDraft.Longitude = &nearLat, &nearLng
	tooFar := testProperty(uuid.New(), entity.PropertyStatusActive)
	tooFar.Latitude, tooFar.Longitude = &farLat, &farLng
	noCoords := testProperty(uuid.New(), entity.PropertyStatusActive)

	fx.propertyRepo.On("List", ctx, mock.AnythingOfType("*repository.PropertyFilter")).
		Return([]*entity.Property{visible, hiddenDraft, tooFar, noCoords}, nil)

	results, err := svc.List(ctx, callerID, &usecase.ListPropertiesInput{
		Near: &usecase.NearFilter{Latitude: 6.5095, Longitude: 3.3711, RadiusKm: 5},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, visible.ID, results[0].ID)
}

func TestPropertyService_Update_BlocksIllegalTransition(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusDraft)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	status := entity.PropertyStatusRented
	_, err := svc.Update(ctx, ownerID, property.ID, &usecase.UpdatePropertyInput{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPropertyService_Update_NonOwnerReadsAsMissingOrForbidden(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	title := "hijacked"
	_, err := svc.Update(ctx, uuid.New(), property.ID, &usecase.UpdatePropertyInput{Title: &title})

	// Active listings are visible, so the non-owner gets a plain forbidden.
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestPropertyService_Delete_DecrementsListingCounter(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.runInTx(ctx)
	fx.factory.On("NewPropertyRepository").Return(fx.propertyRepo)
	fx.factory.On("NewAccountRepository").Return(fx.accountRepo)
	fx.propertyRepo.On("Delete", ctx, property.ID).Return(nil)
	fx.accountRepo.On("AdjustCounters", ctx, ownerID, -1, 0).Return(nil)

	assert.NoError(t, svc.Delete(ctx, ownerID, property.ID))
}

func TestPropertyService_IncrementViews_ReturnsNewCount(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.propertyRepo.On("IncrementViews", ctx, property.ID).Return(42, nil)

	count, err := svc.IncrementViews(ctx, uuid.New(), property.ID)

	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestPropertyService_Verify_RequiresPrivilege(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestPropertyService(t)

	_, err := svc.Verify(ctx, uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrPrivilegedOperation)
}

func TestPropertyService_Verify_StampsAndNotifiesOwner(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	svc, fx := createTestPropertyService(t, adminID.String())

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.propertyRepo.On("Update", ctx, property).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, ownerID, notification.AccountID)
			assert.Equal(t, entity.NotificationPropertyVerified, notification.Type)
			require.NotNil(t, notification.PropertyID)
			assert.Equal(t, property.ID, *notification.PropertyID)
		}).
		Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	verified, err := svc.Verify(ctx, adminID, property.ID)

	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	require.NotNil(t, verified.VerifiedAt)
	require.NotNil(t, verified.VerifiedBy)
	assert.Equal(t, adminID, *verified.VerifiedBy)
}

func TestPropertyService_Verify_Idempotent(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	svc, fx := createTestPropertyService(t, adminID.String())

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	property.IsVerified = true
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)

	verified, err := svc.Verify(ctx, adminID, property.ID)

	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	fx.propertyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPropertyService_ShareQR_RendersPNG(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.qrService.On("GenerateListingQR", property.ID).Return([]byte("png-bytes"), nil)

	png, err := svc.ShareQR(ctx, uuid.New(), property.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestPropertyService_AddImage_PrimaryDemotesExistingInOneTransaction(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusActive)
	imageID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.runInTx(ctx)
	fx.factory.On("NewPropertyRepository").Return(fx.propertyRepo)
	fx.propertyRepo.On("AddImage", ctx, mock.AnythingOfType("*entity.PropertyImage")).
		Run(func(args mock.Arguments) {
			image := args.Get(1).(*entity.PropertyImage)
			image.ID = imageID
		}).
		Return(nil)
	fx.propertyRepo.On("SetPrimaryImage", ctx, property.ID, imageID).Return(nil)

	image, err := svc.AddImage(ctx, ownerID, &usecase.AddPropertyImageInput{
		PropertyID: property.ID,
		URI:        "https://cdn.example.com/img/1.jpg",
		IsPrimary:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, imageID, image.ID)
	assert.True(t, image.IsPrimary)
}

func TestPropertyService_AddImage_PrimaryRollsBackOnDemoteFailure(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.runInTx(ctx)
	fx.factory.On("NewPropertyRepository").Return(fx.propertyRepo)
	fx.propertyRepo.On("AddImage", ctx, mock.AnythingOfType("*entity.PropertyImage")).Return(nil)
	fx.propertyRepo.On("SetPrimaryImage", ctx, property.ID, mock.AnythingOfType("uuid.UUID")).
		Return(errors.New("connection reset"))

	_, err := svc.AddImage(ctx, ownerID, &usecase.AddPropertyImageInput{
		PropertyID: property.ID,
		URI:        "https://cdn.example.com/img/1.jpg",
		IsPrimary:  true,
	})

	assert.Error(t, err)
}

func TestPropertyService_AddImage_NonPrimarySkipsTransaction(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.propertyRepo.On("AddImage", ctx, mock.AnythingOfType("*entity.PropertyImage")).Return(nil)

	image, err := svc.AddImage(ctx, ownerID, &usecase.AddPropertyImageInput{
		PropertyID: property.ID,
		URI:        "https://cdn.example.com/img/2.jpg",
	})

	require.NoError(t, err)
	assert.False(t, image.IsPrimary)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.propertyRepo.AssertNotCalled(t, "SetPrimaryImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestPropertyService_DeleteImage_ChecksListingMatch(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusActive)
	image := &entity.PropertyImage{ID: uuid.New(), PropertyID: uuid.New()}

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.propertyRepo.On("FindImage", ctx, image.ID).Return(image, nil)

	err := svc.DeleteImage(ctx, ownerID, property.ID, image.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.propertyRepo.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
}

func TestPropertyService_SetPrimaryImage_UnknownImage(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestPropertyService(t)

	ownerID := uuid.New()
	property := testProperty(ownerID, entity.PropertyStatusActive)
	imageID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.propertyRepo.On("SetPrimaryImage", ctx, property.ID, imageID).
		Return(repository.ErrPropertyImageNotFound)

	err := svc.SetPrimaryImage(ctx, ownerID, property.ID, imageID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
