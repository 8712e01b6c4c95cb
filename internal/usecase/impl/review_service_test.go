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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	reviewRepo       *mockrepo.MockReviewRepository
	propertyRepo     *mockrepo.MockPropertyRepository
	accountRepo      *mockrepo.MockAccountRepository
	notificationRepo *mockrepo.MockNotificationRepository
	eventPublisher   *mockservice.MockEventPublisher
}

func createTestReviewService(t *testing.T, adminIDs ...string) (usecase.ReviewUsecase, *reviewServiceFixtures) {
	t.Helper()

	fx := &reviewServiceFixtures{
		reviewRepo:       mockrepo.NewMockReviewRepository(t),
		propertyRepo:     mockrepo.NewMockPropertyRepository(t),
		accountRepo:      mockrepo.NewMockAccountRepository(t),
		notificationRepo: mockrepo.NewMockNotificationRepository(t),
		eventPublisher:   mockservice.NewMockEventPublisher(t),
	}

	notifier := NewNotifier(NotifierParams{
		NotificationRepo: fx.notificationRepo,
		EventPublisher:   fx.eventPublisher,
		Logger:           newDiscardLogger(),
	})

	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:   fx.reviewRepo,
		PropertyRepo: fx.propertyRepo,
		AccountRepo:  fx.accountRepo,
		Notifier:     notifier,
		Config:       newTestConfig(adminIDs...),
		Logger:       newDiscardLogger(),
	})

	return svc, fx
}

func TestReviewService_Create_PropertyReviewNotifiesOwner(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestReviewService(t)

	reviewerID := uuid.New()
	property := testProperty(uuid.New(), entity.PropertyStatusActive)

	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(args mock.Arguments) {
			review := args.Get(1).(*entity.Review)
			review.ID = uuid.New()
		}).
		Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, property.OwnerID, notification.AccountID)
			assert.Equal(t, entity.NotificationReviewReceived, notification.Type)
		}).
		Return(nil)
	fx.eventPublisher.On("PublishDomainEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	review, err := svc.Create(ctx, reviewerID, &usecase.CreateReviewInput{
		Type:       entity.ReviewTypeProperty,
		PropertyID: &property.ID,
		Rating:     4,
		Comment:    "Clean compound, water runs all day.",
	})

	require.NoError(t, err)
	assert.Equal(t, reviewerID, review.ReviewerID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestReviewService(t)

	propertyID := uuid.New()
	_, err := svc.Create(ctx, uuid.New(), &usecase.CreateReviewInput{
		Type:       entity.ReviewTypeProperty,
		PropertyID: &propertyID,
		Rating:     6,
	})

	assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
}

func TestReviewService_Create_ExactlyOneTarget(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestReviewService(t)

	propertyID := uuid.New()
	reviewedUserID := uuid.New()

	_, err := svc.Create(ctx, uuid.New(), &usecase.CreateReviewInput{
		Type:           entity.ReviewTypeProperty,
		PropertyID:     &propertyID,
		ReviewedUserID: &reviewedUserID,
		Rating:         3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrReviewTargetMissing)

	_, err = svc.Create(ctx, uuid.New(), &usecase.CreateReviewInput{
		Type:   entity.ReviewTypeUser,
		Rating: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrReviewTargetMissing)
}

func TestReviewService_Create_DuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestReviewService(t)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)
	fx.propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	fx.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrDuplicateReview)

	_, err := svc.Create(ctx, uuid.New(), &usecase.CreateReviewInput{
		Type:       entity.ReviewTypeProperty,
		PropertyID: &property.ID,
		Rating:     5,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_Update_OnlyReviewer(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestReviewService(t)

	review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New(), Rating: 3}
	fx.reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)

	rating := 1
	_, err := svc.Update(ctx, uuid.New(), review.ID, &usecase.UpdateReviewInput{Rating: &rating})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_Delete_PrivilegedMayRemoveAny(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	svc, fx := createTestReviewService(t, adminID.String())

	review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New(), Rating: 2}
	fx.reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
	fx.reviewRepo.On("Delete", ctx, review.ID).Return(nil)

	assert.NoError(t, svc.Delete(ctx, adminID, review.ID))
}

func TestReviewService_Flag_RequiresPrivilege(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestReviewService(t)

	_, err := svc.Flag(ctx, uuid.New(), uuid.New(), &usecase.FlagReviewInput{Reason: "spam"})

	assert.ErrorIs(t, err, domainerrors.ErrPrivilegedOperation)
}

func TestReviewService_Flag_FirstReasonSticks(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	svc, fx := createTestReviewService(t, adminID.String())

	review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New(), Rating: 1}
	fx.reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
	fx.reviewRepo.On("Update", ctx, review).Return(nil).Once()

	flagged, err := svc.Flag(ctx, adminID, review.ID, &usecase.FlagReviewInput{Reason: "harassment"})
	require.NoError(t, err)
	assert.True(t, flagged.IsFlagged)
	assert.Equal(t, "harassment", flagged.FlagReason)

	// A second flag neither rewrites the reason nor touches storage.
	flagged, err = svc.Flag(ctx, adminID, review.ID, &usecase.FlagReviewInput{Reason: "spam"})
	require.NoError(t, err)
	assert.Equal(t, "harassment", flagged.FlagReason)
}
