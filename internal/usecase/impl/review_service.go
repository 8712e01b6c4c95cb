package impl

import (
	"context"
	"log/slog"

	"inndoor/config"
	deliverycontext "inndoor/internal/delivery/context"
	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo   repository.ReviewRepository
	propertyRepo repository.PropertyRepository
	accountRepo  repository.AccountRepository
	notifier     *Notifier
	privileges   *privilegeChecker
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo   repository.ReviewRepository
	PropertyRepo repository.PropertyRepository
	AccountRepo  repository.AccountRepository
	Notifier     *Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   params.ReviewRepo,
		propertyRepo: params.PropertyRepo,
		accountRepo:  params.AccountRepo,
		notifier:     params.Notifier,
		privileges:   newPrivilegeChecker(params.Config),
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a review. Duplicate (reviewer, target) pairs lose against
// the storage unique indexes, so concurrent double submissions cannot both
// land. The review target is notified.
func (srv *reviewService) Create(ctx context.Context, callerID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrRatingOutOfRange
	}

	review := &entity.Review{
		ReviewerID:     callerID,
		Type:           input.Type,
		PropertyID:     input.PropertyID,
		ReviewedUserID: input.ReviewedUserID,
		Rating:         input.Rating,
		Title:          input.Title,
		Comment:        input.Comment,
	}

	if !review.HasExactlyOneTarget() {
		return nil, domainerrors.ErrReviewTargetMissing
	}

	// Resolve the notification recipient before writing.
	var recipient uuid.UUID
	switch review.Type {
	case entity.ReviewTypeProperty:
		property, err := srv.propertyRepo.FindByID(ctx, *review.PropertyID)
		if err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return nil, domainerrors.ErrPropertyNotFound
			}

			return nil, errors.Wrap(err, "failed to load reviewed property")
		}
		recipient = property.OwnerID
	case entity.ReviewTypeUser:
		account, err := srv.accountRepo.FindByID(ctx, *review.ReviewedUserID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return nil, domainerrors.ErrAccountNotFound
			}

			return nil, errors.Wrap(err, "failed to load reviewed account")
		}
		recipient = account.ID
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid review type")
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview
		}

		return nil, err
	}

	notification := notificationFor(recipient, entity.NotificationReviewReceived,
		"New review", "You have received a new review.")
	notification.PropertyID = review.PropertyID
	srv.notifier.Notify(ctx, nil, notification)

	srv.log(ctx).Info("Review posted",
		slog.String("review_id", review.ID.String()),
		slog.String("type", review.Type.String()),
	)

	return review, nil
}

// Get retrieves a review by ID. Reviews are public.
func (srv *reviewService) Get(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load review")
	}

	return review, nil
}

// List retrieves reviews matching the filter.
func (srv *reviewService) List(ctx context.Context, input *usecase.ListReviewsInput) ([]*entity.Review, error) {
	filter := &repository.ReviewFilter{
		Type:           input.Type,
		PropertyID:     input.PropertyID,
		ReviewedUserID: input.ReviewedUserID,
		ReviewerID:     input.ReviewerID,
		IsVerifiedStay: input.IsVerifiedStay,
		Limit:          input.Limit,
		Offset:         input.Offset,
	}

	return srv.reviewRepo.List(ctx, filter)
}

// Update edits the reviewer's own review. Moderation state is untouchable here.
func (srv *reviewService) Update(ctx context.Context, callerID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load review for update")
	}

	if review.ReviewerID != callerID {
		return nil, domainerrors.ErrForbidden
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, domainerrors.ErrRatingOutOfRange
		}
		review.Rating = *input.Rating
	}
	if input.Title != nil {
		review.Title = *input.Title
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Delete removes the reviewer's own review; privileged accounts may remove any.
func (srv *reviewService) Delete(ctx context.Context, callerID, reviewID uuid.UUID) error {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load review for deletion")
	}

	if review.ReviewerID != callerID && !srv.privileges.IsPrivileged(callerID) {
		return domainerrors.ErrForbidden
	}

	return srv.reviewRepo.Delete(ctx, reviewID)
}

// Flag is the privileged moderation operation. A review is flagged once;
// the first reason sticks.
func (srv *reviewService) Flag(ctx context.Context, callerID, reviewID uuid.UUID, input *usecase.FlagReviewInput) (*entity.Review, error) {
	if !srv.privileges.IsPrivileged(callerID) {
		return nil, domainerrors.ErrPrivilegedOperation
	}

	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load review for flagging")
	}

	if review.IsFlagged {
		return review, nil
	}

	review.IsFlagged = true
	review.FlagReason = input.Reason

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
