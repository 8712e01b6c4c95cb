package postgres

import (
	"context"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review. The partial unique indexes on
// (reviewer, property) and (reviewer, reviewed_user) make concurrent
// duplicate attempts lose deterministically.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReviewNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// List retrieves reviews matching the filter, newest first.
func (repo *reviewRepository) List(ctx context.Context, filter *repository.ReviewFilter) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.ReviewedUserID != nil {
		query = query.Where("reviewed_user_id = ?", *filter.ReviewedUserID)
	}
	if filter.ReviewerID != nil {
		query = query.Where("reviewer_id = ?", *filter.ReviewerID)
	}
	if filter.IsVerifiedStay != nil {
		query = query.Where("is_verified_stay = ?", *filter.IsVerifiedStay)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Update persists changes to an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Select("*").
		Omit("id", "reviewer_id", "type", "property_id", "reviewed_user_id", "created_at").
		Updates(reviewM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review record.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// toReviewDomain converts a GORM model to a domain entity.
func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:             reviewM.ID,
		ReviewerID:     reviewM.ReviewerID,
		Type:           entity.ReviewType(reviewM.Type),
		PropertyID:     reviewM.PropertyID,
		ReviewedUserID: reviewM.ReviewedUserID,
		Rating:         reviewM.Rating,
		Title:          reviewM.Title,
		Comment:        reviewM.Comment,
		IsVerifiedStay: reviewM.IsVerifiedStay,
		IsFlagged:      reviewM.IsFlagged,
		FlagReason:     reviewM.FlagReason,
		CreatedAt:      reviewM.CreatedAt,
		UpdatedAt:      reviewM.UpdatedAt,
	}
}

// fromReviewDomain converts a domain entity to a GORM model.
func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:             review.ID,
		ReviewerID:     review.ReviewerID,
		Type:           review.Type.String(),
		PropertyID:     review.PropertyID,
		ReviewedUserID: review.ReviewedUserID,
		Rating:         review.Rating,
		Title:          review.Title,
		Comment:        review.Comment,
		IsVerifiedStay: review.IsVerifiedStay,
		IsFlagged:      review.IsFlagged,
		FlagReason:     review.FlagReason,
	}
}
