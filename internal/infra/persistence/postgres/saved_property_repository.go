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

// savedPropertyRepository implements the repository.SavedPropertyRepository interface.
type savedPropertyRepository struct {
	db *gorm.DB
}

// NewSavedPropertyRepository is the constructor for savedPropertyRepository.
func NewSavedPropertyRepository(db *gorm.DB) repository.SavedPropertyRepository {
	return &savedPropertyRepository{
		db: db,
	}
}

// Create persists a new bookmark. The composite unique index on
// (account_id, property_id) makes concurrent duplicate saves lose cleanly.
func (repo *savedPropertyRepository) Create(ctx context.Context, saved *entity.SavedProperty) error {
	savedM := fromSavedPropertyDomain(saved)

	if err := repo.db.WithContext(ctx).Create(savedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSavedProperty
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save property")
	}

	// Update the entity with generated values
	saved.ID = savedM.ID
	saved.CreatedAt = savedM.CreatedAt

	return nil
}

// FindByID retrieves a bookmark by its unique ID.
func (repo *savedPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedProperty, error) {
	var savedM model.SavedPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&savedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavedPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved property by ID")
	}

	return toSavedPropertyDomain(&savedM), nil
}

// ListForAccount retrieves an account's bookmarks, newest first.
func (repo *savedPropertyRepository) ListForAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.SavedProperty, error) {
	var savedModels []*model.SavedPropertyModel

	query := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&savedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved properties")
	}

	saved := make([]*entity.SavedProperty, 0, len(savedModels))
	for _, savedM := range savedModels {
		saved = append(saved, toSavedPropertyDomain(savedM))
	}

	return saved, nil
}

// Delete removes a bookmark.
func (repo *savedPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SavedPropertyModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete saved property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSavedPropertyNotFound
	}

	return nil
}

// toSavedPropertyDomain converts a GORM model to a domain entity.
func toSavedPropertyDomain(savedM *model.SavedPropertyModel) *entity.SavedProperty {
	return &entity.SavedProperty{
		ID:         savedM.ID,
		AccountID:  savedM.AccountID,
		PropertyID: savedM.PropertyID,
		CreatedAt:  savedM.CreatedAt,
	}
}

// fromSavedPropertyDomain converts a domain entity to a GORM model.
func fromSavedPropertyDomain(saved *entity.SavedProperty) *model.SavedPropertyModel {
	return &model.SavedPropertyModel{
		ID:         saved.ID,
		AccountID:  saved.AccountID,
		PropertyID: saved.PropertyID,
	}
}
