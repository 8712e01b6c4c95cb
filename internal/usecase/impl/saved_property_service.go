package impl

import (
	"context"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// savedPropertyService implements the SavedPropertyUsecase interface.
type savedPropertyService struct {
	savedRepo    repository.SavedPropertyRepository
	propertyRepo repository.PropertyRepository
}

// NewSavedPropertyService is the constructor for savedPropertyService.
func NewSavedPropertyService(
	savedRepo repository.SavedPropertyRepository,
	propertyRepo repository.PropertyRepository,
) usecase.SavedPropertyUsecase {
	return &savedPropertyService{
		savedRepo:    savedRepo,
		propertyRepo: propertyRepo,
	}
}

// Save bookmarks a property for the caller. The storage unique index makes
// a repeated save a conflict, even under concurrency.
func (srv *savedPropertyService) Save(ctx context.Context, callerID, propertyID uuid.UUID) (*entity.SavedProperty, error) {
	if _, err := srv.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to load property for bookmarking")
	}

	saved := &entity.SavedProperty{
		AccountID:  callerID,
		PropertyID: propertyID,
	}

	if err := srv.savedRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrDuplicateSavedProperty) {
			return nil, domainerrors.ErrDuplicateSave
		}

		return nil, err
	}

	return saved, nil
}

// List retrieves the caller's bookmarks, newest first.
func (srv *savedPropertyService) List(ctx context.Context, callerID uuid.UUID, limit, offset int) ([]*entity.SavedProperty, error) {
	return srv.savedRepo.ListForAccount(ctx, callerID, limit, offset)
}

// Unsave removes the caller's own bookmark.
func (srv *savedPropertyService) Unsave(ctx context.Context, callerID, savedID uuid.UUID) error {
	saved, err := srv.savedRepo.FindByID(ctx, savedID)
	if err != nil {
		if errors.Is(err, repository.ErrSavedPropertyNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load bookmark")
	}

	if saved.AccountID != callerID {
		return domainerrors.ErrNotFound
	}

	return srv.savedRepo.Delete(ctx, savedID)
}
