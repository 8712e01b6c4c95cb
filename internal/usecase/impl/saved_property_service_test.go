package impl

import (
	"context"
	"testing"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	mockrepo "inndoor/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavedPropertyService_Save(t *testing.T) {
	ctx := context.Background()
	savedRepo := mockrepo.NewMockSavedPropertyRepository(t)
	propertyRepo := mockrepo.NewMockPropertyRepository(t)
	svc := NewSavedPropertyService(savedRepo, propertyRepo)

	callerID := uuid.New()
	property := testProperty(uuid.New(), entity.PropertyStatusActive)

	propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	savedRepo.On("Create", ctx, mock.AnythingOfType("*entity.SavedProperty")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*entity.SavedProperty)
			saved.ID = uuid.New()
		}).
		Return(nil)

	saved, err := svc.Save(ctx, callerID, property.ID)

	require.NoError(t, err)
	assert.Equal(t, callerID, saved.AccountID)
	assert.Equal(t, property.ID, saved.PropertyID)
}

func TestSavedPropertyService_Save_DuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	savedRepo := mockrepo.NewMockSavedPropertyRepository(t)
	propertyRepo := mockrepo.NewMockPropertyRepository(t)
	svc := NewSavedPropertyService(savedRepo, propertyRepo)

	property := testProperty(uuid.New(), entity.PropertyStatusActive)

	propertyRepo.On("FindByID", ctx, property.ID).Return(property, nil)
	savedRepo.On("Create", ctx, mock.AnythingOfType("*entity.SavedProperty")).
		Return(repository.ErrDuplicateSavedProperty)

	_, err := svc.Save(ctx, uuid.New(), property.ID)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateSave)
}

func TestSavedPropertyService_Unsave_OwnBookmarkOnly(t *testing.T) {
	ctx := context.Background()
	savedRepo := mockrepo.NewMockSavedPropertyRepository(t)
	propertyRepo := mockrepo.NewMockPropertyRepository(t)
	svc := NewSavedPropertyService(savedRepo, propertyRepo)

	saved := &entity.SavedProperty{
		ID:         uuid.New(),
		AccountID:  uuid.New(),
		PropertyID: uuid.New(),
	}
	savedRepo.On("FindByID", ctx, saved.ID).Return(saved, nil)

	err := svc.Unsave(ctx, uuid.New(), saved.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSavedPropertyService_Unsave(t *testing.T) {
	ctx := context.Background()
	savedRepo := mockrepo.NewMockSavedPropertyRepository(t)
	propertyRepo := mockrepo.NewMockPropertyRepository(t)
	svc := NewSavedPropertyService(savedRepo, propertyRepo)

	callerID := uuid.New()
	saved := &entity.SavedProperty{
		ID:         uuid.New(),
		AccountID:  callerID,
		PropertyID: uuid.New(),
	}
	savedRepo.On("FindByID", ctx, saved.ID).Return(saved, nil)
	savedRepo.On("Delete", ctx, saved.ID).Return(nil)

	assert.NoError(t, svc.Unsave(ctx, callerID, saved.ID))
}
