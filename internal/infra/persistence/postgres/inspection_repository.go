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

// inspectionRepository implements the repository.InspectionRepository interface.
type inspectionRepository struct {
	db *gorm.DB
}

// NewInspectionRepository is the constructor for inspectionRepository.
func NewInspectionRepository(db *gorm.DB) repository.InspectionRepository {
	return &inspectionRepository{
		db: db,
	}
}

// Create persists a new inspection request.
func (repo *inspectionRepository) Create(ctx context.Context, inspection *entity.Inspection) error {
	inspectionM := fromInspectionDomain(inspection)

	if err := repo.db.WithContext(ctx).Create(inspectionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inspection")
	}

	// Update the entity with generated values
	inspection.ID = inspectionM.ID
	inspection.CreatedAt = inspectionM.CreatedAt
	inspection.UpdatedAt = inspectionM.UpdatedAt

	return nil
}

// FindByID retrieves an inspection by ID. The property owner is resolved
// through the preloaded property so party checks can run on the entity.
func (repo *inspectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inspection, error) {
	var inspectionM model.InspectionModel

	if err := repo.db.WithContext(ctx).
		Preload("Property").
		Where("id = ?", id).
		First(&inspectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInspectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find inspection by ID")
	}

	return toInspectionDomain(&inspectionM), nil
}

// List retrieves inspections visible to the filter's scope account: those
// where the account is requester, assigned agent, or owner of the property.
func (repo *inspectionRepository) List(ctx context.Context, filter *repository.InspectionFilter) ([]*entity.Inspection, error) {
	var inspectionModels []*model.InspectionModel

	query := repo.db.WithContext(ctx).
		Preload("Property").
		Joins("JOIN properties ON properties.id = inspections.property_id").
		Where(
			"inspections.requester_id = ? OR inspections.agent_id = ? OR properties.owner_id = ?",
			filter.ScopeAccountID, filter.ScopeAccountID, filter.ScopeAccountID,
		).
		Order("inspections.created_at DESC")

	if filter.Status != "" {
		query = query.Where("inspections.status = ?", filter.Status.String())
	}
	if filter.PropertyID != nil {
		query = query.Where("inspections.property_id = ?", *filter.PropertyID)
	}
	if filter.AgentID != nil {
		query = query.Where("inspections.agent_id = ?", *filter.AgentID)
	}
	if filter.PreferredDate != nil {
		query = query.Where("inspections.preferred_date = ?", *filter.PreferredDate)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&inspectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inspections")
	}

	inspections := make([]*entity.Inspection, 0, len(inspectionModels))
	for _, inspectionM := range inspectionModels {
		inspections = append(inspections, toInspectionDomain(inspectionM))
	}

	return inspections, nil
}

// Update persists changes to an existing inspection.
func (repo *inspectionRepository) Update(ctx context.Context, inspection *entity.Inspection) error {
	inspectionM := fromInspectionDomain(inspection)

	result := repo.db.WithContext(ctx).
		Model(&model.InspectionModel{}).
		Where("id = ?", inspection.ID).
		Select("*").
		Omit("id", "property_id", "requester_id", "created_at").
		Updates(inspectionM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inspection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInspectionNotFound
	}

	return nil
}

// Delete removes an inspection record.
func (repo *inspectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InspectionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete inspection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInspectionNotFound
	}

	return nil
}

// toInspectionDomain converts a GORM model to a domain entity.
func toInspectionDomain(inspectionM *model.InspectionModel) *entity.Inspection {
	inspection := &entity.Inspection{
		ID:                inspectionM.ID,
		PropertyID:        inspectionM.PropertyID,
		RequesterID:       inspectionM.RequesterID,
		AgentID:           inspectionM.AgentID,
		PreferredDate:     inspectionM.PreferredDate,
		PreferredTime:     inspectionM.PreferredTime,
		ConfirmedAt:       inspectionM.ConfirmedAt,
		Status:            entity.InspectionStatus(inspectionM.Status),
		RequesterNotes:    inspectionM.RequesterNotes,
		AgentNotes:        inspectionM.AgentNotes,
		ConfirmedByTenant: inspectionM.ConfirmedByTenant,
		ConfirmedByAgent:  inspectionM.ConfirmedByAgent,
		CreatedAt:         inspectionM.CreatedAt,
		UpdatedAt:         inspectionM.UpdatedAt,
	}

	if inspectionM.Property != nil {
		inspection.PropertyOwnerID = inspectionM.Property.OwnerID
	}

	return inspection
}

// fromInspectionDomain converts a domain entity to a GORM model.
func fromInspectionDomain(inspection *entity.Inspection) *model.InspectionModel {
	return &model.InspectionModel{
		ID:                inspection.ID,
		PropertyID:        inspection.PropertyID,
		RequesterID:       inspection.RequesterID,
		AgentID:           inspection.AgentID,
		PreferredDate:     inspection.PreferredDate,
		PreferredTime:     inspection.PreferredTime,
		ConfirmedAt:       inspection.ConfirmedAt,
		Status:            inspection.Status.String(),
		RequesterNotes:    inspection.RequesterNotes,
		AgentNotes:        inspection.AgentNotes,
		ConfirmedByTenant: inspection.ConfirmedByTenant,
		ConfirmedByAgent:  inspection.ConfirmedByAgent,
	}
}
