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

// dealRepository implements the repository.DealRepository interface.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{
		db: db,
	}
}

// Create persists a new deal.
func (repo *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal")
	}

	// Update the entity with generated values
	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// FindByID retrieves a deal by its unique ID.
func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by ID")
	}

	return toDealDomain(&dealM), nil
}

// List retrieves deals visible to the filter's scope account: those where
// the account is tenant, owner, or agent.
func (repo *dealRepository) List(ctx context.Context, filter *repository.DealFilter) ([]*entity.Deal, error) {
	var dealModels []*model.DealModel

	query := repo.db.WithContext(ctx).
		Where(
			"tenant_id = ? OR owner_id = ? OR agent_id = ?",
			filter.ScopeAccountID, filter.ScopeAccountID, filter.ScopeAccountID,
		).
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// Update persists changes to an existing deal.
func (repo *dealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", deal.ID).
		Select("*").
		Omit("id", "property_id", "tenant_id", "owner_id", "created_at").
		Updates(dealM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// toDealDomain converts a GORM model to a domain entity.
func toDealDomain(dealM *model.DealModel) *entity.Deal {
	return &entity.Deal{
		ID:               dealM.ID,
		PropertyID:       dealM.PropertyID,
		TenantID:         dealM.TenantID,
		OwnerID:          dealM.OwnerID,
		AgentID:          dealM.AgentID,
		RentAmount:       dealM.RentAmount,
		CommissionAmount: dealM.CommissionAmount,
		OwnerCommission:  dealM.OwnerCommission,
		AgentCommission:  dealM.AgentCommission,
		Status:           entity.DealStatus(dealM.Status),
		LeaseStartDate:   dealM.LeaseStartDate,
		LeaseEndDate:     dealM.LeaseEndDate,
		PaymentReference: dealM.PaymentReference,
		PaidAt:           dealM.PaidAt,
		CreatedAt:        dealM.CreatedAt,
		UpdatedAt:        dealM.UpdatedAt,
	}
}

// fromDealDomain converts a domain entity to a GORM model.
func fromDealDomain(deal *entity.Deal) *model.DealModel {
	return &model.DealModel{
		ID:               deal.ID,
		PropertyID:       deal.PropertyID,
		TenantID:         deal.TenantID,
		OwnerID:          deal.OwnerID,
		AgentID:          deal.AgentID,
		RentAmount:       deal.RentAmount,
		CommissionAmount: deal.CommissionAmount,
		OwnerCommission:  deal.OwnerCommission,
		AgentCommission:  deal.AgentCommission,
		Status:           deal.Status.String(),
		LeaseStartDate:   deal.LeaseStartDate,
		LeaseEndDate:     deal.LeaseEndDate,
		PaymentReference: deal.PaymentReference,
		PaidAt:           deal.PaidAt,
	}
}
