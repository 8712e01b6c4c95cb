// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// InitiateDealInput defines the data required to open a deal. The caller
// becomes the tenant; the owner is resolved from the property.
type InitiateDealInput struct {
	PropertyID uuid.UUID
	AgentID    *uuid.UUID

	RentAmount       float64
	CommissionAmount float64

	// OwnerCommission and AgentCommission are derived from the configured
	// split policy when nil. When supplied, their sum must equal
	// CommissionAmount.
	OwnerCommission *float64
	AgentCommission *float64

	LeaseStartDate *time.Time
	LeaseEndDate   *time.Time
}

// UpdateDealStatusInput moves a deal along its lifecycle.
type UpdateDealStatusInput struct {
	Status entity.DealStatus
}

// MarkDealPaidInput records an external payment event.
type MarkDealPaidInput struct {
	PaymentReference string
	PaidAt           *time.Time
}

// ListDealsInput carries list parameters. Results are always scoped to
// deals the caller participates in.
type ListDealsInput struct {
	Status     entity.DealStatus
	PropertyID *uuid.UUID
	TenantID   *uuid.UUID
	OwnerID    *uuid.UUID
	AgentID    *uuid.UUID

	Limit  int
	Offset int
}

// DealUsecase defines the interface for the deal ledger.
type DealUsecase interface {
	Initiate(ctx context.Context, callerID uuid.UUID, input *InitiateDealInput) (*entity.Deal, error)

	// Get retrieves a deal the caller participates in; anything else
	// reads as not found.
	Get(ctx context.Context, callerID, dealID uuid.UUID) (*entity.Deal, error)

	List(ctx context.Context, callerID uuid.UUID, input *ListDealsInput) ([]*entity.Deal, error)

	// UpdateStatus applies a lifecycle transition. Moves outside the
	// transition table are conflicts.
	UpdateStatus(ctx context.Context, callerID, dealID uuid.UUID, input *UpdateDealStatusInput) (*entity.Deal, error)

	// MarkPaid records payment: the deal enters PAID and PaidAt is set
	// exactly once.
	MarkPaid(ctx context.Context, callerID, dealID uuid.UUID, input *MarkDealPaidInput) (*entity.Deal, error)
}
