// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDealNotFound is returned when a deal is not found.
var ErrDealNotFound = errors.New("deal not found")

// DealFilter carries the list parameters for deals. The scope account is
// mandatory: results are always restricted to deals where the account is
// tenant, owner, or agent.
type DealFilter struct {
	ScopeAccountID uuid.UUID

	Status     entity.DealStatus
	PropertyID *uuid.UUID
	TenantID   *uuid.UUID
	OwnerID    *uuid.UUID
	AgentID    *uuid.UUID

	Limit  int
	Offset int
}

// DealRepository defines the interface for deal ledger persistence.
type DealRepository interface {
	// Create persists a new deal.
	Create(ctx context.Context, deal *entity.Deal) error

	// FindByID retrieves a deal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// List retrieves deals visible to the filter's scope account.
	List(ctx context.Context, filter *DealFilter) ([]*entity.Deal, error)

	// Update persists changes to an existing deal.
	Update(ctx context.Context, deal *entity.Deal) error
}
