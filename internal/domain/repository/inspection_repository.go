// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInspectionNotFound is returned when an inspection is not found.
var ErrInspectionNotFound = errors.New("inspection not found")

// InspectionFilter carries the list parameters for inspections. The scope
// account is mandatory: results are always restricted to inspections where
// the account is requester, assigned agent, or owner of the property.
type InspectionFilter struct {
	ScopeAccountID uuid.UUID

	Status        entity.InspectionStatus
	PropertyID    *uuid.UUID
	AgentID       *uuid.UUID
	PreferredDate *time.Time

	Limit  int
	Offset int
}

// InspectionRepository defines the interface for inspection persistence.
type InspectionRepository interface {
	// Create persists a new inspection request.
	Create(ctx context.Context, inspection *entity.Inspection) error

	// FindByID retrieves an inspection by ID with the property owner resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inspection, error)

	// List retrieves inspections visible to the filter's scope account.
	List(ctx context.Context, filter *InspectionFilter) ([]*entity.Inspection, error)

	// Update persists changes to an existing inspection.
	Update(ctx context.Context, inspection *entity.Inspection) error

	// Delete removes an inspection record.
	Delete(ctx context.Context, id uuid.UUID) error
}
