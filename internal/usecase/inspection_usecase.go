// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RequestInspectionInput defines the data required to book a viewing.
// The caller becomes the requester.
type RequestInspectionInput struct {
	PropertyID     uuid.UUID
	AgentID        *uuid.UUID
	PreferredDate  time.Time
	PreferredTime  string
	RequesterNotes string
}

// UpdateInspectionInput carries party-settable inspection fields. Status
// changes go through the transition table; CONFIRMED is reachable only via
// the Confirm handshake.
type UpdateInspectionInput struct {
	Status         *entity.InspectionStatus
	PreferredDate  *time.Time
	PreferredTime  *string
	RequesterNotes *string
	AgentNotes     *string
}

// ListInspectionsInput carries list parameters. Results are always scoped
// to inspections the caller participates in.
type ListInspectionsInput struct {
	Status        entity.InspectionStatus
	PropertyID    *uuid.UUID
	AgentID       *uuid.UUID
	PreferredDate *time.Time

	Limit  int
	Offset int
}

// InspectionUsecase defines the interface for the viewing scheduler.
type InspectionUsecase interface {
	Request(ctx context.Context, callerID uuid.UUID, input *RequestInspectionInput) (*entity.Inspection, error)

	// Get retrieves an inspection the caller participates in; anything
	// else reads as not found.
	Get(ctx context.Context, callerID, inspectionID uuid.UUID) (*entity.Inspection, error)

	List(ctx context.Context, callerID uuid.UUID, input *ListInspectionsInput) ([]*entity.Inspection, error)
	Update(ctx context.Context, callerID, inspectionID uuid.UUID, input *UpdateInspectionInput) (*entity.Inspection, error)

	// Confirm records one side of the two-party handshake: the property
	// owner flips the tenant flag, the assigned agent flips the agent
	// flag. Once both are set the inspection becomes CONFIRMED. Repeating
	// a confirmation is a no-op; confirming a terminal inspection is a
	// conflict.
	Confirm(ctx context.Context, callerID, inspectionID uuid.UUID) (*entity.Inspection, error)

	// AssignAgent is the privileged operation that attaches an agent to a
	// pending inspection.
	AssignAgent(ctx context.Context, callerID, inspectionID, agentID uuid.UUID) (*entity.Inspection, error)

	Delete(ctx context.Context, callerID, inspectionID uuid.UUID) error
}
