package entity

import (
	"time"

	"github.com/google/uuid"
)

// InspectionStatus represents the state of a viewing appointment.
type InspectionStatus string

const (
	InspectionStatusPending   InspectionStatus = "PENDING"
	InspectionStatusConfirmed InspectionStatus = "CONFIRMED"
	InspectionStatusCompleted InspectionStatus = "COMPLETED"
	InspectionStatusCancelled InspectionStatus = "CANCELLED"
	InspectionStatusNoShow    InspectionStatus = "NO_SHOW"
)

// String returns the string representation of the InspectionStatus.
func (s InspectionStatus) String() string {
	return string(s)
}

// IsValid checks if the InspectionStatus is a valid value.
func (s InspectionStatus) IsValid() bool {
	switch s {
	case InspectionStatusPending, InspectionStatusConfirmed, InspectionStatusCompleted,
		InspectionStatusCancelled, InspectionStatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s InspectionStatus) IsTerminal() bool {
	switch s {
	case InspectionStatusCompleted, InspectionStatusCancelled, InspectionStatusNoShow:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine allows moving from s to
// next. Pending -> Confirmed happens only through the two-party confirm flow,
// but is still a legal edge here.
func (s InspectionStatus) CanTransitionTo(next InspectionStatus) bool {
	switch s {
	case InspectionStatusPending:
		switch next {
		case InspectionStatusConfirmed, InspectionStatusCancelled, InspectionStatusNoShow:
			return true
		default:
			return false
		}
	case InspectionStatusConfirmed:
		switch next {
		case InspectionStatusCompleted, InspectionStatusCancelled, InspectionStatusNoShow:
			return true
		default:
			return false
		}
	case InspectionStatusCompleted, InspectionStatusCancelled, InspectionStatusNoShow:
		return false
	default:
		return false
	}
}

// Inspection is a viewing appointment on a property. Confirmation is a
// two-party handshake: the property owner and the assigned agent each flip
// their flag, and the status becomes Confirmed only once both are set.
// The flags persist even if the status is later changed.
type Inspection struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	RequesterID uuid.UUID  // The account that asked for the viewing.
	AgentID     *uuid.UUID // Assigned agent, optional at creation.

	PreferredDate time.Time
	PreferredTime string // Wall-clock time of day, "15:04" format.
	ConfirmedAt   *time.Time

	Status InspectionStatus

	RequesterNotes string
	AgentNotes     string

	ConfirmedByTenant bool // Set by the property owner.
	ConfirmedByAgent  bool // Set by the assigned agent.

	// PropertyOwnerID is resolved from the referenced property when the
	// inspection is loaded; it is not a column of its own.
	PropertyOwnerID uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BothConfirmed reports whether the two-party handshake is complete.
func (i *Inspection) BothConfirmed() bool {
	return i.ConfirmedByTenant && i.ConfirmedByAgent
}

// IsParty reports whether the given account participates in this inspection
// as requester, assigned agent, or owner of the referenced property.
func (i *Inspection) IsParty(accountID uuid.UUID) bool {
	if i.RequesterID == accountID || i.PropertyOwnerID == accountID {
		return true
	}

	return i.AgentID != nil && *i.AgentID == accountID
}
