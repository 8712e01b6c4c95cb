package entity

import (
	"time"

	"github.com/google/uuid"
)

// DealStatus represents the state of a rental agreement.
type DealStatus string

const (
	DealStatusInitiated      DealStatus = "INITIATED"
	DealStatusPendingPayment DealStatus = "PENDING_PAYMENT"
	DealStatusPaid           DealStatus = "PAID"
	DealStatusCompleted      DealStatus = "COMPLETED"
	DealStatusCancelled      DealStatus = "CANCELLED"
)

// String returns the string representation of the DealStatus.
func (s DealStatus) String() string {
	return string(s)
}

// IsValid checks if the DealStatus is a valid value.
func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusInitiated, DealStatusPendingPayment, DealStatusPaid,
		DealStatusCompleted, DealStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the linear deal lifecycle allows moving
// from s to next. The only backward-looking edge is Cancelled, reachable
// from any state that is not yet Completed.
func (s DealStatus) CanTransitionTo(next DealStatus) bool {
	if next == DealStatusCancelled {
		return s != DealStatusCompleted && s != DealStatusCancelled
	}

	switch s {
	case DealStatusInitiated:
		return next == DealStatusPendingPayment
	case DealStatusPendingPayment:
		return next == DealStatusPaid
	case DealStatusPaid:
		return next == DealStatusCompleted
	case DealStatusCompleted, DealStatusCancelled:
		return false
	default:
		return false
	}
}

// Deal is a rental agreement between a tenant and a property owner,
// optionally brokered by an agent. Commission accounting invariant:
// OwnerCommission + AgentCommission == CommissionAmount, validated at every
// write that touches these fields (the storage layer does not enforce it).
type Deal struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	OwnerID    uuid.UUID
	AgentID    *uuid.UUID

	RentAmount       float64
	CommissionAmount float64
	OwnerCommission  float64
	AgentCommission  float64

	Status DealStatus

	LeaseStartDate *time.Time
	LeaseEndDate   *time.Time

	PaymentReference string
	// PaidAt is set exactly once, when the deal enters Paid, and is
	// immutable afterwards.
	PaidAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsParty reports whether the given account is the tenant, owner, or agent
// on this deal.
func (d *Deal) IsParty(accountID uuid.UUID) bool {
	if d.TenantID == accountID || d.OwnerID == accountID {
		return true
	}

	return d.AgentID != nil && *d.AgentID == accountID
}
