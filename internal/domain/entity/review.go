package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewType distinguishes the two mutually exclusive review targets.
type ReviewType string

const (
	ReviewTypeProperty ReviewType = "PROPERTY"
	ReviewTypeUser     ReviewType = "USER"
)

// String returns the string representation of the ReviewType.
func (t ReviewType) String() string {
	return string(t)
}

// IsValid checks if the ReviewType is a valid value.
func (t ReviewType) IsValid() bool {
	switch t {
	case ReviewTypeProperty, ReviewTypeUser:
		return true
	default:
		return false
	}
}

// Review is either a property review or a user review; exactly one of
// PropertyID and ReviewedUserID is set. A reviewer may leave at most one
// review per distinct property and at most one per distinct reviewed user,
// enforced by storage-level unique indexes.
type Review struct {
	ID             uuid.UUID
	ReviewerID     uuid.UUID
	Type           ReviewType
	PropertyID     *uuid.UUID
	ReviewedUserID *uuid.UUID

	Rating  int // Integer in [1, 5].
	Title   string
	Comment string

	IsVerifiedStay bool

	// Moderation fields, settable only by the privileged flag operation.
	IsFlagged  bool
	FlagReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasExactlyOneTarget reports whether the review targets exactly one of a
// property or a user, matching its declared type.
func (r *Review) HasExactlyOneTarget() bool {
	switch r.Type {
	case ReviewTypeProperty:
		return r.PropertyID != nil && r.ReviewedUserID == nil
	case ReviewTypeUser:
		return r.ReviewedUserID != nil && r.PropertyID == nil
	default:
		return false
	}
}
