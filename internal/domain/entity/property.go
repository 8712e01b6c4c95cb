package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType classifies the kind of dwelling being listed.
type PropertyType string

const (
	PropertyTypeApartment   PropertyType = "APARTMENT"
	PropertyTypeFlat        PropertyType = "FLAT"
	PropertyTypeDuplex      PropertyType = "DUPLEX"
	PropertyTypeRoom        PropertyType = "ROOM"
	PropertyTypeSelfContain PropertyType = "SELF_CONTAIN"
)

// String returns the string representation of the PropertyType.
func (t PropertyType) String() string {
	return string(t)
}

// IsValid checks if the PropertyType is a valid value.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeFlat, PropertyTypeDuplex, PropertyTypeRoom, PropertyTypeSelfContain:
		return true
	default:
		return false
	}
}

// PropertyStatus represents the listing lifecycle state of a property.
type PropertyStatus string

const (
	PropertyStatusDraft   PropertyStatus = "DRAFT"
	PropertyStatusActive  PropertyStatus = "ACTIVE"
	PropertyStatusRented  PropertyStatus = "RENTED"
	PropertyStatusExpired PropertyStatus = "EXPIRED"
)

// String returns the string representation of the PropertyStatus.
func (s PropertyStatus) String() string {
	return string(s)
}

// IsValid checks if the PropertyStatus is a valid value.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusDraft, PropertyStatusActive, PropertyStatusRented, PropertyStatusExpired:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the listing lifecycle allows moving from s
// to next. A rented or expired listing can be relisted as active.
func (s PropertyStatus) CanTransitionTo(next PropertyStatus) bool {
	switch s {
	case PropertyStatusDraft:
		return next == PropertyStatusActive
	case PropertyStatusActive:
		return next == PropertyStatusRented || next == PropertyStatusExpired
	case PropertyStatusRented, PropertyStatusExpired:
		return next == PropertyStatusActive
	default:
		return false
	}
}

// Property is a rental listing owned by exactly one Account. The owner is the
// original lister and may itself be a tenant subletting the place.
type Property struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // The account that listed the property.
	Title       string
	Description string
	Type        PropertyType
	Status      PropertyStatus // Defaults to Draft at creation.

	Address   string
	City      string
	State     string
	Landmark  string
	Latitude  *float64 // Optional geographic position.
	Longitude *float64

	Bedrooms  int
	Bathrooms int
	Price     float64 // Monthly rent, non-negative.
	Pros      string  // What's great about this place, in the lister's words.
	Cons      string  // Honest downsides.

	IsFurnished bool
	HasParking  bool
	PetsAllowed bool

	AvailableFrom *time.Time
	MoveOutDate   *time.Time

	// CommissionPercentage is the share of the rent charged as commission
	// when a deal closes, in [0, 100].
	CommissionPercentage float64

	// ViewsCount is incremented server-side only, never bound from input.
	ViewsCount int

	// Verification fields are settable only through the privileged verify
	// operation, never through a generic update.
	IsVerified bool
	VerifiedAt *time.Time
	VerifiedBy *uuid.UUID

	Images []*PropertyImage // Ordered by SortOrder.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PropertyImage is one image attached to a property listing. The image itself
// is stored elsewhere; URI is an opaque storage-location identifier.
type PropertyImage struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	URI        string
	Caption    string
	IsPrimary  bool // At most one image per property may be primary.
	SortOrder  int
	UploadedAt time.Time
}
