// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePropertyInput defines the data required to list a property. The
// caller becomes the owner; status always starts at DRAFT.
type CreatePropertyInput struct {
	Title       string
	Description string
	Type        entity.PropertyType

	Address   string
	City      string
	State     string
	Landmark  string
	Latitude  *float64
	Longitude *float64

	Bedrooms  int
	Bathrooms int
	Price     float64
	Pros      string
	Cons      string

	IsFurnished bool
	HasParking  bool
	PetsAllowed bool

	AvailableFrom *time.Time
	MoveOutDate   *time.Time

	// CommissionPercentage defaults to 10 when nil.
	CommissionPercentage *float64
}

// UpdatePropertyInput defines owner-settable property fields. Nil means
// "leave unchanged". Verification state and the view counter are
// server-controlled and absent on purpose.
type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Type        *entity.PropertyType
	Status      *entity.PropertyStatus

	Address   *string
	City      *string
	State     *string
	Landmark  *string
	Latitude  *float64
	Longitude *float64

	Bedrooms  *int
	Bathrooms *int
	Price     *float64
	Pros      *string
	Cons      *string

	IsFurnished *bool
	HasParking  *bool
	PetsAllowed *bool

	AvailableFrom *time.Time
	MoveOutDate   *time.Time

	CommissionPercentage *float64
}

// ListPropertiesInput carries catalog search parameters.
type ListPropertiesInput struct {
	Type        entity.PropertyType
	City        string
	State       string
	Status      entity.PropertyStatus
	IsVerified  *bool
	IsFurnished *bool
	HasParking  *bool
	PetsAllowed *bool
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	OwnerID     *uuid.UUID

	// Near filters by great-circle distance from a point.
	Near *NearFilter

	Limit  int
	Offset int
}

// NearFilter restricts results to listings within RadiusKm of a coordinate.
type NearFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// AddPropertyImageInput attaches an image to a listing.
type AddPropertyImageInput struct {
	PropertyID uuid.UUID
	URI        string
	Caption    string
	IsPrimary  bool
	SortOrder  int
}

// PropertyUsecase defines the interface for property catalog operations.
type PropertyUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, input *CreatePropertyInput) (*entity.Property, error)

	// Get retrieves a listing visible to the caller. Draft listings are
	// visible only to their owner; out-of-scope lookups read as not found.
	Get(ctx context.Context, callerID, propertyID uuid.UUID) (*entity.Property, error)

	List(ctx context.Context, callerID uuid.UUID, input *ListPropertiesInput) ([]*entity.Property, error)
	Update(ctx context.Context, callerID, propertyID uuid.UUID, input *UpdatePropertyInput) (*entity.Property, error)
	Delete(ctx context.Context, callerID, propertyID uuid.UUID) error

	// IncrementViews atomically bumps the view counter and returns the
	// new value.
	IncrementViews(ctx context.Context, callerID, propertyID uuid.UUID) (int, error)

	// Verify is the privileged listing verification operation.
	Verify(ctx context.Context, callerID, propertyID uuid.UUID) (*entity.Property, error)

	// ShareQR renders a PNG QR code that encodes a shareable listing reference.
	ShareQR(ctx context.Context, callerID, propertyID uuid.UUID) ([]byte, error)

	AddImage(ctx context.Context, callerID uuid.UUID, input *AddPropertyImageInput) (*entity.PropertyImage, error)
	ListImages(ctx context.Context, callerID, propertyID uuid.UUID) ([]*entity.PropertyImage, error)
	SetPrimaryImage(ctx context.Context, callerID, propertyID, imageID uuid.UUID) error
	DeleteImage(ctx context.Context, callerID, propertyID, imageID uuid.UUID) error
}
