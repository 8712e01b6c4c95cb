// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for property persistence.
var (
	// ErrPropertyNotFound is returned when a property is not found.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrPropertyImageNotFound is returned when a property image is not found.
	ErrPropertyImageNotFound = errors.New("property image not found")
)

// PropertyFilter carries the list/search parameters for the catalog.
// Zero values mean "no constraint".
type PropertyFilter struct {
	Type        entity.PropertyType
	City        string
	State       string
	Status      entity.PropertyStatus
	IsVerified  *bool
	IsFurnished *bool
	HasParking  *bool
	PetsAllowed *bool
	// Search is matched against title, description, address, and landmark.
	Search   string
	MinPrice *float64
	MaxPrice *float64
	// OwnerID restricts results to one lister's properties.
	OwnerID *uuid.UUID

	Limit  int
	Offset int
}

// PropertyRepository defines the interface for property catalog persistence.
type PropertyRepository interface {
	// Create persists a new property listing.
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a property by its unique ID, preloading images.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// List retrieves properties matching the filter, newest first.
	List(ctx context.Context, filter *PropertyFilter) ([]*entity.Property, error)

	// Update persists changes to an existing property.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property. Images, inspections, deals, and reviews
	// referencing it cascade; message and notification references are
	// nulled by the storage schema.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter with a single atomic SQL
	// expression and returns the new value. Read-then-write is not
	// acceptable here; concurrent bumps must not be lost.
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)

	// AddImage attaches an image record to a property.
	AddImage(ctx context.Context, image *entity.PropertyImage) error

	// FindImage retrieves a single image by ID.
	FindImage(ctx context.Context, imageID uuid.UUID) (*entity.PropertyImage, error)

	// ListImages retrieves a property's images ordered by sort order.
	ListImages(ctx context.Context, propertyID uuid.UUID) ([]*entity.PropertyImage, error)

	// SetPrimaryImage marks the given image primary and demotes any other
	// primary image of the same property within one transaction.
	SetPrimaryImage(ctx context.Context, propertyID, imageID uuid.UUID) error

	// DeleteImage removes an image record.
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
}
