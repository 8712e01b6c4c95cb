// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for saved-property persistence.
var (
	// ErrSavedPropertyNotFound is returned when a bookmark is not found.
	ErrSavedPropertyNotFound = errors.New("saved property not found")
	// ErrDuplicateSavedProperty is returned when the storage unique index
	// on (account, property) is violated.
	ErrDuplicateSavedProperty = errors.New("property already saved by this account")
)

// SavedPropertyRepository defines the interface for bookmark persistence.
// The (account, property) pair is unique at the storage level, so Create is
// race-safe under concurrent duplicate attempts.
type SavedPropertyRepository interface {
	// Create persists a new bookmark; returns ErrDuplicateSavedProperty
	// on a unique-index violation.
	Create(ctx context.Context, saved *entity.SavedProperty) error

	// FindByID retrieves a bookmark by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedProperty, error)

	// ListForAccount retrieves an account's bookmarks, newest first.
	ListForAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.SavedProperty, error)

	// Delete removes a bookmark.
	Delete(ctx context.Context, id uuid.UUID) error
}
