// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrProfileNotFound is returned when an account has no profile yet.
	ErrProfileNotFound = errors.New("profile not found")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID, preloading the profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its login handle.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// SaveProfile creates or replaces the profile attached to an account.
	SaveProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfile retrieves the profile attached to an account.
	FindProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)

	// AdjustCounters atomically bumps the system-maintained listing and
	// inspection counters on a profile. Deltas may be negative.
	AdjustCounters(ctx context.Context, accountID uuid.UUID, listingDelta, inspectionDelta int) error
}
