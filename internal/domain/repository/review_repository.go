// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the storage unique index on
	// (reviewer, property) or (reviewer, reviewed_user) is violated.
	ErrDuplicateReview = errors.New("duplicate review for this reviewer and target")
)

// ReviewFilter carries the list parameters for reviews.
type ReviewFilter struct {
	Type           entity.ReviewType
	PropertyID     *uuid.UUID
	ReviewedUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	IsVerifiedStay *bool

	Limit  int
	Offset int
}

// ReviewRepository defines the interface for review persistence.
// Uniqueness per (reviewer, target) is enforced by partial unique indexes in
// storage, so Create is race-safe under concurrent duplicate attempts.
type ReviewRepository interface {
	// Create persists a new review; returns ErrDuplicateReview on a
	// unique-index violation.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// List retrieves reviews matching the filter, newest first.
	List(ctx context.Context, filter *ReviewFilter) ([]*entity.Review, error)

	// Update persists changes to an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review record.
	Delete(ctx context.Context, id uuid.UUID) error
}
