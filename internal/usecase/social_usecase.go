// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Review DTOs ---

// CreateReviewInput defines the data for a new review. Exactly one of
// PropertyID and ReviewedUserID must be set, matching Type.
type CreateReviewInput struct {
	Type           entity.ReviewType
	PropertyID     *uuid.UUID
	ReviewedUserID *uuid.UUID

	Rating  int
	Title   string
	Comment string
}

// UpdateReviewInput carries reviewer-settable review fields.
type UpdateReviewInput struct {
	Rating  *int
	Title   *string
	Comment *string
}

// FlagReviewInput is the privileged moderation action on a review.
type FlagReviewInput struct {
	Reason string
}

// ListReviewsInput carries review list parameters.
type ListReviewsInput struct {
	Type           entity.ReviewType
	PropertyID     *uuid.UUID
	ReviewedUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	IsVerifiedStay *bool

	Limit  int
	Offset int
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	Get(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, input *ListReviewsInput) ([]*entity.Review, error)
	Update(ctx context.Context, callerID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, callerID, reviewID uuid.UUID) error

	// Flag is the privileged moderation operation.
	Flag(ctx context.Context, callerID, reviewID uuid.UUID, input *FlagReviewInput) (*entity.Review, error)
}

// --- Message DTOs ---

// SendMessageInput defines the data for a new message. The caller becomes
// the sender.
type SendMessageInput struct {
	RecipientID uuid.UUID
	PropertyID  *uuid.UUID
	Content     string
	Attachment  string
}

// MessageUsecase defines the interface for direct messaging.
type MessageUsecase interface {
	Send(ctx context.Context, callerID uuid.UUID, input *SendMessageInput) (*entity.Message, error)

	// Get retrieves a message the caller sent or received; anything else
	// reads as not found.
	Get(ctx context.Context, callerID, messageID uuid.UUID) (*entity.Message, error)

	List(ctx context.Context, callerID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkRead is recipient-only and idempotent; ReadAt is set once.
	MarkRead(ctx context.Context, callerID, messageID uuid.UUID) (*entity.Message, error)
}

// NotificationUsecase defines the interface for reading the caller's
// notification feed. Records are created internally at emission points.
type NotificationUsecase interface {
	List(ctx context.Context, callerID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, callerID, notificationID uuid.UUID) (*entity.Notification, error)
}

// SavedPropertyUsecase defines the interface for listing bookmarks.
type SavedPropertyUsecase interface {
	Save(ctx context.Context, callerID, propertyID uuid.UUID) (*entity.SavedProperty, error)
	List(ctx context.Context, callerID uuid.UUID, limit, offset int) ([]*entity.SavedProperty, error)
	Unsave(ctx context.Context, callerID, savedID uuid.UUID) error
}
