// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification record.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListForAccount retrieves an account's notifications, newest first.
	ListForAccount(ctx context.Context, accountID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead sets the read flag and timestamp; idempotent on the
	// read_at column like messages.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
