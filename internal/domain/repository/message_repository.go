// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for message persistence.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListForAccount retrieves messages where the account is sender or
	// recipient, newest first.
	ListForAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkRead sets the read flag and timestamp. The read_at column is
	// written only if it is still NULL, so repeated calls are idempotent.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
