package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedProperty is a bookmark joining an account to a property, unique per
// (account, property) pair.
type SavedProperty struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}
