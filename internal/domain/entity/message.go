package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a directed message between two accounts, optionally anchored to
// a property. There is no transport component; delivery is retrieval.
type Message struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	PropertyID  *uuid.UUID // Optional context; nulled if the property is deleted.

	Content    string
	Attachment string // Opaque storage URI, may be empty.

	IsRead bool
	ReadAt *time.Time // Set exactly once, on first read by the recipient.

	CreatedAt time.Time
}

// InvolvesAccount reports whether the account is the sender or the recipient.
func (m *Message) InvolvesAccount(accountID uuid.UUID) bool {
	return m.SenderID == accountID || m.RecipientID == accountID
}
