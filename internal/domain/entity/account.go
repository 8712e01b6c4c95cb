// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity in the system, representing a unique person
// on the platform. It carries only credentials and contact data; everything
// role-specific lives on the attached Profile.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Username     string    // Unique login handle.
	Email        string    // The account's primary contact email, also unique.
	PasswordHash string    // Bcrypt hash of the account credential. Never serialized.
	Profile      *Profile  // A pointer to the extended profile. Nil until the account completes onboarding.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Profile holds the marketplace-facing data attached to an Account.
type Profile struct {
	AccountID            uuid.UUID          // Foreign key that links this profile to its Account.
	Role                 Role               // Tenant, agent, or both.
	PhoneNumber          string             // Primary phone number.
	Bio                  string             // Free-form self description.
	ProfilePicture       string             // Opaque storage URI; the core never dereferences it.
	VerificationStatus   VerificationStatus // Pending, verified, or rejected.
	IsVerified           bool               // Boolean mirror of VerificationStatus; must always equal status == Verified.
	VerificationDocument string             // Opaque storage URI of the submitted identity document.
	TotalListings        int                // System-maintained counter of properties listed.
	TotalInspections     int                // System-maintained counter of inspections requested.
	Rating               float64            // Aggregate rating in [0.00, 5.00].
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SyncVerifiedFlag recomputes the IsVerified mirror from the status.
// Callers must invoke this after any change to VerificationStatus.
func (p *Profile) SyncVerifiedFlag() {
	p.IsVerified = p.VerificationStatus == VerificationVerified
}
