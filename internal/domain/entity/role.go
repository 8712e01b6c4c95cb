// Package entity contains the core business objects of the project.
package entity

// Role represents the marketplace role attached to a profile.
type Role string

const (
	// RoleTenant indicates an account that rents properties.
	RoleTenant Role = "TENANT"
	// RoleAgent indicates an account that brokers inspections and deals.
	RoleAgent Role = "AGENT"
	// RoleBoth indicates an account acting as tenant and agent.
	RoleBoth Role = "BOTH"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleAgent, RoleBoth:
		return true
	default:
		return false
	}
}

// CanAct reports whether this role includes the capabilities of other.
// RoleBoth satisfies either side.
func (r Role) CanAct(other Role) bool {
	return r == other || r == RoleBoth
}

// VerificationStatus represents the identity verification state of a profile.
type VerificationStatus string

const (
	// VerificationPending indicates the profile has not been reviewed yet.
	VerificationPending VerificationStatus = "PENDING"
	// VerificationVerified indicates the profile passed review.
	VerificationVerified VerificationStatus = "VERIFIED"
	// VerificationRejected indicates the profile failed review.
	VerificationRejected VerificationStatus = "REJECTED"
)

// String returns the string representation of the VerificationStatus.
func (s VerificationStatus) String() string {
	return string(s)
}

// IsValid checks if the VerificationStatus is a valid value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}
