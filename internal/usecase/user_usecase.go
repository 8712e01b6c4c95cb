// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Role        entity.Role
	PhoneNumber string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries the raw refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// UpdateProfileInput defines the client-settable profile fields. Counters,
// rating, and verification state are server-controlled and absent on purpose.
type UpdateProfileInput struct {
	Role                 *entity.Role
	PhoneNumber          *string
	Bio                  *string
	ProfilePicture       *string
	VerificationDocument *string
}

// ReviewVerificationInput is the privileged decision on a submitted
// identity document.
type ReviewVerificationInput struct {
	AccountID uuid.UUID
	Status    entity.VerificationStatus
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for identity and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the caller's own account with profile.
	Me(ctx context.Context, callerID uuid.UUID) (*entity.Account, error)

	// GetAccount returns the public view of any account.
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// UpdateProfile applies client-settable profile changes to the caller.
	UpdateProfile(ctx context.Context, callerID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// ReviewVerification is the privileged operation that settles a
	// profile's verification status and recomputes the mirror flag.
	ReviewVerification(ctx context.Context, callerID uuid.UUID, input *ReviewVerificationInput) (*entity.Profile, error)
}
