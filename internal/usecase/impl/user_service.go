// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"inndoor/config"
	deliverycontext "inndoor/internal/delivery/context"
	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/domain/service"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	privileges       *privilegeChecker
	refreshSecret    string
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		privileges:       newPrivilegeChecker(params.Config),
		refreshSecret:    params.Config.SecretKey.Refresh,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration",
		slog.String("username", input.Username),
		slog.String("email", input.Email),
	)

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid role")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := accountRepo.Create(ctx, account); err != nil {
			return err
		}

		profile := &entity.Profile{
			AccountID:          account.ID,
			Role:               input.Role,
			PhoneNumber:        input.PhoneNumber,
			VerificationStatus: entity.VerificationPending,
		}
		profile.SyncVerifiedFlag()

		if err := accountRepo.SaveProfile(ctx, profile); err != nil {
			return err
		}

		account.Profile = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.String("account_id", account.ID.String()))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		// Fall back to email login the way the original client does.
		account, err = srv.accountRepo.FindByEmail(ctx, input.Username)
	}
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.issueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.String("account_id", account.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Refresh rotates a valid refresh token into a new token pair. The old
// session record is replaced so a stolen token cannot be replayed.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken, srv.refreshSecret); err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := hashToken(input.RefreshToken)

	record, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	if time.Now().After(record.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	account, err := srv.accountRepo.FindByID(ctx, record.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load account for refresh")
	}

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(err, "failed to revoke rotated refresh token")
	}

	accessToken, refreshToken, err := srv.issueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes the presented refresh token, ending that session.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := hashToken(refreshToken)

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already revoked; logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// Me returns the caller's own account with profile.
func (srv *userService) Me(ctx context.Context, callerID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load own account")
	}

	return account, nil
}

// GetAccount returns the public view of any account.
func (srv *userService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// UpdateProfile applies client-settable profile changes to the caller.
// Counters, rating, and verification state never pass through here.
func (srv *userService) UpdateProfile(ctx context.Context, callerID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.accountRepo.FindProfile(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile for update")
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid role")
		}
		profile.Role = *input.Role
	}
	if input.PhoneNumber != nil {
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.ProfilePicture != nil {
		profile.ProfilePicture = *input.ProfilePicture
	}
	if input.VerificationDocument != nil {
		profile.VerificationDocument = *input.VerificationDocument
		// A fresh document restarts the review cycle.
		profile.VerificationStatus = entity.VerificationPending
	}

	profile.SyncVerifiedFlag()

	if err := srv.accountRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// ReviewVerification is the privileged operation that settles a profile's
// verification status.
func (srv *userService) ReviewVerification(ctx context.Context, callerID uuid.UUID, input *usecase.ReviewVerificationInput) (*entity.Profile, error) {
	if !srv.privileges.IsPrivileged(callerID) {
		return nil, domainerrors.ErrPrivilegedOperation
	}

	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid verification status")
	}

	profile, err := srv.accountRepo.FindProfile(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile for verification review")
	}

	profile.VerificationStatus = input.Status
	profile.SyncVerifiedFlag()

	if err := srv.accountRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Verification reviewed",
		slog.String("account_id", input.AccountID.String()),
		slog.String("status", input.Status.String()),
	)

	return profile, nil
}

// issueTokens generates a token pair and persists the refresh session.
func (srv *userService) issueTokens(ctx context.Context, account *entity.Account) (string, string, error) {
	roles := []string{}
	if account.Profile != nil {
		roles = append(roles, account.Profile.Role.String())
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, roles)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		AccountID: account.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, record); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// hashToken derives the storage form of a raw refresh token. Only the hash
// ever touches the database.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
