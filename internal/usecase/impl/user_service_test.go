package impl

import (
	"context"
	"testing"
	"time"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	mockrepo "inndoor/internal/mocks/repository"
	mockservice "inndoor/internal/mocks/service"
	"inndoor/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	txManager        *mockrepo.MockTransactionManager
	accountRepo      *mockrepo.MockAccountRepository
	refreshTokenRepo *mockrepo.MockRefreshTokenRepository
	hasher           *mockservice.MockPasswordHasher
	tokenService     *mockservice.MockTokenService
	factory          *mockrepo.MockRepositoryFactory
}

func createTestUserService(t *testing.T, adminIDs ...string) (usecase.UserUsecase, *userServiceFixtures) {
	t.Helper()

	fx := &userServiceFixtures{
		txManager:        mockrepo.NewMockTransactionManager(t),
		accountRepo:      mockrepo.NewMockAccountRepository(t),
		refreshTokenRepo: mockrepo.NewMockRefreshTokenRepository(t),
		hasher:           mockservice.NewMockPasswordHasher(t),
		tokenService:     mockservice.NewMockTokenService(t),
		factory:          mockrepo.NewMockRepositoryFactory(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:        fx.txManager,
		AccountRepo:      fx.accountRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Config:           newTestConfig(adminIDs...),
		Logger:           newDiscardLogger(),
	})

	return svc, fx
}

func testAccount(role entity.Role) *entity.Account {
	id := uuid.New()

	return &entity.Account{
		ID:           id,
		Username:     "margaret",
		Email:        "margaret@example.com",
		PasswordHash: "$2a$12$hash",
		Profile: &entity.Profile{
			AccountID:          id,
			Role:               role,
			VerificationStatus: entity.VerificationPending,
		},
	}
}

func TestUserService_Register_Success(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	accountID := uuid.New()

	fx.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	fx.factory.On("NewAccountRepository").Return(fx.accountRepo)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = accountID
		}).
		Return(nil)
	fx.accountRepo.On("SaveProfile", ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(fx.factory)
		}).
		Return(nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Username:    "margaret",
		Email:       "margaret@example.com",
		Password:    "s3cret-pass",
		Role:        entity.RoleTenant,
		PhoneNumber: "08030000000",
	})

	require.NoError(t, err)
	require.NotNil(t, output.Account.Profile)
	assert.Equal(t, accountID, output.Account.ID)
	assert.Equal(t, "hashed", output.Account.PasswordHash)
	assert.Equal(t, entity.RoleTenant, output.Account.Profile.Role)
	assert.Equal(t, entity.VerificationPending, output.Account.Profile.VerificationStatus)
	assert.False(t, output.Account.Profile.IsVerified)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestUserService(t)

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		Username: "margaret",
		Email:    "margaret@example.com",
		Password: "s3cret-pass",
		Role:     entity.Role("LANDLORD"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	account := testAccount(entity.RoleAgent)

	fx.accountRepo.On("FindByUsername", ctx, "margaret").Return(account, nil)
	fx.hasher.On("Check", "s3cret-pass", account.PasswordHash).Return(true)
	fx.tokenService.On("GenerateTokens", account.ID, []string{"AGENT"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.On("GetRefreshTokenDuration").Return(24 * time.Hour)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*entity.RefreshToken)
			assert.Equal(t, account.ID, record.AccountID)
			assert.Equal(t, hashToken("refresh-token"), record.TokenHash)
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), record.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Username: "margaret", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, account, output.Account)
}

func TestUserService_Login_EmailFallback(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	account := testAccount(entity.RoleTenant)

	fx.accountRepo.On("FindByUsername", ctx, "margaret@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "margaret@example.com").Return(account, nil)
	fx.hasher.On("Check", "s3cret-pass", account.PasswordHash).Return(true)
	fx.tokenService.On("GenerateTokens", account.ID, []string{"TENANT"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.On("GetRefreshTokenDuration").Return(24 * time.Hour)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Username: "margaret@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	account := testAccount(entity.RoleTenant)

	fx.accountRepo.On("FindByUsername", ctx, "margaret").Return(account, nil)
	fx.hasher.On("Check", "wrong", account.PasswordHash).Return(false)

	_, err := svc.Login(ctx, &usecase.LoginInput{Username: "margaret", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	fx.accountRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	account := testAccount(entity.RoleTenant)
	oldHash := hashToken("old-refresh")
	record := &entity.RefreshToken{
		AccountID: account.ID,
		TokenHash: oldHash,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.On("ValidateToken", "old-refresh", "test-refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.refreshTokenRepo.On("FindByHash", ctx, oldHash).Return(record, nil)
	fx.accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fx.refreshTokenRepo.On("DeleteByHash", ctx, oldHash).Return(nil)
	fx.tokenService.On("GenerateTokens", account.ID, []string{"TENANT"}).
		Return("new-access", "new-refresh", nil)
	fx.tokenService.On("GetRefreshTokenDuration").Return(24 * time.Hour)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*entity.RefreshToken)
			assert.Equal(t, hashToken("new-refresh"), created.TokenHash)
		}).
		Return(nil)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_Refresh_ExpiredRecord(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	oldHash := hashToken("stale-refresh")
	record := &entity.RefreshToken{
		AccountID: uuid.New(),
		TokenHash: oldHash,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.On("ValidateToken", "stale-refresh", "test-refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.refreshTokenRepo.On("FindByHash", ctx, oldHash).Return(record, nil)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale-refresh"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_BadSignature(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	fx.tokenService.On("ValidateToken", "forged", "test-refresh-secret").
		Return(nil, jwt.ErrSignatureInvalid)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "forged"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_UnknownHash(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	fx.tokenService.On("ValidateToken", "revoked", "test-refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.refreshTokenRepo.On("FindByHash", ctx, hashToken("revoked")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "revoked"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	fx.refreshTokenRepo.On("DeleteByHash", ctx, hashToken("gone")).
		Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, svc.Logout(ctx, "gone"))
}

func TestUserService_UpdateProfile_NewDocumentRestartsReview(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestUserService(t)

	callerID := uuid.New()
	profile := &entity.Profile{
		AccountID:          callerID,
		Role:               entity.RoleTenant,
		VerificationStatus: entity.VerificationVerified,
		IsVerified:         true,
	}

	fx.accountRepo.On("FindProfile", ctx, callerID).Return(profile, nil)
	fx.accountRepo.On("SaveProfile", ctx, profile).Return(nil)

	document := "https://cdn.example.com/docs/id-card.pdf"
	updated, err := svc.UpdateProfile(ctx, callerID, &usecase.UpdateProfileInput{
		VerificationDocument: &document,
	})

	require.NoError(t, err)
	assert.Equal(t, document, updated.VerificationDocument)
	assert.Equal(t, entity.VerificationPending, updated.VerificationStatus)
	assert.False(t, updated.IsVerified)
}

func TestUserService_ReviewVerification_RequiresPrivilege(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestUserService(t)

	_, err := svc.ReviewVerification(ctx, uuid.New(), &usecase.ReviewVerificationInput{
		AccountID: uuid.New(),
		Status:    entity.VerificationVerified,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPrivilegedOperation)
}

func TestUserService_ReviewVerification_Approves(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	svc, fx := createTestUserService(t, adminID.String())

	accountID := uuid.New()
	profile := &entity.Profile{
		AccountID:          accountID,
		Role:               entity.RoleAgent,
		VerificationStatus: entity.VerificationPending,
	}

	fx.accountRepo.On("FindProfile", ctx, accountID).Return(profile, nil)
	fx.accountRepo.On("SaveProfile", ctx, profile).Return(nil)

	updated, err := svc.ReviewVerification(ctx, adminID, &usecase.ReviewVerificationInput{
		AccountID: accountID,
		Status:    entity.VerificationVerified,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationVerified, updated.VerificationStatus)
	assert.True(t, updated.IsVerified)
}
