package postgres

import (
	"context"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByID retrieves a single account by its unique ID, preloading the profile.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUsername retrieves a single account by its login handle.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("username = ?", username).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the storage.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// SaveProfile creates or replaces the profile attached to an account.
func (repo *accountRepository) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			UpdateAll: true,
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfile retrieves the profile attached to an account.
func (repo *accountRepository) FindProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// AdjustCounters atomically bumps the listing and inspection counters on a
// profile with a single UPDATE expression.
func (repo *accountRepository) AdjustCounters(ctx context.Context, accountID uuid.UUID, listingDelta, inspectionDelta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{
			"total_listings":    gorm.Expr("GREATEST(total_listings + ?, 0)", listingDelta),
			"total_inspections": gorm.Expr("GREATEST(total_inspections + ?, 0)", inspectionDelta),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust profile counters")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// toAccountDomain converts a GORM model to a domain entity.
func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:           accountM.ID,
		Username:     accountM.Username,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		CreatedAt:    accountM.CreatedAt,
		UpdatedAt:    accountM.UpdatedAt,
	}

	if accountM.Profile != nil {
		account.Profile = toProfileDomain(accountM.Profile)
	}

	return account
}

// fromAccountDomain converts a domain entity to a GORM model.
func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
	}
}

// toProfileDomain converts a GORM model to a domain entity.
func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		AccountID:            profileM.AccountID,
		Role:                 entity.Role(profileM.Role),
		PhoneNumber:          profileM.PhoneNumber,
		Bio:                  profileM.Bio,
		ProfilePicture:       profileM.ProfilePicture,
		VerificationStatus:   entity.VerificationStatus(profileM.VerificationStatus),
		IsVerified:           profileM.IsVerified,
		VerificationDocument: profileM.VerificationDocument,
		TotalListings:        profileM.TotalListings,
		TotalInspections:     profileM.TotalInspections,
		Rating:               profileM.Rating,
		CreatedAt:            profileM.CreatedAt,
		UpdatedAt:            profileM.UpdatedAt,
	}
}

// fromProfileDomain converts a domain entity to a GORM model.
func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		AccountID:            profile.AccountID,
		Role:                 profile.Role.String(),
		PhoneNumber:          profile.PhoneNumber,
		Bio:                  profile.Bio,
		ProfilePicture:       profile.ProfilePicture,
		VerificationStatus:   profile.VerificationStatus.String(),
		IsVerified:           profile.IsVerified,
		VerificationDocument: profile.VerificationDocument,
		TotalListings:        profile.TotalListings,
		TotalInspections:     profile.TotalInspections,
		Rating:               profile.Rating,
	}
}
