package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(150);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile       *ProfileModel       `gorm:"foreignKey:AccountID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ProfileModel mirrors the 'user_profiles' table. AccountID references accounts.id (UUID).
type ProfileModel struct {
	AccountID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role                 string    `gorm:"type:varchar(10);not null;default:'TENANT'"`
	PhoneNumber          string    `gorm:"type:varchar(20)"`
	Bio                  string    `gorm:"type:text"`
	ProfilePicture       string    `gorm:"type:text"`
	VerificationStatus   string    `gorm:"type:varchar(10);not null;default:'PENDING'"`
	IsVerified           bool      `gorm:"not null;default:false"`
	VerificationDocument string    `gorm:"type:text"`
	TotalListings        int       `gorm:"not null;default:0"`
	TotalInspections     int       `gorm:"not null;default:0"`
	Rating               float64   `gorm:"type:decimal(3,2);not null;default:0.00"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
