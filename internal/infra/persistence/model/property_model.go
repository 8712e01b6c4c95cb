package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel is the GORM-specific struct for the 'properties' table.
type PropertyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Status      string    `gorm:"type:varchar(10);not null;default:'DRAFT';index"`

	Address   string   `gorm:"type:varchar(500);not null"`
	City      string   `gorm:"type:varchar(100);not null;index"`
	State     string   `gorm:"type:varchar(100);not null"`
	Landmark  string   `gorm:"type:varchar(255)"`
	Latitude  *float64 `gorm:"type:decimal(9,6)"`
	Longitude *float64 `gorm:"type:decimal(9,6)"`

	Bedrooms  int     `gorm:"not null;default:0"`
	Bathrooms int     `gorm:"not null;default:0"`
	Price     float64 `gorm:"type:decimal(12,2);not null"`
	Pros      string  `gorm:"type:text"`
	Cons      string  `gorm:"type:text"`

	IsFurnished bool `gorm:"not null;default:false"`
	HasParking  bool `gorm:"not null;default:false"`
	PetsAllowed bool `gorm:"not null;default:false"`

	AvailableFrom *time.Time `gorm:"type:date"`
	MoveOutDate   *time.Time `gorm:"type:date"`

	CommissionPercentage float64 `gorm:"type:decimal(5,2);not null;default:10.00"`
	ViewsCount           int     `gorm:"not null;default:0"`

	IsVerified bool       `gorm:"not null;default:false"`
	VerifiedAt *time.Time `gorm:""`
	VerifiedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Images []*PropertyImageModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}

// PropertyImageModel is the GORM-specific struct for the 'property_images' table.
type PropertyImageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	URI        string    `gorm:"type:text;not null"`
	Caption    string    `gorm:"type:varchar(255)"`
	IsPrimary  bool      `gorm:"not null;default:false"`
	SortOrder  int       `gorm:"not null;default:0"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyImageModel) TableName() string {
	return "property_images"
}
