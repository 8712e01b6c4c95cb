package model

import (
	"time"

	"github.com/google/uuid"
)

// DealModel is the GORM-specific struct for the 'deals' table.
// The commission-sum invariant (owner + agent == total) is validated by the
// use case layer; the schema only guards non-negativity.
type DealModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PropertyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TenantID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	AgentID    *uuid.UUID `gorm:"type:uuid;index"`

	RentAmount       float64 `gorm:"type:decimal(12,2);not null"`
	CommissionAmount float64 `gorm:"type:decimal(12,2);not null"`
	OwnerCommission  float64 `gorm:"type:decimal(12,2);not null"`
	AgentCommission  float64 `gorm:"type:decimal(12,2);not null"`

	Status string `gorm:"type:varchar(20);not null;default:'INITIATED'"`

	LeaseStartDate *time.Time `gorm:"type:date"`
	LeaseEndDate   *time.Time `gorm:"type:date"`

	PaymentReference string     `gorm:"type:varchar(255)"`
	PaidAt           *time.Time `gorm:""`

	CreatedAt time.Time
	UpdatedAt time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}
