package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemModel is the GORM-specific struct for the 'items' table.
type ItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:varchar(500);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Category    string          `gorm:"type:varchar(32);not null;index"`
	Image       string          `gorm:"type:text;not null"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	Rating      float64         `gorm:"type:numeric(2,1);not null;default:0;check:rating >= 0 AND rating <= 5"`
	Reviews     int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
