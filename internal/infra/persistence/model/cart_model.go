package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineModel is one element of the carts.items JSON array.
type CartLineModel struct {
	ItemID   uuid.UUID       `json:"itemId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CartModel is the GORM-specific struct for the 'carts' table.
// Lines and their total live in the same row so a save is a single write.
type CartModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Items       []CartLineModel `gorm:"type:jsonb;not null;default:'[]';serializer:json"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
