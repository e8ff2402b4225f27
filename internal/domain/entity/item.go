package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultItemImage is used when an item is created without an image.
const DefaultItemImage = "https://via.placeholder.com/300x300?text=No+Image"

// Item is a catalog product. Cart operations only ever read it.
type Item struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// HasStock reports whether the item can cover the requested quantity.
func (i *Item) HasStock(quantity int) bool {
	return i.Stock >= quantity
}

// ItemSort names a catalog listing order.
type ItemSort string

const (
	ItemSortNewest    ItemSort = ""
	ItemSortPriceLow  ItemSort = "price-low"
	ItemSortPriceHigh ItemSort = "price-high"
	ItemSortName      ItemSort = "name"
	ItemSortRating    ItemSort = "rating"
)

// ItemFilter narrows a catalog listing. Zero values mean "no constraint".
type ItemFilter struct {
	Category Category
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
}

// ItemPage is one page of a catalog listing.
type ItemPage struct {
	Items       []*Item `json:"items"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	Total       int64   `json:"total"`
}
