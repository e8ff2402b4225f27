package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one (item, quantity, captured price) entry of a cart.
// Price is the unit price recorded at the most recent add or update of the line.
type CartLine struct {
	ItemID   uuid.UUID       `json:"itemId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Subtotal returns quantity × price.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartLines is a set of lines, unique by item.
type CartLines []CartLine

// Find returns the index of the line for itemID, or -1.
func (ls CartLines) Find(itemID uuid.UUID) int {
	for i := range ls {
		if ls[i].ItemID == itemID {
			return i
		}
	}

	return -1
}

// Add increments an existing line or appends a new one. The line price is overwritten with price.
func (ls CartLines) Add(itemID uuid.UUID, quantity int, price decimal.Decimal) CartLines {
	if idx := ls.Find(itemID); idx >= 0 {
		ls[idx].Quantity += quantity
		ls[idx].Price = price

		return ls
	}

	return append(ls, CartLine{ItemID: itemID, Quantity: quantity, Price: price})
}

// Set replaces quantity and price of an existing line. It reports false when the line is absent.
func (ls CartLines) Set(itemID uuid.UUID, quantity int, price decimal.Decimal) bool {
	idx := ls.Find(itemID)
	if idx < 0 {
		return false
	}
	ls[idx].Quantity = quantity
	ls[idx].Price = price

	return true
}

// Remove drops the line for itemID if present.
func (ls CartLines) Remove(itemID uuid.UUID) CartLines {
	idx := ls.Find(itemID)
	if idx < 0 {
		return ls
	}

	return append(ls[:idx], ls[idx+1:]...)
}

// Total returns Σ(quantity × price).
func (ls CartLines) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		total = total.Add(l.Subtotal())
	}

	return total
}

// Count returns Σ quantity.
func (ls CartLines) Count() int {
	count := 0
	for _, l := range ls {
		count += l.Quantity
	}

	return count
}

// ItemIDs returns the referenced item ids in line order.
func (ls CartLines) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, l.ItemID)
	}

	return ids
}

// Cart is the server-side cart owned by exactly one user.
// The total is always derived from Lines and is never set on its own.
type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Lines     CartLines `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEmptyCart returns an unsaved, empty cart for userID.
func NewEmptyCart(userID uuid.UUID) *Cart {
	return &Cart{
		UserID: userID,
		Lines:  CartLines{},
	}
}

// TotalAmount returns Σ(quantity × price) over all lines.
func (c *Cart) TotalAmount() decimal.Decimal {
	return c.Lines.Total()
}

// Count returns the sum of line quantities.
func (c *Cart) Count() int {
	return c.Lines.Count()
}

// AddItem increments or appends the line for itemID and captures price.
func (c *Cart) AddItem(itemID uuid.UUID, quantity int, price decimal.Decimal) {
	c.Lines = c.Lines.Add(itemID, quantity, price)
}

// SetQuantity sets the quantity of an existing line and recaptures price.
func (c *Cart) SetQuantity(itemID uuid.UUID, quantity int, price decimal.Decimal) bool {
	return c.Lines.Set(itemID, quantity, price)
}

// RemoveItem drops the line for itemID; absent lines are ignored.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	c.Lines = c.Lines.Remove(itemID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = CartLines{}
}

// LineStatus tags whether a cart line's item reference could be resolved.
type LineStatus string

const (
	// LineResolved means the catalog still has the item.
	LineResolved LineStatus = "resolved"
	// LineStale means the item was deleted from the catalog after it was added.
	LineStale LineStatus = "stale"
)

// ResolvedLine is a cart line joined with its catalog item.
type ResolvedLine struct {
	ItemID   uuid.UUID       `json:"itemId"`
	Item     *Item           `json:"item"`
	Status   LineStatus      `json:"status"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartView is the denormalized cart returned to callers.
type CartView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Items       []ResolvedLine  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ResolveCart joins cart lines with items. Lines whose item is missing from items are marked stale.
func ResolveCart(cart *Cart, items map[uuid.UUID]*Item) *CartView {
	view := &CartView{
		ID:          cart.ID,
		UserID:      cart.UserID,
		Items:       make([]ResolvedLine, 0, len(cart.Lines)),
		TotalAmount: cart.TotalAmount(),
		Count:       cart.Count(),
		UpdatedAt:   cart.UpdatedAt,
	}

	for _, line := range cart.Lines {
		resolved := ResolvedLine{
			ItemID:   line.ItemID,
			Status:   LineStale,
			Quantity: line.Quantity,
			Price:    line.Price,
			Subtotal: line.Subtotal(),
		}
		if item, ok := items[line.ItemID]; ok && item != nil {
			resolved.Item = item
			resolved.Status = LineResolved
		}
		view.Items = append(view.Items, resolved)
	}

	return view
}

// GuestCart is the unauthenticated cart keyed by an opaque guest id.
// Lines added here carry a zero price until the cart is merged.
type GuestCart struct {
	ID        string    `json:"-"`
	Lines     CartLines `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewGuestCart returns an empty guest cart for id.
func NewGuestCart(id string) *GuestCart {
	return &GuestCart{ID: id, Lines: CartLines{}}
}

// TotalAmount returns Σ(quantity × price); zero while prices are unresolved.
func (g *GuestCart) TotalAmount() decimal.Decimal {
	return g.Lines.Total()
}

// Count returns the sum of line quantities.
func (g *GuestCart) Count() int {
	return g.Lines.Count()
}
