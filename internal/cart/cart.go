// Package cart holds the pending sale a seller builds on the sell page:
// an insertion-ordered list of product lines, unique per product, with the
// total always derived and never stored.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

// Entry is one line of the pending sale. Product is a value copied from
// the catalog snapshot; the cart never writes through to product data.
type Entry struct {
	Product  domain.Product
	Quantity int
}

func (e Entry) Subtotal() decimal.Decimal {
	return e.Product.SalePrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is not safe for concurrent use. All mutations happen on the single
// UI event path; create a fresh instance on every sell-page entry so an
// abandoned checkout cannot leak into the next visit.
type Cart struct {
	entries []Entry
	index   map[string]int // product id -> position in entries

	revalidateOnMerge bool
}

// Option configures cart policy at construction time.
type Option func(*Cart)

// WithMergeRevalidation makes AddOrMerge check the cumulative quantity of
// a merged line against snapshot stock. The historical behavior only
// checked the increment, so two valid adds could overshoot stock and get
// caught at submission instead; this knob closes that gap locally.
func WithMergeRevalidation() Option {
	return func(c *Cart) { c.revalidateOnMerge = true }
}

func New(opts ...Option) *Cart {
	c := &Cart{index: make(map[string]int)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddOrMerge puts quantity units of p into the cart. A repeated product
// increments its existing line rather than creating a duplicate; a new
// product is appended, preserving insertion order. On ErrInvalidQuantity
// the cart is left exactly as it was.
func (c *Cart) AddOrMerge(p domain.Product, quantity int) error {
	if quantity <= 0 || quantity > p.CurrentStock {
		return ErrInvalidQuantity
	}

	if i, ok := c.index[p.ID]; ok {
		if c.revalidateOnMerge && c.entries[i].Quantity+quantity > p.CurrentStock {
			return ErrInvalidQuantity
		}
		c.entries[i].Quantity += quantity
		return nil
	}

	c.index[p.ID] = len(c.entries)
	c.entries = append(c.entries, Entry{Product: p, Quantity: quantity})
	return nil
}

// Remove drops the line for productID. Removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(productID string) {
	i, ok := c.index[productID]
	if !ok {
		return
	}

	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].Product.ID] = j
	}
}

// Clear empties the cart, used after a successful checkout.
func (c *Cart) Clear() {
	c.entries = nil
	c.index = make(map[string]int)
}

// Total recomputes the running total from scratch on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// Entries returns a copy of the current lines in insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) Empty() bool {
	return len(c.entries) == 0
}

// Items projects the cart to the minimal shape the sales API accepts.
// Prices never leave the client; the server owns them.
func (c *Cart) Items() []domain.SaleItemInput {
	items := make([]domain.SaleItemInput, len(c.entries))
	for i, e := range c.entries {
		items[i] = domain.SaleItemInput{
			ProductID: e.Product.ID,
			Quantity:  e.Quantity,
		}
	}
	return items
}
