// Package checkout turns a cart into one persisted sale. The attempt is
// all-or-nothing from the client's point of view: on success the cart is
// cleared, on any failure it is left untouched so the seller can adjust
// and resubmit by hand. There are no automatic retries.
package checkout

import (
	"context"
	"sync/atomic"

	"github.com/pablonunez10/genex-store-inventory-front/internal/cart"
	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

// SalesCreator is the slice of the sales API this package needs.
// *api.Client satisfies it; tests use recording fakes.
type SalesCreator interface {
	CreateSale(ctx context.Context, items []domain.SaleItemInput) (domain.Sale, error)
}

type Submitter struct {
	sales SalesCreator

	// submitting guards against a second confirm click while the network
	// call is pending. Per attempt: idle -> submitting -> idle.
	submitting atomic.Bool
}

func NewSubmitter(sales SalesCreator) *Submitter {
	return &Submitter{sales: sales}
}

// Status reports whether an attempt is currently in flight.
func (s *Submitter) Status() Status {
	if s.submitting.Load() {
		return StatusSubmitting
	}
	return StatusIdle
}

// Submit sends the cart as one sale. An empty cart fails with ErrEmptyCart
// before any network interaction; a concurrent attempt fails with
// ErrAlreadySubmitting. The returned sale is the server's record, priced
// and stamped server-side.
func (s *Submitter) Submit(ctx context.Context, c *cart.Cart) (domain.Sale, error) {
	if c.Empty() {
		return domain.Sale{}, ErrEmptyCart
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return domain.Sale{}, ErrAlreadySubmitting
	}
	defer s.submitting.Store(false)

	sale, err := s.sales.CreateSale(ctx, c.Items())
	if err != nil {
		// Cart stays intact; the failure reason travels up for display.
		return domain.Sale{}, err
	}

	c.Clear()
	return sale, nil
}
