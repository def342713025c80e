package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablonunez10/genex-store-inventory-front/internal/api"
	"github.com/pablonunez10/genex-store-inventory-front/internal/cart"
	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

// recordingSales captures every CreateSale call so tests can assert on
// call counts and the exact items sent.
type recordingSales struct {
	mu      sync.Mutex
	calls   [][]domain.SaleItemInput
	sale    domain.Sale
	err     error
	release chan struct{} // non-nil blocks CreateSale until closed
}

func (r *recordingSales) CreateSale(_ context.Context, items []domain.SaleItemInput) (domain.Sale, error) {
	r.mu.Lock()
	r.calls = append(r.calls, items)
	release := r.release
	r.mu.Unlock()

	if release != nil {
		<-release
	}
	if r.err != nil {
		return domain.Sale{}, r.err
	}
	return r.sale, nil
}

func (r *recordingSales) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func widgetProduct() domain.Product {
	return domain.Product{
		ID:           "p1",
		Name:         "Widget",
		SKU:          "W1",
		SalePrice:    decimal.NewFromInt(1000),
		CurrentStock: 5,
		IsActive:     true,
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	sales := &recordingSales{}
	s := NewSubmitter(sales)

	_, err := s.Submit(context.Background(), cart.New())

	assert.ErrorIs(t, err, ErrEmptyCart)
	// The precondition fails before any network interaction
	assert.Equal(t, 0, sales.callCount())
}

func TestSubmit_Success(t *testing.T) {
	sales := &recordingSales{
		sale: domain.Sale{
			ID:          "s1",
			TotalAmount: decimal.NewFromInt(2000),
			Items: []domain.SaleItem{
				{ProductID: "p1", Quantity: 2},
			},
		},
	}
	s := NewSubmitter(sales)

	c := cart.New()
	require.NoError(t, c.AddOrMerge(widgetProduct(), 2))

	sale, err := s.Submit(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, "s1", sale.ID)
	assert.True(t, c.Empty(), "cart must be cleared on success")
	require.Equal(t, 1, sales.callCount())
	assert.Equal(t, []domain.SaleItemInput{{ProductID: "p1", Quantity: 2}}, sales.calls[0])
	assert.Equal(t, StatusIdle, s.Status())
}

func TestSubmit_RemoteRejection(t *testing.T) {
	sales := &recordingSales{
		err: &api.RemoteError{StatusCode: 409, Message: "Stock insuficiente"},
	}
	s := NewSubmitter(sales)

	c := cart.New()
	require.NoError(t, c.AddOrMerge(widgetProduct(), 2))

	_, err := s.Submit(context.Background(), c)
	require.Error(t, err)
	assert.Equal(t, "Stock insuficiente", err.Error())

	// Cart stays intact so the seller can adjust and retry by hand
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Entries()[0].Quantity)

	// Manual retry is possible: the submitter returned to idle
	assert.Equal(t, StatusIdle, s.Status())
	_, err = s.Submit(context.Background(), c)
	assert.Error(t, err)
	assert.Equal(t, 2, sales.callCount())
}

func TestSubmit_TransportFailurePreservesCart(t *testing.T) {
	sales := &recordingSales{
		err: &api.TransportError{Err: context.DeadlineExceeded},
	}
	s := NewSubmitter(sales)

	c := cart.New()
	require.NoError(t, c.AddOrMerge(widgetProduct(), 1))

	_, err := s.Submit(context.Background(), c)

	var transport *api.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, 1, c.Len())
}

func TestSubmit_AlreadySubmitting(t *testing.T) {
	release := make(chan struct{})
	sales := &recordingSales{release: release}
	s := NewSubmitter(sales)

	c := cart.New()
	require.NoError(t, c.AddOrMerge(widgetProduct(), 1))

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), c)
		done <- err
	}()

	// Wait for the first attempt to be in flight
	require.Eventually(t, func() bool {
		return s.Status() == StatusSubmitting
	}, time.Second, time.Millisecond)

	_, err := s.Submit(context.Background(), c)
	assert.ErrorIs(t, err, ErrAlreadySubmitting)
	assert.Equal(t, 1, sales.callCount())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusIdle, s.Status())
}
