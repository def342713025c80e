package stub

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product inactive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidSale       = errors.New("sale has no items")
)

// Store is the in-memory state behind the stub API. It plays the server
// role the client assumes: it owns prices and performs the authoritative
// stock decrement at sale creation.
type Store struct {
	mu sync.RWMutex

	products     map[string]*domain.Product
	productOrder []string
	categories   map[string]*domain.Category
	catOrder     []string
	purchases    []domain.PurchaseOrder
	sales        []domain.Sale
}

func NewStore() *Store {
	return &Store{
		products:   make(map[string]*domain.Product),
		categories: make(map[string]*domain.Category),
	}
}

func (s *Store) ListProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, *s.products[id])
	}
	return out
}

func (s *Store) GetProduct(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return *p, nil
}

func (s *Store) CreateProduct(name, sku, description string, salePrice decimal.Decimal) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	p := &domain.Product{
		ID:          uuid.New().String(),
		Name:        name,
		SKU:         sku,
		Description: description,
		SalePrice:   salePrice,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products[p.ID] = p
	s.productOrder = append(s.productOrder, p.ID)
	return *p
}

// SeedProduct inserts a fully specified product, for fixtures.
func (s *Store) SeedProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := p
	s.products[cp.ID] = &cp
	s.productOrder = append(s.productOrder, cp.ID)
	return cp
}

func (s *Store) UpdateProduct(id string, name, description *string, salePrice *decimal.Decimal) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	if name != nil {
		p.Name = *name
	}
	if description != nil {
		p.Description = *description
	}
	if salePrice != nil {
		p.SalePrice = *salePrice
	}
	p.UpdatedAt = time.Now().UTC()
	return *p, nil
}

// DeactivateProduct is the stub's DELETE: the product disappears from
// snapshots but stays referenced by past sales.
func (s *Store) DeactivateProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) ListCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.catOrder))
	for _, id := range s.catOrder {
		out = append(out, *s.categories[id])
	}
	return out
}

func (s *Store) GetCategory(id string) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, ErrCategoryNotFound
	}
	return *c, nil
}

func (s *Store) CreateCategory(name, description string) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	c := &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories[c.ID] = c
	s.catOrder = append(s.catOrder, c.ID)
	return *c
}

func (s *Store) UpdateCategory(id string, name, description *string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, ErrCategoryNotFound
	}
	if name != nil {
		c.Name = *name
	}
	if description != nil {
		c.Description = *description
	}
	c.UpdatedAt = time.Now().UTC()
	return *c, nil
}

func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrCategoryNotFound
	}
	delete(s.categories, id)
	for i, cid := range s.catOrder {
		if cid == id {
			s.catOrder = append(s.catOrder[:i], s.catOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListPurchases() []domain.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PurchaseOrder, len(s.purchases))
	copy(out, s.purchases)
	return out
}

// CreatePurchase restocks a product: stock goes up by quantity and the
// sale price is replaced by the one on the order.
func (s *Store) CreatePurchase(in PurchaseInput, createdBy string) (domain.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[in.ProductID]
	if !ok {
		return domain.PurchaseOrder{}, ErrProductNotFound
	}

	p.CurrentStock += in.Quantity
	p.SalePrice = in.SalePrice
	p.UpdatedAt = time.Now().UTC()

	snapshot := *p
	order := domain.PurchaseOrder{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		CostPrice:     in.CostPrice,
		SalePrice:     in.SalePrice,
		TotalCost:     in.CostPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Supplier:      in.Supplier,
		InvoiceNumber: in.InvoiceNumber,
		PurchaseDate:  in.PurchaseDate,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC(),
		Product:       &snapshot,
	}
	s.purchases = append(s.purchases, order)
	return order, nil
}

type PurchaseInput struct {
	ProductID     string
	Quantity      int
	CostPrice     decimal.Decimal
	SalePrice     decimal.Decimal
	Supplier      string
	InvoiceNumber string
	PurchaseDate  time.Time
}

// CreateSale validates every line before touching stock, then decrements
// and prices the sale in one critical section. First pass validate,
// second pass commit, so a rejected line leaves stock untouched.
func (s *Store) CreateSale(seller domain.User, items []domain.SaleItemInput) (domain.Sale, error) {
	if len(items) == 0 {
		return domain.Sale{}, ErrInvalidSale
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		p, ok := s.products[item.ProductID]
		if !ok {
			return domain.Sale{}, ErrProductNotFound
		}
		if !p.IsActive {
			return domain.Sale{}, ErrProductInactive
		}
		if item.Quantity <= 0 || item.Quantity > p.CurrentStock {
			return domain.Sale{}, ErrInsufficientStock
		}
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		ID:          uuid.New().String(),
		TotalAmount: decimal.Zero,
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		SaleDate:    now,
		CreatedAt:   now,
	}

	for _, item := range items {
		p := s.products[item.ProductID]
		p.CurrentStock -= item.Quantity
		p.UpdatedAt = now

		subtotal := p.SalePrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		sale.Items = append(sale.Items, domain.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			UnitPrice:   p.SalePrice,
			Subtotal:    subtotal,
		})
		sale.TotalAmount = sale.TotalAmount.Add(subtotal)
	}

	s.sales = append(s.sales, sale)
	return sale, nil
}

func (s *Store) ListSales() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

func (s *Store) ListSalesBySeller(sellerID string) []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Sale
	for _, sale := range s.sales {
		if sale.SellerID == sellerID {
			out = append(out, sale)
		}
	}
	return out
}

// Report aggregates the sales of one calendar day (UTC).
func (s *Store) Report(date string) domain.SalesReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := domain.SalesReport{
		Date:  date,
		Sales: []domain.Sale{},
		Summary: domain.ReportSummary{
			TotalAmount: decimal.Zero,
		},
	}

	for _, sale := range s.sales {
		if sale.SaleDate.Format("2006-01-02") != date {
			continue
		}
		report.Sales = append(report.Sales, sale)
		report.Summary.TotalSales++
		report.Summary.TotalAmount = report.Summary.TotalAmount.Add(sale.TotalAmount)
		for _, item := range sale.Items {
			report.Summary.TotalItems += item.Quantity
		}
	}
	return report
}
