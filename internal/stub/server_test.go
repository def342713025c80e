package stub_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pablonunez10/genex-store-inventory-front/internal/api"
	"github.com/pablonunez10/genex-store-inventory-front/internal/cart"
	"github.com/pablonunez10/genex-store-inventory-front/internal/catalog"
	"github.com/pablonunez10/genex-store-inventory-front/internal/checkout"
	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
	"github.com/pablonunez10/genex-store-inventory-front/internal/stub"
)

// startStub brings up the stub API and returns a client pointed at it.
func startStub(t *testing.T) (*api.Client, *stub.Server) {
	server := stub.NewServer(zap.NewNop())
	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	return api.NewClient(httpServer.URL), server
}

func seedWidget(s *stub.Server, stock int) domain.Product {
	return s.Store().SeedProduct(domain.Product{
		ID:           "p1",
		Name:         "Widget",
		SKU:          "W1",
		SalePrice:    decimal.NewFromInt(1000),
		CurrentStock: stock,
		IsActive:     true,
	})
}

func loginSeller(t *testing.T, client *api.Client) domain.Session {
	session, err := client.Login(context.Background(), "vendedor@genex.local", "vendedor123")
	require.NoError(t, err)
	return session
}

func loginAdmin(t *testing.T, client *api.Client) domain.Session {
	session, err := client.Login(context.Background(), "admin@genex.local", "admin123")
	require.NoError(t, err)
	return session
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client, _ := startStub(t)

	_, err := client.Login(context.Background(), "vendedor@genex.local", "wrong")

	var remote *api.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Credenciales invalidas", remote.Message)
}

func TestProducts_RequireAuth(t *testing.T) {
	client, _ := startStub(t)

	_, err := client.ListProducts(context.Background())

	var remote *api.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 401, remote.StatusCode)
}

func TestSellerCannotCreateProducts(t *testing.T) {
	client, _ := startStub(t)
	loginSeller(t, client)

	_, err := client.CreateProduct(context.Background(), api.CreateProductInput{
		Name:      "Widget",
		SKU:       "W1",
		SalePrice: decimal.NewFromInt(1000),
	})

	var remote *api.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 403, remote.StatusCode)
}

func TestSellFlow_EndToEnd(t *testing.T) {
	client, server := startStub(t)
	seedWidget(server, 5)
	loginSeller(t, client)

	loader := catalog.NewLoader(client, zap.NewNop())
	snapshot := loader.Snapshot(context.Background())
	require.Len(t, snapshot, 1)
	widget := snapshot[0]

	pending := cart.New()
	require.NoError(t, pending.AddOrMerge(widget, 2))
	require.Len(t, pending.Entries(), 1)
	assert.Equal(t, "2000", pending.Total().String())

	submitter := checkout.NewSubmitter(client)
	sale, err := submitter.Submit(context.Background(), pending)
	require.NoError(t, err)

	assert.True(t, pending.Empty(), "cart must be cleared on success")
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "p1", sale.Items[0].ProductID)
	assert.Equal(t, 2, sale.Items[0].Quantity)
	assert.Equal(t, "2000", sale.TotalAmount.String())
	assert.Equal(t, "Vendedor", sale.SellerName)

	// The server performed the authoritative decrement
	p, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.CurrentStock)
}

func TestSellFlow_InsufficientStock(t *testing.T) {
	client, server := startStub(t)
	widget := seedWidget(server, 5)
	loginSeller(t, client)

	// Two adds that are valid alone but exceed stock together; the server
	// catches it at submission and the cart survives for correction.
	pending := cart.New()
	require.NoError(t, pending.AddOrMerge(widget, 3))
	require.NoError(t, pending.AddOrMerge(widget, 3))

	submitter := checkout.NewSubmitter(client)
	_, err := submitter.Submit(context.Background(), pending)

	var remote *api.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Stock insuficiente", remote.Message)

	require.Len(t, pending.Entries(), 1)
	assert.Equal(t, 6, pending.Entries()[0].Quantity)

	// No partial decrement happened
	p, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.CurrentStock)
}

func TestSale_InactiveProduct(t *testing.T) {
	client, server := startStub(t)
	server.Store().SeedProduct(domain.Product{
		ID: "p2", Name: "Old", SKU: "O1",
		SalePrice: decimal.NewFromInt(500), CurrentStock: 5, IsActive: false,
	})
	loginSeller(t, client)

	_, err := client.CreateSale(context.Background(), []domain.SaleItemInput{{ProductID: "p2", Quantity: 1}})

	var remote *api.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Producto inactivo", remote.Message)
}

func TestPurchase_RestocksAndReprices(t *testing.T) {
	client, server := startStub(t)
	seedWidget(server, 2)
	loginAdmin(t, client)

	order, err := client.CreatePurchase(context.Background(), api.CreatePurchaseInput{
		ProductID:    "p1",
		Quantity:     10,
		CostPrice:    decimal.NewFromInt(600),
		SalePrice:    decimal.NewFromInt(1200),
		Supplier:     "ACME",
		PurchaseDate: time.Now().UTC().Format("2006-01-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, "6000", order.TotalCost.String())

	p, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 12, p.CurrentStock)
	assert.Equal(t, "1200", p.SalePrice.String())
}

func TestReport_AggregatesDay(t *testing.T) {
	client, server := startStub(t)
	seedWidget(server, 10)
	loginSeller(t, client)

	_, err := client.CreateSale(context.Background(), []domain.SaleItemInput{{ProductID: "p1", Quantity: 2}})
	require.NoError(t, err)
	_, err = client.CreateSale(context.Background(), []domain.SaleItemInput{{ProductID: "p1", Quantity: 3}})
	require.NoError(t, err)

	loginAdmin(t, client)
	today := time.Now().UTC().Format("2006-01-02")
	report, err := client.SalesReport(context.Background(), today)
	require.NoError(t, err)

	want := domain.ReportSummary{
		TotalAmount: decimal.NewFromInt(5000),
		TotalSales:  2,
		TotalItems:  5,
	}
	diff := cmp.Diff(want, report.Summary, cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	}))
	assert.Empty(t, diff)
	assert.Len(t, report.Sales, 2)
}

func TestMySales_FiltersBySeller(t *testing.T) {
	client, server := startStub(t)
	seedWidget(server, 10)

	loginSeller(t, client)
	_, err := client.CreateSale(context.Background(), []domain.SaleItemInput{{ProductID: "p1", Quantity: 1}})
	require.NoError(t, err)

	mine, err := client.ListMySales(context.Background())
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// The admin has sold nothing
	loginAdmin(t, client)
	mine, err = client.ListMySales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestProductLifecycle(t *testing.T) {
	client, _ := startStub(t)
	loginAdmin(t, client)
	ctx := context.Background()

	created, err := client.CreateProduct(ctx, api.CreateProductInput{
		Name:      "Gadget",
		SKU:       "G1",
		SalePrice: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, 0, created.CurrentStock)

	newName := "Gadget Pro"
	updated, err := client.UpdateProduct(ctx, created.ID, api.UpdateProductInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Gadget Pro", updated.Name)

	require.NoError(t, client.DeleteProduct(ctx, created.ID))

	// Deactivated, not gone: still fetchable, no longer sellable
	p, err := client.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	assert.False(t, p.Sellable())
}

func TestCategoryLifecycle(t *testing.T) {
	client, _ := startStub(t)
	loginAdmin(t, client)
	ctx := context.Background()

	created, err := client.CreateCategory(ctx, api.CategoryInput{Name: "Bebidas"})
	require.NoError(t, err)

	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	require.NoError(t, client.DeleteCategory(ctx, created.ID))

	categories, err = client.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
