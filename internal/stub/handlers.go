package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de peticion invalido")
		return
	}

	session, err := s.login(req.Email, req.Password)
	if err != nil {
		s.logger.Info("login rejected", zap.String("email", req.Email))
		respondError(w, http.StatusUnauthorized, "Credenciales invalidas")
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]domain.User{
		"user": userFromContext(r.Context()),
	})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ListProducts())
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.store.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Producto no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string          `json:"name"`
		SKU         string          `json:"sku"`
		Description string          `json:"description"`
		SalePrice   decimal.Decimal `json:"salePrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de peticion invalido")
		return
	}
	if req.Name == "" || req.SKU == "" || req.SalePrice.IsNegative() {
		respondError(w, http.StatusBadRequest, "Datos de producto invalidos")
		return
	}

	product := s.store.CreateProduct(req.Name, req.SKU, req.Description, req.SalePrice)
	respondJSON(w, http.StatusCreated, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		SalePrice   *decimal.Decimal `json:"salePrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de peticion invalido")
		return
	}

	product, err := s.store.UpdateProduct(chi.URLParam(r, "id"), req.Name, req.Description, req.SalePrice)
	if err != nil {
		respondError(w, http.StatusNotFound, "Producto no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeactivateProduct(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "Producto no encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ListCategories())
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := s.store.GetCategory(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Categoria no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		respondError(w, http.StatusBadRequest, "Datos de categoria invalidos")
		return
	}
	respondJSON(w, http.StatusCreated, s.store.CreateCategory(req.Name, req.Description))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de peticion invalido")
		return
	}

	category, err := s.store.UpdateCategory(chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		respondError(w, http.StatusNotFound, "Categoria no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCategory(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "Categoria no encontrada")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ListPurchases())
}

func (s *Server) handleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID     string          `json:"productId"`
		Quantity      int             `json:"quantity"`
		CostPrice     decimal.Decimal `json:"costPrice"`
		SalePrice     decimal.Decimal `json:"salePrice"`
		Supplier      string          `json:"supplier"`
		InvoiceNumber string          `json:"invoiceNumber"`
		PurchaseDate  string          `json:"purchaseDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de peticion invalido")
		return
	}
	if req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "Cantidad invalida")
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Fecha de compra invalida")
		return
	}

	order, err := s.store.CreatePurchase(PurchaseInput{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		CostPrice:     req.CostPrice,
		SalePrice:     req.SalePrice,
		Supplier:      req.Supplier,
		InvoiceNumber: req.InvoiceNumber,
		PurchaseDate:  purchaseDate,
	}, userFromContext(r.Context()).ID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Producto no encontrado")
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []domain.SaleItemInput `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de peticion invalido")
		return
	}

	sale, err := s.store.CreateSale(userFromContext(r.Context()), req.Items)
	if err != nil {
		s.logger.Info("sale rejected", zap.Error(err))
		switch {
		case errors.Is(err, ErrInvalidSale):
			respondError(w, http.StatusBadRequest, "La venta no tiene items")
		case errors.Is(err, ErrProductNotFound):
			respondError(w, http.StatusNotFound, "Producto no encontrado")
		case errors.Is(err, ErrProductInactive):
			respondError(w, http.StatusConflict, "Producto inactivo")
		case errors.Is(err, ErrInsufficientStock):
			respondError(w, http.StatusConflict, "Stock insuficiente")
		default:
			respondError(w, http.StatusInternalServerError, "Error al registrar venta")
		}
		return
	}

	respondJSON(w, http.StatusCreated, sale)
}

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ListSales())
}

func (s *Server) handleMySales(w http.ResponseWriter, r *http.Request) {
	sales := s.store.ListSalesBySeller(userFromContext(r.Context()).ID)
	if sales == nil {
		sales = []domain.Sale{}
	}
	respondJSON(w, http.StatusOK, sales)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(w, http.StatusBadRequest, "Fecha invalida")
		return
	}
	respondJSON(w, http.StatusOK, s.store.Report(date))
}
