// Package stub is an in-process, in-memory rendition of the remote
// inventory API this client consumes. It exists for development and for
// end-to-end tests: same routes, same JSON shapes, same {"error": "..."}
// payloads, including the server-side stock re-validation the client
// relies on at checkout.
package stub

import (
	"crypto/rand"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

type Server struct {
	store     *Store
	accounts  map[string]Account // email -> account
	jwtSecret []byte
	logger    *zap.Logger
	router    chi.Router
}

type ServerOption func(*Server)

// WithAccount seeds a login. Without any, two defaults are installed:
// admin@genex.local/admin123 and vendedor@genex.local/vendedor123.
func WithAccount(email, password string, user domain.User) ServerOption {
	return func(s *Server) {
		s.accounts[email] = Account{Password: password, User: user}
	}
}

func WithJWTSecret(secret []byte) ServerOption {
	return func(s *Server) { s.jwtSecret = secret }
}

func NewServer(logger *zap.Logger, opts ...ServerOption) *Server {
	s := &Server{
		store:    NewStore(),
		accounts: make(map[string]Account),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(s.jwtSecret) == 0 {
		s.jwtSecret = make([]byte, 32)
		rand.Read(s.jwtSecret)
	}

	if len(s.accounts) == 0 {
		s.accounts["admin@genex.local"] = Account{
			Password: "admin123",
			User:     domain.User{ID: "u-admin", Name: "Admin", Email: "admin@genex.local", Role: domain.RoleAdmin},
		}
		s.accounts["vendedor@genex.local"] = Account{
			Password: "vendedor123",
			User:     domain.User{ID: "u-vendedor", Name: "Vendedor", Email: "vendedor@genex.local", Role: domain.RoleSeller},
		}
	}

	s.router = s.routes()
	return s
}

// Store exposes the backing state for seeding fixtures.
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/auth/profile", s.handleProfile)

		r.Get("/products", s.handleListProducts)
		r.Get("/products/{id}", s.handleGetProduct)
		r.Get("/categories", s.handleListCategories)
		r.Get("/categories/{id}", s.handleGetCategory)

		r.Post("/sales", s.handleCreateSale)
		r.Get("/sales/my-sales", s.handleMySales)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Post("/products", s.handleCreateProduct)
			r.Put("/products/{id}", s.handleUpdateProduct)
			r.Delete("/products/{id}", s.handleDeleteProduct)

			r.Post("/categories", s.handleCreateCategory)
			r.Put("/categories/{id}", s.handleUpdateCategory)
			r.Delete("/categories/{id}", s.handleDeleteCategory)

			r.Get("/purchases", s.handleListPurchases)
			r.Post("/purchases", s.handleCreatePurchase)

			r.Get("/sales", s.handleListSales)
			r.Get("/sales/report", s.handleReport)
		})
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError mirrors the real API's error contract: a bare
// {"error": "..."} body with the message the UI shows verbatim.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
