package stub

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 8 * time.Hour

type ctxKey int

const userKey ctxKey = iota

// Account is a seeded login for the stub.
type Account struct {
	Password string
	User     domain.User
}

type sessionClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Server) login(email, password string) (domain.Session, error) {
	account, ok := s.accounts[email]
	if !ok || account.Password != password {
		return domain.Session{}, ErrInvalidCredentials
	}

	claims := sessionClaims{
		Name: account.User.Name,
		Role: string(account.User.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.User.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{Token: token, User: account.User}, nil
}

func (s *Server) parseToken(raw string) (domain.User, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return domain.User{}, err
	}

	// Email is resolvable from the seeded accounts; the token carries the
	// rest.
	user := domain.User{
		ID:   claims.Subject,
		Name: claims.Name,
		Role: domain.Role(claims.Role),
	}
	for _, account := range s.accounts {
		if account.User.ID == user.ID {
			user.Email = account.User.Email
			break
		}
	}
	return user, nil
}

// requireAuth rejects requests without a valid bearer token and puts the
// authenticated user on the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			respondError(w, http.StatusUnauthorized, "No autorizado")
			return
		}

		user, err := s.parseToken(raw)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Token invalido")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates admin-only routes; sellers can browse products and
// register sales, everything else is ADMIN.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userFromContext(r.Context()).Role != domain.RoleAdmin {
			respondError(w, http.StatusForbidden, "Acceso denegado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFromContext(ctx context.Context) domain.User {
	if user, ok := ctx.Value(userKey).(domain.User); ok {
		return user
	}
	return domain.User{}
}
