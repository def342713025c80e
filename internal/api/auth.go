package api

import (
	"context"
	"net/http"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session and installs its token on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	var session domain.Session
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &session)
	if err != nil {
		return domain.Session{}, err
	}

	c.SetToken(session.Token)
	return session, nil
}

// Profile returns the user behind the current token.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}
