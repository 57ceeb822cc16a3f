// internal/app/store/authstore/authstore.go
package authstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
)

// ErrNoToken means the backend accepted the credentials but issued no token.
var ErrNoToken = errors.New("backend login returned no token")

// Identity is the signed-in admin as reported by the backend.
type Identity struct {
	AdminID   string `json:"adminId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

// Name joins first and last name.
func (i Identity) Name() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// loginResponse accepts the flat shape and one where the admin is nested.
type loginResponse struct {
	Identity
	Admin *Identity `json:"admin"`
}

// Store exchanges credentials for a backend token.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

// Login posts the credentials to the backend. A rejected login comes back
// as *backend.APIError carrying the backend's message.
func (s *Store) Login(ctx context.Context, email, password string) (Identity, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := s.c.Do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return Identity{}, fmt.Errorf("login %s: %w", email, err)
	}

	id := resp.Identity
	if resp.Admin != nil {
		tok := id.Token
		id = *resp.Admin
		if id.Token == "" {
			id.Token = tok
		}
	}
	if id.Token == "" {
		return Identity{}, ErrNoToken
	}
	if id.Email == "" {
		id.Email = email
	}
	return id, nil
}
