// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// Store reads and updates the signed-in admin's own profile.
type Store struct {
	c *backend.Client
}

// New creates a new settings store.
func New(c *backend.Client) *Store {
	return &Store{c: c}
}

func forAdmin(adminID string) url.Values {
	return url.Values{"adminId": {adminID}}
}

// Profile returns the admin's profile.
func (s *Store) Profile(ctx context.Context, adminID string) (models.Profile, error) {
	var out backend.One[models.Profile]
	if err := s.c.Do(ctx, http.MethodGet, "/settings", forAdmin(adminID), nil, &out); err != nil {
		return models.Profile{}, fmt.Errorf("get profile %s: %w", adminID, err)
	}
	return out.Value, nil
}

// UpdateProfile saves the admin's profile.
func (s *Store) UpdateProfile(ctx context.Context, adminID string, p models.Profile) error {
	if err := s.c.Do(ctx, http.MethodPost, "/settings", forAdmin(adminID), p, nil); err != nil {
		return fmt.Errorf("update profile %s: %w", adminID, err)
	}
	return nil
}

// ChangePassword asks the backend to verify the current password and set a new one.
func (s *Store) ChangePassword(ctx context.Context, adminID string, pc models.PasswordChange) error {
	if err := s.c.Do(ctx, http.MethodPost, "/settings/password", forAdmin(adminID), pc, nil); err != nil {
		return fmt.Errorf("change password %s: %w", adminID, err)
	}
	return nil
}
