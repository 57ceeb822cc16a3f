// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// ErrUserIDRequired is returned before any backend call when a plan change
// names no user.
var ErrUserIDRequired = errors.New("User ID is required")

// Store reads and mutates marketplace accounts through the backend.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

// List returns one backend page of users.
func (s *Store) List(ctx context.Context, page, limit int) (backend.Page[models.User], error) {
	var out backend.Page[models.User]
	if err := s.c.Do(ctx, http.MethodGet, "/users", backend.PageQuery(page, limit), nil, &out); err != nil {
		return out, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func byID(id string) url.Values {
	return url.Values{"userId": {id}}
}

// SetActive activates or deactivates a user and returns the updated record
// when the backend sends one back.
func (s *Store) SetActive(ctx context.Context, id string, active bool) (models.User, error) {
	var out backend.One[models.User]
	body := map[string]bool{"active": active}
	if err := s.c.Do(ctx, http.MethodPut, "/users", byID(id), body, &out); err != nil {
		return models.User{}, fmt.Errorf("set user %s active=%v: %w", id, active, err)
	}
	return out.Value, nil
}

// Delete removes a user account.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.c.Do(ctx, http.MethodDelete, "/users", byID(id), nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// ChangePlan moves a user onto plan.
func (s *Store) ChangePlan(ctx context.Context, userID, plan string) error {
	if userID == "" {
		return ErrUserIDRequired
	}
	body := models.PlanChange{Plan: plan, UserID: userID}
	if err := s.c.Do(ctx, http.MethodPost, "/plan", nil, body, nil); err != nil {
		return fmt.Errorf("change plan for %s: %w", userID, err)
	}
	return nil
}
