// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// Store reads and mutates staff accounts through the backend.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

// List returns every staff account.
func (s *Store) List(ctx context.Context) ([]models.Admin, error) {
	var page backend.Page[models.Admin]
	if err := s.c.Do(ctx, http.MethodGet, "/admins/all", nil, nil, &page); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return page.Items, nil
}

// GetByID finds one admin in the full list. The backend has no single-admin
// endpoint. Returns backend.ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id string) (models.Admin, error) {
	all, err := s.List(ctx)
	if err != nil {
		return models.Admin{}, err
	}
	for _, a := range all {
		if a.AdminID == id {
			return a, nil
		}
	}
	return models.Admin{}, fmt.Errorf("admin %s: %w", id, backend.ErrNotFound)
}

// Create registers a new staff account.
func (s *Store) Create(ctx context.Context, in models.NewAdmin) error {
	if err := s.c.Do(ctx, http.MethodPost, "/auth/register", nil, in, nil); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// SetStatus changes an admin's account status.
func (s *Store) SetStatus(ctx context.Context, id, status string) error {
	path := "/admins/" + url.PathEscape(id) + "/status"
	body := map[string]string{"status": status}
	if err := s.c.Do(ctx, http.MethodPatch, path, nil, body, nil); err != nil {
		return fmt.Errorf("set admin %s status: %w", id, err)
	}
	return nil
}

// Delete removes a staff account.
func (s *Store) Delete(ctx context.Context, id string) error {
	path := "/admins/" + url.PathEscape(id) + "/delete"
	if err := s.c.Do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete admin %s: %w", id, err)
	}
	return nil
}
