// internal/app/store/products/productstore.go
package productstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// Store reads and mutates listed products through the backend.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

func path(id string) string {
	return "/products/" + url.PathEscape(id)
}

// List returns one backend page of products.
func (s *Store) List(ctx context.Context, page, limit int) (backend.Page[models.Product], error) {
	var out backend.Page[models.Product]
	if err := s.c.Do(ctx, http.MethodGet, "/products", backend.PageQuery(page, limit), nil, &out); err != nil {
		return out, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// GetByID loads one product.
func (s *Store) GetByID(ctx context.Context, id string) (models.Product, error) {
	var out backend.One[models.Product]
	if err := s.c.Do(ctx, http.MethodGet, path(id), nil, nil, &out); err != nil {
		return models.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return out.Value, nil
}

// Update applies the edit form to a product and returns the stored result.
func (s *Store) Update(ctx context.Context, id string, upd models.ProductUpdate) (models.Product, error) {
	var out backend.One[models.Product]
	if err := s.c.Do(ctx, http.MethodPatch, path(id), nil, upd, &out); err != nil {
		return models.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	return out.Value, nil
}

// Delete removes a product listing.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.c.Do(ctx, http.MethodDelete, path(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
