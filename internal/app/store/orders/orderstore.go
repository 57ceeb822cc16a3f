// internal/app/store/orders/orderstore.go
package orderstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// ErrInvalidStatus is returned for a status outside models.OrderStatuses.
var ErrInvalidStatus = errors.New("invalid order status")

// Store reads rental orders and updates their status through the backend.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

// List returns one backend page of orders.
func (s *Store) List(ctx context.Context, page, limit int) (backend.Page[models.Order], error) {
	var out backend.Page[models.Order]
	if err := s.c.Do(ctx, http.MethodGet, "/orders", backend.PageQuery(page, limit), nil, &out); err != nil {
		return out, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// GetByID loads one order.
func (s *Store) GetByID(ctx context.Context, id string) (models.Order, error) {
	var out backend.One[models.Order]
	if err := s.c.Do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return models.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return out.Value, nil
}

// SetStatus moves an order to status.
func (s *Store) SetStatus(ctx context.Context, id, status string) error {
	if !slices.Contains(models.OrderStatuses, status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	body := map[string]string{"status": status}
	if err := s.c.Do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id), nil, body, nil); err != nil {
		return fmt.Errorf("set order %s status: %w", id, err)
	}
	return nil
}
