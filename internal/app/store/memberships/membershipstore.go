// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// Store reads subscription requests and approves or removes them.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

// List returns every subscription request.
func (s *Store) List(ctx context.Context) ([]models.Membership, error) {
	var page backend.Page[models.Membership]
	if err := s.c.Do(ctx, http.MethodGet, "/membership", nil, nil, &page); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	return page.Items, nil
}

// Approve grants the requested plan to the requesting user. The backend
// marks the request approved as part of the plan change.
func (s *Store) Approve(ctx context.Context, m models.Membership) error {
	if m.UserID == "" {
		return fmt.Errorf("approve membership %s: user ID is required", m.ID)
	}
	body := models.PlanChange{Plan: m.Plan, UserID: m.UserID}
	if err := s.c.Do(ctx, http.MethodPost, "/plan", nil, body, nil); err != nil {
		return fmt.Errorf("approve membership %s: %w", m.ID, err)
	}
	return nil
}

// Delete removes a subscription request.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.c.Do(ctx, http.MethodDelete, "/membership/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete membership %s: %w", id, err)
	}
	return nil
}

// CountPending returns how many requests await a decision.
func (s *Store) CountPending(ctx context.Context) (int, error) {
	all, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range all {
		if m.StatusKey() == "pending" {
			n++
		}
	}
	return n, nil
}
