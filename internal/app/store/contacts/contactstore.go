// internal/app/store/contacts/contactstore.go
package contactstore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// Store reads contact-form messages, sends replies and deletes messages.
// The backend addresses every mutation at /contacts with the ID in the body.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

// List returns every contact message.
func (s *Store) List(ctx context.Context) ([]models.Contact, error) {
	var page backend.Page[models.Contact]
	if err := s.c.Do(ctx, http.MethodGet, "/contacts", nil, nil, &page); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return page.Items, nil
}

// GetByID finds one message in the full list.
func (s *Store) GetByID(ctx context.Context, id string) (models.Contact, error) {
	all, err := s.List(ctx)
	if err != nil {
		return models.Contact{}, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, fmt.Errorf("contact %s: %w", id, backend.ErrNotFound)
}

// Reply sends a reply to the person who wrote the message.
func (s *Store) Reply(ctx context.Context, reply models.ContactReply) error {
	if err := s.c.Do(ctx, http.MethodPost, "/contacts", nil, reply, nil); err != nil {
		return fmt.Errorf("reply to contact %s: %w", reply.ContactID, err)
	}
	return nil
}

// Delete removes a message.
func (s *Store) Delete(ctx context.Context, id string) error {
	body := map[string]string{"id": id}
	if err := s.c.Do(ctx, http.MethodDelete, "/contacts", nil, body, nil); err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	return nil
}

// CountUnreplied returns how many messages still need a reply.
func (s *Store) CountUnreplied(ctx context.Context) (int, error) {
	all, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range all {
		if !c.Replied {
			n++
		}
	}
	return n, nil
}
