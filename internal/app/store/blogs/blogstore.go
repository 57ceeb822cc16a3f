// internal/app/store/blogs/blogstore.go
package blogstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/gosimple/slug"
)

// Store reads and writes blog posts through the backend.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

func path(id string) string {
	return "/blogs/" + url.PathEscape(id)
}

// withSlug fills in a slug derived from the title when the backend sent none.
func withSlug(b models.Blog) models.Blog {
	if b.Slug == "" {
		b.Slug = slug.Make(b.Title)
	}
	return b
}

// List returns every blog post.
func (s *Store) List(ctx context.Context) ([]models.Blog, error) {
	var page backend.Page[models.Blog]
	if err := s.c.Do(ctx, http.MethodGet, "/blogs", nil, nil, &page); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	for i := range page.Items {
		page.Items[i] = withSlug(page.Items[i])
	}
	return page.Items, nil
}

// GetByID loads one post.
func (s *Store) GetByID(ctx context.Context, id string) (models.Blog, error) {
	var out backend.One[models.Blog]
	if err := s.c.Do(ctx, http.MethodGet, path(id), nil, nil, &out); err != nil {
		return models.Blog{}, fmt.Errorf("get blog %s: %w", id, err)
	}
	return withSlug(out.Value), nil
}

// Create stores a new post and returns it as the backend saved it.
func (s *Store) Create(ctx context.Context, in models.BlogInput) (models.Blog, error) {
	in = prepare(in)
	var out backend.One[models.Blog]
	if err := s.c.Do(ctx, http.MethodPost, "/blogs", nil, in, &out); err != nil {
		return models.Blog{}, fmt.Errorf("create blog: %w", err)
	}
	return withSlug(out.Value), nil
}

// Update replaces a post.
func (s *Store) Update(ctx context.Context, id string, in models.BlogInput) (models.Blog, error) {
	in = prepare(in)
	var out backend.One[models.Blog]
	if err := s.c.Do(ctx, http.MethodPut, path(id), nil, in, &out); err != nil {
		return models.Blog{}, fmt.Errorf("update blog %s: %w", id, err)
	}
	return withSlug(out.Value), nil
}

// Delete removes a post.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.c.Do(ctx, http.MethodDelete, path(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete blog %s: %w", id, err)
	}
	return nil
}

func prepare(in models.BlogInput) models.BlogInput {
	if in.Slug == "" {
		in.Slug = slug.Make(in.Title)
	}
	if in.Status == "" {
		in.Status = models.BlogDraft
	}
	if in.ImagesURL == nil {
		in.ImagesURL = []string{}
	}
	return in
}
