// internal/domain/models/blog.go
package models

import "time"

// Blog statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// BlogCategories are offered in the editor's category picker.
var BlogCategories = []string{"News", "Guides", "Tips", "Community", "Announcements"}

// Blog is a post on the marketplace blog.
type Blog struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug,omitempty"`
	Author        string    `json:"author"`
	Category      string    `json:"category"`
	Content       string    `json:"content"`
	Status        string    `json:"status"`
	ImagesURL     []string  `json:"images_url"`
	FeaturedImage string    `json:"featuredImage"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BlogInput is the create/update payload.
type BlogInput struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Author        string   `json:"author"`
	Category      string   `json:"category"`
	Content       string   `json:"content"`
	Status        string   `json:"status"`
	ImagesURL     []string `json:"images_url"`
	FeaturedImage string   `json:"featuredImage"`
}
