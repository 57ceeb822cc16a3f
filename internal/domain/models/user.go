// internal/domain/models/user.go
package models

import (
	"strings"
	"time"
)

// User is a marketplace account (a customer who borrows or a seller who lends).
type User struct {
	UserID    string    `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"` // customer | seller
	Active    bool      `json:"active"`
	Plan      string    `json:"plan,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName prefers the explicit name field and falls back to first + last.
func (u User) DisplayName() string {
	if n := strings.TrimSpace(u.Name); n != "" {
		return n
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Status renders the active flag the way the users screen filters it.
func (u User) Status() string {
	if u.Active {
		return "active"
	}
	return "inactive"
}

// UserRoles are the filterable marketplace roles.
var UserRoles = []string{"customer", "seller"}

// Plans offered to marketplace users.
var Plans = []string{"basic", "premium", "business"}
