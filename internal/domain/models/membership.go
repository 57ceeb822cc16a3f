// internal/domain/models/membership.go
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Membership is a user's request to subscribe to a paid plan.
type Membership struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Plan         string          `json:"plan"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"` // monthly | yearly
	Status       string          `json:"status"`       // pending | approved | rejected
	CreatedAt    time.Time       `json:"createdAt"`
}

// MembershipStatuses are the filterable membership states.
var MembershipStatuses = []string{"pending", "approved", "rejected"}

// StatusKey is Status lowercased and trimmed. A request the backend has
// not yet marked counts as pending.
func (m Membership) StatusKey() string {
	st := strings.ToLower(strings.TrimSpace(m.Status))
	if st == "" {
		return "pending"
	}
	return st
}

// PlanChange is the backend payload that moves a user onto a plan.
type PlanChange struct {
	Plan   string `json:"plan"`
	UserID string `json:"userId"`
}
