// internal/domain/models/stats.go
package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// StatCard is one headline number on the overview.
type StatCard struct {
	Title  string    `json:"title"`
	Value  StatValue `json:"value"`
	Change string    `json:"change"`
	Trend  string    `json:"trend"` // up | down
}

// StatValue is a card value the backend sends either as a number or as
// preformatted text.
type StatValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *StatValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = StatValue(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = StatValue(n.String())
	return nil
}

// Number returns the value as a decimal when it is numeric.
func (v StatValue) Number() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(string(v))
	return d, err == nil
}

// UserGrowthPoint is the count of new users in a month.
type UserGrowthPoint struct {
	Month string `json:"month"`
	Users int64  `json:"users"`
}

// RevenuePoint is the revenue booked in a month.
type RevenuePoint struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// StatusCount is the number of orders in a given status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Stats is the overview payload returned by the backend.
type Stats struct {
	Stats                   []StatCard        `json:"stats"`
	UserGrowth              []UserGrowthPoint `json:"userGrowth"`
	MonthlyRevenue          []RevenuePoint    `json:"monthlyRevenue"`
	OrderStatusDistribution []StatusCount     `json:"orderStatusDistribution"`
}
