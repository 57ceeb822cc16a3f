// internal/domain/models/product.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategories is the fixed category list the marketplace uses.
var ProductCategories = []string{
	"Electronics",
	"Home & Garden",
	"Sports & Outdoors",
	"Tools & Equipment",
	"Vehicles",
	"Clothing & Accessories",
	"Party & Events",
	"Music & Instruments",
	"Toys & Games",
	"Books & Media",
}

// ProductConditions are the condition grades sellers pick from.
var ProductConditions = []string{"New", "Like New", "Good", "Fair"}

// Owner is the lender who listed a product.
type Owner struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Product is an item listed for rent.
type Product struct {
	ID                  string          `json:"id"`
	ItemName            string          `json:"itemName"`
	Description         string          `json:"description"`
	LendingFrom         *time.Time      `json:"lendingFrom,omitempty"`
	LendingTo           *time.Time      `json:"lendingTo,omitempty"`
	Category            string          `json:"category"`
	Condition           string          `json:"condition"`
	DailyPricing        decimal.Decimal `json:"dailyPricing"`
	WeeklyPricing       decimal.Decimal `json:"weeklyPricing"`
	MonthlyPricing      decimal.Decimal `json:"monthlyPricing"`
	Specifications      string          `json:"specifications"`
	SafetyTips          string          `json:"safetyTips"`
	SpecialInstructions string          `json:"specialInstructions"`
	Usage               string          `json:"usage"`
	SecurityDeposit     decimal.Decimal `json:"securityDeposit"`
	Dimensions          string          `json:"dimensions"`
	Brands              string          `json:"brands"`
	IsAvailable         bool            `json:"isAvailable"`
	Photos              []string        `json:"photos"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	IsLent              bool            `json:"isLent"`
	OwnerID             string          `json:"ownerId"`
	PickupLocation      string          `json:"pickupLocation"`
	Owner               *Owner          `json:"owner,omitempty"`
}

// Cover returns the first photo URL, or "" when the product has none.
func (p Product) Cover() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0]
}

// ProductUpdate carries the editable product fields sent with PATCH.
type ProductUpdate struct {
	ItemName            string          `json:"itemName"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	Condition           string          `json:"condition"`
	DailyPricing        decimal.Decimal `json:"dailyPricing"`
	WeeklyPricing       decimal.Decimal `json:"weeklyPricing"`
	MonthlyPricing      decimal.Decimal `json:"monthlyPricing"`
	SecurityDeposit     decimal.Decimal `json:"securityDeposit"`
	Specifications      string          `json:"specifications"`
	SafetyTips          string          `json:"safetyTips"`
	SpecialInstructions string          `json:"specialInstructions"`
	PickupLocation      string          `json:"pickupLocation"`
	IsAvailable         bool            `json:"isAvailable"`
}
