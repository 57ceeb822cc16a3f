// internal/domain/models/order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses, in lifecycle order.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// Party is either side of a rental: the borrower or the lender.
type Party struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
}

// OrderProduct is the product snapshot embedded in an order.
type OrderProduct struct {
	ID             string          `json:"id"`
	ItemName       string          `json:"itemName"`
	Description    string          `json:"description"`
	DailyPricing   decimal.Decimal `json:"dailyPricing"`
	Photos         []string        `json:"photos"`
	PickupLocation string          `json:"pickupLocation"`
}

// Order is a rental of one product from a lender to a borrower.
type Order struct {
	OrderID       string          `json:"orderId"`
	OrderDate     time.Time       `json:"orderDate"`
	LendingFrom   time.Time       `json:"lendingFrom"`
	LendingTo     time.Time       `json:"lendingTo"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Borrower      Party           `json:"borrower"`
	Lender        Party           `json:"lender"`
	Product       OrderProduct    `json:"product"`
}

// RentalDays counts the calendar days covered by the lending window,
// inclusive of both ends. A missing or inverted window counts as zero.
func (o Order) RentalDays() int {
	if o.LendingFrom.IsZero() || o.LendingTo.IsZero() || o.LendingTo.Before(o.LendingFrom) {
		return 0
	}
	from := time.Date(o.LendingFrom.Year(), o.LendingFrom.Month(), o.LendingFrom.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(o.LendingTo.Year(), o.LendingTo.Month(), o.LendingTo.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

// EffectiveDailyRate divides the total by the rental days, rounded to cents.
func (o Order) EffectiveDailyRate() decimal.Decimal {
	days := o.RentalDays()
	if days == 0 {
		return decimal.Zero
	}
	return o.TotalPrice.Div(decimal.NewFromInt(int64(days))).Round(2)
}
