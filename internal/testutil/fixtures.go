package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bxcodec/faker/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixtures builds realistic backend records for tests.
type Fixtures struct {
	t *testing.T
}

// NewFixtures creates a Fixtures bound to t.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	return &Fixtures{t: t}
}

func (f *Fixtures) created(daysAgo int) time.Time {
	return time.Now().UTC().Truncate(time.Second).AddDate(0, 0, -daysAgo)
}

// Admin returns a staff account with the given role.
func (f *Fixtures) Admin(role string) models.Admin {
	return models.Admin{
		AdminID:   uuid.NewString(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Role:      role,
		Status:    "active",
		Country:   "Nigeria",
		CreatedAt: f.created(30),
	}
}

// User returns a marketplace account.
func (f *Fixtures) User(role string, active bool) models.User {
	return models.User{
		UserID:    uuid.NewString(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Phone:     faker.Phonenumber(),
		Role:      role,
		Active:    active,
		Plan:      "basic",
		CreatedAt: f.created(10),
	}
}

// Product returns a listed item in category.
func (f *Fixtures) Product(category string, available bool) models.Product {
	return models.Product{
		ID:              uuid.NewString(),
		ItemName:        faker.Word() + " " + faker.Word(),
		Description:     faker.Sentence(),
		Category:        category,
		Condition:       "Good",
		DailyPricing:    decimal.NewFromInt(25),
		WeeklyPricing:   decimal.NewFromInt(150),
		MonthlyPricing:  decimal.NewFromInt(500),
		SecurityDeposit: decimal.NewFromInt(100),
		IsAvailable:     available,
		Photos:          []string{"https://res.cloudinary.com/demo/image/upload/sample.jpg"},
		OwnerID:         uuid.NewString(),
		PickupLocation:  "Lagos",
		CreatedAt:       f.created(5),
		UpdatedAt:       f.created(1),
	}
}

// Order returns a rental with a three-day window.
func (f *Fixtures) Order(status string) models.Order {
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	return models.Order{
		OrderID:       uuid.NewString(),
		OrderDate:     from.AddDate(0, 0, -2),
		LendingFrom:   from,
		LendingTo:     from.AddDate(0, 0, 2),
		TotalPrice:    decimal.NewFromInt(75),
		Status:        status,
		PaymentMethod: "card",
		Borrower:      models.Party{UserID: uuid.NewString(), Name: faker.Name(), Email: faker.Email()},
		Lender:        models.Party{UserID: uuid.NewString(), Name: faker.Name(), Email: faker.Email()},
		Product:       models.OrderProduct{ID: uuid.NewString(), ItemName: faker.Word(), DailyPricing: decimal.NewFromInt(25)},
	}
}

// Membership returns a subscription request.
func (f *Fixtures) Membership(status string) models.Membership {
	return models.Membership{
		ID:           uuid.NewString(),
		UserID:       uuid.NewString(),
		Name:         faker.Name(),
		Email:        faker.Email(),
		Plan:         "premium",
		Price:        decimal.RequireFromString("9.99"),
		BillingCycle: "monthly",
		Status:       status,
		CreatedAt:    f.created(2),
	}
}

// Contact returns a contact-form message.
func (f *Fixtures) Contact(replied bool) models.Contact {
	return models.Contact{
		ID:          uuid.NewString(),
		FirstName:   faker.FirstName(),
		LastName:    faker.LastName(),
		Email:       faker.Email(),
		PhoneNumber: faker.Phonenumber(),
		Role:        "customer",
		Message:     faker.Sentence(),
		Replied:     replied,
		CreatedAt:   f.created(3),
	}
}

// Blog returns a post with the given status.
func (f *Fixtures) Blog(status string) models.Blog {
	title := faker.Sentence()
	return models.Blog{
		ID:        uuid.NewString(),
		Title:     title,
		Author:    faker.Name(),
		Category:  "News",
		Content:   fmt.Sprintf("<p>%s</p>", faker.Paragraph()),
		Status:    status,
		CreatedAt: f.created(4),
	}
}
