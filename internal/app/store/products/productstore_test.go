package productstore_test

import (
	"errors"
	"net/http"
	"testing"

	productstore "github.com/bigkoko/kokoadmin/internal/app/store/products"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bigkoko/kokoadmin/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestStore_GetByID_Envelope(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fx := testutil.NewFixtures(t)
	p := fx.Product("Electronics", true)
	fb.Router.Get("/products/{id}", testutil.Respond(http.StatusOK, map[string]any{"data": p}))

	store := productstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ID != p.ID || got.ItemName != p.ItemName || !got.DailyPricing.Equal(p.DailyPricing) {
		t.Errorf("got %+v, want %+v", got, p)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/products/{id}", testutil.Respond(http.StatusNotFound, map[string]string{"message": "Product not found"}))

	store := productstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, "nope"); !errors.Is(err, backend.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Patch("/products/{id}", testutil.Respond(http.StatusOK, models.Product{ID: "p1", ItemName: "Tent"}))

	store := productstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	upd := models.ProductUpdate{
		ItemName:     "Tent",
		Category:     "Sports & Outdoors",
		Condition:    "Good",
		DailyPricing: decimal.RequireFromString("12.50"),
		IsAvailable:  true,
	}
	got, err := store.Update(ctx, "p1", upd)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.ItemName != "Tent" {
		t.Errorf("returned product = %+v", got)
	}

	var sent models.ProductUpdate
	fb.LastCall(t).Decode(t, &sent)
	if !sent.DailyPricing.Equal(upd.DailyPricing) || sent.Category != upd.Category || !sent.IsAvailable {
		t.Errorf("sent = %+v", sent)
	}
}

func TestStore_Delete_RelaysStatus(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Delete("/products/{id}", testutil.Respond(http.StatusConflict, map[string]string{"message": "Product is currently lent"}))

	store := productstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Delete(ctx, "p1")
	if backend.StatusOf(err) != http.StatusConflict {
		t.Errorf("status = %d", backend.StatusOf(err))
	}
	if backend.MessageOf(err, "Failed to delete product") != "Product is currently lent" {
		t.Errorf("message = %q", backend.MessageOf(err, ""))
	}
}
