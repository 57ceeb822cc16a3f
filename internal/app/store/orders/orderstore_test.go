package orderstore_test

import (
	"errors"
	"net/http"
	"testing"

	orderstore "github.com/bigkoko/kokoadmin/internal/app/store/orders"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bigkoko/kokoadmin/internal/testutil"
)

func TestStore_List(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fx := testutil.NewFixtures(t)
	fb.Router.Get("/orders", testutil.Respond(http.StatusOK, []models.Order{
		fx.Order(models.OrderPending),
		fx.Order(models.OrderDelivered),
	}))

	store := orderstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page, err := store.List(ctx, 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("got %d orders, want 2", len(page.Items))
	}
	if page.Items[0].RentalDays() != 3 {
		t.Errorf("RentalDays = %d, want 3", page.Items[0].RentalDays())
	}
}

func TestStore_GetByID(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fx := testutil.NewFixtures(t)
	o := fx.Order(models.OrderShipped)
	fb.Router.Get("/orders/{id}", testutil.Respond(http.StatusOK, o))

	store := orderstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.GetByID(ctx, o.OrderID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.OrderID != o.OrderID || got.Status != models.OrderShipped {
		t.Errorf("got %+v", got)
	}
	if fb.LastCall(t).Path != "/orders/"+o.OrderID {
		t.Errorf("path = %q", fb.LastCall(t).Path)
	}
}

func TestStore_SetStatus(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Patch("/orders/{id}", testutil.Respond(http.StatusOK, map[string]string{}))

	store := orderstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.SetStatus(ctx, "o1", "Lost"); !errors.Is(err, orderstore.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(fb.Calls()) != 0 {
		t.Fatal("invalid status must not reach the backend")
	}

	if err := store.SetStatus(ctx, "o1", models.OrderDelivered); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	var body map[string]string
	fb.LastCall(t).Decode(t, &body)
	if body["status"] != models.OrderDelivered {
		t.Errorf("body = %v", body)
	}
}
