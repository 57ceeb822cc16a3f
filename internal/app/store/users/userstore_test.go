package userstore_test

import (
	"errors"
	"net/http"
	"testing"

	userstore "github.com/bigkoko/kokoadmin/internal/app/store/users"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bigkoko/kokoadmin/internal/testutil"
)

func TestStore_List_PassesPaging(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fx := testutil.NewFixtures(t)
	rows := []models.User{fx.User("customer", true), fx.User("seller", false)}
	fb.Router.Get("/users", testutil.Respond(http.StatusOK, map[string]any{
		"users":      rows,
		"total":      12,
		"page":       2,
		"totalPages": 2,
	}))

	store := userstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page, err := store.List(ctx, 2, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Items) != 2 || page.Total != 12 || page.TotalPages != 2 {
		t.Errorf("unexpected page: %+v", page)
	}
	if q := fb.LastCall(t).Query; q != "limit=10&page=2" {
		t.Errorf("query = %q", q)
	}
}

func TestStore_SetActive(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Put("/users", testutil.Respond(http.StatusOK, models.User{UserID: "u1", Active: false}))

	store := userstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.SetActive(ctx, "u1", false)
	if err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if got.UserID != "u1" {
		t.Errorf("returned user = %+v", got)
	}

	call := fb.LastCall(t)
	if call.Query != "userId=u1" {
		t.Errorf("query = %q", call.Query)
	}
	var body map[string]bool
	call.Decode(t, &body)
	if active, ok := body["active"]; !ok || active {
		t.Errorf("body = %v", body)
	}
}

func TestStore_SetActive_RelaysBackendError(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Put("/users", testutil.Respond(http.StatusConflict, map[string]string{"message": "User is banned"}))

	store := userstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.SetActive(ctx, "u1", true)
	if backend.StatusOf(err) != http.StatusConflict || backend.MessageOf(err, "") != "User is banned" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Delete("/users", testutil.Respond(http.StatusOK, map[string]string{}))

	store := userstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Delete(ctx, "u9"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if call := fb.LastCall(t); call.Method != http.MethodDelete || call.Query != "userId=u9" {
		t.Errorf("unexpected call %s ?%s", call.Method, call.Query)
	}
}

func TestStore_ChangePlan(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Post("/plan", testutil.Respond(http.StatusOK, map[string]string{}))

	store := userstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.ChangePlan(ctx, "", "premium"); !errors.Is(err, userstore.ErrUserIDRequired) {
		t.Fatalf("expected ErrUserIDRequired, got %v", err)
	}
	if len(fb.Calls()) != 0 {
		t.Fatal("no backend call expected without a user ID")
	}

	if err := store.ChangePlan(ctx, "u1", "premium"); err != nil {
		t.Fatalf("ChangePlan failed: %v", err)
	}
	var body models.PlanChange
	fb.LastCall(t).Decode(t, &body)
	if body != (models.PlanChange{Plan: "premium", UserID: "u1"}) {
		t.Errorf("body = %+v", body)
	}
}
