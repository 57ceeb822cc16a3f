package blogstore_test

import (
	"encoding/json"
	"net/http"
	"testing"

	blogstore "github.com/bigkoko/kokoadmin/internal/app/store/blogs"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bigkoko/kokoadmin/internal/testutil"
)

func TestStore_List_DerivesSlugs(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/blogs", testutil.Respond(http.StatusOK, map[string]any{
		"blogs": []models.Blog{
			{ID: "b1", Title: "Renting Power Tools: A Guide"},
			{ID: "b2", Title: "Ignored", Slug: "custom-slug"},
		},
	}))

	store := blogstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got[0].Slug != "renting-power-tools-a-guide" {
		t.Errorf("slug[0] = %q", got[0].Slug)
	}
	if got[1].Slug != "custom-slug" {
		t.Errorf("slug[1] = %q", got[1].Slug)
	}
}

func TestStore_Create_FillsDefaults(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Post("/blogs", func(w http.ResponseWriter, r *http.Request) {
		var in models.BlogInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		testutil.JSON(w, http.StatusCreated, map[string]any{
			"message": "created",
			"data":    models.Blog{ID: "b9", Title: in.Title, Status: in.Status},
		})
	})

	store := blogstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.BlogInput{Title: "Hello World", Content: "<p>x</p>"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != "b9" || created.Status != models.BlogDraft {
		t.Errorf("created = %+v", created)
	}

	var sent map[string]any
	fb.LastCall(t).Decode(t, &sent)
	if sent["slug"] != "hello-world" {
		t.Errorf("slug = %v", sent["slug"])
	}
	if imgs, ok := sent["images_url"].([]any); !ok || len(imgs) != 0 {
		t.Errorf("images_url = %#v, want empty array", sent["images_url"])
	}
}

func TestStore_UpdateAndDelete(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Put("/blogs/{id}", testutil.Respond(http.StatusOK, models.Blog{ID: "b1", Title: "New"}))
	fb.Router.Delete("/blogs/{id}", testutil.Respond(http.StatusOK, map[string]string{"message": "deleted"}))

	store := blogstore.New(fb.Client(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.Update(ctx, "b1", models.BlogInput{Title: "New", Status: models.BlogPublished})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Slug != "new" {
		t.Errorf("slug = %q", got.Slug)
	}
	if c := fb.LastCall(t); c.Method != http.MethodPut || c.Path != "/blogs/b1" {
		t.Errorf("unexpected call %s %s", c.Method, c.Path)
	}

	if err := store.Delete(ctx, "b1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}
