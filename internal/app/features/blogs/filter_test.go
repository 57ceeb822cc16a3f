package blogs

import (
	"strings"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

func TestFilterBlogs(t *testing.T) {
	all := []models.Blog{
		{ID: "1", Title: "Renting a camera", Author: "Ada Obi", Status: models.BlogPublished},
		{ID: "2", Title: "Lender safety tips", Author: "Bayo Lawal", Status: models.BlogDraft},
		{ID: "3", Title: "Community update", Author: "Ada Obi", Status: models.BlogDraft},
	}

	if got := filterBlogs(all, "ada", "all"); len(got) != 2 {
		t.Errorf("search author: got %d rows, want 2", len(got))
	}
	if got := filterBlogs(all, "", models.BlogDraft); len(got) != 2 {
		t.Errorf("draft filter: got %d rows, want 2", len(got))
	}
	if got := filterBlogs(all, "camera", models.BlogDraft); len(got) != 0 {
		t.Errorf("combined: got %+v", got)
	}
}

func TestBuildView_SanitizesContent(t *testing.T) {
	b := models.Blog{ID: "b1", Title: "Hi", Content: `<p onclick="x()">Hello</p><script>alert(1)</script>`}
	vd := buildView(viewdata.BaseVM{}, b, false)

	got := string(vd.Content)
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Errorf("content not sanitized: %s", got)
	}
	if !strings.Contains(got, "Hello") {
		t.Errorf("content lost text: %s", got)
	}
}

func TestFormData_Action(t *testing.T) {
	if got := (formData{}).Action(); got != "/dashboard/blogs" {
		t.Errorf("new action = %q", got)
	}
	if got := (formData{ID: "b1"}).Action(); got != "/dashboard/blogs/b1/edit" {
		t.Errorf("edit action = %q", got)
	}
}
