// internal/app/features/blogs/types.go
package blogs

import (
	"html/template"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/htmlsanitize"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

var statuses = []string{models.BlogDraft, models.BlogPublished}

type blogRow struct {
	ID       string
	Title    string
	Slug     string
	Author   string
	Category string
	Status   string
	Image    string
	Excerpt  string
	Created  string
}

type listData struct {
	viewdata.BaseVM

	Query    string
	Status   string
	Statuses []string

	CanDelete bool
	Rows      []blogRow
	Pager     paging.Pager
}

type viewData struct {
	viewdata.BaseVM

	ID        string
	Title     string
	Slug      string
	Author    string
	Category  string
	Status    string
	Image     string
	Images    []string
	Created   string
	Content   template.HTML
	CanDelete bool
}

type formData struct {
	viewdata.BaseVM
	formutil.Base

	ID            string // empty when creating
	Title         string
	Author        string
	Category      string
	Content       string
	Status        string
	FeaturedImage string
	ImagesURL     string // one URL per line
	Categories    []string
	Statuses      []string
	CanUpload     bool
}

// Action is the URL the editor form posts to.
func (f formData) Action() string {
	if f.ID == "" {
		return listURL
	}
	return listURL + "/" + f.ID + "/edit"
}

// blogInput defines validation rules for the editor.
type blogInput struct {
	Title    string `validate:"required,max=200" label:"Title"`
	Author   string `validate:"required,max=100" label:"Author"`
	Category string `validate:"required,max=60" label:"Category"`
	Status   string `validate:"required,blogstatus" label:"Status"`
}

func toRow(b models.Blog) blogRow {
	return blogRow{
		ID:       b.ID,
		Title:    b.Title,
		Slug:     b.Slug,
		Author:   b.Author,
		Category: b.Category,
		Status:   b.Status,
		Image:    b.FeaturedImage,
		Excerpt:  htmlsanitize.Excerpt(b.Content, 120),
		Created:  format.Date(b.CreatedAt),
	}
}

func buildView(base viewdata.BaseVM, b models.Blog, canDelete bool) viewData {
	return viewData{
		BaseVM:    base,
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Author:    b.Author,
		Category:  b.Category,
		Status:    b.Status,
		Image:     b.FeaturedImage,
		Images:    b.ImagesURL,
		Created:   format.DateTime(b.CreatedAt),
		Content:   htmlsanitize.SanitizeToHTML(b.Content),
		CanDelete: canDelete,
	}
}

func formFromBlog(base viewdata.BaseVM, b models.Blog) formData {
	return formData{
		BaseVM:        base,
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Category:      b.Category,
		Content:       b.Content,
		Status:        b.Status,
		FeaturedImage: b.FeaturedImage,
		ImagesURL:     strings.Join(b.ImagesURL, "\n"),
		Categories:    models.BlogCategories,
		Statuses:      statuses,
	}
}
