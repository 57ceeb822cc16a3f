// internal/app/features/blogs/form.go
package blogs

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/htmlsanitize"
	"github.com/bigkoko/kokoadmin/internal/app/system/inputval"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/uploads"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeNew handles GET /dashboard/blogs/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM:     viewdata.NewBaseVM(r, "New blog post", listURL),
		Status:     models.BlogDraft,
		Categories: models.BlogCategories,
		Statuses:   statuses,
		CanUpload:  h.Images != nil,
	}
	if u, ok := auth.CurrentUser(r); ok {
		data.Author = u.Name
	}
	templates.Render(w, r, "blog_form", data)
}

// ServeEdit handles GET /dashboard/blogs/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get blog")
	defer cancel()

	b, err := h.Blogs.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogBackend(w, r, "get blog", err, "Failed to fetch blog post", listURL)
		return
	}

	data := formFromBlog(viewdata.NewBaseVM(r, "Edit "+b.Title, listURL+"/"+id), b)
	data.CanUpload = h.Images != nil
	templates.Render(w, r, "blog_form", data)
}

// HandleCreate handles POST /dashboard/blogs.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "")
}

// HandleEdit handles POST /dashboard/blogs/{id}/edit.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, chi.URLParam(r, "id"))
}

// parseEditor reads the editor post, which is multipart when a featured
// image is attached.
func parseEditor(w http.ResponseWriter, r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, limits.MaxUploadSize)
		return r.ParseMultipartForm(limits.MaxBlogFormSize)
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBlogFormSize)
	return r.ParseForm()
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, id string) {
	back := listURL + "/new"
	title := "New blog post"
	if id != "" {
		back = listURL + "/" + id + "/edit"
		title = "Edit blog post"
	}

	if err := parseEditor(w, r); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.ErrLog.LogBadRequest(w, r, "blog form too large", err, "Images must be 5 MB or smaller.", back)
			return
		}
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", back)
		return
	}

	in := blogInput{
		Title:    formutil.Value(r, "title"),
		Author:   formutil.Value(r, "author"),
		Category: formutil.Value(r, "category"),
		Status:   formutil.Value(r, "status"),
	}
	content := htmlsanitize.Sanitize(r.FormValue("content"))
	featured := formutil.Value(r, "featuredImage")

	data := formData{
		BaseVM:        viewdata.NewBaseVM(r, title, listURL),
		ID:            id,
		Title:         in.Title,
		Author:        in.Author,
		Category:      in.Category,
		Content:       content,
		Status:        in.Status,
		FeaturedImage: featured,
		ImagesURL:     strings.Join(formutil.Lines(r, "imagesUrl"), "\n"),
		Categories:    models.BlogCategories,
		Statuses:      statuses,
		CanUpload:     h.Images != nil,
	}
	reRender := func(status int, msg string) {
		data.SetError(msg)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		templates.Render(w, r, "blog_form", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		reRender(http.StatusBadRequest, res.First())
		return
	}
	if htmlsanitize.StripTags(content) == "" {
		reRender(http.StatusBadRequest, "Content is required.")
		return
	}
	if featured != "" && !strings.HasPrefix(featured, "/") && !inputval.IsValidHTTPURL(featured) {
		reRender(http.StatusBadRequest, "Featured image must be a valid URL.")
		return
	}

	var uploaded *uploads.Image
	file, header, ferr := r.FormFile("featuredImageFile")
	if ferr == nil && header != nil && header.Size > 0 {
		defer file.Close()
		if h.Images == nil {
			reRender(http.StatusBadRequest, "Image uploads are not configured.")
			return
		}

		uctx, ucancel := timeouts.WithTimeout(r.Context(), timeouts.Upload(), h.Log, "upload blog image")
		up, err := uploads.SaveImage(uctx, h.Images, imagePrefix, file)
		ucancel()
		switch {
		case errors.Is(err, uploads.ErrTooLarge), errors.Is(err, uploads.ErrNotImage):
			reRender(http.StatusBadRequest, err.Error())
			return
		case err != nil:
			h.Log.Error("blog image upload failed", zap.Error(err))
			reRender(http.StatusInternalServerError, "Failed to upload image. Please try again.")
			return
		}
		uploaded = &up
		data.FeaturedImage = up.URL
	}

	input := models.BlogInput{
		Title:         in.Title,
		Author:        in.Author,
		Category:      in.Category,
		Content:       content,
		Status:        in.Status,
		ImagesURL:     formutil.Lines(r, "imagesUrl"),
		FeaturedImage: data.FeaturedImage,
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "save blog")
	defer cancel()

	var (
		saved models.Blog
		err   error
	)
	if id == "" {
		saved, err = h.Blogs.Create(ctx, input)
	} else {
		saved, err = h.Blogs.Update(ctx, id, input)
	}
	if err != nil {
		if uploaded != nil {
			// the post never referenced it
			if derr := uploads.Remove(r.Context(), h.Images, uploaded.Path); derr != nil {
				h.Log.Warn("orphaned blog image", zap.String("path", uploaded.Path), zap.Error(derr))
			}
			data.FeaturedImage = featured
		}
		if h.ErrLog.SessionExpired(w, r, "save blog", err) {
			return
		}
		h.Log.Warn("save blog failed", zap.Error(err), zap.String("blog_id", id))
		fallback := "Failed to create blog post"
		if id != "" {
			fallback = "Failed to update blog post"
		}
		reRender(backend.StatusOf(err), backend.MessageOf(err, fallback))
		return
	}

	if id == "" {
		h.AuditLog.BlogCreated(r.Context(), r, saved.ID, in.Title)
		h.Flash.Success(w, r, "Blog post created successfully!")
		http.Redirect(w, r, listURL, http.StatusSeeOther)
		return
	}
	h.AuditLog.BlogUpdated(r.Context(), r, id, in.Title)
	h.Flash.Success(w, r, "Blog post updated successfully!")
	http.Redirect(w, r, listURL+"/"+id, http.StatusSeeOther)
}
