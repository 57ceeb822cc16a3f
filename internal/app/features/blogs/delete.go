// internal/app/features/blogs/delete.go
package blogs

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/gates"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles POST /dashboard/blogs/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireAdminManager(w, r, "Only admins can delete blog posts.", listURL); !g.OK {
		return
	}
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", listURL)
		return
	}
	back := urlutil.SafeReturn(formutil.Value(r, "return"), id, listURL)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete blog")
	defer cancel()

	if err := h.Blogs.Delete(ctx, id); err != nil {
		if h.ErrLog.SessionExpired(w, r, "delete blog", err) {
			return
		}
		h.Log.Warn("delete blog failed", zap.Error(err), zap.String("blog_id", id))
		h.Flash.Error(w, r, backend.MessageOf(err, "Failed to delete blog post"))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.AuditLog.BlogDeleted(r.Context(), r, id)
	h.Flash.Success(w, r, "Blog post deleted successfully!")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
