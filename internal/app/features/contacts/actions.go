// internal/app/features/contacts/actions.go
package contacts

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/gates"
	"github.com/bigkoko/kokoadmin/internal/app/system/htmlsanitize"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleReply handles POST /dashboard/contacts/{id}/reply. The reply is sent
// as plain text; any markup typed into the box is dropped.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	viewURL := listURL + "/" + id

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", viewURL)
		return
	}
	reply := htmlsanitize.StripTags(r.FormValue("replyMessage"))

	if reply == "" {
		h.reRender(w, r, id, r.FormValue("replyMessage"), "Reply message is required.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "reply contact")
	defer cancel()

	err := h.Contacts.Reply(ctx, models.ContactReply{ContactID: id, ReplyMessage: reply})
	if err != nil {
		if h.ErrLog.SessionExpired(w, r, "reply contact", err) {
			return
		}
		h.Log.Warn("reply contact failed", zap.Error(err), zap.String("contact_id", id))
		h.reRender(w, r, id, reply, "Their was error sending reply")
		return
	}

	h.AuditLog.ContactReplied(r.Context(), r, id)
	h.Flash.Success(w, r, "Reply sent successful")
	http.Redirect(w, r, viewURL, http.StatusSeeOther)
}

// reRender shows the message again with the draft kept and an error.
func (h *Handler) reRender(w http.ResponseWriter, r *http.Request, id, draft, msg string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get contact")
	defer cancel()

	c, err := h.Contacts.GetByID(ctx, id)
	if err != nil {
		h.Flash.Error(w, r, msg)
		http.Redirect(w, r, listURL+"/"+id, http.StatusSeeOther)
		return
	}
	data := buildView(viewdata.NewBaseVM(r, "Message from "+c.FullName(), listURL), c, authz.CanManageAdmins(r))
	data.Draft = draft
	data.SetError(msg)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "contact_view", data)
}

// HandleDelete handles POST /dashboard/contacts/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireAdminManager(w, r, "Only admins can delete messages.", listURL); !g.OK {
		return
	}
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", listURL)
		return
	}
	back := urlutil.SafeReturn(formutil.Value(r, "return"), id, listURL)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete contact")
	defer cancel()

	if err := h.Contacts.Delete(ctx, id); err != nil {
		if h.ErrLog.SessionExpired(w, r, "delete contact", err) {
			return
		}
		h.Log.Warn("delete contact failed", zap.Error(err), zap.String("contact_id", id))
		h.Flash.Error(w, r, "Failed to delete message")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.AuditLog.ContactDeleted(r.Context(), r, id)
	h.Flash.Success(w, r, "Message deleted Successful")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
