// internal/app/features/login/handler.go
package login

import (
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	"github.com/bigkoko/kokoadmin/internal/app/store/authstore"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/ratelimit"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

const (
	msgMissing     = "Email and password are required"
	msgFailed      = "Login failed"
	msgUnreachable = "Authentication error, please try again"
	msgNoSession   = "Unable to create session. Please try again."
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Auth       *authstore.Store
	Limiter    *ratelimit.LoginLimiter
	AuditLog   *auditlog.Logger
}

func NewHandler(
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	authStore *authstore.Store,
	limiter *ratelimit.LoginLimiter,
	auditLog *auditlog.Logger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Auth:       authStore,
		Limiter:    limiter,
		AuditLog:   auditLog,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
	Expired   bool
}

// ServeLogin renders the sign-in form. A staff member who is already signed
// in goes straight to the dashboard.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, urlutil.SafeReturn(query.Get(r, "return"), "", "/dashboard"), http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL: query.Get(r, "return"),
		Expired:   query.Get(r, "expired") != "",
	})
}

// HandleLoginPost exchanges the submitted credentials for a backend token
// and starts a session.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := normalize.Email(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	returnURL := strings.TrimSpace(r.PostFormValue("return"))

	if email == "" || password == "" {
		h.renderFormWithError(w, r, http.StatusBadRequest, msgMissing, email, returnURL)
		return
	}

	if ok, reason := h.Limiter.Check(r, email); !ok {
		h.AuditLog.LoginRateLimited(r.Context(), r, email)
		h.renderFormWithError(w, r, http.StatusTooManyRequests, reason, email, returnURL)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "backend login")
	defer cancel()

	id, err := h.Auth.Login(ctx, email, password)
	if err != nil {
		var ae *backend.APIError
		switch {
		case errors.As(err, &ae):
			msg := backend.MessageOf(err, msgFailed)
			h.AuditLog.LoginFailed(r.Context(), r, email, msg)
			h.renderFormWithError(w, r, http.StatusUnauthorized, msg, email, returnURL)
		case errors.Is(err, authstore.ErrNoToken):
			h.Log.Warn("backend login issued no token", zap.String("email", email))
			h.AuditLog.LoginFailed(r.Context(), r, email, "no token issued")
			h.renderFormWithError(w, r, http.StatusUnauthorized, msgFailed, email, returnURL)
		default:
			h.Log.Error("backend login failed", zap.Error(err))
			h.renderFormWithError(w, r, http.StatusBadGateway, msgUnreachable, email, returnURL)
		}
		return
	}

	user := auth.SessionUser{
		ID:    id.AdminID,
		Name:  id.Name(),
		Email: id.Email,
		Role:  models.NormalizeRole(id.Role),
		Token: id.Token,
	}
	if user.Name == "" {
		user.Name = user.Email
	}
	if err := h.SessionMgr.SignIn(w, r, user); err != nil {
		h.Log.Error("session sign-in failed", zap.Error(err), zap.String("email", email))
		h.renderFormWithError(w, r, http.StatusInternalServerError, msgNoSession, email, returnURL)
		return
	}

	h.Limiter.ResetEmail(email)
	h.AuditLog.LoginSuccess(r.Context(), r, user.ID, user.Email, user.Role)
	h.Log.Info("staff signed in", zap.String("admin_id", user.ID), zap.String("role", user.Role))

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/dashboard"), http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, status int, msg, email, returnURL string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: returnURL,
	})
}
