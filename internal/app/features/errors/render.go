// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Sign in required", backURL),
		Status:  http.StatusUnauthorized,
		Message: "Please sign in to continue.",
	}
	data.BackURL = backURL
	writeStatus(w, http.StatusUnauthorized)
	templates.Render(w, r, "error_unauthorized", data)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Access denied", "/dashboard"),
		Status:  http.StatusForbidden,
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	writeStatus(w, http.StatusForbidden)
	templates.Render(w, r, "error_forbidden", data)
}

// RenderError shows the generic error page with the given status.
func RenderError(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, "/dashboard"),
		Status:  status,
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	writeStatus(w, status)
	templates.Render(w, r, "error_page", data)
}

func writeStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
}
