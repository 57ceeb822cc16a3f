package home

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
)

// ServeRoot sends signed-in staff to the dashboard and everyone else to
// the sign-in page.
func ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
