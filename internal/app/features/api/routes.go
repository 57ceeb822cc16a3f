// internal/app/features/api/routes.go
package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/ratelimit"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the JSON pass-through API (typically at "/api"). Every
// route needs a session; deletes and admin management need an admin role.
func Routes(h *Handler, sm *auth.SessionManager, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/stats", h.relay(route{method: http.MethodGet, target: fixed("/stats"), fallback: "Failed to fetch stats"}))

		pr.Get("/users", h.relay(route{method: http.MethodGet, target: paged("/users"), fallback: "Failed to fetch users"}))
		pr.Put("/users/plan", h.relay(route{
			method: http.MethodPost, target: fixed("/plan"),
			errKey: "message", fallback: "Failed to update user",
			success: "User updated successfully", dataKey: "user",
			check: requireField("userId", "User ID is required"),
		}))
		pr.Put("/users/{userId}", h.relay(route{
			method: http.MethodPut, target: byQuery("/users", "userId", "userId"),
			errKey: "message", fallback: "Failed to update user",
			success: "User updated successfully", dataKey: "user",
		}))

		pr.Get("/products", h.relay(route{method: http.MethodGet, target: paged("/products"), fallback: "Failed to fetch products"}))
		pr.Get("/products/{productId}", h.relay(route{method: http.MethodGet, target: byPath("/products/", "productId", ""), fallback: "Failed to get product status"}))
		pr.Patch("/products/{productId}", h.relay(route{method: http.MethodPatch, target: byPath("/products/", "productId", ""), fallback: "Failed to update product"}))

		pr.Get("/orders", h.relay(route{method: http.MethodGet, target: paged("/orders"), fallback: "Failed to fetch Orders, Try again"}))
		pr.Get("/orders/{orderId}", h.relay(route{method: http.MethodGet, target: byPath("/orders/", "orderId", ""), fallback: "Failed to get Order status"}))
		pr.Patch("/orders/{orderId}", h.relay(route{
			method: http.MethodPatch, target: byPath("/orders/", "orderId", ""),
			fallback: "Failed to update order status",
			check:    orderStatus,
		}))

		pr.Get("/membership", h.relay(route{method: http.MethodGet, target: fixed("/membership"), fallback: "Failed to fetch Subscriptions"}))

		pr.Get("/contacts", h.relay(route{method: http.MethodGet, target: fixed("/contacts"), errKey: "message", fallback: "Error fethcing the messages"}))
		pr.Post("/contacts", h.relay(route{
			method: http.MethodPost, target: fixed("/contacts"),
			errKey: "message", fallback: "Their was error sending reply",
			errStatus: http.StatusBadRequest, fixedMsg: true,
			success: "Reply sent successful",
		}))

		pr.Get("/blogs", h.relay(route{method: http.MethodGet, target: fixed("/blogs"), errKey: "message", fallback: "Failed to fetch blogs"}))
		pr.Post("/blogs", h.relay(route{method: http.MethodPost, target: fixed("/blogs"), errKey: "message", fallback: "Internal server error, please try again", created: true}))
		pr.Get("/blogs/{id}", h.relay(route{method: http.MethodGet, target: byPath("/blogs/", "id", ""), errKey: "message", fallback: "Failed to fetch blog"}))
		pr.Put("/blogs/{id}", h.relay(route{method: http.MethodPut, target: byPath("/blogs/", "id", ""), errKey: "message", fallback: "Failed to update blog post"}))

		// Settings always act on the signed-in admin.
		pr.Get("/settings", h.relay(route{method: http.MethodGet, target: self("/settings"), errKey: "message", fallback: "Failed to fetch profile data"}))
		pr.Post("/settings", h.relay(route{method: http.MethodPost, target: self("/settings"), errKey: "message", fallback: "Failed to Update profile data"}))
		pr.Post("/settings/password", h.relay(route{method: http.MethodPost, target: self("/settings/password"), errKey: "message", fallback: "Failed to Your password, Please try again"}))

		pr.Group(func(ar chi.Router) {
			ar.Use(sm.RequireRole(authz.RoleSuperAdmin, authz.RoleAdmin))

			ar.Get("/admins", h.relay(route{method: http.MethodGet, target: fixed("/admins/all"), fallback: "Failed to fetch admins"}))
			ar.Post("/admins", h.relay(route{method: http.MethodPost, target: fixed("/auth/register"), fallback: "Failed to add admin"}))
			ar.Patch("/admins/{adminId}", h.relay(route{
				method: http.MethodPatch, target: byPath("/admins/", "adminId", "/status"),
				fallback: "Failed to update admin",
				check:    notSelfDeactivate,
			}))
			ar.Delete("/admins/{adminId}", h.relay(route{
				method: http.MethodDelete, target: byPath("/admins/", "adminId", "/delete"),
				fallback: "Failed to delete admin", success: "Admin deleted successfully",
				check: notSelfDelete,
			}))

			ar.Delete("/users/{userId}", h.relay(route{
				method: http.MethodDelete, target: byQuery("/users", "userId", "userId"),
				fallback: "Failed to delete user", success: "User deleted successfully", dataKey: "data",
			}))
			ar.Delete("/products/{productId}", h.relay(route{
				method: http.MethodDelete, target: byPath("/products/", "productId", ""),
				fallback: "Failed to delete product", success: "Product deleted successfully",
			}))
			ar.Delete("/membership/{memberId}", h.relay(route{
				method: http.MethodDelete, target: byPath("/membership/", "memberId", ""),
				errKey: "message", fallback: "Internal Server error", success: "Subscription deleted successful",
			}))
			ar.Delete("/contacts", h.relay(route{
				method: http.MethodDelete, target: fixed("/contacts"),
				errKey: "message", fallback: "There was any error deleting message", success: "Message deleted Successful",
			}))
			ar.Delete("/blogs/{id}", h.relay(route{
				method: http.MethodDelete, target: byPath("/blogs/", "id", ""),
				errKey: "message", fallback: "Failed to delete blog post", success: "Blog post deleted successfully!",
			}))
		})
	})

	return r
}

// paged forwards page and limit, defaulting to 1 and 10.
func paged(path string) func(*http.Request) (string, url.Values) {
	return func(r *http.Request) (string, url.Values) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}
		return path, url.Values{"page": {strconv.Itoa(page)}, "limit": {strconv.Itoa(limit)}}
	}
}

func byPath(prefix, param, suffix string) func(*http.Request) (string, url.Values) {
	return func(r *http.Request) (string, url.Values) {
		return prefix + url.PathEscape(pathParam(r, param)) + suffix, nil
	}
}

// pathParam returns the decoded URL parameter. chi matches on RawPath when
// the request carries one, leaving segments such as "a%2Fb" escaped.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

func byQuery(path, param, key string) func(*http.Request) (string, url.Values) {
	return func(r *http.Request) (string, url.Values) {
		return path, url.Values{key: {pathParam(r, param)}}
	}
}

// self targets path?adminId=<signed-in admin>.
func self(path string) func(*http.Request) (string, url.Values) {
	return func(r *http.Request) (string, url.Values) {
		var id string
		if u, ok := auth.CurrentUser(r); ok {
			id = u.ID
		}
		return path, url.Values{"adminId": {id}}
	}
}

func requireField(key, msg string) func(*http.Request, map[string]any) error {
	return func(_ *http.Request, body map[string]any) error {
		if s, _ := body[key].(string); strings.TrimSpace(s) == "" {
			return badRequest{msg}
		}
		return nil
	}
}

func orderStatus(_ *http.Request, body map[string]any) error {
	s, _ := body["status"].(string)
	for _, st := range models.OrderStatuses {
		if strings.EqualFold(strings.TrimSpace(s), st) {
			return nil
		}
	}
	return badRequest{"Invalid order status"}
}

// notSelfDelete stops an admin deleting their own account.
func notSelfDelete(r *http.Request, _ map[string]any) error {
	if isSelf(r) {
		return badRequest{"You cannot delete your own account."}
	}
	return nil
}

// notSelfDeactivate lets an admin patch their own status only to "active".
func notSelfDeactivate(r *http.Request, body map[string]any) error {
	if !isSelf(r) {
		return nil
	}
	if s, _ := body["status"].(string); strings.ToLower(strings.TrimSpace(s)) != "active" {
		return badRequest{"You cannot deactivate your own account."}
	}
	return nil
}

func isSelf(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.ID != "" && pathParam(r, "adminId") == u.ID
}
