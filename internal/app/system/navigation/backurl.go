// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/dashboard/users").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject (e.g., "/edit", "/delete", "/new").
	// These prevent redirect loops back to action pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string

	// PreserveQueryParam is an optional query parameter to preserve in the fallback URL.
	// For example, "status" keeps an active list filter when falling back.
	PreserveQueryParam string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return", validates
// the URL is safe (not an open redirect), optionally validates the prefix,
// and excludes specified subpaths to prevent redirect loops.
//
// Example usage:
//
//	url := navigation.SafeBackURL(r, navigation.BackURLOptions{
//	    AllowedPrefix:      "/dashboard/orders",
//	    ExcludedSubpaths:   []string{"/status"},
//	    Fallback:           "/dashboard/orders",
//	    PreserveQueryParam: "status",
//	})
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	// Try query parameter first, then form value
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	// Validate against allowed prefix if specified
	if ret != "" {
		valid := true

		if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
			valid = false
		}

		// Check excluded subpaths
		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(ret, excluded) {
				valid = false
				break
			}
		}

		if valid {
			return ret
		}
	}

	// Build fallback URL, optionally preserving a query parameter
	fallback := opts.Fallback
	if opts.PreserveQueryParam != "" {
		param := query.Get(r, opts.PreserveQueryParam)
		if param == "" {
			param = strings.TrimSpace(r.FormValue(opts.PreserveQueryParam))
		}
		if param != "" && param != "all" {
			if strings.Contains(fallback, "?") {
				fallback += "&" + opts.PreserveQueryParam + "=" + param
			} else {
				fallback += "?" + opts.PreserveQueryParam + "=" + param
			}
		}
	}

	return fallback
}

// Common back URL configurations for reuse across packages.
var (
	// AdminsBackURL returns options for admin account pages.
	AdminsBackURL = BackURLOptions{
		AllowedPrefix:    "/dashboard/admins",
		ExcludedSubpaths: []string{"/new", "/delete", "/status"},
		Fallback:         "/dashboard/admins",
	}

	// UsersBackURL returns options for marketplace user pages.
	UsersBackURL = BackURLOptions{
		AllowedPrefix:    "/dashboard/users",
		ExcludedSubpaths: []string{"/delete", "/active", "/plan"},
		Fallback:         "/dashboard/users",
	}

	// ProductsBackURL returns options for product pages.
	ProductsBackURL = BackURLOptions{
		AllowedPrefix:    "/dashboard/products",
		ExcludedSubpaths: []string{"/edit", "/delete"},
		Fallback:         "/dashboard/products",
	}

	// OrdersBackURL returns options for order pages.
	OrdersBackURL = BackURLOptions{
		AllowedPrefix:    "/dashboard/orders",
		ExcludedSubpaths: []string{"/status"},
		Fallback:         "/dashboard/orders",
	}

	// SubscriptionsBackURL returns options for membership request pages.
	SubscriptionsBackURL = BackURLOptions{
		AllowedPrefix:    "/dashboard/subscriptions",
		ExcludedSubpaths: []string{"/approve", "/delete"},
		Fallback:         "/dashboard/subscriptions",
	}

	// ContactsBackURL returns options for contact message pages.
	ContactsBackURL = BackURLOptions{
		AllowedPrefix:    "/dashboard/contacts",
		ExcludedSubpaths: []string{"/reply", "/delete"},
		Fallback:         "/dashboard/contacts",
	}

	// BlogsBackURL returns options for blog pages.
	BlogsBackURL = BackURLOptions{
		AllowedPrefix:    "/dashboard/blogs",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/dashboard/blogs",
	}
)
