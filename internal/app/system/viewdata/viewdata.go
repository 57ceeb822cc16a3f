// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Label  string
	Href   string
	Icon   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/dashboard"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn      bool
	UserRole        string
	UserName        string
	CanManageAdmins bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem

	// CSRF protection
	CSRFToken string
	CSRFField template.HTML

	// One-shot messages from the previous request
	Toasts []flash.Toast
}

var sidebar = []NavItem{
	{Label: "Dashboard", Href: "/dashboard", Icon: "home"},
	{Label: "Orders", Href: "/dashboard/orders", Icon: "cart"},
	{Label: "Users", Href: "/dashboard/users", Icon: "users"},
	{Label: "Products", Href: "/dashboard/products", Icon: "box"},
	{Label: "Subscriptions", Href: "/dashboard/subscriptions", Icon: "card"},
	{Label: "Admins", Href: "/dashboard/admins", Icon: "shield"},
	{Label: "Contacts", Href: "/dashboard/contacts", Icon: "mail"},
	{Label: "Blogs", Href: "/dashboard/blogs", Icon: "pen"},
	{Label: "Activity", Href: "/dashboard/activity", Icon: "clock"},
	{Label: "Settings", Href: "/dashboard/settings", Icon: "cog"},
}

// staffOnly entries are hidden from moderators.
var staffOnly = map[string]bool{"/dashboard/admins": true, "/dashboard/activity": true}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)
	canManage := authz.CanManageAdmins(r)

	vm := BaseVM{
		SiteName:        models.DefaultSiteName,
		IsLoggedIn:      signedIn,
		UserRole:        role,
		UserName:        name,
		CanManageAdmins: canManage,
		Title:           title,
		BackURL:         httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:     httpnav.CurrentPath(r),
		CSRFToken:       csrf.Token(r),
		CSRFField:       csrf.TemplateField(r),
		Toasts:          flash.FromContext(r.Context()),
	}
	if signedIn {
		vm.Nav = buildNav(r.URL.Path, canManage)
	}
	return vm
}

func buildNav(path string, canManage bool) []NavItem {
	out := make([]NavItem, 0, len(sidebar))
	for _, it := range sidebar {
		if staffOnly[it.Href] && !canManage {
			continue
		}
		it.Active = isActive(path, it.Href)
		out = append(out, it)
	}
	return out
}

func isActive(path, href string) bool {
	if href == "/dashboard" {
		return path == "/dashboard" || path == "/dashboard/"
	}
	return path == href || len(path) > len(href) && path[:len(href)+1] == href+"/"
}
