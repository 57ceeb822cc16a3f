// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
//
// Embed Base in a form view model and call SetError; the field helpers read
// trimmed values from r.PostForm.
//
//	type newAdminData struct {
//		viewdata.BaseVM
//		formutil.Base
//		FirstName string
//	}
//
//	data.SetError(res.First())
//	templates.Render(w, r, "admin_new", data)
package formutil

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// Base carries the form-level error message.
type Base struct {
	Error template.HTML
}

// SetError sets the error message on a Base struct.
// The message is escaped; use it for plain text only.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// HasError reports whether an error message is set.
func (b *Base) HasError() bool {
	return b.Error != ""
}

// Value returns the trimmed form value for field.
func Value(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

// Checkbox reports whether an HTML checkbox was ticked.
func Checkbox(r *http.Request, field string) bool {
	switch strings.ToLower(Value(r, field)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// Money parses a price field. Empty input yields zero with ok=true so that
// optional prices can be left blank; "$" and thousands separators are accepted.
func Money(r *http.Request, field string) (decimal.Decimal, bool) {
	raw := strings.NewReplacer("$", "", ",", "").Replace(Value(r, field))
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d.Round(2), true
}

// Lines splits a textarea into trimmed non-empty lines.
func Lines(r *http.Request, field string) []string {
	var out []string
	for _, ln := range strings.Split(r.FormValue(field), "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
