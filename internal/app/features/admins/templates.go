// internal/app/features/admins/templates.go
package admins

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "admins",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
