// internal/app/features/api/handler.go
package api

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// Handler relays /api JSON calls to the marketplace backend.
type Handler struct {
	Log     *zap.Logger
	Backend *backend.Client
	JSON    *render.Render
}

func NewHandler(client *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Backend: client,
		JSON: render.New(render.Options{
			UnEscapeHTML: true,
		}),
	}
}
