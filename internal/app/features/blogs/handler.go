// internal/app/features/blogs/handler.go
package blogs

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	blogstore "github.com/bigkoko/kokoadmin/internal/app/store/blogs"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

const listURL = "/dashboard/blogs"

// imagePrefix is where featured images are kept in storage.
const imagePrefix = "blogs"

// Handler serves the blog editor screens.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Flash    *flash.Flasher
	Blogs    *blogstore.Store
	Images   storage.Store // nil disables featured image uploads
}

func NewHandler(
	blogs *blogstore.Store,
	images storage.Store,
	errLog *uierrors.ErrorLogger,
	auditLog *auditlog.Logger,
	flasher *flash.Flasher,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: auditLog,
		Flash:    flasher,
		Blogs:    blogs,
		Images:   images,
	}
}
