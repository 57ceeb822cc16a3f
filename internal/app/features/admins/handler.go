// internal/app/features/admins/handler.go
package admins

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	adminstore "github.com/bigkoko/kokoadmin/internal/app/store/admins"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler serves the staff account screens.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Flash    *flash.Flasher
	Admins   *adminstore.Store
}

func NewHandler(
	admins *adminstore.Store,
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
		Admins:   admins,
	}
}
