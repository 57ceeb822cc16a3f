// internal/app/features/orders/handler.go
package orders

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	orderstore "github.com/bigkoko/kokoadmin/internal/app/store/orders"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"go.uber.org/zap"
)

const listURL = "/dashboard/orders"

// Handler serves the rental order screens.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Flash    *flash.Flasher
	Orders   *orderstore.Store
}

func NewHandler(
	orders *orderstore.Store,
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
		Orders:   orders,
	}
}
