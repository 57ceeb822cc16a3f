// internal/app/features/products/handler.go
package products

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	productstore "github.com/bigkoko/kokoadmin/internal/app/store/products"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"go.uber.org/zap"
)

const listURL = "/dashboard/products"

// Handler serves the product listing screens.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Flash    *flash.Flasher
	Products *productstore.Store
}

func NewHandler(
	products *productstore.Store,
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
		Products: products,
	}
}
