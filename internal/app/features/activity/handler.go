// internal/app/features/activity/handler.go
package activity

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	"github.com/bigkoko/kokoadmin/internal/app/store/audit"
	"go.uber.org/zap"
)

// Handler serves the staff activity (audit trail) screens.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Audit  *audit.Store // nil when no database is configured
}

func NewHandler(store *audit.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		ErrLog: errLog,
		Audit:  store,
	}
}
