// internal/app/features/users/handler.go
package users

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	userstore "github.com/bigkoko/kokoadmin/internal/app/store/users"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

const listURL = "/dashboard/users"

// Handler serves the marketplace account screens.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Flash    *flash.Flasher
	Users    *userstore.Store
}

func NewHandler(
	users *userstore.Store,
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
		Users:    users,
	}
}

type userRow struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Role    string
	Active  bool
	Plan    string
	Country string
	Joined  string
}

type listData struct {
	viewdata.BaseVM

	Query     string
	Role      string
	Status    string
	Roles     []string
	Plans     []string
	CanDelete bool

	Rows  []userRow
	Pager paging.Pager
}
