// internal/app/features/subscriptions/handler.go
package subscriptions

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	membershipstore "github.com/bigkoko/kokoadmin/internal/app/store/memberships"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

const listURL = "/dashboard/subscriptions"

// Handler serves the subscription request screens.
type Handler struct {
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
	AuditLog    *auditlog.Logger
	Flash       *flash.Flasher
	Memberships *membershipstore.Store
}

func NewHandler(
	memberships *membershipstore.Store,
	errLog *uierrors.ErrorLogger,
	auditLog *auditlog.Logger,
	flasher *flash.Flasher,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:         logger,
		ErrLog:      errLog,
		AuditLog:    auditLog,
		Flash:       flasher,
		Memberships: memberships,
	}
}

type subscriptionRow struct {
	ID        string
	Name      string
	Email     string
	Plan      string
	Price     string
	Status    string
	Requested string
	Pending   bool
}

type listData struct {
	viewdata.BaseVM

	Query    string
	Status   string
	Statuses []string
	Pending  int

	CanDelete bool
	Rows      []subscriptionRow
	Pager     paging.Pager
}
