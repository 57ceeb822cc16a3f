// internal/app/features/contacts/handler.go
package contacts

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	contactstore "github.com/bigkoko/kokoadmin/internal/app/store/contacts"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"go.uber.org/zap"
)

const listURL = "/dashboard/contacts"

// Replied filter values.
const (
	filterReplied   = "replied"
	filterUnreplied = "unreplied"
)

// Handler serves the contact-form inbox.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Flash    *flash.Flasher
	Contacts *contactstore.Store
}

func NewHandler(
	contacts *contactstore.Store,
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
		Contacts: contacts,
	}
}
