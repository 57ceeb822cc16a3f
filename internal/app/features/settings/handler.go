// internal/app/features/settings/handler.go
package settings

import (
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	settingsstore "github.com/bigkoko/kokoadmin/internal/app/store/settings"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"go.uber.org/zap"
)

const pageURL = "/dashboard/settings"

// Handler owns the signed-in admin's own settings page.
type Handler struct {
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Flash      *flash.Flasher
	SessionMgr *auth.SessionManager
	Settings   *settingsstore.Store
}

func NewHandler(
	settings *settingsstore.Store,
	sm *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	auditLog *auditlog.Logger,
	flasher *flash.Flasher,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:        logger,
		ErrLog:     errLog,
		AuditLog:   auditLog,
		Flash:      flasher,
		SessionMgr: sm,
		Settings:   settings,
	}
}

// settingsData backs the page; the profile and password forms report
// errors separately.
type settingsData struct {
	viewdata.BaseVM

	Profile       models.Profile
	ProfileError  formutil.Base
	PasswordError formutil.Base
}

// profileInput defines validation rules for the profile form.
type profileInput struct {
	FirstName string `validate:"required,max=100" label:"First name"`
	LastName  string `validate:"required,max=100" label:"Last name"`
	Email     string `validate:"required,email" label:"Email"`
	Phone     string `validate:"max=40" label:"Phone"`
	Country   string `validate:"max=100" label:"Country"`
}

// passwordInput defines validation rules for the password form.
type passwordInput struct {
	Current string `validate:"required" label:"Current password"`
	New     string `validate:"required,min=8,max=128" label:"New password"`
	Confirm string `validate:"required" label:"Confirm password"`
}
