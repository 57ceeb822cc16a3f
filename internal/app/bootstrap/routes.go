// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	activityfeature "github.com/bigkoko/kokoadmin/internal/app/features/activity"
	adminsfeature "github.com/bigkoko/kokoadmin/internal/app/features/admins"
	apifeature "github.com/bigkoko/kokoadmin/internal/app/features/api"
	blogsfeature "github.com/bigkoko/kokoadmin/internal/app/features/blogs"
	contactsfeature "github.com/bigkoko/kokoadmin/internal/app/features/contacts"
	dashboardfeature "github.com/bigkoko/kokoadmin/internal/app/features/dashboard"
	errorsfeature "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	healthfeature "github.com/bigkoko/kokoadmin/internal/app/features/health"
	homefeature "github.com/bigkoko/kokoadmin/internal/app/features/home"
	loginfeature "github.com/bigkoko/kokoadmin/internal/app/features/login"
	logoutfeature "github.com/bigkoko/kokoadmin/internal/app/features/logout"
	ordersfeature "github.com/bigkoko/kokoadmin/internal/app/features/orders"
	productsfeature "github.com/bigkoko/kokoadmin/internal/app/features/products"
	settingsfeature "github.com/bigkoko/kokoadmin/internal/app/features/settings"
	subscriptionsfeature "github.com/bigkoko/kokoadmin/internal/app/features/subscriptions"
	usersfeature "github.com/bigkoko/kokoadmin/internal/app/features/users"
	adminstore "github.com/bigkoko/kokoadmin/internal/app/store/admins"
	"github.com/bigkoko/kokoadmin/internal/app/store/authstore"
	blogstore "github.com/bigkoko/kokoadmin/internal/app/store/blogs"
	contactstore "github.com/bigkoko/kokoadmin/internal/app/store/contacts"
	membershipstore "github.com/bigkoko/kokoadmin/internal/app/store/memberships"
	orderstore "github.com/bigkoko/kokoadmin/internal/app/store/orders"
	productstore "github.com/bigkoko/kokoadmin/internal/app/store/products"
	settingsstore "github.com/bigkoko/kokoadmin/internal/app/store/settings"
	statsstore "github.com/bigkoko/kokoadmin/internal/app/store/stats"
	userstore "github.com/bigkoko/kokoadmin/internal/app/store/users"
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
	"github.com/bigkoko/kokoadmin/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// sessionTTL caps a dashboard session; shorter-lived backend tokens win.
const sessionTTL = 24 * time.Hour

// BuildHandler constructs the root HTTP handler (router) for KokoAdmin.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It boots the template engine, applies
// the proxy-header, compression, session, flash and CSRF middleware, and
// mounts every feature router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, sessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	csrfKey, err := auth.CSRFKey(appCfg.SessionKey)
	if err != nil {
		return nil, err
	}
	protect := csrf.Protect(csrfKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("kokoadmin-csrf"),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure(logger))),
	)

	errLog := errorsfeature.NewErrorLogger(logger)
	flasher := flash.New(sessionMgr.Store(), "kokoadmin-flash", logger)
	loginLimiter := ratelimit.NewLoginLimiter()
	apiLimiter := ratelimit.New(appCfg.APIRateLimit, time.Minute)

	be := deps.Backend

	r := chi.NewRouter()
	r.Use(handlers.ProxyHeaders)
	r.Use(func(next http.Handler) http.Handler { return handlers.CompressHandler(next) })

	// Global auth middleware: loads SessionUser and its backend token.
	r.Use(sessionMgr.LoadSessionUser)

	// Machine endpoints: no CSRF, no flash.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, be, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	if deps.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{Registry: deps.Metrics}))
	}

	apiHandler := apifeature.NewHandler(be, logger)
	r.Mount("/api", apifeature.Routes(apiHandler, sessionMgr, apiLimiter))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))
	if appCfg.StorageType == "local" {
		prefix := strings.TrimRight(appCfg.StorageLocalURL, "/")
		r.Handle(prefix+"/*", fileserver.Handler(prefix, appCfg.StorageLocalPath))
	}

	// HTML screens
	r.Group(func(pr chi.Router) {
		if !secure {
			pr.Use(plaintextCSRF)
		}
		pr.Use(protect)
		pr.Use(flasher.Middleware)

		pr.Get("/", homefeature.ServeRoot)

		loginHandler := loginfeature.NewHandler(sessionMgr, errLog, authstore.New(be), loginLimiter, deps.AuditLog, logger)
		pr.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, deps.AuditLog, logger)
		pr.Mount("/logout", logoutfeature.Routes(logoutHandler))

		errorsHandler := errorsfeature.NewHandler()
		pr.Get("/forbidden", errorsHandler.Forbidden)
		pr.Get("/unauthorized", errorsHandler.Unauthorized)
		pr.NotFound(errorsHandler.NotFound)

		contacts := contactstore.New(be)
		memberships := membershipstore.New(be)

		pr.Route("/dashboard", func(dr chi.Router) {
			dashboardHandler := dashboardfeature.NewHandler(statsstore.New(be), contacts, memberships, errLog, logger)
			dr.Mount("/", dashboardfeature.Routes(dashboardHandler, sessionMgr))

			ordersHandler := ordersfeature.NewHandler(orderstore.New(be), errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/orders", ordersfeature.Routes(ordersHandler, sessionMgr))

			usersHandler := usersfeature.NewHandler(userstore.New(be), errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr))

			productsHandler := productsfeature.NewHandler(productstore.New(be), errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/products", productsfeature.Routes(productsHandler, sessionMgr))

			subsHandler := subscriptionsfeature.NewHandler(memberships, errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/subscriptions", subscriptionsfeature.Routes(subsHandler, sessionMgr))

			adminsHandler := adminsfeature.NewHandler(adminstore.New(be), errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/admins", adminsfeature.Routes(adminsHandler, sessionMgr))

			contactsHandler := contactsfeature.NewHandler(contacts, errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/contacts", contactsfeature.Routes(contactsHandler, sessionMgr))

			blogsHandler := blogsfeature.NewHandler(blogstore.New(be), deps.Images, errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/blogs", blogsfeature.Routes(blogsHandler, sessionMgr))

			activityHandler := activityfeature.NewHandler(deps.Audit, errLog, logger)
			dr.Mount("/activity", activityfeature.Routes(activityHandler, sessionMgr))

			settingsHandler := settingsfeature.NewHandler(settingsstore.New(be), sessionMgr, errLog, deps.AuditLog, flasher, logger)
			dr.Mount("/settings", settingsfeature.Routes(settingsHandler, sessionMgr))
		})
	})

	return r, nil
}

// plaintextCSRF tells gorilla/csrf the request came over plain HTTP so
// local development skips the HTTPS referer check.
func plaintextCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

// csrfFailure logs rejected form posts and answers 403.
func csrfFailure(logger *zap.Logger) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Warn("csrf validation failed",
			zap.String("path", r.URL.Path),
			zap.String("ip", r.RemoteAddr),
			zap.Error(csrf.FailureReason(r)))
		http.Error(w, "Forbidden - your session may have expired. Reload the page and try again.", http.StatusForbidden)
	}
}
