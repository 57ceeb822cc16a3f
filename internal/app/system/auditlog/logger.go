// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"io"
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/store/audit"
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/ratelimit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logging destinations for a category.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off"
)

// Modes lists the accepted values for Config.Auth and Config.Admin.
var Modes = []string{ModeAll, ModeDB, ModeLog, ModeOff}

// Config holds audit logging configuration.
type Config struct {
	// Auth controls logging for authentication events (login, logout, password).
	Auth string
	// Admin controls logging for dashboard actions (admin/user/product/order/... changes).
	Admin string
	// File, when set, additionally writes zap-destined audit events as JSON
	// lines to a size-rotated file.
	File string
}

// Logger provides convenience methods for logging audit events.
// It logs to MongoDB (via audit.Store) and structured logs (via zap).
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
	closer io.Closer
}

// New creates a new audit Logger. store may be nil when no database is
// configured; db-bound events are then dropped.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	l := &Logger{store: store, zapLog: zapLog, config: config}
	if config.File != "" {
		lj := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(lj),
			zapcore.InfoLevel,
		)
		l.zapLog = zap.New(zapcore.NewTee(zapLog.Core(), fileCore))
		l.closer = lj
	}
	return l
}

// Close releases the rotating file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	_ = l.zapLog.Sync()
	return l.closer.Close()
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}

	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.TargetType != "" {
		fields = append(fields, zap.String("target_type", event.TargetType), zap.String("target_id", event.TargetID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// A nil logger is a no-op so handlers and tests may run without auditing.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	default:
		setting = ModeAll
	}

	if setting == ModeOff {
		return
	}

	if setting == ModeAll || setting == ModeLog {
		l.logToZap(event)
	}

	if (setting == ModeAll || setting == ModeDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// fromRequest fills the request-derived fields, including the acting staff
// member when one is signed in.
func fromRequest(r *http.Request, ev audit.Event) audit.Event {
	ev.IP = ratelimit.ClientIP(r)
	ev.UserAgent = r.UserAgent()
	if u, ok := auth.CurrentUser(r); ok {
		ev.ActorID = u.ID
		ev.ActorEmail = u.Email
	}
	return ev
}

// --- Authentication Events ---

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, adminID, email, role string) {
	ev := fromRequest(r, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		UserID:    adminID,
		Success:   true,
		Details:   map[string]string{"email": email, "role": role},
	})
	l.Log(ctx, ev)
}

// LoginFailed logs a login the backend rejected.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, email, reason string) {
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:      audit.CategoryAuth,
		EventType:     audit.EventLoginFailed,
		FailureReason: reason,
		Details:       map[string]string{"attempted_email": email},
	}))
}

// LoginRateLimited logs a login refused by the limiter.
func (l *Logger) LoginRateLimited(ctx context.Context, r *http.Request, email string) {
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:      audit.CategoryAuth,
		EventType:     audit.EventLoginFailedRateLimit,
		FailureReason: "rate limit exceeded",
		Details:       map[string]string{"attempted_email": email},
	}))
}

// Logout logs a sign-out.
func (l *Logger) Logout(ctx context.Context, r *http.Request, adminID string) {
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLogout,
		UserID:    adminID,
		Success:   true,
	}))
}

// SessionExpired logs a session dropped because the backend rejected its token.
func (l *Logger) SessionExpired(ctx context.Context, r *http.Request, adminID string) {
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:      audit.CategoryAuth,
		EventType:     audit.EventSessionExpired,
		UserID:        adminID,
		FailureReason: "backend rejected token",
	}))
}

// PasswordChanged logs a staff member changing their own password.
func (l *Logger) PasswordChanged(ctx context.Context, r *http.Request, adminID string) {
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventPasswordChanged,
		UserID:    adminID,
		Success:   true,
	}))
}

// --- Dashboard Actions ---

// Action logs a successful dashboard mutation against a backend record.
func (l *Logger) Action(ctx context.Context, r *http.Request, eventType, targetType, targetID string, details map[string]string) {
	ev := fromRequest(r, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  eventType,
		TargetType: targetType,
		TargetID:   targetID,
		Success:    true,
		Details:    details,
	})
	if u, ok := auth.CurrentUser(r); ok {
		if ev.Details == nil {
			ev.Details = map[string]string{}
		}
		ev.Details["actor_role"] = u.Role
	}
	if targetType == "admin" || targetType == "user" {
		ev.UserID = targetID
	}
	l.Log(ctx, ev)
}

// AdminCreated logs a new admin account.
func (l *Logger) AdminCreated(ctx context.Context, r *http.Request, email, role string) {
	l.Action(ctx, r, audit.EventAdminCreated, "admin", "", map[string]string{"email": email, "role": role})
}

// AdminStatusChanged logs an admin status change.
func (l *Logger) AdminStatusChanged(ctx context.Context, r *http.Request, adminID, status string) {
	l.Action(ctx, r, audit.EventAdminStatusChanged, "admin", adminID, map[string]string{"status": status})
}

// AdminDeleted logs an admin removal.
func (l *Logger) AdminDeleted(ctx context.Context, r *http.Request, adminID string) {
	l.Action(ctx, r, audit.EventAdminDeleted, "admin", adminID, nil)
}

// UserUpdated logs an end-user account change.
func (l *Logger) UserUpdated(ctx context.Context, r *http.Request, userID, fieldsChanged string) {
	l.Action(ctx, r, audit.EventUserUpdated, "user", userID, map[string]string{"fields_changed": fieldsChanged})
}

// UserDeleted logs an end-user removal.
func (l *Logger) UserDeleted(ctx context.Context, r *http.Request, userID string) {
	l.Action(ctx, r, audit.EventUserDeleted, "user", userID, nil)
}

// UserPlanChanged logs a plan assignment (including approved subscriptions).
func (l *Logger) UserPlanChanged(ctx context.Context, r *http.Request, userID, plan string) {
	l.Action(ctx, r, audit.EventUserPlanChanged, "user", userID, map[string]string{"plan": plan})
}

// ProductUpdated logs a listing edit.
func (l *Logger) ProductUpdated(ctx context.Context, r *http.Request, productID, itemName string) {
	l.Action(ctx, r, audit.EventProductUpdated, "product", productID, map[string]string{"item_name": itemName})
}

// ProductDeleted logs a listing removal.
func (l *Logger) ProductDeleted(ctx context.Context, r *http.Request, productID string) {
	l.Action(ctx, r, audit.EventProductDeleted, "product", productID, nil)
}

// OrderStatusChanged logs an order status transition.
func (l *Logger) OrderStatusChanged(ctx context.Context, r *http.Request, orderID, from, to string) {
	l.Action(ctx, r, audit.EventOrderStatusChanged, "order", orderID, map[string]string{"from": from, "to": to})
}

// SubscriptionDeleted logs a membership request removal.
func (l *Logger) SubscriptionDeleted(ctx context.Context, r *http.Request, membershipID string) {
	l.Action(ctx, r, audit.EventSubscriptionDeleted, "membership", membershipID, nil)
}

// ContactReplied logs a reply to a contact message.
func (l *Logger) ContactReplied(ctx context.Context, r *http.Request, contactID string) {
	l.Action(ctx, r, audit.EventContactReplied, "contact", contactID, nil)
}

// ContactDeleted logs a contact message removal.
func (l *Logger) ContactDeleted(ctx context.Context, r *http.Request, contactID string) {
	l.Action(ctx, r, audit.EventContactDeleted, "contact", contactID, nil)
}

// BlogCreated logs a new blog post.
func (l *Logger) BlogCreated(ctx context.Context, r *http.Request, blogID, title string) {
	l.Action(ctx, r, audit.EventBlogCreated, "blog", blogID, map[string]string{"title": title})
}

// BlogUpdated logs a blog post edit.
func (l *Logger) BlogUpdated(ctx context.Context, r *http.Request, blogID, title string) {
	l.Action(ctx, r, audit.EventBlogUpdated, "blog", blogID, map[string]string{"title": title})
}

// BlogDeleted logs a blog post removal.
func (l *Logger) BlogDeleted(ctx context.Context, r *http.Request, blogID string) {
	l.Action(ctx, r, audit.EventBlogDeleted, "blog", blogID, nil)
}

// ProfileUpdated logs a staff member editing their own profile.
func (l *Logger) ProfileUpdated(ctx context.Context, r *http.Request, adminID string) {
	l.Action(ctx, r, audit.EventProfileUpdated, "admin", adminID, nil)
}
