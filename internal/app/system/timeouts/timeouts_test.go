package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Short: 3 * time.Second})

	if got := timeouts.Short(); got != 3*time.Second {
		t.Errorf("Short: got %v", got)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("Medium should keep default, got %v", got)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(timeouts.Reset)
	t.Setenv("KOKOADMIN_TIMEOUT_LONG", "45s")
	t.Setenv("KOKOADMIN_TIMEOUT_PING", "bogus")
	t.Setenv("KOKOADMIN_TIMEOUT_UPLOAD", "-1s")

	if n := timeouts.ConfigureFromEnv(); n != 1 {
		t.Errorf("configured: got %d, want 1", n)
	}
	cur := timeouts.Current()
	if cur.Long != 45*time.Second || cur.Ping != timeouts.DefaultPing || cur.Upload != timeouts.DefaultUpload {
		t.Errorf("unexpected config: %+v", cur)
	}
}

func TestWithTimeout_LogsOnDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.New(core), "slow call")
	<-ctx.Done()
	cancel()

	if logs.FilterMessage("operation timed out").Len() != 1 {
		t.Errorf("expected one timeout warning, got %d entries", logs.Len())
	}
}

func TestWithTimeout_QuietOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	_, cancel := timeouts.WithTimeout(context.Background(), time.Hour, zap.New(core), "fast call")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("expected no warnings, got %d", logs.Len())
	}
}
