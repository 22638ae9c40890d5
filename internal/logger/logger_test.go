package logger

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/nyashahama/bkw-backend/internal/config"
	"github.com/rs/zerolog"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		in   zerolog.Level
		want tracelog.LogLevel
	}{
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		if got := tracelog.LogLevel(GetPgxTraceLogLevel(tt.in)); got != tt.want {
			t.Errorf("level %v: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerWithServiceLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	l := NewLoggerWithService(cfg, NewLoggerService(cfg))
	if l.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level: got %v, want warn", l.GetLevel())
	}
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())
	if ls.GetApplication() != nil {
		t.Fatal("expected nil New Relic application without a license key")
	}
	ls.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Fatal("nil service must report no application")
	}
}

func TestWithTraceContextNilTxn(t *testing.T) {
	base := NewLogger("info", false)
	if got := WithTraceContext(base, nil); got.GetLevel() != base.GetLevel() {
		t.Error("nil transaction should return the logger unchanged")
	}
}
