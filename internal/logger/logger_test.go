package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/deppfellow/visitor-log/internal/config"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.PanicLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := GetPgxTraceLogLevel(tt.level); got != tt.want {
				t.Errorf("GetPgxTraceLogLevel(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	if svc.GetApplication() != nil {
		t.Fatal("expected no New Relic application without a license key")
	}
	svc.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Fatal("nil service should report no application")
	}
	nilService.Shutdown()
}

func TestNewLoggerJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "kept" || entry["service"] != config.ServiceName || entry["environment"] != "production" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewLoggerConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("visitor added")

	out := buf.String()
	if !strings.Contains(out, "visitor added") {
		t.Errorf("console output missing message: %q", out)
	}
	if json.Valid([]byte(strings.TrimSpace(out))) {
		t.Errorf("console output should not be JSON: %q", out)
	}
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := WithTraceContext(base, nil)
	l.Info().Msg("no trace")

	if strings.Contains(buf.String(), "trace.id") {
		t.Errorf("unexpected trace field: %q", buf.String())
	}
}

func TestFormatPgxValue(t *testing.T) {
	long := strings.Repeat("x", 250)
	if got := formatPgxValue(long); len(got) != 203 || !strings.HasSuffix(got, "...") {
		t.Errorf("long string not truncated: len=%d", len(got))
	}

	if got := formatPgxValue([]byte(`["Mary Jane",27]`)); !strings.HasPrefix(got, "\n[") {
		t.Errorf("json args not pretty printed: %q", got)
	}

	if got := formatPgxValue(42); got != "42" {
		t.Errorf("formatPgxValue(42) = %q", got)
	}
}
