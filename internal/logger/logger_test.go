package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/deppfellow/biztime/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestNewLoggerProductionWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("code", "apple").Msg("company created")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["service"] != config.ServiceName {
		t.Errorf("service = %v, want %s", entry["service"], config.ServiceName)
	}
	if entry["environment"] != "production" {
		t.Errorf("environment = %v", entry["environment"])
	}
	if entry["code"] != "apple" {
		t.Errorf("code = %v", entry["code"])
	}
}

func TestNewLoggerDevelopmentUsesConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "development"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn line missing from %q", out)
	}
	if json.Valid([]byte(strings.TrimSpace(out))) {
		t.Error("development output should not be JSON")
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		in   zerolog.Level
		want tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		if got := GetPgxTraceLogLevel(tt.in); got != tt.want {
			t.Errorf("GetPgxTraceLogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetApplicationNilSafe(t *testing.T) {
	var ls *LoggerService
	if ls.GetApplication() != nil {
		t.Error("nil service should report no application")
	}
	if (&LoggerService{}).GetApplication() != nil {
		t.Error("zero service should report no application")
	}
}
