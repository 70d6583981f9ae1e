package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-portal-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}
	base := logging.NewNop()

	logger, shutdown, err := InitUptrace(cfg, base)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if logger != base {
		t.Fatalf("expected base logger when uptrace is disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestInitUptrace_EmptyDSNIsDisabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "  ",
		ServiceName:    "football-portal-api",
		AppEnv:         config.EnvDev,
	}

	logger, shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected fallback logger")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestWithUptraceLogs_KeepsJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	base := logging.NewJSONWriter(&buf, logging.LevelInfo, "football-portal-api")

	logger := withUptraceLogs(base, logging.LevelInfo, "dev")
	logger.Info("warmup job finished", "succeeded", 2)

	out := buf.String()
	for _, want := range []string{`"msg":"warmup job finished"`, `"succeeded":2`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log output, got=%s", want, out)
		}
	}
}
