package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

func TestInitPyroscope_DisabledIsNoop(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestProfilerConfig_TagsService(t *testing.T) {
	cfg := config.Config{
		AppEnv:                 config.EnvProd,
		ServiceName:            "football-portal-api",
		ServiceVersion:         "1.4.0",
		PyroscopeAppName:       "football-portal-api",
		PyroscopeServerAddress: "http://pyroscope:4040",
		PyroscopeUploadRate:    15 * time.Second,
	}

	got := profilerConfig(cfg, logging.NewNop())

	if got.ApplicationName != "football-portal-api" || got.ServerAddress != "http://pyroscope:4040" {
		t.Fatalf("unexpected target: app=%q server=%q", got.ApplicationName, got.ServerAddress)
	}
	if got.UploadRate != 15*time.Second {
		t.Fatalf("unexpected upload rate: got=%s", got.UploadRate)
	}
	want := map[string]string{"env": config.EnvProd, "service": "football-portal-api", "version": "1.4.0"}
	for key, value := range want {
		if got.Tags[key] != value {
			t.Fatalf("unexpected tag %s: got=%q want=%q", key, got.Tags[key], value)
		}
	}
	if len(got.ProfileTypes) != len(portalProfileTypes) {
		t.Fatalf("unexpected profile types: got=%v", got.ProfileTypes)
	}
}

func TestProfilerConfig_OmitsEmptyVersion(t *testing.T) {
	got := profilerConfig(config.Config{ServiceName: "football-portal-api"}, logging.NewNop())
	if _, ok := got.Tags["version"]; ok {
		t.Fatalf("expected no version tag, got=%v", got.Tags)
	}
}

func TestProfilerLogger_WritesThroughServiceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := profilerLogger{logger: logging.NewJSONWriter(&buf, logging.LevelInfo, "football-portal-api")}

	logger.Errorf("upload failed: %d", 502)
	logger.Debugf("hidden %s", "below info")

	out := buf.String()
	if !strings.Contains(out, `"msg":"upload failed: 502"`) {
		t.Fatalf("expected formatted error line, got=%s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug output must respect level, got=%s", out)
	}
}
