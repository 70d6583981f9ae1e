package observability

import (
	"fmt"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	cases := []struct {
		msg    string
		fields map[string]any
		want   bool
	}{
		{msg: "http request", fields: map[string]any{"path": "/healthz"}, want: true},
		{msg: "http request", fields: map[string]any{"path": "/v1/leagues"}, want: false},
		{msg: "warmup job finished", fields: map[string]any{"path": "/healthz"}, want: false},
	}
	for _, tc := range cases {
		if got := shouldSkipUptraceLog(tc.msg, tc.fields); got != tc.want {
			t.Fatalf("shouldSkipUptraceLog(%q, %v)=%t want=%t", tc.msg, tc.fields, got, tc.want)
		}
	}
}

func TestEncodeFields_MergesBoundAndEntryFields(t *testing.T) {
	values := encodeFields(
		[]zapcore.Field{zap.String("service", "football-portal-api")},
		[]zapcore.Field{zap.Int64("league_id", 39), zap.Duration("took", 2*time.Second)},
	)

	if values["service"] != "football-portal-api" {
		t.Fatalf("unexpected service: got=%v", values["service"])
	}
	if got := fmt.Sprint(values["league_id"]); got != "39" {
		t.Fatalf("unexpected league_id: got=%s", got)
	}
	if _, ok := values["took"]; !ok {
		t.Fatalf("expected took field in %v", values)
	}
}

func TestBuildOTelLogAttributes_SortedKeys(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"season":    int64(2025),
		"league_id": "39",
		"payload":   nil,
	})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got=%d", len(attrs))
	}

	if attrs[0].Key != "league_id" || attrs[0].Value.AsString() != "39" {
		t.Fatalf("unexpected first attribute: %s=%v", attrs[0].Key, attrs[0].Value)
	}
	if attrs[1].Key != "payload" || attrs[1].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected second attribute: %s kind=%s", attrs[1].Key, attrs[1].Value.Kind())
	}
	if attrs[2].Key != "season" || attrs[2].Value.AsInt64() != 2025 {
		t.Fatalf("unexpected third attribute: %s=%v", attrs[2].Key, attrs[2].Value)
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"goals": 11,
		"won":   true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map kind, got=%s", v.Kind())
	}
	if got := len(v.AsMap()); got != 2 {
		t.Fatalf("expected 2 map entries, got=%d", got)
	}
}

func TestToOTelSeverity(t *testing.T) {
	cases := map[zapcore.Level]otellog.Severity{
		zapcore.DebugLevel: otellog.SeverityDebug,
		zapcore.WarnLevel:  otellog.SeverityWarn,
		zapcore.ErrorLevel: otellog.SeverityError,
		zapcore.FatalLevel: otellog.SeverityFatal,
	}
	for level, want := range cases {
		if got := toOTelSeverity(level); got != want {
			t.Fatalf("toOTelSeverity(%s)=%v want=%v", level, got, want)
		}
	}
}

func TestOTelLogCore_RespectsLevel(t *testing.T) {
	core := newUptraceLogCore(zapcore.WarnLevel, "test")

	if core.Enabled(zapcore.InfoLevel) {
		t.Fatalf("info must be disabled for a warn core")
	}
	if !core.Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error must be enabled for a warn core")
	}

	child := core.With([]zapcore.Field{zap.String("k", "v")})
	if err := child.Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "boom", Time: time.Now()}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := child.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
}
