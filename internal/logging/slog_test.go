package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_LevelsAndMessage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug(ctx, "msg") }, "DEBUG"},
		{"info", func(l *SlogLogger) { l.Info(ctx, "msg") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(ctx, "msg") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(ctx, "msg") }, "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := newBufLogger()
			tc.log(l)

			var rec map[string]any
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if rec["level"] != tc.level {
				t.Errorf("expected level %q, got %v", tc.level, rec["level"])
			}
			if rec["msg"] != "msg" {
				t.Errorf("expected msg %q, got %v", "msg", rec["msg"])
			}
		})
	}
}

func TestSlogLogger_WithAddsAttrs(t *testing.T) {
	l, buf := newBufLogger()

	child := l.With("module", "httpapi")
	child.Info(context.Background(), "request")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["module"] != "httpapi" {
		t.Errorf("expected module attr, got %v", rec["module"])
	}
}
