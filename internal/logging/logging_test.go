// internal/logging/logging_test.go
//
// 驗證 Discard / Default 的預設行為，以及等級與輸出格式的解析。
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Discard() returned nil")
	}

	// 寫入不應 panic
	logger.Info("test message")
	logger.With("component", "x").Debug("debug message")
}

func TestDefault(t *testing.T) {
	t.Run("nil returns discard", func(t *testing.T) {
		logger := Default(nil)
		if logger == nil {
			t.Fatal("Default(nil) returned nil")
		}
		if logger.Enabled(context.Background(), slog.LevelError) {
			t.Error("Default(nil) should return a discard logger")
		}
	})

	t.Run("non-nil returns same logger", func(t *testing.T) {
		var buf bytes.Buffer
		original := slog.New(slog.NewTextHandler(&buf, nil))
		if Default(original) != original {
			t.Error("Default should return the same logger when non-nil")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) err=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q)=%v want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew(t *testing.T) {
	t.Run("text filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, slog.LevelWarn, "text")
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("hidden")
		logger.Warn("shown", "k", "v")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info record should be filtered: %s", out)
		}
		if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "k=v") {
			t.Errorf("unexpected output: %s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, slog.LevelInfo, "json")
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("hello", "n", 1)

		var rec map[string]any
		if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
			t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
		}
		if rec["msg"] != "hello" {
			t.Errorf("msg=%v want hello", rec["msg"])
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := New(&bytes.Buffer{}, slog.LevelInfo, "xml"); err == nil {
			t.Fatal("expected error for unknown format")
		}
	})
}
