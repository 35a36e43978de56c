package logutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		" DEBUG ": slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := parseSlogLevel(in)
		if err != nil || got != want {
			t.Fatalf("parseSlogLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseSlogLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewLoggerFromConfigFormats(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := newLoggerFromConfig(loggerConfig{Format: "json", Level: "debug"}, &buf)
	if err != nil {
		t.Fatalf("newLoggerFromConfig() error = %v", err)
	}
	defer closer.Close()
	logger.Debug("relay_test", "chat_id", 7)
	if !strings.Contains(buf.String(), `"msg":"relay_test"`) || !strings.Contains(buf.String(), `"chat_id":7`) {
		t.Fatalf("unexpected json output: %s", buf.String())
	}

	if _, _, err := newLoggerFromConfig(loggerConfig{Format: "xml"}, &buf); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewLoggerFromConfigAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bot.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("previous\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	logger, closer, err := newLoggerFromConfig(loggerConfig{File: path}, &stderr)
	if err != nil {
		t.Fatalf("newLoggerFromConfig() error = %v", err)
	}
	logger.Info("telegram_start")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "previous\n") || !strings.Contains(string(raw), "msg=telegram_start") {
		t.Fatalf("log file content = %q", raw)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr should be empty when logging to a file, got %q", stderr.String())
	}
}
