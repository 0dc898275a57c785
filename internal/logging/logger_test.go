package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"draftsmith/internal/logging"
)

func TestNewJSONWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "draftsmith.log")

	logger, err := logging.New(logging.Options{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("draft assembled", logging.Args(
		logging.String("draft", "demo"),
		logging.Int("segments", 4),
	)...)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(data))
	if line == "" {
		t.Fatal("expected log output, got empty file")
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if got, want := record["msg"], "draft assembled"; got != want {
		t.Fatalf("msg = %v, want %v", got, want)
	}
	if got, want := record["level"], "info"; got != want {
		t.Fatalf("level = %v, want %v", got, want)
	}
	if got, want := record["draft"], "demo"; got != want {
		t.Fatalf("draft = %v, want %v", got, want)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("expected ts field in JSON record")
	}
}

func TestNewConsoleIncludesComponent(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "console.log")

	base, err := logging.New(logging.Options{
		Level:            "debug",
		Format:           "console",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger := logging.NewComponentLogger(base, "assemble")
	logger.Info("copied materials", logging.Args(logging.Int("count", 3))...)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(data))
	if !strings.Contains(line, "INFO") {
		t.Fatalf("expected level label in %q", line)
	}
	if !strings.Contains(line, "assemble: copied materials") {
		t.Fatalf("expected component prefix in %q", line)
	}
	if !strings.Contains(line, "count=3") {
		t.Fatalf("expected count attribute in %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "filtered.log")

	logger, err := logging.New(logging.Options{
		Level:            "warn",
		Format:           "console",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should be dropped")
	logger.Warn("should appear")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "should be dropped") {
		t.Fatal("info record leaked past warn level")
	}
	if !strings.Contains(content, "should appear") {
		t.Fatal("warn record missing")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("nothing happens", logging.Args(logging.Error(os.ErrNotExist))...)
}

func TestNewForDirCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")

	logger, err := logging.NewForDir("info", "json", logDir)
	if err != nil {
		t.Fatalf("NewForDir returned error: %v", err)
	}
	logger.Info("hello")

	if _, err := os.Stat(filepath.Join(logDir, "draftsmith.log")); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}
