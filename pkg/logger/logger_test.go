package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	if err := Init(WithFormat("xml")); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestLoggerText(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithOutput(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().Info(context.Background(), "test message", String("k", "v"), Int("n", 3))

	out := buf.String()
	for _, want := range []string{"msg=\"test message\"", "k=v", "n=3", "source=logger_test.go:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestLoggerJSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithOutput(&buf), WithFormat(FormatJSON)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	ctx := context.Background()

	Get().Debug(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}

	if err := SetLevelString("debug"); err != nil {
		t.Fatalf("failed to set level: %v", err)
	}
	defer func() { _ = SetLevelString("info") }()

	Named("app").Debug(ctx, "shown", Float64("speed", 9.75))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json record %q: %v", buf.String(), err)
	}
	if rec["msg"] != "shown" || rec["logger"] != "app" || rec["speed"] != 9.75 {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestLoggerKeepsCallerFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithOutput(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	fields := make([]Field, 1, 4)
	fields[0] = String("k", "v")
	spare := fields[:2]

	Get().Info(context.Background(), "spare capacity", fields...)

	if spare[1] != (Field{}) {
		t.Errorf("caller slice was written to: %v", spare[1])
	}
	if !strings.Contains(buf.String(), "source=") {
		t.Errorf("expected source in %q", buf.String())
	}
}

func TestLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fittrack.log")
	if err := Init(WithFile(path, 1, 1, 1)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().Warn(context.Background(), "to file")
	if err := Sync(); err != nil {
		t.Fatalf("failed to sync logger: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(body), "to file") {
		t.Errorf("log file missing record: %q", body)
	}
}

func TestSetLevelString(t *testing.T) {
	for _, level := range []string{"debug", "INFO", " warn ", "warning", "error", ""} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("level %q: %v", level, err)
		}
	}
	if err := SetLevelString("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	_ = SetLevelString("info")
}
