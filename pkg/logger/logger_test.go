package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Exercise all levels; output goes to stdout and must not panic.
	ctx := context.Background()
	logger.Debug(ctx, "debug message", String("k", "v"))
	logger.Info(ctx, "info message", Int("n", 1))
	logger.Warn(ctx, "warn message", Float64("f", 1.5))
	logger.Error(ctx, "error message", Any("v", struct{}{}))
}

func TestNamedLogger(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	named := Named("ingest")
	if named == nil {
		t.Fatal("named logger is nil")
	}
	named.Info(context.Background(), "named logger works")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	cases := []struct {
		in      string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"", false},
		{"warn", false},
		{"warning", false},
		{"error", false},
		{"ERROR", false},
		{"verbose", true},
	}

	for _, tc := range cases {
		err := SetLevelString(tc.in)
		if tc.wantErr && err == nil {
			t.Errorf("SetLevelString(%q): expected error, got nil", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("SetLevelString(%q): unexpected error: %v", tc.in, err)
		}
	}

	// Restore default for other tests.
	SetLevel(slog.LevelInfo)
}

func TestFieldConstructors(t *testing.T) {
	if f := String("a", "b"); f.Key != "a" || f.Value != "b" {
		t.Errorf("String field mismatch: %+v", f)
	}
	if f := Int("n", 3); f.Key != "n" || f.Value != 3 {
		t.Errorf("Int field mismatch: %+v", f)
	}
	if f := Error(nil); f.Key != "error" {
		t.Errorf("Error field key mismatch: %+v", f)
	}
}
