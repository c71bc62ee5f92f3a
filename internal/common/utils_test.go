package common

import (
	"context"
	"log/slog"
	"testing"
)

func TestContentHash(t *testing.T) {
	got := ContentHash([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("ContentHash() = %q, want %q", got, want)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	ctx := context.Background()

	if NewLogger(true, true).Enabled(ctx, slog.LevelWarn) {
		t.Error("quiet logger enabled at warn")
	}
	if !NewLogger(false, true).Enabled(ctx, slog.LevelDebug) {
		t.Error("verbose logger disabled at debug")
	}
	if NewLogger(false, false).Enabled(ctx, slog.LevelDebug) {
		t.Error("default logger enabled at debug")
	}
}
