package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink unavailable")
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var debug, warn bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("match.id", "m-1")

	log.Info("Move applied")
	log.Warn("Move rejected")

	assert.Contains(t, debug.String(), "Move applied")
	assert.Contains(t, debug.String(), "Move rejected")
	assert.NotContains(t, warn.String(), "Move applied")
	assert.Contains(t, warn.String(), "Move rejected")
	assert.Contains(t, warn.String(), "match.id=m-1")
}

func TestMultiHandler_KeepsGoingAfterAFailure(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(failingHandler{}, slog.NewTextHandler(&buf, nil))

	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "hello", 0))

	assert.EqualError(t, err, "sink unavailable")
	assert.Contains(t, buf.String(), "hello")
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := Init(Options{Level: slog.LevelWarn, Output: &buf})

	slog.Info("dropped")
	log.Error("kept", "device.id", "dev-1")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "device.id=dev-1")
}
