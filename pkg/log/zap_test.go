package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"todo-manager/pkg/log"
)

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	}

	for _, cfg := range cases {
		if l := log.Init(cfg); l == nil {
			t.Errorf("Init(%+v) returned nil", cfg)
		}
	}
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.New(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-42")
	l.Warnf(ctx, "storage %s unavailable", "redis")
	l.Info(context.Background(), "plain")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "storage redis unavailable" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-42" {
		t.Errorf("expected request_id req-42, got %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("request_id should be absent without ctx value")
	}
}
