package log_test

import (
	"context"
	"testing"

	"intent-chatbot/pkg/log"
)

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole},
	}

	for _, cfg := range cases {
		t.Run(cfg.Mode+"/"+cfg.Encoding, func(t *testing.T) {
			l := log.Init(cfg)
			if l == nil {
				t.Fatal("expected non-nil logger")
			}
			ctx := log.WithRequestID(log.WithSessionID(context.Background(), "s-1"), "r-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Info(ctx, "info")
			l.Warnf(ctx, "warn %s", "x")
		})
	}
}

func TestWithSessionID(t *testing.T) {
	ctx := log.WithSessionID(context.Background(), "abc")
	if got, _ := ctx.Value(log.SessionIDKey).(string); got != "abc" {
		t.Errorf("expected session id abc, got %q", got)
	}
}
