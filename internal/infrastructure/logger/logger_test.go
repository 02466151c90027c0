package logger

import (
	"testing"

	"aerocode/internal/config"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	cases := []struct {
		cfg  config.LogConfig
		want bool
	}{
		{config.LogConfig{Level: "debug", Format: "console"}, true},
		{config.LogConfig{Level: "warn", Format: "json"}, false},
		{config.LogConfig{Level: "", Format: ""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.cfg.Level+"/"+tc.cfg.Format, func(t *testing.T) {
			l, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := l.Core().Enabled(zap.DebugLevel); got != tc.want {
				t.Fatalf("expected debug enabled=%v, got %v", tc.want, got)
			}
		})
	}
}
