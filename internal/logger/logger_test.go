package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/tsawler/vlier/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		enabled zapcore.Level
		wantErr bool
	}{
		{"json info", config.LogConfig{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"console debug", config.LogConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"bad level", config.LogConfig{Level: "loud", Format: "json"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !log.Core().Enabled(tt.enabled) {
				t.Errorf("level %v not enabled", tt.enabled)
			}
			if tt.enabled == zapcore.InfoLevel && log.Core().Enabled(zapcore.DebugLevel) {
				t.Error("debug enabled at info level")
			}
		})
	}
}
