package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, tt.verbose, false)
			logger.Debug("debug line", zap.String("path", "main.lua"))
			logger.Info("info line")
			logger.Sync()

			out := buf.String()
			if !strings.Contains(out, "INFO") || !strings.Contains(out, "info line") {
				t.Errorf("info line missing from output: %q", out)
			}
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v (output %q)", got, tt.wantDebug, out)
			}
		})
	}
}

func TestNewWithWriter_NoColorEscapes(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, false, false).Info("plain")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected ANSI escape in %q", buf.String())
	}
}
