package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantErr   bool
		wantDebug bool
	}{
		{"", false, false},
		{"info", false, false},
		{"debug", false, true},
		{"warn", false, false},
		{"loud", true, false},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := New(tc.level)
			if (err != nil) != tc.wantErr {
				t.Fatalf("New(%q) err = %v", tc.level, err)
			}
			if err != nil {
				return
			}
			if got := logger.Desugar().Core().Enabled(zap.DebugLevel); got != tc.wantDebug {
				t.Errorf("debug enabled = %v; want %v", got, tc.wantDebug)
			}
		})
	}
}

func TestMustPanicsOnBadLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Must("nope")
}
