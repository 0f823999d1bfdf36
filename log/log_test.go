package log

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetLevel(t *testing.T) {
	defer level.SetLevel(zap.InfoLevel)

	tests := map[string]zap.AtomicLevel{
		"debug":  zap.NewAtomicLevelAt(zap.DebugLevel),
		" WARN ": zap.NewAtomicLevelAt(zap.WarnLevel),
		"error":  zap.NewAtomicLevelAt(zap.ErrorLevel),
	}

	for l, expected := range tests {
		if err := SetLevel(l); err != nil {
			t.Fatalf("Unexpected error setting log level '%v' (%v)", l, err)
		}

		if level.Level() != expected.Level() {
			t.Errorf("Incorrect log level for '%v' - expected:%v, got:%v", l, expected.Level(), level.Level())
		}
	}

	if err := SetLevel("chatty"); err == nil {
		t.Errorf("Expected error setting invalid log level")
	}
}

func TestSetDebug(t *testing.T) {
	defer level.SetLevel(zap.InfoLevel)

	SetDebug(false)
	if level.Level() != zap.InfoLevel {
		t.Errorf("Incorrect log level - expected:%v, got:%v", zap.InfoLevel, level.Level())
	}

	SetDebug(true)
	if level.Level() != zap.DebugLevel {
		t.Errorf("Incorrect log level - expected:%v, got:%v", zap.DebugLevel, level.Level())
	}
}
