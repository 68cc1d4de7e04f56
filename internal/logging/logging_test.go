package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"DEBUG", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"Warn", zapcore.WarnLevel, false},
		{"ERROR", zapcore.ErrorLevel, false},
		{"FATAL", zapcore.InfoLevel, true},
	}

	for _, test := range tests {
		level, err := ParseLevel(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if level != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, level, test.expected)
		}
	}
}

func TestNew(t *testing.T) {
	logger, err := New("debug")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be enabled")
	}

	if _, err := New("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) should return a logger")
	}
}
