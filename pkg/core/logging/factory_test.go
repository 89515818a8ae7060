package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/mbasic/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("mbasic")

	if cfg.Name != "mbasic" {
		t.Errorf("Name = %v, want mbasic", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"ERROR", mdwlog.LevelError},
		{"invalid", mdwlog.LevelWarn}, // defaults to warn
		{"", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		wantLevel mdwlog.Level
	}{
		{"configured level", LoggerConfig{Level: "error"}, mdwlog.LevelError},
		{"verbose lowers level", LoggerConfig{Level: "error", Verbose: true}, mdwlog.LevelDebug},
		{"verbose keeps trace", LoggerConfig{Level: "trace", Verbose: true}, mdwlog.LevelTrace},
		{"fallback", LoggerConfig{Level: "loud"}, mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			if logger == nil {
				t.Fatal("NewLogger() returned nil")
			}
			if got := logger.GetLevel(); got != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", got, tt.wantLevel)
			}
		})
	}
}

func TestNewLogger_Outputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "mbasic",
		Level:             "info",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("program loaded", mdwlog.Fields{"lines": 3})

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		out := buf.String()
		if !strings.Contains(out, `"message":"program loaded"`) || !strings.Contains(out, `"lines":3`) {
			t.Errorf("%s output = %q, want JSON entry", name, out)
		}
	}
}

func TestNewLogger_TextFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Format: "xml", Output: &buf})

	logger.Info("ready")

	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("output = %q, want text format", buf.String())
	}
	if !strings.Contains(buf.String(), "ready") {
		t.Errorf("output = %q, want message", buf.String())
	}
}

func TestNewSimpleLogger(t *testing.T) {
	if NewSimpleLogger("mbasic") == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
}
