// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields and formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial logger tests
// - 2026-10-19 v0.2.0: Text formatter field order, locked writer

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"}), buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output missing warn entry: %q", out)
	}
	if !logger.IsLevelEnabled(LevelError) || logger.IsLevelEnabled(LevelInfo) {
		t.Error("IsLevelEnabled() does not follow the configured level")
	}
}

func TestJSONFormatterFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithField("component", "basic-parser").
		WithRequestID("req-42").
		Debug("statement parsed", Fields{"line": 10, "keyword": "PRINT"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, output %q", err, buf.String())
	}

	want := map[string]interface{}{
		"message":    "statement parsed",
		"level":      "debug",
		"logger":     "test",
		"request_id": "req-42",
		"component":  "basic-parser",
		"keyword":    "PRINT",
		"line":       float64(10),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %v", k, entry[k], v)
		}
	}
}

func TestJSONFormatterError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WarnWithErr("line rejected", errors.New("expected keyword"), Fields{"cause": errors.New("inner")})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if entry["error"] != "expected keyword" {
		t.Errorf("error = %v, want %q", entry["error"], "expected keyword")
	}
	if entry["cause"] != "inner" {
		t.Errorf("cause = %v, want %q", entry["cause"], "inner")
	}
}

func TestTextFormatterSortedFields(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "loaded")
	entry.Fields["lines"] = 3
	entry.Fields["errors"] = 0
	entry.Logger = "engine"

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] {engine} loaded [errors=0 lines=3]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	child := parent.WithField("line", 10)

	parent.Info("parent")
	if strings.Contains(buf.String(), "line=10") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}

	buf.Reset()
	child.Info("child")
	if !strings.Contains(buf.String(), "line=10") {
		t.Errorf("child logger lost its field: %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"trc", LevelTrace, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil, want error")
	}
}

func TestConcurrentLogging(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.WithField("worker", n).Info("tick")
		}(i)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 8 {
		t.Errorf("line count = %d, want 8", got)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("discard logger should not enable any level")
	}
	logger.Error("dropped")
}
