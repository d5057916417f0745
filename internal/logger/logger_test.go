package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("too quiet", nil)
	l.Info("also quiet", nil)
	l.Warn("heard", nil)
	l.Error("also heard", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d: %q", len(lines), buf.String())
	}
}

func TestEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("scan complete", Fields{"candidates": 4, "strategy": "table"})

	var e struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Fields    map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if e.Level != "INFO" {
		t.Errorf("expected level INFO, got %q", e.Level)
	}
	if e.Message != "scan complete" {
		t.Errorf("unexpected message %q", e.Message)
	}
	if e.Fields["strategy"] != "table" {
		t.Errorf("expected strategy field, got %v", e.Fields)
	}
	if e.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Error("fetch failed", nil, errors.New("connection refused"))

	if !strings.Contains(buf.String(), "connection refused") {
		t.Errorf("expected error message in entry, got %q", buf.String())
	}
}
