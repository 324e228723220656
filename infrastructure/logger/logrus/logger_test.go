package logrus

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLogrusLogger_FallsBackToInfoOnUnknownLevel(t *testing.T) {
	logger := NewLogrusLogger("not-a-level")
	if logger == nil {
		t.Fatal("NewLogrusLogger returned nil")
	}

	var buf bytes.Buffer
	logger.logger.SetOutput(&buf)

	logger.Debug("should be suppressed", nil)
	if buf.Len() != 0 {
		t.Error("debug output should be suppressed at info level")
	}

	logger.Info("should appear", nil)
	if buf.Len() == 0 {
		t.Error("info output missing")
	}
}

func TestLogrusLogger_EmitsStructuredFields(t *testing.T) {
	logger := NewLogrusLogger("debug")

	var buf bytes.Buffer
	logger.logger.SetOutput(&buf)

	logger.Error("refresh failed", map[string]interface{}{
		"url":     "https://example.com/availability",
		"attempt": 2,
	})

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if line["msg"] != "refresh failed" {
		t.Errorf("msg = %v", line["msg"])
	}
	if line["url"] != "https://example.com/availability" {
		t.Errorf("url field = %v", line["url"])
	}
	if line["level"] != "error" {
		t.Errorf("level = %v", line["level"])
	}
}
