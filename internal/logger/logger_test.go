package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestSetupJSON(t *testing.T) {
	defer Setup("text", os.Stderr)
	defer SetLevel(GetLevel())

	var buf bytes.Buffer
	Setup("json", &buf)
	SetLevel(LevelInfo)

	Debug("hidden")
	Info("computed", "roof_type", "single")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if rec["msg"] != "computed" || rec["roof_type"] != "single" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestTraceFollowsLevel(t *testing.T) {
	defer Setup("text", os.Stderr)
	defer SetLevel(GetLevel())

	var buf bytes.Buffer
	Setup("text", &buf)

	SetLevel(LevelDebug)
	Trace("building added", "name", "Cabin")
	if buf.Len() != 0 {
		t.Errorf("trace should be hidden at debug level, got %q", buf.String())
	}

	SetLevel(LevelTrace)
	Trace("building added", "name", "Cabin")
	if !strings.Contains(buf.String(), "building added") || !strings.Contains(buf.String(), "name=Cabin") {
		t.Errorf("expected trace record, got %q", buf.String())
	}
}
