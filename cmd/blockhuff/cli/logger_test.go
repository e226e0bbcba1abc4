// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseLevel(test.name)
			if (err != nil) != test.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", test.name, err, test.wantErr)
			}
			if !test.wantErr && got != test.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", test.name, got, test.want)
			}
		})
	}
}

func TestNewCommandLogger_NonTerminalIsJSON(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewCommandLogger(&buffer, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("compressed", "blocks", 5)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1 (debug filtered):\n%s", len(lines), buffer.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, lines[0])
	}
	if record["msg"] != "compressed" || record["blocks"] != float64(5) {
		t.Errorf("record = %v", record)
	}
}
