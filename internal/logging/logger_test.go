// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// capture installs a JSON test logger and restores the previous one on cleanup.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevLogger := Logger()
	prevLevel := GetLevel()
	t.Cleanup(func() {
		SetLogger(prevLogger)
		SetLevel(prevLevel)
	})

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	SetLevel(zerolog.TraceLevel)
	return &buf
}

// decode parses the single JSON line in buf.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_JSON(t *testing.T) {
	prevLogger := Logger()
	prevLevel := GetLevel()
	defer func() {
		SetLogger(prevLogger)
		SetLevel(prevLevel)
	}()

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info written at warn level: %q", buf.String())
	}

	Warn().Str("user_id", "U1").Msg("unknown user")
	got := decode(t, &buf)
	if got["level"] != "warn" {
		t.Errorf("level = %v, want warn", got["level"])
	}
	if got["message"] != "unknown user" {
		t.Errorf("message = %v", got["message"])
	}
	if got["user_id"] != "U1" {
		t.Errorf("user_id = %v", got["user_id"])
	}
	if _, ok := got["time"]; !ok {
		t.Error("missing time field")
	}
}

func TestInit_ConsoleAndCaller(t *testing.T) {
	prevLogger := Logger()
	prevLevel := GetLevel()
	defer func() {
		SetLogger(prevLogger)
		SetLevel(prevLevel)
	}()

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Caller: true, Output: &buf})

	Info().Msg("model build complete")
	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console format wrote JSON: %q", out)
	}
	if !strings.Contains(out, "model build complete") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("output missing caller: %q", out)
	}
}

func TestLevelFunctions(t *testing.T) {
	tests := []struct {
		name  string
		event func() *zerolog.Event
		want  string
	}{
		{"trace", Trace, "trace"},
		{"debug", Debug, "debug"},
		{"info", Info, "info"},
		{"warn", Warn, "warn"},
		{"error", Error, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.event().Msg("hello")
			if got := decode(t, buf)["level"]; got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErr(t *testing.T) {
	buf := capture(t)

	Err(errors.New("source unavailable")).Msg("load failed")
	got := decode(t, buf)
	if got["error"] != "source unavailable" {
		t.Errorf("error = %v", got["error"])
	}
	if got["level"] != "error" {
		t.Errorf("level = %v, want error", got["level"])
	}
}

func TestSetLevel(t *testing.T) {
	buf := capture(t)

	SetLevel(zerolog.ErrorLevel)
	if GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("GetLevel() = %v", GetLevel())
	}
	Warn().Msg("suppressed")
	if buf.Len() != 0 {
		t.Errorf("warn written at error level: %q", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	buf := capture(t)

	l := WithComponent("ingest")
	l.Info().Msg("loaded")
	if got := decode(t, buf)["component"]; got != "ingest" {
		t.Errorf("component = %v, want ingest", got)
	}
}
