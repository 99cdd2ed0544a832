// ABOUTME: Tests for the classdeck CLI help display covering content, flags, and env detection.
// ABOUTME: Checks section headers, usage patterns, and environment status markers.
package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintHelpContainsProjectName(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf, "1.2.3")
	out := buf.String()

	if !strings.Contains(out, "classdeck") {
		t.Error("expected help output to contain project name 'classdeck'")
	}
	if !strings.Contains(out, "1.2.3") {
		t.Error("expected help output to contain version '1.2.3'")
	}
}

func TestPrintHelpContainsAllFlags(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf, "dev")
	out := buf.String()

	flags := []string{
		"-base-url",
		"-server",
		"-bind",
		"-db",
		"-seed",
		"-verbose",
		"-version",
		"-help",
	}
	for _, f := range flags {
		if !strings.Contains(out, f) {
			t.Errorf("expected help to contain flag %q", f)
		}
	}
}

func TestPrintHelpFlagGrouping(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf, "dev")
	out := buf.String()

	sections := []string{
		"Panel Flags:",
		"Server Flags:",
		"Other:",
		"Examples:",
		"Environment:",
	}
	for _, s := range sections {
		if !strings.Contains(out, s) {
			t.Errorf("expected help to contain section header %q", s)
		}
	}
}

func TestPrintHelpShowsEnvVarStatus(t *testing.T) {
	t.Setenv("CLASSDECK_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("CLASSDECK_BIND", "")

	var buf bytes.Buffer
	printHelp(&buf, "dev")
	out := buf.String()

	foundSet := false
	foundNotSet := false
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "CLASSDECK_BASE_URL") && strings.Contains(line, "[set]") && !strings.Contains(line, "[not set]") {
			foundSet = true
		}
		if strings.Contains(line, "CLASSDECK_BIND") && strings.Contains(line, "[not set]") {
			foundNotSet = true
		}
	}
	if !foundSet {
		t.Error("expected CLASSDECK_BASE_URL to show [set] when env var is present")
	}
	if !foundNotSet {
		t.Error("expected CLASSDECK_BIND to show [not set] when env var is empty")
	}
}

func TestEnvStatus(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"set key", "TEST_KEY_SET", "some-value", "[set]"},
		{"empty key", "TEST_KEY_EMPTY", "", "[not set]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			got := envStatus(tc.key)
			if got != tc.expected {
				t.Errorf("envStatus(%q) = %q, want %q", tc.key, got, tc.expected)
			}
		})
	}
}
