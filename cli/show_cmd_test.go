package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunShow_NoRoots(t *testing.T) {
	code := runShow([]string{})
	if code != 2 {
		t.Fatalf("expected exit code 2 for no roots, got %d", code)
	}
}

func TestRunShow_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("writing Cargo.toml: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "target"), 0o755); err != nil {
		t.Fatalf("creating target dir: %v", err)
	}

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	code := runShow([]string{"--json", dir})

	w.Close()
	os.Stdout = oldStdout

	var buf strings.Builder
	io.Copy(&buf, r)
	output := buf.String()

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	var rows []struct {
		Path string `json:"path"`
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(output), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}

	found := false
	for _, row := range rows {
		if row.Kind == "cargo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a cargo project in output, got %v", rows)
	}
}

func TestRunShow_KindFilter(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("writing Cargo.toml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing package.json: %v", err)
	}

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	code := runShow([]string{"--json", "--kind", "cargo", dir})

	w.Close()
	os.Stdout = oldStdout

	var buf strings.Builder
	io.Copy(&buf, r)
	output := buf.String()

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	var rows []struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(output), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	for _, row := range rows {
		if row.Kind != "cargo" {
			t.Fatalf("expected only cargo projects, got %s", row.Kind)
		}
	}
}

func TestRunShow_InvalidKind(t *testing.T) {
	dir := t.TempDir()
	code := runShow([]string{"--json", "--kind", "not-a-kind", dir})
	if code != 2 {
		t.Fatalf("expected exit code 2 for invalid kind, got %d", code)
	}
}

func TestRunShow_InterspersedFlags(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("writing Cargo.toml: %v", err)
	}

	code := runShow([]string{dir, "--json"})
	if code != 0 {
		t.Fatalf("expected exit code 0 with interspersed flags, got %d", code)
	}
}

func TestIsBoolFlag(t *testing.T) {
	tests := []struct {
		flag     string
		expected bool
	}{
		{"--json", true},
		{"-json", true},
		{"json", true},
		{"--kind", false},
		{"-kind", false},
		{"kind", false},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			result := isBoolFlag(tt.flag)
			if result != tt.expected {
				t.Fatalf("expected %v for %s, got %v", tt.expected, tt.flag, result)
			}
		})
	}
}
