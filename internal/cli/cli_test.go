// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/trackviz/internal/render"
)

var (
	devicesJSON   = `[{"device_type":"pc","count":40},{"device_type":"mobile","count":"80"}]`
	requestsJSON  = `[{"date":"2024-01-01T00:00","requests":10},{"date":"2024-01-01T00:01","requests":12}]`
	countriesJSON = `[["USA",100],["FRA",50]]`
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(IOStreams{In: strings.NewReader(stdin), Out: &out, ErrOut: &errOut}, "test")
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// ============================================================================
// render
// ============================================================================

func TestRender_Stdio(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		contains string
	}{
		{"devices svg", []string{"render", "devices", "-o", "-"}, devicesJSON, "<svg"},
		{"requests json", []string{"render", "requests", "-o", "-", "-f", "json"}, requestsJSON, `"points"`},
		{"countries defaults to html", []string{"render", "countries", "-o", "-"}, countriesJSON, `id="world-map"`},
		{"format is case-insensitive", []string{"render", "DEVICES", "-o", "-", "-f", "SVG"}, devicesJSON, "<svg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("output does not contain %q:\n%.300s", tt.contains, out)
			}
		})
	}
}

func TestRender_Files(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "devices.json", devicesJSON)
	out := filepath.Join(dir, "chart.png")

	_, stderr, err := run(t, "", "render", "devices", "--in", in, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("format inferred from .png extension should produce a PNG")
	}
	if !strings.Contains(stderr, "wrote") {
		t.Errorf("stderr = %q, want a wrote message", stderr)
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantErr error
		msg     string
	}{
		{name: "unknown chart", args: []string{"render", "pie", "-o", "-"}, wantErr: render.ErrUnknownChart},
		{name: "bad format", args: []string{"render", "devices", "-o", "-", "-f", "gif"}, wantErr: render.ErrUnsupportedFormat},
		{name: "static world map", args: []string{"render", "countries", "-o", "-", "-f", "svg"}, wantErr: render.ErrUnsupportedFormat},
		{name: "malformed payload", args: []string{"render", "devices", "-o", "-"}, stdin: `{"not":"an array"}`, msg: "devices"},
		{name: "missing file", args: []string{"render", "devices", "--in", "/does/not/exist.json"}, msg: "read payload"},
		{name: "no chart argument", args: []string{"render"}, msg: "arg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestFormatFromFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":             "",
		"-":            "",
		"chart.SVG":    "svg",
		"out/map.html": "html",
		"noext":        "",
	}
	for in, want := range tests {
		if got := formatFromFilename(in); got != want {
			t.Errorf("formatFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

// ============================================================================
// dashboard
// ============================================================================

func TestDashboard(t *testing.T) {
	dir := t.TempDir()
	devices := writeFile(t, dir, "devices.json", devicesJSON)
	requests := writeFile(t, dir, "requests.json", requestsJSON)
	countries := writeFile(t, dir, "countries.json", countriesJSON)

	t.Run("all charts", func(t *testing.T) {
		out, _, err := run(t, "", "dashboard", "--devices", devices, "--requests", requests, "--countries", countries, "-o", "-")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, id := range []string{"devices-stats", "requests-graph", "world-map"} {
			if !strings.Contains(out, id) {
				t.Errorf("dashboard is missing %q", id)
			}
		}
	})

	t.Run("country filter drops the map", func(t *testing.T) {
		out, _, err := run(t, "", "dashboard", "--devices", devices, "--countries", countries, "--country", "FR", "-o", "-")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if strings.Contains(out, "world-map") {
			t.Error("world map should be dropped under a country filter")
		}
		if !strings.Contains(out, "devices-stats") {
			t.Error("device chart should remain")
		}
	})

	t.Run("json to default file", func(t *testing.T) {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
		if _, _, err := run(t, "", "dashboard", "--requests", requests, "-f", "json"); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "dashboard.json"))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(data, []byte(`"requests"`)) {
			t.Errorf("dashboard.json = %.200s", data)
		}
	})
}

func TestDashboard_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no inputs", []string{"dashboard"}, "at least one"},
		{"svg not allowed", []string{"dashboard", "--devices", "x.json", "-f", "svg"}, "cannot be rendered"},
		{"bad country", []string{"dashboard", "--devices", "x.json", "--country", "001"}, "--country"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %v, want it to contain %q", err, tt.msg)
			}
		})
	}
}

// ============================================================================
// device-types
// ============================================================================

func TestDeviceTypes(t *testing.T) {
	out, _, err := run(t, "", "device-types")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"PC", "Mobile", "Tablet", "Bot", "Unknown"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "test") {
		t.Errorf("version output = %q", out)
	}
}
