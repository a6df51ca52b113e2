package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/circletimer/pkg/circletimer"
	"github.com/go-drift/circletimer/pkg/graphics"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve_DefaultsWithoutFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kitchen")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Path != "" {
		t.Errorf("path = %q, want none", got.Path)
	}
	if got.Version != SchemaVersion || got.Size != 200 || got.FrameRate != 30 || got.Verbose {
		t.Errorf("unexpected defaults %+v", got)
	}
	if got.Title != "kitchen" {
		t.Errorf("title = %q, want directory name", got.Title)
	}
	if got.Style != circletimer.DefaultStyle() {
		t.Errorf("style = %+v, want defaults", got.Style)
	}
}

func TestResolve_TitleFromModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tools/eggtimer/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Title != "eggtimer" {
		t.Errorf("title = %q, want eggtimer", got.Title)
	}
}

func TestResolve_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "circletimer.yaml", `version: v1.2.0
title: Tea
size: 320
frame_rate: 60
verbose: true
style:
  use_mask: false
  fill_color: "#FF00AA00"
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Path != path {
		t.Errorf("path = %q, want %q", got.Path, path)
	}
	if got.Title != "Tea" || got.Size != 320 || got.FrameRate != 60 || !got.Verbose {
		t.Errorf("unexpected values %+v", got)
	}
	want := circletimer.DefaultStyle()
	want.UseMask = false
	want.FillColor = graphics.Color(0xFF00AA00)
	if got.Style != want {
		t.Errorf("style = %+v, want %+v", got.Style, want)
	}
}

func TestResolve_TOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "circletimer.toml", `size = 64

[style]
border_color = "red"
shadow_opacity = 0.0
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Size != 64 {
		t.Errorf("size = %v, want 64", got.Size)
	}
	want := circletimer.DefaultStyle()
	want.BorderColor = graphics.ColorRed
	want.ShadowOpacity = 0
	if got.Style != want {
		t.Errorf("style = %+v, want %+v", got.Style, want)
	}
}

func TestResolve_PrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "circletimer.toml", "size = 10\n")
	writeFile(t, dir, "circletimer.yaml", "size: 20\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Size != 20 {
		t.Errorf("size = %v, want the yaml value 20", got.Size)
	}
}

func TestResolveFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"newer schema", "a.yaml", "version: v2\n", "newer than supported"},
		{"bad version", "b.yaml", "version: one\n", "invalid config version"},
		{"unknown key", "c.yaml", "colour: red\n", "failed to parse"},
		{"bad toml", "d.toml", "size = [\n", "failed to parse"},
		{"negative size", "e.toml", "size = -5.0\n", "size must be positive"},
		{"nan size", "h.yaml", "size: .nan\n", "size must be positive"},
		{"nan toml size", "i.toml", "size = nan\n", "size must be positive"},
		{"huge size", "j.yaml", "size: 1e9\n", "at most 4096"},
		{"infinite size", "k.yaml", "size: .inf\n", "at most 4096"},
		{"frame rate", "f.yaml", "frame_rate: 1000\n", "frame_rate"},
		{"extension", "g.json", "{}", "unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := ResolveFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveFile_EmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "circletimer.yaml", "")
	got, err := ResolveFile(path)
	if err != nil {
		t.Fatalf("ResolveFile: %v", err)
	}
	if got.Style != circletimer.DefaultStyle() {
		t.Errorf("style = %+v, want defaults", got.Style)
	}
}
