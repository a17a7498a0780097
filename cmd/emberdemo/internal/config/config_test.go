package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/acme/widgetpanel\n\ngo 1.24.0\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != "widgetpanel" {
		t.Errorf("AppName = %q, want module basename", r.AppName)
	}
	if r.Width != 320 || r.Height != 80 {
		t.Errorf("geometry = %dx%d, want 320x80", r.Width, r.Height)
	}
	if r.Delay != 100*time.Millisecond {
		t.Errorf("Delay = %v, want 100ms", r.Delay)
	}
	if r.Theme != "" || r.FillImage != "" {
		t.Errorf("unexpected resource paths: %+v", r)
	}
}

func TestResolveReadsYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ember.yaml", `
app:
  name: loader
window:
  width: 240
  height: 64
demo:
  delay_ms: 250
  theme: themes/dark.yaml
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != "loader" {
		t.Errorf("AppName = %q", r.AppName)
	}
	if r.Width != 240 || r.Height != 64 {
		t.Errorf("geometry = %dx%d", r.Width, r.Height)
	}
	if r.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v", r.Delay)
	}
	if r.Theme != filepath.Join(dir, "themes/dark.yaml") {
		t.Errorf("Theme = %q", r.Theme)
	}
}

func TestResolveNoGoMod(t *testing.T) {
	dir := t.TempDir()
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != filepath.Base(dir) {
		t.Errorf("AppName = %q, want directory name", r.AppName)
	}
}

func TestLoadOptionalRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ember.yaml", "app: [not a mapping\n")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected parse error")
	}
}
