package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
)

func restoreDefaults(t *testing.T) {
	t.Helper()
	prev := theme.Current()
	t.Cleanup(func() { theme.Set(prev) })
}

func TestInitialDefaults(t *testing.T) {
	restoreDefaults(t)
	theme.Set(theme.Defaults{
		Color:      graphics.ColorWhite,
		Background: graphics.ColorBlack,
	})

	d := theme.Current()
	if d.Color != graphics.ColorWhite || d.Background != graphics.ColorBlack {
		t.Errorf("unexpected defaults: %+v", d)
	}
	if !d.Font.IsZero() {
		t.Error("expected no default font")
	}
}

func TestLoadAppliesThemeFile(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "ember.yaml")
	data := []byte("color: \"#00FF00\"\nbackground: \"#202020\"\nfont: builtin\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := theme.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := theme.Current()
	if d.Color != graphics.ColorGreen {
		t.Errorf("color = %v, want green", d.Color)
	}
	if d.Background != graphics.RGB(0x20, 0x20, 0x20) {
		t.Errorf("background = %v", d.Background)
	}
	if d.Font.IsZero() {
		t.Error("expected builtin font to be set")
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	restoreDefaults(t)
	before := theme.Current()

	if err := theme.Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if theme.Current() != before {
		t.Error("missing theme file changed the defaults")
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "ember.yaml")
	if err := os.WriteFile(path, []byte("color: \"#GGHHII\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := theme.Load(path); err == nil {
		t.Error("expected error for invalid color")
	}
}
