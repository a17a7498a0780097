package theme

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-ember/ember/pkg/graphics"
)

// file is the on-disk theme format. Colors are "#RRGGBB" or "#AARRGGBB";
// font accepts "builtin" for the bundled bitmap face, or "none".
type file struct {
	Color      string `yaml:"color,omitempty"`
	Background string `yaml:"background,omitempty"`
	Font       string `yaml:"font,omitempty"`
}

// Load reads a theme file and applies it to the defaults. A missing file is
// not an error: the current defaults stay in place. Unset keys keep their
// current value.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("theme: read %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("theme: parse %s: %w", path, err)
	}

	d := Current()
	if f.Color != "" {
		c, err := graphics.ParseHex(f.Color)
		if err != nil {
			return fmt.Errorf("theme: color: %w", err)
		}
		d.Color = c
	}
	if f.Background != "" {
		c, err := graphics.ParseHex(f.Background)
		if err != nil {
			return fmt.Errorf("theme: background: %w", err)
		}
		d.Background = c
	}
	switch f.Font {
	case "":
	case "none":
		d.Font = graphics.Font{}
	case "builtin":
		d.Font = graphics.DefaultFont()
	default:
		return fmt.Errorf("theme: unknown font %q", f.Font)
	}

	Set(d)
	return nil
}
