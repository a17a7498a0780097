// Package theme holds the toolkit-wide drawing defaults applied to widgets
// at creation time.
//
// A widget picks up the defaults current at the moment it is created;
// changing the defaults afterwards does not restyle existing widgets. The
// initial defaults are white on black with no font, so text operations do
// nothing until a font is configured.
package theme

import (
	"sync"

	"github.com/go-ember/ember/pkg/graphics"
)

// Defaults are the colors and font applied to newly created widgets.
type Defaults struct {
	// Color is the default drawing (foreground) color.
	Color graphics.Color

	// Background is the default background color.
	Background graphics.Color

	// Font is the default font. The zero Font disables text drawing.
	Font graphics.Font
}

var (
	mu      sync.RWMutex
	current = Defaults{
		Color:      graphics.ColorWhite,
		Background: graphics.ColorBlack,
	}
)

// Current returns the defaults applied to the next created widget.
func Current() Defaults {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetColor sets the default drawing color.
func SetColor(c graphics.Color) {
	mu.Lock()
	defer mu.Unlock()
	current.Color = c
}

// SetBackground sets the default background color.
func SetBackground(c graphics.Color) {
	mu.Lock()
	defer mu.Unlock()
	current.Background = c
}

// SetFont sets the default font.
func SetFont(f graphics.Font) {
	mu.Lock()
	defer mu.Unlock()
	current.Font = f
}

// Set replaces all defaults at once.
func Set(d Defaults) {
	mu.Lock()
	defer mu.Unlock()
	current = d
}
