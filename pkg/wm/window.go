// Package wm implements the widget base object and the window manager that
// owns redraw and visibility for every widget on a display.
//
// The toolkit is single-threaded and cooperative: application code, timer
// callbacks and drawing all run on whichever goroutine drives
// [Display.Tick]. Widgets therefore carry no locks, and a widget must not
// be shared between independently scheduled owners.
package wm

import (
	"github.com/go-ember/ember/pkg/display"
	"github.com/go-ember/ember/pkg/graphics"
)

// ErrNoDrawingArea is returned by widget constructors when the requested
// geometry has no drawable pixels.
var ErrNoDrawingArea = display.ErrNoDrawingArea

// Window is the contract every widget implements for the window manager.
// Draw is always invoked with the surface clip already restricted to the
// window's bounds.
type Window interface {
	Bounds() graphics.Rect
	Visible() bool
	Draw(s *display.Surface)
}

// Closer is implemented by widgets holding resources (such as a running
// timer) that must be released when the widget is destroyed.
type Closer interface {
	Close()
}

// Init is the parameter bundle for widget creation.
type Init struct {
	// X, Y position the widget on the display.
	X int
	Y int

	// Width and Height must both be positive or creation fails.
	Width  int
	Height int

	// Text is the widget's label.
	Text string

	// Color and Background override the theme defaults when nonzero.
	// A fully transparent color means "use the default".
	Color      graphics.Color
	Background graphics.Color

	// Font overrides the theme default font when it has a face.
	Font graphics.Font

	// Show makes the widget visible immediately.
	Show bool
}

// Bounds returns the geometry described by the init parameters.
func (i Init) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(i.X, i.Y, i.Width, i.Height)
}
