package wm

import (
	"fmt"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
)

// Widget is the base object every widget type embeds. It records geometry,
// text, colors, font and visibility, and knows which display's window
// manager owns it.
//
// Mutators update state and request a redraw; they never repaint
// synchronously. The concrete widget (the embedding type) is registered
// with the window manager, so the base keeps a reference to it for damage
// requests.
type Widget struct {
	disp    *Display
	self    Window
	bounds  graphics.Rect
	text    string
	color   graphics.Color
	bg      graphics.Color
	font    graphics.Font
	visible bool
	dynamic bool
}

// InitWidget initializes a widget base, applies the current theme defaults,
// and registers the concrete widget with the display's window manager.
// dynamic records whether the toolkit allocated the widget storage; only
// dynamic widgets are discarded entirely on destroy.
func InitWidget(w *Widget, d *Display, self Window, init Init, dynamic bool) error {
	if d == nil {
		return fmt.Errorf("wm.InitWidget: nil display: %w", ErrNoDrawingArea)
	}
	if init.Width <= 0 || init.Height <= 0 {
		return fmt.Errorf("wm.InitWidget: %dx%d: %w", init.Width, init.Height, ErrNoDrawingArea)
	}

	defaults := theme.Current()
	w.disp = d
	w.self = self
	w.bounds = init.Bounds()
	w.text = init.Text
	w.color = defaults.Color
	w.bg = defaults.Background
	w.font = defaults.Font
	if init.Color != graphics.ColorTransparent {
		w.color = init.Color
	}
	if init.Background != graphics.ColorTransparent {
		w.bg = init.Background
	}
	if !init.Font.IsZero() {
		w.font = init.Font
	}
	w.visible = init.Show
	w.dynamic = dynamic

	d.register(self)
	if w.visible {
		d.RequestRedraw(self)
	}
	return nil
}

// Display returns the display owning the widget.
func (w *Widget) Display() *Display {
	return w.disp
}

// Bounds returns the widget's geometry.
func (w *Widget) Bounds() graphics.Rect {
	return w.bounds
}

// Move repositions the widget. The vacated area is cleared to the display
// background and the widget is redrawn at its new position.
func (w *Widget) Move(x, y int) {
	old := w.bounds
	w.bounds = graphics.RectFromLTWH(x, y, old.Width(), old.Height())
	w.disp.clearArea(old)
	w.disp.RequestRedraw(w.self)
}

// Resize changes the widget's dimensions. Shrinking clears the vacated
// area.
func (w *Widget) Resize(width, height int) {
	old := w.bounds
	w.bounds = graphics.RectFromLTWH(old.Left, old.Top, width, height)
	w.disp.clearArea(old)
	w.disp.RequestRedraw(w.self)
}

// Text returns the widget's label.
func (w *Widget) Text() string {
	return w.text
}

// SetText replaces the widget's label and requests a redraw.
func (w *Widget) SetText(s string) {
	w.text = s
	w.disp.RequestRedraw(w.self)
}

// Color returns the drawing color.
func (w *Widget) Color() graphics.Color {
	return w.color
}

// SetColor sets the drawing color and requests a redraw.
func (w *Widget) SetColor(c graphics.Color) {
	w.color = c
	w.disp.RequestRedraw(w.self)
}

// Background returns the background color.
func (w *Widget) Background() graphics.Color {
	return w.bg
}

// SetBackground sets the background color and requests a redraw.
func (w *Widget) SetBackground(c graphics.Color) {
	w.bg = c
	w.disp.RequestRedraw(w.self)
}

// Font returns the widget's font.
func (w *Widget) Font() graphics.Font {
	return w.font
}

// SetFont sets the widget's font and requests a redraw.
func (w *Widget) SetFont(f graphics.Font) {
	w.font = f
	w.disp.RequestRedraw(w.self)
}

// Visible reports whether the window manager paints the widget.
func (w *Widget) Visible() bool {
	return w.visible
}

// SetVisible shows or hides the widget. Hiding clears its area to the
// display background.
func (w *Widget) SetVisible(visible bool) {
	if w.visible == visible {
		return
	}
	w.visible = visible
	if visible {
		w.disp.RequestRedraw(w.self)
	} else {
		w.disp.clearArea(w.bounds)
	}
}

// Dynamic reports whether the toolkit allocated this widget's storage.
func (w *Widget) Dynamic() bool {
	return w.dynamic
}
