package wm

import (
	"context"
	"time"

	"github.com/go-ember/ember/pkg/display"
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
	"github.com/go-ember/ember/pkg/timer"
)

// Display is a rendering surface with a window manager attached. Widgets
// are created against a Display; it tracks them, repaints damaged ones with
// clipping restricted to their bounds, and flushes finished pixels to the
// driver.
type Display struct {
	surface    *display.Surface
	background graphics.Color
	windows    []Window
	damaged    map[Window]struct{}
}

// NewDisplay opens a display on the given driver. It fails when the driver
// exposes no drawable area.
func NewDisplay(drv display.Driver) (*Display, error) {
	s, err := display.New(drv)
	if err != nil {
		return nil, err
	}
	d := &Display{
		surface:    s,
		background: theme.Current().Background,
		damaged:    make(map[Window]struct{}),
	}
	d.surface.FillRect(d.surface.Bounds(), d.background)
	return d, nil
}

// Surface returns the underlying drawing surface.
func (d *Display) Surface() *display.Surface {
	return d.surface
}

// SetBackground sets the desktop background color and repaints everything.
func (d *Display) SetBackground(c graphics.Color) {
	d.background = c
	d.surface.FillRect(d.surface.Bounds(), c)
	d.RedrawAll()
}

// register adds a window to the manager. Called from InitWidget.
func (d *Display) register(w Window) {
	d.windows = append(d.windows, w)
}

// RequestRedraw marks a window damaged; it is repainted on the next Tick.
// Mutating a widget never repaints implicitly, so callers that change
// progress state ask for the repaint themselves.
func (d *Display) RequestRedraw(w Window) {
	d.damaged[w] = struct{}{}
}

// RedrawAll marks every registered window damaged.
func (d *Display) RedrawAll() {
	for _, w := range d.windows {
		d.damaged[w] = struct{}{}
	}
}

// Destroy releases a widget: running resources are closed, the window is
// removed from the manager and its area cleared. Caller-allocated widget
// storage stays valid and may be reused in a later create call;
// toolkit-allocated widgets are gone once the caller drops the handle.
func (d *Display) Destroy(w Window) {
	if c, ok := w.(Closer); ok {
		c.Close()
	}
	delete(d.damaged, w)
	for i, win := range d.windows {
		if win == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			break
		}
	}
	d.clearArea(w.Bounds())
}

// Tick runs one iteration of the cooperative loop: service software
// timers, repaint damaged windows, flush to the driver. Timer callbacks and
// widget Draw routines all execute here, on the caller's goroutine.
func (d *Display) Tick() error {
	timer.Step()

	if len(d.damaged) > 0 {
		// Swap the damage set first so a Draw routine may request further
		// redraws for the next tick.
		batch := d.damaged
		d.damaged = make(map[Window]struct{})
		for w := range batch {
			if !w.Visible() {
				continue
			}
			d.paint(w)
		}
	}
	return d.surface.Flush()
}

// Run drives Tick at the given frame interval until ctx is done.
func (d *Display) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	tick := time.NewTicker(frame)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			if err := d.Tick(); err != nil {
				return err
			}
		}
	}
}

// paint repaints one window with the clip restricted to its bounds. A
// panicking draw routine is reported and skipped rather than taking down
// the loop.
func (d *Display) paint(w Window) {
	defer d.surface.ClearClip()
	defer errors.Recover("wm.paint")
	d.surface.SetClip(w.Bounds())
	w.Draw(d.surface)
}

// clearArea fills a vacated region with the background color.
func (d *Display) clearArea(r graphics.Rect) {
	d.surface.FillRect(r, d.background)
}
