package widgets

import (
	"github.com/go-ember/ember/pkg/display"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/wm"
)

// DrawFunc renders a progress bar onto s. The window manager restricts the
// surface clip to the widget's bounds before a DrawFunc runs, so
// implementations never need to set up their own clipping. param is the
// opaque value registered with SetCustomDraw; the standard routine ignores
// it and the image routine interprets it as the fill tile.
type DrawFunc func(p *ProgressBar, s *display.Surface, param any)

// ProgressBar displays a bounded integer value as a partially filled bar.
// The bar fills left to right, or bottom to top when the widget is taller
// than it is wide.
//
// Mutators clamp the position into the configured range but never repaint;
// callers request a redraw from the window manager when they want the new
// state on screen.
type ProgressBar struct {
	wm.Widget
	autoProgress

	min int
	max int
	pos int
	res int

	// dpos is the fill extent in pixels at the last draw, used to repaint
	// only the band that changed when just the position moved.
	dpos        int
	fullRepaint bool

	draw      DrawFunc
	drawParam any
}

// NewProgressBar creates a progress bar on the given display. When pb is
// nil the object is toolkit-allocated; otherwise the caller's storage is
// (re)initialized in place, as with statically allocated widgets on
// embedded targets. Creation fails when init describes no drawable area.
//
// The new bar uses the current theme defaults, range 0..100, position 0,
// resolution 1 and the standard draw routine.
func NewProgressBar(d *wm.Display, pb *ProgressBar, init wm.Init) (*ProgressBar, error) {
	dynamic := pb == nil
	if dynamic {
		pb = &ProgressBar{}
	} else {
		*pb = ProgressBar{}
	}
	if err := wm.InitWidget(&pb.Widget, d, pb, init, dynamic); err != nil {
		return nil, err
	}
	pb.min = 0
	pb.max = 100
	pb.res = 1
	pb.draw = DrawStandard
	pb.fullRepaint = true
	return pb, nil
}

// SetRange replaces the bar's bounds and unconditionally resets the
// position to min. Inverted ranges (min > max) are allowed. The bar is not
// redrawn; request a redraw after changing the range.
func (p *ProgressBar) SetRange(min, max int) {
	p.min = min
	p.max = max
	p.pos = min
	p.fullRepaint = true
}

// Range returns the configured bounds.
func (p *ProgressBar) Range() (min, max int) {
	return p.min, p.max
}

// SetPosition moves the bar to pos, clamped to the closest end of the
// range when outside it. No implicit redraw.
func (p *ProgressBar) SetPosition(pos int) {
	p.pos = pos
	p.clampPos()
}

// SetResolution sets the step applied by Increment and Decrement.
// The default is 1; a positive value is intended.
func (p *ProgressBar) SetResolution(res int) {
	p.res = res
}

// Resolution returns the configured step.
func (p *ProgressBar) Resolution() int {
	return p.res
}

// Increment advances the position by the resolution, clamped to the range.
func (p *ProgressBar) Increment() {
	p.pos += p.res
	p.clampPos()
}

// Decrement moves the position back by the resolution, clamped to the
// range.
func (p *ProgressBar) Decrement() {
	p.pos -= p.res
	p.clampPos()
}

// Position returns the current position.
func (p *ProgressBar) Position() int {
	return p.pos
}

// SetCustomDraw substitutes the draw routine and its opaque parameter.
// DrawStandard and DrawImage are provided; any DrawFunc works. The routine
// stays assigned until replaced or the widget is destroyed.
func (p *ProgressBar) SetCustomDraw(fn DrawFunc, param any) {
	if fn == nil {
		fn = DrawStandard
	}
	p.draw = fn
	p.drawParam = param
	p.fullRepaint = true
}

// Draw implements wm.Window by dispatching to the active draw routine.
func (p *ProgressBar) Draw(s *display.Surface) {
	p.draw(p, s, p.drawParam)
}

func (p *ProgressBar) clampPos() {
	lo, hi := p.min, p.max
	if lo > hi {
		lo, hi = hi, lo
	}
	if p.pos < lo {
		p.pos = lo
	}
	if p.pos > hi {
		p.pos = hi
	}
}

// fillExtent converts the position into a fill length over span pixels.
// A degenerate range counts as full.
func (p *ProgressBar) fillExtent(span int) int {
	denom := p.max - p.min
	if denom == 0 {
		return span
	}
	ext := int(int64(span) * int64(p.pos-p.min) / int64(denom))
	if ext < 0 {
		return 0
	}
	if ext > span {
		return span
	}
	return ext
}

// DrawStandard is the default draw routine: a one-pixel border, the active
// region filled with the drawing color, the inactive region with the
// background color, a dividing line at the split, and the text overlaid
// centered. param is ignored.
func DrawStandard(p *ProgressBar, s *display.Surface, _ any) {
	p.paintBar(s, func(s *display.Surface, active graphics.Rect, _ graphics.Point) {
		s.FillRect(active, p.Color())
	})
}

// DrawImage renders like DrawStandard but tiles param (a *graphics.Image)
// across the active region. The tile grid is anchored at the fill origin,
// the bar's top-left for horizontal bars and bottom-left for vertical
// ones, so the tile phase does not shift as the fill grows. Image
// dimensions are not checked against the widget; partial tiles crop at the
// edges and text draws on top. When param is not an image the routine
// falls back to the flat fill.
func DrawImage(p *ProgressBar, s *display.Surface, param any) {
	img, ok := param.(*graphics.Image)
	if !ok || img == nil {
		DrawStandard(p, s, nil)
		return
	}
	p.paintBar(s, func(s *display.Surface, active graphics.Rect, anchor graphics.Point) {
		s.TileImage(active, anchor, img)
	})
}

// paintBar holds the geometry shared by the provided draw routines: split
// the interior at the fill extent, paint the two regions, the dividing
// line, then the label. When only the position changed since the last
// draw, region painting is confined to the band between the old and new
// extents.
func (p *ProgressBar) paintBar(s *display.Surface, fill func(*display.Surface, graphics.Rect, graphics.Point)) {
	r := p.Bounds()
	inner := r.Inset(1)
	if inner.IsEmpty() {
		s.StrokeRect(r, p.Color())
		return
	}

	vertical := r.Height() > r.Width()
	span := inner.Width()
	if vertical {
		span = inner.Height()
	}
	ext := p.fillExtent(span)

	var active, inactive graphics.Rect
	anchor := graphics.Point{X: inner.Left, Y: inner.Top}
	if vertical {
		// The fill grows upward from the bottom edge; tiles anchor there so
		// their phase stays put as the fill moves.
		split := inner.Bottom - ext
		active = graphics.Rect{Left: inner.Left, Top: split, Right: inner.Right, Bottom: inner.Bottom}
		inactive = graphics.Rect{Left: inner.Left, Top: inner.Top, Right: inner.Right, Bottom: split}
		anchor = graphics.Point{X: inner.Left, Y: inner.Bottom}
	} else {
		split := inner.Left + ext
		active = graphics.Rect{Left: inner.Left, Top: inner.Top, Right: split, Bottom: inner.Bottom}
		inactive = graphics.Rect{Left: split, Top: inner.Top, Right: inner.Right, Bottom: inner.Bottom}
	}

	saved := s.Clip()
	if p.fullRepaint || ext == p.dpos {
		s.StrokeRect(r, p.Color())
		fill(s, active, anchor)
		s.FillRect(inactive, p.Background())
	} else {
		// Position-only change: repaint just the band between the old and
		// new extents by narrowing the clip. The band extends one pixel past
		// each end so the dividing line drawn at the previous extent is
		// always repainted. The fill callback still sees the whole active
		// rect so tiled images stay anchored.
		lo, hi := min(ext, p.dpos), max(ext, p.dpos)
		lo, hi = max(lo-1, 0), min(hi+1, span)
		var band graphics.Rect
		if vertical {
			band = graphics.Rect{Left: inner.Left, Top: inner.Bottom - hi, Right: inner.Right, Bottom: inner.Bottom - lo}
		} else {
			band = graphics.Rect{Left: inner.Left + lo, Top: inner.Top, Right: inner.Left + hi, Bottom: inner.Bottom}
		}
		s.SetClip(band.Intersect(saved))
		fill(s, active, anchor)
		s.FillRect(inactive, p.Background())
		s.SetClip(saved)
	}

	// Dividing line between the regions, in the drawing color.
	if ext > 0 && ext < span {
		if vertical {
			s.HLine(inner.Left, inner.Right, inner.Bottom-ext, p.Color())
		} else {
			s.VLine(inner.Left+ext, inner.Top, inner.Bottom, p.Color())
		}
	}

	// Text is drawn in two passes so it stays readable over both regions:
	// the active pass uses the contrast of the drawing color, the inactive
	// pass the drawing color itself.
	if txt := p.Text(); txt != "" && !p.Font().IsZero() {
		s.SetClip(active.Intersect(saved))
		s.DrawText(txt, inner, p.Font(), p.Color().ContrastOn())
		s.SetClip(inactive.Intersect(saved))
		s.DrawText(txt, inner, p.Font(), p.Color())
		s.SetClip(saved)
	}

	p.dpos = ext
	p.fullRepaint = false
}
