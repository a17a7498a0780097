// Package display implements the software rendering surface widgets draw
// on. A Surface wraps a framebuffer and a clip rectangle; finished pixels
// are pushed to a Driver.
//
// The hard parts of getting pixels onto glass (damage tracking in the
// server, vsync, input) live behind the Driver interface; this package is
// deliberately a plain software rasterizer.
package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"

	"github.com/go-ember/ember/pkg/graphics"
)

// ErrNoDrawingArea is returned when a surface or widget would have no
// drawable pixels.
var ErrNoDrawingArea = errors.New("display: no drawing area")

// Surface is a software framebuffer with a current clip rectangle.
// All drawing primitives are confined to the clip; callers that hand a
// widget the surface set the clip to the widget's bounds first.
//
// A Surface is not safe for concurrent use; the toolkit's cooperative
// model runs all drawing on one loop.
type Surface struct {
	drv    Driver
	fb     *image.RGBA
	bounds graphics.Rect
	clip   graphics.Rect
	dirty  graphics.Rect
}

// New creates a surface sized to the driver's drawable area.
func New(drv Driver) (*Surface, error) {
	if drv == nil {
		return nil, fmt.Errorf("display.New: %w", ErrNoDrawingArea)
	}
	b := graphics.RectFromStd(drv.Bounds())
	if b.IsEmpty() {
		return nil, fmt.Errorf("display.New: %w", ErrNoDrawingArea)
	}
	return &Surface{
		drv:    drv,
		fb:     image.NewRGBA(b.Std()),
		bounds: b,
		clip:   b,
	}, nil
}

// Bounds returns the full drawable area.
func (s *Surface) Bounds() graphics.Rect {
	return s.bounds
}

// Size returns the surface dimensions.
func (s *Surface) Size() graphics.Size {
	return s.bounds.Size()
}

// SetClip restricts subsequent drawing to r (intersected with the surface
// bounds).
func (s *Surface) SetClip(r graphics.Rect) {
	s.clip = r.Intersect(s.bounds)
}

// ClearClip restores the clip to the full surface.
func (s *Surface) ClearClip() {
	s.clip = s.bounds
}

// Clip returns the current clip rectangle.
func (s *Surface) Clip() graphics.Rect {
	return s.clip
}

// FillRect fills r with a solid color.
func (s *Surface) FillRect(r graphics.Rect, c graphics.Color) {
	cr := r.Intersect(s.clip)
	if cr.IsEmpty() {
		return
	}
	draw.Draw(s.fb, cr.Std(), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
	s.markDirty(cr)
}

// StrokeRect draws a one-pixel border just inside r.
func (s *Surface) StrokeRect(r graphics.Rect, c graphics.Color) {
	if r.IsEmpty() {
		return
	}
	s.FillRect(graphics.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Top + 1}, c)
	s.FillRect(graphics.Rect{Left: r.Left, Top: r.Bottom - 1, Right: r.Right, Bottom: r.Bottom}, c)
	s.FillRect(graphics.Rect{Left: r.Left, Top: r.Top, Right: r.Left + 1, Bottom: r.Bottom}, c)
	s.FillRect(graphics.Rect{Left: r.Right - 1, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, c)
}

// VLine draws a vertical line from (x, y0) to (x, y1) exclusive.
func (s *Surface) VLine(x, y0, y1 int, c graphics.Color) {
	s.FillRect(graphics.Rect{Left: x, Top: y0, Right: x + 1, Bottom: y1}, c)
}

// HLine draws a horizontal line from (x0, y) to (x1, y) exclusive.
func (s *Surface) HLine(x0, x1, y int, c graphics.Color) {
	s.FillRect(graphics.Rect{Left: x0, Top: y, Right: x1, Bottom: y + 1}, c)
}

// TileImage tiles img across r with the tile grid aligned to anchor: one
// tile corner always lands on anchor, even when r moves between calls, so
// successive partial repaints of a growing region keep the same tile
// phase. No scaling and no dimension checks: partial tiles are cropped at
// the edges of r.
func (s *Surface) TileImage(r graphics.Rect, anchor graphics.Point, img *graphics.Image) {
	cr := r.Intersect(s.clip)
	if cr.IsEmpty() || img == nil {
		return
	}
	src := img.Source()
	tile := src.Bounds()
	tw, th := tile.Dx(), tile.Dy()
	if tw <= 0 || th <= 0 {
		return
	}
	for y := alignDown(cr.Top, anchor.Y, th); y < cr.Bottom; y += th {
		for x := alignDown(cr.Left, anchor.X, tw); x < cr.Right; x += tw {
			dst := graphics.Rect{Left: x, Top: y, Right: x + tw, Bottom: y + th}.Intersect(cr)
			if dst.IsEmpty() {
				continue
			}
			sp := image.Point{
				X: tile.Min.X + (dst.Left - x),
				Y: tile.Min.Y + (dst.Top - y),
			}
			draw.Draw(s.fb, dst.Std(), src, sp, draw.Over)
		}
	}
	s.markDirty(cr)
}

// alignDown returns the largest value not above edge that differs from
// anchor by a whole number of steps.
func alignDown(edge, anchor, step int) int {
	v := anchor + (edge-anchor)/step*step
	if v > edge {
		v -= step
	}
	return v
}

// DrawText draws text centered inside r using the given font and color.
// A zero font draws nothing, matching a display with no default font.
func (s *Surface) DrawText(text string, r graphics.Rect, f graphics.Font, c graphics.Color) {
	if f.IsZero() || text == "" {
		return
	}
	cr := r.Intersect(s.clip)
	if cr.IsEmpty() {
		return
	}
	sz := f.Measure(text)
	x := r.Left + (r.Width()-sz.Width)/2
	y := r.Top + (r.Height()-sz.Height)/2

	d := font.Drawer{
		// Restricting Dst to the clip keeps glyphs inside the widget.
		Dst:  s.fb.SubImage(cr.Std()).(*image.RGBA),
		Src:  image.NewUniform(toNRGBA(c)),
		Face: f.Face,
		Dot:  f.Baseline(x, y),
	}
	d.DrawString(text)
	s.markDirty(cr)
}

// Flush pushes the accumulated dirty region to the driver and resets it.
func (s *Surface) Flush() error {
	if s.dirty.IsEmpty() {
		return nil
	}
	dirty := s.dirty
	s.dirty = graphics.Rect{}
	if err := s.drv.Flush(s.fb, dirty.Std()); err != nil {
		return fmt.Errorf("display.Flush: %w", err)
	}
	return nil
}

// Framebuffer exposes the backing pixels for drivers and tests.
func (s *Surface) Framebuffer() *image.RGBA {
	return s.fb
}

// PixelAt returns the color currently in the framebuffer at (x, y).
func (s *Surface) PixelAt(x, y int) graphics.Color {
	c := s.fb.RGBAAt(x, y)
	return graphics.RGBA8(c.R, c.G, c.B, c.A)
}

func (s *Surface) markDirty(r graphics.Rect) {
	s.dirty = s.dirty.Union(r)
}

// toNRGBA converts a toolkit color to the stdlib color type.
func toNRGBA(c graphics.Color) color.NRGBA {
	r, g, b, a := c.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
