package display

import (
	"image"
	"sync"
)

// Driver is the boundary to a concrete display. Implementations own the
// actual output (an X window, a framebuffer device, an in-memory buffer for
// tests) and receive finished pixels from a Surface.
type Driver interface {
	// Bounds returns the drawable area of the display in pixels.
	Bounds() image.Rectangle

	// Flush pushes the dirty region of the framebuffer to the display.
	// The framebuffer is owned by the Surface and must not be retained.
	Flush(fb *image.RGBA, dirty image.Rectangle) error
}

// Memory is an in-process driver used by tests and headless rendering.
// It keeps a copy of the last flushed frame and records flushed regions.
type Memory struct {
	bounds image.Rectangle

	mu      sync.Mutex
	frame   *image.RGBA
	flushes []image.Rectangle
}

// NewMemory creates a memory driver with the given dimensions.
func NewMemory(width, height int) *Memory {
	return &Memory{bounds: image.Rect(0, 0, width, height)}
}

// Bounds returns the drawable area.
func (m *Memory) Bounds() image.Rectangle {
	return m.bounds
}

// Flush copies the dirty region into the retained frame.
func (m *Memory) Flush(fb *image.RGBA, dirty image.Rectangle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frame == nil {
		m.frame = image.NewRGBA(m.bounds)
	}
	copyRegion(m.frame, fb, dirty.Intersect(m.bounds))
	m.flushes = append(m.flushes, dirty)
	return nil
}

// Frame returns the retained frame, or nil before the first flush.
func (m *Memory) Frame() *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame
}

// Flushes returns the regions flushed so far.
func (m *Memory) Flushes() []image.Rectangle {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]image.Rectangle, len(m.flushes))
	copy(out, m.flushes)
	return out
}

// copyRegion copies r from src into dst; both share the same coordinate
// space.
func copyRegion(dst, src *image.RGBA, r image.Rectangle) {
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		so := src.PixOffset(r.Min.X, y)
		do := dst.PixOffset(r.Min.X, y)
		copy(dst.Pix[do:do+4*r.Dx()], src.Pix[so:so+4*r.Dx()])
	}
}
