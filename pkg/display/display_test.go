package display_test

import (
	"image"
	"testing"

	"github.com/go-ember/ember/pkg/display"
	"github.com/go-ember/ember/pkg/graphics"
)

func newSurface(t *testing.T, w, h int) (*display.Surface, *display.Memory) {
	t.Helper()
	drv := display.NewMemory(w, h)
	s, err := display.New(drv)
	if err != nil {
		t.Fatalf("display.New: %v", err)
	}
	return s, drv
}

func TestNewRejectsZeroArea(t *testing.T) {
	if _, err := display.New(display.NewMemory(0, 32)); err == nil {
		t.Error("expected error for zero-width driver")
	}
	if _, err := display.New(display.NewMemory(64, 0)); err == nil {
		t.Error("expected error for zero-height driver")
	}
	if _, err := display.New(nil); err == nil {
		t.Error("expected error for nil driver")
	}
}

func TestFillRectHonorsClip(t *testing.T) {
	s, _ := newSurface(t, 40, 20)
	s.SetClip(graphics.RectFromLTWH(10, 5, 10, 10))

	s.FillRect(graphics.RectFromLTWH(0, 0, 40, 20), graphics.ColorRed)

	if got := s.PixelAt(15, 10); got != graphics.ColorRed {
		t.Errorf("inside clip: got %v, want red", got)
	}
	if got := s.PixelAt(5, 10); got != graphics.Color(0) {
		t.Errorf("outside clip: got %v, want untouched", got)
	}
}

func TestStrokeRectDrawsBorderOnly(t *testing.T) {
	s, _ := newSurface(t, 20, 10)
	r := graphics.RectFromLTWH(2, 2, 10, 6)
	s.StrokeRect(r, graphics.ColorWhite)

	if got := s.PixelAt(2, 2); got != graphics.ColorWhite {
		t.Errorf("corner: got %v, want white", got)
	}
	if got := s.PixelAt(11, 7); got != graphics.ColorWhite {
		t.Errorf("opposite corner: got %v, want white", got)
	}
	if got := s.PixelAt(5, 4); got != graphics.Color(0) {
		t.Errorf("interior: got %v, want untouched", got)
	}
}

func TestFlushPushesDirtyRegion(t *testing.T) {
	s, drv := newSurface(t, 32, 32)

	s.FillRect(graphics.RectFromLTWH(4, 4, 8, 8), graphics.ColorBlue)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	flushes := drv.Flushes()
	if len(flushes) != 1 {
		t.Fatalf("expected 1 flush, got %d", len(flushes))
	}
	want := image.Rect(4, 4, 12, 12)
	if flushes[0] != want {
		t.Errorf("flushed region %v, want %v", flushes[0], want)
	}
	if c := drv.Frame().RGBAAt(8, 8); c.B != 0xFF {
		t.Errorf("driver frame missing blue fill, got %v", c)
	}

	// Nothing dirty: flush is a no-op.
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := len(drv.Flushes()); got != 1 {
		t.Errorf("clean flush pushed %d extra regions", got-1)
	}
}

func TestTileImageCropsAtEdges(t *testing.T) {
	s, _ := newSurface(t, 30, 10)

	// 4x4 green tile over a 10x6 region: partial tiles crop at the edge.
	tile := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range tile.Pix {
		switch i % 4 {
		case 1, 3:
			tile.Pix[i] = 0xFF
		}
	}
	img := graphics.ImageFrom(tile)

	region := graphics.RectFromLTWH(2, 2, 10, 6)
	s.TileImage(region, graphics.Point{X: region.Left, Y: region.Top}, img)

	if got := s.PixelAt(11, 7); got != graphics.ColorGreen {
		t.Errorf("inside region: got %v, want green", got)
	}
	if got := s.PixelAt(12, 2); got != graphics.Color(0) {
		t.Errorf("right of region: got %v, want untouched", got)
	}
	if got := s.PixelAt(2, 8); got != graphics.Color(0) {
		t.Errorf("below region: got %v, want untouched", got)
	}
}

func TestTileImageAlignsToAnchor(t *testing.T) {
	s, _ := newSurface(t, 8, 8)

	// 1x2 tile, red over blue.
	tile := image.NewRGBA(image.Rect(0, 0, 1, 2))
	tile.Pix[0], tile.Pix[3] = 0xFF, 0xFF
	tile.Pix[6], tile.Pix[7] = 0xFF, 0xFF
	img := graphics.ImageFrom(tile)

	// The anchor sits one row below the region, so the grid is offset: row 0
	// falls on the second tile row.
	s.TileImage(graphics.RectFromLTWH(0, 0, 4, 6), graphics.Point{X: 0, Y: 7}, img)

	if got := s.PixelAt(1, 0); got != graphics.ColorBlue {
		t.Errorf("row 0: got %v, want blue (offset grid)", got)
	}
	if got := s.PixelAt(1, 1); got != graphics.ColorRed {
		t.Errorf("row 1: got %v, want red", got)
	}
	if got := s.PixelAt(1, 6); got != graphics.Color(0) {
		t.Errorf("below region: got %v, want untouched", got)
	}
}

func TestDrawTextZeroFontIsNoOp(t *testing.T) {
	s, _ := newSurface(t, 40, 12)
	s.DrawText("50%", graphics.RectFromLTWH(0, 0, 40, 12), graphics.Font{}, graphics.ColorWhite)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	for y := 0; y < 12; y++ {
		for x := 0; x < 40; x++ {
			if s.PixelAt(x, y) != graphics.Color(0) {
				t.Fatalf("pixel (%d,%d) written with zero font", x, y)
			}
		}
	}
}

func TestDrawTextWritesInsideRect(t *testing.T) {
	s, _ := newSurface(t, 60, 20)
	r := graphics.RectFromLTWH(0, 0, 60, 20)
	s.DrawText("100%", r, graphics.DefaultFont(), graphics.ColorWhite)

	found := false
	for y := r.Top; y < r.Bottom && !found; y++ {
		for x := r.Left; x < r.Right; x++ {
			if s.PixelAt(x, y) == graphics.ColorWhite {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected some text pixels inside the rect")
	}
}
