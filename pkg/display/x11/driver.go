//go:build linux

// Package x11 provides a display driver that presents the toolkit
// framebuffer in an X11 window. It is intended for developing and demoing
// embedded UIs on a workstation; real targets supply their own driver.
package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/go-ember/ember/pkg/errors"
)

// Driver displays frames in an X window. It implements display.Driver.
type Driver struct {
	xu     *xgbutil.XUtil
	win    *xwindow.Window
	img    *xgraphics.Image
	bounds image.Rectangle
}

// Open connects to the X server and maps a window of the given size.
func Open(width, height int, title string) (*Driver, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("x11.Open: invalid size %dx%d", width, height)
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11.Open: connect: %w", err)
	}

	win, err := xwindow.Generate(xu)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("x11.Open: window id: %w", err)
	}
	if err := win.CreateChecked(xu.RootWin(), 0, 0, width, height,
		xproto.CwBackPixel, 0x000000); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("x11.Open: create window: %w", err)
	}

	if err := ewmh.WmNameSet(xu, win.Id, title); err != nil {
		// Cosmetic; the window works without a name.
		errors.Report(&errors.EmberError{
			Op:   "x11.Open",
			Kind: errors.KindDriver,
			Err:  err,
		})
	}

	bounds := image.Rect(0, 0, width, height)
	img := xgraphics.New(xu, bounds)
	if err := img.XSurfaceSet(win.Id); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("x11.Open: surface: %w", err)
	}

	win.Map()

	return &Driver{
		xu:     xu,
		win:    win,
		img:    img,
		bounds: bounds,
	}, nil
}

// Bounds returns the window's drawable area.
func (d *Driver) Bounds() image.Rectangle {
	return d.bounds
}

// Flush copies the dirty region into the X image and paints it.
func (d *Driver) Flush(fb *image.RGBA, dirty image.Rectangle) error {
	r := dirty.Intersect(d.bounds)
	if r.Empty() {
		return nil
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d.img.Set(x, y, fb.RGBAAt(x, y))
		}
	}
	d.img.XDraw()
	d.img.XPaint(d.win.Id)
	return nil
}

// Close tears down the window and the server connection.
func (d *Driver) Close() {
	d.img.Destroy()
	d.win.Destroy()
	d.xu.Conn().Close()
}
