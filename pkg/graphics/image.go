package graphics

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/png" // progress bar fill tiles

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp" // common on embedded targets
)

// Image is a pre-decoded, read-only image resource. Widgets that tile or
// blit an Image never mutate it; the resource is owned by whoever decoded
// it and may be shared between widgets.
type Image struct {
	src image.Image
}

// DecodeImage decodes a PNG or BMP stream into an image resource.
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return &Image{src: src}, nil
}

// OpenImage decodes an image resource from a file.
func OpenImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeImage(f)
}

// ImageFrom wraps an already decoded image.
func ImageFrom(src image.Image) *Image {
	return &Image{src: src}
}

// Size returns the pixel dimensions of the image.
func (m *Image) Size() Size {
	b := m.src.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// Source returns the underlying decoded image.
func (m *Image) Source() image.Image {
	return m.src
}

// Scale returns a copy resampled to the given size. Draw routines do not
// validate image dimensions against widget dimensions, so callers that want
// an exact fit scale the resource up front.
func (m *Image) Scale(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{src: image.NewRGBA(image.Rectangle{})}
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), m.src, m.src.Bounds(), xdraw.Src, nil)
	return &Image{src: dst}
}
