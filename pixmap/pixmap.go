// Package pixmap holds the in-memory RGBA image being annotated and the
// compositing operations that edit it.
//
// A Pixmap is a tightly packed, non-premultiplied RGBA8 buffer in row-major
// order: pixel (x, y) occupies Data()[(y*Width()+x)*4:][:4]. Compositing
// mutates the buffer in place and records each pixel's first pre-edit color
// in a [History], which the eraser uses to restore it.
//
// A Pixmap and its History are owned by a single goroutine at a time; the
// package performs no locking.
package pixmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Common errors for pixmap construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixmap: invalid dimensions")

	// ErrDataSize is returned when the byte slice does not hold exactly
	// width*height*4 bytes.
	ErrDataSize = errors.New("pixmap: data length does not match dimensions")
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Pixmap represents a rectangular RGBA pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// New creates a transparent pixmap with the given dimensions.
// Non-positive dimensions yield an empty pixmap.
func New(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	if width == 0 || height == 0 {
		width, height = 0, 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*BytesPerPixel),
	}
}

// FromBytes wraps raw RGBA8 bytes as handed over by a capture backend.
// The pixmap takes ownership of data; the caller must not keep using it.
func FromBytes(width, height int, data []uint8) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := width * height * BytesPerPixel; len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDataSize, len(data), want)
	}
	return &Pixmap{width: width, height: height, data: data}, nil
}

// FromImage creates a pixmap from any image, converting to non-premultiplied
// RGBA. The image origin is moved to (0, 0).
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := New(b.Dx(), b.Dy())
	if pm.width == 0 {
		return pm
	}
	if n, ok := img.(*image.NRGBA); ok && n.Stride == b.Dx()*BytesPerPixel {
		copy(pm.data, n.Pix)
		return pm
	}
	dst := pm.view()
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Empty reports whether the pixmap holds no pixels.
func (p *Pixmap) Empty() bool {
	return p.width == 0 || p.height == 0
}

// offset returns the byte offset of pixel (x, y), which must be in bounds.
func (p *Pixmap) offset(x, y int) int {
	return (y*p.width + x) * BytesPerPixel
}

// in reports whether (x, y) lies inside the pixmap.
func (p *Pixmap) in(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// ColorAt returns the color of a single pixel, or Transparent outside the
// pixmap.
func (p *Pixmap) ColorAt(x, y int) Color {
	if !p.in(x, y) {
		return Transparent
	}
	i := p.offset(x, y)
	return RGBA8(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// SetColor sets the color of a single pixel. Out-of-bounds coordinates are
// ignored; the result reports whether a pixel was written.
func (p *Pixmap) SetColor(x, y int, c Color) bool {
	if !p.in(x, y) {
		return false
	}
	p.put(p.offset(x, y), c)
	return true
}

func (p *Pixmap) put(i int, c Color) {
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.Channels()
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r, g, b, a := c.Channels()
	for i := 0; i < len(p.data); i += BytesPerPixel {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// view exposes the pixel data as an *image.NRGBA sharing the same memory.
func (p *Pixmap) view() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * BytesPerPixel,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage converts the pixmap to an independent *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	return p.Clone().view()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.ColorAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Crop returns a new pixmap holding the part of p inside r. The rectangle
// is intersected with the pixmap bounds first; an empty intersection
// yields an empty pixmap.
func (p *Pixmap) Crop(r image.Rectangle) *Pixmap {
	r = r.Intersect(p.Bounds())
	out := New(r.Dx(), r.Dy())
	if out.Empty() {
		return out
	}
	rowBytes := r.Dx() * BytesPerPixel
	for y := 0; y < r.Dy(); y++ {
		src := p.offset(r.Min.X, r.Min.Y+y)
		copy(out.data[y*rowBytes:(y+1)*rowBytes], p.data[src:src+rowBytes])
	}
	return out
}

// Highlight marks r for preview: every pixel outside r becomes fully opaque
// and every pixel inside r gets the given alpha.
func (p *Pixmap) Highlight(r image.Rectangle, alpha uint8) {
	p.ResetAlpha()
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for i := p.offset(r.Min.X, y); i < p.offset(r.Max.X, y); i += BytesPerPixel {
			p.data[i+3] = alpha
		}
	}
}

// ResetAlpha makes every pixel fully opaque, undoing [Pixmap.Highlight].
func (p *Pixmap) ResetAlpha() {
	for i := 3; i < len(p.data); i += BytesPerPixel {
		p.data[i] = 0xff
	}
}

// Scale returns a copy resized to width×height. Smooth selects Catmull-Rom
// resampling; otherwise a faster bilinear approximation is used.
func (p *Pixmap) Scale(width, height int, smooth bool) *Pixmap {
	out := New(width, height)
	if out.Empty() || p.Empty() {
		return out
	}
	var interp xdraw.Interpolator = xdraw.ApproxBiLinear
	if smooth {
		interp = xdraw.CatmullRom
	}
	dst := out.view()
	interp.Scale(dst, dst.Bounds(), p.view(), p.Bounds(), xdraw.Src, nil)
	return out
}
