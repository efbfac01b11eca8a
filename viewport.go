package snapmark

import (
	"image"
	"math"
)

// edgeMargin is how close to the top or left edge the pointer may get
// before it counts as having left the canvas.
const edgeMargin = 0.1

// Pointer is a pointer event in widget coordinates.
type Pointer struct {
	X, Y float64
	// Primary reports whether the primary button is held.
	Primary bool
}

// Viewport is the size of the widget the image is displayed in. The image
// is scaled uniformly by the ratio of its width to the widget width.
type Viewport struct {
	Width, Height float64
}

// Contains reports whether p lies on the usable canvas area.
func (v Viewport) Contains(p Pointer) bool {
	return p.X >= edgeMargin && p.Y >= edgeMargin && p.X <= v.Width && p.Y <= v.Height
}

// ratio returns the widget-to-image scale factor for an image of the given
// width.
func (v Viewport) ratio(imageWidth int) float64 {
	if v.Width <= 0 {
		return 1
	}
	return float64(imageWidth) / v.Width
}

// scale maps a widget point to image space, truncating toward zero.
// Negative results clamp to 0.
func (v Viewport) scale(x, y float64, imageWidth int) image.Point {
	r := v.ratio(imageWidth)
	return image.Pt(max(int(x*r), 0), max(int(y*r), 0))
}

// press returns the image point of a press or release: the widget position
// is rounded up before scaling.
func (v Viewport) press(p Pointer, imageWidth int) image.Point {
	return v.scale(math.Ceil(p.X), math.Ceil(p.Y), imageWidth)
}

// stroke returns the image point of a freehand sample, offset by half the
// stroke thickness on both axes.
func (v Viewport) stroke(p Pointer, imageWidth, thickness int) image.Point {
	half := thickness / 2
	return v.scale(p.X, p.Y, imageWidth).Add(image.Pt(half, half))
}
