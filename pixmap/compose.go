package pixmap

import (
	"image"

	"github.com/gogpu/snapmark/raster"
)

// History remembers, for every pixel touched since the last reset, the
// color it held before its first overwrite. It is the undo record the
// eraser restores from.
//
// Recording is insert-if-absent: painting the same pixel again never
// replaces its first entry, so overlapping strokes cannot lose the true
// pre-edit color. The zero value is an empty history ready to use.
type History struct {
	orig map[image.Point]Color
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{orig: make(map[image.Point]Color)}
}

// Len returns the number of recorded pixels.
func (h *History) Len() int {
	return len(h.orig)
}

// Original returns the recorded pre-edit color of p.
func (h *History) Original(p image.Point) (Color, bool) {
	c, ok := h.orig[p]
	return c, ok
}

// Reset forgets every recorded pixel.
func (h *History) Reset() {
	clear(h.orig)
}

func (h *History) record(p image.Point, c Color) {
	if h.orig == nil {
		h.orig = make(map[image.Point]Color)
	}
	if _, ok := h.orig[p]; !ok {
		h.orig[p] = c
	}
}

// Apply paints every in-bounds coordinate with c, recording each pixel's
// previous color in h first if h has no entry for it yet. A nil history
// paints without recording. Coordinates outside the pixmap are dropped.
//
// Apply returns the bounds of the pixels written, empty if none were.
func (p *Pixmap) Apply(coords raster.Set, c Color, h *History) image.Rectangle {
	var dirty image.Rectangle
	for pt := range coords {
		if !p.in(pt.X, pt.Y) {
			continue
		}
		i := p.offset(pt.X, pt.Y)
		if h != nil {
			h.record(pt, RGBA8(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]))
		}
		p.put(i, c)
		dirty = dirty.Union(pixelRect(pt))
	}
	return dirty
}

// Brush paints a thickness×thickness dab centered on center.
func (p *Pixmap) Brush(center image.Point, thickness int, c Color, h *History) image.Rectangle {
	return p.Apply(raster.Square(center, thickness), c, h)
}

// Erase restores every coordinate that has an entry in h to its recorded
// color and removes the entry. Coordinates without an entry are left alone.
//
// The boolean result is false when nothing was restored; callers use it to
// skip a repaint.
func (p *Pixmap) Erase(coords raster.Set, h *History) (image.Rectangle, bool) {
	if h == nil || len(h.orig) == 0 {
		return image.Rectangle{}, false
	}
	var dirty image.Rectangle
	restored := false
	for pt := range coords {
		orig, ok := h.orig[pt]
		if !ok {
			continue
		}
		if p.in(pt.X, pt.Y) {
			p.put(p.offset(pt.X, pt.Y), orig)
			dirty = dirty.Union(pixelRect(pt))
		}
		delete(h.orig, pt)
		restored = true
	}
	return dirty, restored
}

func pixelRect(pt image.Point) image.Rectangle {
	return image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
}
