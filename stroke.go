package snapmark

import (
	"image"

	"github.com/gogpu/snapmark/pixmap"
	"github.com/gogpu/snapmark/raster"
)

// DefaultEraserMargin is added to the tool thickness when erasing, so the
// eraser covers strokes drawn with the same thickness comfortably.
const DefaultEraserMargin = 12

// StrokeState is the state of a [StrokeController].
type StrokeState uint8

// Stroke states.
const (
	StrokeIdle StrokeState = iota
	StrokeDrawing
)

// String returns "idle" or "drawing".
func (s StrokeState) String() string {
	if s == StrokeDrawing {
		return "drawing"
	}
	return "idle"
}

// StrokeController turns a stream of pointer samples into connected line
// segments for the Freehand and Eraser tools.
//
// The controller keeps at most two pending samples. Every sample after the
// first completes a segment from the previous sample, which is painted (or
// erased) immediately with the tool settings current at that moment.
type StrokeController struct {
	state   StrokeState
	pending []image.Point
	margin  int

	// origin is where the stroke started; a Freehand stroke that never
	// produced a segment leaves a single dab there.
	origin  image.Point
	emitted bool
}

// NewStrokeController creates an idle controller. margin is added to the
// thickness of eraser segments; negative values are treated as 0.
func NewStrokeController(margin int) *StrokeController {
	return &StrokeController{
		pending: make([]image.Point, 0, 2),
		margin:  max(margin, 0),
	}
}

// State returns the current state.
func (c *StrokeController) State() StrokeState {
	return c.state
}

// Pending returns the number of buffered samples.
func (c *StrokeController) Pending() int {
	return len(c.pending)
}

// Begin starts a stroke at origin if tool is Freehand or Eraser and
// reports whether it did. The pending buffer is cleared either way.
func (c *StrokeController) Begin(tool ToolState, origin image.Point) bool {
	c.pending = c.pending[:0]
	c.emitted = false
	if !tool.Shape.stroked() {
		c.state = StrokeIdle
		return false
	}
	c.state = StrokeDrawing
	c.origin = origin
	return true
}

// Move adds an image-space sample to the active stroke. When a previous
// sample is pending, the segment between the two is painted in tool.Color
// (Freehand) or erased with the widened eraser (Eraser), and the new
// sample becomes the pending one.
//
// Move returns the dirty bounds and whether any pixel changed. Samples
// arriving while idle are ignored.
func (c *StrokeController) Move(pm *pixmap.Pixmap, h *pixmap.History, tool ToolState, p image.Point) (image.Rectangle, bool) {
	if c.state != StrokeDrawing {
		return image.Rectangle{}, false
	}
	if len(c.pending) < 2 {
		c.pending = append(c.pending, p)
	}
	if len(c.pending) < 2 {
		return image.Rectangle{}, false
	}

	p1, p2 := c.pending[0], c.pending[1]
	c.pending[0] = p2
	c.pending = c.pending[:1]
	c.emitted = true

	switch tool.Shape {
	case Freehand:
		dirty := pm.Apply(raster.Line(p1, p2, tool.Thickness), tool.Color, h)
		return dirty, !dirty.Empty()
	case Eraser:
		return pm.Erase(raster.Line(p1, p2, tool.Thickness+c.margin), h)
	}
	return image.Rectangle{}, false
}

// End finishes the active stroke and clears the pending buffer. A Freehand
// stroke that never emitted a segment is painted as a single brush dab at
// its origin, so a click leaves a mark.
func (c *StrokeController) End(pm *pixmap.Pixmap, h *pixmap.History, tool ToolState) image.Rectangle {
	var dirty image.Rectangle
	if c.state == StrokeDrawing && !c.emitted && tool.Shape == Freehand {
		dirty = pm.Brush(c.origin, tool.Thickness, tool.Color, h)
	}
	c.Reset()
	return dirty
}

// Reset abandons the active stroke without painting.
func (c *StrokeController) Reset() {
	c.state = StrokeIdle
	c.pending = c.pending[:0]
	c.emitted = false
}
