package snapmark

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/snapmark/area"
	"github.com/gogpu/snapmark/internal/imageio"
	"github.com/gogpu/snapmark/pixmap"
	"github.com/gogpu/snapmark/raster"
)

// Session errors.
var (
	// ErrNotPaintable is returned when a tool that does not produce pixels
	// (None, Cut) is passed to the drawing path.
	ErrNotPaintable = errors.New("snapmark: shape cannot be painted")

	// ErrNoSelection is returned by Crop when no area is selected.
	ErrNoSelection = errors.New("snapmark: no area selected")
)

// Session is one editing session over one captured image. It owns the
// image buffer, the tool selection, the erase history and the crop
// selection, and turns pointer gestures into edits.
//
// A Session is not safe for concurrent use; drive it from the goroutine
// that delivers pointer events.
type Session struct {
	id  uuid.UUID
	log *slog.Logger

	img     *pixmap.Pixmap
	history *pixmap.History
	tool    ToolState
	stroke  *StrokeController

	viewport Viewport
	start    image.Point
	pressed  bool

	selection area.Area
	selected  bool

	highlightAlpha    uint8
	toolScopedHistory bool
}

// NewSession starts a session on pm. A nil pm starts with an empty image;
// call [Session.Load] once a capture is available.
func NewSession(pm *pixmap.Pixmap, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	if pm == nil {
		pm = pixmap.New(0, 0)
	}

	id := uuid.New()
	return &Session{
		id:                id,
		log:               o.logger.With("session", id.String()),
		img:               pm,
		history:           pixmap.NewHistory(),
		tool:              o.tool,
		stroke:            NewStrokeController(o.eraserMargin),
		viewport:          o.viewport,
		highlightAlpha:    o.highlightAlpha,
		toolScopedHistory: o.toolScopedHistory,
	}
}

// ID returns the session identifier attached to every log record.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Image returns the live image buffer. It is modified by later edits; use
// [Session.Snapshot] for a stable copy.
func (s *Session) Image() *pixmap.Pixmap {
	return s.img
}

// History returns the erase history of the current image.
func (s *Session) History() *pixmap.History {
	return s.history
}

// Tool returns the current tool selection.
func (s *Session) Tool() ToolState {
	return s.tool
}

// StrokeState returns the state of the freehand stroke controller.
func (s *Session) StrokeState() StrokeState {
	return s.stroke.State()
}

// Load replaces the image with a new capture. The erase history, any
// active stroke or drag and the crop selection are discarded; the tool
// selection is kept.
func (s *Session) Load(pm *pixmap.Pixmap) {
	if pm == nil {
		pm = pixmap.New(0, 0)
	}
	s.img = pm
	s.resetEdits()
	s.log.Info("image loaded", "width", pm.Width(), "height", pm.Height())
}

func (s *Session) resetEdits() {
	s.history.Reset()
	s.stroke.Reset()
	s.pressed = false
	s.selected = false
	s.selection = area.Area{}
}

// SetTool applies tool commands. Switching to a different shape abandons
// any stroke or drag in progress and, with [WithToolScopedHistory], forgets
// the erase history. Switching away from Cut drops the crop selection.
func (s *Session) SetTool(cmds ...ToolCommand) {
	prev := s.tool.Shape
	s.tool.Apply(cmds...)
	if s.tool.Shape == prev {
		return
	}
	s.stroke.Reset()
	s.pressed = false
	if s.tool.Shape != Cut {
		s.ClearSelection()
	}
	if s.toolScopedHistory {
		s.history.Reset()
	}
	s.log.Debug("tool changed", "from", prev, "to", s.tool.Shape)
}

// SetViewport sets the size of the widget showing the image. Pointer
// positions are scaled by image width / widget width. A zero viewport
// means the image is shown at its natural size.
func (s *Session) SetViewport(width, height float64) {
	s.viewport = Viewport{Width: width, Height: height}
}

// Viewport returns the effective widget size.
func (s *Session) Viewport() Viewport {
	if s.viewport.Width <= 0 || s.viewport.Height <= 0 {
		return Viewport{Width: float64(s.img.Width()), Height: float64(s.img.Height())}
	}
	return s.viewport
}

// PointerDown records the start of a gesture. Freehand and Eraser start a
// stroke; the other tools remember the press position until release.
func (s *Session) PointerDown(p Pointer) {
	if s.tool.Shape == None {
		return
	}
	vp := s.Viewport()
	s.start = image.Pt(int(ceilPos(p.X)), int(ceilPos(p.Y)))
	s.pressed = true
	if s.tool.Shape.stroked() {
		s.ClearSelection()
		s.stroke.Begin(s.tool, vp.stroke(p, s.img.Width(), s.tool.Thickness))
	}
}

// PointerMove feeds a pointer sample to the active stroke. It returns the
// dirty bounds and whether the image changed.
//
// Releasing the primary button or leaving the canvas ends the stroke.
func (s *Session) PointerMove(p Pointer) (image.Rectangle, bool) {
	if s.stroke.State() != StrokeDrawing {
		return image.Rectangle{}, false
	}
	vp := s.Viewport()
	if !p.Primary || !vp.Contains(p) {
		dirty := s.stroke.End(s.img, s.history, s.tool)
		s.pressed = false
		return dirty, !dirty.Empty()
	}

	dirty, changed := s.stroke.Move(s.img, s.history, s.tool, vp.stroke(p, s.img.Width(), s.tool.Thickness))
	if changed {
		s.log.Debug("stroke segment", "tool", s.tool.Shape, "dirty", dirty)
	}
	return dirty, changed
}

// PointerUp completes a gesture. Line, Circle and Rectangle draw between
// the press and release positions; Cut selects that area for cropping;
// Freehand and Eraser end the stroke. It returns the dirty bounds.
func (s *Session) PointerUp(p Pointer) (image.Rectangle, error) {
	if s.tool.Shape.stroked() {
		s.pressed = false
		return s.stroke.End(s.img, s.history, s.tool), nil
	}
	if !s.pressed {
		return image.Rectangle{}, nil
	}
	s.pressed = false

	end := image.Pt(int(ceilPos(p.X)), int(ceilPos(p.Y)))
	vp := s.Viewport()
	w := s.img.Width()
	from := vp.scale(float64(s.start.X), float64(s.start.Y), w)
	to := vp.scale(float64(end.X), float64(end.Y), w)

	switch {
	case s.tool.Shape == Cut:
		if s.start == end {
			return image.Rectangle{}, nil
		}
		if _, ok := s.Select(from, to); !ok {
			return image.Rectangle{}, nil
		}
		return s.img.Bounds(), nil
	case s.tool.Shape.dragged():
		return s.Draw(s.tool.Shape, from, to)
	}
	return image.Rectangle{}, nil
}

// Draw rasterizes shape between two image-space points with the current
// color, thickness and fill and paints it. Freehand draws a single
// segment; Eraser erases along the segment. None and Cut produce no
// pixels and return [ErrNotPaintable]. Painting drops the crop selection
// first so the history records fully opaque pixels.
func (s *Session) Draw(shape Shape, start, end image.Point) (image.Rectangle, error) {
	var coords raster.Set
	switch shape {
	case Line, Freehand:
		coords = raster.Line(start, end, s.tool.Thickness)
	case Circle:
		coords = raster.Circle(start, end, s.tool.Thickness, s.tool.Fill)
	case Rectangle:
		coords = raster.Rectangle(start, end, s.tool.Thickness, s.tool.Fill)
	case Eraser:
		dirty, _ := s.Erase(start, end)
		return dirty, nil
	default:
		return image.Rectangle{}, fmt.Errorf("%w: %v", ErrNotPaintable, shape)
	}

	s.ClearSelection()
	dirty := s.img.Apply(coords, s.tool.Color, s.history)
	s.log.Debug("shape drawn", "shape", shape, "start", start, "end", end, "dirty", dirty)
	return dirty, nil
}

// Erase restores the original pixels along the segment from start to end,
// using the eraser width (thickness plus margin). The boolean result is
// false when nothing under the eraser had been edited. Any crop selection
// is dropped first.
func (s *Session) Erase(start, end image.Point) (image.Rectangle, bool) {
	s.ClearSelection()
	return s.img.Erase(raster.Line(start, end, s.tool.Thickness+s.stroke.margin), s.history)
}

// Select marks the area between two image-space points for cropping and
// previews it: pixels inside keep full color at the highlight alpha,
// pixels outside become fully opaque. It reports false, leaving any
// previous selection in place, when the points span no area.
func (s *Session) Select(start, end image.Point) (area.Area, bool) {
	a, ok := area.Calculate(area.Size{Width: s.img.Width(), Height: s.img.Height()}, start, end)
	if !ok {
		return area.Area{}, false
	}
	s.img.Highlight(a.Rect(), s.highlightAlpha)
	s.selection = a
	s.selected = true
	s.log.Debug("area selected", "corner", a.Corner, "width", a.Width, "height", a.Height)
	return a, true
}

// Selection returns the current crop selection.
func (s *Session) Selection() (area.Area, bool) {
	return s.selection, s.selected
}

// ClearSelection drops the crop selection and restores full opacity.
func (s *Session) ClearSelection() {
	if !s.selected {
		return
	}
	s.img.ResetAlpha()
	s.selected = false
	s.selection = area.Area{}
}

// Crop replaces the image with the selected area, fully opaque. The erase
// history no longer applies to the new image and is discarded.
func (s *Session) Crop() error {
	if !s.selected {
		return ErrNoSelection
	}
	a := s.selection
	cropped := s.img.Crop(a.Rect())
	cropped.ResetAlpha()
	s.img = cropped
	s.resetEdits()
	s.log.Info("crop applied", "corner", a.Corner, "width", a.Width, "height", a.Height)
	return nil
}

// Snapshot returns an independent copy of the current image.
func (s *Session) Snapshot() *image.NRGBA {
	return s.img.ToImage()
}

// Save encodes the current image to w.
func (s *Session) Save(w io.Writer, format Format) error {
	return imageio.Encode(w, s.Snapshot(), format)
}

// SaveFile writes the current image to path, choosing the format from
// its extension.
func (s *Session) SaveFile(path string) error {
	if err := imageio.Save(path, s.Snapshot()); err != nil {
		return err
	}
	s.log.Info("image saved", "path", path)
	return nil
}

// SaveInBackground writes a snapshot of the current image into dir under
// its default time-stamped name without blocking the caller. It returns
// the destination path and a channel that receives the result and is then
// closed.
func (s *Session) SaveInBackground(dir string, format Format) (string, <-chan error) {
	path := filepath.Join(dir, imageio.DefaultFileName(time.Now(), format))
	snap := s.Snapshot()
	done := make(chan error, 1)
	log := s.log

	go func() {
		defer close(done)
		err := imageio.SaveAs(path, snap, format)
		if err != nil {
			log.Warn("background save failed", "path", path, "err", err)
		} else {
			log.Info("image saved", "path", path)
		}
		done <- err
	}()

	return path, done
}

// ceilPos rounds a widget coordinate up; negative positions clamp to 0.
func ceilPos(v float64) float64 {
	return max(math.Ceil(v), 0)
}
