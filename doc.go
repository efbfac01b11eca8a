// Package snapmark is the annotation engine of a screenshot tool.
//
// # Overview
//
// snapmark turns pointer gestures on a captured image into pixel edits:
// straight lines, circles and rectangles dragged between two points,
// freehand strokes, an eraser that restores the original pixels under it,
// and a crop selection. All edits happen synchronously on an in-memory
// RGBA buffer; nothing is anti-aliased and every rule for thickness,
// rounding and clamping is exact and integer based.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/snapmark"
//	    "github.com/gogpu/snapmark/pixmap"
//	)
//
//	pm, _ := pixmap.FromBytes(width, height, rgba)
//	s := snapmark.NewSession(pm, snapmark.WithViewport(800, 450))
//
//	s.SetTool(snapmark.SelectShape(snapmark.Rectangle), snapmark.SetThickness(3))
//	s.PointerDown(snapmark.Pointer{X: 40, Y: 30, Primary: true})
//	s.PointerUp(snapmark.Pointer{X: 200, Y: 120})
//
//	_ = s.SaveFile("annotated.png")
//
// # Architecture
//
// The module is organized into:
//   - raster: shape rasterization to pixel coordinate sets
//   - pixmap: the RGBA buffer, compositing and the erase history
//   - area: drag-rectangle calculation shared by capture and crop
//   - capture: delayed screen capture with stale-result rejection
//   - snapmark: the editing Session, tool state and stroke controller
//
// # Coordinate System
//
// Image coordinates are integer pixels with the origin at the top-left,
// X increasing right and Y increasing down. Pointer events arrive in
// widget coordinates and are scaled by image width / widget width.
package snapmark

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
