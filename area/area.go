// Package area computes the rectangular region spanned by a drag gesture on
// a bounded surface. The same calculation serves a live screen capture,
// where only the screen size is known, and a crop of an already captured
// image.
package area

import "image"

// Size is the extent of the surface a region is taken from.
type Size struct {
	Width, Height int
}

// Area is a rectangular region of a surface, given by its top-left corner
// and its extent.
type Area struct {
	Corner        image.Point
	Width, Height int
}

// Rect returns the area as a half-open image.Rectangle.
func (a Area) Rect() image.Rectangle {
	return image.Rectangle{
		Min: a.Corner,
		Max: a.Corner.Add(image.Pt(a.Width, a.Height)),
	}
}

// Empty reports whether the area covers no pixels.
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Calculate returns the area between two drag points on a surface of the
// given size. Both points are clamped into [0, Width]×[0, Height] first,
// so a drag that leaves the surface is cut at its edge. The order of the
// points does not matter.
//
// The boolean result is false if the area has no width or no height, or
// does not fit in the surface.
func Calculate(size Size, start, end image.Point) (Area, bool) {
	start = clamp(start, size)
	end = clamp(end, size)

	a := Area{
		Corner: image.Pt(min(start.X, end.X), min(start.Y, end.Y)),
		Width:  abs(start.X - end.X),
		Height: abs(start.Y - end.Y),
	}
	if a.Empty() {
		return Area{}, false
	}
	if a.Corner.X+a.Width > size.Width || a.Corner.Y+a.Height > size.Height {
		return Area{}, false
	}
	return a, true
}

func clamp(p image.Point, size Size) image.Point {
	return image.Pt(
		min(max(p.X, 0), max(size.Width, 0)),
		min(max(p.Y, 0), max(size.Height, 0)),
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
