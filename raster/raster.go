// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster maps annotation primitives to the integer pixels they cover.
//
// Every function returns a [Set] rather than a list: a pixel reached by more
// than one internal step (band overlap, corners, mirrored columns) appears
// once, so compositing never paints or restores it twice.
//
// Corner points may be given in any order. Thickness is the width in pixels
// of the band drawn around a shape's outline or backbone; it is split as
// thickness/2 on each side of the backbone pixel, so even thicknesses round
// up to the next odd band.
//
// The package has no dependencies beyond the standard library and holds no
// state; all functions are safe for concurrent use.
package raster

import (
	"image"
	"sort"
)

// Set is an unordered set of pixel coordinates.
type Set map[image.Point]struct{}

// NewSet returns a set holding the given points.
func NewSet(pts ...image.Point) Set {
	s := make(Set, len(pts))
	for _, p := range pts {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p into the set.
func (s Set) Add(p image.Point) {
	s[p] = struct{}{}
}

// Has reports whether p is in the set.
func (s Set) Has(p image.Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of points in the set.
func (s Set) Len() int {
	return len(s)
}

// Points returns the points in row-major order (y, then x).
// Ordering carries no meaning for compositing; it exists for stable output
// in tests and debugging.
func (s Set) Points() []image.Point {
	pts := make([]image.Point, 0, len(s))
	for p := range s {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// Bounds returns the smallest rectangle containing every point.
// The result is empty for an empty set.
func (s Set) Bounds() image.Rectangle {
	var r image.Rectangle
	first := true
	for p := range s {
		if first {
			r = image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
			first = false
			continue
		}
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X+1)
		r.Max.Y = max(r.Max.Y, p.Y+1)
	}
	return r
}

// normalize orders two corners so that the first is the top-left and the
// second the bottom-right corner of their bounding box.
func normalize(start, end image.Point) (image.Point, image.Point) {
	if start.X > end.X {
		start.X, end.X = end.X, start.X
	}
	if start.Y > end.Y {
		start.Y, end.Y = end.Y, start.Y
	}
	return start, end
}

// lowerBand returns v - half, clamped at 0. Coordinates never wrap below
// the image origin.
func lowerBand(v, half int) int {
	return max(v-half, 0)
}
