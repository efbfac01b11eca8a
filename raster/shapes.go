// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
)

// Rectangle returns the pixels of the axis-aligned box spanned by start and
// end, both corners inclusive.
//
// A filled rectangle covers the whole box. An outline keeps the pixels
// lying within thickness of one of the four edges; thickness below 1 is
// treated as 1.
func Rectangle(start, end image.Point, thickness int, filled bool) Set {
	p0, p1 := normalize(start, end)
	t := max(thickness, 1)

	s := make(Set)
	for y := p0.Y; y <= p1.Y; y++ {
		for x := p0.X; x <= p1.X; x++ {
			if filled || y < p0.Y+t || y > p1.Y-t || x < p0.X+t || x > p1.X-t {
				s.Add(image.Pt(x, y))
			}
		}
	}
	return s
}

// Circle returns the pixels of the circle inscribed in the box spanned by
// start and end.
//
// The box is first made square by extending its shorter side from the
// top-left corner, so a drag always yields a true circle sized by the
// larger dimension. The radius is half the square's side but never less
// than thickness, which keeps tiny drags visible. Distances from the center
// are rounded up before comparison.
//
// A filled circle keeps every pixel within the radius; an outline keeps the
// ring radius-thickness <= d <= radius. Only pixels inside the square box
// are considered.
func Circle(start, end image.Point, thickness int, filled bool) Set {
	p0, p1 := normalize(start, end)
	w := p1.X - p0.X
	h := p1.Y - p0.Y
	if w < h {
		p1.X = p0.X + h
	} else {
		p1.Y = p0.Y + w
	}

	t := max(thickness, 0)
	cx := (p0.X + p1.X) / 2
	cy := (p0.Y + p1.Y) / 2
	radius := max((p1.X-p0.X)/2, t)

	s := make(Set)
	for x := p0.X; x <= p1.X; x++ {
		for y := p0.Y; y <= p1.Y; y++ {
			ddx := x - cx
			ddy := y - cy
			d := int(math.Ceil(math.Sqrt(float64(ddx*ddx + ddy*ddy))))
			if d > radius {
				continue
			}
			if filled || d >= radius-t {
				s.Add(image.Pt(x, y))
			}
		}
	}
	return s
}

// Square returns the thickness×thickness block centered on center, the
// footprint of a single brush dab. Thickness below 1 yields the center
// pixel alone.
func Square(center image.Point, thickness int) Set {
	t := max(thickness, 1)
	x0 := center.X - t/2
	y0 := center.Y - t/2

	s := make(Set, t*t)
	for y := y0; y < y0+t; y++ {
		for x := x0; x < x0+t; x++ {
			s.Add(image.Pt(x, y))
		}
	}
	return s
}
