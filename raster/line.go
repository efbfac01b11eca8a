// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// Line returns the pixels of a straight segment from start to end with the
// given thickness.
//
// The segment is swept over its normalized bounding box with one backbone
// pixel per column, y = ceil(m*x + q). Shallow lines (|m| <= 1) are
// thickened vertically around each backbone pixel; steep lines are
// thickened horizontally across the rows between consecutive backbone
// pixels. Vertical segments are a horizontal band over the full row span.
//
// Because the sweep always runs over the normalized box, a segment dragged
// along the anti-diagonal (one axis increasing, the other decreasing) is
// mirrored back about its horizontal span so it keeps the drag direction.
//
// Line returns an empty set when start == end.
func Line(start, end image.Point, thickness int) Set {
	if start == end {
		return Set{}
	}

	dx := end.X - start.X
	dy := end.Y - start.Y
	p0, p1 := normalize(start, end)
	half := max(thickness, 0) / 2

	s := make(Set)
	if p0.X == p1.X {
		x := p0.X + (p1.X-p0.X)/2
		for y := p0.Y; y <= p1.Y; y++ {
			rowBand(s, x, y, half)
		}
		return s
	}

	spanX := p1.X - p0.X
	spanY := p1.Y - p0.Y
	backbone := make([]image.Point, 0, spanX+1)
	for x := p0.X; x <= p1.X; x++ {
		backbone = append(backbone, image.Pt(x, p0.Y+ceilDiv(spanY*(x-p0.X), spanX)))
	}

	if spanY > spanX {
		for i := 0; i < len(backbone)-1; i++ {
			x := backbone[i].X
			for y := backbone[i].Y; y < backbone[i+1].Y; y++ {
				rowBand(s, x, y, half)
			}
		}
		last := backbone[len(backbone)-1]
		rowBand(s, last.X, last.Y, half)
	} else {
		for _, p := range backbone {
			for y := lowerBand(p.Y, half); y <= p.Y+half; y++ {
				s.Add(image.Pt(p.X, y))
			}
		}
	}

	if (dx > 0 && dy < 0) || (dx < 0 && dy > 0) {
		s = mirrorX(s, p0.X, p1.X)
	}
	return s
}

// rowBand adds the horizontal band [x-half, x+half] on row y.
func rowBand(s Set, x, y, half int) {
	for xt := lowerBand(x, half); xt <= x+half; xt++ {
		s.Add(image.Pt(xt, y))
	}
}

// mirrorX reflects every point about the vertical axis halfway between x0
// and x1. Reflected columns left of the origin clamp to 0.
func mirrorX(s Set, x0, x1 int) Set {
	out := make(Set, len(s))
	for p := range s {
		out.Add(image.Pt(max(x0+x1-p.X, 0), p.Y))
	}
	return out
}

// ceilDiv returns ceil(a/b) for a >= 0 and b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
