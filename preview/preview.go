// seehuhn.de/go/fnplot - adaptive sampling of function graphs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preview draws sampled function graphs into coverage images.
//
// The output is meant for visual checks of the sampler: every line segment
// of a run is stroked as a separate quadrilateral, and caps and joins are
// only approximated.
package preview

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fnplot"
)

// zeroLengthThreshold is the minimum length of a stroked segment, in pixels.
const zeroLengthThreshold = 1e-10

// roundSegments is the number of edges used to approximate a round cap or
// join.
const roundSegments = 16

// Canvas describes the output image and the visible part of the plane.
type Canvas struct {
	Width, Height int       // image size in pixels
	Window        rect.Rect // visible region, in function coordinates

	// LineWidth is the stroke width in pixels.  Zero selects 1.
	LineWidth float64

	// Cap is applied at both ends of every run.
	Cap graphics.LineCapStyle

	// Join is applied between consecutive segments of a run.
	// Only LineJoinRound adds geometry; the other styles leave the
	// segments unconnected.
	Join graphics.LineJoinStyle
}

// Matrix returns the transformation from function coordinates to pixel
// coordinates.  The y-axis of the image points down.
func (c *Canvas) Matrix() matrix.Matrix {
	w := c.Window
	sx := float64(c.Width) / (w.URx - w.LLx)
	sy := float64(c.Height) / (w.URy - w.LLy)
	return matrix.Matrix{sx, 0, 0, -sy, -w.LLx * sx, w.URy * sy}
}

// Render strokes the runs and returns the coverage image.
func (c *Canvas) Render(runs []fnplot.Run) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, c.Width, c.Height))
	if c.Width <= 0 || c.Height <= 0 || !(c.Window.URx > c.Window.LLx) || !(c.Window.URy > c.Window.LLy) {
		return dst
	}
	s := &stroker{
		z:    vector.NewRasterizer(c.Width, c.Height),
		d:    c.halfWidth(),
		cap:  c.Cap,
		join: c.Join,
	}
	margin := 2*s.d + 1
	s.clip = rect.Rect{
		LLx: -margin,
		LLy: -margin,
		URx: float64(c.Width) + margin,
		URy: float64(c.Height) + margin,
	}
	p := fnplot.AppendPath(nil, runs, c.Matrix())
	s.strokePath(ClipPath(p, s.clip))

	s.z.DrawOp = draw.Src
	s.z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func (c *Canvas) halfWidth() float64 {
	if c.LineWidth > 0 {
		return c.LineWidth / 2
	}
	return 0.5
}

type stroker struct {
	z    *vector.Rasterizer
	d    float64
	cap  graphics.LineCapStyle
	join graphics.LineJoinStyle
	clip rect.Rect

	poly []vec.Vec2
}

// strokePath walks the path and strokes every subpath.
func (s *stroker) strokePath(p *path.Data) {
	var sub []vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			s.strokeSubpath(sub)
			sub = append(sub[:0], p.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			sub = append(sub, p.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		}
	}
	s.strokeSubpath(sub)
}

// strokeSubpath strokes an open polyline.
func (s *stroker) strokeSubpath(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		s.addSegment(pts[i-1], pts[i], i == 1, i == len(pts)-1)
		if i < len(pts)-1 && s.join == graphics.LineJoinRound {
			s.addDisc(pts[i])
		}
	}
}

// addSegment adds the outline of the stroked segment from a to b.
func (s *stroker) addSegment(a, b vec.Vec2, first, last bool) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)     // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)

	if s.cap == graphics.LineCapSquare {
		if first {
			a = a.Sub(t.Mul(s.d))
		}
		if last {
			b = b.Add(t.Mul(s.d))
		}
	}

	nd := n.Mul(s.d)
	s.addPolygon(a.Add(nd), b.Add(nd), b.Sub(nd), a.Sub(nd))

	if s.cap == graphics.LineCapRound {
		if first {
			s.addDisc(a)
		}
		if last {
			s.addDisc(b)
		}
	}
}

// addDisc adds a regular polygon approximating a disc of radius d.
func (s *stroker) addDisc(center vec.Vec2) {
	pts := make([]vec.Vec2, roundSegments)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / roundSegments
		pts[i] = center.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(s.d))
	}
	s.addPolygon(pts...)
}

// addPolygon adds a closed polygon to the rasterizer.  All polygons are
// added with the same orientation, so that overlapping parts do not
// cancel.
func (s *stroker) addPolygon(pts ...vec.Vec2) {
	s.poly = append(s.poly[:0], pts...)
	if signedArea(s.poly) < 0 {
		for i, j := 0, len(s.poly)-1; i < j; i, j = i+1, j-1 {
			s.poly[i], s.poly[j] = s.poly[j], s.poly[i]
		}
	}
	s.z.MoveTo(float32(s.poly[0].X), float32(s.poly[0].Y))
	for _, pt := range s.poly[1:] {
		s.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	s.z.ClosePath()
}

func signedArea(pts []vec.Vec2) float64 {
	area := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// clipSegment restricts the segment from a to b to the rectangle r, using
// the Liang-Barsky algorithm.  The result is false if no part of the
// segment lies inside r.
func clipSegment(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4]struct{ p, q float64 }{
		{-d.X, a.X - r.LLx},
		{d.X, r.URx - a.X},
		{-d.Y, a.Y - r.LLy},
		{d.Y, r.URy - a.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return a, b, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		cb = a.Add(d.Mul(t1))
	}
	return ca, cb, true
}

// ClipPath restricts the straight line segments of p to the rectangle r.
// Subpaths are split where they leave r.  Curves and ClosePath commands are
// ignored, since the sampler only generates polylines.
func ClipPath(p *path.Data, r rect.Rect) *path.Data {
	res := &path.Data{}
	if p == nil {
		return res
	}

	var last, prev vec.Vec2
	open := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			prev = p.Coords[coordIdx]
			coordIdx++
			open = false
		case path.CmdLineTo:
			next := p.Coords[coordIdx]
			coordIdx++
			a, b, ok := clipSegment(prev, next, r)
			prev = next
			if !ok {
				open = false
				continue
			}
			if !open || a != last {
				res.MoveTo(a)
			}
			res.LineTo(b)
			last = b
			open = true
		case path.CmdQuadTo:
			prev = p.Coords[coordIdx+1]
			coordIdx += 2
			open = false
		case path.CmdCubeTo:
			prev = p.Coords[coordIdx+2]
			coordIdx += 3
			open = false
		}
	}
	return res
}
