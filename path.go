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

package fnplot

import (
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendPath adds one open subpath per run to p and returns the extended
// path.  If p is nil, a new path is allocated.
//
// The points are mapped through the affine transformation m before they
// are added.  A zero matrix is treated as the identity.  Break markers
// (see [Flattened]) start a new subpath, and subpaths with fewer than two
// points are skipped.
func AppendPath(p *path.Data, runs []Run, m matrix.Matrix) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}

	for _, run := range runs {
		start := 0
		for i := 0; i <= len(run); i++ {
			if i < len(run) && !isBreak(run[i]) {
				continue
			}
			if i-start >= 2 {
				p.MoveTo(transform(m, run[start]))
				for _, pt := range run[start+1 : i] {
					p.LineTo(transform(m, pt))
				}
			}
			start = i + 1
		}
	}
	return p
}

// transform applies the affine map m to v.
func transform(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// SVGPath formats p in the syntax of the "d" attribute of an SVG path
// element, for example "M 0 1 L 2 3".
func SVGPath(p *path.Data) string {
	var buf []byte
	coordIdx := 0
	emit := func(op byte, n int) {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, op)
		for _, pt := range p.Coords[coordIdx : coordIdx+n] {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, pt.X, 'g', -1, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, pt.Y, 'g', -1, 64)
		}
		coordIdx += n
	}

	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			emit('M', 1)
		case path.CmdLineTo:
			emit('L', 1)
		case path.CmdQuadTo:
			emit('Q', 2)
		case path.CmdCubeTo:
			emit('C', 3)
		case path.CmdClose:
			emit('Z', 0)
		}
	}
	return string(buf)
}
