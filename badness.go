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
	"math"

	"seehuhn.de/go/geom/vec"
)

// asymptoteBadness is assigned to intervals where the function changes
// between finite and infinite values.  It exceeds any geometric badness
// of a reasonably scaled plot, so that these intervals are halved until
// they reach minDX.
const asymptoteBadness = 1e12

// scoreTriplet updates the badness of the two intervals adjacent to sample
// mid, i.e. the intervals mid-1 and mid.  Centres without a neighbour on
// both sides are ignored.
//
// The rules are applied in order, and the first one which matches decides:
//  1. both intervals narrower than minDX: clear both
//  2. an undefined sample: clear the intervals touching it
//  3. an infinite sample: mark intervals crossing between finite and
//     infinite values with asymptoteBadness
//  4. small y-changes: clear both
//  5. a sharp bend: raise both intervals to the area spanned by the chords
func (s *sampler) scoreTriplet(mid int) {
	st := s.store
	if mid <= 0 || mid >= st.Len()-1 {
		return
	}
	left, right := mid-1, mid
	prev, cur, next := st.samples[mid-1], st.samples[mid], st.samples[mid+1]
	dx0 := cur.x - prev.x
	dx1 := next.x - cur.x
	minDX := s.opt.minDX

	if dx0 < minDX && dx1 < minDX {
		st.clearBadness(left)
		st.clearBadness(right)
		return
	}

	nanPrev, nanCur, nanNext := math.IsNaN(prev.y), math.IsNaN(cur.y), math.IsNaN(next.y)
	if nanPrev || nanCur || nanNext {
		if nanPrev || nanCur {
			st.clearBadness(left)
		}
		if nanCur || nanNext {
			st.clearBadness(right)
		}
		return
	}

	finPrev, finCur, finNext := isFinite(prev.y), isFinite(cur.y), isFinite(next.y)
	if !finPrev || !finCur || !finNext {
		if finPrev != finCur && dx0 > minDX {
			st.raiseBadness(left, asymptoteBadness)
		}
		if finCur != finNext && dx1 > minDX {
			st.raiseBadness(right, asymptoteBadness)
		}
		return
	}

	dy0 := cur.y - prev.y
	dy1 := next.y - cur.y
	if s.isFlat(dy0, dy1) {
		st.clearBadness(left)
		st.clearBadness(right)
		return
	}

	yLow := min(prev.y, cur.y, next.y)
	yHigh := max(prev.y, cur.y, next.y)
	xSpan := next.x - prev.x
	ySpan := yHigh - yLow
	if ySpan < epsilon || xSpan < epsilon {
		st.clearBadness(left)
		st.clearBadness(right)
		return
	}

	// Compare the directions of the two chords after stretching the
	// triplet's bounding box to the unit square.
	a := vec.Vec2{X: dx0 / xSpan, Y: dy0 / ySpan}
	b := vec.Vec2{X: dx1 / xSpan, Y: dy1 / ySpan}
	la, lb := a.Length(), b.Length()
	if la < epsilon || lb < epsilon {
		return
	}
	sin := cross(a, b) / (la * lb)
	if math.Abs(sin) <= s.opt.maxCurvature {
		return
	}

	badness := math.Abs(cross(vec.Vec2{X: dx0, Y: dy0}, vec.Vec2{X: dx1, Y: dy1}))
	if !(badness > 0) {
		return
	}
	if dx0 > minDX {
		st.raiseBadness(left, badness)
	}
	if dx1 > minDX {
		st.raiseBadness(right, badness)
	}
}

// isFlat reports whether two consecutive y-changes are too small to be
// visible.
func (s *sampler) isFlat(dy0, dy1 float64) bool {
	dy0, dy1 = math.Abs(dy0), math.Abs(dy1)
	if dy0 < s.opt.minDYAbs && dy1 < s.opt.minDYAbs {
		return true
	}
	if yRange := s.eval.yRange(); yRange > epsilon {
		limit := s.opt.minDYRel * yRange
		if dy0 < limit && dy1 < limit {
			return true
		}
	}
	return false
}

// cross returns the z-component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func isFinite(y float64) bool {
	return !math.IsNaN(y) && !math.IsInf(y, 0)
}
