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

// segment splits the samples into maximal runs of finite function values.
// Runs with fewer than two points are dropped.
func segment(samples []sample) []Run {
	var runs []Run
	var cur Run
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for _, smp := range samples {
		if !isFinite(smp.y) {
			flush()
			continue
		}
		cur = append(cur, vec.Vec2{X: smp.x, Y: smp.y})
	}
	flush()
	return runs
}

// flatten joins the runs of [segment] into a single Run.  Consecutive
// runs are separated by a marker point with Y = NaN, located at the first
// sample which broke the preceding run.
func flatten(samples []sample) Run {
	res := Run{}
	var cur Run
	var breakX float64
	haveBreak := false
	flush := func() {
		if len(cur) >= 2 {
			if len(res) > 0 {
				res = append(res, vec.Vec2{X: breakX, Y: math.NaN()})
			}
			res = append(res, cur...)
			haveBreak = false
		}
		cur = cur[:0]
	}
	for _, smp := range samples {
		if !isFinite(smp.y) {
			flush()
			if !haveBreak {
				breakX = smp.x
				haveBreak = true
			}
			continue
		}
		cur = append(cur, vec.Vec2{X: smp.x, Y: smp.y})
	}
	flush()
	return res
}
