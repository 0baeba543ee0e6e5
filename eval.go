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
	"errors"
	"math"
)

// ErrUndefined can be returned by a function passed to [SampleContext] to
// indicate that the function is not defined at the given x.  Such points
// break the graph in the same way as a NaN result.
var ErrUndefined = errors.New("function undefined")

// evaluator calls the user function and keeps track of the range of
// finite function values seen so far.
type evaluator struct {
	f          func(float64) (float64, error)
	yMin, yMax float64
	calls      int
}

func newEvaluator(f func(float64) (float64, error)) *evaluator {
	return &evaluator{
		f:    f,
		yMin: math.Inf(+1),
		yMax: math.Inf(-1),
	}
}

// eval returns f(x), with undefined results mapped to NaN.
// Any other error is returned unchanged.
func (e *evaluator) eval(x float64) (float64, error) {
	e.calls++
	y, err := e.f(x)
	if errors.Is(err, ErrUndefined) {
		return math.NaN(), nil
	} else if err != nil {
		return 0, err
	}

	if math.IsNaN(y) {
		return y, nil
	}
	if !math.IsInf(y, 0) {
		e.yMin = min(e.yMin, y)
		e.yMax = max(e.yMax, y)
	}
	return y, nil
}

// yRange returns the extent of the finite function values seen so far,
// or 0 if there were none.
func (e *evaluator) yRange() float64 {
	if e.yMax < e.yMin {
		return 0
	}
	return e.yMax - e.yMin
}
