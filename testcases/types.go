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

// Package testcases contains functions which exercise the adaptive sampler,
// together with the plot window used to look at them.
package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/fnplot"
)

// TestCase defines a single function to be plotted.
type TestCase struct {
	Name    string                  // lowercase a-z and _ only
	F       func(x float64) float64 // the function to sample
	Options fnplot.Options          // domain and tolerances
	YMin    float64                 // lower edge of the plot window
	YMax    float64                 // upper edge of the plot window
	Width   int                     // canvas width in pixels
	Height  int                     // canvas height in pixels
}

// Window returns the part of the plane shown in the plot.
func (tc *TestCase) Window() rect.Rect {
	xMin, xMax := tc.Options.XMin, tc.Options.XMax
	if xMin > xMax {
		xMin, xMax = xMax, xMin
	}
	return rect.Rect{LLx: xMin, LLy: tc.YMin, URx: xMax, URy: tc.YMax}
}

// domain is a helper to create sampler options for [a, b].
func domain(a, b float64) fnplot.Options {
	return fnplot.Options{XMin: a, XMax: b}
}
