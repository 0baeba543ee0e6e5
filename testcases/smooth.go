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

package testcases

import (
	"math"

	"seehuhn.de/go/fnplot"
)

var smoothCases = []TestCase{
	{
		Name:    "sine",
		F:       math.Sin,
		Options: domain(-10, 10),
		YMin:    -1.5,
		YMax:    1.5,
		Width:   200,
		Height:  100,
	},
	{
		Name:    "cosine_swapped_domain",
		F:       math.Cos,
		Options: domain(10, -10),
		YMin:    -1.5,
		YMax:    1.5,
		Width:   200,
		Height:  100,
	},
	{
		Name:    "exp",
		F:       math.Exp,
		Options: domain(-3, 3),
		YMin:    -1,
		YMax:    21,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "cubic",
		F:       func(x float64) float64 { return x*x*x - 3*x },
		Options: domain(-3, 3),
		YMin:    -10,
		YMax:    10,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "gaussian",
		F:       func(x float64) float64 { return math.Exp(-x * x) },
		Options: domain(-5, 5),
		YMin:    -0.25,
		YMax:    1.25,
		Width:   200,
		Height:  100,
	},
}

var curvatureCases = []TestCase{
	{
		Name:    "parabola",
		F:       func(x float64) float64 { return x * x },
		Options: domain(-5, 5),
		YMin:    -1,
		YMax:    26,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "abs",
		F:       math.Abs,
		Options: domain(-2.05, 1.95),
		YMin:    -0.5,
		YMax:    2.5,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "chirp",
		F:       func(x float64) float64 { return math.Sin(x * x) },
		Options: domain(0, 6),
		YMin:    -1.5,
		YMax:    1.5,
		Width:   300,
		Height:  100,
	},
	{
		Name: "chirp_tight",
		F:    func(x float64) float64 { return math.Sin(x * x) },
		Options: fnplot.Options{
			XMin:         0,
			XMax:         6,
			MaxCurvature: 0.05,
			MaxPoints:    4000,
		},
		YMin:   -1.5,
		YMax:   1.5,
		Width:  300,
		Height: 100,
	},
	{
		Name: "sine_coarse",
		F:    math.Sin,
		Options: fnplot.Options{
			XMin:          -10,
			XMax:          10,
			InitialPoints: 3,
			MaxPoints:     25,
		},
		YMin:   -1.5,
		YMax:   1.5,
		Width:  200,
		Height: 100,
	},
}

var flatCases = []TestCase{
	{
		Name:    "constant",
		F:       func(x float64) float64 { return 5 },
		Options: domain(-10, 10),
		YMin:    0,
		YMax:    10,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "line",
		F:       func(x float64) float64 { return 0.5*x - 1 },
		Options: domain(-10, 10),
		YMin:    -7,
		YMax:    5,
		Width:   100,
		Height:  100,
	},
	{
		Name: "ripple_below_threshold",
		F:    func(x float64) float64 { return 1e-6 * math.Sin(50*x) },
		Options: fnplot.Options{
			XMin:     -1,
			XMax:     1,
			MinDYAbs: 1e-3,
		},
		YMin:   -1,
		YMax:   1,
		Width:  100,
		Height: 100,
	},
}
