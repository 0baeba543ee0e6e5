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

import "math"

var poleCases = []TestCase{
	{
		Name:    "hyperbola",
		F:       func(x float64) float64 { return 1 / x },
		Options: domain(-1, 1),
		YMin:    -10,
		YMax:    10,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "inverse_square",
		F:       func(x float64) float64 { return 1 / (x * x) },
		Options: domain(-2, 2),
		YMin:    -1,
		YMax:    20,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "shifted_pole",
		F:       func(x float64) float64 { return 1 / (x - 1) },
		Options: domain(-4, 6),
		YMin:    -5,
		YMax:    5,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "log_at_zero",
		F:       math.Log,
		Options: domain(0, 5),
		YMin:    -5,
		YMax:    2,
		Width:   100,
		Height:  100,
	},
}

var undefinedCases = []TestCase{
	{
		Name:    "sqrt",
		F:       math.Sqrt,
		Options: domain(-2, 4),
		YMin:    -0.5,
		YMax:    2.5,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "log",
		F:       math.Log,
		Options: domain(-1, 3),
		YMin:    -4,
		YMax:    2,
		Width:   100,
		Height:  100,
	},
	{
		Name:    "circle",
		F:       func(x float64) float64 { return math.Sqrt(1 - x*x) },
		Options: domain(-1.5, 1.5),
		YMin:    -0.25,
		YMax:    1.25,
		Width:   150,
		Height:  75,
	},
	{
		Name: "holes",
		F: func(x float64) float64 {
			if math.Mod(math.Abs(x), 2) < 0.5 {
				return math.NaN()
			}
			return math.Sin(x)
		},
		Options: domain(-6, 6),
		YMin:    -1.5,
		YMax:    1.5,
		Width:   200,
		Height:  100,
	},
}
