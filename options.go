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

import "math"

// Default values for the sampling options.
const (
	DefaultMinDX         = 1e-6
	DefaultMinDYAbs      = 0
	DefaultMinDYRel      = 1e-3
	DefaultMaxCurvature  = 0.1736 // sin(10°)
	DefaultInitialPoints = 11
	DefaultMaxPoints     = 1000

	// DefaultXMin and DefaultXMax give the domain used for a nil *Options.
	DefaultXMin = -10
	DefaultXMax = 10
)

// epsilon is the difference between 1 and the next larger float64.
const epsilon = 0x1p-52

// OutputMode selects how the sampled points are returned.
type OutputMode int

const (
	// Segmented returns one Run per maximal stretch of finite samples.
	Segmented OutputMode = iota

	// Flattened returns a single Run.  The runs of the Segmented mode are
	// concatenated, separated by a marker point with Y set to NaN.
	Flattened
)

func (m OutputMode) String() string {
	switch m {
	case Segmented:
		return "segmented"
	case Flattened:
		return "flattened"
	default:
		return "OutputMode(invalid)"
	}
}

// Options controls the adaptive sampler.
//
// All tolerances are hints.  A zero tolerance or point count selects the
// corresponding default, and out-of-range values are silently clamped into
// range.
type Options struct {
	// XMin and XMax give the domain.  If XMin > XMax, the two are swapped.
	// There is no default domain: zero values give the single point x = 0.
	// Only a nil *Options samples the default domain
	// [DefaultXMin, DefaultXMax].
	XMin, XMax float64

	// MinDX is the minimum spacing between two samples.
	MinDX float64

	// MinDYAbs is an absolute y-change below which a region is
	// considered flat.
	MinDYAbs float64

	// MinDYRel is the fraction of the overall finite y-range below which a
	// region is considered flat.  Negative values disable the test.
	MinDYRel float64

	// MaxCurvature is the sine of the largest angle between two
	// consecutive, normalized chords which is accepted without
	// refinement.
	MaxCurvature float64

	// InitialPoints is the number of evenly spaced seed points.
	InitialPoints int

	// MaxPoints is an upper bound for the total number of samples.
	MaxPoints int

	// Output selects the shape of the result.
	Output OutputMode
}

// settings holds the options after defaults and clamping were applied.
type settings struct {
	xMin, xMax    float64
	minDX         float64
	minDYAbs      float64
	minDYRel      float64
	maxCurvature  float64
	initialPoints int
	maxPoints     int
	output        OutputMode
}

// resolve applies defaults and clamps.  It never fails.
func (o *Options) resolve() *settings {
	if o == nil {
		o = &Options{XMin: DefaultXMin, XMax: DefaultXMax}
	}

	s := &settings{
		xMin:          o.XMin,
		xMax:          o.XMax,
		minDX:         orDefault(o.MinDX, DefaultMinDX),
		minDYAbs:      max(o.MinDYAbs, 0),
		minDYRel:      max(orDefault(o.MinDYRel, DefaultMinDYRel), 0),
		maxCurvature:  orDefault(o.MaxCurvature, DefaultMaxCurvature),
		initialPoints: o.InitialPoints,
		maxPoints:     o.MaxPoints,
		output:        o.Output,
	}
	if s.xMin > s.xMax {
		s.xMin, s.xMax = s.xMax, s.xMin
	}

	if !(s.minDX >= epsilon) { // also catches NaN
		s.minDX = epsilon
	}
	if math.IsNaN(s.minDYAbs) {
		s.minDYAbs = 0
	}
	if math.IsNaN(s.minDYRel) {
		s.minDYRel = DefaultMinDYRel
	}
	if !(s.maxCurvature > epsilon) {
		s.maxCurvature = epsilon
	} else if s.maxCurvature > 1 {
		s.maxCurvature = 1
	}

	if s.initialPoints == 0 {
		s.initialPoints = DefaultInitialPoints
	}
	s.initialPoints = max(s.initialPoints, 2)
	if s.maxPoints == 0 {
		s.maxPoints = DefaultMaxPoints
	}
	s.maxPoints = max(s.maxPoints, s.initialPoints)

	if s.output != Flattened {
		s.output = Segmented
	}
	return s
}

// iterationLimit is the safety cap for the number of refinement rounds.
func (s *settings) iterationLimit() int {
	return max(s.maxPoints, 200) * 5
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
