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

// Package fnplot approximates the graph of a real function by polylines.
//
// The sampler starts with a few evenly spaced samples and then repeatedly
// halves those intervals where the graph bends sharply, until the polyline
// is visually smooth or the sample budget is used up.  Points where the
// function is undefined or infinite break the graph into separate runs, and
// intervals next to vertical asymptotes are refined down to the minimum
// sample spacing.
//
// Sampling is a pure, single threaded computation.  Different goroutines
// may sample different functions concurrently.
package fnplot

//go:generate go run ./testcases/export

import (
	"context"
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrDomain is returned by [SampleContext] if one of the domain bounds is
// infinite or NaN.
var ErrDomain = errors.New("invalid domain")

// A Run is a sequence of points with increasing x-coordinates.
//
// In [Segmented] mode all points of a run have finite coordinates and
// can be joined by straight lines.  In [Flattened] mode a point with
// Y = NaN marks a break between two runs.
type Run []vec.Vec2

// Sample approximates the graph of f on the domain given in opts.  If opts
// is nil, the defaults are used on the domain [-10, 10].
//
// Non-finite return values of f break the graph.  A panic in f is not
// recovered and propagates to the caller.  If the domain bounds are not
// finite, Sample returns nil.
func Sample(f func(x float64) float64, opts *Options) []Run {
	g := func(x float64) (float64, error) {
		return f(x), nil
	}
	runs, err := SampleContext(context.Background(), g, opts)
	if err != nil {
		return nil
	}
	return runs
}

// SampleContext is like [Sample], but f can report errors.
//
// If f returns an error which matches [ErrUndefined], the function is
// treated as undefined at this point.  Any other error stops the sampling
// and is returned unchanged.  The context is checked once per refinement
// round; if it is cancelled, the context's error is returned.
//
// If XMin equals XMax, the result is a single run containing the
// single point (XMin, f(XMin)).  If f(XMin) is not finite, the result is
// empty.
func SampleContext(ctx context.Context, f func(x float64) (float64, error), opts *Options) ([]Run, error) {
	opt := opts.resolve()
	if !isFinite(opt.xMin) || !isFinite(opt.xMax) {
		return nil, ErrDomain
	}

	s := newSampler(f, opt)
	if err := s.run(ctx); err != nil {
		return nil, err
	}
	s.logResult()

	if s.stop == stopDegenerate {
		smp := s.store.samples[0]
		if !isFinite(smp.y) {
			return []Run{}, nil
		}
		return []Run{{{X: smp.x, Y: smp.y}}}, nil
	}

	switch opt.output {
	case Flattened:
		run := flatten(s.store.samples)
		if len(run) == 0 {
			return []Run{}, nil
		}
		return []Run{run}, nil
	default:
		runs := segment(s.store.samples)
		if runs == nil {
			runs = []Run{}
		}
		return runs, nil
	}
}

// isBreak reports whether p is the marker between two runs in
// [Flattened] mode.
func isBreak(p vec.Vec2) bool {
	return math.IsNaN(p.Y)
}
