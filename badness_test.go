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
	"testing"
)

func TestScoreTriplet(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(+1)

	cases := []struct {
		name  string
		opts  *Options
		xy    []float64 // three samples
		prior [2]float64
		want  [2]float64
	}{
		{
			name: "right angle",
			xy:   []float64{-1, 1, 0, 0, 1, 1},
			want: [2]float64{2, 2},
		},
		{
			name:  "right angle keeps larger badness",
			xy:    []float64{-1, 1, 0, 0, 1, 1},
			prior: [2]float64{7, 1},
			want:  [2]float64{7, 2},
		},
		{
			name:  "straight line keeps badness",
			xy:    []float64{0, 0, 1, 2, 2, 4},
			prior: [2]float64{3, 0},
			want:  [2]float64{3, 0},
		},
		{
			name:  "both gaps below minDX",
			opts:  &Options{MinDX: 1},
			xy:    []float64{0, 0, 0.5, 10, 0.9, 0},
			prior: [2]float64{3, 4},
			want:  [2]float64{0, 0},
		},
		{
			name:  "one gap below minDX",
			opts:  &Options{MinDX: 1},
			xy:    []float64{0, 0, 0.5, 10, 2, 0},
			prior: [2]float64{0, 0},
			want:  [2]float64{0, 20},
		},
		{
			name:  "undefined centre",
			xy:    []float64{0, 0, 1, nan, 2, 0},
			prior: [2]float64{3, 4},
			want:  [2]float64{0, 0},
		},
		{
			name:  "undefined left",
			xy:    []float64{0, nan, 1, 5, 2, 0},
			prior: [2]float64{3, 4},
			want:  [2]float64{0, 4},
		},
		{
			name:  "undefined right",
			xy:    []float64{0, 0, 1, 5, 2, nan},
			prior: [2]float64{3, 4},
			want:  [2]float64{3, 0},
		},
		{
			name:  "undefined beats infinite",
			xy:    []float64{0, inf, 1, 5, 2, nan},
			prior: [2]float64{0, 4},
			want:  [2]float64{0, 0},
		},
		{
			name: "pole in the centre",
			xy:   []float64{-1, -1, 0, inf, 1, 1},
			want: [2]float64{asymptoteBadness, asymptoteBadness},
		},
		{
			name: "pole on the left",
			xy:   []float64{0, -inf, 1, 1, 2, 0.5},
			want: [2]float64{asymptoteBadness, 0},
		},
		{
			name: "pole on the right",
			xy:   []float64{0, 1, 1, 2, 2, inf},
			want: [2]float64{0, asymptoteBadness},
		},
		{
			name: "pole interval above minDX",
			opts: &Options{MinDX: 1},
			xy:   []float64{0, 1, 1, 2, 2.5, inf},
			want: [2]float64{0, asymptoteBadness},
		},
		{
			name: "pole gap not above minDX",
			opts: &Options{MinDX: 1},
			xy:   []float64{0, 1, 2, 2, 3, inf},
			want: [2]float64{0, 0},
		},
		{
			name:  "all infinite",
			xy:    []float64{0, inf, 1, -inf, 2, inf},
			prior: [2]float64{1, 0},
			want:  [2]float64{1, 0},
		},
		{
			name:  "flat by absolute threshold",
			opts:  &Options{MinDYAbs: 0.5},
			xy:    []float64{-1, 0.1, 0, 0, 1, 0.1},
			prior: [2]float64{3, 4},
			want:  [2]float64{0, 0},
		},
		{
			name:  "constant",
			xy:    []float64{-1, 5, 0, 5, 1, 5},
			prior: [2]float64{3, 4},
			want:  [2]float64{0, 0},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSampler(c.opts, c.xy...)
			s.store.setBadness(0, c.prior[0])
			s.store.setBadness(1, c.prior[1])

			s.scoreTriplet(1)

			for i := range 2 {
				if got := s.store.samples[i].badness; got != c.want[i] {
					t.Errorf("interval %d: badness %g, want %g", i, got, c.want[i])
				}
			}
			if got := countBad(s.store); got != s.store.numBad {
				t.Errorf("numBad = %d, but %d intervals are bad", s.store.numBad, got)
			}
		})
	}
}

// TestScoreTripletRelative checks that small changes relative to the
// overall range of the function are ignored.
func TestScoreTripletRelative(t *testing.T) {
	s := newTestSampler(nil, -1, 0.01, 0, 0, 1, 0.01)

	s.scoreTriplet(1)
	if s.store.numBad != 2 {
		t.Fatalf("numBad = %d, want 2", s.store.numBad)
	}

	// a large function value elsewhere makes the bend invisible
	s.eval.yMax = 1000
	s.scoreTriplet(1)
	if s.store.numBad != 0 {
		t.Errorf("numBad = %d, want 0", s.store.numBad)
	}
}

func TestScoreTripletOutOfRange(t *testing.T) {
	s := newTestSampler(nil, -1, 1, 0, 0, 1, 1)
	s.scoreTriplet(0)
	s.scoreTriplet(2)
	s.scoreTriplet(-1)
	s.scoreTriplet(3)
	if s.store.numBad != 0 {
		t.Errorf("numBad = %d, want 0", s.store.numBad)
	}
}

func TestScoreTripletMaxCurvature(t *testing.T) {
	// The normalized chords (1/2, 2/3) and (1/2, 1/3) enclose an angle with
	// sine 6/(5·sqrt(13)) ≈ 0.333.
	xy := []float64{0, 0, 1, 2, 2, 3}
	for _, c := range []struct {
		maxCurvature float64
		bad          bool
	}{
		{0.3, true},
		{0.35, false},
	} {
		s := newTestSampler(&Options{MaxCurvature: c.maxCurvature}, xy...)
		s.scoreTriplet(1)
		if got := s.store.numBad > 0; got != c.bad {
			t.Errorf("maxCurvature %g: bad=%t, want %t", c.maxCurvature, got, c.bad)
		}
	}
}

func countBad(st *store) int {
	n := 0
	for _, smp := range st.samples {
		if smp.badness > 0 {
			n++
		}
	}
	return n
}
