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
	"cmp"
	"fmt"
	"slices"
)

// sample is a single function evaluation.
//
// The badness belongs to the interval which starts at this sample and ends
// at the next sample in the store.  The last sample of a store therefore
// always has badness 0.
type sample struct {
	x, y    float64
	badness float64
}

// store is an ordered set of samples.
//
// Samples are sorted by x, and no two samples are closer than minDX.
// numBad always equals the number of samples with positive badness; all
// modifications of the badness fields go through setBadness, raiseBadness
// and clearBadness to maintain this.
type store struct {
	samples []sample
	numBad  int
	minDX   float64
}

func newStore(minDX float64, capacity int) *store {
	return &store{
		samples: make([]sample, 0, capacity),
		minDX:   minDX,
	}
}

func (s *store) Len() int {
	return len(s.samples)
}

// gap returns the width of interval i, i.e. the distance between sample i
// and sample i+1.
func (s *store) gap(i int) float64 {
	return s.samples[i+1].x - s.samples[i].x
}

func (s *store) setBadness(i int, b float64) {
	old := s.samples[i].badness
	switch {
	case old > 0 && !(b > 0):
		s.numBad--
	case !(old > 0) && b > 0:
		s.numBad++
	}
	s.samples[i].badness = b
}

// raiseBadness increases the badness of interval i to at least b.
func (s *store) raiseBadness(i int, b float64) {
	if b > s.samples[i].badness {
		s.setBadness(i, b)
	}
}

func (s *store) clearBadness(i int) {
	s.setBadness(i, 0)
}

// appendSeed adds a sample to the right end of the store.  Seeds closer
// than minDX to the previous sample are dropped.  No badness is computed.
func (s *store) appendSeed(x, y float64) bool {
	if n := len(s.samples); n > 0 && x-s.samples[n-1].x < s.minDX {
		return false
	}
	s.samples = append(s.samples, sample{x: x, y: y})
	return true
}

// insert adds a new sample at the correct position.
//
// If the new sample coincides with an existing one, or would be closer
// than minDX to one of its neighbours, the store is left unchanged and
// insert returns false.  Otherwise the badness of the interval which is
// split by the new sample is cleared, and the index of the new sample is
// returned.  Rescoring of the affected triplets is left to the caller.
func (s *store) insert(x, y float64) (int, bool) {
	idx, found := slices.BinarySearchFunc(s.samples, x, func(a sample, x float64) int {
		return cmp.Compare(a.x, x)
	})
	if found {
		return 0, false
	}
	if idx > 0 && x-s.samples[idx-1].x < s.minDX {
		return 0, false
	}
	if idx < len(s.samples) && s.samples[idx].x-x < s.minDX {
		return 0, false
	}

	if idx > 0 {
		s.clearBadness(idx - 1)
	}
	s.samples = slices.Insert(s.samples, idx, sample{x: x, y: y})
	return idx, true
}

// check verifies the structural invariants of the store.
func (s *store) check() error {
	numBad := 0
	for i, smp := range s.samples {
		if smp.badness > 0 {
			numBad++
		}
		if i > 0 && !(smp.x-s.samples[i-1].x >= s.minDX) {
			return fmt.Errorf("samples %d and %d too close: %g, %g",
				i-1, i, s.samples[i-1].x, smp.x)
		}
	}
	if numBad != s.numBad {
		return fmt.Errorf("badness counter is %d, but %d samples have positive badness",
			s.numBad, numBad)
	}
	if n := len(s.samples); n > 0 && s.samples[n-1].badness != 0 {
		return fmt.Errorf("last sample has badness %g", s.samples[n-1].badness)
	}
	return nil
}
