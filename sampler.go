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
	"context"
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// stopReason records why the refinement loop ended.
type stopReason int

const (
	stopConverged stopReason = iota
	stopMaxPoints
	stopIterations
	stopUnsplittable
	stopStalled
	stopDegenerate
)

func (r stopReason) String() string {
	switch r {
	case stopConverged:
		return "converged"
	case stopMaxPoints:
		return "max points"
	case stopIterations:
		return "iteration limit"
	case stopUnsplittable:
		return "unsplittable"
	case stopStalled:
		return "stalled"
	case stopDegenerate:
		return "degenerate domain"
	default:
		return "unknown"
	}
}

// sampler holds the state of a single sampling call.
type sampler struct {
	opt   *settings
	eval  *evaluator
	store *store

	iterations int
	stop       stopReason

	// candidates is reused between refinement rounds
	candidates []float64
}

func newSampler(f func(float64) (float64, error), opt *settings) *sampler {
	return &sampler{
		opt:   opt,
		eval:  newEvaluator(f),
		store: newStore(opt.minDX, opt.maxPoints),
	}
}

// run seeds the store and refines it until one of the stopping criteria
// is met.  Errors from the user function and from ctx abort the run.
func (s *sampler) run(ctx context.Context) error {
	opt := s.opt

	if opt.xMin == opt.xMax {
		y, err := s.eval.eval(opt.xMin)
		if err != nil {
			return err
		}
		s.store.appendSeed(opt.xMin, y)
		s.stop = stopDegenerate
		return nil
	}

	if err := s.seed(); err != nil {
		return err
	}
	for i := 1; i < s.store.Len()-1; i++ {
		s.scoreTriplet(i)
	}

	limit := opt.iterationLimit()
	for {
		switch {
		case s.store.numBad == 0:
			s.stop = stopConverged
			return nil
		case s.store.Len() >= opt.maxPoints:
			s.stop = stopMaxPoints
			return nil
		case s.iterations >= limit:
			s.stop = stopIterations
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		xx := s.collectCandidates()
		if len(xx) == 0 {
			s.stop = stopUnsplittable
			return nil
		}

		added := 0
		for _, x := range xx {
			if s.store.Len() >= opt.maxPoints {
				break
			}
			y, err := s.eval.eval(x)
			if err != nil {
				return err
			}
			if s.insert(x, y) {
				added++
			}
		}
		if added == 0 && s.store.numBad > 0 {
			s.stop = stopStalled
			return nil
		}
		s.iterations++
	}
}

// seed evaluates the function at evenly spaced points covering the domain.
func (s *sampler) seed() error {
	xx := floats.Span(make([]float64, s.opt.initialPoints), s.opt.xMin, s.opt.xMax)
	for _, x := range xx {
		y, err := s.eval.eval(x)
		if err != nil {
			return err
		}
		s.store.appendSeed(x, y)
	}
	return nil
}

// collectCandidates returns the sorted, distinct midpoints of all
// intervals with positive badness.  Bad intervals which are too narrow to
// be split have their badness cleared instead.
func (s *sampler) collectCandidates() []float64 {
	st := s.store
	xx := s.candidates[:0]
	for i := 0; i < st.Len()-1; i++ {
		if !(st.samples[i].badness > 0) {
			continue
		}
		if st.gap(i) >= 2*s.opt.minDX {
			xx = append(xx, (st.samples[i].x+st.samples[i+1].x)/2)
		} else {
			st.clearBadness(i)
		}
	}
	s.candidates = xx

	// The midpoints are generated left to right and are already sorted.
	return slices.Compact(xx)
}

// insert adds a sample to the store and rescores all triplets which
// contain the new sample.
func (s *sampler) insert(x, y float64) bool {
	idx, ok := s.store.insert(x, y)
	if !ok {
		return false
	}
	s.scoreTriplet(idx - 1)
	s.scoreTriplet(idx)
	s.scoreTriplet(idx + 1)
	return true
}

func (s *sampler) logResult() {
	logger := Logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("fnplot: sampled function",
		slog.Int("samples", s.store.Len()),
		slog.Int("evaluations", s.eval.calls),
		slog.Int("iterations", s.iterations),
		slog.String("stop", s.stop.String()),
		slog.Int("bad", s.store.numBad),
	)
}
