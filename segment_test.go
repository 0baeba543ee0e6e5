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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegment(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(+1)

	cases := []struct {
		name string
		y    []float64
		want []Run
		flat Run
	}{
		{
			name: "empty",
			want: nil,
			flat: Run{},
		},
		{
			name: "continuous",
			y:    []float64{1, 2, 3},
			want: []Run{{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 3}}},
			flat: Run{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 3}},
		},
		{
			name: "hole",
			y:    []float64{1, 2, nan, 4, 5},
			want: []Run{
				{{X: 0, Y: 1}, {X: 1, Y: 2}},
				{{X: 3, Y: 4}, {X: 4, Y: 5}},
			},
			flat: Run{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: nan}, {X: 3, Y: 4}, {X: 4, Y: 5}},
		},
		{
			name: "pole",
			y:    []float64{1, 2, inf, -inf, 5, 6},
			want: []Run{
				{{X: 0, Y: 1}, {X: 1, Y: 2}},
				{{X: 4, Y: 5}, {X: 5, Y: 6}},
			},
			flat: Run{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: nan}, {X: 4, Y: 5}, {X: 5, Y: 6}},
		},
		{
			name: "isolated point",
			y:    []float64{1, 2, nan, 3, nan, 4, 5},
			want: []Run{
				{{X: 0, Y: 1}, {X: 1, Y: 2}},
				{{X: 5, Y: 4}, {X: 6, Y: 5}},
			},
			flat: Run{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: nan}, {X: 5, Y: 4}, {X: 6, Y: 5}},
		},
		{
			name: "leading and trailing gaps",
			y:    []float64{nan, 1, 2, nan, nan},
			want: []Run{{{X: 1, Y: 1}, {X: 2, Y: 2}}},
			flat: Run{{X: 1, Y: 1}, {X: 2, Y: 2}},
		},
		{
			name: "nothing finite",
			y:    []float64{nan, inf, nan},
			want: nil,
			flat: Run{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			samples := make([]sample, len(c.y))
			for i, y := range c.y {
				samples[i] = sample{x: float64(i), y: y}
			}

			if diff := cmp.Diff(c.want, segment(samples)); diff != "" {
				t.Errorf("segment mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(c.flat, flatten(samples), cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
