// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package impl

import (
	"znkr.io/dmp/internal/edits"
)

// bisect finds the middle snake of an optimal path from (0, 0) to (N, M) and splits the problem
// in two at the snake.
//
// See E. Myers (1986) "An O(ND) Difference Algorithm and Its Variations".
//
// Important: x and y must not be empty.
func (d *differ[T]) bisect(x, y []T) []Chunk[T] {
	N, M := len(x), len(y)

	// We know from Lemma 3 that there's a d-path with d = ⌈(N + M)/2⌉.
	dmax := (N + M + 1) / 2

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k]. The endpoints only store the
	// s-coordinate since t = s - k. The backwards search runs over the reversed inputs, that is,
	// vb[v0+k] = s means that x[N-s:] and y[M-t:] are covered.
	//
	// An endpoint of -1 means that the diagonal hasn't been reached yet.
	v0 := dmax
	vlen := 2 * dmax
	buf := make([]int, 2*(vlen+2)) // +2 so that the initial d=0 entry fits for tiny inputs
	vf, vb := buf[:vlen+2], buf[vlen+2:]
	for i := range buf {
		buf[i] = -1
	}
	vf[v0+1] = 0
	vb[v0+1] = 0

	// If the difference in length is odd, the front path collides with the reverse path first.
	delta := N - M
	odd := delta%2 != 0

	// Offsets for the start and end of the k loops. These prevent mapping of space beyond the
	// edit grid.
	kfmin, kfmax := 0, 0
	kbmin, kbmax := 0, 0

	for D := range dmax {
		if d.cfg.CostLimit > 0 && D > d.cfg.CostLimit {
			break
		}

		// Forward iteration.
		for k := -D + kfmin; k <= D-kfmax; k += 2 {
			k0 := v0 + k
			var s int
			if k == -D || (k != D && vf[k0-1] < vf[k0+1]) {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k
			for s < N && t < M && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s
			switch {
			case s > N:
				// Ran off the right of the graph.
				kfmax += 2
			case t > M:
				// Ran off the bottom of the graph.
				kfmin += 2
			case odd:
				kb0 := v0 + delta - k
				if kb0 >= 0 && kb0 < vlen && vb[kb0] != -1 {
					// Mirror the backwards endpoint onto the forward coordinates.
					if s >= N-vb[kb0] {
						return d.bisectSplit(x, y, s, t)
					}
				}
			}
		}

		// Backwards iteration.
		for k := -D + kbmin; k <= D-kbmax; k += 2 {
			k0 := v0 + k
			var s int
			if k == -D || (k != D && vb[k0-1] < vb[k0+1]) {
				s = vb[k0+1]
			} else {
				s = vb[k0-1] + 1
			}
			t := s - k
			for s < N && t < M && x[N-s-1] == y[M-t-1] {
				s++
				t++
			}
			vb[k0] = s
			switch {
			case s > N:
				kbmax += 2
			case t > M:
				kbmin += 2
			case !odd:
				kf0 := v0 + delta - k
				if kf0 >= 0 && kf0 < vlen && vf[kf0] != -1 {
					sf := vf[kf0]
					tf := sf - (kf0 - v0)
					if sf >= N-s {
						return d.bisectSplit(x, y, sf, tf)
					}
				}
			}
		}
	}

	// Either the cost limit was hit or the number of edits equals the number of elements, there's
	// no commonality at all.
	return []Chunk[T]{{edits.Delete, x}, {edits.Insert, y}}
}

// bisectSplit diffs x[:s], y[:t] and x[s:], y[t:] separately and combines the results.
func (d *differ[T]) bisectSplit(x, y []T, s, t int) []Chunk[T] {
	a, b := d.both(x[:s], y[:t], x[s:], y[t:], false)
	return append(a, b...)
}
