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
	"golang.org/x/sync/errgroup"
)

// Subproblems smaller than this are always diffed sequentially.
const parallelMinLen = 4096

// both diffs (x0, y0) and (x1, y1). The two diffs are independent and are run concurrently if
// parallel diffing is enabled and the problem is large enough.
func (d *differ[T]) both(x0, y0, x1, y1 []T, checkLines bool) (a, b []Chunk[T]) {
	if !d.cfg.Parallel || len(x0)+len(y0)+len(x1)+len(y1) < parallelMinLen {
		return d.main(x0, y0, checkLines), d.main(x1, y1, checkLines)
	}
	var g errgroup.Group
	g.Go(func() error {
		a = d.main(x0, y0, checkLines)
		return nil
	})
	b = d.main(x1, y1, checkLines)
	_ = g.Wait() // the diff never fails
	return a, b
}
