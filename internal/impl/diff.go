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

// Package impl contains the diff engine and the cleanup passes.
//
// The engine is generic over the element type. It is used on runes for character diffs and on
// integer token IDs for line and word diffs.
package impl

import (
	"slices"

	"znkr.io/dmp/internal/config"
	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/search"
)

// Diff compares x and y and returns the chunks necessary to convert from one to the other. If
// checkLines is set, large inputs are first diffed line by line as a speedup.
func Diff(x, y []rune, cfg config.Config, checkLines bool) []Chunk[rune] {
	d := &differ[rune]{cfg: cfg, lineMode: lineMode}
	return d.main(x, y, checkLines)
}

// DiffTokens compares two sequences of token IDs.
func DiffTokens(x, y []int, cfg config.Config) []Chunk[int] {
	d := &differ[int]{cfg: cfg}
	return d.main(x, y, false)
}

type differ[T comparable] struct {
	cfg config.Config

	// lineMode, if set, implements the line mode speedup. It's only available for runes.
	lineMode func(d *differ[T], x, y []T) []Chunk[T]
}

// main diffs x and y. The result is merged.
func (d *differ[T]) main(x, y []T, checkLines bool) []Chunk[T] {
	if slices.Equal(x, y) {
		if len(x) == 0 {
			return nil
		}
		return []Chunk[T]{{edits.Equal, x}}
	}

	// Strip common prefix and suffix.
	n := search.CommonPrefix(x, y)
	prefix := x[:n]
	x, y = x[n:], y[n:]
	n = search.CommonSuffix(x, y)
	suffix := x[len(x)-n:]
	x, y = x[:len(x)-n], y[:len(y)-n]

	chunks := d.compute(x, y, checkLines)

	if len(prefix) > 0 {
		chunks = slices.Insert(chunks, 0, Chunk[T]{edits.Equal, prefix})
	}
	if len(suffix) > 0 {
		chunks = append(chunks, Chunk[T]{edits.Equal, suffix})
	}
	return Merge(chunks)
}

// compute diffs x and y under the assumption that they have no common prefix or suffix.
func (d *differ[T]) compute(x, y []T, checkLines bool) []Chunk[T] {
	if len(x) == 0 {
		return []Chunk[T]{{edits.Insert, y}}
	}
	if len(y) == 0 {
		return []Chunk[T]{{edits.Delete, x}}
	}

	long, short := y, x
	if len(x) > len(y) {
		long, short = x, y
	}
	if i := search.Index(long, short, 0); i != -1 {
		// The shorter input is inside the longer one.
		op := edits.Insert
		if len(x) > len(y) {
			op = edits.Delete
		}
		return []Chunk[T]{
			{op, long[:i]},
			{edits.Equal, short},
			{op, long[i+len(short):]},
		}
	}
	if len(short) == 1 {
		// A single element that's not contained in the other input can't be an equality.
		return []Chunk[T]{{edits.Delete, x}, {edits.Insert, y}}
	}

	if hm := d.halfMatch(x, y); hm != nil {
		a, b := d.both(hm.x0, hm.y0, hm.x1, hm.y1, checkLines)
		out := make([]Chunk[T], 0, len(a)+len(b)+1)
		out = append(out, a...)
		out = append(out, Chunk[T]{edits.Equal, hm.common})
		return append(out, b...)
	}

	if checkLines && d.lineMode != nil && len(x) > lineModeMinLen && len(y) > lineModeMinLen {
		return d.lineMode(d, x, y)
	}

	return d.bisect(x, y)
}

// Inputs need to be longer than this for line mode to kick in.
const lineModeMinLen = 100

// halfMatchResult splits x and y at a common substring into x0 + common + x1 and y0 + common +
// y1.
type halfMatchResult[T comparable] struct {
	x0, x1 []T
	y0, y1 []T
	common []T
}

// halfMatch checks if x and y share a substring that's at least half the length of the longer
// input. This speedup can produce non-minimal diffs and is therefore disabled in minimal mode.
func (d *differ[T]) halfMatch(x, y []T) *halfMatchResult[T] {
	if d.cfg.Minimal {
		return nil
	}
	long, short := y, x
	if len(x) > len(y) {
		long, short = x, y
	}
	if len(long) < 4 || 2*len(short) < len(long) {
		return nil
	}

	// Check if the second quarter is the seed for a half-match, then check the third quarter.
	hm1 := halfMatchAt(long, short, (len(long)+3)/4)
	hm2 := halfMatchAt(long, short, (len(long)+1)/2)
	var hm *halfMatchResult[T]
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	case len(hm1.common) > len(hm2.common):
		hm = hm1
	default:
		hm = hm2
	}

	// halfMatchAt returns long in x and short in y.
	if len(x) > len(y) {
		return hm
	}
	return &halfMatchResult[T]{
		x0:     hm.y0,
		x1:     hm.y1,
		y0:     hm.x0,
		y1:     hm.x1,
		common: hm.common,
	}
}

// halfMatchAt checks if a substring of short exists within long such that the substring is at
// least half the length of long and is seeded by the quarter of long starting at i.
func halfMatchAt[T comparable](long, short []T, i int) *halfMatchResult[T] {
	seed := long[i : i+len(long)/4]
	var best halfMatchResult[T]
	for j := search.Index(short, seed, 0); j != -1; j = search.Index(short, seed, j+1) {
		prefix := search.CommonPrefix(long[i:], short[j:])
		suffix := search.CommonSuffix(long[:i], short[:j])
		if len(best.common) < suffix+prefix {
			best = halfMatchResult[T]{
				x0:     long[:i-suffix],
				x1:     long[i+prefix:],
				y0:     short[:j-suffix],
				y1:     short[j+prefix:],
				common: short[j-suffix : j+prefix],
			}
		}
	}
	if 2*len(best.common) < len(long) {
		return nil
	}
	return &best
}
