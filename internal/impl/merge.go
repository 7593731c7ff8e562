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
	"slices"

	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/search"
)

// Merge reorders and merges like edit sections and merges equalities. Any edit section can move as
// long as it doesn't cross an equality. Chunks with empty text are dropped.
//
// The input is not modified.
func Merge[T comparable](chunks []Chunk[T]) []Chunk[T] {
	c := make([]Chunk[T], 0, len(chunks)+1)
	for _, ch := range chunks {
		if len(ch.Text) > 0 {
			c = append(c, ch)
		}
	}
	if len(c) == 0 {
		return nil
	}
	c = append(c, Chunk[T]{Op: edits.Equal}) // sentinel

	var del, ins []T
	ndel, nins := 0, 0
	for i := 0; i < len(c); {
		switch c[i].Op {
		case edits.Delete:
			ndel++
			del = append(del, c[i].Text...)
			i++
		case edits.Insert:
			nins++
			ins = append(ins, c[i].Text...)
			i++
		case edits.Equal:
			// Upon reaching an equality, check for prior redundancies.
			switch {
			case ndel+nins > 1:
				if ndel != 0 && nins != 0 {
					// Factor out any common prefix.
					if n := search.CommonPrefix(ins, del); n != 0 {
						if j := i - ndel - nins - 1; j >= 0 && c[j].Op == edits.Equal {
							c[j].Text = slices.Concat(c[j].Text, ins[:n])
						} else {
							c = slices.Insert(c, 0, Chunk[T]{edits.Equal, slices.Clone(ins[:n])})
							i++
						}
						ins, del = ins[n:], del[n:]
					}
					// Factor out any common suffix.
					if n := search.CommonSuffix(ins, del); n != 0 {
						c[i].Text = slices.Concat(ins[len(ins)-n:], c[i].Text)
						ins, del = ins[:len(ins)-n], del[:len(del)-n]
					}
				}
				// Replace the run with the merged chunks.
				i -= ndel + nins
				c = slices.Delete(c, i, i+ndel+nins)
				if len(del) > 0 {
					c = slices.Insert(c, i, Chunk[T]{edits.Delete, del})
					i++
				}
				if len(ins) > 0 {
					c = slices.Insert(c, i, Chunk[T]{edits.Insert, ins})
					i++
				}
				i++
			case i != 0 && c[i-1].Op == edits.Equal:
				// Merge this equality with the previous one.
				c[i-1].Text = slices.Concat(c[i-1].Text, c[i].Text)
				c = slices.Delete(c, i, i+1)
			default:
				i++
			}
			ndel, nins = 0, 0
			del, ins = nil, nil
		}
	}
	if len(c[len(c)-1].Text) == 0 {
		c = c[:len(c)-1] // remove the sentinel
	}

	// Second pass: look for single edits surrounded on both sides by equalities which can be
	// shifted sideways to eliminate an equality. E.g: A<ins>BA</ins>C -> <ins>AB</ins>AC
	changes := false
	for i := 1; i < len(c)-1; i++ {
		prev, cur, next := c[i-1], c[i], c[i+1]
		if prev.Op != edits.Equal || next.Op != edits.Equal {
			continue
		}
		switch {
		case hasSuffix(cur.Text, prev.Text):
			// Shift the edit over the previous equality.
			c[i].Text = slices.Concat(prev.Text, cur.Text[:len(cur.Text)-len(prev.Text)])
			c[i+1].Text = slices.Concat(prev.Text, next.Text)
			c = slices.Delete(c, i-1, i)
			changes = true
		case hasPrefix(cur.Text, next.Text):
			// Shift the edit over the next equality.
			c[i-1].Text = slices.Concat(prev.Text, next.Text)
			c[i].Text = slices.Concat(cur.Text[len(next.Text):], next.Text)
			c = slices.Delete(c, i+1, i+2)
			changes = true
		}
	}
	// If shifts were made, the chunks need reordering and another shift sweep.
	if changes {
		return Merge(c)
	}
	if len(c) == 0 {
		return nil
	}
	return c
}

func hasPrefix[T comparable](s, prefix []T) bool {
	return len(s) >= len(prefix) && slices.Equal(s[:len(prefix)], prefix)
}

func hasSuffix[T comparable](s, suffix []T) bool {
	return len(s) >= len(suffix) && slices.Equal(s[len(s)-len(suffix):], suffix)
}

// Efficiency reduces the number of edits by eliminating operationally trivial equalities, that is,
// equalities shorter than editCost that are surrounded by edits on enough sides.
//
// The input is not modified.
func Efficiency[T comparable](chunks []Chunk[T], editCost int) []Chunk[T] {
	if len(chunks) == 0 {
		return nil
	}
	c := slices.Clone(chunks)
	changes := false
	var equalities []int // stack of indices where candidate equalities are found
	var last []T         // always equal to c[equalities[len(equalities)-1]].Text
	// Is there an insertion or deletion before (pre) or after (post) the last equality.
	preIns, preDel := false, false
	postIns, postDel := false, false
	for i := 0; i < len(c); i++ {
		if c[i].Op == edits.Equal {
			if len(c[i].Text) < editCost && (postIns || postDel) {
				// Candidate found.
				equalities = append(equalities, i)
				preIns, preDel = postIns, postDel
				last = c[i].Text
			} else {
				// Not a candidate, and can never become one.
				equalities = equalities[:0]
				last = nil
			}
			postIns, postDel = false, false
			continue
		}

		if c[i].Op == edits.Delete {
			postDel = true
		} else {
			postIns = true
		}

		// Five types to be split:
		//
		//	<ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
		//	<ins>A</ins>X<ins>C</ins><del>D</del>
		//	<ins>A</ins><del>B</del>X<ins>C</ins>
		//	<ins>A</del>X<ins>C</ins><del>D</del>
		//	<ins>A</ins><del>B</del>X<del>C</del>
		if len(last) == 0 {
			continue
		}
		all := preIns && preDel && postIns && postDel
		three := float64(len(last)) < float64(editCost)/2 && count(preIns, preDel, postIns, postDel) == 3
		if !all && !three {
			continue
		}

		// Replace the equality with a deletion followed by an insertion.
		j := equalities[len(equalities)-1]
		c = slices.Insert(c, j, Chunk[T]{edits.Delete, last})
		c[j+1].Op = edits.Insert
		equalities = equalities[:len(equalities)-1]
		last = nil
		if preIns && preDel {
			// No changes made which could affect previous entry, keep going.
			postIns, postDel = true, true
			equalities = equalities[:0]
		} else {
			// Throw away the previous equality, it needs to be reevaluated.
			if len(equalities) > 0 {
				equalities = equalities[:len(equalities)-1]
			}
			if len(equalities) > 0 {
				i = equalities[len(equalities)-1]
			} else {
				i = -1
			}
			postIns, postDel = false, false
		}
		changes = true
	}
	if changes {
		return Merge(c)
	}
	return c
}

func count(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
