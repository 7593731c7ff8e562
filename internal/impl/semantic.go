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
	"unicode"

	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/search"
)

// Semantic reduces the number of edits by eliminating semantically trivial equalities.
//
// The input is not modified.
func Semantic(chunks []Chunk[rune]) []Chunk[rune] {
	c := slices.Clone(chunks)
	changes := false
	var equalities []int // stack of indices where equalities are found
	var last []rune      // always equal to c[equalities[len(equalities)-1]].Text
	// Number of runes that changed prior to (1) and after (2) the equality.
	ins1, del1 := 0, 0
	ins2, del2 := 0, 0
	for i := 0; i < len(c); i++ {
		if c[i].Op == edits.Equal {
			equalities = append(equalities, i)
			ins1, del1 = ins2, del2
			ins2, del2 = 0, 0
			last = c[i].Text
			continue
		}

		if c[i].Op == edits.Insert {
			ins2 += len(c[i].Text)
		} else {
			del2 += len(c[i].Text)
		}
		// Eliminate an equality that is smaller or equal to the edits on both sides of it.
		if n := len(last); n == 0 || n > max(ins1, del1) || n > max(ins2, del2) {
			continue
		}
		j := equalities[len(equalities)-1]
		c = slices.Insert(c, j, Chunk[rune]{edits.Delete, last})
		c[j+1].Op = edits.Insert
		// Throw away the equality we just deleted and the previous one, it needs to be
		// reevaluated.
		equalities = equalities[:len(equalities)-1]
		if len(equalities) > 0 {
			equalities = equalities[:len(equalities)-1]
		}
		if len(equalities) > 0 {
			i = equalities[len(equalities)-1]
		} else {
			i = -1
		}
		ins1, del1, ins2, del2 = 0, 0, 0, 0
		last = nil
		changes = true
	}

	if changes {
		c = Merge(c)
	}
	c = SemanticLossless(c)

	// Find any overlaps between deletions and insertions.
	//
	//	e.g: <del>abcxxx</del><ins>xxxdef</ins> -> <del>abc</del>xxx<ins>def</ins>
	//	e.g: <del>xxxabc</del><ins>defxxx</ins> -> <ins>def</ins>xxx<del>abc</del>
	//
	// Only extract an overlap if it is as big as the edit ahead or behind it.
	trimmed := false
	for i := 1; i < len(c); i++ {
		if c[i-1].Op != edits.Delete || c[i].Op != edits.Insert {
			continue
		}
		del, ins := c[i-1].Text, c[i].Text
		o1 := search.CommonOverlap(del, ins)
		o2 := search.CommonOverlap(ins, del)
		switch {
		case o1 >= o2:
			if !halfOf(o1, del, ins) {
				continue
			}
			c = slices.Insert(c, i, Chunk[rune]{edits.Equal, ins[:o1]})
			c[i-1] = Chunk[rune]{edits.Delete, del[:len(del)-o1]}
			c[i+1] = Chunk[rune]{edits.Insert, ins[o1:]}
		default:
			if !halfOf(o2, del, ins) {
				continue
			}
			c = slices.Insert(c, i, Chunk[rune]{edits.Equal, del[:o2]})
			c[i-1] = Chunk[rune]{edits.Insert, ins[:len(ins)-o2]}
			c[i+1] = Chunk[rune]{edits.Delete, del[o2:]}
		}
		trimmed = trimmed || len(c[i-1].Text) == 0 || len(c[i+1].Text) == 0
		i++
	}
	if trimmed {
		// An overlap covered a whole edit, drop the empty chunks.
		c = Merge(c)
	}
	return c
}

// halfOf reports whether overlap is at least half the length of either a or b.
func halfOf(overlap int, a, b []rune) bool {
	return overlap > 0 && (float64(overlap) >= float64(len(a))/2 || float64(overlap) >= float64(len(b))/2)
}

// SemanticLossless looks for single edits surrounded on both sides by equalities which can be
// shifted sideways to align the edit to a word boundary.
//
//	e.g: The c<ins>at c</ins>ame. -> The <ins>cat </ins>came.
//
// The input is not modified.
func SemanticLossless(chunks []Chunk[rune]) []Chunk[rune] {
	c := slices.Clone(chunks)
	removed := false // an equality was shifted away, its neighbors need merging
	// Intentionally ignore the first and last element, they don't need checking.
	for i := 1; i < len(c)-1; i++ {
		if c[i-1].Op != edits.Equal || c[i+1].Op != edits.Equal {
			continue
		}

		// Shifting the edit keeps the concatenation of both equalities and the edit unchanged. We
		// therefore only need to track where the edit starts in that concatenation.
		eq1, edit := c[i-1].Text, c[i].Text
		buf := slices.Concat(eq1, edit, c[i+1].Text)
		n := len(edit)

		// First, shift the edit as far left as possible.
		pos := len(eq1) - search.CommonSuffix(eq1, edit)

		// Second, step character by character right, looking for the best fit.
		best := pos
		bestScore := score(buf[:pos], buf[pos:pos+n]) + score(buf[pos:pos+n], buf[pos+n:])
		for pos+n < len(buf) && buf[pos] == buf[pos+n] {
			pos++
			// The >= encourages trailing rather than leading whitespace on edits.
			if s := score(buf[:pos], buf[pos:pos+n]) + score(buf[pos:pos+n], buf[pos+n:]); s >= bestScore {
				best, bestScore = pos, s
			}
		}

		if best == len(eq1) {
			continue
		}
		// We have an improvement, save it back.
		if best > 0 {
			c[i-1].Text = buf[:best]
		} else {
			c = slices.Delete(c, i-1, i)
			i--
			removed = true
		}
		c[i].Text = buf[best : best+n]
		if best+n < len(buf) {
			c[i+1].Text = buf[best+n:]
		} else {
			c = slices.Delete(c, i+1, i+2)
			i--
			removed = true
		}
	}
	if removed {
		return Merge(c)
	}
	return c
}

// Boundary scores, higher is better.
const (
	scoreNone        = 0 // Between two alphanumeric characters
	scoreNonAlphaNum = 1 // Next to a non-alphanumeric character
	scoreWhitespace  = 2 // Next to whitespace
	scoreSentenceEnd = 3 // Punctuation followed by whitespace
	scoreLineBreak   = 4 // Next to a line break
	scoreBlankLine   = 5 // Next to a blank line
	scoreEdge        = 6 // At the start or end of the text
)

// score computes how well the boundary between one and two falls on a logical boundary.
func score(one, two []rune) int {
	if len(one) == 0 || len(two) == 0 {
		return scoreEdge
	}

	r1, r2 := one[len(one)-1], two[0]
	nonAlphaNum1 := !unicode.IsLetter(r1) && !unicode.IsNumber(r1)
	nonAlphaNum2 := !unicode.IsLetter(r2) && !unicode.IsNumber(r2)
	whitespace1 := nonAlphaNum1 && unicode.IsSpace(r1)
	whitespace2 := nonAlphaNum2 && unicode.IsSpace(r2)
	lineBreak1 := whitespace1 && (r1 == '\r' || r1 == '\n')
	lineBreak2 := whitespace2 && (r2 == '\r' || r2 == '\n')
	blankLine1 := lineBreak1 && endsWithBlankLine(one)
	blankLine2 := lineBreak2 && startsWithBlankLine(two)

	switch {
	case blankLine1 || blankLine2:
		return scoreBlankLine
	case lineBreak1 || lineBreak2:
		return scoreLineBreak
	case nonAlphaNum1 && !whitespace1 && whitespace2:
		return scoreSentenceEnd
	case whitespace1 || whitespace2:
		return scoreWhitespace
	case nonAlphaNum1 || nonAlphaNum2:
		return scoreNonAlphaNum
	default:
		return scoreNone
	}
}

// endsWithBlankLine reports whether s ends with \n\r?\n.
func endsWithBlankLine(s []rune) bool {
	return hasSuffix(s, []rune("\n\n")) || hasSuffix(s, []rune("\n\r\n"))
}

// startsWithBlankLine reports whether s starts with \r?\n\r?\n.
func startsWithBlankLine(s []rune) bool {
	if hasPrefix(s, []rune("\r")) {
		s = s[1:]
	}
	if !hasPrefix(s, []rune("\n")) {
		return false
	}
	s = s[1:]
	return hasPrefix(s, []rune("\n")) || hasPrefix(s, []rune("\r\n"))
}
