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

// Package edits contains the edit script representation that's shared by the diff and patch
// engines and exported by the dmp package, together with the functions that derive information
// from an edit script.
package edits

import (
	"strings"
	"unicode/utf8"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // Text that's present in both inputs
	Delete           // Text that's only present in the source
	Insert           // Text that's only present in the destination
)

// Edit describes a single edit of an edit script.
type Edit struct {
	Op   Op
	Text string
}

// Source returns the source text of an edit script, i.e., the text of all edits except for the
// insertions.
func Source(edits []Edit) string {
	return join(edits, Insert)
}

// Dest returns the destination text of an edit script, i.e., the text of all edits except for the
// deletions.
func Dest(edits []Edit) string {
	return join(edits, Delete)
}

func join(edits []Edit, skip Op) string {
	n := 0
	for _, e := range edits {
		if e.Op != skip {
			n += len(e.Text)
		}
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, e := range edits {
		if e.Op != skip {
			sb.WriteString(e.Text)
		}
	}
	return sb.String()
}

// Levenshtein computes the Levenshtein distance of an edit script, that is the number of
// inserted, deleted, or substituted characters. A deletion directly next to an insertion counts as
// a substitution of the longer of both.
func Levenshtein(edits []Edit) int {
	dist := 0
	ins, del := 0, 0
	for _, e := range edits {
		switch e.Op {
		case Insert:
			ins += utf8.RuneCountInString(e.Text)
		case Delete:
			del += utf8.RuneCountInString(e.Text)
		case Equal:
			dist += max(ins, del)
			ins, del = 0, 0
		}
	}
	return dist + max(ins, del)
}

// XIndex translates the rune offset loc in the source text of an edit script to the
// corresponding offset in the destination text. Offsets inside a deletion are mapped to the
// destination offset where the deletion starts.
func XIndex(edits []Edit, loc int) int {
	pos1, pos2 := 0, 0   // positions in source and destination
	last1, last2 := 0, 0 // positions at the start of the current edit
	var last *Edit       // edit containing loc, if any
	for i := range edits {
		e := &edits[i]
		n := utf8.RuneCountInString(e.Text)
		if e.Op != Insert {
			pos1 += n
		}
		if e.Op != Delete {
			pos2 += n
		}
		if pos1 > loc {
			// Overshot the location.
			last = e
			break
		}
		last1, last2 = pos1, pos2
	}
	if last != nil && last.Op == Delete {
		// The location was deleted.
		return last2
	}
	return last2 + (loc - last1)
}
