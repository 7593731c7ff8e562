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

// Chunk is an edit over a sequence of T. The diff engine and the cleanup passes work on chunks
// so that the same code can be used for runes and for line or word IDs.
//
// The Text of a chunk may share its backing array with other chunks or with the input of a diff.
// It must never be modified in place.
type Chunk[T comparable] struct {
	Op   edits.Op
	Text []T
}

// FromEdits converts an edit script into rune chunks.
func FromEdits(in []edits.Edit) []Chunk[rune] {
	if len(in) == 0 {
		return nil
	}
	out := make([]Chunk[rune], len(in))
	for i, e := range in {
		out[i] = Chunk[rune]{e.Op, []rune(e.Text)}
	}
	return out
}

// ToEdits converts rune chunks into an edit script.
func ToEdits(in []Chunk[rune]) []edits.Edit {
	if len(in) == 0 {
		return nil
	}
	out := make([]edits.Edit, len(in))
	for i, c := range in {
		out[i] = edits.Edit{Op: c.Op, Text: string(c.Text)}
	}
	return out
}

// TokensToEdits converts chunks of token IDs into an edit script, using join to turn the IDs of
// a chunk back into text.
func TokensToEdits(in []Chunk[int], join func(ids []int) string) []edits.Edit {
	if len(in) == 0 {
		return nil
	}
	out := make([]edits.Edit, len(in))
	for i, c := range in {
		out[i] = edits.Edit{Op: c.Op, Text: join(c.Text)}
	}
	return out
}
