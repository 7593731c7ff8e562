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
	"znkr.io/dmp/internal/tokens"
)

// lineMode does a quick line-level diff on both inputs, then rediffs the changed parts for
// greater accuracy. This speedup can produce non-minimal diffs.
func lineMode(d *differ[rune], x, y []rune) []Chunk[rune] {
	var in tokens.Interner
	xids := in.Intern(tokens.SplitLines(string(x)))
	yids := in.Intern(tokens.SplitLines(string(y)))

	ld := &differ[int]{cfg: d.cfg}
	lchunks := ld.main(xids, yids, false)

	chunks := make([]Chunk[rune], len(lchunks))
	for i, c := range lchunks {
		chunks[i] = Chunk[rune]{c.Op, []rune(in.Join(c.Text))}
	}

	// Eliminate freak matches (e.g. blank lines).
	chunks = Semantic(chunks)

	// Rediff any replacement blocks, this time character-by-character.
	var (
		out        []Chunk[rune]
		del, ins   []rune
		ndel, nins int
	)
	flush := func() {
		if ndel >= 1 && nins >= 1 {
			out = out[:len(out)-ndel-nins]
			out = append(out, d.main(del, ins, false)...)
		}
		ndel, nins = 0, 0
		del, ins = nil, nil
	}
	for _, c := range chunks {
		switch c.Op {
		case edits.Insert:
			nins++
			ins = append(ins, c.Text...)
		case edits.Delete:
			ndel++
			del = append(del, c.Text...)
		case edits.Equal:
			flush()
		}
		out = append(out, c)
	}
	flush()
	return out
}
