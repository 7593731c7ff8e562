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

package patch

import (
	"slices"
	"unicode/utf8"

	"znkr.io/dmp/internal/config"
	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/impl"
	"znkr.io/dmp/internal/match"
)

// Apply applies patches to text. The patches don't need to be made for text exactly, each patch
// is located with the match engine near its expected position.
//
// Apply returns the patched text and for each patch whether it was applied. The input patches
// are not modified.
func Apply(patches []Patch, text string, cfg config.Config) (string, []bool) {
	if len(patches) == 0 {
		return text, nil
	}

	patches = clone(patches)
	pad := addPadding(patches, cfg.PatchMargin)
	buf := slices.Concat(pad, []rune(text), pad)
	patches = splitMax(patches, cfg)

	maxLen := match.MaxLen(cfg)
	applied := make([]bool, len(patches))

	// delta keeps track of the offset between the expected and actual location of the previous
	// patch. If there are patches expected at positions 10 and 20, but the first patch was found
	// at 12, delta is 2 and the second patch has an effective expected position of 22.
	delta := 0
	for i := range patches {
		p := &patches[i]
		want := p.Start2 + delta
		text1 := []rune(edits.Source(p.Edits))

		start, end := -1, -1
		if len(text1) > maxLen {
			// The body is too long to be located in one go. Locate its start and end instead.
			start = locate(buf, text1[:maxLen], want, cfg)
			if start != -1 {
				end = locate(buf, text1[len(text1)-maxLen:], want+len(text1)-maxLen, cfg)
				if end == -1 || start >= end {
					// Can't find a valid trailing context, drop this patch.
					start = -1
				}
			}
		} else {
			start = locate(buf, text1, want, cfg)
		}

		if start == -1 {
			// No match found.
			delta -= p.Length2 - p.Length1
			continue
		}

		// Found a match.
		applied[i] = true
		delta = start - want
		var text2 []rune
		if end == -1 {
			text2 = sub(buf, start, start+len(text1))
		} else {
			text2 = sub(buf, start, end+maxLen)
		}

		if slices.Equal(text1, text2) {
			// Perfect match, just shove the replacement text in.
			buf = slices.Concat(sub(buf, 0, start), []rune(edits.Dest(p.Edits)), sub(buf, start+len(text1), len(buf)))
			continue
		}

		// Imperfect match. Run a diff to get a framework of equivalent indices.
		chunks := impl.Diff(text1, text2, cfg, false)
		if len(text1) > maxLen {
			es := impl.ToEdits(chunks)
			if float64(edits.Levenshtein(es))/float64(len(text1)) > cfg.PatchDeleteThreshold {
				// The end points match, but the content is unacceptably bad.
				applied[i] = false
				continue
			}
		}
		es := impl.ToEdits(impl.SemanticLossless(chunks))
		loc1 := 0
		for _, e := range p.Edits {
			n := utf8.RuneCountInString(e.Text)
			var loc2 int
			if e.Op != edits.Equal {
				loc2 = start + edits.XIndex(es, loc1)
			}
			switch e.Op {
			case edits.Insert:
				buf = slices.Concat(sub(buf, 0, loc2), []rune(e.Text), sub(buf, loc2, len(buf)))
			case edits.Delete:
				buf = slices.Concat(sub(buf, 0, loc2), sub(buf, start+edits.XIndex(es, loc1+n), len(buf)))
			}
			if e.Op != edits.Delete {
				loc1 += n
			}
		}
	}

	// Strip the padding off.
	return string(sub(buf, len(pad), len(buf)-len(pad))), applied
}

// locate finds pattern in text near loc. A failure is treated like a missing match.
func locate(text, pattern []rune, loc int, cfg config.Config) int {
	x, err := match.Match(text, pattern, loc, cfg)
	if err != nil {
		return -1
	}
	return x
}
