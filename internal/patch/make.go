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
	"znkr.io/dmp/internal/match"
	"znkr.io/dmp/internal/search"
)

// Make computes a list of patches that turn source into the destination text of es. The source
// text of es must be source.
func Make(source string, es []edits.Edit, cfg config.Config) []Patch {
	if len(es) == 0 {
		return nil
	}
	margin := cfg.PatchMargin

	var patches []Patch
	var p Patch
	n1, n2 := 0, 0 // number of runes into the source and destination text

	// Recreate the patched text while walking the edits to determine the context of each patch.
	// Context is taken from the text as it looks with all previous patches applied.
	pre := []rune(source)
	post := pre
	for i, e := range es {
		n := utf8.RuneCountInString(e.Text)
		if len(p.Edits) == 0 && e.Op != edits.Equal {
			// A new patch starts here.
			p.Start1, p.Start2 = n1, n2
		}

		switch e.Op {
		case edits.Insert:
			p.Edits = append(p.Edits, e)
			p.Length2 += n
			post = slices.Concat(sub(post, 0, n2), []rune(e.Text), sub(post, n2, len(post)))
		case edits.Delete:
			p.Edits = append(p.Edits, e)
			p.Length1 += n
			post = slices.Concat(sub(post, 0, n2), sub(post, n2+n, len(post)))
		case edits.Equal:
			switch {
			case n <= 2*margin && len(p.Edits) > 0 && i != len(es)-1:
				// Small equality inside a patch.
				p.Edits = append(p.Edits, e)
				p.Length1 += n
				p.Length2 += n
			case n >= 2*margin && len(p.Edits) > 0:
				// Time for a new patch.
				addContext(&p, pre, cfg)
				patches = append(patches, p)
				p = Patch{}
				pre = post
				n1 = n2
			}
		}

		if e.Op != edits.Insert {
			n1 += n
		}
		if e.Op != edits.Delete {
			n2 += n
		}
	}

	// Pick up the leftover patch if not empty.
	if len(p.Edits) > 0 {
		addContext(&p, pre, cfg)
		patches = append(patches, p)
	}
	return patches
}

// addContext grows the context around a patch until it's unique in text, but doesn't let the
// pattern expand beyond the maximum pattern length of the match engine.
func addContext(p *Patch, text []rune, cfg config.Config) {
	if len(text) == 0 {
		return
	}
	margin := cfg.PatchMargin
	maxLen := match.MaxLen(cfg)

	// Look for the first and last matches of pattern in text. If two different matches are found,
	// increase the pattern length.
	pattern := sub(text, p.Start2, p.Start2+p.Length1)
	padding := 0
	for margin > 0 && len(pattern) < maxLen-2*margin &&
		search.Index(text, pattern, 0) != search.LastIndex(text, pattern, len(text)) {
		padding += margin
		pattern = sub(text, p.Start2-padding, p.Start2+p.Length1+padding)
	}
	// Add one chunk for good luck.
	padding += margin

	prefix := sub(text, p.Start2-padding, p.Start2)
	if len(prefix) > 0 {
		p.Edits = slices.Insert(p.Edits, 0, edits.Edit{Op: edits.Equal, Text: string(prefix)})
	}
	suffix := sub(text, p.Start2+p.Length1, p.Start2+p.Length1+padding)
	if len(suffix) > 0 {
		p.Edits = append(p.Edits, edits.Edit{Op: edits.Equal, Text: string(suffix)})
	}

	// Roll back the start points and extend the lengths.
	p.Start1 -= len(prefix)
	p.Start2 -= len(prefix)
	p.Length1 += len(prefix) + len(suffix)
	p.Length2 += len(prefix) + len(suffix)
}

// sub returns text[i:j] with i and j clamped to the bounds of text.
func sub(text []rune, i, j int) []rune {
	i = max(0, min(i, len(text)))
	j = max(i, min(j, len(text)))
	return text[i:j]
}
