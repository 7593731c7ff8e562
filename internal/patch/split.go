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
)

// SplitMax breaks up patches that are longer than the maximum pattern length of the match
// engine into smaller patches. The input is not modified.
func SplitMax(patches []Patch, cfg config.Config) []Patch {
	return splitMax(clone(patches), cfg)
}

// splitMax is the in-place version of SplitMax, the edits of patches are modified.
func splitMax(patches []Patch, cfg config.Config) []Patch {
	size := cfg.MatchMaxBits
	margin := cfg.PatchMargin
	if size == 0 || size <= 2*margin {
		// Without room for at least one rune next to the context, splitting makes no progress.
		return patches
	}

	out := make([]Patch, 0, len(patches))
	for _, big := range patches {
		if big.Length1 <= size {
			out = append(out, big)
			continue
		}

		// Remove the big old patch and replace it with smaller ones.
		rest := big.Edits
		start1, start2 := big.Start1, big.Start2
		var precontext []rune
		for len(rest) > 0 {
			// Create one of several smaller patches.
			p := Patch{
				Start1: start1 - len(precontext),
				Start2: start2 - len(precontext),
			}
			empty := true
			if len(precontext) > 0 {
				p.Length1 = len(precontext)
				p.Length2 = len(precontext)
				p.Edits = append(p.Edits, edits.Edit{Op: edits.Equal, Text: string(precontext)})
			}

			for len(rest) > 0 && p.Length1 < size-margin {
				e := rest[0]
				n := utf8.RuneCountInString(e.Text)
				switch {
				case e.Op == edits.Insert:
					// Insertions are harmless.
					p.Length2 += n
					start2 += n
					p.Edits = append(p.Edits, e)
					rest = rest[1:]
					empty = false
				case e.Op == edits.Delete && len(p.Edits) == 1 && p.Edits[0].Op == edits.Equal && n > 2*size:
					// This is a large deletion, let it pass in one chunk.
					p.Length1 += n
					start1 += n
					p.Edits = append(p.Edits, e)
					rest = rest[1:]
					empty = false
				default:
					// Deletion or equality. Only take as much as we can stomach.
					r := []rune(e.Text)
					k := min(len(r), size-p.Length1-margin)
					p.Length1 += k
					start1 += k
					if e.Op == edits.Equal {
						p.Length2 += k
						start2 += k
					} else {
						empty = false
					}
					p.Edits = append(p.Edits, edits.Edit{Op: e.Op, Text: string(r[:k])})
					if k == len(r) {
						rest = rest[1:]
					} else {
						rest[0].Text = string(r[k:])
					}
				}
			}

			// Compute the head context for the next patch.
			dest := []rune(edits.Dest(p.Edits))
			precontext = dest[max(0, len(dest)-margin):]

			// Append the end context for this patch.
			if postcontext := sourcePrefix(rest, margin); postcontext != "" {
				n := utf8.RuneCountInString(postcontext)
				p.Length1 += n
				p.Length2 += n
				if last := len(p.Edits) - 1; last >= 0 && p.Edits[last].Op == edits.Equal {
					p.Edits[last].Text += postcontext
				} else {
					p.Edits = append(p.Edits, edits.Edit{Op: edits.Equal, Text: postcontext})
				}
			}

			if !empty {
				out = append(out, p)
			}
		}
	}
	return out
}

// sourcePrefix returns the first n runes of the source text of es.
func sourcePrefix(es []edits.Edit, n int) string {
	var r []rune
	for _, e := range es {
		if len(r) >= n {
			break
		}
		if e.Op == edits.Insert {
			continue
		}
		r = append(r, []rune(e.Text)...)
	}
	return string(r[:min(n, len(r))])
}

// padding returns the runes used to pad the text and patches for Apply. The padding runes are the
// control characters U+0001 to U+margin.
func padding(margin int) []rune {
	pad := make([]rune, margin)
	for i := range pad {
		pad[i] = rune(i + 1)
	}
	return pad
}

// addPadding adds padding to the first and last patch so that context matches can occur at the
// edges of the text. The patches are modified in place and the padding is returned.
func addPadding(patches []Patch, margin int) []rune {
	if margin <= 0 || len(patches) == 0 {
		return nil
	}
	pad := padding(margin)

	// Bump all the patches forward.
	for i := range patches {
		patches[i].Start1 += margin
		patches[i].Start2 += margin
	}

	// Add some padding on start of first diff.
	p := &patches[0]
	if len(p.Edits) == 0 || p.Edits[0].Op != edits.Equal {
		p.Edits = slices.Insert(p.Edits, 0, edits.Edit{Op: edits.Equal, Text: string(pad)})
		p.Start1 -= margin
		p.Start2 -= margin
		p.Length1 += margin
		p.Length2 += margin
	} else if n := utf8.RuneCountInString(p.Edits[0].Text); n < margin {
		// Grow first equality.
		extra := margin - n
		p.Edits[0].Text = string(pad[n:]) + p.Edits[0].Text
		p.Start1 -= extra
		p.Start2 -= extra
		p.Length1 += extra
		p.Length2 += extra
	}

	// Add some padding on end of last diff.
	p = &patches[len(patches)-1]
	if last := len(p.Edits) - 1; last < 0 || p.Edits[last].Op != edits.Equal {
		p.Edits = append(p.Edits, edits.Edit{Op: edits.Equal, Text: string(pad)})
		p.Length1 += margin
		p.Length2 += margin
	} else if n := utf8.RuneCountInString(p.Edits[last].Text); n < margin {
		// Grow last equality.
		extra := margin - n
		p.Edits[last].Text += string(pad[:extra])
		p.Length1 += extra
		p.Length2 += extra
	}
	return pad
}
