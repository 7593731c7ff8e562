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

// Package patch implements the patch engine: building patches from an edit script, converting
// them to and from text, and applying them to a text that may have drifted from the one the
// patches were made for.
package patch

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/percent"
)

// Patch is a single hunk of changes.
//
// Starts and lengths count runes of the text the patch was made for. Length1 is the length of
// the source text of the edits and Length2 the length of the destination text.
type Patch struct {
	Edits            []edits.Edit
	Start1, Start2   int
	Length1, Length2 int
}

var (
	// ErrInvalidHeader is returned when a patch header can't be parsed.
	ErrInvalidHeader = errors.New("invalid patch header")

	// ErrInvalidLine is returned when a patch body line starts with an unknown prefix.
	ErrInvalidLine = errors.New("invalid patch line")
)

// String renders a patch in a format similar to a unified diff. The header is
//
//	@@ -start1,length1 +start2,length2 @@
//
// where starts are 1-based. The length is omitted if it's 1 and for a length of 0, the start is
// the 0-based position before which the empty range is. The header is followed by one line per
// edit, each prefixed with ' ', '-', or '+' and percent encoded.
func (p *Patch) String() string {
	var sb strings.Builder
	sb.WriteString("@@ -")
	sb.WriteString(coords(p.Start1, p.Length1))
	sb.WriteString(" +")
	sb.WriteString(coords(p.Start2, p.Length2))
	sb.WriteString(" @@\n")
	for _, e := range p.Edits {
		switch e.Op {
		case edits.Insert:
			sb.WriteByte('+')
		case edits.Delete:
			sb.WriteByte('-')
		case edits.Equal:
			sb.WriteByte(' ')
		}
		sb.WriteString(percent.Encode(e.Text))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func coords(start, length int) string {
	switch length {
	case 0:
		return strconv.Itoa(start) + ",0"
	case 1:
		return strconv.Itoa(start + 1)
	default:
		return strconv.Itoa(start+1) + "," + strconv.Itoa(length)
	}
}

// ToText renders a list of patches.
func ToText(patches []Patch) string {
	var sb strings.Builder
	for i := range patches {
		sb.WriteString(patches[i].String())
	}
	return sb.String()
}

var header = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)

// Parse parses the text format produced by [ToText].
func Parse(text string) ([]Patch, error) {
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	var patches []Patch
	for i := 0; i < len(lines); {
		if lines[i] == "" {
			// Blank lines between and after patches are fine.
			i++
			continue
		}
		m := header.FindStringSubmatch(lines[i])
		if m == nil {
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrInvalidHeader, lines[i])
		}
		var p Patch
		var err error
		if p.Start1, p.Length1, err = parseCoords(m[1], m[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", i+1, ErrInvalidHeader, err)
		}
		if p.Start2, p.Length2, err = parseCoords(m[3], m[4]); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", i+1, ErrInvalidHeader, err)
		}
		hdr := i
		i++

	body:
		for ; i < len(lines); i++ {
			line := lines[i]
			if line == "" {
				continue
			}
			var op edits.Op
			switch line[0] {
			case '-':
				op = edits.Delete
			case '+':
				op = edits.Insert
			case ' ':
				op = edits.Equal
			case '@':
				break body
			default:
				return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrInvalidLine, line)
			}
			s, err := percent.Decode(line[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			p.Edits = append(p.Edits, edits.Edit{Op: op, Text: s})
		}

		if n1, n2 := lengths(p.Edits); n1 != p.Length1 || n2 != p.Length2 {
			return nil, fmt.Errorf("line %d: %w: lengths %d,%d don't match the body lengths %d,%d", hdr+1, ErrInvalidHeader, p.Length1, p.Length2, n1, n2)
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func parseCoords(start, length string) (int, int, error) {
	s, err := strconv.Atoi(start)
	if err != nil {
		return 0, 0, err
	}
	switch length {
	case "":
		if s == 0 {
			return 0, 0, errors.New("start 0 with implicit length 1")
		}
		return s - 1, 1, nil
	case "0":
		return s, 0, nil
	}
	n, err := strconv.Atoi(length)
	if err != nil {
		return 0, 0, err
	}
	if s == 0 {
		return 0, 0, fmt.Errorf("start 0 with non-empty length %d", n)
	}
	return s - 1, n, nil
}

// lengths returns the source and destination lengths of an edit script.
func lengths(es []edits.Edit) (n1, n2 int) {
	for _, e := range es {
		n := utf8.RuneCountInString(e.Text)
		if e.Op != edits.Insert {
			n1 += n
		}
		if e.Op != edits.Delete {
			n2 += n
		}
	}
	return n1, n2
}

// clone returns a deep copy of patches.
func clone(patches []Patch) []Patch {
	out := make([]Patch, len(patches))
	for i, p := range patches {
		out[i] = p
		out[i].Edits = slices.Clone(p.Edits)
	}
	return out
}
