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

package edits

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"znkr.io/dmp/internal/percent"
)

var (
	// ErrInvalidDelta is returned when a delta contains a malformed token.
	ErrInvalidDelta = errors.New("invalid delta")

	// ErrDeltaLength is returned when the lengths in a delta don't match the source text.
	ErrDeltaLength = errors.New("delta length doesn't match source text")
)

// ToDelta encodes an edit script as a compact delta. The delta is a tab separated list of tokens:
// "=n" keeps n runes of the source, "-n" deletes n runes of the source, and "+text" inserts the
// percent encoded text.
func ToDelta(edits []Edit) string {
	var sb strings.Builder
	for i, e := range edits {
		if i > 0 {
			sb.WriteByte('\t')
		}
		switch e.Op {
		case Insert:
			sb.WriteByte('+')
			sb.WriteString(percent.Encode(e.Text))
		case Delete:
			sb.WriteByte('-')
			sb.WriteString(strconv.Itoa(utf8.RuneCountInString(e.Text)))
		case Equal:
			sb.WriteByte('=')
			sb.WriteString(strconv.Itoa(utf8.RuneCountInString(e.Text)))
		}
	}
	return sb.String()
}

// FromDelta decodes a delta created by ToDelta given the source text it was computed on.
func FromDelta(source, delta string) ([]Edit, error) {
	var out []Edit
	text := []rune(source)
	pos := 0 // position in text
	for tok := range strings.SplitSeq(delta, "\t") {
		if tok == "" {
			// Blank tokens are ok (from a trailing \t).
			continue
		}
		param := tok[1:]
		switch op := tok[0]; op {
		case '+':
			s, err := percent.Decode(param)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidDelta, err)
			}
			out = append(out, Edit{Insert, s})
		case '-', '=':
			n, err := strconv.Atoi(param)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid number in %q", ErrInvalidDelta, tok)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: negative number in %q", ErrInvalidDelta, tok)
			}
			if pos+n > len(text) {
				return nil, fmt.Errorf("%w: delta length (%d) is longer than source text length (%d)", ErrDeltaLength, pos+n, len(text))
			}
			s := string(text[pos : pos+n])
			pos += n
			if op == '=' {
				out = append(out, Edit{Equal, s})
			} else {
				out = append(out, Edit{Delete, s})
			}
		default:
			return nil, fmt.Errorf("%w: invalid operation %q", ErrInvalidDelta, op)
		}
	}
	if pos != len(text) {
		return nil, fmt.Errorf("%w: delta length (%d) is different from source text length (%d)", ErrDeltaLength, pos, len(text))
	}
	return out, nil
}
