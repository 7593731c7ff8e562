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

// Package percent implements the percent encoding used by the delta and patch text formats.
//
// The encoding is the one of JavaScript's encodeURI with the exception that spaces are not
// escaped: Every byte of the UTF-8 encoding is escaped as %XX unless it's in the literal set
//
//	A-Z a-z 0-9 - _ . ! ~ * ' ( ) ; / ? : @ & = + $ , # and space
//
// Decoding accepts any escape, including escapes of literal characters, but the decoded bytes must
// form valid UTF-8.
package percent

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// literal[c] is true if c is not escaped.
var literal = func() (lit [256]bool) {
	for c := 'A'; c <= 'Z'; c++ {
		lit[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		lit[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		lit[c] = true
	}
	for _, c := range []byte("-_.!~*'();/?:@&=+$,# ") {
		lit[c] = true
	}
	return lit
}()

// Encode escapes s. Encode never fails.
func Encode(s string) string {
	n := 0
	for i := range len(s) {
		if !literal[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*n)
	for i := range len(s) {
		c := s[i]
		if literal[c] {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

// DecodeError describes a malformed percent encoded input.
type DecodeError struct {
	Offset int    // Byte offset of the offending sequence in the encoded input.
	Reason string // What's wrong with the sequence.
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid percent encoding at offset %d: %s", e.Offset, e.Reason)
}

// Decode reverses Encode. It fails with a *DecodeError if s contains a malformed escape or if the
// decoded bytes aren't valid UTF-8.
func Decode(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		if !utf8.ValidString(s) {
			return "", &DecodeError{Offset: invalidOffset(s), Reason: "invalid UTF-8"}
		}
		return s, nil
	}

	d := decoder{in: s}
	out := make([]byte, 0, len(s))
	for !d.done() {
		start := d.pos
		lead, err := d.next()
		if err != nil {
			return "", err
		}
		n := seqLen(lead)
		if n == 0 {
			return "", &DecodeError{Offset: start, Reason: fmt.Sprintf("invalid leading byte %#02x", lead)}
		}
		seq := [utf8.UTFMax]byte{lead}
		for i := 1; i < n; i++ {
			if d.done() {
				return "", &DecodeError{Offset: start, Reason: "truncated UTF-8 sequence"}
			}
			pos := d.pos
			c, err := d.next()
			if err != nil {
				return "", err
			}
			if c&0xC0 != 0x80 {
				return "", &DecodeError{Offset: pos, Reason: fmt.Sprintf("invalid continuation byte %#02x", c)}
			}
			seq[i] = c
		}
		// Reject overlong encodings and surrogates which pass the structural checks above.
		if n > 1 {
			if !utf8.Valid(seq[:n]) {
				return "", &DecodeError{Offset: start, Reason: "invalid UTF-8 sequence"}
			}
		}
		out = append(out, seq[:n]...)
	}
	return string(out), nil
}

// seqLen returns the length of a UTF-8 sequence starting with lead, or 0 if lead can't start a
// sequence.
func seqLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead >= 0xC2 && lead <= 0xDF:
		return 2
	case lead >= 0xE0 && lead <= 0xEF:
		return 3
	case lead >= 0xF0 && lead <= 0xF4:
		return 4
	default:
		return 0
	}
}

type decoder struct {
	in  string
	pos int
}

func (d *decoder) done() bool { return d.pos >= len(d.in) }

// next returns the next decoded byte.
func (d *decoder) next() (byte, error) {
	c := d.in[d.pos]
	if c != '%' {
		d.pos++
		return c, nil
	}
	if d.pos+3 > len(d.in) {
		return 0, &DecodeError{Offset: d.pos, Reason: fmt.Sprintf("incomplete escape %q", d.in[d.pos:])}
	}
	hi, ok1 := unhex(d.in[d.pos+1])
	lo, ok2 := unhex(d.in[d.pos+2])
	if !ok1 || !ok2 {
		return 0, &DecodeError{Offset: d.pos, Reason: fmt.Sprintf("invalid escape %q", d.in[d.pos:d.pos+3])}
	}
	d.pos += 3
	return hi<<4 | lo, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func invalidOffset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return 0
}
