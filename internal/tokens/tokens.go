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

// Package tokens splits text into tokens and maps tokens to dense integer IDs, so that token
// sequences can be diffed with the same algorithm as characters.
package tokens

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// SplitLines splits the input after every '\n'. Every line includes its newline character, except
// for the last line if the input doesn't end in a newline. The result is empty for empty input.
func SplitLines(s string) []string {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]string, 0, n)
	for len(s) > 0 {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:m+1])
		s = s[m+1:]
	}
	return lines
}

// SplitWords splits the input at Unicode word boundaries (UAX #29). Whitespace and punctuation
// between words become tokens of their own.
func SplitWords(s string) []string {
	var out []string
	iter := words.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// Interner assigns a unique ID to every distinct token. IDs are dense, starting at 0, and there is
// no bound on the number of distinct tokens.
type Interner struct {
	ids    map[string]int
	tokens []string
}

// Intern maps every token to its ID.
func (in *Interner) Intern(toks []string) []int {
	if in.ids == nil {
		in.ids = make(map[string]int, len(toks))
	}
	out := make([]int, len(toks))
	for i, tok := range toks {
		id, ok := in.ids[tok]
		if !ok {
			id = len(in.tokens)
			in.ids[tok] = id
			in.tokens = append(in.tokens, tok)
		}
		out[i] = id
	}
	return out
}

// Token returns the token for id.
func (in *Interner) Token(id int) string { return in.tokens[id] }

// Len returns the number of distinct tokens seen so far.
func (in *Interner) Len() int { return len(in.tokens) }

// Join concatenates the tokens of ids.
func (in *Interner) Join(ids []int) string {
	n := 0
	for _, id := range ids {
		n += len(in.Token(id))
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, id := range ids {
		sb.WriteString(in.Token(id))
	}
	return sb.String()
}
