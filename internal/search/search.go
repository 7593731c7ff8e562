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

// Package search contains the primitives shared by the diff, match, and patch engines: exact
// substring search and common prefix, suffix, and overlap lengths.
//
// Exact search uses the Knuth-Morris-Pratt algorithm and is linear in the length of the text and
// the pattern. All functions work on slices of comparable elements, the engines use them with
// runes and with integer token IDs.
package search

import "slices"

// Index returns the index of the first occurrence of pattern in text that starts at or after
// from, or -1 if there is none. An empty pattern matches at from (clamped to [0, len(text)]).
func Index[T comparable](text, pattern []T, from int) int {
	from = max(0, min(from, len(text)))
	m := len(pattern)
	if m == 0 {
		return from
	}
	if len(text)-from < m {
		return -1
	}

	fail := prefixFunc(m, func(i int) T { return pattern[i] })
	q := 0 // number of matched elements
	for i := from; i < len(text); i++ {
		for q > 0 && text[i] != pattern[q] {
			q = fail[q-1]
		}
		if text[i] == pattern[q] {
			q++
		}
		if q == m {
			return i - m + 1
		}
	}
	return -1
}

// LastIndex returns the index of the last occurrence of pattern in text that starts at or before
// from, or -1 if there is none. An empty pattern matches at from (clamped to [0, len(text)]).
func LastIndex[T comparable](text, pattern []T, from int) int {
	m := len(pattern)
	if m == 0 {
		return max(0, min(from, len(text)))
	}
	if from < 0 {
		return -1
	}

	// Run the forward algorithm on the reversed pattern and text, starting at the rightmost
	// position a match starting at from could end.
	rpat := func(i int) T { return pattern[m-1-i] }
	fail := prefixFunc(m, rpat)
	end := min(len(text), from+m) // exclusive end of the searched text
	q := 0
	for i := end - 1; i >= 0; i-- {
		for q > 0 && text[i] != rpat(q) {
			q = fail[q-1]
		}
		if text[i] == rpat(q) {
			q++
		}
		if q == m {
			return i
		}
	}
	return -1
}

// prefixFunc computes the KMP failure function for the sequence of length m given by at: fail[i]
// is the length of the longest proper prefix of at(0..i) that's also a suffix of it.
func prefixFunc[T comparable](m int, at func(int) T) []int {
	fail := make([]int, m)
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && at(i) != at(k) {
			k = fail[k-1]
		}
		if at(i) == at(k) {
			k++
		}
		fail[i] = k
	}
	return fail
}

// CommonPrefix returns the length of the common prefix of x and y.
func CommonPrefix[T comparable](x, y []T) int {
	n := min(len(x), len(y))
	for i := range n {
		if x[i] != y[i] {
			return i
		}
	}
	return n
}

// CommonSuffix returns the length of the common suffix of x and y.
func CommonSuffix[T comparable](x, y []T) int {
	n := min(len(x), len(y))
	for i := 1; i <= n; i++ {
		if x[len(x)-i] != y[len(y)-i] {
			return i - 1
		}
	}
	return n
}

// CommonOverlap returns the length of the longest suffix of x that's also a prefix of y.
func CommonOverlap[T comparable](x, y []T) int {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	// Truncate the longer input, an overlap can't be longer than the shorter one.
	if len(x) > len(y) {
		x = x[len(x)-len(y):]
	} else if len(x) < len(y) {
		y = y[:len(x)]
	}
	n := len(x)
	if slices.Equal(x, y) {
		return n
	}

	// Start by looking for a single element match and increase length until no match is found.
	// Performance analysis: https://neil.fraser.name/news/2010/11/04/
	best := 0
	length := 1
	for {
		pattern := x[n-length:]
		found := Index(y, pattern, 0)
		if found == -1 {
			return best
		}
		length += found
		if found == 0 || slices.Equal(x[n-length:], y[:length]) {
			best = length
			length++
		}
	}
}
