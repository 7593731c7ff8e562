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

// Package match implements fuzzy location of a pattern in a text using the bitap algorithm.
package match

import (
	"errors"
	"fmt"
	"slices"

	"znkr.io/dmp/internal/config"
	"znkr.io/dmp/internal/search"
)

// ErrPatternTooLong is returned when a pattern doesn't fit into the bit vectors used by bitap.
var ErrPatternTooLong = errors.New("pattern too long")

// wordBits is the width of the bit vectors used by bitap.
const wordBits = 64

// MaxLen returns the maximum pattern length that can be located with the given configuration.
func MaxLen(cfg config.Config) int {
	if cfg.MatchMaxBits > 0 {
		return min(cfg.MatchMaxBits, wordBits)
	}
	return wordBits
}

// Match locates the best instance of pattern in text near loc. It returns -1 if no match was
// found.
func Match(text, pattern []rune, loc int, cfg config.Config) (int, error) {
	loc = max(0, min(loc, len(text)))
	switch {
	case len(pattern) == 0:
		return loc, nil
	case len(text) == 0:
		return -1, nil
	case slices.Equal(text, pattern):
		// Shortcut, potentially not guaranteed by the algorithm.
		return 0, nil
	case loc+len(pattern) <= len(text) && slices.Equal(text[loc:loc+len(pattern)], pattern):
		// Perfect match at the perfect spot.
		return loc, nil
	}
	return Bitap(text, pattern, loc, cfg)
}

// Bitap locates the best instance of pattern in text near loc using the bitap algorithm. It
// returns -1 if no match was found.
//
// See S. Wu and U. Manber (1992) "Fast Text Searching Allowing Errors".
func Bitap(text, pattern []rune, loc int, cfg config.Config) (int, error) {
	if n := MaxLen(cfg); len(pattern) > n {
		return -1, fmt.Errorf("%w: %d runes exceed the limit of %d", ErrPatternTooLong, len(pattern), n)
	}
	if len(pattern) == 0 {
		return max(0, min(loc, len(text))), nil
	}

	b := bitap{
		pattern:   pattern,
		loc:       loc,
		distance:  cfg.MatchDistance,
		threshold: cfg.MatchThreshold,
	}
	return b.search(text), nil
}

type bitap struct {
	pattern   []rune
	loc       int
	distance  int
	threshold float64
}

// score computes the score for a match with e errors at location x, 0.0 is a perfect match and
// 1.0 is a very bad match.
func (b *bitap) score(e, x int) float64 {
	accuracy := float64(e) / float64(len(b.pattern))
	proximity := b.loc - x
	if proximity < 0 {
		proximity = -proximity
	}
	if b.distance == 0 {
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + float64(proximity)/float64(b.distance)
}

func (b *bitap) search(text []rune) int {
	pattern, loc := b.pattern, b.loc
	m := len(pattern)
	alphabet := Alphabet(pattern)

	// Highest score beyond which we give up.
	threshold := b.threshold

	// Is there a nearby exact match? That bounds the score from above.
	if x := search.Index(text, pattern, loc); x != -1 {
		threshold = min(b.score(0, x), threshold)
		// What about in the other direction?
		if x := search.LastIndex(text, pattern, loc+m); x != -1 {
			threshold = min(b.score(0, x), threshold)
		}
	}

	matchmask := uint64(1) << (m - 1)
	best := -1

	binmax := m + len(text)
	var last []uint64
	for d := range m {
		// Scan for the best match; each iteration allows for one more error. Run a binary search
		// to determine how far from loc we can stray at this error level.
		binmin, binmid := 0, binmax
		for binmin < binmid {
			if b.score(d, loc+binmid) <= threshold {
				binmin = binmid
			} else {
				binmax = binmid
			}
			binmid = (binmax-binmin)/2 + binmin
		}
		// Use the result from this iteration as the maximum for the next.
		binmax = binmid

		start := max(1, loc-binmid+1)
		finish := min(loc+binmid, len(text)) + m

		rd := make([]uint64, finish+2)
		rd[finish+1] = (uint64(1) << d) - 1
		for j := finish; j >= start; j-- {
			var charMatch uint64
			if j-1 < len(text) {
				charMatch = alphabet[text[j-1]]
			}
			if d == 0 {
				// First pass: exact match.
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				// Subsequent passes: fuzzy match.
				rd[j] = ((rd[j+1]<<1)|1)&charMatch | (((last[j+1] | last[j]) << 1) | 1) | last[j+1]
			}
			if rd[j]&matchmask == 0 {
				continue
			}
			// This match will almost certainly be better than any existing match, but check
			// anyway.
			s := b.score(d, j-1)
			if s > threshold {
				continue
			}
			threshold = s
			best = j - 1
			if best <= loc {
				// Already passed loc, downhill from here on in.
				break
			}
			// When passing loc, don't exceed our current distance from loc.
			start = max(1, 2*loc-best)
		}

		// No hope for a (better) match at greater error levels.
		if b.score(d+1, loc) > threshold {
			break
		}
		last = rd
	}
	return best
}

// Alphabet computes the bitap alphabet of a pattern: for each rune, a bit mask of its positions
// in the pattern, with the first position in the most significant bit.
func Alphabet(pattern []rune) map[rune]uint64 {
	s := make(map[rune]uint64, len(pattern))
	for i, r := range pattern {
		s[r] |= uint64(1) << (len(pattern) - i - 1)
	}
	return s
}
