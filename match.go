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

package dmp

import (
	"znkr.io/dmp/internal/config"
	"znkr.io/dmp/internal/match"
)

// Match locates the best instance of pattern in text near the rune offset loc. It returns the
// rune offset of the match or -1 if no match was found.
//
// An exact match at loc is always found. Otherwise, the bitap algorithm is used to find a fuzzy
// match, which is scored by the number of errors and the distance from loc (see [MatchDistance]
// and [MatchThreshold]). Patterns longer than [MatchMaxBits], or longer than 64 runes, result in
// an error wrapping [ErrPatternTooLong].
//
// The following options are supported: [MatchDistance], [MatchThreshold], [MatchMaxBits]
func Match(text, pattern string, loc int, opts ...Option) (int, error) {
	cfg := config.FromOptions(opts, config.MatchFlags)
	return match.Match([]rune(text), []rune(pattern), loc, cfg)
}
