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

import "znkr.io/dmp/internal/config"

// Option configures the behavior of the diff, match, and patch functions.
type Option = config.Option

// EditCost sets the cost of an empty edit operation in terms of edit characters. It's used by
// [CleanupEfficiency] and [MakePatch]. The default is 4.
func EditCost(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.EditCost = max(0, n)
		return config.EditCost
	}
}

// MatchDistance determines how far from the expected location a match can be. A match n runes
// away from the expected location adds 1.0 to the score, where 0.0 is a perfect match. With a
// distance of 0, a match is only found at the exact expected location. The default is 1000.
func MatchDistance(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchDistance = max(0, n)
		return config.MatchDistance
	}
}

// MatchThreshold sets the score at which a match is given up. 0.0 only accepts perfect matches and
// 1.0 accepts almost anything. The default is 0.5.
func MatchThreshold(f float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchThreshold = f
		return config.MatchThreshold
	}
}

// MatchMaxBits sets the maximum pattern length for [Match]. Patches are split so that they can be
// matched. Zero disables the bound, but patterns are never matched beyond a length of 64. The
// default is 32.
func MatchMaxBits(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchMaxBits = max(0, n)
		return config.MatchMaxBits
	}
}

// PatchMargin sets the number of runes of context added around a patch. The default is 4.
func PatchMargin(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PatchMargin = max(0, n)
		return config.PatchMargin
	}
}

// PatchDeleteThreshold determines how closely the contents of a large deletion need to match the
// text the patch is applied to. 0.0 requires a perfect match and 1.0 accepts anything. The default
// is 0.5.
func PatchDeleteThreshold(f float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PatchDeleteThreshold = f
		return config.PatchDeleteThreshold
	}
}

// Minimal finds a minimal diff irrespective of the cost. By default, [Diff] uses the half-match
// and line mode speedups that can produce non-minimal diffs.
//
// With this option, the runtime is O(ND) where N is the combined length of both inputs, and D is
// the number of differences.
func Minimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Minimal = true
		return config.Minimal
	}
}

// CostLimit bounds the number of edit steps that are explored when searching for a diff. If the
// bound is exceeded for a part of the input, that part is reported as deleted and inserted as a
// whole. Zero, the default, means no limit.
func CostLimit(d int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CostLimit = max(0, d)
		return config.CostLimit
	}
}
