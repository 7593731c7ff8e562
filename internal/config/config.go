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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// dmp.Option.
package config

// Config collects all configurable parameters for the diff, match, and patch functions in this
// module. A Config is a value that's copied into every call and never modified during a call.
type Config struct {
	// EditCost is the cost of an empty edit operation in terms of edit characters. Used by the
	// efficiency cleanup.
	EditCost int

	// MatchDistance determines how far from the expected location a match may be found. A match
	// this many characters away from the expected location adds 1.0 to the score (0.0 is a perfect
	// match).
	MatchDistance int

	// MatchThreshold is the score at which a match is given up (0.0 = perfection, 1.0 = very
	// loose).
	MatchThreshold float64

	// MatchMaxBits is the maximum pattern length for fuzzy matching. Zero disables the bound, but
	// the bitap implementation never goes beyond the width of a machine word.
	MatchMaxBits int

	// PatchMargin is the number of characters of context added around a patch.
	PatchMargin int

	// PatchDeleteThreshold is the acceptance bound for imperfect matches of large deletes.
	// (0.0 = perfection, 1.0 = very loose).
	PatchDeleteThreshold float64

	// If set, the half-match and line mode speedups are disabled.
	Minimal bool

	// CostLimit bounds the number of edit steps the bisection explores before giving up and
	// reporting the remaining input as replaced. Zero means no limit.
	CostLimit int

	// If set, independent halves of a bisection are diffed concurrently.
	Parallel bool
}

// Default is the default configuration.
var Default = Config{
	EditCost:             4,
	MatchDistance:        1000,
	MatchThreshold:       0.5,
	MatchMaxBits:         32,
	PatchMargin:          4,
	PatchDeleteThreshold: 0.5,
	Minimal:              false,
	CostLimit:            0,
	Parallel:             false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not used by a function.
type Flag int

const (
	EditCost Flag = 1 << iota
	MatchDistance
	MatchThreshold
	MatchMaxBits
	PatchMargin
	PatchDeleteThreshold
	Minimal
	CostLimit
	Parallel
)

// Commonly used flag sets.
const (
	DiffFlags  = Minimal | CostLimit | Parallel
	MatchFlags = MatchDistance | MatchThreshold | MatchMaxBits
	PatchFlags = DiffFlags | MatchFlags | EditCost | PatchMargin | PatchDeleteThreshold
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case EditCost:
		return "dmp.EditCost"
	case MatchDistance:
		return "dmp.MatchDistance"
	case MatchThreshold:
		return "dmp.MatchThreshold"
	case MatchMaxBits:
		return "dmp.MatchMaxBits"
	case PatchMargin:
		return "dmp.PatchMargin"
	case PatchDeleteThreshold:
		return "dmp.PatchDeleteThreshold"
	case Minimal:
		return "dmp.Minimal"
	case CostLimit:
		return "dmp.CostLimit"
	case Parallel:
		return "dmp.Parallel"
	default:
		panic("never reached")
	}
}
