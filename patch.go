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
	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/impl"
	"znkr.io/dmp/internal/patch"
)

// Patch is a hunk of edits with surrounding context. Starts and lengths count runes, Length1 is
// the length of the source text of the edits and Length2 the length of the destination text.
//
// The String method renders a patch in a format that's similar to a unified diff, but with
// character instead of line granularity.
type Patch = patch.Patch

// MakePatch computes the patches that turn x into y.
//
// The following options are supported: [Minimal], [CostLimit], [EditCost], [MatchMaxBits],
// [PatchMargin]
func MakePatch(x, y string, opts ...Option) []Patch {
	cfg := config.FromOptions(opts, config.PatchFlags)
	chunks := impl.Diff([]rune(x), []rune(y), cfg, true)
	if len(chunks) > 2 {
		chunks = impl.Semantic(chunks)
		chunks = impl.Efficiency(chunks, cfg.EditCost)
	}
	return patch.Make(x, impl.ToEdits(chunks), cfg)
}

// MakePatchFromEdits computes the patches for an edit script. The source text is taken from the
// edit script.
//
// The following options are supported: [MatchMaxBits], [PatchMargin]
func MakePatchFromEdits(es []Edit, opts ...Option) []Patch {
	cfg := config.FromOptions(opts, config.MatchMaxBits|config.PatchMargin)
	return patch.Make(edits.Source(es), es, cfg)
}

// MakePatchFromSource computes the patches for an edit script with source text x. The source text
// of the edit script must be x.
//
// The following options are supported: [MatchMaxBits], [PatchMargin]
func MakePatchFromSource(x string, es []Edit, opts ...Option) []Patch {
	cfg := config.FromOptions(opts, config.MatchMaxBits|config.PatchMargin)
	return patch.Make(x, es, cfg)
}

// PatchesToText renders a list of patches in text form.
func PatchesToText(patches []Patch) string { return patch.ToText(patches) }

// PatchesFromText parses the text form of a list of patches as created by [PatchesToText].
//
// An error wrapping [ErrInvalidHeader] or [ErrInvalidLine] is returned for malformed patches and a
// [*DecodeError] for bad percent encoding.
func PatchesFromText(text string) ([]Patch, error) { return patch.Parse(text) }

// Apply applies patches to text. The text doesn't need to be the text the patches were made for:
// every patch is located near its expected location using [Match], and patches that can't be
// located are skipped.
//
// Apply returns the patched text and for every patch whether it was applied. Patches that are too
// long to be matched are split first (see [SplitMax]), the result has one entry for each patch
// after splitting. The input patches are not modified.
//
// The following options are supported: [Minimal], [CostLimit], [MatchDistance], [MatchThreshold],
// [MatchMaxBits], [PatchMargin], [PatchDeleteThreshold]
func Apply(patches []Patch, text string, opts ...Option) (string, []bool) {
	cfg := config.FromOptions(opts, config.PatchFlags&^config.EditCost)
	return patch.Apply(patches, text, cfg)
}

// SplitMax splits patches that are longer than [MatchMaxBits] into smaller patches that can be
// matched. The input patches are not modified.
//
// The following options are supported: [MatchMaxBits], [PatchMargin]
func SplitMax(patches []Patch, opts ...Option) []Patch {
	cfg := config.FromOptions(opts, config.MatchMaxBits|config.PatchMargin)
	return patch.SplitMax(patches, cfg)
}
