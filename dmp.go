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
	"znkr.io/dmp/internal/search"
	"znkr.io/dmp/internal/tokens"
)

// Op describes an edit operation.
type Op = edits.Op

const (
	Equal  = edits.Equal  // Text that's present in both inputs
	Delete = edits.Delete // Text that's only present in the source
	Insert = edits.Insert // Text that's only present in the destination
)

// Edit describes a single edit of an edit script. An edit script is a list of edits that turns a
// source text into a destination text: the source text is the concatenation of all edits except
// insertions and the destination text is the concatenation of all edits except deletions.
type Edit = edits.Edit

// Diff compares x and y and returns the edits necessary to convert from one to the other.
//
// For large inputs, Diff first compares the inputs line by line and then refines the changed
// lines character by character. This is much faster, but can produce a diff that's not minimal.
//
// If x and y are identical, the output consists of a single [Equal] edit. If both are empty, the
// output is empty.
//
// The following options are supported: [Minimal], [CostLimit]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Diff(x, y string, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.DiffFlags)
	return impl.ToEdits(impl.Diff([]rune(x), []rune(y), cfg, true))
}

// DiffChars compares x and y character by character. Unlike [Diff], it never uses the line level
// speedup.
//
// The following options are supported: [Minimal], [CostLimit]
func DiffChars(x, y string, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.DiffFlags)
	return impl.ToEdits(impl.Diff([]rune(x), []rune(y), cfg, false))
}

// DiffLines compares x and y line by line. Every edit consists of whole lines, including their
// trailing newline.
//
// The following options are supported: [Minimal], [CostLimit]
func DiffLines(x, y string, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.DiffFlags)
	return diffTokens(tokens.SplitLines(x), tokens.SplitLines(y), cfg)
}

// DiffWords compares x and y word by word. Words are determined by the Unicode text segmentation
// rules (UAX #29). Every edit consists of whole words and the whitespace and punctuation between
// them.
//
// The following options are supported: [Minimal], [CostLimit]
func DiffWords(x, y string, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.DiffFlags)
	return diffTokens(tokens.SplitWords(x), tokens.SplitWords(y), cfg)
}

func diffTokens(x, y []string, cfg config.Config) []Edit {
	var in tokens.Interner
	xids := in.Intern(x)
	yids := in.Intern(y)
	return impl.TokensToEdits(impl.DiffTokens(xids, yids, cfg), in.Join)
}

// Source returns the source text of an edit script.
func Source(es []Edit) string { return edits.Source(es) }

// Dest returns the destination text of an edit script.
func Dest(es []Edit) string { return edits.Dest(es) }

// Levenshtein returns the Levenshtein distance of an edit script, i.e., the number of inserted,
// deleted, or substituted runes.
func Levenshtein(es []Edit) int { return edits.Levenshtein(es) }

// XIndex translates the rune offset loc in the source text of an edit script into the
// corresponding offset in the destination text. A location inside a deletion is mapped to the
// location where the deletion starts.
func XIndex(es []Edit, loc int) int { return edits.XIndex(es, loc) }

// CommonPrefix returns the number of runes common to the start of x and y.
func CommonPrefix(x, y string) int {
	return search.CommonPrefix([]rune(x), []rune(y))
}

// CommonSuffix returns the number of runes common to the end of x and y.
func CommonSuffix(x, y string) int {
	return search.CommonSuffix([]rune(x), []rune(y))
}

// CommonOverlap returns the number of runes at the end of x that are the same as the start of y.
func CommonOverlap(x, y string) int {
	return search.CommonOverlap([]rune(x), []rune(y))
}

// ToDelta encodes an edit script as a compact delta that, together with the source text, is
// enough to recreate the edit script.
//
// The delta is a tab separated list of tokens: "=n" keeps n runes of the source text, "-n"
// deletes n runes, and "+text" inserts the percent encoded text.
func ToDelta(es []Edit) string { return edits.ToDelta(es) }

// FromDelta decodes a delta created by [ToDelta] given the source text it was computed for.
//
// An error wrapping [ErrInvalidDelta] is returned for malformed tokens, an error wrapping
// [ErrDeltaLength] if the delta doesn't match the length of source, and a [*DecodeError] for bad
// percent encoding.
func FromDelta(source, delta string) ([]Edit, error) { return edits.FromDelta(source, delta) }
