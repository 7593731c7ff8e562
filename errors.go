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
	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/match"
	"znkr.io/dmp/internal/patch"
	"znkr.io/dmp/internal/percent"
)

var (
	// ErrPatternTooLong is returned by [Match] if the pattern is too long to be matched.
	ErrPatternTooLong = match.ErrPatternTooLong

	// ErrInvalidHeader is returned by [PatchesFromText] for a malformed patch header.
	ErrInvalidHeader = patch.ErrInvalidHeader

	// ErrInvalidLine is returned by [PatchesFromText] for a patch line with an unknown prefix.
	ErrInvalidLine = patch.ErrInvalidLine

	// ErrInvalidDelta is returned by [FromDelta] for a malformed delta token.
	ErrInvalidDelta = edits.ErrInvalidDelta

	// ErrDeltaLength is returned by [FromDelta] if the delta doesn't fit the source text.
	ErrDeltaLength = edits.ErrDeltaLength
)

// DecodeError describes malformed percent encoding in a delta or patch text.
type DecodeError = percent.DecodeError
