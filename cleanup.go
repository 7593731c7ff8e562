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
	"znkr.io/dmp/internal/impl"
)

// CleanupMerge reorders and merges like edit sections and merges equalities. Any edit section can
// move as long as it doesn't cross an equality. The input is not modified.
func CleanupMerge(es []Edit) []Edit {
	return impl.ToEdits(impl.Merge(impl.FromEdits(es)))
}

// CleanupSemantic reduces the number of edits by eliminating semantically trivial equalities and
// aligns the remaining edits to word and line boundaries. The result is easier to read for
// humans. The input is not modified.
func CleanupSemantic(es []Edit) []Edit {
	return impl.ToEdits(impl.Semantic(impl.FromEdits(es)))
}

// CleanupSemanticLossless shifts single edits that are surrounded by equalities sideways to align
// them to word and line boundaries. The number of edits stays the same. The input is not modified.
func CleanupSemanticLossless(es []Edit) []Edit {
	return impl.ToEdits(impl.SemanticLossless(impl.FromEdits(es)))
}

// CleanupEfficiency reduces the number of edits by eliminating operationally trivial equalities.
// Short equalities between edits are folded into the edits if that's cheaper than keeping them,
// as determined by [EditCost]. The input is not modified.
//
// The following option is supported: [EditCost]
func CleanupEfficiency(es []Edit, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.EditCost)
	return impl.ToEdits(impl.Efficiency(impl.FromEdits(es), cfg.EditCost))
}
