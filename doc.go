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

// Package dmp computes, cleans up, and applies differences between texts.
//
// The package consists of three engines:
//
//   - The diff engine ([Diff], [DiffChars], [DiffLines], [DiffWords]) computes an edit script that
//     turns one text into another. The cleanup functions post-process edit scripts, either to make
//     them easier for humans to read ([CleanupSemantic]) or cheaper to process by machines
//     ([CleanupEfficiency]).
//   - The match engine ([Match]) locates the best approximate occurrence of a short pattern near an
//     expected location in a text.
//   - The patch engine ([MakePatch], [Apply]) converts an edit script into patches with context,
//     serializes them ([PatchesToText], [PatchesFromText]), and applies them to texts that may have
//     drifted from the text the patches were made for.
//
// All offsets and lengths count runes, not bytes.
//
// Performance: [Diff] uses a number of speedups that can produce edit scripts that aren't
// minimal. Use [Minimal] to disable them. The core algorithm is O(ND) in time where N is the
// combined length of both inputs and D is the size of the edit script. Use [CostLimit] to bound
// the runtime for inputs with many differences.
package dmp
