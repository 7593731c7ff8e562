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

package impl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type cleanupTest struct {
	name string
	in   []E
	want []E
}

func runCleanupTests(t *testing.T, fname string, f func([]Chunk[rune]) []Chunk[rune], tests []cleanupTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := FromEdits(tt.in)
			got := ToEdits(f(in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s(...) result is different [-want, +got]:\n%s", fname, diff)
			}
			// The input must not be modified.
			if diff := cmp.Diff(tt.in, ToEdits(in)); diff != "" {
				t.Errorf("%s(...) modified its input [-want, +got]:\n%s", fname, diff)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	runCleanupTests(t, "Merge", Merge[rune], []cleanupTest{
		{
			name: "null-case",
			in:   nil,
			want: nil,
		},
		{
			name: "no-change",
			in:   []E{{eq, "a"}, {del, "b"}, {ins, "c"}},
			want: []E{{eq, "a"}, {del, "b"}, {ins, "c"}},
		},
		{
			name: "merge-equalities",
			in:   []E{{eq, "a"}, {eq, "b"}, {eq, "c"}},
			want: []E{{eq, "abc"}},
		},
		{
			name: "merge-deletions",
			in:   []E{{del, "a"}, {del, "b"}, {del, "c"}},
			want: []E{{del, "abc"}},
		},
		{
			name: "merge-insertions",
			in:   []E{{ins, "a"}, {ins, "b"}, {ins, "c"}},
			want: []E{{ins, "abc"}},
		},
		{
			name: "merge-interweave",
			in:   []E{{del, "a"}, {ins, "b"}, {del, "c"}, {ins, "d"}, {eq, "e"}, {eq, "f"}},
			want: []E{{del, "ac"}, {ins, "bd"}, {eq, "ef"}},
		},
		{
			name: "prefix-and-suffix-detection",
			in:   []E{{del, "a"}, {ins, "abc"}, {del, "dc"}},
			want: []E{{eq, "a"}, {del, "d"}, {ins, "b"}, {eq, "c"}},
		},
		{
			name: "prefix-and-suffix-detection-with-equalities",
			in:   []E{{eq, "x"}, {del, "a"}, {ins, "abc"}, {del, "dc"}, {eq, "y"}},
			want: []E{{eq, "xa"}, {del, "d"}, {ins, "b"}, {eq, "cy"}},
		},
		{
			name: "slide-edit-left",
			in:   []E{{eq, "a"}, {ins, "ba"}, {eq, "c"}},
			want: []E{{ins, "ab"}, {eq, "ac"}},
		},
		{
			name: "slide-edit-right",
			in:   []E{{eq, "c"}, {ins, "ab"}, {eq, "a"}},
			want: []E{{eq, "ca"}, {ins, "ba"}},
		},
		{
			name: "slide-edit-left-recursive",
			in:   []E{{eq, "a"}, {del, "b"}, {eq, "c"}, {del, "ac"}, {eq, "x"}},
			want: []E{{del, "abc"}, {eq, "acx"}},
		},
		{
			name: "slide-edit-right-recursive",
			in:   []E{{eq, "x"}, {del, "ca"}, {eq, "c"}, {del, "b"}, {eq, "a"}},
			want: []E{{eq, "xca"}, {del, "cba"}},
		},
		{
			name: "empty-merge",
			in:   []E{{del, "b"}, {ins, "ab"}, {eq, "c"}},
			want: []E{{ins, "a"}, {eq, "bc"}},
		},
		{
			name: "empty-equality",
			in:   []E{{eq, ""}, {ins, "a"}, {eq, "b"}},
			want: []E{{ins, "a"}, {eq, "b"}},
		},
		{
			name: "empty-edits",
			in:   []E{{eq, "a"}, {del, ""}, {ins, ""}, {eq, "b"}},
			want: []E{{eq, "ab"}},
		},
	})
}

func TestSemanticLossless(t *testing.T) {
	runCleanupTests(t, "SemanticLossless", SemanticLossless, []cleanupTest{
		{
			name: "null-case",
			in:   nil,
			want: nil,
		},
		{
			name: "blank-lines",
			in:   []E{{eq, "AAA\r\n\r\nBBB"}, {ins, "\r\nDDD\r\n\r\nBBB"}, {eq, "\r\nEEE"}},
			want: []E{{eq, "AAA\r\n\r\n"}, {ins, "BBB\r\nDDD\r\n\r\n"}, {eq, "BBB\r\nEEE"}},
		},
		{
			name: "line-boundaries",
			in:   []E{{eq, "AAA\r\nBBB"}, {ins, " DDD\r\nBBB"}, {eq, " EEE"}},
			want: []E{{eq, "AAA\r\n"}, {ins, "BBB DDD\r\n"}, {eq, "BBB EEE"}},
		},
		{
			name: "word-boundaries",
			in:   []E{{eq, "The c"}, {ins, "ow and the c"}, {eq, "at."}},
			want: []E{{eq, "The "}, {ins, "cow and the "}, {eq, "cat."}},
		},
		{
			name: "alphanumeric-boundaries",
			in:   []E{{eq, "The-c"}, {ins, "ow-and-the-c"}, {eq, "at."}},
			want: []E{{eq, "The-"}, {ins, "cow-and-the-"}, {eq, "cat."}},
		},
		{
			name: "hitting-the-start",
			in:   []E{{eq, "a"}, {del, "a"}, {eq, "ax"}},
			want: []E{{del, "a"}, {eq, "aax"}},
		},
		{
			name: "hitting-the-end",
			in:   []E{{eq, "xa"}, {del, "a"}, {eq, "a"}},
			want: []E{{eq, "xaa"}, {del, "a"}},
		},
		{
			name: "merge-after-hitting-the-start",
			in:   []E{{del, "x"}, {eq, "a"}, {del, "ba"}, {eq, "c"}},
			want: []E{{del, "xab"}, {eq, "ac"}},
		},
		{
			name: "merge-after-hitting-the-end",
			in:   []E{{eq, "c"}, {ins, "ab"}, {eq, "a"}, {ins, "x"}},
			want: []E{{eq, "ca"}, {ins, "bax"}},
		},
		{
			name: "sentence-boundaries",
			in:   []E{{eq, "The xxx. The "}, {ins, "zzz. The "}, {eq, "yyy."}},
			want: []E{{eq, "The xxx."}, {ins, " The zzz."}, {eq, " The yyy."}},
		},
	})
}

func TestSemantic(t *testing.T) {
	runCleanupTests(t, "Semantic", Semantic, []cleanupTest{
		{
			name: "null-case",
			in:   nil,
			want: nil,
		},
		{
			name: "no-elimination-1",
			in:   []E{{del, "ab"}, {ins, "cd"}, {eq, "12"}, {del, "e"}},
			want: []E{{del, "ab"}, {ins, "cd"}, {eq, "12"}, {del, "e"}},
		},
		{
			name: "no-elimination-2",
			in:   []E{{del, "abc"}, {ins, "ABC"}, {eq, "1234"}, {del, "wxyz"}},
			want: []E{{del, "abc"}, {ins, "ABC"}, {eq, "1234"}, {del, "wxyz"}},
		},
		{
			name: "simple-elimination",
			in:   []E{{del, "a"}, {eq, "b"}, {del, "c"}},
			want: []E{{del, "abc"}, {ins, "b"}},
		},
		{
			name: "backpass-elimination",
			in:   []E{{del, "ab"}, {eq, "cd"}, {del, "e"}, {eq, "f"}, {ins, "g"}},
			want: []E{{del, "abcdef"}, {ins, "cdfg"}},
		},
		{
			name: "multiple-eliminations",
			in: []E{
				{ins, "1"}, {eq, "A"}, {del, "B"}, {ins, "2"}, {eq, "_"},
				{ins, "1"}, {eq, "A"}, {del, "B"}, {ins, "2"},
			},
			want: []E{{del, "AB_AB"}, {ins, "1A2_1A2"}},
		},
		{
			name: "word-boundaries",
			in:   []E{{eq, "The c"}, {del, "ow and the c"}, {eq, "at."}},
			want: []E{{eq, "The "}, {del, "cow and the "}, {eq, "cat."}},
		},
		{
			name: "no-overlap-elimination",
			in:   []E{{del, "abcxx"}, {ins, "xxdef"}},
			want: []E{{del, "abcxx"}, {ins, "xxdef"}},
		},
		{
			name: "overlap-elimination",
			in:   []E{{del, "abcxxx"}, {ins, "xxxdef"}},
			want: []E{{del, "abc"}, {eq, "xxx"}, {ins, "def"}},
		},
		{
			name: "reverse-overlap-elimination",
			in:   []E{{del, "xxxabc"}, {ins, "defxxx"}},
			want: []E{{ins, "def"}, {eq, "xxx"}, {del, "abc"}},
		},
		{
			name: "two-overlap-eliminations",
			in:   []E{{del, "abcd1212"}, {ins, "1212efghi"}, {eq, "----"}, {del, "A3"}, {ins, "3BC"}},
			want: []E{
				{del, "abcd"}, {eq, "1212"}, {ins, "efghi"}, {eq, "----"},
				{del, "A"}, {eq, "3"}, {ins, "BC"},
			},
		},
	})
}

func TestEfficiency(t *testing.T) {
	efficiency := func(editCost int) func([]Chunk[rune]) []Chunk[rune] {
		return func(c []Chunk[rune]) []Chunk[rune] { return Efficiency(c, editCost) }
	}
	runCleanupTests(t, "Efficiency", efficiency(4), []cleanupTest{
		{
			name: "null-case",
			in:   nil,
			want: nil,
		},
		{
			name: "no-elimination",
			in:   []E{{del, "ab"}, {ins, "12"}, {eq, "wxyz"}, {del, "cd"}, {ins, "34"}},
			want: []E{{del, "ab"}, {ins, "12"}, {eq, "wxyz"}, {del, "cd"}, {ins, "34"}},
		},
		{
			name: "four-edit-elimination",
			in:   []E{{del, "ab"}, {ins, "12"}, {eq, "xyz"}, {del, "cd"}, {ins, "34"}},
			want: []E{{del, "abxyzcd"}, {ins, "12xyz34"}},
		},
		{
			name: "three-edit-elimination",
			in:   []E{{ins, "12"}, {eq, "x"}, {del, "cd"}, {ins, "34"}},
			want: []E{{del, "xcd"}, {ins, "12x34"}},
		},
		{
			name: "backpass-elimination",
			in:   []E{{del, "ab"}, {ins, "12"}, {eq, "xy"}, {ins, "34"}, {eq, "z"}, {del, "cd"}, {ins, "56"}},
			want: []E{{del, "abxyzcd"}, {ins, "12xy34z56"}},
		},
	})
	runCleanupTests(t, "Efficiency", efficiency(5), []cleanupTest{
		{
			name: "high-cost-elimination",
			in:   []E{{del, "ab"}, {ins, "12"}, {eq, "wxyz"}, {del, "cd"}, {ins, "34"}},
			want: []E{{del, "abwxyzcd"}, {ins, "12wxyz34"}},
		},
	})
}

func TestScore(t *testing.T) {
	tests := []struct {
		one, two string
		want     int
	}{
		{"", "abc", scoreEdge},
		{"abc", "", scoreEdge},
		{"a\n\n", "b", scoreBlankLine},
		{"a", "\r\n\r\nb", scoreBlankLine},
		{"a\n", "b", scoreLineBreak},
		{"a.", " b", scoreSentenceEnd},
		{"a", " b", scoreWhitespace},
		{"a", "-b", scoreNonAlphaNum},
		{"a", "b", scoreNone},
		{"ä", "日", scoreNone},
	}
	for _, tt := range tests {
		if got := score([]rune(tt.one), []rune(tt.two)); got != tt.want {
			t.Errorf("score(%q, %q) = %d, want %d", tt.one, tt.two, got, tt.want)
		}
	}
}
