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

package patch

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/dmp/internal/config"
	"znkr.io/dmp/internal/edits"
	"znkr.io/dmp/internal/impl"
	"znkr.io/dmp/internal/percent"
)

type E = edits.Edit

const (
	eq  = edits.Equal
	del = edits.Delete
	ins = edits.Insert
)

// makePatches diffs source and dest the same way the public API does and turns the result into
// patches.
func makePatches(source, dest string, cfg config.Config) []Patch {
	chunks := impl.Diff([]rune(source), []rune(dest), cfg, true)
	if len(chunks) > 2 {
		chunks = impl.Semantic(chunks)
		chunks = impl.Efficiency(chunks, cfg.EditCost)
	}
	return Make(source, impl.ToEdits(chunks), cfg)
}

func mustParse(t *testing.T, text string) []Patch {
	t.Helper()
	patches, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return patches
}

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want []Patch
	}{
		{"", nil},
		{
			"@@ -21,18 +22,17 @@\n jump\n-s\n+ed\n  over \n-the\n+a\n %0Alaz\n",
			[]Patch{{
				Edits: []E{
					{eq, "jump"}, {del, "s"}, {ins, "ed"}, {eq, " over "}, {del, "the"}, {ins, "a"}, {eq, "\nlaz"},
				},
				Start1: 20, Start2: 21, Length1: 18, Length2: 17,
			}},
		},
		{
			"@@ -1 +1 @@\n-a\n+b\n",
			[]Patch{{Edits: []E{{del, "a"}, {ins, "b"}}, Start1: 0, Start2: 0, Length1: 1, Length2: 1}},
		},
		{
			"@@ -1,3 +0,0 @@\n-abc\n",
			[]Patch{{Edits: []E{{del, "abc"}}, Start1: 0, Start2: 0, Length1: 3, Length2: 0}},
		},
		{
			"@@ -0,0 +1,3 @@\n+abc\n",
			[]Patch{{Edits: []E{{ins, "abc"}}, Start1: 0, Start2: 0, Length1: 0, Length2: 3}},
		},
		{
			"@@ -1 +1 @@\n-a\n+b\n\n@@ -3 +3 @@\n-c\n+d\n",
			[]Patch{
				{Edits: []E{{del, "a"}, {ins, "b"}}, Start1: 0, Start2: 0, Length1: 1, Length2: 1},
				{Edits: []E{{del, "c"}, {ins, "d"}}, Start1: 2, Start2: 2, Length1: 1, Length2: 1},
			},
		},
	}
	for _, tt := range tests {
		got := mustParse(t, tt.text)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) result is different [-want, +got]:\n%s", tt.text, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"bad-header", "Bad\nPatch\n", ErrInvalidHeader},
		{"bad-prefix", "@@ -1 +1 @@\n*a\n", ErrInvalidLine},
		{"zero-start-implicit-length", "@@ -0 +1 @@\n-a\n+b\n", ErrInvalidHeader},
		{"length-mismatch", "@@ -1,2 +1 @@\n-a\n+b\n", ErrInvalidHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.text, err, tt.want)
			}
		})
	}

	t.Run("bad-encoding", func(t *testing.T) {
		_, err := Parse("@@ -1 +1 @@\n-%zz\n+b\n")
		var derr *percent.DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("Parse(...) error = %v, want a *percent.DecodeError", err)
		}
	})
}

func TestString(t *testing.T) {
	tests := []string{
		"@@ -21,18 +22,17 @@\n jump\n-s\n+ed\n  over \n-the\n+a\n %0Alaz\n",
		"@@ -1,9 +1,9 @@\n-f\n+F\n oo+fooba\n@@ -7,9 +7,9 @@\n obar\n-,\n+.\n  tes\n",
		"@@ -0,0 +1,3 @@\n+abc\n",
		"@@ -1,3 +0,0 @@\n-abc\n",
	}
	for _, text := range tests {
		got := ToText(mustParse(t, text))
		if diff := cmp.Diff(text, got); diff != "" {
			t.Errorf("ToText(Parse(%q)) result is different [-want, +got]:\n%s", text, diff)
		}
	}
}

func TestAddContext(t *testing.T) {
	tests := []struct {
		patch string
		text  string
		want  string
	}{
		{
			"@@ -21,4 +21,10 @@\n-jump\n+somersault\n",
			"The quick brown fox jumps over the lazy dog.",
			"@@ -17,12 +17,18 @@\n fox \n-jump\n+somersault\n s ov\n",
		},
		{
			"@@ -21,4 +21,10 @@\n-jump\n+somersault\n",
			"The quick brown fox jumps.",
			"@@ -17,10 +17,16 @@\n fox \n-jump\n+somersault\n s.\n",
		},
		{
			"@@ -3 +3,2 @@\n-e\n+at\n",
			"The quick brown fox jumps.",
			"@@ -1,7 +1,8 @@\n Th\n-e\n+at\n  qui\n",
		},
		{
			// Ambiguous context is grown until it's unique.
			"@@ -3 +3,2 @@\n-e\n+at\n",
			"The quick brown fox jumps.  The quick brown fox crashes.",
			"@@ -1,27 +1,28 @@\n Th\n-e\n+at\n  quick brown fox jumps. \n",
		},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.patch)[0]
		addContext(&p, []rune(tt.text), config.Default)
		if diff := cmp.Diff(tt.want, p.String()); diff != "" {
			t.Errorf("addContext(%q, %q) result is different [-want, +got]:\n%s", tt.patch, tt.text, diff)
		}
	}
}

func TestMake(t *testing.T) {
	const (
		text1 = "The quick brown fox jumps over the lazy dog."
		text2 = "That quick brown fox jumped over a lazy dog."
	)
	tests := []struct {
		name         string
		source, dest string
		want         string
	}{
		{"empty", "", "", ""},
		{
			"reverse",
			text2, text1,
			"@@ -1,8 +1,7 @@\n Th\n-at\n+e\n  qui\n@@ -21,17 +21,18 @@\n jump\n-ed\n+s\n  over \n-a\n+the\n  laz\n",
		},
		{
			"forward",
			text1, text2,
			"@@ -1,11 +1,12 @@\n Th\n-e\n+at\n  quick b\n@@ -22,18 +22,17 @@\n jump\n-s\n+ed\n  over \n-the\n+a\n  laz\n",
		},
		{
			"insert-only",
			"", "test",
			"@@ -0,0 +1,4 @@\n+test\n",
		},
		{
			"character-encoding",
			"`1234567890-=[]\\;',./", "~!@#$%^&*()_+{}|:\"<>?",
			"@@ -1,21 +1,21 @@\n-%601234567890-=%5B%5D%5C;',./\n+~!@#$%25%5E&*()_+%7B%7D%7C:%22%3C%3E?\n",
		},
		{
			"long-string-with-repeats",
			strings.Repeat("abcdef", 100), strings.Repeat("abcdef", 100) + "123",
			"@@ -573,28 +573,31 @@\n cdefabcdefabcdefabcdefabcdef\n+123\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToText(makePatches(tt.source, tt.dest, config.Default))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Make(%q, %q) result is different [-want, +got]:\n%s", tt.source, tt.dest, diff)
			}
		})
	}
}

func TestMakeEditsOnly(t *testing.T) {
	// Character decoding of an encoded patch yields the original edits.
	es := []E{{del, "`1234567890-=[]\\;',./"}, {ins, "~!@#$%^&*()_+{}|:\"<>?"}}
	patches := mustParse(t, "@@ -1,21 +1,21 @@\n-%601234567890-=%5B%5D%5C;',./\n+~!@#$%25%5E&*()_+%7B%7D%7C:%22%3C%3E?\n")
	if diff := cmp.Diff(es, patches[0].Edits); diff != "" {
		t.Errorf("Parse(...) result is different [-want, +got]:\n%s", diff)
	}

	// The source text and edits suffice to build patches.
	source := "The quick brown fox jumps over the lazy dog."
	chunks := impl.Diff([]rune(source), []rune("That quick brown fox jumped over a lazy dog."), config.Default, true)
	chunks = impl.Efficiency(impl.Semantic(chunks), config.Default.EditCost)
	got := ToText(Make(source, impl.ToEdits(chunks), config.Default))
	want := "@@ -1,11 +1,12 @@\n Th\n-e\n+at\n  quick b\n@@ -22,18 +22,17 @@\n jump\n-s\n+ed\n  over \n-the\n+a\n  laz\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Make(...) result is different [-want, +got]:\n%s", diff)
	}
}

func TestSplitMax(t *testing.T) {
	tests := []struct {
		name         string
		source, dest string
		want         string
	}{
		{
			"many-inserts",
			"abcdefghijklmnopqrstuvwxyz01234567890",
			"XabXcdXefXghXijXklXmnXopXqrXstXuvXwxXyzX01X23X45X67X89X0",
			"@@ -1,32 +1,46 @@\n+X\n ab\n+X\n cd\n+X\n ef\n+X\n gh\n+X\n ij\n+X\n kl\n+X\n mn\n+X\n op\n+X\n qr\n+X\n st\n+X\n uv\n+X\n wx\n+X\n yz\n+X\n 012345\n@@ -25,13 +39,18 @@\n zX01\n+X\n 23\n+X\n 45\n+X\n 67\n+X\n 89\n+X\n 0\n",
		},
		{
			"monster-delete",
			"abcdef1234567890123456789012345678901234567890123456789012345678901234567890uvwxyz",
			"abcdefuvwxyz",
			"@@ -3,78 +3,8 @@\n cdef\n-1234567890123456789012345678901234567890123456789012345678901234567890\n uvwx\n",
		},
		{
			"long-delete",
			"1234567890123456789012345678901234567890123456789012345678901234567890",
			"abc",
			"@@ -1,32 +1,4 @@\n-1234567890123456789012345678\n 9012\n@@ -29,32 +1,4 @@\n-9012345678901234567890123456\n 7890\n@@ -57,14 +1,3 @@\n-78901234567890\n+abc\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patches := makePatches(tt.source, tt.dest, config.Default)
			before := ToText(patches)
			got := ToText(SplitMax(patches, config.Default))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitMax(...) result is different [-want, +got]:\n%s", diff)
			}
			if after := ToText(patches); after != before {
				t.Errorf("SplitMax(...) modified its input: got %q, want %q", after, before)
			}
		})
	}
}

func TestSplitMaxDisabled(t *testing.T) {
	for _, maxBits := range []int{0, 8} {
		cfg := config.Default
		cfg.MatchMaxBits = maxBits
		patches := makePatches("1234567890123456789012345678901234567890123456789012345678901234567890", "abc", cfg)
		got := SplitMax(patches, cfg)
		if diff := cmp.Diff(patches, got); diff != "" {
			t.Errorf("SplitMax(...) with MatchMaxBits = %d result is different [-want, +got]:\n%s", maxBits, diff)
		}
	}
}

func TestAddPadding(t *testing.T) {
	tests := []struct {
		name         string
		source, dest string
		before       string
		after        string
	}{
		{
			"both-edges-full",
			"", "test",
			"@@ -0,0 +1,4 @@\n+test\n",
			"@@ -1,8 +1,12 @@\n %01%02%03%04\n+test\n %01%02%03%04\n",
		},
		{
			"both-edges-partial",
			"XY", "XtestY",
			"@@ -1,2 +1,6 @@\n X\n+test\n Y\n",
			"@@ -2,8 +2,12 @@\n %02%03%04X\n+test\n Y%01%02%03\n",
		},
		{
			"both-edges-none",
			"XXXXYYYY", "XXXXtestYYYY",
			"@@ -1,8 +1,12 @@\n XXXX\n+test\n YYYY\n",
			"@@ -5,8 +5,12 @@\n XXXX\n+test\n YYYY\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patches := makePatches(tt.source, tt.dest, config.Default)
			if diff := cmp.Diff(tt.before, ToText(patches)); diff != "" {
				t.Fatalf("Make(%q, %q) result is different [-want, +got]:\n%s", tt.source, tt.dest, diff)
			}
			pad := addPadding(patches, config.Default.PatchMargin)
			if diff := cmp.Diff(padding(config.Default.PatchMargin), pad); diff != "" {
				t.Errorf("addPadding(...) padding is different [-want, +got]:\n%s", diff)
			}
			if diff := cmp.Diff(tt.after, ToText(patches)); diff != "" {
				t.Errorf("addPadding(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}
