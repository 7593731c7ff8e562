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

package pretty

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/dmp"
	"znkr.io/dmp/pretty/color"
)

var edits = []dmp.Edit{
	{Op: dmp.Equal, Text: "a\n"},
	{Op: dmp.Delete, Text: "<B>b</B>"},
	{Op: dmp.Insert, Text: "c&d"},
}

func TestHTML(t *testing.T) {
	want := `<span>a&para;<br></span><del style="background:#ffe6e6;">&lt;B&gt;b&lt;/B&gt;</del><ins style="background:#e6ffe6;">c&amp;d</ins>`
	if diff := cmp.Diff(want, HTML(edits)); diff != "" {
		t.Errorf("HTML(...) result is different [-want, +got]:\n%s", diff)
	}
}

func TestText(t *testing.T) {
	want := "a\n[-<B>b</B>-]{+c&d+}"
	if diff := cmp.Diff(want, Text(edits)); diff != "" {
		t.Errorf("Text(...) result is different [-want, +got]:\n%s", diff)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		name  string
		edits []dmp.Edit
		opts  []color.Option
		want  string
	}{
		{
			name:  "default",
			edits: edits,
			want:  "a\n\033[31m<B>b</B>\033[0m\033[32mc&d\033[0m",
		},
		{
			name:  "custom",
			edits: edits,
			opts:  []color.Option{color.Equals(2), color.Deletes(1, 31), color.Inserts()},
			want:  "\033[2ma\033[0m\n\033[1;31m<B>b</B>\033[0mc&d",
		},
		{
			name:  "multiline",
			edits: []dmp.Edit{{Op: dmp.Insert, Text: "x\n\ny"}},
			want:  "\033[32mx\033[0m\n\n\033[32my\033[0m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Colored(tt.edits, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Colored(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestPatches(t *testing.T) {
	patches := dmp.MakePatch("", "test")
	want := "\033[36m@@ -0,0 +1,4 @@\033[0m\n\033[32m+test\033[0m\n"
	if diff := cmp.Diff(want, Patches(patches)); diff != "" {
		t.Errorf("Patches(...) result is different [-want, +got]:\n%s", diff)
	}

	want = "@@ -0,0 +1,4 @@\n+test\n"
	got := Patches(patches, color.HunkHeaders(), color.Inserts())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Patches(...) without colors result is different [-want, +got]:\n%s", diff)
	}
}
