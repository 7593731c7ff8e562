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

// Package benchmarks compares the diff and patch functions with other Go diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/dmp"
)

// Impl is a line diff implementation. Diff returns the lines of y prefixed with ' ', '-', or '+'.
// Not every implementation produces a unified diff, but the output is close enough to count
// edits.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "dmp",
		Diff: func(x, y []byte) []byte {
			return format(dmp.DiffLines(string(x), string(y)))
		},
	},
	{
		Name: "dmp-minimal",
		Diff: func(x, y []byte) []byte {
			return format(dmp.DiffLines(string(x), string(y), dmp.Minimal()))
		},
	},
	{
		Name: "dmp-cost-limit",
		Diff: func(x, y []byte) []byte {
			return format(dmp.DiffLines(string(x), string(y), dmp.CostLimit(256)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			sergi := diffmatchpatch.New()
			rx, ry, lines := sergi.DiffLinesToRunes(string(x), string(y))
			diffs := sergi.DiffCharsToLines(sergi.DiffMainRunes(rx, ry, false), lines)
			es := make([]dmp.Edit, len(diffs))
			for i, d := range diffs {
				es[i] = dmp.Edit{Op: sergiOps[d.Type], Text: d.Text}
			}
			return format(es)
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			var es []dmp.Edit
			a := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				es = append(es, dmp.Edit{Op: dmp.Equal, Text: string(bytes.Join(d.x[a:ch.A], nil))})
				es = append(es, dmp.Edit{Op: dmp.Delete, Text: string(bytes.Join(d.x[ch.A:ch.A+ch.Del], nil))})
				es = append(es, dmp.Edit{Op: dmp.Insert, Text: string(bytes.Join(d.y[ch.B:ch.B+ch.Ins], nil))})
				a = ch.A + ch.Del
			}
			es = append(es, dmp.Edit{Op: dmp.Equal, Text: string(bytes.Join(d.x[a:], nil))})
			return format(es)
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

var sergiOps = map[diffmatchpatch.Operation]dmp.Op{
	diffmatchpatch.DiffEqual:  dmp.Equal,
	diffmatchpatch.DiffDelete: dmp.Delete,
	diffmatchpatch.DiffInsert: dmp.Insert,
}

var prefixes = map[dmp.Op]string{
	dmp.Equal:  " ",
	dmp.Delete: "-",
	dmp.Insert: "+",
}

// format writes one line per line of text in es.
func format(es []dmp.Edit) []byte {
	var buf bytes.Buffer
	for _, e := range es {
		for _, line := range strings.SplitAfter(e.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefixes[e.Op])
			buf.WriteString(line)
		}
	}
	return buf.Bytes()
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
