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

// Package pretty renders edit scripts and patches for humans, either as HTML or as text for a
// terminal.
package pretty

import (
	"strings"

	"znkr.io/dmp"
	"znkr.io/dmp/internal/config"
	"znkr.io/dmp/pretty/color"
)

const (
	openInsert  = `<ins style="background:#e6ffe6;">`
	closeInsert = `</ins>`
	openDelete  = `<del style="background:#ffe6e6;">`
	closeDelete = `</del>`
	openEqual   = `<span>`
	closeEqual  = `</span>`
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\n", "&para;<br>")

// HTML renders an edit script as an HTML fragment. Insertions are rendered as <ins> and deletions
// as <del> elements, newlines are made visible with a pilcrow.
func HTML(edits []dmp.Edit) string {
	var sb strings.Builder
	for _, e := range edits {
		switch e.Op {
		case dmp.Insert:
			sb.WriteString(openInsert)
			htmlEscaper.WriteString(&sb, e.Text)
			sb.WriteString(closeInsert)
		case dmp.Delete:
			sb.WriteString(openDelete)
			htmlEscaper.WriteString(&sb, e.Text)
			sb.WriteString(closeDelete)
		case dmp.Equal:
			sb.WriteString(openEqual)
			htmlEscaper.WriteString(&sb, e.Text)
			sb.WriteString(closeEqual)
		}
	}
	return sb.String()
}

// Text renders an edit script inline as plain text, similar to "git diff --word-diff". Deletions
// are rendered as "[-text-]" and insertions as "{+text+}".
func Text(edits []dmp.Edit) string {
	var sb strings.Builder
	for _, e := range edits {
		switch e.Op {
		case dmp.Insert:
			sb.WriteString("{+")
			sb.WriteString(e.Text)
			sb.WriteString("+}")
		case dmp.Delete:
			sb.WriteString("[-")
			sb.WriteString(e.Text)
			sb.WriteString("-]")
		case dmp.Equal:
			sb.WriteString(e.Text)
		}
	}
	return sb.String()
}

// Colored renders an edit script inline as text with ANSI colors. By default, deletions are
// red and insertions green. Use the options in [color] to change the colors.
func Colored(edits []dmp.Edit, opts ...color.Option) string {
	cc := color.FromOptions(opts)
	var sb strings.Builder
	for _, e := range edits {
		switch e.Op {
		case dmp.Insert:
			colorize(&sb, cc.Insert, e.Text)
		case dmp.Delete:
			colorize(&sb, cc.Delete, e.Text)
		case dmp.Equal:
			colorize(&sb, cc.Equal, e.Text)
		}
	}
	return sb.String()
}

// Patches renders patches in text form with ANSI colors. By default, headers are cyan, deletions
// red, and insertions green. Use the options in [color] to change the colors.
func Patches(patches []dmp.Patch, opts ...color.Option) string {
	cc := color.FromOptions(opts)
	var sb strings.Builder
	for line := range strings.Lines(dmp.PatchesToText(patches)) {
		var code string
		switch line[0] {
		case '@':
			code = cc.HunkHeader
		case '-':
			code = cc.Delete
		case '+':
			code = cc.Insert
		case ' ':
			code = cc.Equal
		}
		colorize(&sb, code, line)
	}
	return sb.String()
}

// colorize writes text in color. The color is reset before every newline, so that the color
// doesn't bleed into the next line.
func colorize(sb *strings.Builder, code, text string) {
	if code == "" {
		sb.WriteString(text)
		return
	}
	for line := range strings.Lines(text) {
		content, nl := strings.CutSuffix(line, "\n")
		if content != "" {
			sb.WriteString(code)
			sb.WriteString(content)
			sb.WriteString(config.ColorReset)
		}
		if nl {
			sb.WriteByte('\n')
		}
	}
}
