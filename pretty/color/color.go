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

// Package color provides options to configure the colors used by [pretty.Colored] and
// [pretty.Patches].
//
// Colors are specified as SGR parameters, e.g., 31 for a red foreground or 1 for bold. See
// https://en.wikipedia.org/wiki/ANSI_escape_code#SGR for a list.
//
// [pretty.Colored]: https://pkg.go.dev/znkr.io/dmp/pretty#Colored
// [pretty.Patches]: https://pkg.go.dev/znkr.io/dmp/pretty#Patches
package color

import (
	"fmt"
	"strings"

	"znkr.io/dmp/internal/config"
)

// A Option makes it possible to configure custom colors.
type Option func(*config.ColorConfig)

// HunkHeaders colors patch headers, the "@@ ... @@" part of a patch. Without parameters, headers
// aren't colored.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Equals colors text that's present in both inputs. Without parameters, the text isn't colored.
func Equals(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Equal = code
	}
}

// Deletes colors deleted text. Without parameters, the text isn't colored.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted text. Without parameters, the text isn't colored.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// FromOptions creates a color configuration from the default colors and a set of options.
func FromOptions(opts []Option) config.ColorConfig {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return cc
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
