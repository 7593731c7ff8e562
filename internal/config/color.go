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

package config

// ColorConfig collects the ANSI escape sequences used to color terminal output. An empty sequence
// disables coloring for that element.
type ColorConfig struct {
	HunkHeader string
	Equal      string
	Delete     string
	Insert     string
}

// DefaultColors is the default terminal color configuration.
var DefaultColors = ColorConfig{
	HunkHeader: "\033[36m",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
}

// ColorReset resets all SGR attributes.
const ColorReset = "\033[0m"
