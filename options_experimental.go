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

//go:build experimental

package dmp

import "znkr.io/dmp/internal/config"

// Parallel diffs independent parts of the inputs concurrently. The result is identical to a
// sequential diff.
//
// This option is experimental and only available with the build tag "experimental".
func Parallel() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Parallel = true
		return config.Parallel
	}
}
