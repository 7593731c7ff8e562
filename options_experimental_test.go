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

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParallel(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 10 {
		// Large enough for the bisection to run its halves concurrently.
		x := randText(rng, 20000)
		y := mutate(rng, mutate(rng, x))
		want := DiffChars(x, y, Minimal())
		got := DiffChars(x, y, Minimal(), Parallel())
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("DiffChars(..., Parallel()) result is different [-want, +got]:\n%s", diff)
		}
	}
}
