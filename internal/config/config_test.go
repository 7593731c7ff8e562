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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/dmp"
	"znkr.io/dmp/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "margin",
			opts: []config.Option{
				dmp.PatchMargin(8),
			},
			want: func() config.Config {
				cfg := config.Default
				cfg.PatchMargin = 8
				return cfg
			}(),
		},
		{
			name: "minimal-cost-limit",
			opts: []config.Option{
				dmp.Minimal(),
				dmp.CostLimit(100),
			},
			want: func() config.Config {
				cfg := config.Default
				cfg.Minimal = true
				cfg.CostLimit = 100
				return cfg
			}(),
		},
		{
			name: "override",
			opts: []config.Option{
				dmp.MatchDistance(10),
				dmp.MatchThreshold(0.8),
				dmp.MatchDistance(20),
			},
			want: func() config.Config {
				cfg := config.Default
				cfg.MatchDistance = 20
				cfg.MatchThreshold = 0.8
				return cfg
			}(),
		},
		{
			name: "clamped",
			opts: []config.Option{
				dmp.EditCost(-1),
				dmp.MatchMaxBits(-1),
			},
			want: func() config.Config {
				cfg := config.Default
				cfg.EditCost = 0
				cfg.MatchMaxBits = 0
				return cfg
			}(),
		},
		{
			name: "everything",
			opts: []config.Option{
				dmp.EditCost(5),
				dmp.MatchDistance(100),
				dmp.MatchThreshold(0.25),
				dmp.MatchMaxBits(64),
				dmp.PatchMargin(2),
				dmp.PatchDeleteThreshold(0.75),
				dmp.Minimal(),
				dmp.CostLimit(1000),
			},
			want: config.Config{
				EditCost:             5,
				MatchDistance:        100,
				MatchThreshold:       0.25,
				MatchMaxBits:         64,
				PatchMargin:          2,
				PatchDeleteThreshold: 0.75,
				Minimal:              true,
				CostLimit:            1000,
				Parallel:             false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.PatchFlags)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		want := "Option dmp.PatchMargin not allowed here"
		if got := recover(); got != want {
			t.Errorf("FromOptions(...) panic = %v, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{dmp.Minimal(), dmp.PatchMargin(1)}, config.DiffFlags)
}
