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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"znkr.io/dmp"
)

// options holds the settings shared by all commands. Unset fields use the library defaults.
type options struct {
	EditCost             *int     `toml:"edit-cost"`
	MatchDistance        *int     `toml:"match-distance"`
	MatchThreshold       *float64 `toml:"match-threshold"`
	MatchMaxBits         *int     `toml:"match-max-bits"`
	PatchMargin          *int     `toml:"patch-margin"`
	PatchDeleteThreshold *float64 `toml:"patch-delete-threshold"`
	Minimal              *bool    `toml:"minimal"`
	CostLimit            *int     `toml:"cost-limit"`
	Color                *string  `toml:"color"`
}

func registerFlags(fs *pflag.FlagSet) {
	fs.Int("edit-cost", 4, "cost of an empty edit operation for the efficiency cleanup")
	fs.Int("match-distance", 1000, "how far from the expected location a match may be")
	fs.Float64("match-threshold", 0.5, "score at which a match is given up (0.0 = exact, 1.0 = loose)")
	fs.Int("match-max-bits", 32, "maximum pattern length for fuzzy matching (0 = unbounded)")
	fs.Int("patch-margin", 4, "runes of context around a patch")
	fs.Float64("patch-delete-threshold", 0.5, "how closely large deletions must match (0.0 = exact, 1.0 = loose)")
	fs.Bool("minimal", false, "disable speedups that can produce non-minimal diffs")
	fs.Int("cost-limit", 0, "maximum number of edit steps to explore (0 = unlimited)")
	fs.String("color", "auto", "colorize output: auto, always, or never")
}

// load reads options from a TOML file.
func (o *options) load(path string) error {
	md, err := toml.DecodeFile(path, o)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("reading config %s: unknown keys %v", path, undecoded)
	}
	return nil
}

// override sets all options that were set explicitly by flags.
func (o *options) override(fs *pflag.FlagSet) error {
	var err error
	setInt := func(name string, dst **int) {
		if err != nil || !fs.Changed(name) {
			return
		}
		var v int
		v, err = fs.GetInt(name)
		*dst = &v
	}
	setFloat := func(name string, dst **float64) {
		if err != nil || !fs.Changed(name) {
			return
		}
		var v float64
		v, err = fs.GetFloat64(name)
		*dst = &v
	}
	setInt("edit-cost", &o.EditCost)
	setInt("match-distance", &o.MatchDistance)
	setFloat("match-threshold", &o.MatchThreshold)
	setInt("match-max-bits", &o.MatchMaxBits)
	setInt("patch-margin", &o.PatchMargin)
	setFloat("patch-delete-threshold", &o.PatchDeleteThreshold)
	setInt("cost-limit", &o.CostLimit)
	if err != nil {
		return err
	}
	if fs.Changed("minimal") {
		v, err := fs.GetBool("minimal")
		if err != nil {
			return err
		}
		o.Minimal = &v
	}
	if fs.Changed("color") {
		v, err := fs.GetString("color")
		if err != nil {
			return err
		}
		o.Color = &v
	}
	if o.Color != nil {
		switch *o.Color {
		case "auto", "always", "never":
		default:
			return fmt.Errorf("invalid color mode %q, want auto, always, or never", *o.Color)
		}
	}
	return nil
}

// diff returns the options for the diff functions.
func (o *options) diff() []dmp.Option {
	var opts []dmp.Option
	if o.Minimal != nil && *o.Minimal {
		opts = append(opts, dmp.Minimal())
	}
	if o.CostLimit != nil {
		opts = append(opts, dmp.CostLimit(*o.CostLimit))
	}
	return opts
}

// match returns the options for Match.
func (o *options) match() []dmp.Option {
	var opts []dmp.Option
	if o.MatchDistance != nil {
		opts = append(opts, dmp.MatchDistance(*o.MatchDistance))
	}
	if o.MatchThreshold != nil {
		opts = append(opts, dmp.MatchThreshold(*o.MatchThreshold))
	}
	if o.MatchMaxBits != nil {
		opts = append(opts, dmp.MatchMaxBits(*o.MatchMaxBits))
	}
	return opts
}

// makePatch returns the options for MakePatch.
func (o *options) makePatch() []dmp.Option {
	opts := o.diff()
	if o.EditCost != nil {
		opts = append(opts, dmp.EditCost(*o.EditCost))
	}
	if o.MatchMaxBits != nil {
		opts = append(opts, dmp.MatchMaxBits(*o.MatchMaxBits))
	}
	if o.PatchMargin != nil {
		opts = append(opts, dmp.PatchMargin(*o.PatchMargin))
	}
	return opts
}

// apply returns the options for Apply.
func (o *options) apply() []dmp.Option {
	opts := append(o.diff(), o.match()...)
	if o.PatchMargin != nil {
		opts = append(opts, dmp.PatchMargin(*o.PatchMargin))
	}
	if o.PatchDeleteThreshold != nil {
		opts = append(opts, dmp.PatchDeleteThreshold(*o.PatchDeleteThreshold))
	}
	return opts
}

// colorize reports whether output to w should be colored.
func (o *options) colorize(w io.Writer) bool {
	mode := "auto"
	if o.Color != nil {
		mode = *o.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
