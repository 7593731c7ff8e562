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

// dmp computes, applies, and inspects character level diffs and patches.
//
// Usage:
//
//	dmp diff OLD NEW          print the differences between two files
//	dmp delta encode OLD NEW  print the delta that turns OLD into NEW
//	dmp delta decode OLD DELTA
//	dmp patch OLD NEW         print patches that turn OLD into NEW
//	dmp apply PATCH TARGET    apply patches to a file
//	dmp match FILE PATTERN    locate a pattern in a file
//	dmp git ...               act as GIT_EXTERNAL_DIFF
//
// The options of the diff, match, and patch algorithms can be set with flags or in a TOML file
// passed with --config. Flags take precedence over the file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	opts := new(options)

	root := &cobra.Command{
		Use:           "dmp",
		Short:         "Character level diffs and fuzzy patches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := opts.load(configFile); err != nil {
					return err
				}
			}
			return opts.override(cmd.Flags())
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "TOML file with default options")
	registerFlags(root.PersistentFlags())

	root.AddCommand(newDiffCmd(opts))
	root.AddCommand(newDeltaCmd(opts))
	root.AddCommand(newPatchCmd(opts))
	root.AddCommand(newApplyCmd(opts))
	root.AddCommand(newMatchCmd(opts))
	root.AddCommand(newGitCmd(opts))
	return root
}
