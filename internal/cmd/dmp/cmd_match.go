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

	"github.com/spf13/cobra"
	"znkr.io/dmp"
)

func newMatchCmd(opts *options) *cobra.Command {
	var loc int

	cmd := &cobra.Command{
		Use:   "match FILE PATTERN",
		Short: "Print the rune offset of the best match of PATTERN in FILE near --loc",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readFile(cmd.InOrStdin(), args[0], false)
			if err != nil {
				return err
			}
			x, err := dmp.Match(text, args[1], loc, opts.match()...)
			if err != nil {
				return err
			}
			if x < 0 {
				return fmt.Errorf("no match for %q", args[1])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), x)
			return err
		},
	}

	cmd.Flags().IntVar(&loc, "loc", 0, "expected rune offset of the match")

	return cmd
}
