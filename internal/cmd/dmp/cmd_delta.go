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
	"strings"

	"github.com/spf13/cobra"
	"znkr.io/dmp"
)

func newDeltaCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delta",
		Short: "Encode and decode deltas",
	}
	cmd.AddCommand(newDeltaEncodeCmd(opts))
	cmd.AddCommand(newDeltaDecodeCmd())
	return cmd
}

func newDeltaEncodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode OLD NEW",
		Short: "Print the delta that turns OLD into NEW",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readFile(cmd.InOrStdin(), args[0], false)
			if err != nil {
				return err
			}
			y, err := readFile(cmd.InOrStdin(), args[1], false)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dmp.ToDelta(dmp.Diff(x, y, opts.diff()...)))
			return err
		},
	}
}

func newDeltaDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode OLD DELTA",
		Short: "Print the text that a delta turns OLD into",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readFile(cmd.InOrStdin(), args[0], false)
			if err != nil {
				return err
			}
			delta, err := readFile(cmd.InOrStdin(), args[1], false)
			if err != nil {
				return err
			}
			edits, err := dmp.FromDelta(x, strings.TrimSuffix(delta, "\n"))
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[1], err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dmp.Dest(edits))
			return err
		},
	}
}
