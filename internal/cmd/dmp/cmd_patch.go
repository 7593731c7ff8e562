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
	"znkr.io/dmp/pretty"
)

func newPatchCmd(opts *options) *cobra.Command {
	var output string
	var compressed bool

	cmd := &cobra.Command{
		Use:   "patch OLD NEW",
		Short: "Print patches that turn OLD into NEW",
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
			patches := dmp.MakePatch(x, y, opts.makePatch()...)
			if output == "" && !compressed && opts.colorize(cmd.OutOrStdout()) {
				_, err := fmt.Fprint(cmd.OutOrStdout(), pretty.Patches(patches))
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, dmp.PatchesToText(patches), compressed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write patches to a file instead of stdout")
	cmd.Flags().BoolVar(&compressed, "zstd", false, "compress the patches with zstd")

	return cmd
}

func newApplyCmd(opts *options) *cobra.Command {
	var output string
	var compressed, verbose bool

	cmd := &cobra.Command{
		Use:   "apply PATCH TARGET",
		Short: "Apply patches to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readFile(cmd.InOrStdin(), args[0], compressed)
			if err != nil {
				return err
			}
			patches, err := dmp.PatchesFromText(text)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			target, err := readFile(cmd.InOrStdin(), args[1], false)
			if err != nil {
				return err
			}

			result, applied := dmp.Apply(patches, target, opts.apply()...)
			failed := 0
			for i, ok := range applied {
				if !ok {
					failed++
				}
				if verbose {
					fmt.Fprintf(cmd.ErrOrStderr(), "patch %d: applied=%v\n", i+1, ok)
				}
			}
			if err := writeOutput(cmd.OutOrStdout(), output, result, false); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d patches failed to apply", failed, len(applied))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&compressed, "zstd", false, "the patch file is compressed with zstd")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report the result of every patch on stderr")

	return cmd
}
