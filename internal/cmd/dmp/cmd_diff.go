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

	"github.com/spf13/cobra"
	"znkr.io/dmp"
	"znkr.io/dmp/pretty"
)

func newDiffCmd(opts *options) *cobra.Command {
	var mode, format, cleanup string

	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Show the differences between two files",
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
			edits, err := diff(x, y, mode, cleanup, opts)
			if err != nil {
				return err
			}
			return printEdits(cmd.OutOrStdout(), edits, format, opts)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "auto", "diff granularity: auto, chars, words, or lines")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, html, or delta")
	cmd.Flags().StringVar(&cleanup, "cleanup", "semantic", "cleanup pass: none, semantic, lossless, or efficiency")

	return cmd
}

func diff(x, y, mode, cleanup string, opts *options) ([]dmp.Edit, error) {
	var edits []dmp.Edit
	switch mode {
	case "auto":
		edits = dmp.Diff(x, y, opts.diff()...)
	case "chars":
		edits = dmp.DiffChars(x, y, opts.diff()...)
	case "words":
		edits = dmp.DiffWords(x, y, opts.diff()...)
	case "lines":
		edits = dmp.DiffLines(x, y, opts.diff()...)
	default:
		return nil, fmt.Errorf("invalid diff mode %q", mode)
	}

	switch cleanup {
	case "none":
	case "semantic":
		edits = dmp.CleanupSemantic(edits)
	case "lossless":
		edits = dmp.CleanupSemanticLossless(edits)
	case "efficiency":
		var eopts []dmp.Option
		if opts.EditCost != nil {
			eopts = append(eopts, dmp.EditCost(*opts.EditCost))
		}
		edits = dmp.CleanupEfficiency(edits, eopts...)
	default:
		return nil, fmt.Errorf("invalid cleanup %q", cleanup)
	}
	return edits, nil
}

func printEdits(w io.Writer, edits []dmp.Edit, format string, opts *options) error {
	var out string
	switch format {
	case "text":
		if opts.colorize(w) {
			out = pretty.Colored(edits)
		} else {
			out = pretty.Text(edits)
		}
	case "html":
		out = pretty.HTML(edits) + "\n"
	case "delta":
		out = dmp.ToDelta(edits) + "\n"
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
	_, err := io.WriteString(w, out)
	return err
}
