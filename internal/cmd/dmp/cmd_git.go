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
	"znkr.io/dmp/pretty"
)

const devNull = "/dev/null"

// newGitCmd implements the GIT_EXTERNAL_DIFF protocol. The diff is rendered as a word diff, to use
// it run
//
//	GIT_EXTERNAL_DIFF="dmp git" git diff
func newGitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "git PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Show a word diff, for use as GIT_EXTERNAL_DIFF",
		Args:  cobra.MinimumNArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, oldFile, oldHex, newFile, newHex, newMode := args[0], args[1], args[2], args[4], args[5], args[6]

			var x, y string
			var err error
			if oldFile != devNull {
				if x, err = readFile(cmd.InOrStdin(), oldFile, false); err != nil {
					return err
				}
			}
			if newFile != devNull {
				if y, err = readFile(cmd.InOrStdin(), newFile, false); err != nil {
					return err
				}
			}

			edits := dmp.CleanupSemantic(dmp.DiffWords(x, y, opts.diff()...))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "diff --git a/%s b/%s\n", path, path)
			fmt.Fprintf(out, "index %s..%s %s\n", short(oldHex), short(newHex), newMode)
			fmt.Fprintf(out, "--- a/%s\n", path)
			fmt.Fprintf(out, "+++ b/%s\n", path)
			text := pretty.Text(edits)
			if opts.colorize(out) {
				text = pretty.Colored(edits)
			}
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			_, err = fmt.Fprint(out, text)
			return err
		},
	}
}

func short(hex string) string {
	return hex[:min(len(hex), 10)]
}
