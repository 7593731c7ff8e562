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

// dmpbench is a small CLI to manually run the diffing implementations used for benchmarking.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/tools/txtar"
	"znkr.io/dmp/internal/benchmarks"
)

func main() {
	var lib, archive string
	cmd := &cobra.Command{
		Use:           "dmpbench [--lib NAME] (--txtar FILE | X Y)",
		Short:         "Run one of the benchmarked diff implementations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if archive != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			i := slices.IndexFunc(benchmarks.Impls, func(impl benchmarks.Impl) bool { return impl.Name == lib })
			if i < 0 {
				return fmt.Errorf("lib not found %q", lib)
			}
			x, y, err := inputs(archive, args)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(benchmarks.Impls[i].Diff(x, y))
			return err
		},
	}
	cmd.Flags().StringVar(&lib, "lib", "dmp", "library to use for diffing")
	cmd.Flags().StringVar(&archive, "txtar", "", "use testdata txtar file instead of two input files")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func inputs(archive string, args []string) (x, y []byte, err error) {
	if archive == "" {
		if x, err = os.ReadFile(args[0]); err != nil {
			return nil, nil, err
		}
		y, err = os.ReadFile(args[1])
		return x, y, err
	}
	ar, err := txtar.ParseFile(archive)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			x = f.Data
		case "y":
			y = f.Data
		}
	}
	return x, y, nil
}
