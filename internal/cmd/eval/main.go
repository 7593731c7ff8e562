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

// eval validates the diff and patch functions on the history of a git repository: for every file
// changed by a commit, it makes patches from the old to the new version, renders and parses them,
// applies them to the old version, and checks that the result is the new version. The same is
// done for deltas.
package main

import (
	"bufio"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"znkr.io/dmp"
	"znkr.io/dmp/internal/cmd/eval/internal/git"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
	validate bool
}

func main() {
	var cfg config
	cmd := &cobra.Command{
		Use:           "eval --repo DIR",
		Short:         "Validate diffs and patches on the history of a git repository",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	cmd.Flags().IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	cmd.Flags().IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	cmd.Flags().StringVar(&cfg.stats, "stats", "", "file to store stats in")
	cmd.Flags().BoolVar(&cfg.validate, "validate", true, "if validation should be performed")
	_ = cmd.MarkFlagRequired("repo")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// variants are the configurations every change is evaluated with.
var variants = map[string][]dmp.Option{
	"default":    nil,
	"minimal":    {dmp.Minimal()},
	"cost-limit": {dmp.CostLimit(1000)},
}

type result struct {
	commitID string
	file     string
	variant  string
	N, M     int
	D        int
	patches  int
	duration time.Duration
}

type change struct {
	commitID string
	filename string
	old, new string
}

func run(cfg *config) error {
	start := time.Now()

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}
	defer repo.Close()

	commitIDs, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("reading rev-list: %v", err)
	}
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		rand.Shuffle(len(commitIDs), func(i, j int) { commitIDs[i], commitIDs[j] = commitIDs[j], commitIDs[i] })
		commitIDs = commitIDs[:cfg.sample]
	}

	var stats *bufio.Writer
	if cfg.stats != "" {
		f, err := os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer f.Close()
		stats = bufio.NewWriter(f)
		defer stats.Flush()
		stats.WriteString("commit_id,file,variant,N,M,D,patches,duration_ns\n")
	}

	var (
		commitsDone atomic.Int64
		processed   atomic.Int64
		failures    atomic.Int64
	)
	notes := make(chan string)
	results := make(chan result)
	changes := make(chan change)

	// Read changes from the repository.
	var readers errgroup.Group
	readers.Go(func() error {
		defer close(changes)
		for _, commitID := range commitIDs {
			files, err := repo.DiffTree(commitID)
			if err != nil {
				notes <- fmt.Sprintf("%s: error processing commit: %v", commitID, err)
				continue
			}
			for _, file := range files {
				if strings.HasSuffix(file.Name, ".zip") || strings.HasSuffix(file.Name, ".syso") {
					continue
				}
				blobs, err := repo.Read(file.OldID, file.NewID)
				if err != nil {
					return err
				}
				changes <- change{commitID, file.Name, blobs[0], blobs[1]}
			}
			commitsDone.Add(1)
		}
		return nil
	})

	// Evaluate changes. The dispatcher runs with the readers so that it doesn't take a worker slot.
	var workers errgroup.Group
	workers.SetLimit(max(1, cfg.parallel))
	readers.Go(func() error {
		for c := range changes {
			workers.Go(func() error {
				for variant, opts := range variants {
					r, msgs := evaluate(c, opts, cfg.validate)
					r.variant = variant
					for _, msg := range msgs {
						failures.Add(1)
						notes <- fmt.Sprintf("%s:%s [%s]: %s", c.commitID, c.filename, variant, msg)
					}
					if stats != nil {
						results <- r
					}
				}
				processed.Add(1)
				return nil
			})
		}
		return nil
	})

	// Render progress and write stats until all workers are done.
	done := make(chan error)
	go func() {
		err := readers.Wait()
		if werr := workers.Wait(); err == nil {
			err = werr
		}
		done <- err
	}()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	render := func() {
		renderProgress(start, commitsDone.Load(), processed.Load(), len(commitIDs))
	}
	for {
		select {
		case note := <-notes:
			fmt.Printf("\r%s\n", note)
			render()
		case r := <-results:
			fmt.Fprintf(stats, "%s,%s,%s,%d,%d,%d,%d,%d\n", r.commitID, r.file, r.variant, r.N, r.M, r.D, r.patches, r.duration.Nanoseconds())
		case <-ticker.C:
			render()
		case err := <-done:
			render()
			fmt.Printf("\n")
			if err != nil {
				return err
			}
			if n := failures.Load(); n > 0 {
				return fmt.Errorf("%d validation failures", n)
			}
			return nil
		}
	}
}

// evaluate runs the diff and patch functions on a change and returns the stats and a description
// of every validation failure.
func evaluate(c change, opts []dmp.Option, validate bool) (result, []string) {
	r := result{
		commitID: c.commitID,
		file:     c.filename,
		N:        len([]rune(c.old)),
		M:        len([]rune(c.new)),
	}

	start := time.Now()
	patches := dmp.MakePatch(c.old, c.new, opts...)
	r.duration = time.Since(start)
	r.patches = len(patches)
	for _, p := range patches {
		r.D += dmp.Levenshtein(p.Edits)
	}
	if !validate {
		return r, nil
	}

	var msgs []string
	parsed, err := dmp.PatchesFromText(dmp.PatchesToText(patches))
	if err != nil {
		return r, append(msgs, fmt.Sprintf("failed to parse patches: %v", err))
	}
	patched, applied := dmp.Apply(parsed, c.old)
	for i, ok := range applied {
		if !ok {
			msgs = append(msgs, fmt.Sprintf("patch %d failed to apply", i))
		}
	}
	if patched != c.new {
		msgs = append(msgs, "file is different after applying patches")
	}

	edits := dmp.Diff(c.old, c.new, opts...)
	decoded, err := dmp.FromDelta(c.old, dmp.ToDelta(edits))
	switch {
	case err != nil:
		msgs = append(msgs, fmt.Sprintf("failed to decode delta: %v", err))
	case dmp.Dest(decoded) != c.new:
		msgs = append(msgs, "file is different after decoding delta")
	}
	return r, msgs
}

var bars = []string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

func renderProgress(start time.Time, commits, processed int64, total int) {
	const width = 60
	progress := 1.0
	if total > 0 {
		progress = float64(commits) / float64(total)
	}
	whole := int(progress * width)
	remainder := math.Mod(progress*width, 1)
	last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
	if width-whole < 1 {
		last = ""
	}
	bar := strings.Repeat(bars[len(bars)-1], whole) + last
	elapsed := time.Since(start).Seconds()
	fmt.Printf("\r[%-*s] % 3.1f%% (%.0f commits/s, %.0f evals/s) ", width, bar, 100*progress, float64(commits)/elapsed, float64(processed)/elapsed)
}
