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

// Package git provides a simplified git interface for reading a repository for evaluations.
package git

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// nullID is the object ID git uses for a missing file.
const nullID = "0000000000000000000000000000000000000000"

// Repo is a git repository. Blobs are read through a single long running git cat-file process.
type Repo struct {
	dir string

	mu  sync.Mutex // guards cat
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// Open opens the repository in dir.
func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cmd := exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %v", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %v", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Repo{dir: dir, cmd: cmd, in: in, out: bufio.NewReader(out)}, nil
}

// Close stops the cat-file process.
func (r *Repo) Close() error {
	r.in.Close()
	return r.cmd.Wait()
}

// RevList returns the IDs of all non-merge commits reachable from HEAD.
func (r *Repo) RevList() ([]string, error) {
	out, err := git("-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// FileDiff describes a file changed by a commit.
type FileDiff struct {
	Name  string
	OldID string
	NewID string
}

// DiffTree returns the files changed by a commit.
func (r *Repo) DiffTree(commit string) ([]FileDiff, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", commit)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(out, "\n")[1:]
	ret := make([]FileDiff, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			return nil, fmt.Errorf("diff-tree file not starting with ':': %q", line)
		}
		fields := strings.Fields(line[1:])
		if len(fields) < 6 {
			return nil, fmt.Errorf("diff-tree line with %d fields: %q", len(fields), line)
		}
		ret = append(ret, FileDiff{
			Name:  fields[5],
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return ret, nil
}

// Read returns the contents of blobs. The null ID reads as an empty blob.
func (r *Repo) Read(ids ...string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(ids))
	for i, id := range ids {
		if id == nullID {
			continue
		}
		if _, err := fmt.Fprintln(r.in, id); err != nil {
			return nil, fmt.Errorf("writing to cat-file: %v", err)
		}
		// The header is "<id> <type> <size>".
		header, err := r.out.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading from cat-file: %v", err)
		}
		fields := strings.Fields(header)
		if len(fields) != 3 || fields[0] != id {
			return nil, fmt.Errorf("unexpected cat-file header for %s: %q", id, header)
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("invalid size in cat-file header: %v", err)
		}
		buf := make([]byte, n+1) // content is followed by a newline
		if _, err := io.ReadFull(r.out, buf); err != nil {
			return nil, fmt.Errorf("reading from cat-file: %v", err)
		}
		out[i] = string(buf[:n])
	}
	return out, nil
}

func git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %v\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
