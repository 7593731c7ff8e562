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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// readFile reads a file, "-" reads stdin. If compressed is set, the content is zstd decompressed.
func readFile(stdin io.Reader, path string, compressed bool) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if compressed {
		data, err = decompressZstd(data)
		if err != nil {
			return "", fmt.Errorf("decompressing %s: %w", path, err)
		}
	}
	return string(data), nil
}

// writeOutput writes s to path or to w if path is empty. If compressed is set, the content is
// zstd compressed.
func writeOutput(w io.Writer, path, s string, compressed bool) error {
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := writeTo(f, s, compressed); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return f.Close()
	}
	return writeTo(w, s, compressed)
}

func writeTo(w io.Writer, s string, compressed bool) error {
	if !compressed {
		_, err := io.WriteString(w, s)
		return err
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := io.Copy(enc, bytes.NewReader([]byte(s))); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
