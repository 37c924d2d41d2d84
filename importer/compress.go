// Copyright 2026 Poiesic Systems
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

package importer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is picked from the file extension: ".gz" and ".zst" are
// compressed, anything else is plain YAML.
const (
	extGzip = ".gz"
	extZstd = ".zst"
)

// stackedCloser closes the codec first and the file last.
type stackedCloser struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// openDocument opens path for reading, decompressing by extension.
func openDocument(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case extGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case extZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		closeDec := func() error {
			dec.Close()
			return nil
		}
		return &stackedCloser{Reader: dec, closers: []func() error{closeDec, f.Close}}, nil
	default:
		return f, nil
	}
}

// createDocument creates path for writing, compressing by extension. The
// returned writer must be closed to flush the codec.
func createDocument(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case extGzip:
		zw := gzip.NewWriter(f)
		return &stackedCloser{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	case extZstd:
		enc, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedCloser{Writer: enc, closers: []func() error{enc.Close, f.Close}}, nil
	default:
		return f, nil
	}
}
