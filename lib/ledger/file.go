// Copyright 2021 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"bytes"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// FileOptions control how a ledger file is read and written.
type FileOptions struct {
	// Encoding is the character encoding of the file. Nil means UTF-8.
	Encoding encoding.Encoding
	// Presorted skips sorting before Save, see WriteOptions.
	Presorted bool
}

// Load reads the ledger stored at path.
func Load(path string, opts FileOptions) (res *Ledger, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &IOError{Op: "close", Path: path, Err: cerr})
			res = nil
		}
	}()
	var r io.Reader = f
	if opts.Encoding != nil {
		r = opts.Encoding.NewDecoder().Reader(f)
	}
	return Read(r, path)
}

// Save writes the ledger to path, replacing the file in full. The file is
// written to a temporary file first and then renamed, so a failed Save leaves
// the previous content in place.
func (l *Ledger) Save(path string, opts FileOptions) error {
	var buf bytes.Buffer
	if err := l.Encode(&buf, opts); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Encode writes the ledger to w in the character encoding of opts.
func (l *Ledger) Encode(w io.Writer, opts FileOptions) error {
	if opts.Encoding == nil {
		return l.Write(w, WriteOptions{Presorted: opts.Presorted})
	}
	tw := transform.NewWriter(w, opts.Encoding.NewEncoder())
	err := l.Write(tw, WriteOptions{Presorted: opts.Presorted})
	return multierr.Append(err, tw.Close())
}
