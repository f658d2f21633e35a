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
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("parse error")
	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("i/o error")
	// ErrUnknownItem is returned when an item is not part of the ledger.
	ErrUnknownItem = errors.New("item does not exist")
	// ErrEntryNotFound is returned when an item has no observation on a date.
	ErrEntryNotFound = errors.New("entry does not exist")
	// ErrDuplicateEntry is returned when an item already has an observation on a date.
	ErrDuplicateEntry = errors.New("entry already exists")
)

// ParseError describes malformed ledger input.
type ParseError struct {
	Source string
	Line   int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	s := fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}
	return s
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) hold for parse errors.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IOError describes a failure to read or write a ledger file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) hold for I/O errors.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
