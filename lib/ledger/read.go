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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sboehler/stockledger/lib/common/date"
)

const (
	bom = "\ufeff"

	// Separator separates the fields of a record. Fields are never quoted.
	Separator = ","

	maxLineLength = 1 << 20
)

// Read parses a ledger from r. The source is used in error messages only.
//
// Every non-empty line is a record whose fields are separated by Separator,
// with no quoting. The first record is the header: DateColumn followed by the
// item names. Every following record holds a date and one cell per item.
// Cells which do not hold an integer are skipped. Observations are kept in
// file order, duplicates included.
func Read(r io.Reader, source string) (*Ledger, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineLength)

	p := parser{scanner: scanner, source: source, ledger: newLedger()}
	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	for {
		err := p.parseRow()
		if err == io.EOF {
			return p.ledger, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

type parser struct {
	scanner *bufio.Scanner
	source  string
	ledger  *Ledger
	line    int
	width   int
}

// read returns the fields of the next non-empty line and its line number.
func (p *parser) read() ([]string, int, error) {
	for p.scanner.Scan() {
		p.line++
		text := strings.TrimSuffix(p.scanner.Text(), "\r")
		if text == "" {
			continue
		}
		return strings.Split(text, Separator), p.line, nil
	}
	err := p.scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return nil, 0, &ParseError{Source: p.source, Line: p.line + 1, Msg: "line too long"}
	}
	if err != nil {
		return nil, 0, &IOError{Op: "read", Path: p.source, Err: err}
	}
	return nil, 0, io.EOF
}

func (p *parser) parseHeader() error {
	header, line, err := p.read()
	if err == io.EOF {
		return &ParseError{Source: p.source, Line: 1, Msg: "missing header"}
	}
	if err != nil {
		return err
	}
	if marker := strings.TrimPrefix(header[0], bom); marker != DateColumn {
		return &ParseError{Source: p.source, Line: line, Msg: fmt.Sprintf("first column is %q, want %q", marker, DateColumn)}
	}
	for _, item := range header[1:] {
		if !p.ledger.addItem(item) {
			return &ParseError{Source: p.source, Line: line, Msg: fmt.Sprintf("duplicate item %q", item)}
		}
	}
	p.width = len(header)
	return nil
}

func (p *parser) parseRow() error {
	rec, line, err := p.read()
	if err != nil {
		return err
	}
	if len(rec) != p.width {
		return &ParseError{Source: p.source, Line: line, Msg: fmt.Sprintf("got %d fields, want %d", len(rec), p.width)}
	}
	d, err := date.Parse(rec[0])
	if err != nil {
		return &ParseError{Source: p.source, Line: line, Msg: "invalid date", Err: err}
	}
	for i, cell := range rec[1:] {
		q, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			// Blank or non-numeric cells carry no observation.
			continue
		}
		item := p.ledger.items[i]
		p.ledger.series[item] = append(p.ledger.series[item], Observation{Date: d, Quantity: q})
	}
	return nil
}
