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
	"io"
	"strconv"
	"strings"

	"github.com/sboehler/stockledger/lib/common/date"
)

// WriteOptions control serialization.
type WriteOptions struct {
	// Presorted skips sorting the observations before writing. The output is
	// the same either way; sorting only reorders the ledger in memory.
	Presorted bool
}

// Write serializes the ledger to w: a header line, then one line per date
// found in any item, ascending. Fields are joined with Separator and written
// verbatim. Items without an observation on a date get an empty field.
func (l *Ledger) Write(w io.Writer, opts WriteOptions) error {
	if !opts.Presorted {
		l.Sort()
	}
	writer := bufio.NewWriter(w)
	header := append([]string{DateColumn}, l.items...)
	if err := writeRecord(writer, header); err != nil {
		return err
	}
	rec := make([]string, len(header))
	for _, row := range l.Rows() {
		rec[0] = row.Date.Format(date.Format)
		for i, c := range row.Cells {
			rec[i+1] = ""
			if c.Valid {
				rec[i+1] = strconv.Itoa(c.Quantity)
			}
		}
		if err := writeRecord(writer, rec); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func writeRecord(w *bufio.Writer, rec []string) error {
	if _, err := w.WriteString(strings.Join(rec, Separator)); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
