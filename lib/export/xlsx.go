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

// Package export renders ledgers in formats other than the CSV file.
package export

import (
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"

	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/ledger"
)

// SheetName is the name of the worksheet holding the ledger.
const SheetName = "Ledger"

// WriteXLSX writes the ledger as a workbook with a single sheet laid out like
// the CSV file: a header row, then one row per date with numeric cells.
func WriteXLSX(w io.Writer, l *ledger.Ledger) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	header := append([]string{ledger.DateColumn}, l.Items()...)
	for i, name := range header {
		if err := setCell(f, i+1, 1, name); err != nil {
			return err
		}
	}
	for r, row := range l.Rows() {
		if err := setCell(f, 1, r+2, row.Date.Format(date.Format)); err != nil {
			return err
		}
		for i, c := range row.Cells {
			if !c.Valid {
				continue
			}
			if err := setCell(f, i+2, r+2, c.Quantity); err != nil {
				return err
			}
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return err
	}
	return f.Write(w)
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, name, value)
}
