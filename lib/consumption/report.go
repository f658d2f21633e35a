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

package consumption

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sboehler/stockledger/lib/common/compare"
	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/common/table"
	"github.com/sboehler/stockledger/lib/ledger"
)

// Line summarizes the consumption of one item.
type Line struct {
	Item         string
	Observations int
	Latest       ledger.Cell
	// Rate is the average rate of decrease, or NoSignal.
	Rate float64
}

// Report summarizes the consumption of every item of a ledger.
type Report struct {
	Period date.Period
	Lines  []Line
}

var byDate = compare.By(func(o ledger.Observation) time.Time { return o.Date }, compare.Time)

// NewReport computes a report from the observations within period, in
// ascending date order. Items are reported in column order.
func NewReport(l *ledger.Ledger, period date.Period) (*Report, error) {
	r := &Report{Period: period}
	for _, item := range l.Items() {
		obs, err := l.Observations(item)
		if err != nil {
			return nil, err
		}
		compare.SortStable(obs, byDate)
		var quantities []int
		for _, o := range obs {
			if period.Contains(o.Date) {
				quantities = append(quantities, o.Quantity)
			}
		}
		line := Line{
			Item:         item,
			Observations: len(quantities),
			Rate:         AverageRateOfDecrease(quantities),
		}
		if n := len(quantities); n > 0 {
			line.Latest = ledger.Cell{Quantity: quantities[n-1], Valid: true}
		}
		r.Lines = append(r.Lines, line)
	}
	return r, nil
}

// Table renders the report as a table.
func (r *Report) Table() *table.Table {
	tbl := table.New(1, 3)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Item", table.Center).
		AddText("Observations", table.Center).
		AddText("Latest", table.Center).
		AddText("Avg. decrease", table.Center)
	tbl.AddSeparatorRow()
	for _, line := range r.Lines {
		row := tbl.AddRow().AddText(line.Item, table.Left).AddInt(line.Observations)
		if line.Latest.Valid {
			row.AddInt(line.Latest.Quantity)
		} else {
			row.AddEmpty()
		}
		if line.Rate == NoSignal {
			row.AddEmpty()
		} else {
			row.AddNumber(decimal.NewFromFloat(line.Rate))
		}
	}
	tbl.AddSeparatorRow()
	return tbl
}
