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

// Package ledger implements an inventory ledger: a fixed set of items, each with a
// series of (date, quantity) observations, stored as a CSV file with one column per
// item and one row per date.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/sboehler/stockledger/lib/common/compare"
	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/common/set"
)

// DateColumn is the header of the first column of a ledger file.
const DateColumn = "DATE"

// Observation is the quantity of an item on a given day.
type Observation struct {
	Date     time.Time
	Quantity int
}

// Ledger holds the observations of a fixed set of items. The set of items is
// determined when the ledger is parsed and never changes afterwards.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	items  []string
	series map[string][]Observation
}

func newLedger() *Ledger {
	return &Ledger{series: make(map[string][]Observation)}
}

// addItem registers an item, and returns false if it already exists.
func (l *Ledger) addItem(item string) bool {
	if _, ok := l.series[item]; ok {
		return false
	}
	l.items = append(l.items, item)
	l.series[item] = nil
	return true
}

// Items returns the item names in column order.
func (l *Ledger) Items() []string {
	res := make([]string, len(l.items))
	copy(res, l.items)
	return res
}

// Has returns whether the ledger tracks the given item.
func (l *Ledger) Has(item string) bool {
	_, ok := l.series[item]
	return ok
}

// Select returns a new ledger with the items for which keep holds, in column
// order. Observations are copied.
func (l *Ledger) Select(keep func(item string) bool) *Ledger {
	res := newLedger()
	for _, item := range l.items {
		if keep(item) {
			res.addItem(item)
			res.series[item] = append([]Observation(nil), l.series[item]...)
		}
	}
	return res
}

// Observations returns a copy of the item's observations in their current order.
func (l *Ledger) Observations(item string) ([]Observation, error) {
	obs, ok := l.series[item]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	res := make([]Observation, len(obs))
	copy(res, obs)
	return res, nil
}

// Quantities returns the item's quantities in ascending date order. The
// ledger itself is not reordered.
func (l *Ledger) Quantities(item string) ([]int, error) {
	obs, err := l.Observations(item)
	if err != nil {
		return nil, err
	}
	compare.SortStable(obs, byDate)
	res := make([]int, 0, len(obs))
	for _, o := range obs {
		res = append(res, o.Quantity)
	}
	return res, nil
}

// Sort sorts the observations of every item by ascending date. Observations
// on the same date keep their relative order.
func (l *Ledger) Sort() {
	for _, item := range l.items {
		compare.SortStable(l.series[item], byDate)
	}
}

var byDate = compare.By(func(o Observation) time.Time { return o.Date }, compare.Time)

// Dates returns the union of all observation dates, ascending.
func (l *Ledger) Dates() []time.Time {
	dates := set.New[time.Time]()
	for _, obs := range l.series {
		for _, o := range obs {
			dates.Add(o.Date)
		}
	}
	return dates.Sorted(compare.Time)
}

// Cell is the quantity of one item on one row. Valid is false for a blank cell.
type Cell struct {
	Quantity int
	Valid    bool
}

// Row is the state of all items on one date, in column order.
type Row struct {
	Date  time.Time
	Cells []Cell
}

// Rows returns one row per date in Dates(). If an item has several observations
// on the same date, the last one in sequence order is used.
func (l *Ledger) Rows() []Row {
	var (
		dates  = l.Dates()
		byItem = make([]map[time.Time]int, len(l.items))
	)
	for i, item := range l.items {
		m := make(map[time.Time]int, len(l.series[item]))
		for _, o := range l.series[item] {
			m[o.Date] = o.Quantity
		}
		byItem[i] = m
	}
	rows := make([]Row, 0, len(dates))
	for _, d := range dates {
		row := Row{Date: d, Cells: make([]Cell, len(l.items))}
		for i, m := range byItem {
			if q, ok := m[d]; ok {
				row.Cells[i] = Cell{Quantity: q, Valid: true}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// String returns a human-readable dump of the ledger: one block per item, one
// line per observation with the date in DD/MM/YYYY format.
func (l *Ledger) String() string {
	var b strings.Builder
	for _, item := range l.items {
		b.WriteString(item)
		b.WriteString(":\n")
		for _, o := range l.series[item] {
			fmt.Fprintf(&b, "%s\t%d\n", o.Date.Format(date.DisplayFormat), o.Quantity)
		}
		b.WriteString("\n")
	}
	return b.String()
}
