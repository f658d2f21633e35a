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
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/sboehler/stockledger/lib/common/date"
)

// Add adds an observation for item on day. The observation is appended, so
// the series is unsorted until the next Sort or Write.
func (l *Ledger) Add(item string, day time.Time, quantity int) error {
	day = date.Truncate(day)
	obs, i, err := l.find(item, day)
	if err != nil {
		return err
	}
	if i >= 0 {
		return fmt.Errorf("%w: %q on %s", ErrDuplicateEntry, item, day.Format(date.Format))
	}
	l.series[item] = append(obs, Observation{Date: day, Quantity: quantity})
	return nil
}

// Modify replaces the quantity of the item's observation on day, in place.
func (l *Ledger) Modify(item string, day time.Time, quantity int) error {
	day = date.Truncate(day)
	obs, i, err := l.find(item, day)
	if err != nil {
		return err
	}
	if i < 0 {
		return fmt.Errorf("%w: %q on %s", ErrEntryNotFound, item, day.Format(date.Format))
	}
	obs[i] = Observation{Date: day, Quantity: quantity}
	return nil
}

// Delete removes the item's observation on day.
func (l *Ledger) Delete(item string, day time.Time) error {
	day = date.Truncate(day)
	obs, i, err := l.find(item, day)
	if err != nil {
		return err
	}
	if i < 0 {
		return fmt.Errorf("%w: %q on %s", ErrEntryNotFound, item, day.Format(date.Format))
	}
	l.series[item] = slices.Delete(obs, i, i+1)
	return nil
}

// find returns the item's series and the index of its first observation on
// day, or -1.
func (l *Ledger) find(item string, day time.Time) ([]Observation, int, error) {
	obs, ok := l.series[item]
	if !ok {
		return nil, -1, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	return obs, slices.IndexFunc(obs, func(o Observation) bool { return o.Date.Equal(day) }), nil
}
