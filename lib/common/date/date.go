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

package date

import (
	"fmt"
	"time"
)

const (
	// Format is the storage format of a date, YYYY-MM-DD.
	Format = "2006-01-02"
	// DisplayFormat is the day-first format used for human-readable output.
	DisplayFormat = "02/01/2006"
)

// Date creates a new date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate returns the calendar day of t, at midnight UTC.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Parse parses a date in the YYYY-MM-DD format.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want format YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Period is a closed interval of days. A zero bound is open.
type Period struct {
	Start, End time.Time
}

// Contains returns whether t lies within the period.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && t.After(p.End) {
		return false
	}
	return true
}

func (p Period) String() string {
	return fmt.Sprintf("%s..%s", format(p.Start), format(p.End))
}

func format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Format)
}
