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
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2017-02-21", want: Date(2017, 2, 21)},
		{input: "2020-12-31", want: Date(2020, 12, 31)},
		{input: "2020-02-30", wantErr: true},
		{input: "21/02/2017", wantErr: true},
		{input: "2017-2-21", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range tests {
		got, err := Parse(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestParseIsComparable(t *testing.T) {
	if got, want := MustParse("2021-07-31"), Date(2021, 7, 31); got != want {
		// time.Time values are only == comparable if they share a location.
		t.Errorf("MustParse() = %#v, want %#v", got, want)
	}
}

func TestTruncate(t *testing.T) {
	in := time.Date(2021, 3, 4, 17, 30, 0, 0, time.UTC)
	if got, want := Truncate(in), Date(2021, 3, 4); got != want {
		t.Errorf("Truncate(%v) = %v, want %v", in, got, want)
	}
}

func TestFormats(t *testing.T) {
	d := Date(2017, 2, 5)
	if got, want := d.Format(Format), "2017-02-05"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	if got, want := d.Format(DisplayFormat), "05/02/2017"; got != want {
		t.Errorf("DisplayFormat = %q, want %q", got, want)
	}
}

func TestPeriodContains(t *testing.T) {
	var (
		p     = Period{Start: Date(2020, 1, 1), End: Date(2020, 1, 31)}
		open  = Period{}
		tests = []struct {
			period Period
			date   time.Time
			want   bool
		}{
			{p, Date(2019, 12, 31), false},
			{p, Date(2020, 1, 1), true},
			{p, Date(2020, 1, 15), true},
			{p, Date(2020, 1, 31), true},
			{p, Date(2020, 2, 1), false},
			{open, Date(1900, 1, 1), true},
			{Period{Start: Date(2020, 1, 1)}, Date(2030, 1, 1), true},
			{Period{End: Date(2020, 1, 1)}, Date(2020, 1, 2), false},
		}
	)
	for _, test := range tests {
		if got := test.period.Contains(test.date); got != test.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", test.period, test.date.Format(Format), got, test.want)
		}
	}
}
