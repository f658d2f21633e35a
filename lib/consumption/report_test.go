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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/common/table"
	"github.com/sboehler/stockledger/lib/ledger"
)

const sample = `DATE,shirts,pants,socks,hats
2017-02-19,85,45,28,
2017-02-15,100,50,,
2017-02-17,90,,30,
`

func readSample(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.Read(strings.NewReader(sample), "sample")
	if err != nil {
		t.Fatalf("Read() returned unexpected error: %v", err)
	}
	return l
}

func TestNewReport(t *testing.T) {
	tests := []struct {
		desc   string
		period date.Period
		want   []Line
	}{
		{
			desc: "all dates",
			want: []Line{
				{Item: "shirts", Observations: 3, Latest: ledger.Cell{Quantity: 85, Valid: true}, Rate: 7.5},
				{Item: "pants", Observations: 2, Latest: ledger.Cell{Quantity: 45, Valid: true}, Rate: 5},
				{Item: "socks", Observations: 2, Latest: ledger.Cell{Quantity: 28, Valid: true}, Rate: 2},
				{Item: "hats", Rate: NoSignal},
			},
		},
		{
			desc:   "from 2017-02-17",
			period: date.Period{Start: date.Date(2017, 2, 17)},
			want: []Line{
				{Item: "shirts", Observations: 2, Latest: ledger.Cell{Quantity: 85, Valid: true}, Rate: 5},
				{Item: "pants", Observations: 1, Latest: ledger.Cell{Quantity: 45, Valid: true}, Rate: NoSignal},
				{Item: "socks", Observations: 2, Latest: ledger.Cell{Quantity: 28, Valid: true}, Rate: 2},
				{Item: "hats", Rate: NoSignal},
			},
		},
		{
			desc:   "until 2017-02-17",
			period: date.Period{End: date.Date(2017, 2, 17)},
			want: []Line{
				{Item: "shirts", Observations: 2, Latest: ledger.Cell{Quantity: 90, Valid: true}, Rate: 10},
				{Item: "pants", Observations: 1, Latest: ledger.Cell{Quantity: 50, Valid: true}, Rate: NoSignal},
				{Item: "socks", Observations: 1, Latest: ledger.Cell{Quantity: 30, Valid: true}, Rate: NoSignal},
				{Item: "hats", Rate: NoSignal},
			},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			got, err := NewReport(readSample(t), test.period)
			if err != nil {
				t.Fatalf("NewReport() returned unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.want, got.Lines); diff != "" {
				t.Errorf("unexpected lines (+got/-want):\n%s", diff)
			}
		})
	}
}

func TestReportTable(t *testing.T) {
	r, err := NewReport(readSample(t), date.Period{})
	if err != nil {
		t.Fatalf("NewReport() returned unexpected error: %v", err)
	}
	var (
		buf      strings.Builder
		renderer = table.CSVRenderer{Round: 2}
	)

	if err := renderer.Render(r.Table(), &buf); err != nil {
		t.Fatalf("Render() returned unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Item,Observations,Latest,Avg. decrease",
		"shirts,3,85,7.50",
		"pants,2,45,5.00",
		"socks,2,28,2.00",
		"hats,0,,",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected output (+got/-want):\n%s", diff)
	}
}
