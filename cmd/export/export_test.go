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

package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sboehler/stockledger/cmd/cmdtest"
	"github.com/sboehler/stockledger/lib/export"
)

var want = [][]string{
	{"DATE", "shirts", "pants", "socks"},
	{"2017-02-15", "100", "50"},
	{"2017-02-17", "90", "", "30"},
	{"2017-02-19", "85", "45", "28"},
	{"2017-02-21", "", "40"},
}

func TestExportToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "stock.xlsx")

	cmdtest.Run(t, CreateCmd(), []string{"--output", output, "testdata/stock.csv"})

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Equal(t, want, rows)
}

func TestExportSelectedItems(t *testing.T) {
	out := cmdtest.Run(t, CreateCmd(), []string{"--exclude", "pants", "testdata/stock.csv"})

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"DATE", "shirts", "socks"},
		{"2017-02-15", "100"},
		{"2017-02-17", "90", "30"},
		{"2017-02-19", "85", "28"},
	}, rows)
}

func TestExportToStdout(t *testing.T) {
	out := cmdtest.Run(t, CreateCmd(), []string{"testdata/stock.csv"})

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Equal(t, want, rows)
}
