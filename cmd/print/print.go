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

package print

import (
	"bufio"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sboehler/stockledger/cmd/flags"
	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/common/table"
	"github.com/sboehler/stockledger/lib/ledger"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner

	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "print a ledger",
		Long:  `Print the observations of each item of the given ledger, in file order.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	encoding flags.EncodingFlag
	items    flags.ItemFlags
	table    bool
	color    bool
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.encoding, "encoding", "character encoding of the ledger file")
	r.items.Setup(c)
	c.Flags().BoolVarP(&r.table, "table", "t", false, "print the ledger as a table of dates and items")
	c.Flags().BoolVar(&r.color, "color", false, "print output in color")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	l, err := ledger.Load(args[0], r.encoding.FileOptions(true))
	if err != nil {
		return err
	}
	slog.Debug("loaded ledger", "path", args[0], "items", len(l.Items()))
	l = l.Select(r.items.Predicate())
	w := bufio.NewWriter(cmd.OutOrStdout())
	if r.table {
		l.Sort()
		renderer := table.TextRenderer{Color: r.color}
		err = renderer.Render(ledgerTable(l), w)
	} else {
		_, err = fmt.Fprint(w, l.String())
	}
	return multierr.Append(err, w.Flush())
}

func ledgerTable(l *ledger.Ledger) *table.Table {
	items := l.Items()
	tbl := table.New(1, len(items))
	tbl.AddSeparatorRow()
	header := tbl.AddRow().AddText("Date", table.Center)
	for _, item := range items {
		header.AddText(item, table.Center)
	}
	tbl.AddSeparatorRow()
	for _, row := range l.Rows() {
		r := tbl.AddRow().AddText(row.Date.Format(date.Format), table.Left)
		for _, c := range row.Cells {
			if c.Valid {
				r.AddInt(c.Quantity)
			} else {
				r.AddEmpty()
			}
		}
	}
	tbl.AddSeparatorRow()
	return tbl
}
