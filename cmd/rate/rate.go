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

package rate

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sboehler/stockledger/cmd/flags"
	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/common/set"
	"github.com/sboehler/stockledger/lib/common/table"
	"github.com/sboehler/stockledger/lib/consumption"
	"github.com/sboehler/stockledger/lib/ledger"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner

	cmd := &cobra.Command{
		Use:   "rate <file> [item]...",
		Short: "report the average rate of decrease",
		Long: `Report, for each item, the number of observations, the latest quantity and the
average decrease between consecutive observations in date order. Items with
fewer than two observations, or whose quantities never decrease, have no rate.`,

		Args: cobra.MinimumNArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	encoding flags.EncodingFlag
	items    flags.ItemFlags
	from, to flags.DateFlag
	csv      bool
	color    bool
	round    int32
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.encoding, "encoding", "character encoding of the ledger file")
	r.items.Setup(c)
	c.Flags().Var(&r.from, "from", "ignore observations before this date")
	c.Flags().Var(&r.to, "to", "ignore observations after this date")
	c.Flags().BoolVar(&r.csv, "csv", false, "render the report as CSV")
	c.Flags().BoolVar(&r.color, "color", false, "print output in color")
	c.Flags().Int32Var(&r.round, "round", 2, "number of decimal places of the rate")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	l, err := ledger.Load(args[0], r.encoding.FileOptions(false))
	if err != nil {
		return err
	}
	period := date.Period{Start: r.from.Value(), End: r.to.Value()}
	sel := l.Select(r.items.Predicate())
	rep, err := consumption.NewReport(sel, period)
	if err != nil {
		return err
	}
	if err := selectItems(l, sel, rep, args[1:]); err != nil {
		return err
	}
	slog.Debug("computed report", "path", args[0], "period", period, "items", len(rep.Lines))

	w := bufio.NewWriter(cmd.OutOrStdout())
	if r.csv {
		renderer := table.CSVRenderer{Round: r.round}
		err = renderer.Render(rep.Table(), w)
	} else {
		renderer := table.TextRenderer{Color: r.color, Round: r.round}
		err = renderer.Render(rep.Table(), w)
	}
	return multierr.Append(err, w.Flush())
}

// ErrExcludedItem is returned for an item named as an argument which the
// --item and --exclude flags filter out.
var ErrExcludedItem = errors.New("item is excluded by --item/--exclude")

// selectItems restricts the report to the given items, if any. Every item
// must be part of the selection sel of the ledger l.
func selectItems(l, sel *ledger.Ledger, rep *consumption.Report, items []string) error {
	if len(items) == 0 {
		return nil
	}
	selected := set.New[string]()
	for _, item := range items {
		if !l.Has(item) {
			return fmt.Errorf("%w: %q", ledger.ErrUnknownItem, item)
		}
		if !sel.Has(item) {
			return fmt.Errorf("%w: %q", ErrExcludedItem, item)
		}
		selected.Add(item)
	}
	var lines []consumption.Line
	for _, line := range rep.Lines {
		if selected.Has(line.Item) {
			lines = append(lines, line)
		}
	}
	rep.Lines = lines
	return nil
}
