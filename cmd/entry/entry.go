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

// Package entry contains the commands that add, modify and delete single
// observations of a ledger file.
package entry

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sboehler/stockledger/cmd/flags"
	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/ledger"
)

// CreateAddCmd creates the add command.
func CreateAddCmd() *cobra.Command {
	r := runner{
		mutate: func(l *ledger.Ledger, e entry) error { return l.Add(e.item, e.date, e.quantity) },
		done:   "added",
	}
	cmd := &cobra.Command{
		Use:   "add <file> <item> <date> <quantity>",
		Short: "add an observation",
		Long:  `Add the quantity observed for an item on a date. Fails if the item already has an observation on that date.`,

		Args: cobra.ExactArgs(4),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

// CreateModifyCmd creates the modify command.
func CreateModifyCmd() *cobra.Command {
	r := runner{
		mutate: func(l *ledger.Ledger, e entry) error { return l.Modify(e.item, e.date, e.quantity) },
		done:   "modified",
	}
	cmd := &cobra.Command{
		Use:   "modify <file> <item> <date> <quantity>",
		Short: "modify an observation",
		Long:  `Replace the quantity observed for an item on a date. Fails if there is no observation on that date.`,

		Args: cobra.ExactArgs(4),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

// CreateDeleteCmd creates the delete command.
func CreateDeleteCmd() *cobra.Command {
	r := runner{
		mutate:     func(l *ledger.Ledger, e entry) error { return l.Delete(e.item, e.date) },
		done:       "deleted",
		noQuantity: true,
	}
	cmd := &cobra.Command{
		Use:   "delete <file> <item> <date>",
		Short: "delete an observation",
		Long:  `Remove the observation of an item on a date. Fails if there is no observation on that date.`,

		Args: cobra.ExactArgs(3),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type entry struct {
	item     string
	date     time.Time
	quantity int
}

type runner struct {
	mutate     func(*ledger.Ledger, entry) error
	done       string
	noQuantity bool

	// flags
	encoding  flags.EncodingFlag
	presorted bool
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.encoding, "encoding", "character encoding of the ledger file")
	c.Flags().BoolVar(&r.presorted, "presorted", false, "assume the observations of the file are in date order")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	e, err := r.parseEntry(args[1:])
	if err != nil {
		return err
	}
	var (
		path = args[0]
		opts = r.encoding.FileOptions(r.presorted)
	)
	l, err := ledger.Load(path, opts)
	if err != nil {
		return err
	}
	if err := r.mutate(l, e); err != nil {
		return explain(err)
	}
	if err := l.Save(path, opts); err != nil {
		return err
	}
	slog.Info("saved ledger", "path", path, "item", e.item, "date", e.date.Format(date.Format))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n", r.done, e.item, e.date.Format(date.Format))
	return err
}

func (r *runner) parseEntry(args []string) (entry, error) {
	d, err := date.Parse(args[1])
	if err != nil {
		return entry{}, err
	}
	e := entry{item: args[0], date: d}
	if r.noQuantity {
		return e, nil
	}
	if e.quantity, err = strconv.Atoi(args[2]); err != nil {
		return entry{}, fmt.Errorf("invalid quantity %q: %w", args[2], err)
	}
	return e, nil
}

var messages = []struct {
	err error
	msg string
}{
	{ledger.ErrUnknownItem, "Key does not exist."},
	{ledger.ErrDuplicateEntry, "Entry already exists for that date."},
	{ledger.ErrEntryNotFound, "Entry date does not exist."},
}

// explain prefixes mutation errors with a message for the user.
func explain(err error) error {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return fmt.Errorf("%s (%w)", m.msg, err)
		}
	}
	return err
}
