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

package apply

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/sboehler/stockledger/cmd/flags"
	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/ledger"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner

	cmd := &cobra.Command{
		Use:   "apply <file> <changes.yaml>",
		Short: "apply a list of changes to a ledger",
		Long: `Apply the changes listed in a YAML file to the given ledger, in order. Each change
has an op (add, modify or delete), an item, a date and, except for delete, a
quantity. The ledger is only saved if every change succeeds.`,

		Args: cobra.ExactArgs(2),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	encoding flags.EncodingFlag
	dryRun   bool
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.encoding, "encoding", "character encoding of the ledger file")
	c.Flags().BoolVarP(&r.dryRun, "dry-run", "n", false, "print the resulting ledger instead of saving it")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	changes, err := readChanges(args[1])
	if err != nil {
		return err
	}
	opts := r.encoding.FileOptions(false)
	l, err := ledger.Load(args[0], opts)
	if err != nil {
		return err
	}
	for i, c := range changes {
		if err := c.apply(l); err != nil {
			return fmt.Errorf("%s: change %d: %w", args[1], i+1, err)
		}
	}
	if r.dryRun {
		return l.Write(cmd.OutOrStdout(), ledger.WriteOptions{})
	}
	if err := l.Save(args[0], opts); err != nil {
		return err
	}
	slog.Info("applied changes", "path", args[0], "changes", len(changes))
	return nil
}

type change struct {
	Op       string `yaml:"op" validate:"required,oneof=add modify delete"`
	Item     string `yaml:"item" validate:"required"`
	Date     string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Quantity *int   `yaml:"quantity" validate:"required_unless=Op delete,excluded_if=Op delete"`
}

func (c change) apply(l *ledger.Ledger) error {
	d, err := date.Parse(c.Date)
	if err != nil {
		return err
	}
	switch c.Op {
	case "add":
		return l.Add(c.Item, d, *c.Quantity)
	case "modify":
		return l.Modify(c.Item, d, *c.Quantity)
	case "delete":
		return l.Delete(c.Item, d)
	}
	return fmt.Errorf("unknown op %q", c.Op)
}

var validate = validator.New()

func readChanges(path string) ([]change, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeChanges(f, path)
}

func decodeChanges(r io.Reader, path string) ([]change, error) {
	var changes []change
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&changes); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, c := range changes {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%s: change %d: %w", path, i+1, err)
		}
	}
	return changes, nil
}
