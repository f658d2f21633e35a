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
	"log/slog"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/sboehler/stockledger/cmd/flags"
	"github.com/sboehler/stockledger/lib/export"
	"github.com/sboehler/stockledger/lib/ledger"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "export a ledger as a spreadsheet",
		Long:  `Export the given ledger as an XLSX workbook, to the output file or to stdout.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	encoding flags.EncodingFlag
	items    flags.ItemFlags
	output   string
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.encoding, "encoding", "character encoding of the ledger file")
	r.items.Setup(c)
	c.Flags().StringVarP(&r.output, "output", "o", "", "path of the workbook to write")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	l, err := ledger.Load(args[0], r.encoding.FileOptions(false))
	if err != nil {
		return err
	}
	l = l.Select(r.items.Predicate())
	if r.output == "" {
		return export.WriteXLSX(cmd.OutOrStdout(), l)
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, l); err != nil {
		return err
	}
	if err := atomic.WriteFile(r.output, &buf); err != nil {
		return &ledger.IOError{Op: "write", Path: r.output, Err: err}
	}
	slog.Info("exported ledger", "path", args[0], "output", r.output)
	return nil
}
