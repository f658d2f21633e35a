// Copyright 2020 Silvio Böhler
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

package transcode

import (
	"bufio"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sboehler/stockledger/cmd/flags"
	"github.com/sboehler/stockledger/lib/ledger"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner

	cmd := &cobra.Command{
		Use:   "transcode <file>",
		Short: "convert a ledger to another character encoding",
		Long: `Read the given ledger in the encoding given by --encoding and print it, sorted,
in the encoding given by --to.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	from, to flags.EncodingFlag
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.from, "encoding", "character encoding of the ledger file")
	c.Flags().Var(&r.to, "to", "character encoding of the output")
}

func (r *runner) run(cmd *cobra.Command, args []string) (err error) {
	l, err := ledger.Load(args[0], r.from.FileOptions(false))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	defer func() { err = multierr.Append(err, w.Flush()) }()

	return l.Encode(w, r.to.FileOptions(false))
}
