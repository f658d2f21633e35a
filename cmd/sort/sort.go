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

package sort

import (
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/sboehler/stockledger/cmd/flags"
	"github.com/sboehler/stockledger/lib/ledger"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner

	cmd := &cobra.Command{
		Use:   "sort <file>...",
		Short: "sort the given files",
		Long:  `Sort the given ledgers in-place, rewriting each one with its rows in ascending date order.`,

		Args: cobra.MinimumNArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

const concurrency = 10

type runner struct {
	encoding flags.EncodingFlag
	progress bool
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.encoding, "encoding", "character encoding of the ledger files")
	c.Flags().BoolVar(&r.progress, "progress", true, "show a progress bar")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	bar := pb.New(len(args)).SetWriter(cmd.ErrOrStderr())
	if r.progress {
		bar.Start()
		defer bar.Finish()
	}
	var (
		g    errgroup.Group
		errs = make([]error, len(args))
	)
	g.SetLimit(concurrency)
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			defer bar.Increment()
			errs[i] = r.sortFile(arg)
			return nil
		})
	}
	g.Wait()
	return multierr.Combine(errs...)
}

func (r *runner) sortFile(path string) error {
	opts := r.encoding.FileOptions(false)
	l, err := ledger.Load(path, opts)
	if err != nil {
		return err
	}
	if err := l.Save(path, opts); err != nil {
		return err
	}
	slog.Debug("sorted ledger", "path", path)
	return nil
}
