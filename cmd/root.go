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

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/stockledger/cmd/apply"
	"github.com/sboehler/stockledger/cmd/completion"
	"github.com/sboehler/stockledger/cmd/entry"
	"github.com/sboehler/stockledger/cmd/export"
	"github.com/sboehler/stockledger/cmd/print"
	"github.com/sboehler/stockledger/cmd/rate"
	"github.com/sboehler/stockledger/cmd/sort"
	"github.com/sboehler/stockledger/cmd/transcode"
)

// CreateCmd creates the root command.
func CreateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "stockledger",
		Short: "stockledger tracks stock quantities over time",
		Long: `stockledger keeps a CSV ledger of the quantity observed for each item on each
date, and reports how fast the quantities go down.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.AddCommand(print.CreateCmd())
	cmd.AddCommand(entry.CreateAddCmd())
	cmd.AddCommand(entry.CreateModifyCmd())
	cmd.AddCommand(entry.CreateDeleteCmd())
	cmd.AddCommand(sort.CreateCmd())
	cmd.AddCommand(rate.CreateCmd())
	cmd.AddCommand(apply.CreateCmd())
	cmd.AddCommand(export.CreateCmd())
	cmd.AddCommand(transcode.CreateCmd())
	cmd.AddCommand(completion.CreateCmd(cmd))
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd := CreateCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
