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

package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sboehler/stockledger/cmd/cmdtest"
)

func TestSubcommands(t *testing.T) {
	var names []string
	for _, c := range CreateCmd().Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"add", "apply", "completion", "delete", "export", "modify", "print", "rate", "sort", "transcode"} {
		assert.Contains(t, names, want)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, newLogger(&buf, false).Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, newLogger(&buf, false).Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, newLogger(&buf, true).Enabled(context.Background(), slog.LevelDebug))
}

func TestAddThenPrint(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	path := filepath.Join(t.TempDir(), "stock.csv")
	require.NoError(t, os.WriteFile(path, []byte("DATE,shirts\n2017-02-15,100\n"), 0o644))

	cmdtest.Run(t, CreateCmd(), []string{"add", path, "shirts", "2017-02-17", "90"})
	out := cmdtest.Run(t, CreateCmd(), []string{"--verbose", "print", path})

	assert.Equal(t, "shirts:\n15/02/2017\t100\n17/02/2017\t90\n\n", string(out))
	assert.False(t, strings.Contains(string(out), "level="), "logs must go to stderr")
}
