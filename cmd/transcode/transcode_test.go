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

package transcode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sboehler/stockledger/cmd/cmdtest"
)

const (
	latin1 = "DATE,cr\xe8me,pur\xe9e\n2020-01-02,1,\n2020-01-01,3,2\n"
	utf8   = "DATE,crème,purée\n2020-01-01,3,2\n2020-01-02,1,\n"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestToUTF8(t *testing.T) {
	path := writeFile(t, latin1)

	out := cmdtest.Run(t, CreateCmd(), []string{"--encoding", "iso-8859-1", path})

	assert.Equal(t, utf8, string(out))
}

func TestFromUTF8(t *testing.T) {
	path := writeFile(t, utf8)

	out := cmdtest.Run(t, CreateCmd(), []string{"--to", "windows-1252", path})

	assert.Equal(t, "DATE,cr\xe8me,pur\xe9e\n2020-01-01,3,2\n2020-01-02,1,\n", string(out))
}

func TestUnknownEncoding(t *testing.T) {
	path := writeFile(t, utf8)

	_, err := cmdtest.RunErr(t, CreateCmd(), []string{"--to", "utf-16", path})

	assert.ErrorContains(t, err, "unknown encoding")
}
