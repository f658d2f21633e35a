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

package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/sboehler/stockledger/lib/common/date"
)

func TestDateFlag(t *testing.T) {
	var f DateFlag
	if got := f.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
	if err := f.Set("2017-02-21"); err != nil {
		t.Fatalf("Set() returned unexpected error: %v", err)
	}
	if got, want := f.Value(), date.Date(2017, 2, 21); !got.Equal(want) {
		t.Errorf("Value() = %v, want %v", got, want)
	}
	if got := f.String(); got != "2017-02-21" {
		t.Errorf("String() = %q, want %q", got, "2017-02-21")
	}
	if err := f.Set("21.02.2017"); err == nil {
		t.Errorf("Set(21.02.2017) succeeded, want error")
	}
}

func TestEncodingFlag(t *testing.T) {
	var f EncodingFlag
	if f.Value() != nil || f.String() != "utf-8" {
		t.Errorf("zero EncodingFlag = (%v, %q), want UTF-8", f.Value(), f.String())
	}
	if err := f.Set("ISO-8859-1"); err != nil {
		t.Fatalf("Set() returned unexpected error: %v", err)
	}
	if f.Value() != charmap.ISO8859_1 {
		t.Errorf("Value() = %v, want %v", f.Value(), charmap.ISO8859_1)
	}
	if opts := f.FileOptions(true); opts.Encoding != charmap.ISO8859_1 || !opts.Presorted {
		t.Errorf("FileOptions(true) = %+v", opts)
	}
	err := f.Set("ebcdic")
	if err == nil {
		t.Fatalf("Set(ebcdic) succeeded, want error")
	}
	want := `unknown encoding "ebcdic", want one of iso-8859-1, iso-8859-15, utf-8, windows-1252`
	if err.Error() != want {
		t.Errorf("Set(ebcdic) = %q, want %q", err, want)
	}
}

func TestItemFlags(t *testing.T) {
	tests := []struct {
		desc string
		args []string
		want map[string]bool
	}{
		{
			desc: "no flags",
			want: map[string]bool{"shirts": true, "pants": true, "socks": true},
		},
		{
			desc: "include",
			args: []string{"--item", "^s", "-i", "pants"},
			want: map[string]bool{"shirts": true, "pants": true, "socks": true},
		},
		{
			desc: "include and exclude",
			args: []string{"-i", "^s", "--exclude", "ocks"},
			want: map[string]bool{"shirts": true, "pants": false, "socks": false},
		},
		{
			desc: "exclude",
			args: []string{"-x", "pants"},
			want: map[string]bool{"shirts": true, "pants": false, "socks": true},
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			var (
				f   ItemFlags
				cmd = &cobra.Command{}
			)
			f.Setup(cmd)
			if err := cmd.ParseFlags(test.args); err != nil {
				t.Fatalf("ParseFlags() returned unexpected error: %v", err)
			}
			pred := f.Predicate()
			for item, want := range test.want {
				if got := pred(item); got != want {
					t.Errorf("Predicate()(%q) = %t, want %t", item, got, want)
				}
			}
		})
	}
}

func TestRegexFlagRejectsInvalidRegex(t *testing.T) {
	var f RegexFlag
	if err := f.Set("("); err == nil {
		t.Errorf("Set(%q) succeeded, want error", "(")
	}
}
