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
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/sboehler/stockledger/lib/common/compare"
	"github.com/sboehler/stockledger/lib/common/date"
	"github.com/sboehler/stockledger/lib/common/predicate"
	"github.com/sboehler/stockledger/lib/common/regex"
	"github.com/sboehler/stockledger/lib/common/set"
	"github.com/sboehler/stockledger/lib/ledger"
)

// DateFlag manages a flag to determine a date.
type DateFlag time.Time

var _ pflag.Value = (*DateFlag)(nil)

func (tf DateFlag) String() string {
	if tf.Value().IsZero() {
		return ""
	}
	return tf.Value().Format(date.Format)
}

// Set implements pflag.Value.
func (tf *DateFlag) Set(v string) error {
	t, err := date.Parse(v)
	if err != nil {
		return err
	}
	*tf = (DateFlag)(t)
	return nil
}

// Type implements pflag.Value.
func (tf DateFlag) Type() string {
	return "YYYY-MM-DD"
}

// Value returns the flag value.
func (tf DateFlag) Value() time.Time {
	return time.Time(tf)
}

var encodings = map[string]encoding.Encoding{
	"utf-8":        nil,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
}

// EncodingFlag manages a flag to select the character encoding of a ledger file.
type EncodingFlag struct {
	name string
}

var _ pflag.Value = (*EncodingFlag)(nil)

func (ef EncodingFlag) String() string {
	if ef.name == "" {
		return "utf-8"
	}
	return ef.name
}

// Set implements pflag.Value.
func (ef *EncodingFlag) Set(v string) error {
	name := strings.ToLower(v)
	if _, ok := encodings[name]; !ok {
		names := set.New[string]()
		for n := range encodings {
			names.Add(n)
		}
		return fmt.Errorf("unknown encoding %q, want one of %s", v, strings.Join(names.Sorted(compare.Ordered[string]), ", "))
	}
	ef.name = name
	return nil
}

// Type implements pflag.Value.
func (ef EncodingFlag) Type() string {
	return "<encoding>"
}

// Value returns the encoding, or nil for UTF-8.
func (ef EncodingFlag) Value() encoding.Encoding {
	return encodings[ef.name]
}

// FileOptions returns the options to load and save ledger files.
func (ef EncodingFlag) FileOptions(presorted bool) ledger.FileOptions {
	return ledger.FileOptions{Encoding: ef.Value(), Presorted: presorted}
}

// RegexFlag manages a flag to get a regex.
type RegexFlag struct {
	rxs regex.Regexes
}

var _ pflag.Value = (*RegexFlag)(nil)

func (rf RegexFlag) String() string {
	var ss []string
	for _, r := range rf.rxs {
		ss = append(ss, r.String())
	}
	return strings.Join(ss, ",")
}

// Set implements pflag.Set.
func (rf *RegexFlag) Set(v string) error {
	t, err := regexp.Compile(v)
	if err != nil {
		return err
	}
	rf.rxs.Add(t)
	return nil
}

// Type implements pflag.Type.
func (rf RegexFlag) Type() string {
	return "<regex>"
}

func (rf *RegexFlag) Value() regex.Regexes {
	return rf.rxs
}

// ItemFlags manages the flags that select the items of a ledger.
type ItemFlags struct {
	include, exclude RegexFlag
}

// Setup configures the flags.
func (f *ItemFlags) Setup(cmd *cobra.Command) {
	cmd.Flags().VarP(&f.include, "item", "i", "only items matching this regex (repeatable)")
	cmd.Flags().VarP(&f.exclude, "exclude", "x", "skip items matching this regex (repeatable)")
}

// Predicate returns the item filter.
func (f *ItemFlags) Predicate() predicate.Predicate[string] {
	pred := predicate.Matching(f.include.Value())
	if len(f.exclude.Value()) == 0 {
		return pred
	}
	return predicate.And(pred, predicate.Not(predicate.Matching(f.exclude.Value())))
}
