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

package regex

import "regexp"

// Regexes is a list of regular expressions.
type Regexes []*regexp.Regexp

func (rxs *Regexes) Add(r *regexp.Regexp) {
	*rxs = append(*rxs, r)
}

// MatchString returns whether any of the regexes matches s.
func (rxs Regexes) MatchString(s string) bool {
	for _, r := range rxs {
		if r.MatchString(s) {
			return true
		}
	}
	return false
}
