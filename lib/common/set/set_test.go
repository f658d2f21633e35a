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

package set

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/stockledger/lib/common/compare"
)

func TestSorted(t *testing.T) {
	s := New[int]()
	for _, i := range []int{5, 3, 9, 3, 1, 5} {
		s.Add(i)
	}

	got := s.Sorted(compare.Ordered[int])

	if diff := cmp.Diff([]int{1, 3, 5, 9}, got); diff != "" {
		t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
	}
	if !s.Has(9) || s.Has(2) {
		t.Errorf("Has() inconsistent with contents %v", got)
	}
}
