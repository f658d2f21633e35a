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

package predicate

import (
	"github.com/sboehler/stockledger/lib/common/regex"
)

type Predicate[T any] func(T) bool

func And[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(t T) bool {
		for _, pred := range predicates {
			if !pred(t) {
				return false
			}
		}
		return true
	}
}

func True[T any](_ T) bool {
	return true
}

// Matching returns a predicate which holds for strings matched by any of rxs.
// It holds for every string if rxs is empty.
func Matching(rxs regex.Regexes) Predicate[string] {
	if len(rxs) == 0 {
		return True[string]
	}
	return rxs.MatchString
}

func Not[T any](f Predicate[T]) Predicate[T] {
	return func(t T) bool {
		return !f(t)
	}
}
