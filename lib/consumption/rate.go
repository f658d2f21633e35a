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

// Package consumption analyzes how fast tracked quantities go down.
package consumption

import "golang.org/x/exp/constraints"

// Number is a numeric type.
type Number interface {
	constraints.Integer | constraints.Float
}

// NoSignal is returned by AverageRateOfDecrease if the values never decrease.
const NoSignal = -1

// AverageRateOfDecrease returns the mean drop over all strictly decreasing
// adjacent pairs of values. Flat and increasing pairs are ignored entirely.
// It returns NoSignal if no pair decreases, including for fewer than two values.
func AverageRateOfDecrease[T Number](values []T) float64 {
	var (
		sum float64
		n   int
	)
	for i := 0; i+1 < len(values); i++ {
		if values[i] > values[i+1] {
			sum += float64(values[i]) - float64(values[i+1])
			n++
		}
	}
	if n == 0 {
		return NoSignal
	}
	return sum / float64(n)
}
