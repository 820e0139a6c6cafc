// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rvecs contains functions to work with result vectors, a per-element representation of an
// edit script. rx[s] is true if x[s] is deleted and ry[t] is true if y[t] is inserted. Both vectors
// have one extra element at the end that is always false, which simplifies iterating over them.
//
// The engines produce classified edit paths; result vectors are used to turn them into edits and
// hunks for the user facing API.
package rvecs

import "znkr.io/incdiff/internal/path"

// Make allocates result vectors for inputs of length n and m.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, (n + m + 2))
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// FromClassified creates result vectors for inputs of length n and m from a classified path.
func FromClassified(c path.Classified, n, m int) (rx, ry []bool) {
	rx, ry = Make(n, m)
	for _, s := range c.Deletes {
		rx[s] = true
	}
	for _, t := range c.Inserts {
		ry[t] = true
	}
	return rx, ry
}
