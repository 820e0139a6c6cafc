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

package rvecs

import (
	"iter"

	"znkr.io/incdiff/internal/config"
)

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	Edits  int // Number of edits in this hunk, including context.
}

// Hunks iterates over the hunks in rx and ry. Changes separated by at most 2*cfg.Context matches
// share a hunk and every hunk is padded with up to cfg.Context matches on both ends.
func Hunks(rx, ry []bool, cfg config.Config) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n, m := len(rx)-1, len(ry)-1
		context := cfg.Context
		var h Hunk
		open := false
		s, t := 0, 0
		for {
			run := 0
			for s < n && t < m && !rx[s] && !ry[t] {
				s++
				t++
				run++
			}
			done := s == n && t == m
			if open {
				if done || run > 2*context {
					keep := min(run, context)
					h.S1, h.T1 = s-run+keep, t-run+keep
					h.Edits += keep
					if !yield(h) {
						return
					}
					open = false
				} else {
					h.Edits += run
				}
			}
			if done {
				return
			}

			if !open {
				// Start a new hunk with up to context leading matches.
				h = Hunk{S0: max(0, s-context), T0: max(0, t-context)}
				h.Edits = s - h.S0
				open = true
			}
			for s < n && rx[s] {
				s++
				h.Edits++
			}
			for t < m && ry[t] {
				t++
				h.Edits++
			}
		}
	}
}
