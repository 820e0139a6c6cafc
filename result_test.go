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

package incdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name       string
		prev, next Result
		want       Result
	}{
		{
			name: "into-empty",
			next: Result{
				Matches: []Point{{X: 0, Y: 0}},
				Deletes: []int{1},
			},
			want: Result{
				Matches: []Point{{X: 0, Y: 0}},
				Deletes: []int{1},
			},
		},
		{
			name: "append",
			prev: Result{
				Matches: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
			},
			next: Result{
				PosX:    2,
				PosY:    2,
				Matches: []Point{{X: 3, Y: 2}},
				Deletes: []int{2},
			},
			want: Result{
				Matches: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 2}},
				Deletes: []int{2},
			},
		},
		{
			name: "replace-tail",
			prev: Result{
				Matches: []Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 3}},
				Deletes: []int{3},
				Inserts: []int{1, 4},
			},
			next: Result{
				PosX:    1,
				PosY:    1,
				Matches: []Point{{X: 1, Y: 1}},
				Deletes: []int{2, 3},
				Inserts: []int{2, 3, 4},
			},
			want: Result{
				Matches: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
				Deletes: []int{2, 3},
				Inserts: []int{2, 3, 4},
			},
		},
		{
			name: "cut-to-nothing",
			prev: Result{
				Deletes: []int{0, 1},
				Inserts: []int{0},
			},
			next: Result{},
			want: Result{},
		},
		{
			name: "separate-cuts",
			prev: Result{
				Matches: []Point{{X: 0, Y: 0}, {X: 2, Y: 1}},
				Deletes: []int{1, 3},
				Inserts: []int{2},
			},
			next: Result{
				PosX:    3,
				PosY:    2,
				Inserts: []int{2, 3},
				Deletes: []int{3},
			},
			want: Result{
				Matches: []Point{{X: 0, Y: 0}, {X: 2, Y: 1}},
				Deletes: []int{1, 3},
				Inserts: []int{2, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.prev
			got.Merge(tt.next)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	if !(Result{PosX: 3, PosY: 4}).Empty() {
		t.Errorf("Result without entries isn't empty")
	}
	if (Result{Inserts: []int{0}}).Empty() {
		t.Errorf("Result with an insert is empty")
	}
}
