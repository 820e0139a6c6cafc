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

package path

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		path   []Point
		offset Point
		want   Classified
	}{
		{
			name: "empty",
			path: nil,
			want: Classified{},
		},
		{
			name: "root-only",
			path: []Point{Root},
			want: Classified{},
		},
		{
			name: "root-step-is-dropped",
			path: []Point{Root, {0, 0}},
			want: Classified{},
		},
		{
			name: "ABCABBA_to_CBABAC",
			path: []Point{
				Root, {0, 0}, {1, 0}, {2, 0}, {3, 1}, {3, 2}, {4, 3}, {5, 4}, {6, 4}, {7, 5}, {7, 6},
			},
			want: Classified{
				Matches: []Point{{2, 0}, {3, 2}, {4, 3}, {6, 4}},
				Deletes: []int{0, 1, 5},
				Inserts: []int{1, 5},
			},
		},
		{
			name:   "offset",
			path:   []Point{Root, {0, 0}, {1, 1}, {2, 1}, {2, 2}},
			offset: Point{10, 20},
			want: Classified{
				Matches: []Point{{10, 20}},
				Deletes: []int{11},
				Inserts: []int{21},
			},
		},
		{
			name:   "segment-without-root",
			path:   []Point{{3, 3}, {3, 4}, {4, 5}},
			offset: Point{1, 1},
			want: Classified{
				Matches: []Point{{4, 5}},
				Inserts: []int{4},
			},
		},
		{
			name:   "root-step-is-dropped-with-offset",
			path:   []Point{Root, {0, 0}, {0, 1}},
			offset: Point{4, 7},
			want: Classified{
				Inserts: []int{7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.path, tt.offset)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}
