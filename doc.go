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

// Package incdiff computes shortest edit scripts between a fixed slice and a slice that grows over
// time.
//
// The package level functions [Diff], [Edits] and [Hunks] compare two complete slices using Myers'
// algorithm. An [Engine] compares a fixed slice against a slice that is extended in chunks using
// [Engine.Update]. Every update resumes the search from the last checkpoint instead of starting
// over and returns only the part of the alignment that changed. Merging all results with
// [Result.Merge] and finishing with [Engine.Flush] yields the full alignment.
//
// To keep memory bounded for long streams, an engine discards the confirmed prefix of its search
// history once the edit distance reaches [MaxDepth]. Coordinates are always reported relative to
// the full inputs.
//
// Performance: Time complexity is O(ND) where N = len(x) + len(y), and D is the number of edits.
// An update costs O((N + Δ) D) where Δ is the length of the chunk and D is the edit distance found
// since the last truncation.
//
// Note: For a line-by-line diff of text, please see [znkr.io/incdiff/textdiff].
//
// [znkr.io/incdiff/textdiff]: https://pkg.go.dev/znkr.io/incdiff/textdiff
package incdiff
