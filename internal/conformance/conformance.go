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

// Package conformance cross-checks this module's edit-distance computation against an
// independently implemented diffing library, so the minimality and LCS-duality properties aren't
// only ever verified against this module's own output.
package conformance

import "github.com/sergi/go-diff/diffmatchpatch"

// EditDistance returns the number of single-character insertions and deletions
// github.com/sergi/go-diff's character-level Myers implementation needs to turn x into y. It's
// used as a second, independent oracle for this module's own diff_length computation on small
// inputs; it is not meant to be exact for inputs large enough to hit diffmatchpatch's internal
// timeout/line-mode heuristics.
func EditDistance(x, y string) int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(x, y, false)
	n := 0
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			n += len([]rune(d.Text))
		}
	}
	return n
}
