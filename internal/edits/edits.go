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

// Package edits turns a tagged edit script into the windowed hunks that both the ergonomic
// per-element diff API and the line-oriented textdiff renderer build their output from.
package edits

import (
	"znkr.dev/myerscore/internal/config"
	"znkr.dev/myerscore/internal/ops"
)

// Flags reports, for elements of x (length n) and y (length m) compared by a tagged edit script,
// whether x[s] was deleted (rx[s]) or y[t] was inserted (ry[t]). Both slices carry one extra
// trailing element so a windowing loop can probe one index past the last real element.
func Flags(s ops.Script, n, m int) (rx, ry []bool) {
	rx = make([]bool, n+1)
	ry = make([]bool, m+1)
	for _, op := range s {
		switch op.Kind {
		case ops.Delete:
			rx[op.PosOld] = true
		case ops.Insert:
			ry[op.PosNew] = true
		case ops.Change:
			rx[op.PosOld] = true
			ry[op.PosNew] = true
		}
	}
	return rx, ry
}

// Hunk describes a sequence of consecutive edits, bounded by up to [config.Config.Context]
// matching elements on either side.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	Edits  int // Number of edits in this hunk.
}

// Hunks groups a tagged edit script over sequences of length n (old) and m (new) into hunks,
// merging adjacent hunks whose context windows overlap.
func Hunks(s ops.Script, n, m int, cfg config.Config) (hunks []Hunk, edits int) {
	rx, ry := Flags(s, n, m)
	return HunksFromFlags(rx, ry, cfg)
}

// HunksFromFlags is the [Hunks] variant for callers that already have per-element result vectors,
// e.g. after a post-processing pass like the indent heuristic has adjusted them in place.
func HunksFromFlags(rx, ry []bool, cfg config.Config) (hunks []Hunk, edits int) {
	n, m := len(rx)-1, len(ry)-1
	context := cfg.Context

	s_, t := 0, 0    // current index into x, y
	hedits := 0      // number of edits in the current hunk
	s0, t0 := -1, -1 // start of the current hunk
	run := 0         // number of consecutive matches
	for s_ < n || t < m {
		del, ins := rx[s_], ry[t]
		if del || ins {
			run = 0 // not a match, reset run counter.

			if s0 < 0 {
				s0, t0 = max(0, s_-context), max(0, t-context)
				hedits = s_ - s0

				if len(hunks) > 0 && hunks[len(hunks)-1].S1 >= s0 {
					h := hunks[len(hunks)-1]
					edits -= h.Edits
					hedits = h.Edits + (s_ - h.S1)
					s0, t0 = h.S0, h.T0
					hunks = hunks[:len(hunks)-1]
				}
			}

			if del {
				s_++
				hedits++
			}
			if ins {
				t++
				hedits++
			}
		} else {
			s_++
			t++
			run++
			hedits++
		}
		if s0 >= 0 && (run >= context || s_ == n && t == m) {
			hunks = append(hunks, Hunk{s0, s_, t0, t, hedits})
			s0, t0 = -1, -1
			edits += hedits
		}
	}
	return hunks, edits
}
