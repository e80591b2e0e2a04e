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

// Package script builds, simplifies, and applies the tagged edit scripts produced from a middle
// snake search. Build recurses on the two rectangles flanking each middle snake found by
// [myers.FindMiddleSnakeFunc] until only trivial, single-sided pieces remain; Simplify then walks
// the resulting script once to pair up adjacent deletes and inserts into Change operations, and
// Apply replays a script against the original sequence to reconstruct the other one.
package script

import (
	"fmt"

	"znkr.dev/myerscore/internal/myers"
	"znkr.dev/myerscore/internal/ops"
)

// Build returns the canonical edit script transforming x into y.
func Build[T comparable](x, y []T) ops.Script {
	return BuildFunc(x, y, func(a, b T) bool { return a == b })
}

// BuildFunc is the Build variant for elements without a comparable constraint.
func BuildFunc[T any](x, y []T, eq func(T, T) bool) ops.Script {
	return build(x, y, eq, 0, 0)
}

// build produces the script for x[0:len(x)] against y[0:len(y)], labelling emitted operations
// with baseX/baseY, the absolute offsets of this window into the original sequences.
func build[T any](x, y []T, eq func(T, T) bool, baseX, baseY int) ops.Script {
	n, m := len(x), len(y)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		s := make(ops.Script, m)
		for j := 0; j < m; j++ {
			s[j] = ops.Op{Kind: ops.Insert, PosOld: baseX, PosNew: baseY + j}
		}
		return s
	case m == 0:
		s := make(ops.Script, n)
		for i := 0; i < n; i++ {
			s[i] = ops.Op{Kind: ops.Delete, PosOld: baseX + i}
		}
		return s
	}

	snake := myers.FindMiddleSnakeFunc(x, y, eq)
	switch {
	case snake.D > 1 || (snake.X != snake.U && snake.Y != snake.V):
		lo := build(x[:snake.X], y[:snake.Y], eq, baseX, baseY)
		hi := build(x[snake.U:], y[snake.V:], eq, baseX+snake.U, baseY+snake.V)
		return append(lo, hi...)
	case m > n:
		return ops.Script{{Kind: ops.Insert, PosOld: baseX + n, PosNew: baseY + m - 1}}
	case n > m:
		return ops.Script{{Kind: ops.Delete, PosOld: baseX + n - 1}}
	default:
		return nil
	}
}

// Simplify collapses maximal runs of adjacent deletes and inserts that share a position_old
// anchor into Change operations, pairing them in order. Leftover inserts (when a run has more
// inserts than deletes) are shifted right so their PosOld reflects the position after the
// preceding Change operations; leftover deletes pass through unchanged. Simplify is idempotent.
func Simplify(s ops.Script) ops.Script {
	out := make(ops.Script, 0, len(s))
	i := 0
	for i < len(s) {
		start := i
		lastPos := s[i].PosOld
		var ins, dels []int
		for i < len(s) {
			op := s[i]
			if op.Kind == ops.Insert && op.PosOld == lastPos {
				ins = append(ins, i)
				i++
				continue
			}
			if op.Kind == ops.Delete && op.PosOld == lastPos {
				dels = append(dels, i)
				lastPos = op.PosOld + 1
				i++
				continue
			}
			break
		}
		if len(ins) == 0 && len(dels) == 0 {
			// Neither a Delete nor an Insert at this anchor (e.g. an already-merged Change):
			// pass the operation through unchanged and move on.
			out = append(out, s[i])
			i++
			continue
		}
		out = append(out, pairChangeRegion(s, start, ins, dels)...)
	}
	return out
}

// pairChangeRegion implements the pairing rule for one maximal insert/delete run: the first
// min(len(ins), len(dels)) of each are merged into Change operations in order, any leftover
// inserts are placed at the run's anchor plus that count (just after the Change operations), and
// any leftover deletes pass through unchanged.
func pairChangeRegion(s ops.Script, anchor int, ins, dels []int) ops.Script {
	square := min(len(ins), len(dels))
	out := make(ops.Script, 0, len(ins)+len(dels))
	for n := 0; n < square; n++ {
		out = append(out, ops.Op{
			Kind:   ops.Change,
			PosOld: s[dels[n]].PosOld,
			PosNew: s[ins[n]].PosNew,
		})
	}
	for n := square; n < len(ins); n++ {
		op := s[ins[n]]
		shift := square - (op.PosOld - s[anchor].PosOld)
		out = append(out, ops.Op{Kind: ops.Insert, PosOld: op.PosOld + shift, PosNew: op.PosNew})
	}
	for n := square; n < len(dels); n++ {
		out = append(out, s[dels[n]])
	}
	return out
}

// ErrInvalidScript is returned by Apply when a script's operations are not in the nondecreasing
// PosOld order that the edit-script invariants require.
var ErrInvalidScript = fmt.Errorf("script: invalid edit script")

// Apply reconstructs the new sequence from x and a script describing how to transform it,
// whether or not the script has been simplified.
func Apply[T any](x []T, y []T, s ops.Script) ([]T, error) {
	out := make([]T, 0, len(x)+len(s))
	i := 0
	for _, op := range s {
		if op.PosOld < i {
			return nil, fmt.Errorf("%w: position_old %d precedes cursor %d", ErrInvalidScript, op.PosOld, i)
		}
		if op.PosOld > len(x) {
			return nil, fmt.Errorf("%w: position_old %d out of bounds for sequence of length %d", ErrInvalidScript, op.PosOld, len(x))
		}
		out = append(out, x[i:op.PosOld]...)
		i = op.PosOld
		switch op.Kind {
		case ops.Delete:
			i++
		case ops.Insert:
			if op.PosNew < 0 || op.PosNew >= len(y) {
				return nil, fmt.Errorf("%w: position_new %d out of bounds for sequence of length %d", ErrInvalidScript, op.PosNew, len(y))
			}
			out = append(out, y[op.PosNew])
		case ops.Change:
			if op.PosNew < 0 || op.PosNew >= len(y) {
				return nil, fmt.Errorf("%w: position_new %d out of bounds for sequence of length %d", ErrInvalidScript, op.PosNew, len(y))
			}
			out = append(out, y[op.PosNew])
			i++
		default:
			return nil, fmt.Errorf("%w: unknown operation kind %v", ErrInvalidScript, op.Kind)
		}
	}
	if i > len(x) {
		return nil, fmt.Errorf("%w: cursor %d out of bounds for sequence of length %d", ErrInvalidScript, i, len(x))
	}
	out = append(out, x[i:]...)
	return out, nil
}
