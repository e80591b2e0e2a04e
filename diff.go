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

// Package diff provides functions to efficiently compare two slices similar to the Unix diff
// command line tool used to compare files.
//
// Two API levels are exposed: [Hunks], [HunksFunc], [Edits] and [EditsFunc] return ergonomic,
// ready-to-render results grouped by match/delete/insert. [Diff], [DiffFunc], [Simplify] and
// [Apply] expose the underlying tagged edit script (delete/insert/change operations addressed by
// position in the original sequences) for callers that want to store, transmit or replay a diff
// rather than just render it.
package diff

import (
	"znkr.dev/myerscore/internal/config"
	"znkr.dev/myerscore/internal/lcs"
	"znkr.dev/myerscore/internal/myers"
	"znkr.dev/myerscore/internal/ops"
	"znkr.dev/myerscore/internal/script"
)

// Kind identifies the variant of an [Op] in a tagged edit [Script].
type Kind = ops.Kind

const (
	KindDelete = ops.Delete
	KindInsert = ops.Insert
	KindChange = ops.Change
)

// Op is a single tagged edit operation, addressed by position in the original old/new sequences.
type Op = ops.Op

// Script is an ordered tagged edit script, as produced by [Diff] and [DiffFunc] and consumed by
// [Apply] and [Simplify].
type Script = ops.Script

// ErrInvalidScript is returned by [Apply] when a script's operations are not in the
// nondecreasing position_old order required of a well-formed script.
var ErrInvalidScript = script.ErrInvalidScript

// Snake describes a middle snake: a maximal run of matching elements lying on a shortest edit
// path between two sequences, together with the edit distance D of the comparison it was found
// in.
type Snake = myers.Snake

// Diff compares x and y and returns the minimal tagged edit script transforming x into y.
//
// Unlike [Edits], which returns one record per input element, Diff returns only the
// delete/insert operations, addressed by position in x and y; apply it with [Apply].
func Diff[T comparable](x, y []T) Script {
	return script.Build(x, y)
}

// DiffFunc is the Diff variant for elements without a comparable constraint.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) Script {
	return script.BuildFunc(x, y, eq)
}

// Simplify collapses adjacent delete/insert pairs that share a position into change operations,
// for more compact rendering. Simplify is idempotent: simplifying an already-simplified script
// is a no-op.
func Simplify(s Script) Script {
	return script.Simplify(s)
}

// Apply reconstructs y from x and a script describing how to transform one into the other. The
// script may or may not have been [Simplify]-ed.
func Apply[T any](x, y []T, s Script) ([]T, error) {
	return script.Apply(x, y, s)
}

// Length returns the minimum number of single-element insertions and deletions needed to turn x
// into y. It is equivalent to len([Diff](x, y)) but doesn't materialize the script.
func Length[T comparable](x, y []T) int {
	return myers.Length(x, y)
}

// LengthFunc is the Length variant for elements without a comparable constraint.
func LengthFunc[T any](x, y []T, eq func(a, b T) bool) int {
	return myers.LengthFunc(x, y, eq)
}

// LCS returns the longest common subsequence of x and y.
func LCS[T comparable](x, y []T) []T {
	return lcs.Extract(x, y)
}

// LCSFunc is the LCS variant for elements without a comparable constraint.
func LCSFunc[T any](x, y []T, eq func(a, b T) bool) []T {
	return lcs.ExtractFunc(x, y, eq)
}

// FindMiddleSnake returns the edit distance and a middle snake for comparing x to y. It is
// exposed primarily for testing the underlying search against independent implementations.
func FindMiddleSnake[T comparable](x, y []T) Snake {
	return myers.FindMiddleSnake(x, y)
}

// FindMiddleSnakeFunc is the FindMiddleSnake variant for elements without a comparable
// constraint.
func FindMiddleSnakeFunc[T any](x, y []T, eq func(a, b T) bool) Snake {
	return myers.FindMiddleSnakeFunc(x, y, eq)
}

// EditOp describes an edit operation in the ergonomic, per-element [Edit] API.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=EditOp
type EditOp int

const (
	Match  EditOp = iota // Two slice elements match
	Delete               // A deletion of an element from the left slice
	Insert               // An insertion of an element from the right slice
)

// Edit describes a single edit of a diff.
//
//   - For Match, X and Y are set to their respective elements.
//   - For Delete, X is set to the element of the left slice that's missing in the right one and Y
//     is set to the zero value.
//   - For Insert, Y is set to the element of the right slice that's missing in the left one and X
//     is set to the zero value.
type Edit[T any] struct {
	Op   EditOp
	X, Y T
}

// Hunk describes a number of consecutive edits.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// The output is a sequence of hunks that each describe a number of consecutive edits. Hunks
// include a number of matching elements before and after the last delete or insert operation. The
// number of elements can be configured using [Context].
//
// If x and y are identical, the output has length zero.
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	return HunksFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other.
//
// The output is a sequence of hunks that each describe a number of consecutive edits. Hunks
// include a number of matching elements before and after the last delete or insert operation. The
// number of elements can be configured using [Context].
//
// If x and y are identical, the output has length zero.
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Optimal)
	rx, ry := scriptFlags(x, y, eq, cfg)

	context := cfg.Context // for convenience

	// State being used in the loop below.
	s, t := 0, 0         // current index into x, y
	s0, t0 := 0, 0       // start of the current in-progress hunk
	var hedits []Edit[T] // edits for the current in-progress hunk
	run := 0             // number of consecutive matches

	var hunks []Hunk[T]
	finishHunk := func() {
		h := Hunk[T]{
			PosX:  s0,
			EndX:  s,
			PosY:  t0,
			EndY:  t,
			Edits: hedits,
		}
		hunks = append(hunks, h)
		hedits = nil
	}

	// rx and ry carry independent per-sequence flags, so s and t must be advanced independently
	// rather than through a single shared index.
	for s < len(x) || t < len(y) {
		del, ins := rx[s], ry[t]

		if del || ins {
			run = 0

			if len(hedits) == 0 {
				s0, t0 = max(0, s-context), max(0, t-context)
				s1, t1 := s0, t0

				if len(hunks) > 0 && hunks[len(hunks)-1].EndX >= s0 {
					prev := hunks[len(hunks)-1]
					s1, t1 = prev.EndX, prev.EndY
					s0, t0 = prev.PosX, prev.PosY
					hedits = prev.Edits
					hunks = hunks[:len(hunks)-1]
				}

				for u, v := s1, t1; u < s && v < t; u, v = u+1, v+1 {
					hedits = append(hedits, Edit[T]{
						Op: Match,
						X:  x[u],
						Y:  y[v],
					})
				}
			}
		}

		// Handle one of these cases per iteration. That way consecutive deletions followed by
		// insertions are grouped by edit operations instead of being interleaved.
		switch {
		case del:
			hedits = append(hedits, Edit[T]{
				Op: Delete,
				X:  x[s],
			})
			s++
		case ins:
			hedits = append(hedits, Edit[T]{
				Op: Insert,
				Y:  y[t],
			})
			t++
		default:
			if len(hedits) > 0 && run >= context {
				finishHunk()
			}
			if len(hedits) > 0 {
				hedits = append(hedits, Edit[T]{
					Op: Match,
					X:  x[s],
					Y:  y[t],
				})
			}
			s++
			t++
			run++
		}
	}
	if len(hedits) > 0 {
		finishHunk()
	}
	return hunks
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Edits returns edits for every element in the input. If both x and y are identical, the output
// will consist of a match edit for every input element.
func Edits[T comparable](x, y []T, opts ...Option) []Edit[T] {
	return EditsFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other.
//
// EditsFunc returns edits for every element in the input. If both x and y are identical, the
// output will consist of a match edit for every input element.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.Optimal)
	rx, ry := scriptFlags(x, y, eq, cfg)

	var ret []Edit[T]
	for s, t := 0, 0; s < len(x) || t < len(y); {
		switch {
		case rx[s]:
			ret = append(ret, Edit[T]{Op: Delete, X: x[s]})
			s++
		case ry[t]:
			ret = append(ret, Edit[T]{Op: Insert, Y: y[t]})
			t++
		default:
			ret = append(ret, Edit[T]{Op: Match, X: x[s], Y: y[t]})
			s++
			t++
		}
	}
	return ret
}

// scriptFlags runs the tagged-operation search and translates it into the per-sequence boolean
// vectors the Hunks/Edits windowing logic below was written against: rx[s] reports whether x[s]
// is deleted, ry[t] whether y[t] is inserted. Both slices carry one extra trailing element so
// the windowing loops above can probe one past the last real index.
func scriptFlags[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool) {
	rx = make([]bool, len(x)+1)
	ry = make([]bool, len(y)+1)
	s := script.BuildFunc(x, y, eq)
	_ = cfg // reserved for the Optimal heuristic switch once a fast-path search is wired in
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
