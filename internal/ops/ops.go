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

// Package ops contains the tagged edit-operation record that's shared by every package that
// produces or consumes edit scripts: internal/script, internal/edits, and the exported diff
// package, which simply aliases these types.
//
// Representing scripts as a flat []Op instead of per-element boolean result vectors (as this
// package's sibling implementations in the wild tend to do) lets internal/script.Build describe
// positions directly in terms of the original old/new sequences, without a separate translation
// step from a match/mismatch vector.
package ops

// Kind identifies the variant of an [Op].
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	// Delete removes the element at PosOld from the old sequence.
	Delete Kind = iota
	// Insert inserts the element at PosNew from the new sequence before PosOld in the old
	// sequence.
	Insert
	// Change is introduced by Simplify; it pairs a Delete and an Insert that occur at the same
	// position into a single operation. Semantically equivalent to Delete{PosOld} immediately
	// followed by Insert{PosOld, PosNew}.
	Change
)

// Op is a single edit operation. Positions refer to indices into the original old/new sequences,
// never into an intermediate state.
type Op struct {
	Kind   Kind
	PosOld int // index into the old sequence
	PosNew int // index into the new sequence; meaningful for Insert and Change only
}

// Script is an ordered edit script. PosOld is nondecreasing across the script. Where PosOld is
// equal, the relative order of inserts and deletes is not fixed: a script from Build can place
// inserts before a delete at the same PosOld.
type Script []Op
