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

// Package testutil provides sequence and edit-script generators shared by the property and fuzz
// tests across this module.
package testutil

import (
	"math/rand/v2"

	"znkr.dev/myerscore/internal/ops"
)

// RandomEditScript returns an arbitrary, not-necessarily-minimal edit script transforming x into
// y: at every point where both a delete and an insert would make progress, it flips a coin rather
// than searching for the shorter alternative. It's used to check that the engine never produces a
// script longer than an ad-hoc valid one.
func RandomEditScript[T any](x, y []T, eq func(a, b T) bool, rng *rand.Rand) ops.Script {
	var s ops.Script
	n, m := len(x), len(y)
	i, j := 0, 0
	for i < n || j < m {
		for i < n && j < m && eq(x[i], y[j]) {
			i++
			j++
		}
		switch {
		case i < n && j < m:
			if rng.IntN(2) == 0 {
				s = append(s, ops.Op{Kind: ops.Delete, PosOld: i})
				i++
			} else {
				s = append(s, ops.Op{Kind: ops.Insert, PosOld: i, PosNew: j})
				j++
			}
		case i < n:
			s = append(s, ops.Op{Kind: ops.Delete, PosOld: i})
			i++
		case j < m:
			s = append(s, ops.Op{Kind: ops.Insert, PosOld: i, PosNew: j})
			j++
		}
	}
	return s
}

// RandomStrings draws two independent byte sequences over a small alphabet of the given size,
// with lengths up to maxLen. A small alphabet keeps the probability of incidental matches high
// enough to exercise nontrivial diagonals.
func RandomStrings(rng *rand.Rand, alphabetSize, maxLen int) (x, y []byte) {
	return randomSeq(rng, alphabetSize, maxLen), randomSeq(rng, alphabetSize, maxLen)
}

func randomSeq(rng *rand.Rand, alphabetSize, maxLen int) []byte {
	n := rng.IntN(maxLen + 1)
	s := make([]byte, n)
	for i := range s {
		s[i] = byte('a' + rng.IntN(alphabetSize))
	}
	return s
}

// RandomDiagonalPair builds a pair of sequences by walking a random sequence of match/delete/
// insert steps and materializing the elements those steps require, rather than drawing two
// sequences independently and hoping for overlap. This directly realizes a chosen set of
// diagonals in the edit graph instead of relying on incidental matches, giving denser coverage of
// the recursive script builder's split points.
func RandomDiagonalPair(rng *rand.Rand, alphabetSize, steps int) (x, y []byte) {
	nextSym := func() byte {
		return byte('a' + rng.IntN(alphabetSize))
	}
	for range steps {
		switch rng.IntN(3) {
		case 0: // match: append the same fresh symbol to both
			c := nextSym()
			x = append(x, c)
			y = append(y, c)
		case 1: // delete: only x gets the symbol
			x = append(x, nextSym())
		case 2: // insert: only y gets the symbol
			y = append(y, nextSym())
		}
	}
	return x, y
}

// BoundaryCases enumerates the fixed-shape sequence pairs that are easy to get wrong at the
// edges: both empty, one empty, identical, reversed, lengths differing by one, and even/odd
// length combinations.
func BoundaryCases() [][2][]byte {
	return [][2][]byte{
		{nil, nil},
		{[]byte("a"), nil},
		{nil, []byte("a")},
		{[]byte("abc"), []byte("abc")},
		{[]byte("abc"), []byte("cba")},
		{[]byte("abc"), []byte("abcd")},
		{[]byte("abcd"), []byte("abc")},
		{[]byte("abcdef"), []byte("fedcba")},
		{[]byte("abcde"), []byte("edcba")},
	}
}
