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

// Package lcs extracts the longest common subsequence of two sequences using the same
// middle-snake recursion as package script, but emitting snake contents instead of edit
// operations.
package lcs

import (
	"znkr.dev/myerscore/internal/myers"
)

// Extract returns the longest common subsequence of x and y.
func Extract[T comparable](x, y []T) []T {
	return ExtractFunc(x, y, func(a, b T) bool { return a == b })
}

// ExtractFunc is the Extract variant for elements without a comparable constraint.
func ExtractFunc[T any](x, y []T, eq func(T, T) bool) []T {
	return extract(x, y, eq)
}

func extract[T any](x, y []T, eq func(T, T) bool) []T {
	n, m := len(x), len(y)
	if n == 0 || m == 0 {
		return nil
	}
	snake := myers.FindMiddleSnakeFunc(x, y, eq)
	switch {
	case snake.D > 1:
		var out []T
		out = append(out, extract(x[:snake.X], y[:snake.Y], eq)...)
		out = append(out, x[snake.X:snake.U]...)
		out = append(out, extract(x[snake.U:], y[snake.V:], eq)...)
		return out
	case m > n:
		return append([]T(nil), x[:n]...)
	default:
		return append([]T(nil), y[:m]...)
	}
}
