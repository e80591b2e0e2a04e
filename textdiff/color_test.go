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

package textdiff

import (
	"strings"
	"testing"

	"znkr.dev/myerscore/textdiff/color"
)

func TestUnifiedColorPlainMatchesUnified(t *testing.T) {
	// With no color options at all, UnifiedColor should emit no escape sequences, and its output
	// should be identical to the uncolored rendering.
	x := "a\nb\nc\n"
	y := "a\nB\nc\n"

	got := UnifiedColor(x, y, nil)
	if strings.Contains(got, "\033[") {
		t.Errorf("UnifiedColor(...) with no color options emitted an escape sequence:\n%s", got)
	}

	want := Unified(x, y)
	if got != want {
		t.Errorf("UnifiedColor(...) with no color options = %q, want %q", got, want)
	}
}

func TestUnifiedColorHighlightsChangedWord(t *testing.T) {
	// "world" and "there" share only the letter 'r' as a common subsequence, so the highlighted
	// spans are split around it: "wo"/"ld" deleted, "r" left uncolored (no match color
	// configured), "the"/"e" inserted.
	x := "hello world\n"
	y := "hello there\n"

	got := UnifiedColor(x, y, []color.Option{
		color.Deletes(31),
		color.Inserts(32),
	})

	for _, want := range []string{
		"\033[31m" + "wo" + ansiReset,
		"\033[31m" + "ld" + ansiReset,
		"\033[32m" + "the" + ansiReset,
		"\033[32m" + "e" + ansiReset,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("UnifiedColor(...) = %q, want it to contain %q", got, want)
		}
	}
	if strings.Contains(got, "\033[31mhello") {
		t.Errorf("UnifiedColor(...) = %q, unchanged prefix should not be colored as a delete", got)
	}
}

func TestUnifiedColorHunkHeader(t *testing.T) {
	x := "a\n"
	y := "b\n"
	got := UnifiedColor(x, y, []color.Option{color.HunkHeaders(1, 33)})
	want := "\033[1;33m"
	if !strings.Contains(got, want) {
		t.Errorf("UnifiedColor(...) = %q, want it to contain %q (hunk header color)", got, want)
	}
}
