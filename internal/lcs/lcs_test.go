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

package lcs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func splitChars(s string) []string { return strings.Split(s, "") }

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []string
	}{
		{name: "both-empty", x: nil, y: nil, want: nil},
		{name: "x-empty", x: nil, y: splitChars("abc"), want: nil},
		{name: "y-empty", x: splitChars("abc"), y: nil, want: nil},
		{name: "identical", x: splitChars("abcd"), y: splitChars("abcd"), want: splitChars("abcd")},
		{name: "no-common-elements", x: splitChars("ab"), y: splitChars("xy"), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%v, %v) mismatch (-want +got):\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func TestExtractABCABBA(t *testing.T) {
	x := splitChars("ABCABBA")
	y := splitChars("CBABAC")
	got := Extract(x, y)
	if len(got) != 4 {
		t.Fatalf("Extract(%q, %q) = %q, want length 4", x, y, got)
	}
}
