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
// command line tool to compare files.
//
// The main functions are [Hunks], which groups changes into contextual blocks, and [Edits], which
// returns every individual change. The comparison functions always compute a minimal edit script;
// [Optimal] is accepted for API compatibility with libraries that apply a cost-limiting heuristic
// for large, very different inputs, but has no additional effect here.
//
// Performance: time complexity is O(ND) where N = len(x) + len(y) and D is the number of edits,
// using O(min(len(x), len(y))) working memory for the search itself.
//
// Note: For a line-by-line diff of text, please see [znkr.dev/myerscore/textdiff].
//
// [znkr.dev/myerscore/textdiff]: https://pkg.go.dev/znkr.dev/myerscore/textdiff
package diff
