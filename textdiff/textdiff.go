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

// Package textdiff provides functions to efficiently compare text line by line.
package textdiff

import (
	"bytes"
	"fmt"
	"unsafe"

	"znkr.dev/myerscore"
	"znkr.dev/myerscore/internal/byteview"
	"znkr.dev/myerscore/internal/config"
	"znkr.dev/myerscore/internal/edits"
	"znkr.dev/myerscore/internal/indentheuristic"
	"znkr.dev/myerscore/internal/script"
	"znkr.dev/myerscore/textdiff/color"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"

	ansiReset = "\033[0m"
)

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The following options are supported: [diff.Context], [diff.Optimal], [IndentHeuristic]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Unified(x, y string, opts ...diff.Option) string {
	// This hackery let's us support both string and []byte types with the same implementation
	// without copying the inputs in or the outputs out. It's save because we never modify the
	// inputs or retain the output anywhere.
	xp, yp := unsafe.StringData(x), unsafe.StringData(y)
	out := UnifiedBytes(unsafe.Slice(xp, len(x)), unsafe.Slice(yp, len(y)), opts)
	return unsafe.String(unsafe.SliceData(out), len(out))
}

// UnifiedBytes compares the lines in x and y and returns the changes necessary to convert from one
// to the other in unified format.
//
// The following options are supported: [diff.Context], [diff.Optimal], [IndentHeuristic]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func UnifiedBytes(x, y []byte, opts []diff.Option) []byte {
	cfg := config.FromOptions(opts, config.Context|config.Optimal|config.IndentHeuristic)
	xlines, ylines, rx, ry := linesAndFlags(x, y, cfg)
	hunks, _ := edits.HunksFromFlags(rx, ry, cfg)
	if len(hunks) == 0 {
		return nil
	}

	var b bytes.Buffer
	for i, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			var prefix string
			var line []byte
			switch {
			case rx[s]:
				prefix = prefixDelete
				line = xlines[s].RawBytes()
				s++
			case ry[t]:
				prefix = prefixInsert
				line = ylines[t].RawBytes()
				t++
			default:
				prefix = prefixMatch
				line = xlines[s].RawBytes()
				s++
				t++
			}
			b.WriteString(prefix)
			b.Write(line)
			if i == len(hunks)-1 && (s == h.S1 || t == h.T1) && line[len(line)-1] != '\n' {
				b.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}
	return b.Bytes()
}

// UnifiedColor is the [Unified] variant that wraps hunk headers and changed lines in the ANSI
// escape sequences configured by colorOpts. Within a line that's one-to-one paired with its
// counterpart in an adjacent delete/insert run (see [color.Option]), only the code points that
// actually changed are highlighted; the rest of the line is rendered with the match color.
//
// The following options are supported: [diff.Context], [diff.Optimal], [IndentHeuristic]
func UnifiedColor(x, y string, colorOpts []color.Option, opts ...diff.Option) string {
	xp, yp := unsafe.StringData(x), unsafe.StringData(y)
	out := UnifiedColorBytes(unsafe.Slice(xp, len(x)), unsafe.Slice(yp, len(y)), colorOpts, opts)
	return unsafe.String(unsafe.SliceData(out), len(out))
}

// UnifiedColorBytes is the []byte variant of [UnifiedColor].
func UnifiedColorBytes(x, y []byte, colorOpts []color.Option, opts []diff.Option) []byte {
	cfg := config.FromOptions(opts, config.Context|config.Optimal|config.IndentHeuristic)
	var cc config.ColorConfig
	for _, o := range colorOpts {
		o(&cc)
	}

	xlines, ylines, rx, ry := linesAndFlags(x, y, cfg)
	hunks, _ := edits.HunksFromFlags(rx, ry, cfg)
	if len(hunks) == 0 {
		return nil
	}

	fwd, rev := changePairs(rx, ry)

	var b bytes.Buffer
	for _, h := range hunks {
		if cc.HunkHeader != "" {
			b.WriteString(cc.HunkHeader)
		}
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		if cc.HunkHeader != "" {
			b.WriteString(ansiReset)
		}
		b.WriteByte('\n')

		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			switch {
			case rx[s]:
				if pt, ok := fwd[s]; ok {
					writeIntraLine(&b, prefixDelete, cc, xlines[s], ylines[pt], true)
				} else {
					writePlainLine(&b, prefixDelete, cc.Delete, xlines[s])
				}
				s++
			case ry[t]:
				if ps, ok := rev[t]; ok {
					writeIntraLine(&b, prefixInsert, cc, xlines[ps], ylines[t], false)
				} else {
					writePlainLine(&b, prefixInsert, cc.Insert, ylines[t])
				}
				t++
			default:
				writePlainLine(&b, prefixMatch, cc.Match, xlines[s])
				s++
				t++
			}
		}
	}
	return b.Bytes()
}

func writePlainLine(b *bytes.Buffer, prefix, colorCode string, line byteview.ByteView) {
	b.WriteString(prefix)
	if colorCode != "" {
		b.WriteString(colorCode)
	}
	raw := line.RawBytes()
	b.Write(raw)
	if colorCode != "" {
		b.WriteString(ansiReset)
	}
	if len(raw) == 0 || raw[len(raw)-1] != '\n' {
		b.WriteString("\n\\ No newline at end of file\n")
	}
}

// writeIntraLine writes one side of a one-to-one paired delete/insert line, highlighting only the
// code point spans that differ between oldLine and newLine.
func writeIntraLine(b *bytes.Buffer, prefix string, cc config.ColorConfig, oldLine, newLine byteview.ByteView, wantOld bool) {
	units, marked := intraLineMarks(oldLine, newLine, wantOld)
	changeColor := cc.Insert
	line := newLine
	if wantOld {
		changeColor = cc.Delete
		line = oldLine
	}

	b.WriteString(prefix)
	for i := 0; i < len(units); {
		j := i + 1
		for j < len(units) && marked[j] == marked[i] {
			j++
		}
		c := cc.Match
		if marked[i] {
			c = changeColor
		}
		if c != "" {
			b.WriteString(c)
		}
		for _, u := range units[i:j] {
			b.WriteString(u.String())
		}
		if c != "" {
			b.WriteString(ansiReset)
		}
		i = j
	}
	raw := line.RawBytes()
	if len(raw) == 0 || raw[len(raw)-1] != '\n' {
		b.WriteString("\n\\ No newline at end of file\n")
	}
}

// intraLineMarks runs the core diff engine on the code points of a paired delete/insert line and
// reports, per code point of the requested side, whether it's part of a changed span.
func intraLineMarks(oldLine, newLine byteview.ByteView, wantOld bool) (units []byteview.ByteView, marked []bool) {
	oldUnits := byteview.GroupCodePoints(oldLine)
	newUnits := byteview.GroupCodePoints(newLine)
	s := script.Build(oldUnits, newUnits)
	rx, ry := edits.Flags(s, len(oldUnits), len(newUnits))
	if wantOld {
		return oldUnits, rx[:len(oldUnits)]
	}
	return newUnits, ry[:len(newUnits)]
}

// changePairs groups consecutive delete runs immediately followed by an insert run into
// one-to-one line pairings used for intra-line highlighting, pairing up to the shorter
// of the two run lengths. fwd maps a deleted line's old index to its paired inserted line's new
// index; rev is its inverse.
func changePairs(rx, ry []bool) (fwd, rev map[int]int) {
	fwd = make(map[int]int)
	rev = make(map[int]int)
	n, m := len(rx)-1, len(ry)-1
	s, t := 0, 0
	for s < n || t < m {
		switch {
		case s < n && rx[s]:
			delStart := s
			for s < n && rx[s] {
				s++
			}
			insStart := t
			for t < m && ry[t] {
				t++
			}
			pairLen := min(s-delStart, t-insStart)
			for i := range pairLen {
				fwd[delStart+i] = insStart + i
				rev[insStart+i] = delStart + i
			}
		case t < m && ry[t]:
			t++
		default:
			s++
			t++
		}
	}
	return fwd, rev
}

// linesAndFlags splits x and y into lines, computes the tagged edit script between them, and
// translates it into per-element result vectors, applying the indent heuristic when requested.
func linesAndFlags(x, y []byte, cfg config.Config) (xlines, ylines []byteview.ByteView, rx, ry []bool) {
	xv, yv := byteview.From(x), byteview.From(y)
	xlines, _ = byteview.SplitLines(xv)
	ylines, _ = byteview.SplitLines(yv)

	eq := func(a, b byteview.ByteView) bool { return a.String() == b.String() }
	s := script.BuildFunc(xlines, ylines, eq)
	rx, ry = edits.Flags(s, len(xlines), len(ylines))

	if cfg.IndentHeuristic {
		indentheuristic.Apply(xlines, ylines, rx, ry)
	}
	return xlines, ylines, rx, ry
}
