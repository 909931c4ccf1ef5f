// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

import "github.com/EricDw/parsek/parser"

// tabStopSize is the column multiple a tab advances to when computing
// block-structure indentation (CommonMark §4.2, "Tabs").
const tabStopSize = 4

// line is the block layer's token type: one line of source with its line
// ending already stripped. The block parsers iterate over a []line
// slice; single-line recognisers and the inline layer run over
// parser.View[rune, *parseContext] built from a line's or span's runes.
type line struct {
	text []rune
}

// lineView is the block layer's View specialisation.
type lineView = parser.View[line, *parseContext]

// lineParser is the block layer's Parser specialisation.
type lineParser[V any] = parser.Parser[line, *parseContext, V]

// splitLines splits src on CommonMark line endings ("\n", "\r\n", lone
// "\r"), returning one line per line of input with the ending stripped.
// A trailing line ending produces no extra empty final line; a non-empty
// final line without a trailing ending is still included.
func splitLines(src []rune) []line {
	var lines []line
	start := 0
	i := 0
	for i < len(src) {
		c := src[i]
		if c == '\n' {
			lines = append(lines, line{text: src[start:i]})
			i++
			start = i
			continue
		}
		if c == '\r' {
			lines = append(lines, line{text: src[start:i]})
			i++
			if i < len(src) && src[i] == '\n' {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(src) {
		lines = append(lines, line{text: src[start:]})
	}
	return lines
}

// isBlankText reports whether text consists only of spaces and tabs.
func isBlankText(text []rune) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

func (l line) isBlank() bool {
	return isBlankText(l.text)
}

// leadingIndent returns the column width of the leading run of spaces
// and tabs in text (tabs advance to the next 4-column stop), and the
// number of runes that whitespace run occupies.
func leadingIndent(text []rune) (cols int, runes int) {
	col := 0
	for i, r := range text {
		switch r {
		case ' ':
			col++
		case '\t':
			col += tabStopSize - col%tabStopSize
		default:
			return col, i
		}
	}
	return col, len(text)
}

// stripColumns removes n columns' worth of leading whitespace from text,
// splitting a tab that straddles the cut into literal spaces for the
// remainder, so that content beginning mid-tab is preserved as the
// spaces it would have expanded to (CommonMark §4.7).
func stripColumns(text []rune, n int) []rune {
	if n <= 0 {
		return text
	}
	col := 0
	for i, r := range text {
		if col >= n {
			return text[i:]
		}
		switch r {
		case ' ':
			col++
		case '\t':
			next := col + (tabStopSize - col%tabStopSize)
			if next > n {
				extra := next - n
				out := make([]rune, 0, extra+len(text)-i-1)
				for k := 0; k < extra; k++ {
					out = append(out, ' ')
				}
				return append(out, text[i+1:]...)
			}
			col = next
		default:
			return text[i:]
		}
	}
	return nil
}
