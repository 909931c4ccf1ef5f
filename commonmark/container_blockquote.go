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

// This file implements the block quote container: marker
// stripping and the lazy-continuation rule (CommonMark §4.4).
package commonmark

// stripBlockQuoteMarker recognises a block quote marker at the start of
// text (0-3 leading spaces, then '>', then an optional single space or
// tab) and returns the remainder of the line after the marker.
func stripBlockQuoteMarker(text []rune) ([]rune, bool) {
	cols, n := leadingIndent(text)
	if cols > 3 {
		return nil, false
	}
	rest := text[n:]
	if len(rest) == 0 || rest[0] != '>' {
		return nil, false
	}
	rest = rest[1:]
	if len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	} else if len(rest) > 0 && rest[0] == '\t' {
		rest = stripColumns(rest, 1)
	}
	return rest, true
}

func isBlockQuoteStart(text []rune) bool {
	_, ok := stripBlockQuoteMarker(text)
	return ok
}

// scanBlockQuote consumes a block quote starting at lines[0], following
// marked continuation lines and lazily-continuing unmarked lines that
// follow a non-blank line already inside the quote, then recursively
// parses the stripped content as a nested block sequence. It reports the
// number of source lines consumed.
func scanBlockQuote(lines []line, refs ReferenceMap) (*Block, int) {
	var inner []line
	pos := 0
	lastWasBlank := false
	for pos < len(lines) {
		ln := lines[pos]
		if stripped, ok := stripBlockQuoteMarker(ln.text); ok {
			inner = append(inner, line{text: stripped})
			pos++
			lastWasBlank = isBlankText(stripped)
			continue
		}
		if ln.isBlank() {
			break
		}
		if pos == 0 || lastWasBlank {
			break
		}
		if isParagraphInterrupt(ln.text) {
			break
		}
		inner = append(inner, ln)
		lastWasBlank = false
		pos++
	}
	children := parseBlockSequence(inner, refs)
	return &Block{kind: BlockQuoteKind, children: children}, pos
}
