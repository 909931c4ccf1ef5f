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

import (
	"strings"

	"github.com/EricDw/parsek/parser"
)

// isIndentedCodeLine reports whether a non-blank line begins with 4
// spaces (or a tab reaching column 4) of indent (CommonMark §4.3).
func isIndentedCodeLine(text []rune) bool {
	cols, _ := leadingIndent(text)
	return cols >= 4
}

// stripIndentedCodePrefix removes exactly one 4-column indent prefix
// from a line known to qualify via isIndentedCodeLine.
func stripIndentedCodePrefix(text []rune) []rune {
	return stripColumns(text, 4)
}

// fenceOpen describes a recognised opening code fence line.
type fenceOpen struct {
	indent  int
	char    rune
	length  int
	info    string
	hasInfo bool
}

// tryFenceOpen recognises an opening code-fence line: 0-3 spaces, a run
// of 3+ of the same fence character ('`' or '~'), then an info string.
// For backtick fences the info string must not itself contain a
// backtick (CommonMark §4.3).
func tryFenceOpen(text []rune) (fenceOpen, bool) {
	v := parser.NewView(text, (*parseContext)(nil))
	afterIndent := parser.UpTo3Spaces[*parseContext]()(v)
	indent := afterIndent.Value()
	cur := v.At(afterIndent.NextIndex())

	c, ok := cur.Current()
	if !ok || (c != '`' && c != '~') {
		return fenceOpen{}, false
	}
	run := parser.Many1(parser.Char[*parseContext](c))(cur)
	if len(run.Value()) < 3 {
		return fenceOpen{}, false
	}
	rest := text[run.NextIndex():]
	infoRunes := trimHorizontalSpace(rest)
	if c == '`' && strings.ContainsRune(string(infoRunes), '`') {
		return fenceOpen{}, false
	}
	return fenceOpen{
		indent:  indent,
		char:    c,
		length:  len(run.Value()),
		info:    string(infoRunes),
		hasInfo: len(rest) > 0,
	}, true
}

// isFenceClose reports whether text is a valid closing fence for an
// opening fence of the given character and length: 0-3 spaces, a run of
// at least length of char, then only horizontal whitespace.
func isFenceClose(text []rune, char rune, length int) bool {
	v := parser.NewView(text, (*parseContext)(nil))
	afterIndent := parser.UpTo3Spaces[*parseContext]()(v)
	cur := v.At(afterIndent.NextIndex())
	run := parser.Many1(parser.Char[*parseContext](char))(cur)
	if !run.Succeeded() || len(run.Value()) < length {
		return false
	}
	after := cur.At(run.NextIndex())
	trailing := parser.Many(parser.SpaceOrTab[*parseContext]())(after)
	final := after.At(trailing.NextIndex())
	return final.IsAtEnd()
}
