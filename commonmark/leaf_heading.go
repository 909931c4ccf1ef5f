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

// atxOpener recognises the "0-3 spaces, 1-6 '#', (space/tab/EOL)" prefix
// of an ATX heading (CommonMark §4.3) and yields the heading level.
var atxOpener = parser.Bind(
	parser.And(parser.UpTo3Spaces[*parseContext](), parser.Many1(parser.Char[*parseContext]('#'))),
	func(p parser.Pair[int, []rune]) parser.RuneParser[*parseContext, int] {
		level := len(p.Second)
		return func(v parser.View[rune, *parseContext]) parser.Result[int] {
			if level > 6 {
				return parser.Fail[int]("ATX heading", v.Index())
			}
			c, ok := v.Current()
			if ok && c != ' ' && c != '\t' {
				return parser.Fail[int]("ATX heading", v.Index())
			}
			return parser.Succeed(level, v.Index())
		}
	},
)

// tryATXHeading reports whether text is an ATX heading line, returning
// its level and content, with surrounding whitespace and any closing '#'
// run removed.
func tryATXHeading(text []rune) (level int, content []rune, ok bool) {
	v := parser.NewView(text, (*parseContext)(nil))
	r := atxOpener(v)
	if !r.Succeeded() {
		return 0, nil, false
	}
	rest := text[r.NextIndex():]
	return r.Value(), atxContent(rest), true
}

// atxContent trims and strips the heading's optional closing "#" run per
// CommonMark §4.3: trim horizontal whitespace, strip a closing run of '#'
// iff preceded by a space or tab, then re-trim.
func atxContent(rest []rune) []rune {
	trimmed := trimHorizontalSpace(rest)
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '#' {
		end := len(trimmed)
		for end > 0 && trimmed[end-1] == '#' {
			end--
		}
		if end == 0 || trimmed[end-1] == ' ' || trimmed[end-1] == '\t' {
			trimmed = trimHorizontalSpace(trimmed[:end])
		}
	}
	return trimmed
}

func trimHorizontalSpace(text []rune) []rune {
	start, end := 0, len(text)
	for start < end && (text[start] == ' ' || text[start] == '\t') {
		start++
	}
	for end > start && (text[end-1] == ' ' || text[end-1] == '\t') {
		end--
	}
	return text[start:end]
}

// setextUnderline reports whether text is a setext underline: 0-3
// spaces, a run of a single '=' or '-', horizontal whitespace, end.
// It returns the heading level (1 for '=', 2 for '-').
func setextUnderline(text []rune) (level int, ok bool) {
	v := parser.NewView(text, (*parseContext)(nil))
	afterIndent := parser.UpTo3Spaces[*parseContext]()(v)
	cur := v.At(afterIndent.NextIndex())
	c, present := cur.Current()
	if !present || (c != '=' && c != '-') {
		return 0, false
	}
	run := parser.Many1(parser.Char[*parseContext](c))(cur)
	after := cur.At(run.NextIndex())
	trailing := parser.Many(parser.SpaceOrTab[*parseContext]())(after)
	final := after.At(trailing.NextIndex())
	if !final.IsAtEnd() {
		return 0, false
	}
	if c == '=' {
		return 1, true
	}
	return 2, true
}
