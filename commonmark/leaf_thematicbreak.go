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

// thematicBreakMarkers are CommonMark's three valid thematic-break
// characters.
var thematicBreakMarkers = []rune{'-', '_', '*'}

// thematicBreakRune builds a rune-level combinator recognising a
// thematic break's content (CommonMark §4.3): 0-3 leading spaces, then at
// least 3 of a single marker character with any number of interspersed
// spaces/tabs, then trailing horizontal whitespace, then end of input.
func thematicBreakRune(marker rune) parser.RuneParser[*parseContext, struct{}] {
	markerOrSpace := parser.Choice(
		parser.Map(parser.Char[*parseContext](marker), func(rune) rune { return marker }),
		parser.SpaceOrTab[*parseContext](),
	)
	body := parser.Many1(markerOrSpace)
	return func(v parser.View[rune, *parseContext]) parser.Result[struct{}] {
		afterIndent := parser.UpTo3Spaces[*parseContext]()(v)
		cur := v.At(afterIndent.NextIndex())
		if c, ok := cur.Current(); ok && (c == ' ' || c == '\t') {
			return parser.Fail[struct{}]("thematic break", v.Index())
		}

		r := body(cur)
		if !r.Succeeded() {
			return parser.Fail[struct{}]("thematic break", v.Index())
		}
		count := 0
		for _, c := range r.Value() {
			if c == marker {
				count++
			}
		}
		if count < 3 {
			return parser.Fail[struct{}]("thematic break", v.Index())
		}
		after := cur.At(r.NextIndex())
		if !after.IsAtEnd() {
			return parser.Fail[struct{}]("thematic break", v.Index())
		}
		return parser.Succeed(struct{}{}, after.Index())
	}
}

// matchThematicBreak reports whether text is a complete thematic-break
// line.
func matchThematicBreak(text []rune) bool {
	v := parser.NewView(text, (*parseContext)(nil))
	for _, m := range thematicBreakMarkers {
		if thematicBreakRune(m)(v).Succeeded() {
			return true
		}
	}
	return false
}
