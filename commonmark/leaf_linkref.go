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

// This file implements the link reference definition leaf block,
// "[label]: destination \"title\"", which spans one to three lines and
// never produces rendered content of its own.
package commonmark

import "github.com/EricDw/parsek/parser"

// linkReferenceDefinition is a successfully parsed reference definition.
type linkReferenceDefinition struct {
	label       string
	destination string
	title       string
	titlePresent bool
}

// tryLinkReferenceDefinition attempts to match a link reference
// definition starting at the first line of lines, returning the
// definition and the number of lines it consumed. It does not itself
// enforce the "at most 3 leading spaces" rule on continuation lines
// beyond what scanLinkTitle already accepts by operating over a
// joined rune stream with line endings folded in.
func tryLinkReferenceDefinition(lines []line) (linkReferenceDefinition, int, bool) {
	joined, lineStarts := joinLinesWithNewlines(lines)
	v := newCMView(joined)

	indentResult := parser.UpTo3Spaces[*parseContext]()(v)
	cur := v.At(indentResult.NextIndex())

	labelResult := scanLinkLabel(cur)
	if !labelResult.Succeeded() {
		return linkReferenceDefinition{}, 0, false
	}
	cur = cur.At(labelResult.NextIndex())

	colon, ok := cur.Current()
	if !ok || colon != ':' {
		return linkReferenceDefinition{}, 0, false
	}
	cur = cur.Advance(1)

	cur = skipOptionalLineBreakAndSpace(cur)

	destResult := scanLinkDestination(cur)
	if !destResult.Succeeded() {
		return linkReferenceDefinition{}, 0, false
	}
	cur = cur.At(destResult.NextIndex())

	def := linkReferenceDefinition{label: labelResult.Value(), destination: destResult.Value()}

	afterDest := cur
	titleLineStart := cur
	cur = skipRequiredLineBreakAndSpace(cur)
	if cur.Index() != titleLineStart.Index() || atLineStart(cur, lineStarts) {
		titleResult := scanLinkTitle(cur)
		if titleResult.Succeeded() {
			afterTitle := cur.At(titleResult.NextIndex())
			if restOfLineIsBlank(afterTitle, joined) {
				def.title = titleResult.Value()
				def.titlePresent = true
				return def, lineCountFor(afterTitle.Index(), lineStarts), true
			}
		}
	}

	if restOfLineIsBlank(afterDest, joined) {
		return def, lineCountFor(afterDest.Index(), lineStarts), true
	}
	return linkReferenceDefinition{}, 0, false
}

// joinLinesWithNewlines concatenates line texts with '\n' separators and
// returns the rune index at which each line begins in the joined buffer.
func joinLinesWithNewlines(lines []line) (joined []rune, lineStarts []int) {
	lineStarts = make([]int, 0, len(lines))
	for i, ln := range lines {
		lineStarts = append(lineStarts, len(joined))
		joined = append(joined, ln.text...)
		if i != len(lines)-1 {
			joined = append(joined, '\n')
		}
	}
	return joined, lineStarts
}

func atLineStart(v cmView, lineStarts []int) bool {
	for _, s := range lineStarts {
		if v.Index() == s {
			return true
		}
	}
	return false
}

func lineCountFor(index int, lineStarts []int) int {
	count := 1
	for _, s := range lineStarts {
		if s > 0 && s <= index {
			count++
		}
	}
	return count
}

// skipOptionalLineBreakAndSpace skips horizontal whitespace, optionally
// followed by one line ending and more horizontal whitespace, between the
// ':' and the destination.
func skipOptionalLineBreakAndSpace(v cmView) cmView {
	cur := v
	sp := parser.Many(parser.SpaceOrTab[*parseContext]())(cur)
	cur = cur.At(sp.NextIndex())
	if c, ok := cur.Current(); ok && c == '\n' {
		cur = cur.Advance(1)
		sp2 := parser.Many(parser.SpaceOrTab[*parseContext]())(cur)
		cur = cur.At(sp2.NextIndex())
	}
	return cur
}

// skipRequiredLineBreakAndSpace skips the whitespace between the
// destination and a possible title, which must include at least one
// space, tab, or line ending.
func skipRequiredLineBreakAndSpace(v cmView) cmView {
	cur := v
	any := false
	for {
		c, ok := cur.Current()
		if !ok || (c != ' ' && c != '\t' && c != '\n') {
			break
		}
		cur = cur.Advance(1)
		any = true
	}
	if !any {
		return v
	}
	return cur
}

func restOfLineIsBlank(v cmView, joined []rune) bool {
	rest := joined[v.Index():]
	for i, r := range rest {
		if r == '\n' {
			return isBlankText(rest[:i])
		}
	}
	return isBlankText(rest)
}
