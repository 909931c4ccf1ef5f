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

// This file implements delimiter-run flanking classification and the
// matching walk that turns runs of '*'/'_' into Emphasis and
// StrongEmphasis nodes, including the "rule of 3" partial-consumption
// behaviour (CommonMark §4.6).
package commonmark

import "github.com/EricDw/parsek/parser"

// delimInfo describes one run of consecutive '*' or '_' characters that
// has not yet been resolved into an emphasis node. count shrinks as the
// matching walk consumes delimiters from either edge of the run.
type delimInfo struct {
	char     rune
	count    int
	canOpen  bool
	canClose bool
	start    int
}

// scanDelimiterRun consumes a maximal run of the same character at
// text[i] and classifies it as a left- and/or right-flanking delimiter
// run per CommonMark §4.6, returning the run's length.
func scanDelimiterRun(text []rune, i int) (length int, canOpen, canClose bool) {
	marker := text[i]
	j := i
	for j < len(text) && text[j] == marker {
		j++
	}
	length = j - i

	before, havePrev := precedingRune(text, i)
	after, haveNext := followingRune(text, j)

	beforeWhite := isUnicodeWhitespaceOrNone(before, havePrev)
	afterWhite := isUnicodeWhitespaceOrNone(after, haveNext)
	beforePunct := isPunctuationRune(before, havePrev)
	afterPunct := isPunctuationRune(after, haveNext)

	leftFlanking := !afterWhite && (!afterPunct || beforeWhite || beforePunct)
	rightFlanking := !beforeWhite && (!beforePunct || afterWhite || afterPunct)

	if marker == '_' {
		canOpen = leftFlanking && (!rightFlanking || beforePunct)
		canClose = rightFlanking && (!leftFlanking || afterPunct)
	} else {
		canOpen = leftFlanking
		canClose = rightFlanking
	}
	return length, canOpen, canClose
}

func precedingRune(text []rune, i int) (rune, bool) {
	if i == 0 {
		return 0, false
	}
	return text[i-1], true
}

func followingRune(text []rune, j int) (rune, bool) {
	if j >= len(text) {
		return 0, false
	}
	return text[j], true
}

func isUnicodeWhitespaceOrNone(r rune, present bool) bool {
	if !present {
		return true
	}
	return parser.IsUnicodeWhitespace(r)
}

func isPunctuationRune(r rune, present bool) bool {
	if !present {
		return false
	}
	return parser.IsUnicodePunctuation(r)
}

// resolveEmphasis runs the delimiter-matching walk over nodes, which
// must already have bracket (link/image) resolution completed, and
// returns the resulting sequence with matched delimiter runs replaced by
// Emphasis/StrongEmphasis nodes. Unmatched delimiter runs are left as
// delim items with their remaining count, to be flattened to literal
// text by flattenItems.
func resolveEmphasis(nodes []inlineItem) []inlineItem {
	for ci := 0; ci < len(nodes); ci++ {
		closer := nodes[ci].delim
		if closer == nil || !closer.canClose || closer.count == 0 {
			continue
		}
		oi := -1
		for k := ci - 1; k >= 0; k-- {
			opener := nodes[k].delim
			if opener == nil || opener.count == 0 {
				continue
			}
			if opener.char != closer.char || !opener.canOpen {
				continue
			}
			if (opener.canOpen && opener.canClose || closer.canOpen && closer.canClose) &&
				(opener.count+closer.count)%3 == 0 && opener.count%3 != 0 && closer.count%3 != 0 {
				continue
			}
			oi = k
			break
		}
		if oi < 0 {
			continue
		}
		opener := nodes[oi].delim
		use := 1
		kind := EmphasisKind
		if opener.count >= 2 && closer.count >= 2 {
			use = 2
			kind = StrongEmphasisKind
		}

		inner := resolveEmphasis(append([]inlineItem{}, nodes[oi+1:ci]...))
		newNode := &Inline{kind: kind, children: flattenItems(inner)}
		opener.count -= use
		closer.count -= use

		rebuilt := append([]inlineItem{}, nodes[:oi]...)
		newNodeIndex := oi
		if opener.count > 0 {
			rebuilt = append(rebuilt, nodes[oi])
			newNodeIndex++
		}
		rebuilt = append(rebuilt, inlineItem{resolved: newNode})
		if closer.count > 0 {
			rebuilt = append(rebuilt, nodes[ci])
		}
		rebuilt = append(rebuilt, nodes[ci+1:]...)
		nodes = rebuilt
		// Resume just before the resolved node rather than at oi: a
		// surviving opener must stay available only as an opener for
		// later closers, never be re-examined as this iteration's
		// closer. The surviving closer, if any, is reached naturally
		// by the loop's next increment and gets retried in its own
		// right as a closer.
		ci = newNodeIndex - 1
	}
	return nodes
}
