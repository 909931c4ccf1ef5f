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

// This file implements link/image bracket resolution: closing a
// "]" against the nearest active opener, trying the inline
// "(destination title)" form first and falling back to full, collapsed,
// and shortcut reference forms.
package commonmark

import "github.com/EricDw/parsek/parser"

// closeBracket handles a ']' encountered at text[i], consulting and
// mutating items/brackets in place, and returns the number of runes
// consumed starting at i (always at least 1).
func closeBracket(text []rune, i int, items *[]inlineItem, brackets *[]int, ctx *parseContext) int {
	if len(*brackets) == 0 {
		*items = appendText(*items, "]")
		return 1
	}
	bIdx := (*brackets)[len(*brackets)-1]
	*brackets = (*brackets)[:len(*brackets)-1]
	bracket := (*items)[bIdx].bracket
	if !bracket.active {
		*items = appendText(*items, "]")
		return 1
	}

	open := bracket.start + 1
	if bracket.isImage {
		open++
	}
	raw := string(text[open:i])

	rest := text[i+1:]
	if dest, title, titlePresent, consumedRest, ok := tryInlineLinkTail(rest); ok {
		finishBracket(items, *brackets, bIdx, bracket.isImage, raw, dest, title, titlePresent)
		return 1 + consumedRest
	}

	labelText := raw
	if consumedRest, label, ok := tryReferenceLabelTail(rest); ok {
		lookup := label
		if lookup == "" {
			lookup = labelText
		}
		if def, found := ctx.refs.ResolveReference(NormalizeLabel(lookup)); found {
			finishBracket(items, *brackets, bIdx, bracket.isImage, raw, def.Destination, def.Title, def.TitlePresent)
			return 1 + consumedRest
		}
		*items = appendText(*items, "]")
		return 1
	}

	if def, found := ctx.refs.ResolveReference(NormalizeLabel(labelText)); found {
		finishBracket(items, *brackets, bIdx, bracket.isImage, raw, def.Destination, def.Title, def.TitlePresent)
		return 1
	}
	*items = appendText(*items, "]")
	return 1
}

// finishBracket replaces items[bIdx:] (the opener plus the tentative
// link text that followed it) with a single resolved Link or Image
// item, recursively resolving emphasis within the link text, and
// deactivates earlier openers when a link (not image) was formed, since
// links cannot nest.
func finishBracket(items *[]inlineItem, earlierBrackets []int, bIdx int, isImage bool, alt, dest, title string, titlePresent bool) {
	inner := resolveEmphasis(append([]inlineItem{}, (*items)[bIdx+1:]...))
	children := flattenItems(inner)
	kind := LinkKind
	if isImage {
		kind = ImageKind
	}
	node := &Inline{kind: kind, destination: dest, title: title, titlePresent: titlePresent, children: children}
	if isImage {
		node.alt = alt
	}
	*items = append((*items)[:bIdx], inlineItem{resolved: node})
	if !isImage {
		for _, idx := range earlierBrackets {
			if idx < bIdx {
				(*items)[idx].bracket.active = false
			}
		}
	}
}

// tryInlineLinkTail recognises "(" SP* destination? (SP+ title)? SP* ")"
// at the start of rest.
func tryInlineLinkTail(rest []rune) (dest, title string, titlePresent bool, consumed int, ok bool) {
	if len(rest) == 0 || rest[0] != '(' {
		return "", "", false, 0, false
	}
	v := newCMView(rest).Advance(1)
	v = skipInlineSpace(v)

	if c, present := v.Current(); present && c == ')' {
		return "", "", false, v.Index() + 1, true
	}

	destResult := scanLinkDestination(v)
	if destResult.Succeeded() {
		v = v.At(destResult.NextIndex())
		dest = destResult.Value()
	}

	afterDest := v
	v = skipInlineSpace(v)
	hadSpace := v.Index() != afterDest.Index()

	if c, present := v.Current(); present && c == ')' {
		return dest, "", false, v.Index() + 1, true
	}

	if !hadSpace && destResult.Succeeded() {
		return "", "", false, 0, false
	}
	titleResult := scanLinkTitle(v)
	if !titleResult.Succeeded() {
		return "", "", false, 0, false
	}
	v = v.At(titleResult.NextIndex())
	v = skipInlineSpace(v)
	if c, present := v.Current(); !present || c != ')' {
		return "", "", false, 0, false
	}
	return dest, titleResult.Value(), true, v.Index() + 1, true
}

func skipInlineSpace(v cmView) cmView {
	r := parser.Many(parser.Satisfy[rune, *parseContext](func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n'
	}))(v)
	return v.At(r.NextIndex())
}

// tryReferenceLabelTail recognises "[]" (collapsed, label "") or
// "[label]" (full) at the start of rest.
func tryReferenceLabelTail(rest []rune) (consumed int, label string, ok bool) {
	if len(rest) >= 2 && rest[0] == '[' && rest[1] == ']' {
		return 2, "", true
	}
	if len(rest) == 0 || rest[0] != '[' {
		return 0, "", false
	}
	r := scanLinkLabel(newCMView(rest))
	if !r.Succeeded() {
		return 0, "", false
	}
	return r.NextIndex(), r.Value(), true
}
