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

// This file implements the inline dispatcher: the ordered-choice scan
// over one stretch of inline source that produces a flat item sequence,
// which emphasis.go and inline_link.go then resolve into the final
// Inline tree.
package commonmark

import "strings"

// inlineItem is one element of the working sequence built by scanInline.
// Exactly one of its fields is non-nil/active at a time.
type inlineItem struct {
	resolved *Inline
	delim    *delimInfo
	bracket  *bracketInfo
}

type bracketInfo struct {
	isImage bool
	active  bool
	start   int
}

// parseInlineContent parses raw staged paragraph/heading text into its
// final Inline tree, resolving link references against refs and
// reporting highlight spans to sink (either of which may be nil/no-op).
func parseInlineContent(raw string, refs ReferenceMatcher, sink HighlightSink) []*Inline {
	if refs == nil {
		refs = ReferenceMap(nil)
	}
	ctx := newParseContext(refs, sink)
	text := []rune(raw)
	items := scanInline(text, ctx)
	resolved := resolveEmphasis(items)
	return flattenItems(resolved)
}

func scanInline(text []rune, ctx *parseContext) []inlineItem {
	var items []inlineItem
	var brackets []int
	n := len(text)
	i := 0
	for i < n {
		c := text[i]
		switch {
		case c == '\\':
			if consumed, ch, ok := tryBackslashEscape(text, i); ok {
				items = appendText(items, string(ch))
				i += consumed
				continue
			}
			items = appendText(items, "\\")
			i++

		case c == '&':
			if consumed, literal, ok := tryEntity(text, i); ok {
				items = append(items, inlineItem{resolved: &Inline{kind: HtmlEntityKind, literal: literal}})
				emitHighlight(ctx, i, i+consumed, EntityRefToken)
				i += consumed
				continue
			}
			items = appendText(items, "&")
			i++

		case c == '`':
			if consumed, literal, ok := tryCodeSpan(text, i); ok {
				items = append(items, inlineItem{resolved: &Inline{kind: CodeSpanKind, literal: literal}})
				emitHighlight(ctx, i, i+consumed, CodeSpanContentToken)
				i += consumed
				continue
			}
			items = appendText(items, "`")
			i++

		case c == '<':
			if consumed, dest, ok := tryURIAutolink(text, i); ok {
				items = append(items, inlineItem{resolved: &Inline{kind: AutolinkKind, literal: dest, destination: dest}})
				emitHighlight(ctx, i, i+consumed, AutolinkURLToken)
				i += consumed
				continue
			}
			if consumed, dest, ok := tryEmailAutolink(text, i); ok {
				items = append(items, inlineItem{resolved: &Inline{kind: AutolinkKind, literal: dest, destination: "mailto:" + dest}})
				emitHighlight(ctx, i, i+consumed, AutolinkURLToken)
				i += consumed
				continue
			}
			if r := rawHTMLInline(newCMView(text[i:])); r.Succeeded() {
				consumed := r.NextIndex()
				items = append(items, inlineItem{resolved: &Inline{kind: RawHtmlKind, literal: string(text[i : i+consumed])}})
				emitHighlight(ctx, i, i+consumed, RawHTMLToken)
				i += consumed
				continue
			}
			items = appendText(items, "<")
			i++

		case c == '\n':
			consumed, hard, trim, _ := tryLineBreak(text, i)
			trimTrailingText(&items, trim)
			kind := SoftBreakKind
			if hard {
				kind = HardBreakKind
			}
			items = append(items, inlineItem{resolved: &Inline{kind: kind}})
			i += consumed

		case c == '[' || (c == '!' && i+1 < n && text[i+1] == '['):
			isImage := c == '!'
			markerLen := 1
			if isImage {
				markerLen = 2
			}
			items = append(items, inlineItem{bracket: &bracketInfo{isImage: isImage, active: true, start: i}})
			brackets = append(brackets, len(items)-1)
			i += markerLen

		case c == ']':
			consumed := closeBracket(text, i, &items, &brackets, ctx)
			i += consumed

		case c == '*' || c == '_':
			run, canOpen, canClose := scanDelimiterRun(text, i)
			items = append(items, inlineItem{delim: &delimInfo{char: c, count: run, canOpen: canOpen, canClose: canClose, start: i}})
			i += run

		default:
			j := i
			for j < n && !isInlineSpecial(text[j]) {
				j++
			}
			if j == i {
				j++
			}
			items = appendText(items, string(text[i:j]))
			i = j
		}
	}
	return items
}

func isInlineSpecial(r rune) bool {
	switch r {
	case '\\', '&', '`', '<', '\n', '[', ']', '*', '_':
		return true
	}
	return false
}

func appendText(items []inlineItem, s string) []inlineItem {
	return append(items, inlineItem{resolved: &Inline{kind: TextKind, literal: s}})
}

// trimTrailingText strips n trailing runes from the literal of the last
// item, when it is a Text node, to remove a hard break's trailing spaces
// from the preceding text run.
func trimTrailingText(items *[]inlineItem, n int) {
	if n == 0 || len(*items) == 0 {
		return
	}
	last := (*items)[len(*items)-1]
	if last.resolved == nil || last.resolved.kind != TextKind {
		return
	}
	runes := []rune(last.resolved.literal)
	if n > len(runes) {
		n = len(runes)
	}
	runes = runes[:len(runes)-n]
	if len(runes) == 0 {
		*items = (*items)[:len(*items)-1]
		return
	}
	last.resolved.literal = string(runes)
}

// flattenItems converts any still-unresolved delimiter or bracket items
// into literal Text nodes and merges adjacent Text nodes.
func flattenItems(items []inlineItem) []*Inline {
	var out []*Inline
	for _, it := range items {
		switch {
		case it.resolved != nil:
			out = append(out, it.resolved)
		case it.delim != nil:
			if it.delim.count > 0 {
				out = append(out, &Inline{kind: TextKind, literal: strings.Repeat(string(it.delim.char), it.delim.count)})
			}
		case it.bracket != nil:
			lit := "["
			if it.bracket.isImage {
				lit = "!["
			}
			out = append(out, &Inline{kind: TextKind, literal: lit})
		}
	}
	return mergeAdjacentText(out)
}

func mergeAdjacentText(nodes []*Inline) []*Inline {
	var out []*Inline
	for _, n := range nodes {
		if n.kind == TextKind && len(out) > 0 && out[len(out)-1].kind == TextKind {
			out[len(out)-1].literal += n.literal
			continue
		}
		out = append(out, n)
	}
	return out
}

// itemsToPlainText renders the surface text of a tentative item
// sequence.
func itemsToPlainText(items []inlineItem) string {
	var b strings.Builder
	for _, it := range items {
		switch {
		case it.resolved != nil:
			b.WriteString(it.resolved.literal)
		case it.delim != nil:
			b.WriteString(strings.Repeat(string(it.delim.char), it.delim.count))
		case it.bracket != nil:
			if it.bracket.isImage {
				b.WriteString("![")
			} else {
				b.WriteString("[")
			}
		}
	}
	return b.String()
}

func plainTextOf(nodes []*Inline) string {
	var b strings.Builder
	for _, n := range nodes {
		if len(n.children) > 0 {
			b.WriteString(plainTextOf(n.children))
			continue
		}
		b.WriteString(n.literal)
	}
	return b.String()
}

func emitHighlight(ctx *parseContext, start, end int, kind TokenKind) {
	if ctx == nil || ctx.sink == nil {
		return
	}
	ctx.sink.Emit(Range{Start: start, End: end}, kind)
}
