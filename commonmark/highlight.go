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

// TokenKind names a lexical category a HighlightSink can be told about.
// The set covers every AST construct a syntax highlighter would want to
// colour independently.
type TokenKind uint8

const (
	HeadingMarkerToken TokenKind = 1 + iota
	HeadingTextToken
	CodeFenceToken
	CodeInfoToken
	CodeContentToken
	EmphasisMarkerToken
	StrongMarkerToken
	LinkBracketToken
	LinkParenToken
	ImageMarkerToken
	LinkDestinationToken
	LinkTitleToken
	BlockquoteMarkerToken
	ListMarkerToken
	EscapeSequenceToken
	EntityRefToken
	CodeSpanDelimiterToken
	CodeSpanContentToken
	HardBreakToken
	SoftBreakToken
	AutolinkURLToken
	RawHTMLToken
	PlainTextToken
	HTMLBlockToken
)

// Range is a half-open [Start, End) span of rune offsets into the text
// being inline-parsed: for Parse, the staged content of one paragraph or
// heading, not the original source; for ParseInline, the given source.
type Range struct {
	Start, End int
}

// HighlightSink is the optional collaborator threaded through parsing as
// the user-context value. It receives a span and its token kind every
// time a tagged parser succeeds. It is the caller's responsibility to
// own; parsek never constructs one on its own.
type HighlightSink interface {
	Emit(r Range, kind TokenKind)
}

// tagRunes wraps p so that, on success, sink.Emit is called with the
// exact span p consumed and kind. Wrapping contributes no parsing logic
// of its own: on failure it propagates p's failure untouched, and it
// never emits for a failed parse. Spans are reported in whatever order
// their wrapped parsers complete, which for nested constructs is
// innermost-first, since an outer tagged parser only finishes (and thus
// only emits) after every inner one it called has already returned.
func tagRunes[V any](p parser.RuneParser[*parseContext, V], kind TokenKind) parser.RuneParser[*parseContext, V] {
	return func(v parser.View[rune, *parseContext]) parser.Result[V] {
		r := p(v)
		if !r.Succeeded() {
			return r
		}
		if sink := v.Context().sink; sink != nil {
			sink.Emit(Range{Start: v.Index(), End: r.NextIndex()}, kind)
		}
		return r
	}
}
