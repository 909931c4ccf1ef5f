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

// This file implements the document driver that runs the block
// pass, collects link reference definitions along the way, then runs
// the inline pass over every staged Paragraph/Heading, replacing the
// placeholder unparsedKind node with the fully parsed inline tree.
package commonmark

// ParseOption configures a call to Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	sink HighlightSink
}

// WithHighlightSink registers a HighlightSink to receive token spans
// as they are recognised during parsing, for syntax highlighting.
func WithHighlightSink(sink HighlightSink) ParseOption {
	return func(c *parseConfig) { c.sink = sink }
}

// Parse parses a complete CommonMark document.
func Parse(source string, opts ...ParseOption) *Document {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	lines := splitLines([]rune(source))
	refs := make(ReferenceMap)
	blocks := parseBlockSequence(lines, refs)
	resolveInlines(blocks, refs, cfg.sink)
	blocks = pruneBlocks(blocks)
	return &Document{Blocks: blocks}
}

// ParseInline parses a standalone span of inline source (not sourced
// from a full document's block pass), resolving references against refs
// (which may be nil).
func ParseInline(source string, refs ReferenceMatcher, opts ...ParseOption) []*Inline {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return parseInlineContent(source, refs, cfg.sink)
}

// resolveInlines walks blocks, replacing every staged unparsedKind
// placeholder with its fully parsed inline tree.
func resolveInlines(blocks []*Block, refs ReferenceMap, sink HighlightSink) {
	for _, b := range blocks {
		if len(b.inlines) == 1 && b.inlines[0].kind == unparsedKind {
			b.inlines = parseInlineContent(b.inlines[0].literal, refs, sink)
		}
		if len(b.children) > 0 {
			resolveInlines(b.children, refs, sink)
		}
	}
}

// pruneBlocks removes BlankLineKind and LinkReferenceDefinitionKind
// blocks from the final tree; their only effects (separating blocks,
// populating the reference map) are already accounted for by the time
// this runs.
func pruneBlocks(blocks []*Block) []*Block {
	out := blocks[:0]
	for _, b := range blocks {
		if b.kind == BlankLineKind || b.kind == LinkReferenceDefinitionKind {
			continue
		}
		b.children = pruneBlocks(b.children)
		out = append(out, b)
	}
	return out
}
