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

// This file implements the block pass driver: the recursive
// block-factory that turns a slice of lines into a tree of *Block nodes,
// with inline content left staged for the second pass (document.go).
package commonmark

import "strings"

// parseBlockSequence parses lines as one container's worth of block
// content (the document itself, or the stripped interior of a block
// quote or list item), recursing into nested containers as needed. refs
// accumulates every link reference definition encountered anywhere in
// the document, since their scope is global regardless of nesting.
func parseBlockSequence(lines []line, refs ReferenceMap) []*Block {
	var blocks []*Block
	pos := 0
	for pos < len(lines) {
		ln := lines[pos]
		switch {
		case ln.isBlank():
			blocks = append(blocks, &Block{kind: BlankLineKind, wasBlank: true})
			pos++

		case isIndentedCodeLine(ln.text):
			blk, n := scanIndentedCodeBlock(lines[pos:])
			blocks = append(blocks, blk)
			pos += n

		case matchThematicBreak(ln.text):
			blocks = append(blocks, &Block{kind: ThematicBreakKind})
			pos++

		case tryATXHeadingBlock(ln.text) != nil:
			blocks = append(blocks, tryATXHeadingBlock(ln.text))
			pos++

		case tryFenceOpenOK(ln.text):
			fo, _ := tryFenceOpen(ln.text)
			blk, n := scanFencedCodeBlock(lines[pos:], fo)
			blocks = append(blocks, blk)
			pos += n

		case htmlBlockStartType(ln.text) != 0:
			t := htmlBlockStartType(ln.text)
			blk, n := scanHTMLBlock(lines[pos:], t)
			blocks = append(blocks, blk)
			pos += n

		case isBlockQuoteStart(ln.text):
			blk, n := scanBlockQuote(lines[pos:], refs)
			blocks = append(blocks, blk)
			pos += n

		case isListItemStart(ln.text):
			blk, n := scanListRun(lines[pos:], refs)
			blocks = append(blocks, blk)
			pos += n

		default:
			if def, n, ok := tryLinkReferenceDefinition(lines[pos:]); ok {
				refs.Define(def.label, def.destination, def.title, def.titlePresent)
				blocks = append(blocks, &Block{
					kind:         LinkReferenceDefinitionKind,
					label:        def.label,
					destination:  def.destination,
					title:        def.title,
					titlePresent: def.titlePresent,
				})
				pos += n
				continue
			}
			blk, n := scanParagraph(lines[pos:])
			blocks = append(blocks, blk)
			pos += n
		}
	}
	return blocks
}

func tryATXHeadingBlock(text []rune) *Block {
	level, content, ok := tryATXHeading(text)
	if !ok {
		return nil
	}
	return &Block{kind: HeadingKind, level: level, inlines: stageInline(string(content))}
}

func tryFenceOpenOK(text []rune) bool {
	_, ok := tryFenceOpen(text)
	return ok
}

// scanIndentedCodeBlock consumes consecutive indented-or-blank lines,
// giving back any trailing blank lines to the enclosing sequence.
func scanIndentedCodeBlock(lines []line) (*Block, int) {
	var collect []string
	pos := 0
	for pos < len(lines) {
		ln := lines[pos]
		if ln.isBlank() {
			collect = append(collect, "")
			pos++
			continue
		}
		if !isIndentedCodeLine(ln.text) {
			break
		}
		collect = append(collect, string(stripIndentedCodePrefix(ln.text)))
		pos++
	}
	for len(collect) > 0 && collect[len(collect)-1] == "" {
		collect = collect[:len(collect)-1]
		pos--
	}
	literal := ""
	if len(collect) > 0 {
		literal = strings.Join(collect, "\n") + "\n"
	}
	return &Block{kind: IndentedCodeBlockKind, literal: literal}, pos
}

// scanFencedCodeBlock consumes a fenced code block's content up to and
// including its closing fence, or to the end of input if unterminated.
func scanFencedCodeBlock(lines []line, fo fenceOpen) (*Block, int) {
	pos := 1
	var collect []string
	for pos < len(lines) {
		ln := lines[pos]
		if isFenceClose(ln.text, fo.char, fo.length) {
			pos++
			break
		}
		collect = append(collect, string(stripColumns(ln.text, fo.indent)))
		pos++
	}
	literal := ""
	if len(collect) > 0 {
		literal = strings.Join(collect, "\n") + "\n"
	}
	blk := &Block{kind: FencedCodeBlockKind, literal: literal, fenceChar: fo.char, fenceLen: fo.length}
	if fo.hasInfo {
		blk.info = fo.info
		blk.hasInfo = true
	}
	return blk, pos
}

// scanHTMLBlock consumes an HTML block's lines per its type's end
// condition: types 1-5 end on the line containing their terminator
// (included), types 6-7 end at the next blank line (not included).
func scanHTMLBlock(lines []line, htmlType int) (*Block, int) {
	pos := 0
	var collect []string
	for pos < len(lines) {
		ln := lines[pos]
		if htmlType >= 6 && ln.isBlank() {
			break
		}
		collect = append(collect, string(ln.text))
		pos++
		if htmlType <= 5 && htmlBlockEndsLine(htmlType, ln.text) {
			break
		}
	}
	literal := ""
	if len(collect) > 0 {
		literal = strings.Join(collect, "\n") + "\n"
	}
	return &Block{kind: HTMLBlockKind, literal: literal}, pos
}

// isParagraphInterrupt reports whether text starts a block kind that is
// allowed to interrupt an in-progress paragraph without an intervening
// blank line (CommonMark §4.4's paragraph-interruption rule). Indented code
// blocks never interrupt a paragraph; ordered lists only interrupt when
// they start at 1.
func isParagraphInterrupt(text []rune) bool {
	if matchThematicBreak(text) {
		return true
	}
	if _, _, ok := tryATXHeading(text); ok {
		return true
	}
	if _, ok := tryFenceOpen(text); ok {
		return true
	}
	if isBlockQuoteStart(text) {
		return true
	}
	if t := htmlBlockStartType(text); t >= 1 && t <= 6 {
		return true
	}
	if m, _, ok := scanListMarkerLine(text); ok {
		if !m.ordered || m.start == 1 {
			return true
		}
	}
	return false
}

// scanParagraph consumes a paragraph's lazy-continuation lines, stopping
// at a blank line, an interrupting block start, or a setext underline
// (which instead converts the paragraph into a heading).
func scanParagraph(lines []line) (*Block, int) {
	collect := []line{lines[0]}
	pos := 1
	for pos < len(lines) {
		ln := lines[pos]
		if ln.isBlank() {
			break
		}
		if level, ok := setextUnderline(ln.text); ok {
			content := joinParagraphLines(collect)
			return &Block{kind: HeadingKind, level: level, inlines: stageInline(content)}, pos + 1
		}
		if isParagraphInterrupt(ln.text) {
			break
		}
		collect = append(collect, ln)
		pos++
	}
	content := joinParagraphLines(collect)
	return &Block{kind: ParagraphKind, inlines: stageInline(content)}, pos
}

func joinParagraphLines(lines []line) string {
	parts := make([]string, len(lines))
	for i, ln := range lines {
		parts[i] = string(trimLeadingHorizontal(ln.text))
	}
	return strings.Join(parts, "\n")
}

func trimLeadingHorizontal(text []rune) []rune {
	start := 0
	for start < len(text) && (text[start] == ' ' || text[start] == '\t') {
		start++
	}
	return text[start:]
}

// stageInline wraps raw text in a single placeholder Inline node to be
// replaced by the fully parsed inline tree during the document's second
// pass (CommonMark's staged-inline-content design note).
func stageInline(raw string) []*Inline {
	return []*Inline{{kind: unparsedKind, literal: raw}}
}
