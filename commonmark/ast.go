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

// Package commonmark implements a CommonMark 0.31.2 parser built on the
// combinator engine in package parser.
package commonmark

// Block represents a CommonMark block-level element: a paragraph,
// heading, list, quote, code block, HTML block, thematic break, or link
// reference definition.
//
// Block is a single struct tagged by Kind rather than a sum type
// expressed through interfaces; this keeps node identity stable, which
// the emphasis engine depends on (see Inline and emphasis.go).
type Block struct {
	kind BlockKind

	// Heading: 1-6.
	level int

	// IndentedCodeBlock, FencedCodeBlock, HTMLBlock: literal content.
	literal string

	// FencedCodeBlock: info string, and whether one was present at all
	// (an empty info string and no info string are distinct per the
	// spec's info:string? optionality).
	info      string
	hasInfo   bool
	fenceChar rune
	fenceLen  int

	// LinkReferenceDefinition.
	label        string
	destination  string
	title        string
	titlePresent bool

	// Paragraph, Heading: inline content.
	inlines []*Inline

	// BlockQuote, ListItem: child blocks.
	children []*Block

	// BulletList / OrderedList.
	tight    bool
	marker   rune // bullet marker char, or ordered delimiter char
	start    int  // OrderedList start number
	ordered  bool
	wasBlank bool // internal: item had an absorbed blank line (looseness)
}

// Kind reports the block's kind.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Level returns a Heading's level (1-6).
func (b *Block) Level() int { return b.level }

// Literal returns the literal text of an IndentedCodeBlock,
// FencedCodeBlock, or HTMLBlock.
func (b *Block) Literal() string { return b.literal }

// Info returns a FencedCodeBlock's info string and whether one was given
// at all.
func (b *Block) Info() (string, bool) { return b.info, b.hasInfo }

// Label returns a LinkReferenceDefinition's raw (non-normalised) label.
func (b *Block) Label() string { return b.label }

// Destination returns a LinkReferenceDefinition's destination.
func (b *Block) Destination() string { return b.destination }

// Title returns a LinkReferenceDefinition's title and whether one was
// given.
func (b *Block) Title() (string, bool) { return b.title, b.titlePresent }

// Inlines returns a Paragraph's or Heading's parsed inline content.
func (b *Block) Inlines() []*Inline { return b.inlines }

// Children returns a BlockQuote's or ListItem's child blocks.
func (b *Block) Children() []*Block { return b.children }

// Tight reports whether a BulletList or OrderedList is tight.
func (b *Block) Tight() bool { return b.tight }

// Marker returns a BulletList's bullet character, or an OrderedList's
// delimiter character ('.' or ')').
func (b *Block) Marker() rune { return b.marker }

// Start returns an OrderedList's starting number.
func (b *Block) Start() int { return b.start }

// Items returns a BulletList's or OrderedList's list items (each a
// ListItemKind block).
func (b *Block) Items() []*Block { return b.children }

// BlockKind enumerates the variants of Block.
type BlockKind uint8

const (
	ThematicBreakKind BlockKind = 1 + iota
	HeadingKind
	IndentedCodeBlockKind
	FencedCodeBlockKind
	HTMLBlockKind
	LinkReferenceDefinitionKind
	ParagraphKind
	BlankLineKind // structural only; pruned before Document is returned
	BlockQuoteKind
	ListItemKind
	BulletListKind
	OrderedListKind
)

// Inline represents a CommonMark phrase-level element: text, emphasis,
// links, code spans, entities, and so on.
type Inline struct {
	kind     InlineKind
	literal  string
	children []*Inline

	destination  string
	title        string
	titlePresent bool
	alt          string
}

// Kind reports the inline's kind.
func (in *Inline) Kind() InlineKind {
	if in == nil {
		return 0
	}
	return in.kind
}

// Literal returns the literal text of a Text, CodeSpan, Autolink,
// RawHtml, or HtmlEntity node.
func (in *Inline) Literal() string { return in.literal }

// Children returns an Emphasis's, StrongEmphasis's, or Link's children.
func (in *Inline) Children() []*Inline { return in.children }

// Destination returns a Link's or Image's destination.
func (in *Inline) Destination() string { return in.destination }

// Title returns a Link's or Image's title and whether one was given.
func (in *Inline) Title() (string, bool) { return in.title, in.titlePresent }

// Alt returns an Image's alt text (the raw, non-recursively-parsed
// character span of its link text).
func (in *Inline) Alt() string { return in.alt }

// InlineKind enumerates the variants of Inline.
type InlineKind uint8

const (
	TextKind InlineKind = 1 + iota
	SoftBreakKind
	HardBreakKind
	CodeSpanKind
	EmphasisKind
	StrongEmphasisKind
	LinkKind
	ImageKind
	AutolinkKind
	RawHtmlKind
	HtmlEntityKind

	// unparsedKind is a staging sentinel: Paragraph/Heading inline lists
	// hold a single unparsedKind node carrying the raw block text until
	// the document driver's second pass replaces it with the fully
	// parsed inline tree (CommonMark §9, "staged inline content").
	unparsedKind
)

// Document is the result of parsing a complete CommonMark document.
type Document struct {
	Blocks []*Block
}
