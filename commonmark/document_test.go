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

import "testing"

func TestParseHeadingAndParagraph(t *testing.T) {
	doc := Parse("# Hello\n\nworld\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("len(doc.Blocks) = %d; want 2", len(doc.Blocks))
	}
	if doc.Blocks[0].Kind() != HeadingKind || doc.Blocks[0].Level() != 1 {
		t.Errorf("Blocks[0] = kind %v level %d; want HeadingKind level 1", doc.Blocks[0].Kind(), doc.Blocks[0].Level())
	}
	if doc.Blocks[1].Kind() != ParagraphKind {
		t.Errorf("Blocks[1].Kind() = %v; want ParagraphKind", doc.Blocks[1].Kind())
	}
	headingInlines := doc.Blocks[0].Inlines()
	if len(headingInlines) != 1 || headingInlines[0].Literal() != "Hello" {
		t.Errorf("heading inlines = %+v; want single Text(Hello)", headingInlines)
	}
}

func TestParseResolvesReferenceAcrossDocument(t *testing.T) {
	doc := Parse("[foo]\n\n[foo]: /url \"title\"\n")
	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1 (the definition is pruned)", len(doc.Blocks))
	}
	p := doc.Blocks[0]
	if p.Kind() != ParagraphKind {
		t.Fatalf("Blocks[0].Kind() = %v; want ParagraphKind", p.Kind())
	}
	inlines := p.Inlines()
	if len(inlines) != 1 || inlines[0].Kind() != LinkKind {
		t.Fatalf("paragraph inlines = %+v; want single Link node", inlines)
	}
	if inlines[0].Destination() != "/url" {
		t.Errorf("Destination() = %q; want /url", inlines[0].Destination())
	}
}

func TestParseFencedCodeBlockWithInfo(t *testing.T) {
	doc := Parse("```go\nfmt.Println(1)\n```\n")
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind() != FencedCodeBlockKind {
		t.Fatalf("Blocks = %+v; want single FencedCodeBlockKind", doc.Blocks)
	}
	info, hasInfo := doc.Blocks[0].Info()
	if !hasInfo || info != "go" {
		t.Errorf("Info() = (%q, %v); want (go, true)", info, hasInfo)
	}
	if want := "fmt.Println(1)\n"; doc.Blocks[0].Literal() != want {
		t.Errorf("Literal() = %q; want %q", doc.Blocks[0].Literal(), want)
	}
}

func TestParseNestedBlockquoteAndList(t *testing.T) {
	doc := Parse("> - foo\n> - bar\n")
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind() != BlockQuoteKind {
		t.Fatalf("Blocks = %+v; want single BlockQuoteKind", doc.Blocks)
	}
	children := doc.Blocks[0].Children()
	if len(children) != 1 || children[0].Kind() != BulletListKind {
		t.Fatalf("BlockQuote children = %+v; want single BulletListKind", children)
	}
	if items := children[0].Items(); len(items) != 2 {
		t.Errorf("len(Items()) = %d; want 2", len(items))
	}
}

func TestParseDeterministicOnPlainText(t *testing.T) {
	const src = "Hello, world.\n"
	first := Parse(src)
	second := Parse(src)
	if len(first.Blocks) != len(second.Blocks) {
		t.Fatalf("successive parses of the same input produced different block counts: %d vs %d", len(first.Blocks), len(second.Blocks))
	}
}

func TestWithHighlightSink(t *testing.T) {
	var got []TokenKind
	sink := sinkFunc(func(r Range, kind TokenKind) {
		got = append(got, kind)
	})
	Parse("`code`\n", WithHighlightSink(sink))
	found := false
	for _, k := range got {
		if k == CodeSpanContentToken {
			found = true
		}
	}
	if !found {
		t.Errorf("sink kinds = %v; want CodeSpanContentToken among them", got)
	}
}

type sinkFunc func(r Range, kind TokenKind)

func (f sinkFunc) Emit(r Range, kind TokenKind) { f(r, kind) }
