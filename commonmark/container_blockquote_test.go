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

func TestStripBlockQuoteMarker(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"> foo", "foo", true},
		{">foo", "foo", true},
		{">  foo", " foo", true},
		{"  > foo", "foo", true},
		{"    > foo", "", false},
		{"foo", "", false},
	}
	for _, test := range tests {
		rest, ok := stripBlockQuoteMarker([]rune(test.line))
		if ok != test.ok {
			t.Errorf("stripBlockQuoteMarker(%q) ok = %v; want %v", test.line, ok, test.ok)
			continue
		}
		if ok && string(rest) != test.want {
			t.Errorf("stripBlockQuoteMarker(%q) = %q; want %q", test.line, rest, test.want)
		}
	}
}

func TestScanBlockQuoteLazyContinuation(t *testing.T) {
	lines := splitLines([]rune("> foo\nbar\n\nbaz\n"))
	refs := make(ReferenceMap)
	block, consumed := scanBlockQuote(lines, refs)
	if consumed != 2 {
		t.Fatalf("consumed = %d; want 2", consumed)
	}
	if block.Kind() != BlockQuoteKind {
		t.Fatalf("Kind() = %v; want BlockQuoteKind", block.Kind())
	}
	children := pruneBlocks(block.Children())
	if len(children) != 1 || children[0].Kind() != ParagraphKind {
		t.Fatalf("children = %+v; want single paragraph", children)
	}
	resolveInlines(children, refs, nil)
	inlines := children[0].Inlines()
	if len(inlines) != 3 || inlines[0].Literal() != "foo" || inlines[1].Kind() != SoftBreakKind || inlines[2].Literal() != "bar" {
		t.Errorf("paragraph inlines = %+v; want [Text(foo) SoftBreak Text(bar)]", inlines)
	}
}

func TestScanBlockQuoteStopsOnBlank(t *testing.T) {
	lines := splitLines([]rune("> foo\n\nbar\n"))
	refs := make(ReferenceMap)
	_, consumed := scanBlockQuote(lines, refs)
	if consumed != 1 {
		t.Errorf("consumed = %d; want 1 (blank line ends the quote, not a lazy continuation)", consumed)
	}
}

func TestScanBlockQuoteStopsOnParagraphInterrupt(t *testing.T) {
	// "---" could itself interrupt a paragraph (it's a thematic break),
	// so it must end the quote rather than lazily continue into it and
	// be reinterpreted as a setext underline for "foo".
	lines := splitLines([]rune("> foo\n---\n"))
	refs := make(ReferenceMap)
	block, consumed := scanBlockQuote(lines, refs)
	if consumed != 1 {
		t.Fatalf("consumed = %d; want 1 (the thematic break ends the quote)", consumed)
	}
	children := pruneBlocks(block.Children())
	if len(children) != 1 || children[0].Kind() != ParagraphKind {
		t.Fatalf("children = %+v; want single paragraph", children)
	}
	resolveInlines(children, refs, nil)
	inlines := children[0].Inlines()
	if len(inlines) != 1 || inlines[0].Literal() != "foo" {
		t.Errorf("paragraph inlines = %+v; want single Text(foo)", inlines)
	}
}
