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

func TestTryBackslashEscape(t *testing.T) {
	tests := []struct {
		text     string
		wantCh   rune
		wantOK   bool
		wantCons int
	}{
		{"\\*foo", '*', true, 2},
		{"\\a", 0, false, 0},
		{"\\", 0, false, 0},
		{"\\\\", '\\', true, 2},
	}
	for _, test := range tests {
		consumed, ch, ok := tryBackslashEscape([]rune(test.text), 0)
		if ok != test.wantOK {
			t.Errorf("tryBackslashEscape(%q) ok = %v; want %v", test.text, ok, test.wantOK)
			continue
		}
		if ok && (ch != test.wantCh || consumed != test.wantCons) {
			t.Errorf("tryBackslashEscape(%q) = (%d, %q); want (%d, %q)", test.text, consumed, ch, test.wantCons, test.wantCh)
		}
	}
}

func TestTryEntity(t *testing.T) {
	tests := []struct {
		text     string
		wantLit  string
		wantOK   bool
		wantCons int
	}{
		{"&amp;", "&", true, 5},
		{"&nbsp;", " ", true, 6},
		{"&#35;", "#", true, 5},
		{"&#X36;", "6", true, 6},
		{"&notanentity;", "", false, 0},
		{"&amp", "", false, 0},
		{"&#0;", "�", true, 4},
	}
	for _, test := range tests {
		consumed, lit, ok := tryEntity([]rune(test.text), 0)
		if ok != test.wantOK {
			t.Errorf("tryEntity(%q) ok = %v; want %v", test.text, ok, test.wantOK)
			continue
		}
		if ok && (lit != test.wantLit || consumed != test.wantCons) {
			t.Errorf("tryEntity(%q) = (%d, %q); want (%d, %q)", test.text, consumed, lit, test.wantCons, test.wantLit)
		}
	}
}

func TestTryCodeSpan(t *testing.T) {
	tests := []struct {
		text     string
		wantLit  string
		wantOK   bool
		wantCons int
	}{
		{"`foo`", "foo", true, 5},
		{"``foo ` bar``", "foo ` bar", true, 13},
		{"` `` `", "``", true, 6},
		{"`foo", "", false, 0},
		{"`` foo `", "", false, 0},
		{"`a\r\nb`", "a b", true, 6},
		{"`a\rb`", "a b", true, 5},
	}
	for _, test := range tests {
		consumed, lit, ok := tryCodeSpan([]rune(test.text), 0)
		if ok != test.wantOK {
			t.Errorf("tryCodeSpan(%q) ok = %v; want %v", test.text, ok, test.wantOK)
			continue
		}
		if ok && (lit != test.wantLit || consumed != test.wantCons) {
			t.Errorf("tryCodeSpan(%q) = (%d, %q); want (%d, %q)", test.text, consumed, lit, test.wantCons, test.wantLit)
		}
	}
}

func TestTryURIAutolink(t *testing.T) {
	tests := []struct {
		text    string
		wantDst string
		wantOK  bool
	}{
		{"<http://foo.bar.baz>", "http://foo.bar.baz", true},
		{"<irc://foo.bar:2233/baz>", "irc://foo.bar:2233/baz", true},
		{"<MAILTO:FOO@BAR.BAZ>", "MAILTO:FOO@BAR.BAZ", true},
		{"<foo.bar.baz>", "", false},
		{"<a+b>", "", false},
		{"<http://foo bar>", "", false},
	}
	for _, test := range tests {
		_, dst, ok := tryURIAutolink([]rune(test.text), 0)
		if ok != test.wantOK {
			t.Errorf("tryURIAutolink(%q) ok = %v; want %v", test.text, ok, test.wantOK)
			continue
		}
		if ok && dst != test.wantDst {
			t.Errorf("tryURIAutolink(%q) = %q; want %q", test.text, dst, test.wantDst)
		}
	}
}

func TestTryEmailAutolink(t *testing.T) {
	tests := []struct {
		text    string
		wantDst string
		wantOK  bool
	}{
		{"<foo@bar.example.com>", "foo@bar.example.com", true},
		{"<foo+special@Bar.baz-bar0.com>", "foo+special@Bar.baz-bar0.com", true},
		{"<>", "", false},
		{"<foo@-bar.com>", "", false},
	}
	for _, test := range tests {
		_, dst, ok := tryEmailAutolink([]rune(test.text), 0)
		if ok != test.wantOK {
			t.Errorf("tryEmailAutolink(%q) ok = %v; want %v", test.text, ok, test.wantOK)
			continue
		}
		if ok && dst != test.wantDst {
			t.Errorf("tryEmailAutolink(%q) = %q; want %q", test.text, dst, test.wantDst)
		}
	}
}

func TestTryLineBreak(t *testing.T) {
	tests := []struct {
		text     string
		wantHard bool
		wantTrim int
	}{
		{"foo\\\n", true, 1},
		{"foo  \n", true, 2},
		{"foo \n", false, 0},
		{"foo\n", false, 0},
	}
	for _, test := range tests {
		runes := []rune(test.text)
		i := len(runes) - 1
		_, hard, trim, ok := tryLineBreak(runes, i)
		if !ok {
			t.Errorf("tryLineBreak(%q) not ok", test.text)
			continue
		}
		if hard != test.wantHard || trim != test.wantTrim {
			t.Errorf("tryLineBreak(%q) = (hard=%v, trim=%d); want (hard=%v, trim=%d)", test.text, hard, trim, test.wantHard, test.wantTrim)
		}
	}
}

func TestParseInlineCodeSpanLineEndings(t *testing.T) {
	// ParseInline is a documented entry point for raw, un-split source
	// (unlike Parse, which normalises line endings via splitLines before
	// any inline scanning happens), so a code span's line endings must be
	// turned into spaces here too rather than surviving as literal
	// newlines.
	tests := []struct {
		text string
		want string
	}{
		{"`a\r\nb`", "a b"},
		{"`a\rb`", "a b"},
		{"`a\nb`", "a b"},
	}
	for _, test := range tests {
		got := ParseInline(test.text, nil)
		if len(got) != 1 || got[0].Kind() != CodeSpanKind {
			t.Fatalf("ParseInline(%q) = %+v; want single CodeSpanKind", test.text, got)
		}
		if got[0].Literal() != test.want {
			t.Errorf("ParseInline(%q) literal = %q; want %q", test.text, got[0].Literal(), test.want)
		}
	}
}

func TestRawHTMLInline(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"<a><bab><c2c>", true},
		{"<a/>", true},
		{"<a  />", true},
		{"<a foo=\"bar\" bam = 'baz <em>\"</em>'>", true},
		{"<a foo=\"bar\">", true},
		{"</a>", true},
		{"<!-- comment -->", true},
		{"<?php echo $a; ?>", true},
		{"<!DOCTYPE html>", true},
		{"<![CDATA[>&<]]>", true},
		{"< a>", false},
		{"<a href='bar'title=title>", true},
	}
	for _, test := range tests {
		v := newCMView([]rune(test.text))
		r := rawHTMLInline(v)
		if r.Succeeded() != test.want {
			t.Errorf("rawHTMLInline(%q).Succeeded() = %v; want %v", test.text, r.Succeeded(), test.want)
		}
	}
}
