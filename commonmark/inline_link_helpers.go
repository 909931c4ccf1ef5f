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

// This file implements the label/destination/title scanners shared
// between the block-level link-reference-definition parser (leaf_linkref.go)
// and the inline link/image parser (inline_link.go).
package commonmark

import "github.com/EricDw/parsek/parser"

type cmView = parser.View[rune, *parseContext]

func newCMView(text []rune) cmView {
	return parser.NewView(text, (*parseContext)(nil))
}

// unescapeLiteral strips backslashes that escape ASCII punctuation,
// leaving every other character (including unescaped backslashes)
// untouched.
func unescapeLiteral(text []rune) string {
	out := make([]rune, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && parser.IsASCIIPunctuation(text[i+1]) {
			out = append(out, text[i+1])
			i++
			continue
		}
		out = append(out, text[i])
	}
	return string(out)
}

// scanLinkDestination recognises a link destination in either of its two
// forms: "<...>" (no line endings, no unescaped '<'/'>') or a bare
// destination (no ASCII whitespace or control characters, parentheses
// balanced unless escaped). It returns the unescaped destination text.
func scanLinkDestination(v cmView) parser.Result[string] {
	if c, ok := v.Current(); ok && c == '<' {
		return scanAngleDestination(v)
	}
	return scanBareDestination(v)
}

func scanAngleDestination(v cmView) parser.Result[string] {
	cur := v.Advance(1)
	start := cur.Index()
	for {
		c, ok := cur.Current()
		if !ok {
			return parser.Fail[string]("link destination", v.Index())
		}
		switch {
		case c == '\\' && i2HasNext(cur):
			n, _ := cur.Peek(1)
			if parser.IsASCIIPunctuation(n) {
				cur = cur.Advance(2)
				continue
			}
			cur = cur.Advance(1)
		case c == '>':
			text := v.Slice(cur)[start-v.Index():]
			return parser.Succeed(unescapeLiteral(text), cur.Index()+1)
		case c == '<' || c == '\n' || c == '\r':
			return parser.Fail[string]("link destination", v.Index())
		default:
			cur = cur.Advance(1)
		}
	}
}

func i2HasNext(v cmView) bool {
	_, ok := v.Peek(1)
	return ok
}

func scanBareDestination(v cmView) parser.Result[string] {
	cur := v
	depth := 0
	any := false
	for {
		c, ok := cur.Current()
		if !ok {
			break
		}
		switch {
		case c == '\\' && i2HasNext(cur):
			n, _ := cur.Peek(1)
			if parser.IsASCIIPunctuation(n) {
				cur = cur.Advance(2)
				any = true
				continue
			}
			cur = cur.Advance(1)
			any = true
		case c == '(':
			depth++
			cur = cur.Advance(1)
			any = true
		case c == ')':
			if depth == 0 {
				goto done
			}
			depth--
			cur = cur.Advance(1)
			any = true
		case isSpaceTabOrLineEndingRune(c) || isControlRune(c):
			goto done
		default:
			cur = cur.Advance(1)
			any = true
		}
	}
done:
	if !any || depth != 0 {
		return parser.Fail[string]("link destination", v.Index())
	}
	return parser.Succeed(unescapeLiteral(v.Slice(cur)), cur.Index())
}

func isSpaceTabOrLineEndingRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isControlRune(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// scanLinkTitle recognises a link title in any of its three forms:
// "...", '...', or (...). A blank line inside any form disqualifies the
// match.
func scanLinkTitle(v cmView) parser.Result[string] {
	c, ok := v.Current()
	if !ok {
		return parser.Fail[string]("link title", v.Index())
	}
	var closer rune
	switch c {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return parser.Fail[string]("link title", v.Index())
	}
	cur := v.Advance(1)
	start := cur.Index()
	blankRunStart := -1
	for {
		ch, ok := cur.Current()
		if !ok {
			return parser.Fail[string]("link title", v.Index())
		}
		if ch == '\\' && i2HasNext(cur) {
			n, _ := cur.Peek(1)
			if parser.IsASCIIPunctuation(n) {
				cur = cur.Advance(2)
				blankRunStart = -1
				continue
			}
		}
		if ch == closer {
			text := v.Slice(cur)[start-v.Index():]
			return parser.Succeed(unescapeLiteral(text), cur.Index()+1)
		}
		if ch == '\n' {
			if blankRunStart < 0 {
				blankRunStart = cur.Index()
			} else if isBlankText(v.Tokens()[blankRunStart+1:cur.Index()]) {
				return parser.Fail[string]("link title", v.Index())
			}
		} else if ch != ' ' && ch != '\t' && ch != '\r' {
			blankRunStart = -1
		}
		cur = cur.Advance(1)
	}
}

// scanLinkLabel recognises a "[...]" link label respecting backslash
// escapes and refusing unescaped nested brackets, returning the raw
// (non-normalised) label text between the brackets.
func scanLinkLabel(v cmView) parser.Result[string] {
	if c, ok := v.Current(); !ok || c != '[' {
		return parser.Fail[string]("link label", v.Index())
	}
	cur := v.Advance(1)
	start := cur.Index()
	for {
		c, ok := cur.Current()
		if !ok {
			return parser.Fail[string]("link label", v.Index())
		}
		switch {
		case c == '\\' && i2HasNext(cur):
			cur = cur.Advance(2)
		case c == '[':
			return parser.Fail[string]("link label", v.Index())
		case c == ']':
			text := cur.Tokens()[start:cur.Index()]
			if len(text) == 0 {
				return parser.Fail[string]("link label", v.Index())
			}
			return parser.Succeed(string(text), cur.Index()+1)
		default:
			cur = cur.Advance(1)
		}
	}
}
