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

// htmlTagName matches an HTML tag name: a letter followed by letters,
// digits, or '-'.
var htmlTagName = parser.Map(
	parser.And(parser.Letter[*parseContext](), parser.Many(parser.Satisfy[rune, *parseContext](isTagNameContinuation))),
	func(p parser.Pair[rune, []rune]) string {
		return string(p.First) + string(p.Second)
	},
)

func isTagNameContinuation(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-'
}

func isAttributeNameStart(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_' || r == ':'
}

func isAttributeNameContinuation(r rune) bool {
	return isAttributeNameStart(r) || r >= '0' && r <= '9' || r == '.' || r == '-'
}

func isUnquotedAttributeValueRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '"', '\'', '=', '<', '>', '`':
		return false
	}
	return true
}

// htmlAttribute matches one HTML attribute: name, optionally followed by
// "=" and a quoted or unquoted value.
var htmlAttribute = parser.Map(
	parser.And(
		parser.And(
			parser.Many(parser.SpaceOrTab[*parseContext]()),
			parser.And(parser.Satisfy[rune, *parseContext](isAttributeNameStart),
				parser.Many(parser.Satisfy[rune, *parseContext](isAttributeNameContinuation))),
		),
		parser.Optional(htmlAttributeValueSpec),
	),
	func(parser.Pair[parser.Pair[[]rune, parser.Pair[rune, []rune]], parser.OptionValue[struct{}]]) struct{} {
		return struct{}{}
	},
)

var htmlAttributeValueSpec = parser.Map(
	parser.And(
		parser.And(parser.Many(parser.SpaceOrTab[*parseContext]()), parser.Char[*parseContext]('=')),
		parser.And(parser.Many(parser.SpaceOrTab[*parseContext]()), htmlAttributeValue),
	),
	func(parser.Pair[parser.Pair[[]rune, rune], parser.Pair[[]rune, struct{}]]) struct{} { return struct{}{} },
)

var htmlAttributeValue = parser.Choice(
	parser.Map(quotedValue('"'), func([]rune) struct{} { return struct{}{} }),
	parser.Map(quotedValue('\''), func([]rune) struct{} { return struct{}{} }),
	parser.Map(parser.Many1(parser.Satisfy[rune, *parseContext](isUnquotedAttributeValueRune)), func([]rune) struct{} { return struct{}{} }),
)

func quotedValue(quote rune) parser.RuneParser[*parseContext, []rune] {
	return parser.Between(
		parser.Char[*parseContext](quote),
		parser.Char[*parseContext](quote),
		parser.Many(parser.Satisfy[rune, *parseContext](func(r rune) bool { return r != quote })),
	)
}

// htmlOpenTag matches a complete HTML open tag: "<" tag-name attribute*
// whitespace* "/"? ">".
var htmlOpenTag = parser.Map(
	parser.And(
		parser.And(parser.Char[*parseContext]('<'), htmlTagName),
		parser.And(
			parser.Many(htmlAttribute),
			parser.And(parser.Many(parser.SpaceOrTab[*parseContext]()),
				parser.And(parser.Optional(parser.Char[*parseContext]('/')), parser.Char[*parseContext]('>'))),
		),
	),
	func(parser.Pair[parser.Pair[rune, string], parser.Pair[[]struct{}, parser.Pair[[]rune, parser.Pair[parser.OptionValue[rune], rune]]]]) struct{} {
		return struct{}{}
	},
)

// htmlClosingTag matches a complete HTML closing tag: "</" tag-name
// whitespace* ">".
var htmlClosingTag = parser.Map(
	parser.And(
		parser.And(parser.Char[*parseContext]('<'), parser.Char[*parseContext]('/')),
		parser.And(htmlTagName, parser.And(parser.Many(parser.SpaceOrTab[*parseContext]()), parser.Char[*parseContext]('>'))),
	),
	func(parser.Pair[parser.Pair[rune, rune], parser.Pair[string, parser.Pair[[]rune, rune]]]) struct{} { return struct{}{} },
)

// htmlComment matches "<!--" ... "-->", disallowing the empty comment
// edge cases the HTML spec forbids but that CommonMark's raw-HTML grammar
// doesn't re-litigate: any text not containing "-->" up to the closer.
var htmlComment = commentLike("<!--", "-->")

// htmlProcessingInstruction matches "<?" ... "?>".
var htmlProcessingInstruction = commentLike("<?", "?>")

// htmlCDATA matches "<![CDATA[" ... "]]>".
var htmlCDATA = commentLike("<![CDATA[", "]]>")

// htmlDeclaration matches "<!" ASCII-uppercase-letter ... ">".
var htmlDeclaration = parser.Bind(
	parser.And(parser.String[*parseContext]("<!"), parser.Satisfy[rune, *parseContext](func(r rune) bool { return r >= 'A' && r <= 'Z' })),
	func(parser.Pair[string, rune]) parser.RuneParser[*parseContext, struct{}] {
		return commentLike("", ">")
	},
)

// commentLike matches an optional opener, then any run of characters up
// to and including closer.
func commentLike(opener, closer string) parser.RuneParser[*parseContext, struct{}] {
	closerRunes := []rune(closer)
	return func(v parser.View[rune, *parseContext]) parser.Result[struct{}] {
		cur := v
		if opener != "" {
			r := parser.String[*parseContext](opener)(cur)
			if !r.Succeeded() {
				return parser.Fail[struct{}]("html", v.Index())
			}
			cur = cur.At(r.NextIndex())
		}
		for {
			if matchesAt(cur, closerRunes) {
				return parser.Succeed(struct{}{}, cur.Index()+len(closerRunes))
			}
			if cur.IsAtEnd() {
				return parser.Fail[struct{}]("html", v.Index())
			}
			cur = cur.Advance(1)
		}
	}
}

func matchesAt(v parser.View[rune, *parseContext], want []rune) bool {
	for i, r := range want {
		c, ok := v.Peek(i)
		if !ok || c != r {
			return false
		}
	}
	return true
}

// rawHTMLInline matches one CommonMark "raw HTML" inline span: an open
// tag, a closing tag, a comment, a processing instruction, a CDATA
// section, or a declaration.
var rawHTMLInline = parser.Choice(
	htmlOpenTag,
	htmlClosingTag,
	htmlComment,
	htmlProcessingInstruction,
	htmlCDATA,
	htmlDeclaration,
)
