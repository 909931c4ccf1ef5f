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

import (
	"strings"

	"github.com/EricDw/parsek/parser"
)

// htmlBlockStartType classifies a line (after stripping up to 3 leading
// spaces) against the seven HTML block start conditions of CommonMark's
// §4.3 table, returning the matched type (1-7) or 0 if none match.
func htmlBlockStartType(text []rune) int {
	trimmed := text
	if cols, n := leadingIndent(text); cols <= 3 {
		trimmed = text[n:]
	}
	if len(trimmed) == 0 || trimmed[0] != '<' {
		return 0
	}
	s := string(trimmed)
	low := strings.ToLower(s)

	for _, starter := range htmlBlockType1Starters {
		tag := "<" + starter
		if strings.HasPrefix(low, tag) {
			rest := trimmed[len(tag):]
			if len(rest) == 0 || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '>' {
				return 1
			}
		}
	}
	if strings.HasPrefix(s, "<!--") {
		return 2
	}
	if strings.HasPrefix(s, "<?") {
		return 3
	}
	if strings.HasPrefix(s, "<!") && len(trimmed) >= 3 && trimmed[2] >= 'A' && trimmed[2] <= 'Z' {
		return 4
	}
	if strings.HasPrefix(s, "<![CDATA[") {
		return 5
	}
	if tagName, rest, isClose := peelTagStart(trimmed); tagName != "" {
		if isHTMLBlockLevelTag(strings.ToLower(tagName)) {
			if len(rest) == 0 {
				return 6
			}
			c := rest[0]
			if c == ' ' || c == '\t' || c == '>' {
				return 6
			}
			if c == '/' && len(rest) > 1 && rest[1] == '>' {
				return 6
			}
			_ = isClose
		}
	}
	if matchesType7(trimmed) {
		return 7
	}
	return 0
}

// peelTagStart splits a line beginning with "<" or "</" into the tag
// name and the remainder, reporting whether it was a closing tag.
func peelTagStart(text []rune) (name string, rest []rune, isClose bool) {
	i := 1
	if i < len(text) && text[i] == '/' {
		isClose = true
		i++
	}
	start := i
	for i < len(text) && isTagNameRune(text[i]) {
		i++
	}
	if i == start {
		return "", nil, isClose
	}
	return string(text[start:i]), text[i:], isClose
}

func isTagNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-'
}

// matchesType7 requires a complete open or closing tag (not one of types
// 1-6) followed only by horizontal whitespace on the rest of the line.
func matchesType7(text []rune) bool {
	v := parser.NewView(text, (*parseContext)(nil))
	var r parser.Result[struct{}]
	if len(text) > 1 && text[1] == '/' {
		r = htmlClosingTag(v)
	} else {
		r = htmlOpenTag(v)
	}
	if !r.Succeeded() {
		return false
	}
	rest := text[r.NextIndex():]
	return isBlankText(rest)
}

// htmlBlockEndsLine reports whether a type 1-5 HTML block's terminating
// condition appears anywhere in text (the terminating line is included
// in the block, unlike types 6-7 which end on a blank line that is not
// consumed).
func htmlBlockEndsLine(htmlType int, text []rune) bool {
	low := strings.ToLower(string(text))
	switch htmlType {
	case 1:
		for _, ender := range htmlBlockType1Enders {
			if strings.Contains(low, ender) {
				return true
			}
		}
		return false
	case 2:
		return strings.Contains(string(text), "-->")
	case 3:
		return strings.Contains(string(text), "?>")
	case 4:
		return strings.Contains(string(text), ">")
	case 5:
		return strings.Contains(string(text), "]]>")
	default:
		return false
	}
}
