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

// This file recognises code spans (CommonMark §4.5), using
// go4.org/bytereplacer to normalise line endings in the span's content:
// a single in-place rewrite pass over a byte copy of the content.
package commonmark

import (
	"strings"

	"go4.org/bytereplacer"
)

var codeSpanLineEndingReplacer = bytereplacer.New("\r\n", " ", "\r", " ", "\n", " ")

// tryCodeSpan recognises a backtick-delimited code span starting at
// text[i]: a run of N backticks, content containing no run of exactly N
// backticks, then a closing run of N backticks. Line endings within the
// content are replaced with a single space, and if the result is
// non-empty and both begins and ends with a space (not all spaces), one
// space is stripped from each end.
func tryCodeSpan(text []rune, i int) (consumed int, literal string, ok bool) {
	if text[i] != '`' {
		return 0, "", false
	}
	openLen := 1
	for i+openLen < len(text) && text[i+openLen] == '`' {
		openLen++
	}
	pos := i + openLen
	for pos < len(text) {
		if text[pos] != '`' {
			pos++
			continue
		}
		runLen := 0
		for pos+runLen < len(text) && text[pos+runLen] == '`' {
			runLen++
		}
		if runLen == openLen {
			content := string(text[i+openLen : pos])
			return pos + runLen - i, normalizeCodeSpanContent(content), true
		}
		pos += runLen
	}
	return 0, "", false
}

func normalizeCodeSpanContent(content string) string {
	normalized := string(codeSpanLineEndingReplacer.Replace([]byte(content)))
	if normalized == "" {
		return normalized
	}
	if strings.Trim(normalized, " ") == "" {
		return normalized
	}
	if strings.HasPrefix(normalized, " ") && strings.HasSuffix(normalized, " ") {
		normalized = normalized[1 : len(normalized)-1]
	}
	return normalized
}
