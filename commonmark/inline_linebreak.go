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

// This file recognises hard and soft line breaks (CommonMark §4.5). Staged
// paragraph content joins source lines with a single '\n', so a line
// break in the raw text is always exactly one '\n' rune, with any hard
// break markers (trailing spaces or a backslash) immediately preceding
// it.
package commonmark

// tryLineBreak recognises a line ending at text[i], classifying it as a
// hard break if preceded by a backslash or two or more trailing spaces
// (which are trimmed from the preceding text run), or a soft break
// otherwise. trimTrailing reports how many trailing runes of the
// preceding text belong to the break marker, not the text.
func tryLineBreak(text []rune, i int) (consumed int, hard bool, trimTrailing int, ok bool) {
	if text[i] != '\n' {
		return 0, false, 0, false
	}
	if i > 0 && text[i-1] == '\\' {
		return 1, true, 1, true
	}
	spaces := 0
	for i-1-spaces >= 0 && text[i-1-spaces] == ' ' {
		spaces++
	}
	if spaces >= 2 {
		return 1, true, spaces, true
	}
	return 1, false, 0, true
}
