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

// tryBackslashEscape recognises a backslash followed by ASCII
// punctuation at text[i], returning the escaped literal rune.
func tryBackslashEscape(text []rune, i int) (consumed int, ch rune, ok bool) {
	if text[i] != '\\' || i+1 >= len(text) {
		return 0, 0, false
	}
	if !parser.IsASCIIPunctuation(text[i+1]) {
		return 0, 0, false
	}
	return 2, text[i+1], true
}
