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

func TestHTMLBlockStartType(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"<script>", 1},
		{"<pre>", 1},
		{"<!-- comment", 2},
		{"<?php echo $x; ?>", 3},
		{"<!DOCTYPE html>", 4},
		{"<![CDATA[ stuff", 5},
		{"<div>", 6},
		{"<div class=\"foo\">", 6},
		{"</div>", 6},
		{"<a href=\"/\">", 7},
		{"<foo>", 7},
		{"not html", 0},
		{"", 0},
	}
	for _, test := range tests {
		if got := htmlBlockStartType([]rune(test.line)); got != test.want {
			t.Errorf("htmlBlockStartType(%q) = %d; want %d", test.line, got, test.want)
		}
	}
}

func TestHTMLBlockEndsLine(t *testing.T) {
	tests := []struct {
		htmlType int
		line     string
		want     bool
	}{
		{1, "hello </script> world", true},
		{1, "hello", false},
		{2, "-->", true},
		{2, "still in comment", false},
		{3, "?>", true},
		{4, "<!DOCTYPE html>", true},
		{5, "]]>", true},
	}
	for _, test := range tests {
		if got := htmlBlockEndsLine(test.htmlType, []rune(test.line)); got != test.want {
			t.Errorf("htmlBlockEndsLine(%d, %q) = %v; want %v", test.htmlType, test.line, got, test.want)
		}
	}
}
