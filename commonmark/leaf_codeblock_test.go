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

func TestIsIndentedCodeLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"    foo", true},
		{"   foo", false},
		{"\tfoo", true},
		{"  \tfoo", true},
		{"", false},
	}
	for _, test := range tests {
		if got := isIndentedCodeLine([]rune(test.line)); got != test.want {
			t.Errorf("isIndentedCodeLine(%q) = %v; want %v", test.line, got, test.want)
		}
	}
}

func TestStripIndentedCodePrefix(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"    foo", "foo"},
		{"     foo", " foo"},
		{"\tfoo", "foo"},
	}
	for _, test := range tests {
		if got := string(stripIndentedCodePrefix([]rune(test.line))); got != test.want {
			t.Errorf("stripIndentedCodePrefix(%q) = %q; want %q", test.line, got, test.want)
		}
	}
}

func TestTryFenceOpen(t *testing.T) {
	tests := []struct {
		line       string
		wantOK     bool
		wantChar   rune
		wantLen    int
		wantInfo   string
		wantHasInf bool
	}{
		{"```", true, '`', 3, "", false},
		{"```go", true, '`', 3, "go", true},
		{"~~~~", true, '~', 4, "", false},
		{"``", false, 0, 0, "", false},
		{"``` go `go`", false, 0, 0, "", false},
		{"~~~ go ` go", true, '~', 3, "go ` go", true},
		{"   ```", true, '`', 3, "", false},
	}
	for _, test := range tests {
		fo, ok := tryFenceOpen([]rune(test.line))
		if ok != test.wantOK {
			t.Errorf("tryFenceOpen(%q) ok = %v; want %v", test.line, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if fo.char != test.wantChar || fo.length != test.wantLen || fo.info != test.wantInfo || fo.hasInfo != test.wantHasInf {
			t.Errorf("tryFenceOpen(%q) = %+v; want char=%q len=%d info=%q hasInfo=%v", test.line, fo, test.wantChar, test.wantLen, test.wantInfo, test.wantHasInf)
		}
	}
}

func TestIsFenceClose(t *testing.T) {
	tests := []struct {
		line   string
		char   rune
		length int
		want   bool
	}{
		{"```", '`', 3, true},
		{"````", '`', 3, true},
		{"``", '`', 3, false},
		{"``` ", '`', 3, true},
		{"``` x", '`', 3, false},
		{"~~~", '`', 3, false},
	}
	for _, test := range tests {
		if got := isFenceClose([]rune(test.line), test.char, test.length); got != test.want {
			t.Errorf("isFenceClose(%q, %q, %d) = %v; want %v", test.line, test.char, test.length, got, test.want)
		}
	}
}
