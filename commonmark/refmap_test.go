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

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"foo", "foo"},
		{"Foo", "foo"},
		{"FOO", "foo"},
		{"  foo  ", "foo"},
		{"foo   bar", "foo bar"},
		{"foo\nbar", "foo bar"},
		{"foo\t\tbar", "foo bar"},
		{"", ""},
		{"   ", ""},
		{"Fée", "fée"},
	}
	for _, test := range tests {
		got := NormalizeLabel(test.label)
		if got != test.want {
			t.Errorf("NormalizeLabel(%q) = %q; want %q", test.label, got, test.want)
		}
	}
}

func TestNormalizeLabelCaseFold(t *testing.T) {
	a := NormalizeLabel("Foo Bar")
	b := NormalizeLabel("foo bar")
	if a != b {
		t.Errorf("NormalizeLabel(%q) = %q, NormalizeLabel(%q) = %q; want equal", "Foo Bar", a, "foo bar", b)
	}
}

func TestReferenceMapDefineFirstWriterWins(t *testing.T) {
	refs := make(ReferenceMap)
	refs.Define("foo", "/first", "first title", true)
	refs.Define("foo", "/second", "second title", true)
	refs.Define("FOO", "/third", "third title", true)

	def, ok := refs.ResolveReference(NormalizeLabel("foo"))
	if !ok {
		t.Fatal("ResolveReference(foo) not found")
	}
	if def.Destination != "/first" {
		t.Errorf("Destination = %q; want /first (first writer wins)", def.Destination)
	}
}

func TestReferenceMapDefineEmptyLabelIgnored(t *testing.T) {
	refs := make(ReferenceMap)
	refs.Define("   ", "/url", "", false)
	if _, ok := refs.ResolveReference(""); ok {
		t.Error("Define with an all-whitespace label should not insert an entry")
	}
}

func TestReferenceMapResolveUnknown(t *testing.T) {
	refs := make(ReferenceMap)
	refs.Define("foo", "/url", "", false)
	if _, ok := refs.ResolveReference(NormalizeLabel("bar")); ok {
		t.Error("ResolveReference(bar) should not be found")
	}
}

func TestReferenceMapTitlePresence(t *testing.T) {
	refs := make(ReferenceMap)
	refs.Define("notitle", "/url", "", false)
	def, ok := refs.ResolveReference(NormalizeLabel("notitle"))
	if !ok {
		t.Fatal("ResolveReference(notitle) not found")
	}
	if def.TitlePresent {
		t.Error("TitlePresent = true; want false for a definition with no title")
	}
}
