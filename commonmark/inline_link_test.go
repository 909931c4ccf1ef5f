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

func TestParseInlineLink(t *testing.T) {
	got := ParseInline(`[link](/uri "title")`, nil)
	if len(got) != 1 || got[0].Kind() != LinkKind {
		t.Fatalf("ParseInline = %+v; want single Link node", got)
	}
	link := got[0]
	if link.Destination() != "/uri" {
		t.Errorf("Destination() = %q; want /uri", link.Destination())
	}
	title, present := link.Title()
	if !present || title != "title" {
		t.Errorf("Title() = (%q, %v); want (title, true)", title, present)
	}
	if len(link.Children()) != 1 || link.Children()[0].Literal() != "link" {
		t.Errorf("Children() = %+v; want single Text(link)", link.Children())
	}
}

func TestParseInlineImage(t *testing.T) {
	got := ParseInline(`![foo](/url "title")`, nil)
	if len(got) != 1 || got[0].Kind() != ImageKind {
		t.Fatalf("ParseInline = %+v; want single Image node", got)
	}
	if got[0].Alt() != "foo" {
		t.Errorf("Alt() = %q; want foo", got[0].Alt())
	}
	if got[0].Destination() != "/url" {
		t.Errorf("Destination() = %q; want /url", got[0].Destination())
	}
}

func TestParseInlineReferenceLink(t *testing.T) {
	refs := make(ReferenceMap)
	refs.Define("foo", "/url", "my title", true)

	tests := []struct {
		name string
		text string
	}{
		{"full", "[link text][foo]"},
		{"collapsed", "[foo][]"},
		{"shortcut", "[foo]"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ParseInline(test.text, refs)
			if len(got) != 1 || got[0].Kind() != LinkKind {
				t.Fatalf("ParseInline(%q) = %+v; want single Link node", test.text, got)
			}
			if got[0].Destination() != "/url" {
				t.Errorf("ParseInline(%q) Destination() = %q; want /url", test.text, got[0].Destination())
			}
		})
	}
}

func TestParseInlineUnresolvedReferenceFallsBackToText(t *testing.T) {
	got := ParseInline("[foo][bar]", nil)
	for _, n := range got {
		if n.Kind() == LinkKind {
			t.Fatalf("ParseInline(%q) produced a Link node for an undefined reference: %+v", "[foo][bar]", got)
		}
	}
}

func TestParseInlineNoNestedLinks(t *testing.T) {
	got := ParseInline("[a [b](/b) c](/a)", nil)
	if len(got) == 0 {
		t.Fatal("ParseInline returned no nodes")
	}
	// The outer "[...]( /a)" cannot become a link because the inner "[b](/b)"
	// already consumed the link-forming bracket; only the inner link resolves.
	var foundInner, foundOuter bool
	for _, n := range got {
		if n.Kind() == LinkKind && n.Destination() == "/b" {
			foundInner = true
		}
		if n.Kind() == LinkKind && n.Destination() == "/a" {
			foundOuter = true
		}
	}
	if !foundInner {
		t.Error("expected the inner [b](/b) link to resolve")
	}
	if foundOuter {
		t.Error("expected the outer bracket not to form a link (no nested links)")
	}
}
