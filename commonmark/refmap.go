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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LinkDefinition is the resolved data of a link reference definition:
// the destination and optional title.
type LinkDefinition struct {
	Destination  string
	Title        string
	TitlePresent bool
}

// ReferenceMatcher is anything that can be asked whether a normalised
// label has a known destination. The document driver installs a
// ReferenceMap; callers embedding only the inline parser may supply
// their own.
type ReferenceMatcher interface {
	ResolveReference(normalizedLabel string) (LinkDefinition, bool)
}

// ReferenceMap is a document-scoped mapping from normalised link labels
// to their destinations and titles. A nil ReferenceMap resolves nothing;
// Define writes into the map, so one that is defined into is made with
// make.
type ReferenceMap map[string]LinkDefinition

// ResolveReference implements ReferenceMatcher.
func (m ReferenceMap) ResolveReference(normalizedLabel string) (LinkDefinition, bool) {
	def, ok := m[normalizedLabel]
	return def, ok
}

// Define inserts label's definition into the map if, and only if, no
// definition for that normalised label already exists: first writer
// wins, matching CommonMark's link-reference-definition collection
// order.
func (m ReferenceMap) Define(label, destination, title string, titlePresent bool) {
	norm := NormalizeLabel(label)
	if norm == "" {
		return
	}
	if _, exists := m[norm]; exists {
		return
	}
	m[norm] = LinkDefinition{Destination: destination, Title: title, TitlePresent: titlePresent}
}

// labelCaser performs the Unicode case fold CommonMark §4.7 calls for
// ("Unicode lowercase"), using golang.org/x/text/cases rather than a
// hand-rolled strings.ToLower, which would only be ASCII-correct.
var labelCaser = cases.Lower(language.Und)

// NormalizeLabel implements CommonMark §4.7's label normalisation: Unicode
// lowercase, collapse runs of whitespace to a single ' ', trim. Two
// labels are considered equal iff their normalised forms are equal.
func NormalizeLabel(label string) string {
	folded := labelCaser.String(label)
	var b strings.Builder
	b.Grow(len(folded))
	inSpace := false
	started := false
	for _, r := range folded {
		if isLabelSpace(r) {
			if started {
				inSpace = true
			}
			continue
		}
		if inSpace {
			b.WriteByte(' ')
			inSpace = false
		}
		b.WriteRune(r)
		started = true
	}
	return b.String()
}

func isLabelSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
