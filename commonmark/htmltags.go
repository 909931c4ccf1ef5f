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

import "golang.org/x/net/html/atom"

// htmlBlockType1Starters are the case-insensitive tag-name prefixes that
// open an HTML block of type 1 (CommonMark §4.3's table).
var htmlBlockType1Starters = []string{"pre", "script", "style", "textarea"}

// htmlBlockType1Enders are the matching closing tags, checked
// case-insensitively against the full line.
var htmlBlockType1Enders = []string{"</pre>", "</script>", "</style>", "</textarea>"}

// htmlBlockLevelTags is the fixed set of block-level tag names that can
// start an HTML block of type 6, built from golang.org/x/net/html/atom
// rather than a hand-written string list.
var htmlBlockLevelTags = buildHTMLBlockLevelTags()

func buildHTMLBlockLevelTags() map[string]struct{} {
	atoms := []atom.Atom{
		atom.Address, atom.Article, atom.Aside, atom.Base, atom.Basefont,
		atom.Blockquote, atom.Body, atom.Caption, atom.Center, atom.Col,
		atom.Colgroup, atom.Dd, atom.Details, atom.Dialog, atom.Dir,
		atom.Div, atom.Dl, atom.Dt, atom.Fieldset, atom.Figcaption,
		atom.Figure, atom.Footer, atom.Form, atom.Frame, atom.Frameset,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Head,
		atom.Header, atom.Hr, atom.Html, atom.Iframe, atom.Legend,
		atom.Li, atom.Link, atom.Main, atom.Menu, atom.Menuitem,
		atom.Nav, atom.Noframes, atom.Ol, atom.Optgroup, atom.Option,
		atom.P, atom.Param, atom.Section, atom.Source, atom.Summary,
		atom.Table, atom.Tbody, atom.Td, atom.Tfoot, atom.Th, atom.Thead,
		atom.Title, atom.Tr, atom.Track, atom.Ul,
	}
	set := make(map[string]struct{}, len(atoms))
	for _, a := range atoms {
		set[a.String()] = struct{}{}
	}
	return set
}

// isHTMLBlockLevelTag reports whether name (already lowercased) is one
// of the fixed block-level tag names for HTML block type 6.
func isHTMLBlockLevelTag(lowerName string) bool {
	_, ok := htmlBlockLevelTags[lowerName]
	return ok
}
