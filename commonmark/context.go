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

// parseContext is the user-context type (CommonMark's "U") of the
// parser.View[rune, *parseContext] values used by this package. The
// views themselves are built with a nil *parseContext; the inline
// scanner passes the live context to the code that needs it directly.
// It is never interpreted by the generic combinator engine.
type parseContext struct {
	refs ReferenceMatcher
	sink HighlightSink
}

func newParseContext(refs ReferenceMatcher, sink HighlightSink) *parseContext {
	if refs == nil {
		refs = ReferenceMap(nil)
	}
	return &parseContext{refs: refs, sink: sink}
}
