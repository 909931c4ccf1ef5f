// Copyright 2024 Ross Light
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

// WalkBlocks visits every block in blocks and its descendants, in
// pre-order, calling visit for each. If visit returns false, WalkBlocks
// does not descend into that block's children.
func WalkBlocks(blocks []*Block, visit func(*Block) bool) {
	for _, b := range blocks {
		walkBlock(b, visit)
	}
}

func walkBlock(b *Block, visit func(*Block) bool) {
	if b == nil {
		return
	}
	if !visit(b) {
		return
	}
	for _, c := range b.children {
		walkBlock(c, visit)
	}
}

// WalkInlines visits every inline in inlines and its descendants, in
// pre-order.
func WalkInlines(inlines []*Inline, visit func(*Inline) bool) {
	for _, in := range inlines {
		walkInline(in, visit)
	}
}

func walkInline(in *Inline, visit func(*Inline) bool) {
	if in == nil {
		return
	}
	if !visit(in) {
		return
	}
	for _, c := range in.children {
		walkInline(c, visit)
	}
}
