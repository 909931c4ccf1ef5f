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

package parser

import "strconv"

// Integer parses a run of ASCII digits and converts them to an int. It is
// the only primitive in this package that can fail two different ways:
//
//   - no digits at all is a syntactic failure, labelled "integer" so that
//     a surrounding Label can rename it freely;
//   - digits that don't fit in an int is a domain-validation failure,
//     "Integer out of range: <string>", which Label must never overwrite
//     (see Label's doc comment and spec's "label-scope pitfall").
func Integer[U any]() RuneParser[U, int] {
	digits := Many1(Digit[U]())
	return func(v View[rune, U]) Result[int] {
		r := digits(v)
		if !r.Succeeded() {
			return Result[int]{message: "integer", index: r.FailIndex()}
		}
		s := string(r.Value())
		n, err := strconv.Atoi(s)
		if err != nil {
			return FailDomain[int]("Integer out of range: "+s, v.Index())
		}
		return Succeed(n, r.NextIndex())
	}
}
