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

import "fmt"

// Parser is the common signature of every combinator in this package:
// a pure function from a View to a Result. T is the token type, U is the
// opaque user-context type, V is the value a successful parse produces.
type Parser[T any, U any, V any] func(View[T, U]) Result[V]

// Run applies p to v. It exists mostly for readability at call sites;
// p(v) works just as well.
func Run[T any, U any, V any](p Parser[T, U, V], v View[T, U]) Result[V] {
	return p(v)
}

// Pair is the value produced by And: the two component values.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Satisfy consumes exactly one token if predicate holds for it, producing
// the token itself. At end of input it fails with "Unexpected end of
// input"; otherwise it fails with a message naming the offending token.
func Satisfy[T any, U any](predicate func(T) bool) Parser[T, U, T] {
	return func(v View[T, U]) Result[T] {
		tok, ok := v.Current()
		if !ok {
			return Fail[T]("Unexpected end of input", v.Index())
		}
		if !predicate(tok) {
			return Fail[T](fmt.Sprintf("Unexpected %v at index %d", tok, v.Index()), v.Index())
		}
		return Succeed(tok, v.Index()+1)
	}
}

// And runs a, then runs b starting where a left off, and pairs their
// values. If either fails, the combination fails at that position.
func And[T any, U any, A any, B any](a Parser[T, U, A], b Parser[T, U, B]) Parser[T, U, Pair[A, B]] {
	return func(v View[T, U]) Result[Pair[A, B]] {
		ra := a(v)
		if !ra.Succeeded() {
			return Result[Pair[A, B]]{message: ra.Message(), index: ra.FailIndex(), domain: ra.IsDomain()}
		}
		rb := b(v.At(ra.NextIndex()))
		if !rb.Succeeded() {
			return Result[Pair[A, B]]{message: rb.Message(), index: rb.FailIndex(), domain: rb.IsDomain()}
		}
		return Succeed(Pair[A, B]{ra.Value(), rb.Value()}, rb.NextIndex())
	}
}

// Or runs a; if it fails, runs b at the original position. If both fail,
// the failure with the larger index (the one that got furthest) wins;
// ties go to b, so the two alternatives are not interchangeable when
// they fail at the same index.
func Or[T any, U any, V any](a, b Parser[T, U, V]) Parser[T, U, V] {
	return func(v View[T, U]) Result[V] {
		ra := a(v)
		if ra.Succeeded() {
			return ra
		}
		rb := b(v)
		if rb.Succeeded() {
			return rb
		}
		if ra.FailIndex() > rb.FailIndex() {
			return ra
		}
		return rb
	}
}

// Map transforms a successful parse's value with f, leaving the consumed
// position untouched.
func Map[T any, U any, A any, B any](p Parser[T, U, A], f func(A) B) Parser[T, U, B] {
	return func(v View[T, U]) Result[B] {
		return mapResult(p(v), f)
	}
}

// Bind runs p, and on success passes its value to f to obtain the next
// parser, which is run starting where p left off. This is monadic bind
// and is how later parsers can depend on earlier parse results (e.g. a
// code-span closing run of the same length as its opener).
func Bind[T any, U any, A any, B any](p Parser[T, U, A], f func(A) Parser[T, U, B]) Parser[T, U, B] {
	return func(v View[T, U]) Result[B] {
		ra := p(v)
		if !ra.Succeeded() {
			return Result[B]{message: ra.Message(), index: ra.FailIndex(), domain: ra.IsDomain()}
		}
		next := f(ra.Value())
		return next(v.At(ra.NextIndex()))
	}
}

// Repeat runs p exactly n times in sequence, yielding a slice of size n
// (empty, non-nil, when n == 0). Fails at the first failing application.
func Repeat[T any, U any, V any](n int, p Parser[T, U, V]) Parser[T, U, []V] {
	return func(v View[T, U]) Result[[]V] {
		values := make([]V, 0, n)
		cur := v
		for i := 0; i < n; i++ {
			r := p(cur)
			if !r.Succeeded() {
				return Result[[]V]{message: r.Message(), index: r.FailIndex(), domain: r.IsDomain()}
			}
			values = append(values, r.Value())
			cur = cur.At(r.NextIndex())
		}
		return Succeed(values, cur.Index())
	}
}

// Many applies p zero or more times. It never fails: it stops at the
// first failure of p without consuming the failed attempt, and returns
// everything collected so far.
func Many[T any, U any, V any](p Parser[T, U, V]) Parser[T, U, []V] {
	return func(v View[T, U]) Result[[]V] {
		var values []V
		cur := v
		for {
			r := p(cur)
			if !r.Succeeded() {
				return Succeed(values, cur.Index())
			}
			values = append(values, r.Value())
			cur = cur.At(r.NextIndex())
		}
	}
}

// Many1 applies p one or more times; it fails iff the first application
// fails.
func Many1[T any, U any, V any](p Parser[T, U, V]) Parser[T, U, []V] {
	return func(v View[T, U]) Result[[]V] {
		first := p(v)
		if !first.Succeeded() {
			return Result[[]V]{message: first.Message(), index: first.FailIndex(), domain: first.IsDomain()}
		}
		values := []V{first.Value()}
		cur := v.At(first.NextIndex())
		for {
			r := p(cur)
			if !r.Succeeded() {
				return Succeed(values, cur.Index())
			}
			values = append(values, r.Value())
			cur = cur.At(r.NextIndex())
		}
	}
}

// Optional runs p; on failure it succeeds with the zero value of V
// without consuming any input. The bool result reports whether p
// actually matched, since the zero value alone can't distinguish "absent"
// from "present but zero".
func Optional[T any, U any, V any](p Parser[T, U, V]) Parser[T, U, OptionValue[V]] {
	return func(v View[T, U]) Result[OptionValue[V]] {
		r := p(v)
		if !r.Succeeded() {
			return Succeed(OptionValue[V]{}, v.Index())
		}
		return Succeed(OptionValue[V]{Value: r.Value(), Present: true}, r.NextIndex())
	}
}

// OptionValue is the result of Optional: a value together with whether it
// was actually present.
type OptionValue[V any] struct {
	Value   V
	Present bool
}

// Eof succeeds with no value iff the View has no more tokens.
func Eof[T any, U any]() Parser[T, U, struct{}] {
	return func(v View[T, U]) Result[struct{}] {
		if v.IsAtEnd() {
			return Succeed(struct{}{}, v.Index())
		}
		return Fail[struct{}]("Expected end of input", v.Index())
	}
}

// Any consumes and returns exactly one token, failing only at end of
// input.
func Any[T any, U any]() Parser[T, U, T] {
	return func(v View[T, U]) Result[T] {
		tok, ok := v.Current()
		if !ok {
			return Fail[T]("Unexpected end of input", v.Index())
		}
		return Succeed(tok, v.Index()+1)
	}
}

// LookAhead runs p and, on success, yields its value without consuming
// any input (next index equals the original index). On failure it
// propagates the failure unchanged.
func LookAhead[T any, U any, V any](p Parser[T, U, V]) Parser[T, U, V] {
	return func(v View[T, U]) Result[V] {
		r := p(v)
		if !r.Succeeded() {
			return r
		}
		return Succeed(r.Value(), v.Index())
	}
}

// Not succeeds with no value iff p fails; it never consumes input either
// way. This is CommonMark's standard negative lookahead.
func Not[T any, U any, V any](p Parser[T, U, V]) Parser[T, U, struct{}] {
	return func(v View[T, U]) Result[struct{}] {
		r := p(v)
		if r.Succeeded() {
			return Fail[struct{}]("Unexpected match", v.Index())
		}
		return Succeed(struct{}{}, v.Index())
	}
}

// Sequence is equivalent to folding And across the list, returning a
// slice of values in order. An empty list of parsers succeeds with an
// empty slice without consuming input.
func Sequence[T any, U any, V any](ps ...Parser[T, U, V]) Parser[T, U, []V] {
	return func(v View[T, U]) Result[[]V] {
		values := make([]V, 0, len(ps))
		cur := v
		for _, p := range ps {
			r := p(cur)
			if !r.Succeeded() {
				return Result[[]V]{message: r.Message(), index: r.FailIndex(), domain: r.IsDomain()}
			}
			values = append(values, r.Value())
			cur = cur.At(r.NextIndex())
		}
		return Succeed(values, cur.Index())
	}
}

// Choice is equivalent to folding Or across the list: the first parser
// that succeeds wins, and on total failure the furthest-reaching failure
// wins (ties to the later alternative). An empty list always fails with
// "No alternatives".
func Choice[T any, U any, V any](ps ...Parser[T, U, V]) Parser[T, U, V] {
	return func(v View[T, U]) Result[V] {
		if len(ps) == 0 {
			return Fail[V]("No alternatives", v.Index())
		}
		var best Result[V]
		haveBest := false
		for _, p := range ps {
			r := p(v)
			if r.Succeeded() {
				return r
			}
			if !haveBest || r.FailIndex() >= best.FailIndex() {
				best = r
				haveBest = true
			}
		}
		return best
	}
}

// Between runs open, then inner, then close in sequence, and returns only
// inner's value.
func Between[T any, U any, O any, V any, C any](open Parser[T, U, O], close Parser[T, U, C], inner Parser[T, U, V]) Parser[T, U, V] {
	return func(v View[T, U]) Result[V] {
		ro := open(v)
		if !ro.Succeeded() {
			return Result[V]{message: ro.Message(), index: ro.FailIndex(), domain: ro.IsDomain()}
		}
		ri := inner(v.At(ro.NextIndex()))
		if !ri.Succeeded() {
			return ri
		}
		rc := close(v.At(ri.NextIndex()))
		if !rc.Succeeded() {
			return Result[V]{message: rc.Message(), index: rc.FailIndex(), domain: rc.IsDomain()}
		}
		return Succeed(ri.Value(), rc.NextIndex())
	}
}

// SepBy1 parses "item (sep item)*". A separator consumed without a
// following item is rejected: the trailing separator must not be
// consumed.
func SepBy1[T any, U any, V any, S any](item Parser[T, U, V], sep Parser[T, U, S]) Parser[T, U, []V] {
	return func(v View[T, U]) Result[[]V] {
		first := item(v)
		if !first.Succeeded() {
			return Result[[]V]{message: first.Message(), index: first.FailIndex(), domain: first.IsDomain()}
		}
		values := []V{first.Value()}
		cur := v.At(first.NextIndex())
		for {
			rs := sep(cur)
			if !rs.Succeeded() {
				return Succeed(values, cur.Index())
			}
			afterSep := cur.At(rs.NextIndex())
			ri := item(afterSep)
			if !ri.Succeeded() {
				// The separator was consumed but no item followed: reject
				// the trailing separator by stopping before it.
				return Succeed(values, cur.Index())
			}
			values = append(values, ri.Value())
			cur = afterSep.At(ri.NextIndex())
		}
	}
}

// SepBy is SepBy1 or empty: it always succeeds, with an empty slice if
// item doesn't match at all.
func SepBy[T any, U any, V any, S any](item Parser[T, U, V], sep Parser[T, U, S]) Parser[T, U, []V] {
	sepBy1 := SepBy1(item, sep)
	return func(v View[T, U]) Result[[]V] {
		r := sepBy1(v)
		if r.Succeeded() {
			return r
		}
		return Succeed([]V(nil), v.Index())
	}
}

// Label replaces a failing parser's message with msg, keeping the index
// at which it failed. Label applies only to the syntactic parser it
// wraps: a domain-validation failure (see FailDomain, and the Integer
// primitive) passes through unchanged, so that a surrounding Label never
// clobbers a more specific domain error with a generic syntactic one.
func Label[T any, U any, V any](p Parser[T, U, V], msg string) Parser[T, U, V] {
	return func(v View[T, U]) Result[V] {
		r := p(v)
		if r.Succeeded() || r.IsDomain() {
			return r
		}
		return Result[V]{message: msg, index: r.FailIndex()}
	}
}
