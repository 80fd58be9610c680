// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pretty

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// ScalarValue matches the primitive types [Scalar] accepts.
type ScalarValue interface {
	constraints.Integer | constraints.Float | ~bool | ~string
}

// Key matches the ordered scalar types usable as [Set] elements and
// [Mapping] keys. Their natural ordering fixes the rendering order, so sets
// and mappings print the same regardless of insertion order.
type Key interface {
	constraints.Integer | constraints.Float | ~string
}

// Scalar returns a document rendering v in its ordinary textual form, the
// one [fmt.Sprint] produces. Scalars contain no breaks and no choices, so
// they always lay out inline.
//
// String-typed values must not contain line breaks; use [Split] for those.
func Scalar[T ScalarValue](v T) Doc {
	return Text(fmt.Sprint(v))
}

// List is an ordered sequence of printable elements.
//
// It renders on one line, like "[1, 22, 333]", when that fits, and
// otherwise one element per line with the brackets on lines of their own:
//
//	[
//	    1,
//	    22,
//	    333
//	]
type List[T Printable] []T

// Doc implements [Printable].
func (l List[T]) Doc() Doc {
	return delimited('[', ']', func(yield func(Doc) bool) {
		for _, e := range l {
			if !yield(e.Doc()) {
				return
			}
		}
	})
}

// Set is a sorted set of scalar keys. It renders like [List], but between
// braces: "{1, 2, 3}".
//
// The zero Set is empty and ready to use.
type Set[K Key] struct {
	tree btree.Set[K]
}

// Insert adds key to the set.
func (s *Set[K]) Insert(key K) {
	s.tree.Insert(key)
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// Doc implements [Printable].
func (s *Set[K]) Doc() Doc {
	return delimited('{', '}', func(yield func(Doc) bool) {
		s.tree.Scan(func(key K) bool {
			return yield(Scalar(key))
		})
	})
}

// Mapping is a mapping from scalar keys to printable values, sorted by key.
//
// Entries render as "key => value", braced and comma-separated on one line
// when that fits:
//
//	{1 => one, 2 => two}
//
// and otherwise one entry per line, the same shape as [List].
//
// The zero Mapping is empty and ready to use.
type Mapping[K Key, V Printable] struct {
	tree btree.Map[K, V]
}

// Set associates value with key, replacing any existing entry.
func (m *Mapping[K, V]) Set(key K, value V) {
	m.tree.Set(key, value)
}

// Get returns the value associated with key, if there is one.
func (m *Mapping[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Len returns the number of entries in the mapping.
func (m *Mapping[K, V]) Len() int {
	return m.tree.Len()
}

// Doc implements [Printable].
func (m *Mapping[K, V]) Doc() Doc {
	return delimited('{', '}', func(yield func(Doc) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			entry := Scalar(iter.Key()).Append(Text(" => "), iter.Value().Doc())
			if !yield(entry) {
				return
			}
		}
	})
}

// delimited renders a comma-separated sequence between a pair of delimiter
// characters: everything on one line when that fits, and otherwise one
// element per line, indented four columns, with the delimiters on their own
// lines. Both alternatives are built in a single pass over elems.
func delimited(left, right rune, elems iter.Seq[Doc]) Doc {
	var single, multi Doc
	for e := range elems {
		if single.IsEmpty() {
			single, multi = e, e
			continue
		}
		single = single.Append(Char(','), Char(' '), e)
		multi = multi.Append(Char(','), Newline(), e)
	}

	return Choice(
		Char(left).Append(single, Char(right)),
		Char(left).Append(Indent(4, Newline().Append(multi)), Newline(), Char(right)),
	)
}
