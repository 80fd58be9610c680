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
	"unicode/utf8"

	"github.com/bufbuild/pretty/internal/ext/stringsx"
	"github.com/bufbuild/pretty/internal/ext/unicodex"
)

// Doc is an immutable description of the candidate layouts for a piece of
// text. Constructors combine smaller documents into larger ones; rendering
// resolves the embedded [Choice] alternatives against a concrete line width.
//
// A Doc is a small value that shares its backing tree with every document it
// was built from, so composing documents never copies text. Documents are
// safe for concurrent use once constructed.
//
// The zero Doc is the empty document, which renders as nothing.
type Doc struct {
	node *node
}

// kind discriminates the variants of a document node.
type kind byte

const (
	kindNone kind = iota //nolint:unused // Zero kind is invalid; nil nodes encode empty.
	kindNewline
	kindChar
	kindText
	kindFlatten
	kindIndent
	kindConcat
	kindChoice
)

// node is the backing storage for a [Doc].
//
// Nodes are immutable once constructed and freely shared between parents;
// the structure is a DAG, never a cycle. A nil *node is the empty document
// and constructors never store a nil child, so traversal needs no nil
// checks below the root.
type node struct {
	kind kind

	// For kindChar and kindText, the text to emit and its display width in
	// terminal columns, measured once at construction.
	text  string
	width int

	// For kindIndent, the number of columns added to the indentation of
	// every line break beneath it.
	indent int

	// Children. kindFlatten and kindIndent use only left. For kindChoice,
	// left is the primary (usually single-line) alternative and right is
	// the fallback.
	left, right *node
}

// newlineNode backs every [Newline] document; line breaks carry no state of
// their own, so one node serves all of them.
var newlineNode = node{kind: kindNewline}

// Newline returns a document that renders as exactly one line break,
// followed by whatever indentation is in force at that point.
//
// A Newline always breaks the line. [Flatten] removes choices, not breaks.
func Newline() Doc {
	return Doc{node: &newlineNode}
}

// Char returns a document that renders as the single character c.
//
// '\n' and '\r' are both normalized to [Newline], so a line break can never
// hide inside a character document.
func Char(c rune) Doc {
	if c == '\n' || c == '\r' {
		return Newline()
	}

	s := string(c)
	return Doc{node: &node{kind: kindChar, text: s, width: unicodex.Width(s)}}
}

// Text returns a document that renders exactly as s.
//
// The string must not contain line breaks; use [Split] for strings that
// might. Text("") is the empty document, and a string holding a single
// character collapses to the equivalent [Char] document.
func Text(s string) Doc {
	if s == "" {
		return Doc{}
	}
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && r != utf8.RuneError {
		return Char(r)
	}
	return Doc{node: &node{kind: kindText, text: s, width: unicodex.Width(s)}}
}

// Textf returns a document for the formatted string, with the same
// normalization as [Text].
func Textf(format string, args ...any) Doc {
	return Text(fmt.Sprintf(format, args...))
}

// Split returns a document for a string that may contain line breaks: the
// text between breaks becomes ordinary [Text] documents joined by explicit
// [Newline] documents, so the breaks survive flattening and participate in
// indentation. "\n", "\r\n", and a lone "\r" each count as one break.
func Split(s string) Doc {
	var doc Doc
	first := true
	for line := range stringsx.Lines(s) {
		if !first {
			doc = doc.Append(Newline())
		}
		first = false
		doc = doc.Append(Text(line))
	}
	return doc
}

// Concat returns the sequential composition of docs: each renders where the
// previous one left off. Empty documents vanish rather than taking up a
// node, so Concat() and Concat(doc) cost nothing.
func Concat(docs ...Doc) Doc {
	var doc Doc
	for _, d := range docs {
		doc = concat(doc, d)
	}
	return doc
}

// Append returns d followed by each of docs in order. It is [Concat] in
// method position, for building documents left to right.
func (d Doc) Append(docs ...Doc) Doc {
	for _, o := range docs {
		d = concat(d, o)
	}
	return d
}

func concat(a, b Doc) Doc {
	switch {
	case a.node == nil:
		return b
	case b.node == nil:
		return a
	}
	return Doc{node: &node{kind: kindConcat, left: a.node, right: b.node}}
}

// Flatten returns d with every [Choice] beneath it forced to its primary
// alternative, regardless of the width remaining when it renders.
//
// Flattening is transparent for documents without choices: explicit
// [Newline] documents inside still render as line breaks.
func Flatten(d Doc) Doc {
	if d.node == nil {
		return d
	}
	return Doc{node: &node{kind: kindFlatten, left: d.node}}
}

// Indent returns d with the indentation applied after every line break
// inside it increased by n columns.
//
// Indentation only follows breaks. The first line of a document renders at
// whatever column it starts on, and nesting Indent adds the amounts up.
// If n is zero or negative, d is returned unchanged.
func Indent(n int, d Doc) Doc {
	if d.node == nil || n <= 0 {
		return d
	}
	return Doc{node: &node{kind: kindIndent, indent: n, left: d.node}}
}

// Choice returns a document that renders as primary when primary's first
// line fits in the width remaining on the current line, counting whatever
// content follows the choice on that line, and as fallback otherwise.
//
// By convention primary is the compact single-line form and fallback the
// expanded multi-line form, but nothing enforces that. If either side is
// empty the other is returned directly: an empty alternative means there
// was never a decision to make.
func Choice(primary, fallback Doc) Doc {
	switch {
	case primary.node == nil:
		return fallback
	case fallback.node == nil:
		return primary
	}
	return Doc{node: &node{kind: kindChoice, left: primary.node, right: fallback.node}}
}

// Or returns [Choice](d, fallback). It reads best in chains:
//
//	oneLine.Or(indented)
func (d Doc) Or(fallback Doc) Doc {
	return Choice(d, fallback)
}

// IsEmpty reports whether d is the empty document.
//
// Only documents with no content at all are empty; a [Newline] or a
// zero-width character is not.
func (d Doc) IsEmpty() bool {
	return d.node == nil
}

// HasLeadingNewline reports whether the first thing d renders is a line
// break.
//
// The answer is an approximation in one case: a [Choice] reports false
// without inspecting its alternatives, on the convention that a primary
// alternative never leads with a break. Callers use this to decide whether
// a document supplies its own separation from what precedes it.
func (d Doc) HasLeadingNewline() bool {
	n := d.node
	for n != nil {
		switch n.kind {
		case kindNewline:
			return true
		case kindChar, kindText:
			return n.text[0] == '\n' || n.text[0] == '\r'
		case kindFlatten, kindIndent:
			n = n.left
		case kindConcat:
			// Neither operand can be empty, so the left one decides.
			n = n.left
		default:
			return false
		}
	}
	return false
}
