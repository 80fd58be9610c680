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
	"io"
	"strings"
)

// DefaultWidth is the line width used when nothing requests another one:
// by [Sprint], by [Doc.String], and by format verbs without a width.
const DefaultWidth = 80

// Printable is the capability to describe one's own layout as a document.
//
// Implementations return a [Doc] covering every layout the value may take;
// the rendering entry points resolve those alternatives against a concrete
// width. Doc is called once per render and its result is never cached by
// this package, so a value that changes between renders prints its current
// state each time.
type Printable interface {
	// Doc returns the document describing this value's layout.
	Doc() Doc
}

// PrintableFunc adapts an ordinary function to the [Printable] interface.
type PrintableFunc func() Doc

// Doc implements [Printable].
func (f PrintableFunc) Doc() Doc {
	return f()
}

// Doc implements [Printable]. A document is its own layout.
func (d Doc) Doc() Doc {
	return d
}

// Sprint renders p at [DefaultWidth] and returns the result.
func Sprint(p Printable) string {
	var out strings.Builder
	_ = Render(NewWriter(&out), DefaultWidth, p) // strings.Builder never errors.
	return out.String()
}

// Fprint renders p to w at the given line width.
//
// If w is already a [Sink], rendering starts at the column it reports;
// otherwise w is wrapped with [NewWriter] and rendering starts at zero.
func Fprint(w io.Writer, width int, p Printable) error {
	sink, ok := w.(Sink)
	if !ok {
		sink = NewWriter(w)
	}
	return Render(sink, width, p)
}

// String renders d at [DefaultWidth].
func (d Doc) String() string {
	return Sprint(d)
}

// Format implements [fmt.Formatter].
//
// The %v and %s verbs render the document; a width in the verb overrides
// [DefaultWidth], so fmt.Sprintf("%40v", d) lays d out against 40 columns.
func (d Doc) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		width := DefaultWidth
		if w, ok := f.Width(); ok {
			width = w
		}
		_ = Render(NewWriter(f), width, d)
	default:
		fmt.Fprintf(f, "%%!%c(pretty.Doc)", verb)
	}
}
