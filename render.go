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
	"io"

	"github.com/bufbuild/pretty/internal/ext/slicesx"
	"github.com/bufbuild/pretty/internal/ext/unicodex"
)

// Sink is a destination for rendered text.
//
// Column reports the display width of whatever already sits on the current
// output line. The engine reads it once, when a render begins, so that a
// document appended after text the caller wrote directly (a label, a field
// name) wraps as if that text were part of the document.
type Sink interface {
	io.StringWriter

	// Column returns the number of columns occupied on the current,
	// not-yet-terminated output line.
	Column() int
}

// Writer adapts an arbitrary [io.Writer] into a [Sink] by measuring the
// display width of everything written through it.
//
// A Writer may be shared by direct writes and successive [Render] calls;
// each render picks up at the column the previous write ended on.
type Writer struct {
	out    io.Writer
	column int
}

// NewWriter returns a [Writer] that sends its output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Write implements [io.Writer].
func (w *Writer) Write(b []byte) (int, error) {
	return w.WriteString(string(b))
}

// WriteString implements [io.StringWriter].
func (w *Writer) WriteString(s string) (int, error) {
	w.column = unicodex.Advance(w.column, s)
	return io.WriteString(w.out, s)
}

// Column implements [Sink].
func (w *Writer) Column() int {
	return w.column
}

// Render lays p out against the given line width and writes the result to
// sink.
//
// Rendering starts at the column sink reports and is deterministic: the
// same document, width, and starting column always produce the same bytes.
// The width is a target, not a guarantee; content with no alternative that
// fits simply overflows. Widths of zero or less force every choice to its
// fallback.
//
// The only errors are write errors from the sink, and the first one aborts
// the render.
func Render(sink Sink, width int, p Printable) error {
	doc := p.Doc()
	if doc.node == nil {
		return nil
	}

	r := renderer{
		sink:   sink,
		width:  width,
		column: sink.Column(),
		stack:  []frame{{node: doc.node}},
	}
	return r.render()
}

// frame is one pending unit of rendering work: a document node, the
// indentation in force for line breaks inside it, and whether an enclosing
// [Flatten] pins every [Choice] beneath it to its primary alternative.
type frame struct {
	node   *node
	indent int
	flat   bool
}

// renderer is the state of a single rendering pass.
type renderer struct {
	sink  Sink
	width int

	// column is the display width of the current output line, counting
	// indentation that has not been written out yet.
	column int

	// pending is indentation owed to the current line. It is flushed by the
	// next text emission, so a line that turns out to hold nothing but a
	// break never ends in trailing spaces.
	pending int

	// stack holds the work still to do, top at the end. Everything on it
	// renders after whatever node is currently being processed, which is
	// exactly what a fits check needs to measure.
	stack []frame

	// scratch is the measurement stack reused across fits calls.
	scratch []*node

	err error
}

func (r *renderer) render() error {
	for r.err == nil {
		f, ok := slicesx.Pop(&r.stack)
		if !ok {
			break
		}

		switch f.node.kind {
		case kindNewline:
			r.newline(f.indent)
		case kindChar, kindText:
			r.text(f.node)
		case kindConcat:
			r.stack = append(r.stack,
				frame{node: f.node.right, indent: f.indent, flat: f.flat},
				frame{node: f.node.left, indent: f.indent, flat: f.flat},
			)
		case kindFlatten:
			r.stack = append(r.stack, frame{node: f.node.left, indent: f.indent, flat: true})
		case kindIndent:
			r.stack = append(r.stack, frame{node: f.node.left, indent: f.indent + f.node.indent, flat: f.flat})
		case kindChoice:
			next := f.node.right
			if f.flat || r.fits(f.node.left) {
				next = f.node.left
			}
			f.node = next
			r.stack = append(r.stack, f)
		}
	}
	return r.err
}

// text emits a character or text node, first flushing indentation deferred
// by a preceding break.
func (r *renderer) text(n *node) {
	if r.pending > 0 {
		r.writeSpaces(r.pending)
		r.pending = 0
	}
	r.write(n.text)
	r.column += n.width
}

// newline emits a line break and defers the indentation that follows it.
func (r *renderer) newline(indent int) {
	r.write("\n")
	r.column = indent
	r.pending = indent
}

// fits reports whether the flattened first line of primary, together with
// whatever follows it on the render stack, completes within the width left
// on the current line.
//
// Measuring the trailing content matters: a primary that fits on its own
// can still push the text after it past the width. The walk treats every
// choice it meets as its primary alternative, which is how that content
// would render if the whole line stayed flat, and stops at the first hard
// break or as soon as the width is exhausted, so it never explores past the
// undecided part of the document.
func (r *renderer) fits(primary *node) bool {
	remaining := r.width - r.column
	if remaining < 0 {
		return false
	}

	// The measurement stack starts with primary; once it drains, rest
	// indexes down into the render stack for the frames that follow. The
	// render stack itself is never modified.
	r.scratch = append(r.scratch[:0], primary)
	rest := len(r.stack)

	for {
		n, ok := slicesx.Pop(&r.scratch)
		if !ok {
			rest--
			if rest < 0 {
				// The document ended before the line did.
				return true
			}
			n = r.stack[rest].node
		}

		switch n.kind {
		case kindNewline:
			return true
		case kindChar, kindText:
			remaining -= n.width
			if remaining < 0 {
				return false
			}
		case kindConcat:
			r.scratch = append(r.scratch, n.right, n.left)
		case kindFlatten, kindIndent:
			r.scratch = append(r.scratch, n.left)
		case kindChoice:
			r.scratch = append(r.scratch, n.left)
		}
	}
}

// writeSpaces writes n spaces to the sink.
func (r *renderer) writeSpaces(n int) {
	const spaces = "                                                                "
	for n > len(spaces) {
		r.write(spaces)
		n -= len(spaces)
	}
	r.write(spaces[:n])
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = r.sink.WriteString(s)
}
