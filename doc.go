// Package pretty implements width-aware pretty printing.
//
// The document model follows Philip Wadler's "A prettier printer": a [Doc]
// is an immutable description of every layout a piece of text could take,
// and rendering resolves its alternatives against a concrete line width.
// Content that fits stays on one line; content that does not expands into
// its multi-line form.
//
// # Documents
//
// Documents are built from a small set of combinators:
//   - [Text], [Textf], and [Char] for content within a line;
//   - [Newline] for an unconditional line break;
//   - [Split] for strings that already contain breaks;
//   - [Concat] and [Doc.Append] for sequencing;
//   - [Indent] for indentation after the breaks inside a document;
//   - [Choice] and [Doc.Or] for offering a compact and an expanded layout;
//   - [Flatten] for forcing the compact side of every choice.
//
// A [Choice] resolves to its primary alternative when the primary's first
// line fits in the space remaining on the current line, counting whatever
// content follows the choice on that line. Otherwise it falls back. Since
// documents are immutable and rendering never mutates them, the same
// document can be rendered at many widths, concurrently if desired.
//
// # Printing values
//
// A type describes its own layout by implementing [Printable]:
//
//	func (c Call) Doc() pretty.Doc {
//		args := pretty.Text(c.Name).Append(pretty.Char('('))
//		for i, arg := range c.Args {
//			if i > 0 {
//				args = args.Append(pretty.Text(", "))
//			}
//			args = args.Append(arg.Doc())
//		}
//		return args.Append(pretty.Char(')'))
//	}
//
// after which [Sprint], [Fprint], and [Render] lay it out. [Scalar],
// [List], [Set], and [Mapping] provide ready-made layouts for common
// shapes.
//
// # Widths
//
// All widths are display columns, not bytes and not runes: a CJK character
// occupies two columns and a combining sequence one. Rendering begins at
// the column its [Sink] reports, so a document appended mid-line wraps as
// if the text already on that line belonged to the document.
package pretty
