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

package pretty_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/pretty"
)

// A miniature function language, the kind of AST a pretty-printer usually
// sits behind, for exercising whole layouts end to end.
type (
	fnDecl struct {
		name   string
		params []param
		result string
		body   block
	}

	param struct {
		name, typ string
	}

	block []expr

	expr interface {
		pretty.Printable
	}

	letExpr struct {
		name        string
		value, body expr
	}

	binExpr struct {
		op       rune
		lhs, rhs expr
	}

	ident string

	literal int
)

func (f fnDecl) Doc() pretty.Doc {
	var single, multi pretty.Doc
	for i, p := range f.params {
		if i > 0 {
			single = single.Append(pretty.Text(", "))
			multi = multi.Append(pretty.Char(','), pretty.Newline())
		}
		single = single.Append(p.Doc())
		multi = multi.Append(p.Doc())
	}
	params := pretty.Char('(').Append(single, pretty.Char(')')).Or(
		pretty.Char('(').Append(
			pretty.Indent(4, pretty.Newline().Append(multi)),
			pretty.Newline(), pretty.Char(')'),
		))

	return pretty.Text("fn ").Append(
		pretty.Text(f.name), params,
		pretty.Text(" -> "), pretty.Text(f.result),
		pretty.Text(" = "), f.body.Doc(),
	)
}

func (p param) Doc() pretty.Doc {
	return pretty.Text(p.name).Append(pretty.Text(": "), pretty.Text(p.typ))
}

func (b block) Doc() pretty.Doc {
	var body pretty.Doc
	for i, e := range b {
		if i > 0 {
			body = body.Append(pretty.Newline())
		}
		body = body.Append(e.Doc())
	}
	return pretty.Char('{').Append(
		pretty.Indent(4, pretty.Newline().Append(body)),
		pretty.Newline(), pretty.Char('}'),
	)
}

func (l letExpr) Doc() pretty.Doc {
	intro := pretty.Flatten(pretty.Text("let ").Append(pretty.Text(l.name), pretty.Text(" =")))
	single := intro.Append(
		pretty.Char(' '), pretty.Flatten(l.value.Doc()),
		pretty.Text(" in "), l.body.Doc(),
	)
	multi := intro.Append(
		pretty.Indent(4, pretty.Newline().Append(l.value.Doc())),
		pretty.Newline(), pretty.Text("in "), l.body.Doc(),
	)
	return single.Or(multi)
}

func (b binExpr) Doc() pretty.Doc {
	return b.lhs.Doc().Append(pretty.Char(' '), pretty.Char(b.op), pretty.Char(' '), b.rhs.Doc())
}

func (i ident) Doc() pretty.Doc {
	return pretty.Text(string(i))
}

func (l literal) Doc() pretty.Doc {
	return pretty.Scalar(int(l))
}

func squarePlus1() fnDecl {
	return fnDecl{
		name:   "square_plus_1",
		params: []param{{"a", "number"}, {"b", "number"}},
		result: "number",
		body: block{letExpr{
			name:  "c",
			value: binExpr{op: '*', lhs: ident("a"), rhs: ident("b")},
			body:  binExpr{op: '+', lhs: ident("c"), rhs: literal(1)},
		}},
	}
}

func TestFunctionLayout(t *testing.T) {
	t.Parallel()

	fn := squarePlus1()
	tests := []struct {
		width int
		want  string
	}{
		{
			width: 80,
			want: `fn square_plus_1(a: number, b: number) -> number = {
    let c = a * b in c + 1
}`,
		},
		{
			width: 30,
			want: `fn square_plus_1(
    a: number,
    b: number
) -> number = {
    let c = a * b in c + 1
}`,
		},
		{
			width: 10,
			want: `fn square_plus_1(
    a: number,
    b: number
) -> number = {
    let c =
        a * b
    in c + 1
}`,
		},
	}

	require.Equal(t, tests[0].want, pretty.Sprint(fn))

	for _, test := range tests {
		t.Run(fmt.Sprintf("width%d", test.width), func(t *testing.T) {
			t.Parallel()

			got := fmt.Sprintf("%*v", test.width, fn.Doc())
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected layout (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConcurrentRender(t *testing.T) {
	t.Parallel()

	doc := squarePlus1().Doc()

	// Many goroutines resolve the choices of one shared tree at different
	// widths. Every render must come out deterministic.
	var group errgroup.Group
	for width := 0; width <= 64; width += 4 {
		group.Go(func() error {
			want := fmt.Sprintf("%*v", width, doc)
			for range 8 {
				if got := fmt.Sprintf("%*v", width, doc); got != want {
					return fmt.Errorf("width %d: nondeterministic render", width)
				}
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())
}

func BenchmarkBuild(b *testing.B) {
	fn := squarePlus1()
	b.ReportAllocs()
	for range b.N {
		_ = fn.Doc()
	}
}

func BenchmarkRender(b *testing.B) {
	doc := squarePlus1().Doc()
	for _, width := range []int{10, 30, 80} {
		b.Run(fmt.Sprintf("width%d", width), func(b *testing.B) {
			b.ReportAllocs()

			var out strings.Builder
			for range b.N {
				out.Reset()
				if err := pretty.Fprint(&out, width, doc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
