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

package hexutil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pretty"
	"github.com/bufbuild/pretty/hexutil"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", hexutil.Encode(nil))
	assert.Equal(t, "0x", hexutil.EncodePrefixed(nil))

	b := []byte{0x00, 0x1f, 0xab, 0xff}
	assert.Equal(t, "001fabff", hexutil.Encode(b))
	assert.Equal(t, "0x001fabff", hexutil.EncodePrefixed(b))
}

func TestBytesFormat(t *testing.T) {
	t.Parallel()

	b := hexutil.Bytes{0xde, 0xad, 0xbe, 0xef}
	assert.Equal(t, "deadbeef", b.String())
	assert.Equal(t, "deadbeef", fmt.Sprintf("%x", b))
	assert.Equal(t, "deadbeef", fmt.Sprintf("%v", b))
	assert.Equal(t, "deadbeef", fmt.Sprintf("%s", b))

	// The # flag adds the 0x marker.
	assert.Equal(t, "0xdeadbeef", fmt.Sprintf("%#x", b))
	assert.Equal(t, "0xdeadbeef", fmt.Sprintf("%#v", b))

	// %X uppercases digits and marker both, as it does for integers.
	assert.Equal(t, "DEADBEEF", fmt.Sprintf("%X", b))
	assert.Equal(t, "0XDEADBEEF", fmt.Sprintf("%#X", b))

	assert.Equal(t, "%!q(hexutil.Bytes=deadbeef)", fmt.Sprintf("%q", b))
}

func TestBytesDoc(t *testing.T) {
	t.Parallel()

	b := hexutil.Bytes{0x01, 0x02}
	assert.Equal(t, pretty.Text("0x0102"), b.Doc())
	assert.Equal(t, "0x0102", pretty.Sprint(b))

	// Hex documents are plain text: no breaks hide in them, so they print
	// the same at any width.
	assert.Equal(t, "0x0102", fmt.Sprintf("%1v", b.Doc()))
}

func TestBytesInContainers(t *testing.T) {
	t.Parallel()

	l := pretty.List[hexutil.Bytes]{{0x01}, {0xff, 0x00}}
	assert.Equal(t, "[0x01, 0xff00]", pretty.Sprint(l))

	var m pretty.Mapping[string, hexutil.Bytes]
	m.Set("digest", hexutil.Bytes{0xca, 0xfe})
	assert.Equal(t, "{digest => 0xcafe}", pretty.Sprint(&m))
}
