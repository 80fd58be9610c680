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

// Package hexutil formats byte sequences as lowercase hexadecimal text.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/pretty"
)

// Encode returns the lowercase hexadecimal digits of b, two per byte.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodePrefixed returns [Encode](b) with a leading "0x" marker. The empty
// slice encodes as just "0x".
func EncodePrefixed(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Bytes displays a byte slice as hexadecimal digits.
//
// It implements [fmt.Formatter] for the %x, %s, and %v verbs, where the #
// flag adds the "0x" marker, and [pretty.Printable], where the marker is
// always present.
type Bytes []byte

// String returns the bare hexadecimal digits of b.
func (b Bytes) String() string {
	return Encode(b)
}

// Format implements [fmt.Formatter].
func (b Bytes) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'x':
		if f.Flag('#') {
			io.WriteString(f, "0x")
		}
		io.WriteString(f, Encode(b))
	case 'X':
		if f.Flag('#') {
			io.WriteString(f, "0X")
		}
		io.WriteString(f, strings.ToUpper(Encode(b)))
	default:
		fmt.Fprintf(f, "%%!%c(hexutil.Bytes=%s)", verb, Encode(b))
	}
}

// Doc implements [pretty.Printable].
func (b Bytes) Doc() pretty.Doc {
	return pretty.Text(EncodePrefixed(b))
}
