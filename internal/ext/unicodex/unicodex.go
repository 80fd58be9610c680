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

// package unicodex contains extensions to Go's package unicode.
package unicodex

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width is the number of terminal columns the given text occupies.
//
// Widths follow Unicode Standard Annex #11: fullwidth East Asian characters
// occupy two columns, and runes in the Ambiguous category occupy one, which
// is the recommendation for non-CJK contexts.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Advance returns the column a cursor lands on after writing text starting
// at the given column. Text after the last line feed starts over from column
// zero.
func Advance(column int, text string) int {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		return Width(text[i+1:])
	}
	return column + Width(text)
}
