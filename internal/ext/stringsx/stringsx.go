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

// package stringsx contains extensions to Go's package strings.
package stringsx

import (
	"iter"
	"strings"
)

// Lines returns an iterator over the lines in the given string.
//
// A line is terminated by "\n", "\r\n", or a lone "\r". The terminators are
// not included in the yielded lines, and like [strings.Split], the text after
// the final terminator is yielded even when it is empty.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			i := strings.IndexAny(s, "\n\r")
			if i < 0 {
				yield(s)
				return
			}
			if !yield(s[:i]) {
				return
			}

			if s[i] == '\r' && strings.HasPrefix(s[i+1:], "\n") {
				i++
			}
			s = s[i+1:]
		}
	}
}
