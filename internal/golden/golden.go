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

// Package golden runs file-based golden tests: a corpus of input fixtures
// on disk, each with one checked-in output file per configured rendering.
package golden

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a collection of golden tests: table-driven tests whose
// table lives in the filesystem.
type Corpus struct {
	// Root is the directory holding the corpus, relative to the source file
	// that calls [Corpus.Run].
	Root string

	// Refresh names an environment variable. When that variable is set, it
	// is interpreted as a glob over test names, and the outputs of matching
	// tests are rewritten in place instead of compared. The run still fails,
	// so a refresh cannot silently pass in CI.
	Refresh string

	// Extension is the file extension, without the dot, that identifies
	// input fixtures under Root.
	Extension string

	// Outputs lists the golden outputs each test produces. An output file
	// that does not exist is an expectation of emptiness: the comparison
	// sees "" as the want value.
	Outputs []Output

	// Test runs one fixture and returns its outputs, one string per element
	// of Outputs.
	Test func(t *testing.T, name, text string) []string
}

// Output describes one golden output of a test case.
type Output struct {
	// Extension is appended (with a dot) to the fixture's file name to name
	// the golden file: fixture "list.yaml" with extension "w80.out" has its
	// golden at "list.yaml.w80.out".
	Extension string

	// Compare compares a got and want value, returning "" on a match and an
	// error message otherwise. Nil means compare byte-for-byte and report a
	// unified diff.
	Compare Compare
}

// Compare is a comparison function between a rendered result and a golden
// file's contents. It returns the empty string when they match.
type Compare func(got, want string) string

// Run walks the corpus and runs one subtest per fixture.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var fixtures []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			fixtures = append(fixtures, path)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking corpus:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in $%s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing outputs because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, fixture := range fixtures {
		name, _ := filepath.Rel(testDir, fixture)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(fixture)
			if err != nil {
				t.Fatalf("golden: error while loading fixture %q: %v", fixture, err)
			}

			results := c.Test(t, name, string(text))

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fixture + "." + output.Extension
				if refresh {
					c.write(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading output %q: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = diff
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("golden: output mismatch for %q:\n%s", path, msg)
				}
			}
		})
	}
}

// write replaces the golden file at path during a refresh. Empty results
// delete the file instead, matching the missing-file-means-empty convention
// on the comparison side.
func (c Corpus) write(t *testing.T, path, result string) {
	if result == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("golden: error while deleting output %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(result), 0666); err != nil {
		t.Errorf("golden: error while writing output %q: %v", path, err)
	}
}

// diff is the default [Compare]: byte equality, reported as a colorized
// unified diff.
func diff(got, want string) string {
	if got == want {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
