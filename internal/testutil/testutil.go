// Package testutil holds test fixtures for the ensip15 test suite: a
// ready-to-use DefaultTables-backed Engine constructor, a UTF-32 to
// UTF-8 conversion helper for writing cases as codepoint literals
// instead of raw byte slices, and a label renderer for fuzz failure
// logs.
//
// Grounded on the teacher's package-level test-helper convention
// (boxesandglue-textshape keeps shared test fixtures in small
// unexported helper functions colocated with the _test.go files that
// use them); this repo moves them to an internal package instead.
package testutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	ensip15 "github.com/ensdomains/go-ensip15"
	"golang.org/x/text/width"
)

// CPsToUTF8 encodes a slice of Unicode scalar values (as int32) to a
// UTF-8 byte slice, the input shape Engine.Normalize/Beautify/Tokenize
// expect.
func CPsToUTF8(cps []rune) []byte {
	buf := make([]byte, 0, len(cps)*4)
	tmp := make([]byte, utf8.UTFMax)
	for _, cp := range cps {
		n := utf8.EncodeRune(tmp, cp)
		buf = append(buf, tmp[:n]...)
	}
	return buf
}

// NewEngine builds an Engine over the embedded DefaultTables, the
// fixture every ensip15 test file that doesn't specifically exercise a
// custom StaticTables should use.
func NewEngine() *ensip15.Engine {
	return ensip15.NewEngine(ensip15.NewDefaultTables())
}

// DescribeLabel renders label for a fuzz-corpus failure log: each rune
// annotated with its code point and a wide/narrow marker, so a
// fullwidth or ambiguous-width character shows up distinctly from its
// narrow look-alike in a terminal that can't be trusted to render every
// corpus byte string the same way twice.
func DescribeLabel(label string) string {
	var b strings.Builder
	for _, r := range label {
		marker := "narrow"
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			marker = "wide"
		case width.EastAsianAmbiguous:
			marker = "ambiguous"
		}
		fmt.Fprintf(&b, "U+%04X(%s) ", r, marker)
	}
	return strings.TrimSpace(b.String())
}
