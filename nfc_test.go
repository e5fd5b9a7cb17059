package ensip15

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func newTestNFCEngine() *NFCEngine {
	return NewNFCEngine(NewDefaultTables())
}

func TestNFCEngineNormalize(t *testing.T) {
	e := newTestNFCEngine()
	for i, c := range []struct {
		in  []Codepoint
		out []Codepoint
	}{
		{in: []Codepoint{'c', 'a', 'f', 'e', 0x0301}, out: []Codepoint{'c', 'a', 'f', 0x00E9}},
		{in: []Codepoint{'c', 'a', 'f', 0x00E9}, out: []Codepoint{'c', 'a', 'f', 0x00E9}},
		{in: []Codepoint{'h', 'e', 'l', 'l', 'o'}, out: []Codepoint{'h', 'e', 'l', 'l', 'o'}},
		{in: []Codepoint{0x03B1, 0x0301}, out: []Codepoint{0x03AC}},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, c.out, e.Normalize(c.in))
		})
	}
}

func TestNFCEngineIsNFC(t *testing.T) {
	e := newTestNFCEngine()
	assert.True(t, e.IsNFC([]Codepoint{'c', 'a', 'f', 0x00E9}))
	assert.False(t, e.IsNFC([]Codepoint{'c', 'a', 'f', 'e', 0x0301}))
}

func TestNFCEngineIdempotent(t *testing.T) {
	e := newTestNFCEngine()
	for _, in := range [][]Codepoint{
		{'c', 'a', 'f', 'e', 0x0301},
		{'c', 'a', 'f', 0x00E9},
		{0x03B1, 0x0301},
	} {
		once := e.Normalize(in)
		twice := e.Normalize(once)
		assert.Equal(t, once, twice, "nfc(nfc(s)) must equal nfc(s)")
	}
}

func TestHangulComposeDecomposeRoundTrip(t *testing.T) {
	e := newTestNFCEngine()
	// L+V -> LV precomposed Hangul syllable.
	got := e.Normalize([]Codepoint{0x1100, 0x1161})
	require.Len(t, got, 1)
	assert.Equal(t, sBase, got[0])

	a, b, ok := hangulDecompose(got[0])
	require.True(t, ok)
	assert.Equal(t, Codepoint(0x1100), a)
	assert.Equal(t, Codepoint(0x1161), b)
}

// TestNFCOracleCrossCheck cross-checks the embedded dataset's precomposed
// Latin-1 and Greek entries against golang.org/x/text/unicode/norm, the
// real Unicode NFC implementation, confirming the hand-authored subset
// agrees with the standard on every codepoint it claims to know about
// (nfc.go itself never imports x/text/unicode/norm; see its doc comment).
func TestNFCOracleCrossCheck(t *testing.T) {
	e := newTestNFCEngine()
	for cp := range nfcDecompositions {
		t.Run(strconv.Itoa(int(cp)), func(t *testing.T) {
			want := norm.NFC.String(string(rune(cp)))
			got := string([]rune(func() []rune {
				out := e.Normalize([]Codepoint{cp})
				rs := make([]rune, len(out))
				for i, c := range out {
					rs[i] = rune(c)
				}
				return rs
			}()))
			assert.Equal(t, want, got)
		})
	}
}
