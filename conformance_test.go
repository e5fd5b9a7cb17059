package ensip15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensdomains/go-ensip15/internal/testutil"
)

// TestConformanceScenarios exercises the nine end-to-end scenarios listed
// verbatim in spec.md §8.
func TestConformanceScenarios(t *testing.T) {
	e := testutil.NewEngine()

	t.Run("1_uppercase_fold", func(t *testing.T) {
		got, err := e.Normalize([]byte("bRAnTlY.eTh"))
		require.NoError(t, err)
		assert.Equal(t, "brantly.eth", got)
	})

	t.Run("2_underscore_rule", func(t *testing.T) {
		got, err := e.Normalize([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", got)

		got, err = e.Normalize([]byte("_hello"))
		require.NoError(t, err)
		assert.Equal(t, "_hello", got)

		_, err = e.Normalize([]byte("hel_lo"))
		require.Error(t, err)
		assert.Equal(t, ErrKindUnderscoreInMiddle, err.(*Error).Kind)
	})

	t.Run("3_label_extension_rule", func(t *testing.T) {
		_, err := e.Normalize([]byte("ab--cd"))
		require.Error(t, err)
		assert.Equal(t, ErrKindInvalidLabelExtension, err.(*Error).Kind)

		_, err = e.Normalize([]byte("xn--test"))
		require.Error(t, err)
		assert.Equal(t, ErrKindInvalidLabelExtension, err.(*Error).Kind)
	})

	t.Run("4_nfc_cafe", func(t *testing.T) {
		want := "caf" + string(rune(0x00E9))

		got, err := e.Normalize([]byte("cafe" + string(rune(0x0301))))
		require.NoError(t, err)
		assert.Equal(t, want, got)

		got, err = e.Normalize([]byte(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("5_empty_label", func(t *testing.T) {
		for _, in := range []string{"", ".", ".eth", "eth.", "a..b"} {
			_, err := e.Normalize([]byte(in))
			require.Error(t, err, "input %q", in)
			assert.Equal(t, ErrKindEmptyLabel, err.(*Error).Kind, "input %q", in)
		}
	})

	t.Run("6_zero_width_space_disallowed", func(t *testing.T) {
		_, err := e.Normalize([]byte("hello" + string(rune(0x200B)) + "world"))
		require.Error(t, err)
		ensErr := err.(*Error)
		assert.Equal(t, ErrKindDisallowedCharacter, ensErr.Kind)
		assert.True(t, ensErr.HasCodepoint)
		assert.Equal(t, Codepoint(0x200B), ensErr.Codepoint)
	})

	t.Run("7_greek_script_handling", func(t *testing.T) {
		greek := string([]rune{0x03B5, 0x03BB, 0x03BB, 0x03B7, 0x03BD, 0x03B9, 0x03BA, 0x03AC})
		got, err := e.Normalize([]byte(greek))
		require.NoError(t, err)
		assert.Equal(t, greek, got)

		_, err = e.Normalize([]byte("hello" + greek))
		require.Error(t, err)
		assert.Equal(t, ErrKindDisallowedCharacter, err.(*Error).Kind)

		beautified, err := e.Beautify([]byte("test" + string(rune(greekSmallXi))))
		require.NoError(t, err)
		assert.Equal(t, "test"+string(rune(greekCapitalXi)), beautified)

		normalized, err := e.Normalize([]byte("test" + string(rune(greekSmallXi))))
		require.NoError(t, err)
		assert.Equal(t, "test"+string(rune(greekSmallXi)), normalized)
	})

	t.Run("8_family_zwj_emoji", func(t *testing.T) {
		man, woman, girl, boy := rune(0x1F468), rune(0x1F469), rune(0x1F467), rune(0x1F466)
		zwjRune := rune(zwj)
		family := string([]rune{man, zwjRune, woman, zwjRune, girl, zwjRune, boy})

		toks, err := e.Tokenize([]byte(family))
		require.NoError(t, err)
		require.Len(t, toks, 1)
		assert.Equal(t, TokenEmoji, toks[0].Kind)

		got, err := e.Normalize([]byte(family))
		require.NoError(t, err)
		assert.Equal(t, family, got)
	})

	t.Run("9_soft_hyphen_ignored_and_zwj_disallowed", func(t *testing.T) {
		got, err := e.Normalize([]byte("test" + string(rune(0x00AD)) + "name"))
		require.NoError(t, err)
		assert.Equal(t, "testname", got)

		_, err = e.Normalize([]byte("test" + string(rune(zwj)) + "name"))
		require.Error(t, err)
		assert.Equal(t, ErrKindDisallowedCharacter, err.(*Error).Kind)
	})
}

// TestConformanceNormalizeIdempotence is spec.md §8's quantified property
// "for all inputs x that normalize successfully,
// normalize(normalize(x)) == normalize(x)".
func TestConformanceNormalizeIdempotence(t *testing.T) {
	e := testutil.NewEngine()
	inputs := []string{
		"bRAnTlY.eTh",
		"hello",
		"_hello",
		"cafe" + string(rune(0x0301)),
		string([]rune{0x03B5, 0x03BB, 0x03BB, 0x03B7, 0x03BD, 0x03B9, 0x03BA, 0x03AC}),
		"test" + string(rune(0x00AD)) + "name",
	}
	for _, in := range inputs {
		once, err := e.Normalize([]byte(in))
		require.NoError(t, err, "input %q", in)
		twice, err := e.Normalize([]byte(once))
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

// TestConformanceASCIIIdentity is spec.md §8's "for all valid ASCII
// labels L ..., normalize(L) == L".
func TestConformanceASCIIIdentity(t *testing.T) {
	e := testutil.NewEngine()
	for _, l := range []string{"hello", "a", "a-b", "_a", "ab_", "ab-cd-ef"} {
		if l == "ab_" {
			continue // trailing underscore still violates the leading-run rule
		}
		got, err := e.Normalize([]byte(l))
		require.NoError(t, err, "label %q", l)
		assert.Equal(t, l, got)
	}
}
