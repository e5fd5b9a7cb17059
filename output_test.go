package ensip15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleNormalizedJoinsLabels(t *testing.T) {
	labels := []*Label{
		{NormalizedCPs: []Codepoint{'a'}},
		{NormalizedCPs: []Codepoint{'b'}},
	}
	assert.Equal(t, "a.b", assembleNormalized(labels))
}

func TestAssembleBeautifiedXiRewrite(t *testing.T) {
	latin := &ScriptGroup{Name: "Latin"}
	labels := []*Label{
		{
			Tokens: []Token{
				{Kind: TokenValid, CPs: []Codepoint{'t', 'e', 's', 't', greekSmallXi}},
			},
			ScriptGroup: latin,
		},
	}
	assert.Equal(t, "test"+string(rune(greekCapitalXi)), assembleBeautified(labels))
}

func TestAssembleBeautifiedGreekKeepsLowercaseXi(t *testing.T) {
	greek := &ScriptGroup{Name: "Greek"}
	labels := []*Label{
		{
			Tokens: []Token{
				{Kind: TokenValid, CPs: []Codepoint{greekSmallXi}},
			},
			ScriptGroup: greek,
		},
	}
	assert.Equal(t, string(rune(greekSmallXi)), assembleBeautified(labels))
}

func TestAssembleBeautifiedRestoresFE0F(t *testing.T) {
	labels := []*Label{
		{
			Tokens: []Token{
				{Kind: TokenEmoji, CPs: []Codepoint{0x2764, fe0f}},
			},
		},
	}
	got := assembleBeautified(labels)
	runes := []rune(got)
	require.Len(t, runes, 2)
	assert.Equal(t, rune(0x2764), runes[0])
	assert.Equal(t, rune(fe0f), runes[1])
}
