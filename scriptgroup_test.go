package ensip15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScriptGroupLatin(t *testing.T) {
	groups := buildScriptGroups()
	g, err := resolveScriptGroup(groups, []Codepoint{'c', 'a', 'f', 0x00E9}, 1)
	require.Nil(t, err)
	assert.Equal(t, "Latin", g.Name)
}

func TestResolveScriptGroupGreek(t *testing.T) {
	groups := buildScriptGroups()
	// ε λ λ η ν ι κ ά ("ελληνικά")
	cps := []Codepoint{0x03B5, 0x03BB, 0x03BB, 0x03B7, 0x03BD, 0x03B9, 0x03BA, 0x03AC}
	g, err := resolveScriptGroup(groups, cps, 1)
	require.Nil(t, err)
	assert.Equal(t, "Greek", g.Name)
}

func TestResolveScriptGroupXiCarveOut(t *testing.T) {
	groups := buildScriptGroups()
	cps := []Codepoint{'t', 'e', 's', 't', greekSmallXi}
	g, err := resolveScriptGroup(groups, cps, 1)
	require.Nil(t, err)
	assert.Equal(t, "Latin", g.Name)
}

func TestResolveScriptGroupNoneQualify(t *testing.T) {
	groups := buildScriptGroups()
	_, err := resolveScriptGroup(groups, []Codepoint{0x200B}, 1)
	require.NotNil(t, err)
	assert.Equal(t, ErrKindDisallowedCharacter, err.Kind)
}

func TestResolveScriptGroupCrossScriptMixture(t *testing.T) {
	groups := buildScriptGroups()
	// "hello" + Greek letters outside the xi carve-out: neither Latin
	// nor Greek's primary+CM alphabet covers the whole set.
	cps := []Codepoint{'h', 'e', 'l', 'l', 'o', 0x03B5, 0x03BB, 0x03BB, 0x03B7, 0x03BD, 0x03B9, 0x03BA, 0x03AC}
	_, err := resolveScriptGroup(groups, cps, 1)
	require.NotNil(t, err)
	assert.Equal(t, ErrKindDisallowedCharacter, err.Kind)
}

func TestResolveScriptGroupHebrew(t *testing.T) {
	groups := buildScriptGroups()
	g, err := resolveScriptGroup(groups, []Codepoint{0x05D0, 0x05D1}, 1)
	require.Nil(t, err)
	assert.Equal(t, "Hebrew", g.Name)
}

func TestResolveScriptGroupArabic(t *testing.T) {
	groups := buildScriptGroups()
	g, err := resolveScriptGroup(groups, []Codepoint{0x0628, 0x062A}, 1)
	require.Nil(t, err)
	assert.Equal(t, "Arabic", g.Name)
}
