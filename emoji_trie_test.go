package ensip15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojiTrieMatch(t *testing.T) {
	trie := NewEmojiTrie()
	heart := []Codepoint{0x2764}
	trie.Add(heart, EmojiEntry{NoFE0F: heart, Normalized: []Codepoint{0x2764, fe0f}, Basic: true})

	entry, n, ok := trie.Match([]Codepoint{0x2764})
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, []Codepoint{0x2764, fe0f}, entry.Normalized)

	// FE0F is an optional skippable edge anywhere inside the key.
	entry, n, ok = trie.Match([]Codepoint{0x2764, fe0f})
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, []Codepoint{0x2764, fe0f}, entry.Normalized)
}

func TestEmojiTrieNoMatch(t *testing.T) {
	trie := NewEmojiTrie()
	trie.Add([]Codepoint{0x2764}, EmojiEntry{NoFE0F: []Codepoint{0x2764}, Normalized: []Codepoint{0x2764, fe0f}})

	_, _, ok := trie.Match([]Codepoint{'a'})
	assert.False(t, ok)
}

func TestEmojiTrieKeycapGreediness(t *testing.T) {
	trie := buildEmojiTrie()
	// spec.md §8: "inserting FE0F between any two codepoints of e
	// produces the same token."
	withoutFE0F := []Codepoint{'5', 0x20E3}
	withFE0F := []Codepoint{'5', fe0f, 0x20E3}

	e1, n1, ok1 := trie.Match(withoutFE0F)
	require.True(t, ok1)
	e2, n2, ok2 := trie.Match(withFE0F)
	require.True(t, ok2)

	assert.Equal(t, e1.NoFE0F, e2.NoFE0F)
	assert.Equal(t, 2, n1)
	assert.Equal(t, 3, n2)
}

func TestEmojiTrieFamilySequence(t *testing.T) {
	trie := buildEmojiTrie()
	man, womanCp, girl, boy := Codepoint(0x1F468), Codepoint(0x1F469), Codepoint(0x1F467), Codepoint(0x1F466)
	family := []Codepoint{man, zwj, womanCp, zwj, girl, zwj, boy}

	entry, n, ok := trie.Match(family)
	require.True(t, ok)
	assert.Equal(t, len(family), n)
	assert.Equal(t, family, entry.Normalized)
}
