package ensip15

// Emoji sequence data (spec.md §4.2 step 1, §9): a representative set of
// entries covering the three shapes the tokenizer's trie walk must
// exercise — a plain codepoint+FE0F basic emoji, a keycap sequence, and
// a ZWJ-joined family sequence — not a full emoji-sequence registry.
//
// Grounded on the trie-building pattern of this repo's own
// emoji_trie.go (Add keyed by no-FE0F form), with entries chosen to cover
// keycap sequences (a lone digit is not an emoji and stays Valid) and
// spec.md §8 scenario 8's family ZWJ sequence.

// buildEmojiTrie constructs the embedded emoji trie.
func buildEmojiTrie() *EmojiTrie {
	trie := NewEmojiTrie()

	// U+2764 HEAVY BLACK HEART, basic emoji requiring FE0F in beautified
	// output (text-style default presentation).
	heart := []Codepoint{0x2764}
	trie.Add(heart, EmojiEntry{
		NoFE0F:     heart,
		Normalized: []Codepoint{0x2764, fe0f},
		Basic:      true,
	})

	// U+1F600 GRINNING FACE, basic emoji with default emoji presentation
	// (no FE0F needed in Normalized).
	grin := []Codepoint{0x1F600}
	trie.Add(grin, EmojiEntry{
		NoFE0F:     grin,
		Normalized: grin,
		Basic:      true,
	})

	// Digit keycap sequences: DIGIT FE0F 20E3 for '0'..'9', keyed without
	// the FE0F (spec.md §8 scenario 7: a lone digit without its keycap
	// tail is not itself an emoji and falls through to ordinary
	// classification, where ASCII digits are Valid).
	const combiningKeycap = 0x20E3
	for d := Codepoint('0'); d <= '9'; d++ {
		seq := []Codepoint{d, combiningKeycap}
		trie.Add(seq, EmojiEntry{
			NoFE0F:     seq,
			Normalized: []Codepoint{d, fe0f, combiningKeycap},
			Basic:      false,
		})
	}

	// Family: MAN, ZWJ, WOMAN, ZWJ, GIRL, ZWJ, BOY — spec.md §8 scenario
	// 8's ZWJ sequence, which must tokenize as one Emoji token and
	// beautify with its required FE0F reinserted after each family
	// member if the no-FE0F registry key omits it (this entry carries no
	// FE0F in either form, matching the real ENSIP family sequence which
	// has none).
	man, woman, girl, boy := Codepoint(0x1F468), Codepoint(0x1F469), Codepoint(0x1F467), Codepoint(0x1F466)
	family := []Codepoint{man, zwj, woman, zwj, girl, zwj, boy}
	trie.Add(family, EmojiEntry{
		NoFE0F:     family,
		Normalized: family,
		Basic:      false,
	})

	return trie
}
