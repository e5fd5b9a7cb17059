package ensip15

// Hangul syllable decomposition/composition.
//
// Unicode equivalent: UAX #15 §"Hangul Syllable Decomposition" — L/V/T
// jamo compose and decompose arithmetically rather than through a table,
// per spec.md §4.1 ("Hangul syllables decompose arithmetically into
// L/V/T jamo... Hangul L+V and LV+T compose arithmetically") and §9
// ("Hangul rules are arithmetic and should not sit in tables").
//
// The jamo range constants and composable-range predicates below are
// kept as-is from the teacher's font-shaping Hangul jamo handling (they
// describe Unicode's Hangul block layout, not anything font-specific);
// everything built on top of them is rewritten for NFC rather than for
// glyph composition.
const (
	lBase Codepoint = 0x1100
	vBase Codepoint = 0x1161
	tBase Codepoint = 0x11A7
	sBase Codepoint = 0xAC00
	lCount          = 19
	vCount          = 21
	tCount          = 28
	nCount          = vCount * tCount // 588
	sCount          = lCount * nCount // 11172
)

// isCombiningL reports whether u is one of the 19 composable Leading
// Jamo (U+1100..U+1112).
func isCombiningL(u Codepoint) bool { return u >= 0x1100 && u <= 0x1112 }

// isCombiningV reports whether u is one of the 21 composable Vowel Jamo
// (U+1161..U+1175).
func isCombiningV(u Codepoint) bool { return u >= 0x1161 && u <= 0x1175 }

// isCombiningT reports whether u is one of the 27 composable Trailing
// Jamo (U+11A8..U+11C2); T index 0 means "no trailing consonant".
func isCombiningT(u Codepoint) bool { return u >= 0x11A8 && u <= 0x11C2 }

// isHangulPrecomposed reports whether u is a precomposed Hangul syllable
// (U+AC00..U+D7A3).
func isHangulPrecomposed(u Codepoint) bool {
	return u >= sBase && u < sBase+Codepoint(sCount)
}

// hangulDecompose returns the canonical decomposition of a precomposed
// Hangul syllable: its L+V pair, or its L+V+T triple flattened into a
// two-step decomposition (LV, then LV+T), matching how the rest of the
// NFC engine consumes single-step decompositions recursively.
//
// It returns ok=false for anything that is not a precomposed syllable.
func hangulDecompose(s Codepoint) (a, b Codepoint, ok bool) {
	if !isHangulPrecomposed(s) {
		return 0, 0, false
	}
	sIndex := s - sBase
	lIndex := sIndex / Codepoint(nCount)
	vtIndex := sIndex % Codepoint(nCount)
	vIndex := vtIndex / Codepoint(tCount)
	tIndex := vtIndex % Codepoint(tCount)

	if tIndex == 0 {
		// LV syllable: decomposes to L, V.
		return lBase + lIndex, vBase + vIndex, true
	}
	// LVT syllable: decomposes to the LV syllable, T. The LV syllable
	// itself decomposes further on the next recursive call.
	lv := sBase + lIndex*Codepoint(nCount) + vIndex*Codepoint(tCount)
	return lv, tBase + tIndex, true
}

// hangulCompose returns the arithmetic composition of a pair, handling
// both L+V -> LV and LV+T -> LVT per spec.md §4.1 step 3.
func hangulCompose(a, b Codepoint) (composed Codepoint, ok bool) {
	if isCombiningL(a) && isCombiningV(b) {
		lIndex := a - lBase
		vIndex := b - vBase
		return sBase + lIndex*Codepoint(nCount) + vIndex*Codepoint(tCount), true
	}
	if isHangulPrecomposed(a) && isCombiningT(b) {
		sIndex := a - sBase
		if sIndex%Codepoint(tCount) == 0 { // a is an LV syllable (no trailing consonant yet)
			tIndex := b - tBase
			return a + tIndex, true
		}
	}
	return 0, false
}
