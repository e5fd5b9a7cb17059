package ensip15

// NFC data (spec.md §4.1): an embedded, hand-authored subset of the
// Unicode canonical decomposition/composition and combining-class
// tables — enough precomposed Latin-1 and Greek letters to exercise the
// NFC engine's decompose/reorder/compose pipeline and every spec.md §8
// scenario that round-trips through it (café, combining marks), not a
// full Unicode Character Database port.
//
// Grounded on golang.org/x/text/unicode/norm's table shape (parallel
// decomposition/compose/combining-class maps keyed by codepoint),
// flattened to plain Go maps since the embedded dataset is small.

type nfcDecomp struct {
	a, b Codepoint
}

// nfcDecompositions maps a precomposed codepoint to its canonical
// decomposition (base, combining mark).
var nfcDecompositions = map[Codepoint]nfcDecomp{
	0x00C0: {0x0041, 0x0300}, // À -> A + grave
	0x00C1: {0x0041, 0x0301}, // Á -> A + acute
	0x00C3: {0x0041, 0x0303}, // Ã -> A + tilde
	0x00C4: {0x0041, 0x0308}, // Ä -> A + diaeresis
	0x00C8: {0x0045, 0x0300}, // È -> E + grave
	0x00C9: {0x0045, 0x0301}, // É -> E + acute
	0x00CC: {0x0049, 0x0300}, // Ì -> I + grave
	0x00CD: {0x0049, 0x0301}, // Í -> I + acute
	0x00D1: {0x004E, 0x0303}, // Ñ -> N + tilde
	0x00D2: {0x004F, 0x0300}, // Ò -> O + grave
	0x00D3: {0x004F, 0x0301}, // Ó -> O + acute
	0x00D5: {0x004F, 0x0303}, // Õ -> O + tilde
	0x00D6: {0x004F, 0x0308}, // Ö -> O + diaeresis
	0x00D9: {0x0055, 0x0300}, // Ù -> U + grave
	0x00DA: {0x0055, 0x0301}, // Ú -> U + acute
	0x00DC: {0x0055, 0x0308}, // Ü -> U + diaeresis
	0x00E0: {0x0061, 0x0300}, // à -> a + grave
	0x00E1: {0x0061, 0x0301}, // á -> a + acute
	0x00E3: {0x0061, 0x0303}, // ã -> a + tilde
	0x00E4: {0x0061, 0x0308}, // ä -> a + diaeresis
	0x00E8: {0x0065, 0x0300}, // è -> e + grave
	0x00E9: {0x0065, 0x0301}, // é -> e + acute
	0x00EC: {0x0069, 0x0300}, // ì -> i + grave
	0x00ED: {0x0069, 0x0301}, // í -> i + acute
	0x00F1: {0x006E, 0x0303}, // ñ -> n + tilde
	0x00F2: {0x006F, 0x0300}, // ò -> o + grave
	0x00F3: {0x006F, 0x0301}, // ó -> o + acute
	0x00F5: {0x006F, 0x0303}, // õ -> o + tilde
	0x00F6: {0x006F, 0x0308}, // ö -> o + diaeresis
	0x00F9: {0x0075, 0x0300}, // ù -> u + grave
	0x00FA: {0x0075, 0x0301}, // ú -> u + acute
	0x00FC: {0x0075, 0x0308}, // ü -> u + diaeresis
	0x03AC: {0x03B1, 0x0301}, // ά -> α + tonos(acute)
	0x03AD: {0x03B5, 0x0301}, // έ -> ε + tonos
	0x03AF: {0x03B9, 0x0301}, // ί -> ι + tonos
	0x03CC: {0x03BF, 0x0301}, // ό -> ο + tonos
	0x03CD: {0x03C5, 0x0301}, // ύ -> υ + tonos
}

// nfcCombiningClass gives the Canonical_Combining_Class for every
// non-zero-class codepoint in the embedded dataset; every codepoint not
// listed here has class 0 (it is a starter).
var nfcCombiningClass = map[Codepoint]int{
	0x0300: 230, 0x0301: 230, 0x0303: 230, 0x0308: 230, // Latin/Greek diacritics, "Above" class
	0x0591: 220, 0x0592: 230, 0x0593: 230, 0x0594: 230, 0x0595: 230,
	0x0596: 220, 0x0597: 230, 0x0598: 230, 0x0599: 230, 0x059A: 222,
	0x059B: 220, 0x059C: 230, 0x059D: 230, 0x059E: 230, 0x059F: 230,
	0x05A0: 230, 0x05A1: 230, 0x05A2: 220, 0x05A3: 220, 0x05A4: 220,
	0x05A5: 220, 0x05A6: 220, 0x05A7: 220, 0x05A8: 230, 0x05A9: 230,
	0x05AA: 220, 0x05AB: 230, 0x05AC: 230, 0x05AD: 222, 0x05AE: 228,
	0x05AF: 230, 0x05B0: 10, 0x05B1: 11, 0x05B2: 12, 0x05B3: 13,
	0x05B4: 14, 0x05B5: 15, 0x05B6: 16, 0x05B7: 17, 0x05B8: 18,
	0x05B9: 19, 0x05BA: 19, 0x05BB: 20, 0x05BC: 21, 0x05BD: 22,
	0x05BF: 23, 0x05C1: 24, 0x05C2: 25,
	0x064B: 27, 0x064C: 28, 0x064D: 29, 0x064E: 30, 0x064F: 31,
	0x0650: 32, 0x0651: 33, 0x0652: 34,
}

// CombiningClass implements NFCTables.CombiningClass for DefaultTables.
func (t *DefaultTables) CombiningClass(cp Codepoint) int {
	return nfcCombiningClass[cp]
}

// Decompose implements NFCTables.Decompose for DefaultTables.
func (t *DefaultTables) Decompose(cp Codepoint) (a, b Codepoint, ok bool) {
	d, ok := nfcDecompositions[cp]
	if !ok {
		return 0, 0, false
	}
	return d.a, d.b, true
}

// Compose implements NFCTables.Compose for DefaultTables: the exact
// inverse of Decompose, since the embedded dataset carries no singleton
// (one-codepoint) decompositions that would break the symmetry.
func (t *DefaultTables) Compose(a, b Codepoint) (Codepoint, bool) {
	for composed, d := range nfcDecompositions {
		if d.a == a && d.b == b {
			return composed, true
		}
	}
	return 0, false
}

// Excluded implements NFCTables.Excluded for DefaultTables. The embedded
// dataset has no composition exclusions (spec.md §4.1 allows the set to
// be empty; a real UCD-derived table would list e.g. U+0958-U+095F
// here).
func (t *DefaultTables) Excluded(composed Codepoint) bool {
	return false
}
