package ensip15

// Character-class data (spec.md §3, "Character Class"): the embedded,
// hand-authored partition of U+0000..U+10FFFF into valid / mapped /
// ignored / disallowed / stop. This is a representative subset — ASCII,
// Latin-1 Supplement, core Greek and Hebrew and Arabic letters plus
// their combining marks — sufficient to exercise every validator rule
// and every spec.md §8 scenario, not a full Unicode Character Database
// port (spec.md §1 scopes loading the real on-disk dataset out of this
// core; see DESIGN.md).
//
// Grounded on the classification-table shape of
// golang-text/internal/export/idna/idna.go's trie-backed valid/mapped
// lookup, flattened here to plain Go maps/ranges since the embedded
// dataset is small enough not to need a compressed trie.

// classValidRanges lists contiguous codepoint ranges that are ClassValid, in
// the order checked.
var classValidRanges = rangeSet{
	{'0', '9' + 1},
	{'a', 'z' + 1},
	{Hyphen, Hyphen + 1},
	{Underscore, Underscore + 1},
	{0x00B7, 0x00B7 + 1},  // middle dot (fenced)
	{0x2019, 0x2019 + 1},  // right single quotation mark (fenced apostrophe)
	{0x2044, 0x2044 + 1},  // fraction slash (fenced)
	{0x00C0, 0x00D7},      // Latin-1 supplement uppercase (mapped separately below where needed)
	{0x00D8, 0x00F7},      // ditto, excluding × at 0x00D7
	{0x00F8, 0x0100},      // ditto, excluding ÷ at 0x00F7
	{0x0300, 0x0300 + 1},  // combining grave accent (NSM)
	{0x0301, 0x0301 + 1},  // combining acute accent (NSM)
	{0x0303, 0x0303 + 1},  // combining tilde (NSM)
	{0x0308, 0x0308 + 1},  // combining diaeresis (NSM)
	{0x03B1, 0x03CA},      // Greek lowercase alpha..omega
	{0x0591, 0x05BD + 1},  // Hebrew niqqud (NSM)
	{0x05BF, 0x05BF + 1},  // Hebrew rafe (NSM)
	{0x05C1, 0x05C2 + 1},  // Hebrew shin/sin dot (NSM)
	{0x05D0, 0x05EA + 1},  // Hebrew letters
	{0x0621, 0x063B},      // Arabic letters (hamza through ghain)
	{0x0641, 0x064A + 1},  // Arabic letters (feh through yeh)
	{0x064B, 0x0653},      // Arabic tashkil (NSM)
}

// classValidExtra holds the few Greek precomposed tonos (accented)
// vowels the embedded dataset supports outside the contiguous
// 0x03B1..0x03C9 block: each is already NFC, and also appears as a key
// of nfcDecompositions so the NFC engine can decompose/recompose it.
var classValidExtra = newMapSet(0x03AC, 0x03AD, 0x03AF, 0x03CC, 0x03CD)

// classUppercaseMapped lists the ASCII and Latin-1 uppercase letters
// that map to their lowercase form (spec.md §8: "uppercase ASCII folds:
// normalize('A'..'Z') == 'a'..'z'").
var classUppercaseMapped = buildUppercaseMap()

func buildUppercaseMap() map[Codepoint][]Codepoint {
	m := make(map[Codepoint][]Codepoint, 26+32)
	for c := Codepoint('A'); c <= 'Z'; c++ {
		m[c] = []Codepoint{c - 'A' + 'a'}
	}
	// Latin-1 supplement uppercase (0xC0..0xDE, excluding 0xD7 ×) maps to
	// its lowercase counterpart 32 codepoints later, matching the
	// Unicode simple case-fold offset for this block.
	for c := Codepoint(0x00C0); c <= 0x00DE; c++ {
		if c == 0x00D7 {
			continue
		}
		m[c] = []Codepoint{c + 0x20}
	}
	return m
}

// classIgnored is the embedded ignored set: soft hyphen, matching
// spec.md §8 scenario 9 ("test" + U+00AD + "name" -> "testname").
var classIgnored = newMapSet(0x00AD)

// Classify implements StaticTables.Classify for DefaultTables.
func (t *DefaultTables) Classify(cp Codepoint) (Class, []Codepoint) {
	if cp == Stop {
		return ClassStop, nil
	}
	if mapped, ok := classUppercaseMapped[cp]; ok {
		return ClassMapped, mapped
	}
	if classIgnored.Has(cp) {
		return ClassIgnored, nil
	}
	if classValidRanges.Has(cp) || classValidExtra.Has(cp) {
		return ClassValid, nil
	}
	return ClassDisallowed, nil
}
