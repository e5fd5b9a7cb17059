package ensip15

// Hebrew-specific NSM (non-spacing mark) tightening (spec.md §4.4 step
// 10: "Script-specific tightenings (Arabic ≤ 3, Hebrew ≤ 2, Devanagari
// base restrictions) apply when script_group.check_nsm is set").
//
// Grounded on boxesandglue-textshape/ot/ot_shaper_hebrew.go's Hebrew
// mark-handling tables: the teacher's hebrewDageshForms array (which
// letters of the Hebrew alphabet a combining dagesh may legally attach
// to, for glyph composition) becomes, here, the set of Hebrew base
// letters an NSM run is allowed to sit on at all.

// hebrewNSMMax is the Hebrew script group's run-length ceiling, tighter
// than the global nsm_max of 4 because Hebrew niqqud rarely stacks more
// than two marks on a single consonant.
const hebrewNSMMax = 2

// hebrewBaseLetters are the 27 codepoints of the Hebrew alphabet
// (U+05D0..U+05EA, final forms included) that legitimately carry niqqud.
// A label whose NSM run sits on anything else in the Hebrew script
// group fails InvalidNSMBase.
var hebrewBaseLetters = newMapSet(
	0x05D0, 0x05D1, 0x05D2, 0x05D3, 0x05D4, 0x05D5, 0x05D6, 0x05D7, 0x05D8,
	0x05D9, 0x05DA, 0x05DB, 0x05DC, 0x05DD, 0x05DE, 0x05DF, 0x05E0, 0x05E1,
	0x05E2, 0x05E3, 0x05E4, 0x05E5, 0x05E6, 0x05E7, 0x05E8, 0x05E9, 0x05EA,
)

// isValidHebrewNSMBase reports whether base is a codepoint an Hebrew
// NSM run may legally attach to.
func isValidHebrewNSMBase(base Codepoint) bool {
	return hebrewBaseLetters.Has(base)
}
