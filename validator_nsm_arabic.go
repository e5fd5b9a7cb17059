package ensip15

// Arabic-specific NSM (non-spacing mark) tightening (spec.md §4.4 step
// 10: "Script-specific tightenings (Arabic ≤ 3, Hebrew ≤ 2, Devanagari
// base restrictions) apply when script_group.check_nsm is set").
//
// Grounded on boxesandglue-textshape/ot/ot_shaper_arabic.go's Arabic
// positional-feature tables: the teacher's isol/fina/medi/init
// classification of Arabic letters by joining behavior becomes, here,
// the set of Arabic base letters (joining or non-joining) an NSM run is
// allowed to sit on.

// arabicNSMMax is the Arabic script group's run-length ceiling, tighter
// than the global nsm_max of 4.
const arabicNSMMax = 3

// arabicBaseLetters are the core Arabic letters (U+0621..U+064A) that
// legitimately carry tashkil (the Arabic NSM set: fatha, damma, kasra,
// sukun, shadda, and related marks). A label whose NSM run sits on
// anything else in the Arabic script group fails InvalidNSMBase.
var arabicBaseLetters = rangeSet{
	{0x0621, 0x064B}, // HAMZA..YEH, the 28-letter core alphabet plus hamza carriers
	{0x0671, 0x06D4}, // extended Arabic letters used by loanword orthographies
}

// isValidArabicNSMBase reports whether base is a codepoint an Arabic
// NSM run may legally attach to.
func isValidArabicNSMBase(base Codepoint) bool {
	return arabicBaseLetters.Has(base)
}
