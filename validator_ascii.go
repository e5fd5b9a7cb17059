package ensip15

// ASCII fast path (spec.md §4.4 step 3): a label whose normalized
// codepoints are all in [0-9A-Za-z_-] and that has no emoji token skips
// the script-group/combining-mark/NSM/confusable machinery entirely.
//
// Grounded on golang-text/internal/export/idna/idna.go's validateLabel,
// which likewise short-circuits on an all-ASCII label before running
// its heavier Unicode checks.

// isASCIIFastPathEligible reports whether cps qualifies for the ASCII
// fast path: every codepoint is in the ASCII label alphabet and the
// label has no emoji token.
func isASCIIFastPathEligible(cps []Codepoint, hasEmoji bool) bool {
	if hasEmoji {
		return false
	}
	for _, cp := range cps {
		if !isASCIILabelCodepoint(cp) {
			return false
		}
	}
	return true
}

// validateUnderscoreRule enforces that every U+005F appears before any
// non-underscore codepoint (spec.md §4.4 step 5 / §4.4.a).
func validateUnderscoreRule(cps []Codepoint, labelIndex int) *Error {
	seenNonUnderscore := false
	for _, cp := range cps {
		if cp == Underscore {
			if seenNonUnderscore {
				return newError(ErrKindUnderscoreInMiddle, labelIndex)
			}
			continue
		}
		seenNonUnderscore = true
	}
	return nil
}

// validateLabelExtensionRule rejects a label whose 3rd and 4th
// codepoints (0-indexed positions 2, 3) are both hyphens, matching
// ENSIP-15's rejection of "xn--..." and "ab--cd" forms (spec.md §4.4
// step 6 / §4.4.b). Per DESIGN.md's Open Question decision, cps here is
// already post-ignored-removal.
func validateLabelExtensionRule(cps []Codepoint, labelIndex int) *Error {
	if len(cps) >= 4 && cps[2] == Hyphen && cps[3] == Hyphen {
		return newError(ErrKindInvalidLabelExtension, labelIndex)
	}
	return nil
}
