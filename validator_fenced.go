package ensip15

// Fenced-codepoint placement rule (spec.md §4.4 step 7): a fenced
// codepoint (apostrophe, hyphen-like, middle-dot, slash-like) may not
// open or close a label, and two fenced codepoints may never sit
// adjacent to each other — except that a run of identical trailing
// hyphens is permitted (DESIGN.md Open Question decision 2: the
// reference test corpus accepts "hello---").
//
// Grounded on golang-text/internal/export/idna/idna.go's validateLabel
// hyphen-placement checks ("label must not contain hyphen in 3rd/4th
// position" and "must not begin/end with hyphen"), generalized here from
// "hyphen only" to the full fenced set.

// validateFencedRule checks cps (the label's normalized codepoints,
// post-ignored-removal) against tables.Fenced().
func validateFencedRule(fenced CodepointSet, cps []Codepoint, labelIndex int) *Error {
	if len(cps) == 0 {
		return nil
	}
	if fenced.Has(cps[0]) {
		return newError(ErrKindFencedLeading, labelIndex)
	}
	last := cps[len(cps)-1]
	if fenced.Has(last) {
		if isPermissibleTrailingHyphenRun(fenced, cps) {
			// Falls through: accepted per the reference's observable
			// permissive behavior for trailing identical hyphens.
		} else {
			return newError(ErrKindFencedTrailing, labelIndex)
		}
	}
	for i := 1; i < len(cps); i++ {
		if fenced.Has(cps[i-1]) && fenced.Has(cps[i]) {
			if cps[i-1] == Hyphen && cps[i] == Hyphen && isTrailingRun(cps, i) {
				continue
			}
			return newError(ErrKindFencedAdjacent, labelIndex)
		}
	}
	return nil
}

// isPermissibleTrailingHyphenRun reports whether cps ends in a run of
// one or more consecutive U+002D HYPHEN-MINUS codepoints preceded by at
// least one non-fenced codepoint — the permissive exception recorded in
// DESIGN.md.
func isPermissibleTrailingHyphenRun(fenced CodepointSet, cps []Codepoint) bool {
	i := len(cps) - 1
	for i >= 0 && cps[i] == Hyphen {
		i--
	}
	return i >= 0 && i < len(cps)-1 && !fenced.Has(cps[i])
}

// isTrailingRun reports whether the hyphen run starting at index i
// extends unbroken to the end of cps (used to scope the adjacent-hyphen
// exception strictly to the label's tail, not an interior hyphen pair).
func isTrailingRun(cps []Codepoint, i int) bool {
	for j := i; j < len(cps); j++ {
		if cps[j] != Hyphen {
			return false
		}
	}
	return true
}
