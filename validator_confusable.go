package ensip15

// Whole-script confusable detection (spec.md §4.4 step 11), implementing
// DESIGN.md's Open Question decision 1 verbatim: a label is a
// whole-script confusable if there exists a single target whose
// confusable set the label's codepoints intersect in BOTH the valid
// partition and the confused partition, AND at least one other target's
// confused partition is also hit.
//
// Grounded on blockberries-punnet-sdk/modules/auth/validation.go's
// multi-set membership scan (checking one value against several
// candidate rule sets and looking for more than one match), adapted
// from its "duplicate rule" detection to confusable-set overlap
// detection.

// isWholeScriptConfusable implements the step-11 predicate over cps (the
// label's normalized codepoints, post-ignored-removal).
func isWholeScriptConfusable(sets []ConfusableSet, cps []Codepoint) bool {
	hitsValid := make([]bool, len(sets))
	hitsConfused := make([]bool, len(sets))
	for _, cp := range cps {
		for i, s := range sets {
			if s.Valid.Has(cp) {
				hitsValid[i] = true
			}
			if s.Confused.Has(cp) {
				hitsConfused[i] = true
			}
		}
	}

	for i, s := range sets {
		if !hitsValid[i] || !hitsConfused[i] {
			continue
		}
		for j, other := range sets {
			if j == i || other.Target == s.Target {
				continue
			}
			if hitsConfused[j] {
				return true
			}
		}
	}
	return false
}
