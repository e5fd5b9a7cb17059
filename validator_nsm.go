package ensip15

// Global NSM (non-spacing mark) run-length rule (spec.md §4.4 step 10),
// dispatching to the per-script tightenings in validator_nsm_hebrew.go
// and validator_nsm_arabic.go when the label's script group requests
// them (`check_nsm`).
//
// Grounded on the same per-script-dispatch shape the teacher uses in
// ot/ot_shaper_hebrew.go / ot_shaper_arabic.go (a generic mark-handling
// pass that special-cases by script name), applied here to a
// run-length/duplicate/base check instead of glyph reordering.

const defaultNSMMax = 4

// validateNSMRule walks cps looking for maximal runs of nsm set
// membership and checks each run's length, duplicate-freedom, leading
// position, and (for scripts that request it) valid base codepoint.
func validateNSMRule(nsmSet CodepointSet, globalMax int, group *ScriptGroup, cps []Codepoint, labelIndex int) *Error {
	if globalMax == 0 {
		globalMax = defaultNSMMax
	}
	limit := globalMax
	checkBase := false
	if group != nil && group.CheckNSM {
		if group.NSMMax != 0 {
			limit = group.NSMMax
		}
		checkBase = true
	}

	i := 0
	for i < len(cps) {
		if !nsmSet.Has(cps[i]) {
			i++
			continue
		}
		if i == 0 {
			return newError(ErrKindLeadingNSM, labelIndex)
		}
		base := cps[i-1]
		j := i
		seen := make(map[Codepoint]bool)
		for j < len(cps) && nsmSet.Has(cps[j]) {
			if seen[cps[j]] {
				return newErrorCP(ErrKindDuplicateNSM, labelIndex, cps[j])
			}
			seen[cps[j]] = true
			j++
		}
		runLen := j - i
		if runLen > limit {
			return newError(ErrKindExcessiveNSM, labelIndex)
		}
		if checkBase && !isValidNSMBase(group, base) {
			return newError(ErrKindInvalidNSMBase, labelIndex)
		}
		i = j
	}
	return nil
}

// isValidNSMBase dispatches to the per-script base-validity predicate
// named by the group, defaulting to "any non-NSM base is fine" for
// groups that set check_nsm without a more specific rule (e.g.
// Devanagari base restrictions beyond what the embedded dataset models).
func isValidNSMBase(group *ScriptGroup, base Codepoint) bool {
	switch group.Name {
	case "Hebrew":
		return isValidHebrewNSMBase(base)
	case "Arabic":
		return isValidArabicNSMBase(base)
	default:
		return true
	}
}
