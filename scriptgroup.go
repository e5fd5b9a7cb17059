package ensip15

// Script group determination (spec.md §4.4 step 8).
//
// Unlike the teacher's OpenType script tagging (one script per
// codepoint, used to pick a shaping engine), ENSIP-15 assigns a whole
// *label* to the single script group whose combined primary+secondary+cm
// alphabet is a superset of every codepoint in the label, using the static data's group order as the tie-break when more
// than one group qualifies (spec.md §9: "ties are broken by the order
// script groups appear in the static data, not by any notion of
// 'most specific'").
//
// Grounded on boxesandglue-textshape/ot/unicode_script.go's per-codepoint
// classification shape, generalized here from "classify one codepoint"
// to "classify a whole label against a set of groups".

// resolveScriptGroup finds the script group a label belongs to, per
// spec.md §4.4 step 8:
//
//  1. Collect the set of distinct codepoints in the label, combining
//     marks included.
//  2. A group qualifies if every such codepoint is in its Primary,
//     Secondary, or CM set.
//  3. Among qualifying groups, the first one in group order wins.
//
// It returns ErrDisallowedCharacter if no group qualifies (some
// codepoint in the label belongs to no group's alphabet) and
// ErrDisallowedSequence if more than one group's Primary and CM sets
// alone (Secondary left out) would qualify; in that case no group is
// chosen by order.
func resolveScriptGroup(groups []*ScriptGroup, cps []Codepoint, labelIndex int) (*ScriptGroup, *Error) {
	unique := make(map[Codepoint]struct{}, len(cps))
	for _, cp := range cps {
		unique[cp] = struct{}{}
	}

	var qualifying []*ScriptGroup
	var primaryOnly []*ScriptGroup
	for _, g := range groups {
		if groupCoversAll(g, unique) {
			qualifying = append(qualifying, g)
			if groupPrimaryCoversAll(g, unique) {
				primaryOnly = append(primaryOnly, g)
			}
		}
	}

	if len(qualifying) == 0 {
		return nil, newError(ErrKindDisallowedCharacter, labelIndex)
	}
	if len(primaryOnly) > 1 {
		return nil, newError(ErrKindDisallowedSequence, labelIndex)
	}
	return qualifying[0], nil
}

// groupCoversAll reports whether every codepoint in cps belongs to g's
// Primary, Secondary, or CM set.
func groupCoversAll(g *ScriptGroup, cps map[Codepoint]struct{}) bool {
	for cp := range cps {
		if !g.Contains(cp) {
			return false
		}
	}
	return true
}

// countBaseCodepoints counts the codepoints in cps that are not
// combining marks for group — the "how many letters, not accents, does
// this label actually spell" count the restricted-script singleton rule
// needs (spec.md §3's `restricted` field; see validateLabel).
func countBaseCodepoints(tables StaticTables, group *ScriptGroup, cps []Codepoint) int {
	n := 0
	for _, cp := range cps {
		if !isCombiningMark(tables, group, cp) {
			n++
		}
	}
	return n
}

// groupPrimaryCoversAll reports whether every codepoint in cps belongs
// to g's Primary or CM set specifically, excluding Secondary. When more
// than one group covers a label this way, resolveScriptGroup rejects it
// with ErrDisallowedSequence.
func groupPrimaryCoversAll(g *ScriptGroup, cps map[Codepoint]struct{}) bool {
	for cp := range cps {
		if !g.Primary.Has(cp) && !g.CM.Has(cp) {
			return false
		}
	}
	return true
}
