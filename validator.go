package ensip15

import "unicode/utf8"

// maxLabelOctets is the DNS wire-format label length limit (63 octets)
// that golang-text/internal/export/idna/idna.go's VerifyDNSLength option
// rejects on. Here it's advisory only (spec.md §1 keeps DNS wire
// encoding out of scope) — see Label.Oversized.
const maxLabelOctets = 63

// isOversizedLabel reports whether cps' UTF-8 encoding exceeds
// maxLabelOctets.
func isOversizedLabel(cps []Codepoint) bool {
	n := 0
	for _, cp := range cps {
		n += utf8.RuneLen(rune(cp))
		if n > maxLabelOctets {
			return true
		}
	}
	return false
}

// Validator (spec.md §4.4): the per-label structural + script-group +
// combining-mark + NSM + confusable cascade. Checks run in the order
// spec.md lists them; the first failure aborts with its specific error
// kind and the label's one-based index.
//
// Grounded on golang-text/internal/export/idna/idna.go's validateLabel:
// one function, one ordered list of checks, first failure wins, no
// backtracking — the exact shape spec.md §4.4 calls for ("The validator
// is linear: no back-tracking, no per-token mutable state beyond the
// running codepoint index").

// validateLabel runs the full cascade over one label's tokens and
// returns the assembled Label on success.
func validateLabel(tables StaticTables, tokens []Token, labelIndex int) (*Label, *Error) {
	if !labelHasContent(tokens) {
		return nil, newError(ErrKindEmptyLabel, labelIndex)
	}

	for _, t := range tokens {
		if t.Kind == TokenDisallowed {
			return nil, newErrorCP(ErrKindDisallowedCharacter, labelIndex, t.Src)
		}
	}

	hasEmoji := false
	for _, t := range tokens {
		if t.Kind == TokenEmoji {
			hasEmoji = true
			break
		}
	}

	inputCPs := collectInputCPs(tokens)
	normalizedCPs, afterEmoji := collectNormalizedCPs(tokens)

	if isASCIIFastPathEligible(normalizedCPs, hasEmoji) {
		if err := validateUnderscoreRule(normalizedCPs, labelIndex); err != nil {
			return nil, err
		}
		if err := validateLabelExtensionRule(normalizedCPs, labelIndex); err != nil {
			return nil, err
		}
		return &Label{
			Tokens:        tokens,
			Kind:          LabelASCII,
			InputCPs:      inputCPs,
			NormalizedCPs: normalizedCPs,
			Oversized:     isOversizedLabel(normalizedCPs),
		}, nil
	}

	if err := validateUnderscoreRule(normalizedCPs, labelIndex); err != nil {
		return nil, err
	}
	if err := validateLabelExtensionRule(normalizedCPs, labelIndex); err != nil {
		return nil, err
	}
	if err := validateFencedRule(tables.Fenced(), normalizedCPs, labelIndex); err != nil {
		return nil, err
	}

	nonEmojiCPs := collectNonEmojiCPs(tokens)
	var group *ScriptGroup
	if len(nonEmojiCPs) > 0 {
		var serr *Error
		group, serr = resolveScriptGroup(tables.ScriptGroups(), nonEmojiCPs, labelIndex)
		if serr != nil {
			return nil, serr
		}
	}

	// Restricted-script singleton rule (spec.md §3's `restricted` field):
	// a label assigned to a Restricted group must spell more than one
	// base codepoint, closing off the classic single-exotic-character
	// spoofing label. None of the four embedded script groups are
	// flagged Restricted, so this is a no-op against DefaultTables today
	// and only fires for a caller-supplied StaticTables that sets it.
	if group != nil && group.Restricted && countBaseCodepoints(tables, group, normalizedCPs) < 2 {
		return nil, newError(ErrKindRestrictedSingleton, labelIndex)
	}

	if len(normalizedCPs) > 0 && isCombiningMark(tables, group, normalizedCPs[0]) {
		return nil, newError(ErrKindLeadingCombiningMark, labelIndex)
	}
	fenced := tables.Fenced()
	for i := 1; i < len(normalizedCPs); i++ {
		cp := normalizedCPs[i]
		if !isCombiningMark(tables, group, cp) {
			continue
		}
		if afterEmoji[i] {
			return nil, newError(ErrKindCombiningMarkAfterEmoji, labelIndex)
		}
		if fenced.Has(normalizedCPs[i-1]) {
			return nil, newError(ErrKindCombiningMarkAfterFenced, labelIndex)
		}
		if group != nil && !group.CM.Has(cp) {
			return nil, newErrorCP(ErrKindDisallowedCombiningMark, labelIndex, cp)
		}
	}

	nsmSet, nsmMax := tables.NSM()
	if err := validateNSMRule(nsmSet, nsmMax, group, normalizedCPs, labelIndex); err != nil {
		return nil, err
	}

	if isWholeScriptConfusable(tables.ConfusableSets(), normalizedCPs) {
		return nil, newError(ErrKindWholeScriptConfusable, labelIndex)
	}

	kind := LabelOther
	switch {
	case hasEmoji:
		kind = LabelEmoji
	case group != nil && group.Name == "Greek":
		kind = LabelGreek
	}

	return &Label{
		Tokens:        tokens,
		Kind:          kind,
		ScriptGroup:   group,
		InputCPs:      inputCPs,
		NormalizedCPs: normalizedCPs,
		Oversized:     isOversizedLabel(normalizedCPs),
	}, nil
}

// isCombiningMark reports whether cp is a combining mark for the
// purposes of the leading/after-emoji/after-fenced checks: membership
// in the global NSM set or in the current script group's cm set
// (spec.md's invariant that both are subsets of Unicode's non-spacing
// marks).
func isCombiningMark(tables StaticTables, group *ScriptGroup, cp Codepoint) bool {
	nsmSet, _ := tables.NSM()
	if nsmSet.Has(cp) {
		return true
	}
	return group != nil && group.CM.Has(cp)
}

// collectInputCPs concatenates every token's original input codepoints,
// in order, for Label.InputCPs.
func collectInputCPs(tokens []Token) []Codepoint {
	var out []Codepoint
	for _, t := range tokens {
		out = append(out, t.InputCPs...)
	}
	return out
}

// collectNormalizedCPs concatenates each token's output contribution
// (spec.md §4.3: "concatenation of valid/mapped.cps/nfc.output_cps/
// emoji.normalized_cps") and records, in afterEmoji, whether each
// resulting position is the first codepoint contributed by a token that
// immediately follows an Emoji token (spec.md §4.4 step 9: "a combining
// mark MUST NOT directly follow an emoji token"). Ignored tokens
// contribute nothing and are transparent to this adjacency.
func collectNormalizedCPs(tokens []Token) (cps []Codepoint, afterEmoji []bool) {
	prevWasEmoji := false
	for _, t := range tokens {
		out := t.outputCPs()
		if len(out) == 0 {
			continue
		}
		for i, cp := range out {
			cps = append(cps, cp)
			afterEmoji = append(afterEmoji, i == 0 && prevWasEmoji)
		}
		prevWasEmoji = t.Kind == TokenEmoji
	}
	return cps, afterEmoji
}

// collectNonEmojiCPs concatenates the output codepoints of every
// non-Emoji, contributing token, the input to script-group resolution
// (spec.md §4.4 step 8: "Compute the set of codepoints excluding emoji
// and ignored").
func collectNonEmojiCPs(tokens []Token) []Codepoint {
	var out []Codepoint
	for _, t := range tokens {
		if t.Kind == TokenEmoji {
			continue
		}
		out = append(out, t.outputCPs()...)
	}
	return out
}
