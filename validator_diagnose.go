package ensip15

// Diagnose support (SPEC_FULL.md "Supplemented features": a read-only
// validator trail for tooling). Mirrors validateLabel's cascade exactly,
// check for check and in the same order, but never aborts at the first
// failure — every check runs (or is recorded as skipped, for the same
// reason validateLabel itself would have skipped it) and its own
// pass/fail is kept, so a caller can see the whole picture for a label
// instead of only the first thing that tripped.
//
// Grounded on the same golang-text/internal/export/idna/idna.go
// validateLabel shape validator.go itself follows; Diagnose is the
// non-short-circuiting sibling of that cascade.

// CheckResult is the outcome of one named step of the validator cascade.
type CheckResult struct {
	Name string
	// Passed is true both when the check ran and succeeded, and when the
	// check was Skipped (a skipped check never fails a label).
	Passed bool
	// Skipped is true for a check validateLabel itself would not have
	// reached on this input (e.g. the script-group/combining-mark/NSM/
	// confusable checks, on a label eligible for the ASCII fast path).
	Skipped bool
	Err     *Error
}

// LabelDiagnosis is the full validator trail for one label.
type LabelDiagnosis struct {
	LabelIndex int
	Checks     []CheckResult
	// Label is the assembled label, set only if every non-skipped check
	// passed — equivalent to what validateLabel would have returned.
	Label *Label
}

// OK reports whether every check in the trail passed (skipped checks
// count as passed, matching validateLabel's own behavior of treating a
// skipped check as a non-issue).
func (d *LabelDiagnosis) OK() bool {
	for _, c := range d.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// FirstError returns the error validateLabel itself would have returned
// for this label: the first non-skipped, failed check in cascade order,
// or nil if the label is valid.
func (d *LabelDiagnosis) FirstError() *Error {
	for _, c := range d.Checks {
		if !c.Skipped && !c.Passed {
			return c.Err
		}
	}
	return nil
}

func diagnoseLabel(tables StaticTables, tokens []Token, labelIndex int) *LabelDiagnosis {
	d := &LabelDiagnosis{LabelIndex: labelIndex}
	record := func(name string, err *Error) {
		d.Checks = append(d.Checks, CheckResult{Name: name, Passed: err == nil, Err: err})
	}
	skip := func(name string) {
		d.Checks = append(d.Checks, CheckResult{Name: name, Passed: true, Skipped: true})
	}

	if !labelHasContent(tokens) {
		record("not-empty", newError(ErrKindEmptyLabel, labelIndex))
		return d
	}
	record("not-empty", nil)

	var disallowedErr *Error
	for _, t := range tokens {
		if t.Kind == TokenDisallowed {
			disallowedErr = newErrorCP(ErrKindDisallowedCharacter, labelIndex, t.Src)
			break
		}
	}
	record("no-disallowed-tokens", disallowedErr)

	hasEmoji := false
	for _, t := range tokens {
		if t.Kind == TokenEmoji {
			hasEmoji = true
			break
		}
	}

	inputCPs := collectInputCPs(tokens)
	normalizedCPs, afterEmoji := collectNormalizedCPs(tokens)

	record("underscore-rule", validateUnderscoreRule(normalizedCPs, labelIndex))
	record("label-extension-rule", validateLabelExtensionRule(normalizedCPs, labelIndex))

	fastPath := isASCIIFastPathEligible(normalizedCPs, hasEmoji)

	var group *ScriptGroup
	if fastPath {
		skip("fenced-rule")
		skip("script-group")
		skip("restricted-singleton-rule")
		skip("combining-mark-rule")
		skip("nsm-rule")
		skip("whole-script-confusable")
	} else {
		fenced := tables.Fenced()
		record("fenced-rule", validateFencedRule(fenced, normalizedCPs, labelIndex))

		nonEmojiCPs := collectNonEmojiCPs(tokens)
		var groupErr *Error
		if len(nonEmojiCPs) > 0 {
			group, groupErr = resolveScriptGroup(tables.ScriptGroups(), nonEmojiCPs, labelIndex)
		}
		record("script-group", groupErr)

		var restrictedErr *Error
		if group != nil && group.Restricted && countBaseCodepoints(tables, group, normalizedCPs) < 2 {
			restrictedErr = newError(ErrKindRestrictedSingleton, labelIndex)
		}
		record("restricted-singleton-rule", restrictedErr)

		var cmErr *Error
		if len(normalizedCPs) > 0 && isCombiningMark(tables, group, normalizedCPs[0]) {
			cmErr = newError(ErrKindLeadingCombiningMark, labelIndex)
		}
		for i := 1; cmErr == nil && i < len(normalizedCPs); i++ {
			cp := normalizedCPs[i]
			if !isCombiningMark(tables, group, cp) {
				continue
			}
			switch {
			case afterEmoji[i]:
				cmErr = newError(ErrKindCombiningMarkAfterEmoji, labelIndex)
			case fenced.Has(normalizedCPs[i-1]):
				cmErr = newError(ErrKindCombiningMarkAfterFenced, labelIndex)
			case group != nil && !group.CM.Has(cp):
				cmErr = newErrorCP(ErrKindDisallowedCombiningMark, labelIndex, cp)
			}
		}
		record("combining-mark-rule", cmErr)

		nsmSet, nsmMax := tables.NSM()
		record("nsm-rule", validateNSMRule(nsmSet, nsmMax, group, normalizedCPs, labelIndex))

		var confusableErr *Error
		if isWholeScriptConfusable(tables.ConfusableSets(), normalizedCPs) {
			confusableErr = newError(ErrKindWholeScriptConfusable, labelIndex)
		}
		record("whole-script-confusable", confusableErr)
	}

	if !d.OK() {
		return d
	}

	kind := LabelOther
	switch {
	case hasEmoji:
		kind = LabelEmoji
	case fastPath:
		kind = LabelASCII
	case group != nil && group.Name == "Greek":
		kind = LabelGreek
	}
	d.Label = &Label{
		Tokens:        tokens,
		Kind:          kind,
		ScriptGroup:   group,
		InputCPs:      inputCPs,
		NormalizedCPs: normalizedCPs,
		Oversized:     isOversizedLabel(normalizedCPs),
	}
	return d
}
