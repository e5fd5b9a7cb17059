package ensip15

// ValidateTables eagerly checks a StaticTables implementation's internal
// consistency (SPEC_FULL.md "Supplemented features": a Tables validation
// pass surfacing BadStaticData up front, in one pass a caller opts into,
// rather than only failing lazily mid-normalize). NewEngine does not call
// this itself — spec.md
// §6 frames Engine construction as infallible, and DefaultTables is
// covered by TestValidateDefaultTables instead — but any caller
// supplying its own StaticTables should run it once, right after
// building the table, the way golang-text/internal/export/idna's
// Option-validation runs once per Profile rather than per ToASCII call.
//
// It walks every Unicode scalar value and checks:
//   - Classify returns one of the five defined classes, and a
//     ClassMapped result always carries at least one replacement
//     codepoint (spec.md §3: "every codepoint belongs to exactly one of
//     five disjoint classes").
//   - every member of the global NSM set and of each script group's CM
//     set has a nonzero canonical combining class — i.e. is actually a
//     mark (spec.md §3: "nsm_set and every group's cm are subsets of
//     Unicode's non-spacing marks").
//   - every NSM-max value (global and per-group) is non-negative.
//
// Returns the first inconsistency found as an *Error with Kind
// BadStaticData, or nil if tables passes every check.
func ValidateTables(tables StaticTables) *Error {
	nsmSet, nsmMax := tables.NSM()
	if nsmMax < 0 {
		return newError(ErrKindBadStaticData, 0)
	}

	groups := tables.ScriptGroups()
	for _, g := range groups {
		if g.NSMMax < 0 {
			return newError(ErrKindBadStaticData, 0)
		}
	}

	nfc := tables.NFC()
	if nfc == nil {
		return newError(ErrKindBadStaticData, 0)
	}

	for cp := Codepoint(0); cp <= maxCodepoint; cp++ {
		if cp >= 0xD800 && cp <= 0xDFFF {
			continue
		}

		switch class, mapped := tables.Classify(cp); class {
		case ClassValid, ClassIgnored, ClassDisallowed, ClassStop:
		case ClassMapped:
			if len(mapped) == 0 {
				return newErrorCP(ErrKindBadStaticData, 0, cp)
			}
		default:
			return newErrorCP(ErrKindBadStaticData, 0, cp)
		}

		if nsmSet.Has(cp) && nfc.CombiningClass(cp) == 0 {
			return newErrorCP(ErrKindBadStaticData, 0, cp)
		}
		for _, g := range groups {
			if g.CM.Has(cp) && nfc.CombiningClass(cp) == 0 {
				return newErrorCP(ErrKindBadStaticData, 0, cp)
			}
		}
	}

	return nil
}
