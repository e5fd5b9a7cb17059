package ensip15

// Unicode codepoint classification.
//
// ENSIP-15 equivalent: https://docs.ens.domains/ensip/15 §"Validation" —
// the five-way character-class partition (valid / mapped / ignored /
// disallowed / stop) that every codepoint in U+0000..U+10FFFF belongs to
// exactly one of.

// Codepoint is a Unicode scalar value, U+0000..U+10FFFF excluding the
// surrogate range U+D800..U+DFFF.
type Codepoint int32

// Stop is the single label-separator codepoint, U+002E FULL STOP.
const Stop Codepoint = 0x002E

// Underscore is U+005F LOW LINE, valid but constrained to a leading run.
const Underscore Codepoint = 0x005F

// Hyphen is U+002D HYPHEN-MINUS, used by the label-extension and
// fenced-trailing-hyphen rules.
const Hyphen Codepoint = 0x002D

// maxCodepoint is the highest assignable Unicode scalar value.
const maxCodepoint Codepoint = 0x10FFFF

// IsValidScalarValue reports whether cp is a Unicode scalar value: in
// range and not a surrogate half.
func (cp Codepoint) IsValidScalarValue() bool {
	if cp < 0 || cp > maxCodepoint {
		return false
	}
	return !(cp >= 0xD800 && cp <= 0xDFFF)
}

// Class is the character class a codepoint is classified into. The
// classes partition the codepoint space; every codepoint belongs to
// exactly one (spec data model, "Character Class").
type Class uint8

const (
	// ClassUnknown is never returned by a conforming StaticTables; it
	// exists so a zero Class value is visibly invalid.
	ClassUnknown Class = iota
	ClassValid
	ClassMapped
	ClassIgnored
	ClassDisallowed
	ClassStop
)

// String renders the class name for diagnostics.
func (c Class) String() string {
	switch c {
	case ClassValid:
		return "valid"
	case ClassMapped:
		return "mapped"
	case ClassIgnored:
		return "ignored"
	case ClassDisallowed:
		return "disallowed"
	case ClassStop:
		return "stop"
	default:
		return "unknown"
	}
}

// isASCIILabelCodepoint reports whether cp is one of the codepoints
// permitted by the ASCII fast path: [0-9A-Za-z_-]. validateLabel calls
// it on normalized codepoints, where the tokenizer's mapping step has
// already folded ASCII uppercase to lowercase.
func isASCIILabelCodepoint(cp Codepoint) bool {
	switch {
	case cp >= '0' && cp <= '9':
		return true
	case cp >= 'a' && cp <= 'z':
		return true
	case cp >= 'A' && cp <= 'Z':
		return true
	case cp == Underscore, cp == Hyphen:
		return true
	default:
		return false
	}
}
