package ensip15

import "fmt"

// ErrorKind enumerates the flat error taxonomy of spec.md §7. It carries
// no nesting: every validator check fails with exactly one of these.
type ErrorKind uint8

const (
	ErrKindNone ErrorKind = iota
	ErrKindInvalidUtf8
	ErrKindEmptyLabel
	ErrKindDisallowedCharacter
	ErrKindDisallowedSequence
	ErrKindInvalidLabelExtension
	ErrKindUnderscoreInMiddle
	ErrKindLeadingCombiningMark
	ErrKindCombiningMarkAfterEmoji
	ErrKindCombiningMarkAfterFenced
	ErrKindDisallowedCombiningMark
	ErrKindLeadingNSM
	ErrKindDuplicateNSM
	ErrKindExcessiveNSM
	ErrKindInvalidNSMBase
	ErrKindFencedLeading
	ErrKindFencedTrailing
	ErrKindFencedAdjacent
	ErrKindWholeScriptConfusable
	ErrKindRestrictedSingleton
	ErrKindBadStaticData
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindInvalidUtf8:
		return "InvalidUtf8"
	case ErrKindEmptyLabel:
		return "EmptyLabel"
	case ErrKindDisallowedCharacter:
		return "DisallowedCharacter"
	case ErrKindDisallowedSequence:
		return "DisallowedSequence"
	case ErrKindInvalidLabelExtension:
		return "InvalidLabelExtension"
	case ErrKindUnderscoreInMiddle:
		return "UnderscoreInMiddle"
	case ErrKindLeadingCombiningMark:
		return "LeadingCombiningMark"
	case ErrKindCombiningMarkAfterEmoji:
		return "CombiningMarkAfterEmoji"
	case ErrKindCombiningMarkAfterFenced:
		return "CombiningMarkAfterFenced"
	case ErrKindDisallowedCombiningMark:
		return "DisallowedCombiningMark"
	case ErrKindLeadingNSM:
		return "LeadingNSM"
	case ErrKindDuplicateNSM:
		return "DuplicateNSM"
	case ErrKindExcessiveNSM:
		return "ExcessiveNSM"
	case ErrKindInvalidNSMBase:
		return "InvalidNSMBase"
	case ErrKindFencedLeading:
		return "FencedLeading"
	case ErrKindFencedTrailing:
		return "FencedTrailing"
	case ErrKindFencedAdjacent:
		return "FencedAdjacent"
	case ErrKindWholeScriptConfusable:
		return "WholeScriptConfusable"
	case ErrKindRestrictedSingleton:
		return "RestrictedSingleton"
	case ErrKindBadStaticData:
		return "BadStaticData"
	default:
		return "None"
	}
}

// Error is the single error type the core returns. It is a value, never
// a panic (spec.md §7, "Errors are values, not exceptions").
type Error struct {
	Kind Kind

	// Codepoint is set, with HasCodepoint true, for DisallowedCharacter
	// raised by a disallowed token, DisallowedCombiningMark, DuplicateNSM,
	// and the per-codepoint BadStaticData failures of ValidateTables.
	// DisallowedCharacter raised by script-group resolution carries none.
	Codepoint Codepoint
	HasCodepoint bool

	// LabelIndex is the one-based index of the label that failed, or 0
	// if the failure occurred before any label was identified (e.g.
	// InvalidUtf8).
	LabelIndex int
}

// Kind is an alias of ErrorKind, kept so the Error.Kind field reads
// naturally; the constants keep their ErrKind prefix (err.Kind ==
// ensip15.ErrKindEmptyLabel).
type Kind = ErrorKind

func newError(kind ErrorKind, labelIndex int) *Error {
	return &Error{Kind: kind, LabelIndex: labelIndex}
}

func newErrorCP(kind ErrorKind, labelIndex int, cp Codepoint) *Error {
	return &Error{Kind: kind, LabelIndex: labelIndex, Codepoint: cp, HasCodepoint: true}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.HasCodepoint {
		if e.LabelIndex > 0 {
			return fmt.Sprintf("ensip15: label %d: %s (U+%04X)", e.LabelIndex, e.Kind, e.Codepoint)
		}
		return fmt.Sprintf("ensip15: %s (U+%04X)", e.Kind, e.Codepoint)
	}
	if e.LabelIndex > 0 {
		return fmt.Sprintf("ensip15: label %d: %s", e.LabelIndex, e.Kind)
	}
	return fmt.Sprintf("ensip15: %s", e.Kind)
}

// Is implements errors.Is support against the sentinel Err* values below,
// comparing only on Kind — callers that need the offending codepoint or
// label index type-assert to *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e != nil && t != nil && e.Kind == t.Kind
}

// Sentinel errors for errors.Is-style comparisons (SPEC_FULL.md
// supplemented features: "Error.Is / errors.Is compatibility"), grounded on
// blockberries-punnet-sdk/types/errors.go's flat package-level Err* vars.
var (
	ErrInvalidUtf8            = &Error{Kind: ErrKindInvalidUtf8}
	ErrEmptyLabel             = &Error{Kind: ErrKindEmptyLabel}
	ErrDisallowedCharacter    = &Error{Kind: ErrKindDisallowedCharacter}
	ErrDisallowedSequence     = &Error{Kind: ErrKindDisallowedSequence}
	ErrInvalidLabelExtension  = &Error{Kind: ErrKindInvalidLabelExtension}
	ErrUnderscoreInMiddle     = &Error{Kind: ErrKindUnderscoreInMiddle}
	ErrLeadingCombiningMark   = &Error{Kind: ErrKindLeadingCombiningMark}
	ErrCombiningMarkAfterEmoji  = &Error{Kind: ErrKindCombiningMarkAfterEmoji}
	ErrCombiningMarkAfterFenced = &Error{Kind: ErrKindCombiningMarkAfterFenced}
	ErrDisallowedCombiningMark  = &Error{Kind: ErrKindDisallowedCombiningMark}
	ErrLeadingNSM             = &Error{Kind: ErrKindLeadingNSM}
	ErrDuplicateNSM           = &Error{Kind: ErrKindDuplicateNSM}
	ErrExcessiveNSM           = &Error{Kind: ErrKindExcessiveNSM}
	ErrInvalidNSMBase         = &Error{Kind: ErrKindInvalidNSMBase}
	ErrFencedLeading          = &Error{Kind: ErrKindFencedLeading}
	ErrFencedTrailing         = &Error{Kind: ErrKindFencedTrailing}
	ErrFencedAdjacent         = &Error{Kind: ErrKindFencedAdjacent}
	ErrWholeScriptConfusable  = &Error{Kind: ErrKindWholeScriptConfusable}
	ErrRestrictedSingleton    = &Error{Kind: ErrKindRestrictedSingleton}
	ErrBadStaticData          = &Error{Kind: ErrKindBadStaticData}
)
