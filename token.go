package ensip15

// TokenKind tags a Token's variant (spec.md §3, "Token"). Go has no sum
// types; this follows the same "classify uint8 + switch" shape
// codepoint.go and scriptgroup.go use for data classification, applied
// here to the tokenizer's output instead of its input.
type TokenKind uint8

const (
	TokenUnknown TokenKind = iota
	TokenValid
	TokenMapped
	TokenIgnored
	TokenDisallowed
	TokenStop
	TokenNFC
	TokenEmoji
)

func (k TokenKind) String() string {
	switch k {
	case TokenValid:
		return "Valid"
	case TokenMapped:
		return "Mapped"
	case TokenIgnored:
		return "Ignored"
	case TokenDisallowed:
		return "Disallowed"
	case TokenStop:
		return "Stop"
	case TokenNFC:
		return "Nfc"
	case TokenEmoji:
		return "Emoji"
	default:
		return "Unknown"
	}
}

// Token is one tagged record produced by the tokenizer. Only the fields
// relevant to Kind are meaningful; the zero value of the rest is
// harmless. See spec.md §3 for the per-variant field list this mirrors:
//
//	Valid{cps}             -> CPs
//	Mapped{src, cps}       -> Src, CPs
//	Ignored{src}           -> Src
//	Disallowed{src}        -> Src
//	Stop{src}              -> Src (always '.')
//	Nfc{input_cps, output_cps}    -> InputCPs, CPs
//	Emoji{input_cps, normalized_cps, no_fe0f_cps} -> InputCPs, CPs, NoFE0FCPs
type Token struct {
	Kind TokenKind

	// Src is the single input codepoint for Mapped, Ignored, Disallowed
	// and Stop tokens.
	Src Codepoint

	// CPs is the token's output codepoint sequence: the run itself for
	// Valid, the mapping's replacement for Mapped, the recomposed run
	// for Nfc, the normalized (FE0F-bearing) form for Emoji.
	CPs []Codepoint

	// InputCPs is the codepoints actually read from the input for this
	// token. Set for every kind; used to reconstruct byte coverage and,
	// for Nfc/Emoji, to distinguish "what was typed" from "what it
	// means".
	InputCPs []Codepoint

	// NoFE0FCPs is the Emoji token's canonical trie key (normalized
	// form with every FE0F stripped).
	NoFE0FCPs []Codepoint

	// ByteLen is the number of UTF-8 bytes this token consumed from the
	// original input, satisfying the round-trip invariant of spec.md §8
	// ("tokenize(x) preserves input byte coverage").
	ByteLen int
}

// outputCPs returns the codepoints this token contributes to a label's
// reconstructed codepoint sequence (spec.md §4.3: "concatenation of
// valid/mapped.cps/nfc.output_cps/emoji.normalized_cps"). Ignored, Stop
// and Disallowed tokens contribute nothing.
func (t Token) outputCPs() []Codepoint {
	switch t.Kind {
	case TokenValid, TokenMapped, TokenNFC, TokenEmoji:
		return t.CPs
	default:
		return nil
	}
}
