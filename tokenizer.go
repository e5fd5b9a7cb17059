package ensip15

import "unicode/utf8"

// Tokenizer (spec.md §4.2): decode UTF-8 strictly, then walk the
// codepoint stream emitting the highest-priority match at each
// position — emoji, stop, valid, mapped, ignored, disallowed — and
// finally collapse any non-NFC Valid/Mapped run into a single Nfc
// token.
//
// Grounded on boxesandglue-textshape/ot/shaper.go's AddString (rune
// decode loop building a Buffer) and normalize.go's decompose/recompose
// staging, generalized from "decode then shape glyphs" to "decode then
// classify codepoints".

// tokenize implements Engine.Tokenize; it is an unexported package-level
// function so api.go and the test suite can call it without going
// through an Engine.
func tokenize(tables StaticTables, nfc *NFCEngine, input []byte, applyNFC bool) ([]Token, error) {
	cps, byteLens, err := decodeUTF8Strict(input)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	i := 0
	for i < len(cps) {
		if entry, inputLen, ok := tables.MatchEmoji(cps[i:]); ok {
			tokens = append(tokens, Token{
				Kind:      TokenEmoji,
				CPs:       entry.Normalized,
				InputCPs:  append([]Codepoint(nil), cps[i:i+inputLen]...),
				NoFE0FCPs: entry.NoFE0F,
				ByteLen:   sumByteLens(byteLens[i : i+inputLen]),
			})
			i += inputLen
			continue
		}

		cp := cps[i]
		if cp == Stop {
			tokens = append(tokens, Token{Kind: TokenStop, Src: cp, InputCPs: cps[i : i+1], ByteLen: byteLens[i]})
			i++
			continue
		}

		class, mapped := tables.Classify(cp)
		switch class {
		case ClassValid:
			tokens = appendValidRun(tokens, cp, byteLens[i])
			i++
		case ClassMapped:
			tokens = append(tokens, Token{
				Kind:     TokenMapped,
				Src:      cp,
				CPs:      mapped,
				InputCPs: cps[i : i+1],
				ByteLen:  byteLens[i],
			})
			i++
		case ClassIgnored:
			tokens = append(tokens, Token{Kind: TokenIgnored, Src: cp, InputCPs: cps[i : i+1], ByteLen: byteLens[i]})
			i++
		default: // ClassDisallowed, ClassStop (unreachable here), ClassUnknown
			tokens = append(tokens, Token{Kind: TokenDisallowed, Src: cp, InputCPs: cps[i : i+1], ByteLen: byteLens[i]})
			i++
		}
	}

	if applyNFC {
		tokens = coalesceNFC(nfc, tokens)
	}
	return tokens, nil
}

// appendValidRun extends a pending Valid token with cp, or starts a new
// one if the previous token is not a Valid run (spec.md §3 invariant:
// "Within a label, two consecutive Valid tokens never occur — they
// merge").
func appendValidRun(tokens []Token, cp Codepoint, byteLen int) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenValid {
		tokens[n-1].CPs = append(tokens[n-1].CPs, cp)
		tokens[n-1].InputCPs = append(tokens[n-1].InputCPs, cp)
		tokens[n-1].ByteLen += byteLen
		return tokens
	}
	return append(tokens, Token{Kind: TokenValid, CPs: []Codepoint{cp}, InputCPs: []Codepoint{cp}, ByteLen: byteLen})
}

// coalesceNFC collapses each maximal contiguous run of Valid/Mapped
// tokens whose concatenated output is not already NFC into a single Nfc
// token (spec.md §4.2: "if apply_nfc is true and any Valid/Mapped-
// produced codepoint run is not already in NFC, collapse that run into
// an Nfc token whose output_cps is its NFC form"). Stop, Ignored,
// Disallowed and Emoji tokens are run boundaries and pass through
// untouched.
func coalesceNFC(nfc *NFCEngine, tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind != TokenValid && tokens[i].Kind != TokenMapped {
			out = append(out, tokens[i])
			i++
			continue
		}
		j := i
		var runCPs, runInput []Codepoint
		runByteLen := 0
		for j < len(tokens) && (tokens[j].Kind == TokenValid || tokens[j].Kind == TokenMapped) {
			runCPs = append(runCPs, tokens[j].outputCPs()...)
			runInput = append(runInput, tokens[j].InputCPs...)
			runByteLen += tokens[j].ByteLen
			j++
		}
		if nfc.IsNFC(runCPs) {
			out = append(out, tokens[i:j]...)
		} else {
			out = append(out, Token{
				Kind:     TokenNFC,
				CPs:      nfc.Normalize(runCPs),
				InputCPs: runInput,
				ByteLen:  runByteLen,
			})
		}
		i = j
	}
	return out
}

// decodeUTF8Strict decodes b into codepoints, failing on any malformed
// sequence (spec.md §4.2: "decode UTF-8 strictly (invalid sequences
// abort with InvalidUtf8)"). byteLens[i] is the number of UTF-8 bytes
// cps[i] occupied in b, preserving the round-trip invariant of spec.md
// §8.
func decodeUTF8Strict(b []byte) (cps []Codepoint, byteLens []int, err error) {
	cps = make([]Codepoint, 0, len(b))
	byteLens = make([]int, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			return nil, nil, ErrInvalidUtf8
		}
		cps = append(cps, Codepoint(r))
		byteLens = append(byteLens, size)
		b = b[size:]
	}
	return cps, byteLens, nil
}

func sumByteLens(lens []int) int {
	total := 0
	for _, l := range lens {
		total += l
	}
	return total
}
