package ensip15

// Output Assembler (spec.md §4.5): renders the normalized and beautified
// strings from validated labels.
//
// Grounded on golang-text/idna.go's label-join idiom (concatenate each
// label's result with the U+002E separator), extended with the two
// beautification rewrites spec.md §4.5 documents: FE0F restoration
// inside emoji tokens, and non-Greek ξ→Ξ.

const (
	greekSmallXi   Codepoint = 0x03BE
	greekCapitalXi Codepoint = 0x039E
)

// assembleNormalized concatenates each label's canonical codepoints with
// U+002E separators and UTF-8-encodes the result.
func assembleNormalized(labels []*Label) string {
	var b []rune
	for i, label := range labels {
		if i > 0 {
			b = append(b, rune(Stop))
		}
		for _, cp := range label.NormalizedCPs {
			b = append(b, rune(cp))
		}
	}
	return string(b)
}

// assembleBeautified is like assembleNormalized but restores FE0F inside
// every emoji token (even where the canonical no-FE0F form dropped it)
// and, for any label whose script group is not Greek, rewrites every
// U+03BE to U+039E (spec.md §4.5: "these are the only two documented
// beautification rewrites").
func assembleBeautified(labels []*Label) string {
	var b []rune
	for i, label := range labels {
		if i > 0 {
			b = append(b, rune(Stop))
		}
		isGreek := label.ScriptGroup != nil && label.ScriptGroup.Name == "Greek"
		for _, t := range label.Tokens {
			switch t.Kind {
			case TokenEmoji:
				for _, cp := range t.CPs { // entry.Normalized already carries required FE0F
					b = append(b, rune(cp))
				}
			case TokenValid, TokenMapped, TokenNFC:
				for _, cp := range t.outputCPs() {
					if !isGreek && cp == greekSmallXi {
						cp = greekCapitalXi
					}
					b = append(b, rune(cp))
				}
			}
		}
	}
	return string(b)
}
