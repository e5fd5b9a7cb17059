package ensip15

// Label Splitter (spec.md §4.3): splits the token stream on Stop
// tokens into per-label token slices, rejecting empty labels.
//
// Grounded on the teacher's formClusters-style single linear pass over
// a flat token slice (boxesandglue-textshape/ot/shaper.go), adapted
// from grapheme-cluster boundaries to label boundaries.

// splitLabels groups tokens into labels on Stop boundaries. A label is
// empty if it has no tokens left after removing Ignored tokens,
// including the label before a leading stop, between two consecutive
// stops, and after a trailing stop (spec.md §4.3: "an empty label
// (leading stop, trailing stop, two consecutive stops) is rejected as
// EmptyLabel").
func splitLabels(tokens []Token) ([][]Token, error) {
	var labels [][]Token
	var current []Token

	flush := func() error {
		if !labelHasContent(current) {
			return newError(ErrKindEmptyLabel, len(labels)+1)
		}
		labels = append(labels, current)
		current = nil
		return nil
	}

	for _, tok := range tokens {
		if tok.Kind == TokenStop {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, tok)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return labels, nil
}

// splitLabelsRaw groups tokens into labels on Stop boundaries like
// splitLabels, but never rejects an empty label — used by Diagnose,
// which wants to report every label's full trail (including "empty")
// rather than stop at the first one.
func splitLabelsRaw(tokens []Token) [][]Token {
	var labels [][]Token
	var current []Token
	for _, tok := range tokens {
		if tok.Kind == TokenStop {
			labels = append(labels, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	labels = append(labels, current)
	return labels
}

// labelHasContent reports whether tokens contains anything besides
// Ignored tokens.
func labelHasContent(tokens []Token) bool {
	for _, t := range tokens {
		if t.Kind != TokenIgnored {
			return true
		}
	}
	return false
}
