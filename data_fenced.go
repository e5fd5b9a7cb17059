package ensip15

// Fenced codepoint data (spec.md §4.4 step 5, §3 "Fenced Codepoint"): the
// hyphen and three commonly-confused punctuation marks ENS treats as
// fenced, a representative subset of the real ENSIP-15 fenced list.
//
// Grounded on the apostrophe/hyphen/middle-dot grouping documented in
// DESIGN.md's Open Question 2 (trailing-hyphen-run exception), applied
// here as the concrete data backing validator_fenced.go.
var defaultFenced = newMapSet(
	Hyphen,  // U+002D HYPHEN-MINUS
	0x2019,  // RIGHT SINGLE QUOTATION MARK (apostrophe)
	0x00B7,  // MIDDLE DOT
	0x2044,  // FRACTION SLASH
)
