package ensip15

// Whole-script confusable data (spec.md §4.4 step 11, §3 "Confusable
// Set"): two representative targets, Latin and Greek, each with a
// one-codepoint valid partition and a one-codepoint confused partition
// drawn from the other's primary block. This is enough to exercise
// isWholeScriptConfusable's predicate (validator_confusable.go) and
// DESIGN.md's Open Question 1 decision; a full port would carry the
// real multi-hundred-entry confusable-set tables this core's embedded
// dataset deliberately omits.
var defaultConfusableSets = []ConfusableSet{
	{
		Target:   "Latin",
		Valid:    newMapSet(0x006F), // 'o'
		Confused: newMapSet(0x03BF), // Greek omicron, visually identical
	},
	{
		Target:   "Greek",
		Valid:    newMapSet(0x03B9), // Greek iota
		Confused: newMapSet(0x0069), // 'i', visually identical
	},
}
