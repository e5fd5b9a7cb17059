package ensip15

// Global NSM set (spec.md §4.4 step 10, §3 "nsm_set"/"nsm_max"): the
// union of every combining mark the embedded dataset recognizes across
// all script groups, plus the global run-length ceiling used for
// script groups that don't request a tighter one.
var defaultNSMSet = unionSet{
	newMapSet(0x0300, 0x0301, 0x0303, 0x0308), // Latin/Greek diacritics
	rangeSet{{0x0591, 0x05BD + 1}},             // Hebrew niqqud
	newMapSet(0x05BF, 0x05C1, 0x05C2),          // Hebrew rafe/shin/sin dots
	rangeSet{{0x064B, 0x0653}},                 // Arabic tashkil
}

const defaultGlobalNSMMax = defaultNSMMax
