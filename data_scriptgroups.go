package ensip15

// Script group data (spec.md §4.4 step 8, §3 "Script Group"): four
// groups — Latin, Greek, Hebrew, Arabic — covering the embedded
// dataset's valid-codepoint coverage, in the tie-break order
// resolveScriptGroup (scriptgroup.go) checks them.
//
// Grounded on the teacher's ot/unicode_script.go script-tag table shape
// (an ordered list of named groups, each a codepoint-membership
// predicate), repurposed here from OpenType shaping-engine selection to
// ENSIP-15 script-group resolution.

// buildScriptGroups returns the embedded dataset's script groups in
// their tie-break order.
func buildScriptGroups() []*ScriptGroup {
	latinCM := newMapSet(0x0300, 0x0301, 0x0303, 0x0308)
	greekCM := newMapSet(0x0301)
	hebrewCM := unionSet{
		rangeSet{{0x0591, 0x05BD + 1}},
		newMapSet(0x05BF, 0x05C1, 0x05C2),
	}
	arabicCM := rangeSet{{0x064B, 0x0653}}

	return []*ScriptGroup{
		{
			Name:    "Latin",
			Primary: rangeSet{{0x0061, 0x007B}, {0x00C0, 0x00D7}, {0x00D8, 0x00F7}, {0x00F8, 0x0100}},
			// Secondary carries U+03BE GREEK SMALL LETTER XI only: a
			// documented ENSIP-15 carve-out letting a lone Greek xi sit
			// inside an otherwise-Latin label (beautify renders it Ξ to
			// disambiguate), without opening the door to any other
			// Latin/Greek mixture.
			Secondary: newMapSet(greekSmallXi),
			CM:        latinCM,
		},
		{
			Name: "Greek",
			Primary: unionSet{
				rangeSet{{0x03B1, 0x03CA}},
				newMapSet(0x03AC, 0x03AD, 0x03AF, 0x03CC, 0x03CD), // precomposed tonos vowels
			},
			Secondary: newMapSet(),
			CM:        greekCM,
		},
		{
			Name:      "Hebrew",
			Primary:   rangeSet{{0x05D0, 0x05EA + 1}},
			Secondary: newMapSet(),
			CM:        hebrewCM,
			CheckNSM:  true,
			NSMMax:    hebrewNSMMax,
		},
		{
			Name:      "Arabic",
			Primary:   rangeSet{{0x0621, 0x063B}, {0x0641, 0x064A + 1}},
			Secondary: newMapSet(),
			CM:        arabicCM,
			CheckNSM:  true,
			NSMMax:    arabicNSMMax,
		},
	}
}
