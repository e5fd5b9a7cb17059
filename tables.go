package ensip15

// StaticTables is the abstract interface the engine is parameterized by
// (spec.md §6, "Static-data interface consumed by the core"). Loading a
// concrete instance from an on-disk encoding is outside this core's
// scope; DefaultTables (data_tables.go) builds one from embedded Go
// literals.
//
// Implementations must be safe for concurrent read-only use after
// construction (spec.md §5); the engine never mutates a StaticTables.
type StaticTables interface {
	// Classify reports the character class of cp and, for ClassMapped,
	// the codepoints it maps to. The returned slice must be non-empty
	// for ClassMapped and is ignored for every other class.
	Classify(cp Codepoint) (Class, []Codepoint)

	// MatchEmoji attempts the longest FE0F-tolerant match of an emoji
	// sequence starting at cps[0]. It returns the matched entry, the
	// number of elements of cps the match consumed (the actual input
	// length, including any interspersed FE0F), and whether a match was
	// found at all.
	MatchEmoji(cps []Codepoint) (entry EmojiEntry, inputLen int, ok bool)

	// NFC returns the NFC tables used by the NFC engine.
	NFC() NFCTables

	// ScriptGroups returns the ordered list of script groups. Order is
	// significant: it is the tie-break order spec.md §4.4 step 8 calls
	// for when more than one group would otherwise qualify.
	ScriptGroups() []*ScriptGroup

	// NSM returns the global NSM set and the global run-length maximum.
	NSM() (set CodepointSet, max int)

	// ConfusableSets returns the whole-script confusable sets.
	ConfusableSets() []ConfusableSet

	// Fenced returns the fenced codepoint set.
	Fenced() CodepointSet
}

// EmojiEntry is one entry of the emoji trie (spec.md §3, "Emoji Entry").
type EmojiEntry struct {
	// NoFE0F is the canonical key: the matched sequence with every FE0F
	// removed. Used as the trie key and copied into the Emoji token's
	// NoFE0FCPs.
	NoFE0F []Codepoint

	// Normalized is the sequence to emit in beautified output: the
	// no-FE0F form with FE0F reinserted wherever ENSIP-15 requires a
	// presentation selector.
	Normalized []Codepoint

	// Basic reports whether this is a "basic" emoji (no ZWJ, no
	// required modifier) — used by keycap/number-adjacent rules a
	// caller's tooling may apply; the core tokenizer treats all matched
	// entries uniformly.
	Basic bool
}

// NFCTables is the data the NFC engine needs (spec.md §4.1).
type NFCTables interface {
	// Decompose returns the canonical decomposition of cp, or ok=false
	// if cp has none (it is already a "base" codepoint under NFD).
	Decompose(cp Codepoint) (a, b Codepoint, ok bool)

	// CombiningClass returns the Canonical_Combining_Class of cp (0 for
	// starters).
	CombiningClass(cp Codepoint) int

	// Compose returns the primary composition of the pair (a, b), or
	// ok=false if no composition exists.
	Compose(a, b Codepoint) (composed Codepoint, ok bool)

	// Excluded reports whether composed is in the fixed composition
	// exclusion set supplied by the static data (spec.md §4.1: "the
	// exclusion set is exactly the set supplied by the static data").
	Excluded(composed Codepoint) bool
}

// ScriptGroup is spec.md §3's "Script Group" record.
type ScriptGroup struct {
	Name      string
	Primary   CodepointSet
	Secondary CodepointSet
	CM        CodepointSet
	CheckNSM  bool
	// Restricted marks a script reserved for the single-script labels
	// real IDN deployments use it for (e.g. Cherokee): a label resolving
	// to a Restricted group must spell more than one base codepoint, per
	// validateLabel's restricted-singleton rule (ErrKindRestrictedSingleton).
	// None of DefaultTables' four groups set this.
	Restricted bool
	// NSMMax, when non-zero and CheckNSM is set, overrides the global
	// nsm_max for labels assigned to this group (spec.md §4.4 step 10,
	// "Script-specific tightenings"). Zero means "use the global max";
	// without CheckNSM the value is not consulted.
	NSMMax int
}

// Contains reports whether cp is a member of the group: primary,
// secondary, or a combining mark of the group.
func (g *ScriptGroup) Contains(cp Codepoint) bool {
	return g.Primary.Has(cp) || g.Secondary.Has(cp) || g.CM.Has(cp)
}

// ConfusableSet is spec.md §3's "Confusable Set" record.
type ConfusableSet struct {
	Target   string
	Valid    CodepointSet
	Confused CodepointSet
}

// CodepointSet is a read-only set of codepoints. Concrete StaticTables
// implementations build these once; the engine only ever queries Has.
type CodepointSet interface {
	Has(cp Codepoint) bool
}

// mapSet is a CodepointSet backed by a map, the simplest possible
// implementation and the one DefaultTables uses for every table small
// enough that a range-based set would be premature.
type mapSet map[Codepoint]struct{}

func (s mapSet) Has(cp Codepoint) bool {
	_, ok := s[cp]
	return ok
}

func newMapSet(cps ...Codepoint) mapSet {
	s := make(mapSet, len(cps))
	for _, cp := range cps {
		s[cp] = struct{}{}
	}
	return s
}

// rangeSet is a CodepointSet backed by non-overlapping half-open
// [lo, hi) ranges in any order (Has scans them all) — used by
// DefaultTables for the larger
// contiguous blocks (ASCII letters/digits, Latin-1, Greek) where a map
// would waste memory for no benefit.
type rangeSet [][2]Codepoint

func (s rangeSet) Has(cp Codepoint) bool {
	// Ranges are few (single digits to low tens) in the embedded
	// dataset; a linear scan is simpler than a binary search and fast
	// enough (spec.md §5's "<64 codepoints per label" budget applies
	// transitively since this is called at most once per codepoint).
	for _, r := range s {
		if cp >= r[0] && cp < r[1] {
			return true
		}
	}
	return false
}

// unionSet reports membership in any of its constituent sets.
type unionSet []CodepointSet

func (s unionSet) Has(cp Codepoint) bool {
	for _, sub := range s {
		if sub.Has(cp) {
			return true
		}
	}
	return false
}
