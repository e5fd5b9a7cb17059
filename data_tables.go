package ensip15

// DefaultTables is the embedded, hand-authored StaticTables
// implementation (spec.md §6). It covers ASCII, Latin-1 Supplement, a
// representative Greek/Hebrew/Arabic letter block, a handful of emoji
// sequences, common NFC decompositions, and two script groups' worth of
// NSM/confusable/fenced data — enough to exercise every validator rule
// and every spec.md §8 scenario, not a full Unicode Character Database
// port (spec.md §1 explicitly scopes that loading concern out of this
// core).
//
// Grounded on golang-text/internal/export/idna/idna.go's separation of a
// static-data trie from the algorithm that walks it: DefaultTables plays
// the same role here, as one self-contained value the Engine is
// constructed with.
type DefaultTables struct {
	emoji        *EmojiTrie
	scriptGroups []*ScriptGroup
	nsmSet       CodepointSet
	nsmMax       int
	confusables  []ConfusableSet
	fenced       CodepointSet
}

// NewDefaultTables builds the embedded default StaticTables instance.
// The result is immutable and safe for concurrent use.
func NewDefaultTables() *DefaultTables {
	return &DefaultTables{
		emoji:        buildEmojiTrie(),
		scriptGroups: buildScriptGroups(),
		nsmSet:       defaultNSMSet,
		nsmMax:       defaultGlobalNSMMax,
		confusables:  defaultConfusableSets,
		fenced:       defaultFenced,
	}
}

// MatchEmoji implements StaticTables.MatchEmoji for DefaultTables.
func (t *DefaultTables) MatchEmoji(cps []Codepoint) (EmojiEntry, int, bool) {
	return t.emoji.Match(cps)
}

// NFC implements StaticTables.NFC for DefaultTables. DefaultTables
// itself satisfies NFCTables (see data_nfc.go), so it returns itself.
func (t *DefaultTables) NFC() NFCTables {
	return t
}

// ScriptGroups implements StaticTables.ScriptGroups for DefaultTables.
func (t *DefaultTables) ScriptGroups() []*ScriptGroup {
	return t.scriptGroups
}

// NSM implements StaticTables.NSM for DefaultTables.
func (t *DefaultTables) NSM() (CodepointSet, int) {
	return t.nsmSet, t.nsmMax
}

// ConfusableSets implements StaticTables.ConfusableSets for
// DefaultTables.
func (t *DefaultTables) ConfusableSets() []ConfusableSet {
	return t.confusables
}

// Fenced implements StaticTables.Fenced for DefaultTables.
func (t *DefaultTables) Fenced() CodepointSet {
	return t.fenced
}
