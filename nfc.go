package ensip15

// NFC engine: canonical decomposition, canonical ordering, canonical
// composition (spec.md §4.1). This is not golang.org/x/text/unicode/norm
// run against Unicode's own exclusion set — it is parameterized entirely
// by the NFCTables the caller supplies (decomposition, combining class,
// composition pairs, and composition-exclusion membership all come from
// StaticTables.NFC()), so a label normalizes consistently with the rest
// of the validation pipeline's notion of "valid codepoint" rather than
// against whatever Unicode version the runtime happens to ship.
// golang.org/x/text/unicode/norm is used only as a cross-check oracle in
// nfc_test.go, not as the runtime engine; see DESIGN.md.
//
// Grounded on boxesandglue-textshape/ot/normalize.go's three-phase
// decompose/reorder/compose shape, adapted from glyph-run normalization
// (font-glyph-gated, HarfBuzz-specific) to plain codepoint-slice
// normalization against caller-supplied tables.

// NFCEngine normalizes codepoint sequences to NFC. The zero value is not
// usable; construct with NewNFCEngine.
type NFCEngine struct {
	tables NFCTables
}

// NewNFCEngine returns an engine backed by tables.
func NewNFCEngine(tables NFCTables) *NFCEngine {
	return &NFCEngine{tables: tables}
}

// Normalize returns the NFC form of cps.
func (e *NFCEngine) Normalize(cps []Codepoint) []Codepoint {
	d := e.decompose(cps)
	e.reorder(d)
	return e.compose(d)
}

// IsNFC reports whether cps is already in NFC form, without the caller
// needing to compare the normalized copy itself. Used by the
// tokenizer's NFC-coalescing pass (spec.md §4.2 step 4) to decide
// whether a run of Valid/Mapped tokens needs to collapse into a single
// Nfc token at all.
func (e *NFCEngine) IsNFC(cps []Codepoint) bool {
	normalized := e.Normalize(cps)
	if len(normalized) != len(cps) {
		return false
	}
	for i, cp := range cps {
		if normalized[i] != cp {
			return false
		}
	}
	return true
}

// mark is a decomposed codepoint tagged with its combining class, the
// unit the reorder and compose phases operate on.
type mark struct {
	cp     Codepoint
	cclass int
}

// decompose fully (recursively) decomposes every codepoint of cps,
// preferring the Hangul arithmetic decomposition from hangul.go and
// falling back to the table (spec.md §4.1 step 1, "decompose
// recursively until no further decomposition applies").
func (e *NFCEngine) decompose(cps []Codepoint) []mark {
	out := make([]mark, 0, len(cps)*2)
	var walk func(cp Codepoint)
	walk = func(cp Codepoint) {
		if a, b, ok := hangulDecompose(cp); ok {
			walk(a)
			walk(b)
			return
		}
		if a, b, ok := e.tables.Decompose(cp); ok {
			walk(a)
			walk(b)
			return
		}
		out = append(out, mark{cp: cp, cclass: e.tables.CombiningClass(cp)})
	}
	for _, cp := range cps {
		walk(cp)
	}
	return out
}

// reorder applies the canonical ordering algorithm in place: within each
// maximal run of non-zero combining class codepoints, stable-sort by
// combining class (spec.md §4.1 step 2). A combining-class-0 codepoint
// (a "starter") ends the run it belongs to and starts a fresh one.
func (e *NFCEngine) reorder(d []mark) {
	i := 0
	for i < len(d) {
		if d[i].cclass == 0 {
			i++
			continue
		}
		j := i
		for j < len(d) && d[j].cclass != 0 {
			j++
		}
		insertionSortByClass(d[i:j])
		i = j
	}
}

// insertionSortByClass is a stable sort, matching UAX #15's requirement
// that codepoints of equal combining class never swap relative order.
func insertionSortByClass(run []mark) {
	for i := 1; i < len(run); i++ {
		v := run[i]
		j := i - 1
		for j >= 0 && run[j].cclass > v.cclass {
			run[j+1] = run[j]
			j--
		}
		run[j+1] = v
	}
}

// compose walks the reordered sequence left to right, attempting to
// compose each starter with each following mark up to the next starter,
// per the Unicode canonical composition algorithm (spec.md §4.1 step
// 3). A candidate mark is "blocked" — ineligible to compose with the
// current starter, now or ever — once a mark of combining class greater
// than or equal to its own has been passed over between the starter and
// it. A composition whose result is named in the static data's
// composition-exclusion set is never produced.
func (e *NFCEngine) compose(d []mark) []Codepoint {
	out := make([]mark, len(d))
	copy(out, d)

	starter := 0
	for starter < len(out) {
		blockedClass := -1
		i := starter + 1
		for i < len(out) {
			isNextStarter := out[i].cclass == 0
			if !isNextStarter && blockedClass != -1 && out[i].cclass <= blockedClass {
				i++
				continue
			}
			if composed, ok := composeOne(e.tables, out[starter].cp, out[i].cp); ok {
				out[starter] = mark{cp: composed, cclass: 0}
				out = append(out[:i], out[i+1:]...)
				continue
			}
			// Composition failed: a following starter ends this
			// starter's composition chain entirely (a new one begins at
			// i); a following mark merely blocks same-or-lower classes
			// from composing with this starter from here on (spec.md
			// §4.1 step 3).
			if isNextStarter {
				break
			}
			blockedClass = out[i].cclass
			i++
		}
		starter++
	}

	result := make([]Codepoint, len(out))
	for i, m := range out {
		result[i] = m.cp
	}
	return result
}

// composeOne tries the Hangul arithmetic composition first (it is not
// representable in a pairwise table), then the static data's
// composition table, honoring the exclusion set in both cases.
func composeOne(tables NFCTables, a, b Codepoint) (Codepoint, bool) {
	if composed, ok := hangulCompose(a, b); ok {
		if !tables.Excluded(composed) {
			return composed, true
		}
		return 0, false
	}
	if composed, ok := tables.Compose(a, b); ok && !tables.Excluded(composed) {
		return composed, true
	}
	return 0, false
}
