package ensip15

// Top-level API: Normalize, Beautify, Tokenize, Process (spec.md §6).
//
// Grounded on boxesandglue-textshape/ot/shaper.go's Shaper: a small
// struct holding the immutable resources a call needs (there: parsed
// font tables; here: StaticTables and an NFCEngine built on top of
// them), with methods that drive a fixed pipeline over caller input.
// The teacher's Buffer-based glyph pipeline (decode → shape → position)
// becomes, here, the byte → token → label → validated-label →
// assembled-string pipeline spec.md §2 describes.

// Engine is the entry point: construct one per StaticTables instance
// and reuse it across calls (spec.md §5: "static tables are read-only
// after initialization and freely shared across threads... independent
// calls may run concurrently on the same static tables without
// synchronization").
type Engine struct {
	tables StaticTables
	nfc    *NFCEngine
}

// NewEngine builds an Engine from a StaticTables implementation.
// Construction itself cannot fail here since StaticTables is
// caller-supplied and already built, and no Engine call returns
// BadStaticData: a malformed StaticTables is only reported by
// ValidateTables, which NewEngine does not run.
func NewEngine(tables StaticTables) *Engine {
	return &Engine{tables: tables, nfc: NewNFCEngine(tables.NFC())}
}

// LabelKind classifies a validated label (spec.md §3, "Label.kind").
type LabelKind uint8

const (
	LabelUnknown LabelKind = iota
	LabelASCII
	LabelEmoji
	LabelGreek
	LabelOther
)

func (k LabelKind) String() string {
	switch k {
	case LabelASCII:
		return "ascii"
	case LabelEmoji:
		return "emoji"
	case LabelGreek:
		return "greek"
	case LabelOther:
		return "other"
	default:
		return "unknown"
	}
}

// Label is one validated, dot-separated component of the name (spec.md
// §3, "Label").
type Label struct {
	Tokens        []Token
	Kind          LabelKind
	ScriptGroup   *ScriptGroup // nil for LabelASCII and emoji-only labels
	InputCPs      []Codepoint
	NormalizedCPs []Codepoint

	// Oversized is an advisory, non-rejecting flag: true when this
	// label's normalized form would not fit DNS wire encoding's 63-octet
	// label limit. DNS wire encoding itself is out of scope (spec.md
	// §1), so this never blocks Normalize/Beautify/Process — it's
	// metadata a caller doing registration-adjacent work can act on.
	Oversized bool
}

// Processed is the result of Process: the full structural breakdown of
// a name without materializing either output string (spec.md §4.5,
// "the process API returns the structured label metadata... without
// materializing either string").
type Processed struct {
	Labels []*Label
}

// Tokenize exposes the raw token stream for tooling (spec.md §6,
// "tokenize(input: bytes) -> seq<Token>"). It applies NFC coalescing,
// matching what Normalize/Beautify/Process see internally.
func (e *Engine) Tokenize(input []byte) ([]Token, error) {
	return tokenize(e.tables, e.nfc, input, true)
}

// Process validates every label of input and returns its structured
// metadata (spec.md §6, "process(input: bytes) -> Processed").
func (e *Engine) Process(input []byte) (*Processed, error) {
	tokens, err := tokenize(e.tables, e.nfc, input, true)
	if err != nil {
		return nil, err
	}
	tokenLabels, err := splitLabels(tokens)
	if err != nil {
		return nil, err
	}

	labels := make([]*Label, len(tokenLabels))
	for i, labelTokens := range tokenLabels {
		label, verr := validateLabel(e.tables, labelTokens, i+1)
		if verr != nil {
			return nil, verr
		}
		labels[i] = label
	}
	return &Processed{Labels: labels}, nil
}

// Normalize returns the canonical UTF-8 form of input, or a typed error
// (spec.md §6, "normalize(input: bytes) -> bytes").
func (e *Engine) Normalize(input []byte) (string, error) {
	processed, err := e.Process(input)
	if err != nil {
		return "", err
	}
	return assembleNormalized(processed.Labels), nil
}

// Beautify is like Normalize but applies the §4.5 beautification
// rewrites (FE0F restoration, non-Greek ξ→Ξ).
func (e *Engine) Beautify(input []byte) (string, error) {
	processed, err := e.Process(input)
	if err != nil {
		return "", err
	}
	return assembleBeautified(processed.Labels), nil
}

// Diagnose is Process's non-aborting sibling (SPEC_FULL.md "Supplemented
// features"): it runs every check of the validator cascade against every
// label and reports each check's own pass/fail, instead of stopping at
// the first label (or the first check within a label) that fails. It
// never changes Normalize/Beautify/Process semantics — it's read-only
// tooling support for callers that want to show a user everything wrong
// with a name, not just the first thing.
//
// Only a structural tokenize failure (e.g. invalid UTF-8, which means
// there are no labels to speak of yet) is returned as an error; anything
// that would normally trip the per-label validator instead shows up as a
// failed CheckResult inside the corresponding LabelDiagnosis.
func (e *Engine) Diagnose(input []byte) ([]*LabelDiagnosis, error) {
	tokens, err := tokenize(e.tables, e.nfc, input, true)
	if err != nil {
		return nil, err
	}

	rawLabels := splitLabelsRaw(tokens)
	diagnoses := make([]*LabelDiagnosis, len(rawLabels))
	for i, labelTokens := range rawLabels {
		diagnoses[i] = diagnoseLabel(e.tables, labelTokens, i+1)
	}
	return diagnoses, nil
}
