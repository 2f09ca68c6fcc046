package boundary

// Action is the semantic effect a matched pattern has on the scan: whether
// it ends a sentence, only changes dialog state, or is a reserved no-op.
type Action int

const (
	// HardBoundary finalizes the current sentence and starts a new one.
	HardBoundary Action = iota
	// UnpunctuatedDialogHardEnd finalizes the current sentence at a close
	// delimiter that is immediately adjacent to a capitalized sentence
	// starter, without requiring terminating punctuation before it.
	UnpunctuatedDialogHardEnd
	// SoftTransition updates the dialog state (closing a quote that is
	// immediately followed by an attributive clause) without emitting a
	// sentence boundary; the containing sentence continues.
	SoftTransition
	// OpenDialog enters a Dialog*Kind* state; no boundary.
	OpenDialog
	// CloseDialog returns to Narrative; no boundary. This is the fallback
	// for a bare close delimiter that is neither a soft attributive
	// continuation nor a hard, capitalized continuation.
	CloseDialog
	// Continue is reserved for future pattern kinds that observe a match
	// without changing state or emitting a boundary. No entry in the
	// current table uses it.
	Continue
)

// Pattern is one entry in the boundary pattern table: a compiled regular
// expression, the dialog states it is eligible to match in, and the
// semantic action plus successor state to apply on a match.
type Pattern struct {
	// ID is a dense, stable integer identity. Table order is priority
	// order: when two patterns match at the same start offset, the one
	// with the lower ID wins.
	ID int

	// Name is descriptive only, for logging and tests.
	Name string

	// Regex is the pattern source, compiled once at table-build time.
	Regex string

	// ValidIn lists the DialogStates this pattern is live in.
	ValidIn []DialogState

	Action    Action
	Successor DialogState
}

func (p Pattern) validIn(s DialogState) bool {
	for _, v := range p.ValidIn {
		if v == s {
			return true
		}
	}
	return false
}

// sentenceStarterClass is a character class matching an ASCII uppercase letter or
// an opening quote/bracket of any kind - the set of runes that can begin a
// new sentence.
const sentenceStarterClass = `A-Z«"'(\[{\x{2018}\x{201C}]`

// buildTable constructs the full, priority-ordered pattern table, one
// class of entries per block below. It is built once per Detector and shared
// read-only across scans.
func buildTable() []Pattern {
	var table []Pattern
	id := 0
	next := func(name, regex string, states []DialogState, action Action, succ DialogState) {
		table = append(table, Pattern{
			ID: id, Name: name, Regex: regex,
			ValidIn: states, Action: action, Successor: succ,
		})
		id++
	}

	allStates := []DialogState{
		Narrative, DialogDoubleQuote, DialogSingleQuote, DialogSmartDouble,
		DialogSmartSingle, DialogRound, DialogSquare, DialogCurly,
	}

	// HardParagraphSeparator: one or more blank lines. Valid everywhere;
	// internal-punctuation suppression is applied by the assembler, not
	// encoded in the regex (RE2-style engines have no lookbehind).
	next("HardParagraphSeparator", `\n[ \t]*\n[ \t\n]*`, allStates, HardBoundary, Unknown)

	// DialogSoftEnd{Kind}: close delimiter, optional comma, whitespace,
	// lowercase continuation. Listed before the hard-end variants for the
	// same delimiter so a genuine ambiguity at the same offset resolves to
	// the soft (attribution) reading.
	for _, k := range allKinds {
		next("DialogSoftEnd"+k.name(), closeClass(k)+`,?[ \t\n\r]+[\p{Ll}]`,
			[]DialogState{k.state()}, SoftTransition, Narrative)
	}

	// DialogHardEnd{Kind}: terminating punctuation + close delimiter +
	// whitespace + sentence starter.
	for _, k := range allKinds {
		next("DialogHardEnd"+k.name(), `[.!?]+`+closeClass(k)+`[ \t\n\r]+[`+sentenceStarterClass,
			[]DialogState{k.state()}, HardBoundary, Narrative)
	}

	// UnpunctuatedDialogHardEnd{Kind}: close delimiter directly followed by
	// whitespace and a sentence starter, with no punctuation requirement.
	// Because DialogHardEnd's match starts one or more bytes earlier when
	// punctuation is present, leftmost-match semantics prefer it whenever
	// both apply; this pattern only wins when there is no punctuation.
	for _, k := range allKinds {
		next("UnpunctuatedDialogHardEnd"+k.name(), closeClass(k)+`[ \t\n\r]+[`+sentenceStarterClass,
			[]DialogState{k.state()}, UnpunctuatedDialogHardEnd, Narrative)
	}

	// DialogClose{Kind}: bare close delimiter, no particular continuation.
	// Catch-all fallback; lowest priority among the dialog-end patterns for
	// a given kind so the more specific ones above get first refusal.
	for _, k := range allKinds {
		next("DialogClose"+k.name(), closeClass(k), []DialogState{k.state()}, CloseDialog, Narrative)
	}

	// DialogOpen{Kind}: an opening delimiter, optionally preceded by
	// whitespace or an attributive comma/colon. The preceding character
	// (when present) is consumed as part of the match; it carries no
	// semantic weight of its own.
	for _, k := range allKinds {
		next("DialogOpen"+k.name(), `[ \t\n\r,:]?`+openClass(k), []DialogState{Narrative}, OpenDialog, k.state())
	}

	// NarrativeGestureBoundary: sentence-terminating punctuation, then
	// whitespace, then a sentence starter. Valid only in plain narrative
	// prose; dialog segments are governed by the Dialog* patterns above.
	next("NarrativeGestureBoundary", `[.!?]+[ \t\n\r]+[`+sentenceStarterClass,
		[]DialogState{Narrative}, HardBoundary, Narrative)

	return table
}

func closeClass(k Kind) string {
	return regexQuoteRune(k.close())
}

func openClass(k Kind) string {
	return regexQuoteRune(k.open())
}

// regexQuoteRune renders r as a single-rune regex literal, escaping bytes
// that are regex metacharacters in ASCII and using a codepoint escape for
// the non-ASCII curly quotes so the source stays a valid RE2-style pattern.
func regexQuoteRune(r rune) string {
	switch r {
	case '(', ')', '[', ']', '{', '}', '.', '*', '+', '?', '^', '$', '|', '\\':
		return `\` + string(r)
	case '"', '\'':
		return string(r)
	default:
		if r > 127 {
			return `\x{` + hex4(r) + `}`
		}
		return string(r)
	}
}

func hex4(r rune) string {
	const digits = "0123456789abcdef"
	buf := [4]byte{digits[0], digits[0], digits[0], digits[0]}
	for i := 3; i >= 0 && r > 0; i-- {
		buf[i] = digits[r&0xF]
		r >>= 4
	}
	return string(buf[:])
}
