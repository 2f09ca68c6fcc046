// Package boundary implements the dialog-aware sentence boundary detector:
// the pattern table, dialog state machine, abbreviation recognizer, sentence
// assembler, position tracker and normalizer. It is the orchestrator that
// sits on top of the per-pattern matchers in internal/matcher, in the same
// way coregex's meta package orchestrates NFA/DFA engines underneath its
// public Regex type.
package boundary

import "unicode"

// DialogState is the current bracketing context of a scan: plain narrative
// prose, or inside a quoted/parenthetical segment of a particular kind.
type DialogState int

const (
	// Narrative is the default state: plain prose, no open dialog.
	Narrative DialogState = iota
	// DialogDoubleQuote is inside a "..." segment.
	DialogDoubleQuote
	// DialogSingleQuote is inside a '...' segment.
	DialogSingleQuote
	// DialogSmartDouble is inside a “...” segment.
	DialogSmartDouble
	// DialogSmartSingle is inside a '...' segment using curly quotes.
	DialogSmartSingle
	// DialogRound is inside a (...) parenthetical.
	DialogRound
	// DialogSquare is inside a [...] parenthetical.
	DialogSquare
	// DialogCurly is inside a {...} parenthetical.
	DialogCurly
	// Unknown is entered immediately after a hard paragraph separator; the
	// next non-whitespace rune resolves it to Narrative or a DialogKind.
	Unknown
)

func (s DialogState) String() string {
	switch s {
	case Narrative:
		return "Narrative"
	case DialogDoubleQuote:
		return "DialogDoubleQuote"
	case DialogSingleQuote:
		return "DialogSingleQuote"
	case DialogSmartDouble:
		return "DialogSmartDouble"
	case DialogSmartSingle:
		return "DialogSmartSingle"
	case DialogRound:
		return "DialogRound"
	case DialogSquare:
		return "DialogSquare"
	case DialogCurly:
		return "DialogCurly"
	case Unknown:
		return "Unknown"
	default:
		return "DialogState(?)"
	}
}

// Kind identifies the bracketing delimiter family a dialog pattern belongs
// to (double quote, single quote, smart quotes, or one of the three
// parenthetical shapes).
type Kind int

const (
	KindDoubleQuote Kind = iota
	KindSingleQuote
	KindSmartDouble
	KindSmartSingle
	KindRound
	KindSquare
	KindCurly
)

var allKinds = [...]Kind{
	KindDoubleQuote, KindSingleQuote, KindSmartDouble, KindSmartSingle,
	KindRound, KindSquare, KindCurly,
}

// state returns the DialogState entered when opening a segment of this kind.
func (k Kind) state() DialogState {
	switch k {
	case KindDoubleQuote:
		return DialogDoubleQuote
	case KindSingleQuote:
		return DialogSingleQuote
	case KindSmartDouble:
		return DialogSmartDouble
	case KindSmartSingle:
		return DialogSmartSingle
	case KindRound:
		return DialogRound
	case KindSquare:
		return DialogSquare
	case KindCurly:
		return DialogCurly
	default:
		return Narrative
	}
}

// open and close return the opening and closing delimiter runes for a kind.
func (k Kind) open() rune {
	switch k {
	case KindDoubleQuote:
		return '"'
	case KindSingleQuote:
		return '\''
	case KindSmartDouble:
		return '“'
	case KindSmartSingle:
		return '‘'
	case KindRound:
		return '('
	case KindSquare:
		return '['
	case KindCurly:
		return '{'
	default:
		return 0
	}
}

func (k Kind) close() rune {
	switch k {
	case KindDoubleQuote:
		return '"'
	case KindSingleQuote:
		return '\''
	case KindSmartDouble:
		return '”'
	case KindSmartSingle:
		return '’'
	case KindRound:
		return ')'
	case KindSquare:
		return ']'
	case KindCurly:
		return '}'
	default:
		return 0
	}
}

func (k Kind) name() string {
	switch k {
	case KindDoubleQuote:
		return "DoubleQuote"
	case KindSingleQuote:
		return "SingleQuote"
	case KindSmartDouble:
		return "SmartDouble"
	case KindSmartSingle:
		return "SmartSingle"
	case KindRound:
		return "Round"
	case KindSquare:
		return "Square"
	case KindCurly:
		return "Curly"
	default:
		return "?"
	}
}

// stateForOpener returns the DialogState a fresh segment should enter given
// its first non-whitespace rune, and whether that rune is an opener at all.
func stateForOpener(r rune) (DialogState, bool) {
	for _, k := range allKinds {
		if k.open() == r {
			return k.state(), true
		}
	}
	return Narrative, false
}

// isSentenceStarter reports whether r can begin a new sentence: an
// uppercase letter, or an opening quote/bracket of any kind.
func isSentenceStarter(r rune) bool {
	if _, ok := stateForOpener(r); ok {
		return true
	}
	if r == '«' { // « guillemet
		return true
	}
	return isUpper(r)
}

func isUpper(r rune) bool {
	return unicode.IsUpper(r)
}
