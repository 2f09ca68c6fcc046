package boundary

import (
	"unicode"
	"unicode/utf8"

	"github.com/textseams/seams/internal/matcher"
)

// Span is a byte range plus the 1-based (line, column) position of each
// endpoint. End is exclusive.
type Span struct {
	Start, End Position
}

// Sentence is one detected sentence: its 0-based index within the file,
// its span, and the raw bytes of that span (a view into the scanned
// input). Normalized text is computed lazily by Normalize.
type Sentence struct {
	Index int
	Span  Span
	Raw   []byte
}

// Assembler runs the main scan loop: it pulls candidate boundaries from a
// Matcher, consults
// the dialog state machine and the abbreviation/internal-punctuation
// suppression rules, and emits Sentences.
type Assembler struct {
	table   []Pattern
	matcher *matcher.Matcher
	abbrev  *AbbreviationSet
}

// NewAssembler builds an Assembler from a compiled pattern table and
// matcher, sharing both read-only across any number of concurrent scans.
func NewAssembler(table []Pattern, m *matcher.Matcher, abbrev *AbbreviationSet) *Assembler {
	return &Assembler{table: table, matcher: m, abbrev: abbrev}
}

// Scan runs one complete, synchronous, single-threaded pass over input and
// returns every detected sentence in order. All mutable scan state (dialog
// state, position cursor, accumulated sentences) is local to this call.
func (a *Assembler) Scan(input []byte) []Sentence {
	var sentences []Sentence

	currentStart := firstNonWhitespace(input, 0)
	if currentStart >= len(input) {
		return nil
	}

	state := initialState(input, currentStart)
	cursor := advance(startPosition(), input, currentStart)
	scanOffset := currentStart
	if state != Narrative {
		// The opening delimiter fixed the state; scanning resumes past it so
		// a symmetric quote is not read back as its own close.
		_, size := utf8.DecodeRune(input[scanOffset:])
		scanOffset += size
	}
	index := 0

	for {
		if state == Unknown {
			state = resolveUnknown(input, scanOffset)
			if state != Narrative {
				scanOffset = firstNonWhitespace(input, scanOffset)
				_, size := utf8.DecodeRune(input[scanOffset:])
				scanOffset += size
			}
		}

		m, ok := a.matcher.Next(input, scanOffset, int(state))
		if !ok {
			if hasNonWhitespace(input[currentStart:]) {
				end := lastNonWhitespaceBefore(input, len(input)) + 1
				sentences = append(sentences, Sentence{
					Index: index,
					Span:  Span{Start: cursor, End: advance(cursor, input, end)},
					Raw:   input[currentStart:end],
				})
			}
			return sentences
		}

		p := a.table[m.Index]

		if isNarrativeGesture(p) && a.abbrev.Contains(abbreviationToken(input, m.Start)) {
			scanOffset = m.Start + 1
			continue
		}
		if isHardParagraphSeparator(p) && precededByInternalPunctuation(input, m.Start) {
			scanOffset = m.End
			continue
		}

		switch p.Action {
		case SoftTransition, OpenDialog, CloseDialog, Continue:
			state = p.Successor
			scanOffset = m.End
			continue
		}

		sentenceEnd, nextStart := splitPoint(p, input, m)
		if sentenceEnd <= currentStart || !hasNonWhitespace(input[currentStart:sentenceEnd]) {
			// Degenerate match (should not arise from the shipped table);
			// skip it defensively rather than emit an empty span, without
			// losing track of the sentence already being accumulated.
			state = p.Successor
			scanOffset = m.End
			continue
		}

		endPos := advance(cursor, input, sentenceEnd)
		sentences = append(sentences, Sentence{
			Index: index,
			Span:  Span{Start: cursor, End: endPos},
			Raw:   input[currentStart:sentenceEnd],
		})
		index++

		state = p.Successor
		currentStart = nextStart
		scanOffset = nextStart
		cursor = advance(endPos, input, nextStart)
	}
}

func isNarrativeGesture(p Pattern) bool { return p.Name == "NarrativeGestureBoundary" }

func isHardParagraphSeparator(p Pattern) bool { return p.Name == "HardParagraphSeparator" }

// splitPoint computes, for a pattern whose match triggers a sentence
// boundary, the exclusive end of the finishing sentence and the start of
// the next one, per the shape of that pattern's match.
func splitPoint(p Pattern, input []byte, m matcher.Match) (sentenceEnd, nextStart int) {
	switch {
	case isHardParagraphSeparator(p):
		sentenceEnd = lastNonWhitespaceBefore(input, m.Start) + 1
		nextStart = firstNonWhitespace(input, m.End)
		return

	case p.Action == UnpunctuatedDialogHardEnd:
		_, closeSize := utf8.DecodeRune(input[m.Start:])
		sentenceEnd = m.Start + closeSize
		nextStart = startOfLastRune(input, m.End)
		return

	case isNarrativeGesture(p):
		punctEnd := endOfPunctuationRun(input, m.Start)
		sentenceEnd = punctEnd
		nextStart = startOfLastRune(input, m.End)
		return

	default: // DialogHardEnd{Kind}
		punctEnd := endOfPunctuationRun(input, m.Start)
		_, closeSize := utf8.DecodeRune(input[punctEnd:])
		sentenceEnd = punctEnd + closeSize
		nextStart = startOfLastRune(input, m.End)
		return
	}
}

func endOfPunctuationRun(input []byte, from int) int {
	i := from
	for i < len(input) {
		switch input[i] {
		case '.', '!', '?':
			i++
		default:
			return i
		}
	}
	return i
}

// startOfLastRune returns the byte offset of the final rune ending at end.
func startOfLastRune(input []byte, end int) int {
	_, size := utf8.DecodeLastRune(input[:end])
	return end - size
}

func firstNonWhitespace(input []byte, from int) int {
	i := from
	for i < len(input) {
		r, size := utf8.DecodeRune(input[i:])
		if !unicode.IsSpace(r) {
			return i
		}
		i += size
	}
	return i
}

func lastNonWhitespaceBefore(input []byte, before int) int {
	i := before - 1
	for i >= 0 {
		r, size := utf8.DecodeLastRune(input[:i+1])
		if !unicode.IsSpace(r) {
			return i
		}
		i -= size
	}
	return -1
}

func hasNonWhitespace(b []byte) bool {
	for _, r := range string(b) {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// abbreviationToken returns the whitespace-delimited token ending at the
// terminating punctuation of a candidate NarrativeGestureBoundary match
// that starts at punctStart, for abbreviation-set lookup: the word
// immediately before punctStart plus the full run of terminating
// punctuation the match begins with (e.g. "Dr" + "." = "Dr.").
func abbreviationToken(input []byte, punctStart int) string {
	wordStart := punctStart
	for wordStart > 0 {
		r, size := utf8.DecodeLastRune(input[:wordStart])
		if unicode.IsSpace(r) {
			break
		}
		wordStart -= size
	}
	punctEnd := endOfPunctuationRun(input, punctStart)
	return string(input[wordStart:punctEnd])
}

var internalPunctuation = map[rune]bool{
	',': true, ';': true, ':': true,
	'—': true, '–': true, '-': true, '/': true,
	'(': true, '[': true, '{': true,
	'"': true, '\'': true, '“': true, '‘': true, '«': true,
}

// precededByInternalPunctuation reports whether the last non-whitespace
// byte before offset is internal (non-terminal) punctuation, in which case
// a HardParagraphSeparator match must be suppressed.
func precededByInternalPunctuation(input []byte, before int) bool {
	i := lastNonWhitespaceBefore(input, before)
	if i < 0 {
		return false
	}
	r, _ := utf8.DecodeLastRune(input[:i+1])
	return internalPunctuation[r]
}

// initialState determines the scan's starting DialogState by examining the
// first non-whitespace rune of the input.
func initialState(input []byte, firstNonWS int) DialogState {
	r, _ := utf8.DecodeRune(input[firstNonWS:])
	if st, ok := stateForOpener(r); ok {
		return st
	}
	return Narrative
}

// resolveUnknown is the Unknown-state resolution rule: the next
// non-whitespace rune fixes the state, exactly as for the initial state.
// A rune that is not itself a valid sentence start (an opening
// quote/bracket or an uppercase letter) cannot open a dialog segment
// either, so it resolves straight to Narrative without consulting
// stateForOpener.
func resolveUnknown(input []byte, from int) DialogState {
	next := firstNonWhitespace(input, from)
	if next >= len(input) {
		return Narrative
	}
	r, _ := utf8.DecodeRune(input[next:])
	if !isSentenceStarter(r) {
		return Narrative
	}
	return initialState(input, next)
}
