package lineedit

import "unicode"

// QuoteState tracks quoting and escaping while scanning a command line one
// rune at a time. A fully scanned, well-formed line ends with all three
// flags off; a dangling quote or trailing backslash leaves the matching
// flag set.
type QuoteState struct {
	SingleQuote bool
	DoubleQuote bool
	Backslash   bool
}

// Step advances the state over one rune.
func (s *QuoteState) Step(r rune) {
	switch r {
	case '"':
		if !s.DoubleQuoteEscaped() {
			s.DoubleQuote = !s.DoubleQuote
		}
	case '\'':
		if !s.SingleQuoteEscaped() {
			s.SingleQuote = !s.SingleQuote
		}
	}

	if s.Backslash {
		s.Backslash = false
	} else if r == '\\' {
		s.Backslash = true
	}
}

// WhitespaceEscaped reports whether a following whitespace rune would be
// part of the current word rather than a word delimiter.
func (s *QuoteState) WhitespaceEscaped() bool {
	return s.SingleQuote || s.DoubleQuote || s.Backslash
}

// DoubleQuoteEscaped reports whether a following '"' would be literal
// instead of toggling a double-quoted span.
func (s *QuoteState) DoubleQuoteEscaped() bool {
	return s.SingleQuote || s.Backslash
}

// SingleQuoteEscaped reports whether a following single quote would be
// literal instead of toggling a single-quoted span.
func (s *QuoteState) SingleQuoteEscaped() bool {
	return s.DoubleQuote || s.Backslash
}

// BackslashEscaped reports whether a following backslash would be literal
// instead of starting an escape.
func (s *QuoteState) BackslashEscaped() bool {
	return s.DoubleQuote || s.Backslash
}

// ScanQuotes runs Step over every rune of line and returns the resulting
// state. Useful for detecting unterminated quoting before executing a
// submitted line.
func ScanQuotes(line string) QuoteState {
	var s QuoteState
	for _, r := range line {
		s.Step(r)
	}
	return s
}

// Split splits a command line into its words, honoring double quotes,
// single quotes, and backslash escaping, so "A B C" comes back as one word.
// It is the piece a shell-like host runs on a submitted line before
// dispatching the command.
func Split(line string) []string {
	var (
		parts []string
		word  []rune
		state QuoteState
	)
	for _, r := range line {
		if !state.WhitespaceEscaped() && unicode.IsSpace(r) {
			if len(word) > 0 {
				parts = append(parts, string(word))
				word = word[:0]
			}
			continue
		}

		switch r {
		case '"':
			if state.DoubleQuoteEscaped() {
				word = append(word, r)
			}
		case '\'':
			if state.SingleQuoteEscaped() {
				word = append(word, r)
			}
		case '\\':
			if state.BackslashEscaped() {
				word = append(word, r)
			}
		default:
			word = append(word, r)
		}
		state.Step(r)
	}

	if len(word) > 0 {
		parts = append(parts, string(word))
	}
	return parts
}

// EndsInSpace reports whether the last rune of line is whitespace, meaning
// the user finished the previous word and completion should start a fresh
// one.
func EndsInSpace(line string) bool {
	runes := []rune(line)
	if len(runes) == 0 {
		return false
	}
	return unicode.IsSpace(runes[len(runes)-1])
}
