package lineedit

import (
	"fmt"
	"strings"
)

// Provider supplies completion candidates for a word prefix. It is called
// with the partial word before the cursor and returns the candidates in the
// order they should be displayed. It may return no candidates, and it may
// fail; a failure is surfaced to the host without touching editor state.
type Provider func(prefix string) ([]string, error)

// ProviderError wraps a failure of the host-supplied completion provider.
// The editor leaves the buffer and completion state untouched when the
// provider fails.
type ProviderError struct {
	Prefix string
	Err    error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion provider failed for %q: %v", e.Prefix, e.Err)
}

// Unwrap returns the underlying provider error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// StaticProvider builds a Provider that completes against a fixed word
// list, keeping the candidates that start with the typed prefix.
func StaticProvider(words []string) Provider {
	return func(prefix string) ([]string, error) {
		var candidates []string
		for _, w := range words {
			if strings.HasPrefix(w, prefix) {
				candidates = append(candidates, w)
			}
		}
		return candidates, nil
	}
}

// completionState tracks an in-progress completion: the prefix it was
// started from, the candidate list, the highlighted candidate, and a
// snapshot of the buffer from before completion began.
type completionState struct {
	prefix      string
	candidates  []string
	selected    int
	savedText   string
	savedCursor int
}

// cycle advances the highlighted candidate, wrapping from the last back to
// the first. Cycling changes the highlight only, never the buffer.
func (c *completionState) cycle() {
	c.selected = (c.selected + 1) % len(c.candidates)
}

// longestCommonPrefix returns the longest string that is a prefix of every
// candidate. The comparison is rune-wise so the result never ends in the
// middle of a multi-byte character.
func longestCommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	prefix := []rune(candidates[0])
	for _, c := range candidates[1:] {
		runes := []rune(c)
		if len(runes) < len(prefix) {
			prefix = prefix[:len(runes)]
		}
		for i := range prefix {
			if runes[i] != prefix[i] {
				prefix = prefix[:i]
				break
			}
		}
		if len(prefix) == 0 {
			return ""
		}
	}
	return string(prefix)
}
