package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedSubmitLine(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)

	out := e.Feed([]byte("print Hello"))
	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.Equal(t, "print Hello", out.Render.Text)
	assert.Equal(t, 11, out.Render.Cursor)

	out = e.Feed([]byte("\r"))
	require.Equal(t, OutcomeSubmitted, out.Kind)
	assert.Equal(t, "print Hello", out.Line)
	assert.Equal(t, []string{"print Hello"}, e.History().Entries())

	text, cursor := e.Line()
	assert.Empty(t, text, "submission clears the buffer")
	assert.Zero(t, cursor)
}

func TestFeedEmptySubmit(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	out := e.Feed([]byte("\n"))

	require.Equal(t, OutcomeSubmitted, out.Kind)
	assert.Empty(t, out.Line)
	assert.Empty(t, e.History().Entries(), "empty lines are reported but never recorded")
}

func TestFeedStopsAtTerminalOutcome(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	out := e.Feed([]byte("one\rtwo\r"))

	require.Equal(t, OutcomeSubmitted, out.Kind)
	assert.Equal(t, "one", out.Line, "processing stops at the first submission")

	out = e.Feed(nil)
	require.Equal(t, OutcomeSubmitted, out.Kind)
	assert.Equal(t, "two", out.Line, "remaining bytes survive for the next call")
	assert.Equal(t, []string{"one", "two"}, e.History().Entries())
}

func TestFeedPartialSequenceAcrossCalls(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	e.Feed([]byte("ab"))

	out := e.Feed([]byte{0x1b})
	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.NoError(t, out.Err)
	text, cursor := e.Line()
	assert.Equal(t, "ab", text, "a lone escape waits for the rest of its sequence")
	assert.Equal(t, 2, cursor)

	e.Feed([]byte("[D")) // completes cursor-left
	_, cursor = e.Line()
	assert.Equal(t, 1, cursor)
}

func TestFeedUnknownSequenceRecovers(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	out := e.Feed([]byte("a\x1bQb"))

	var decErr *DecodeError
	require.ErrorAs(t, out.Err, &decErr)
	text, _ := e.Line()
	assert.Equal(t, "aQb", text, "decoding resumes right after the dropped escape byte")
}

func TestFeedInterrupt(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	e.Feed([]byte("doomed"))
	out := e.Feed([]byte{0x03})

	require.Equal(t, OutcomeInterrupted, out.Kind)
	text, _ := e.Line()
	assert.Empty(t, text, "interrupt discards the line")
	assert.Empty(t, e.History().Entries(), "a discarded line is never recorded")
}

func TestFeedEOF(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	e.Feed([]byte("kept"))
	out := e.Feed([]byte{0x04})

	require.Equal(t, OutcomeEOF, out.Kind)
	text, _ := e.Line()
	assert.Equal(t, "kept", text, "end of input leaves the buffer readable")
}

func TestFeedMultibyteInput(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	raw := []byte("日本語")

	// Feed one byte at a time to exercise rune reassembly.
	for _, b := range raw {
		out := e.Feed([]byte{b})
		assert.NoError(t, out.Err)
	}
	out := e.Feed([]byte("\r"))
	require.Equal(t, OutcomeSubmitted, out.Kind)
	assert.Equal(t, "日本語", out.Line)
}

func TestHistoryBrowsingKeys(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	e.Feed([]byte("first\rsecond\r"))
	e.Feed(nil) // drain the second submission

	e.Feed([]byte("dra"))
	up := KeyEvent{Kind: KeyHistoryPrev}
	down := KeyEvent{Kind: KeyHistoryNext}

	e.HandleKey(up)
	text, _ := e.Line()
	assert.Equal(t, "second", text)

	e.HandleKey(up)
	text, _ = e.Line()
	assert.Equal(t, "first", text)

	e.HandleKey(up)
	text, _ = e.Line()
	assert.Equal(t, "first", text, "browsing clamps at the oldest entry")

	e.HandleKey(down)
	text, _ = e.Line()
	assert.Equal(t, "second", text)

	e.HandleKey(down)
	text, _ = e.Line()
	assert.Equal(t, "dra", text, "walking past the newest entry restores the draft")
}

func TestHistoryBrowseEndedByEdit(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	e.Feed([]byte("old\r"))

	e.HandleKey(KeyEvent{Kind: KeyHistoryPrev})
	text, _ := e.Line()
	require.Equal(t, "old", text)

	// Typing ends the browse; the recalled text becomes an ordinary draft.
	e.HandleKey(KeyEvent{Kind: KeyRune, Rune: '!'})
	e.HandleKey(KeyEvent{Kind: KeyHistoryPrev})
	text, _ = e.Line()
	assert.Equal(t, "old", text, "a fresh browse starts again from the newest entry")
}

func TestSubmitDuringCompletionAcceptsCandidate(t *testing.T) {
	t.Parallel()

	e := NewEditor(StaticProvider([]string{"print", "printf"}))
	feedString(e, "p")
	e.HandleKey(KeyEvent{Kind: KeyComplete})
	require.True(t, e.Completing())

	out := e.HandleKey(KeyEvent{Kind: KeySubmit})
	assert.Equal(t, OutcomeContinue, out.Kind, "Enter commits the candidate instead of submitting")
	text, _ := e.Line()
	assert.Equal(t, "print", text)
	assert.False(t, e.Completing())

	out = e.HandleKey(KeyEvent{Kind: KeySubmit})
	require.Equal(t, OutcomeSubmitted, out.Kind)
	assert.Equal(t, "print", out.Line)
}

func TestCursorKeysKeepHistoryBrowse(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	e.Feed([]byte("alpha\rbeta\r"))
	e.Feed(nil)

	e.HandleKey(KeyEvent{Kind: KeyHistoryPrev})
	e.HandleKey(KeyEvent{Kind: KeyLeft})
	e.HandleKey(KeyEvent{Kind: KeyHistoryPrev})
	text, _ := e.Line()
	assert.Equal(t, "alpha", text, "cursor movement must not restart the browse")
}

func TestEditorReset(t *testing.T) {
	t.Parallel()

	e := NewEditor(StaticProvider([]string{"print", "printf"}))
	e.Feed([]byte("kept\r"))
	feedString(e, "p")
	e.HandleKey(KeyEvent{Kind: KeyComplete})
	e.Feed([]byte{0x1b}) // leave a pending byte behind

	e.Reset()

	text, cursor := e.Line()
	assert.Empty(t, text)
	assert.Zero(t, cursor)
	assert.False(t, e.Completing())
	assert.Equal(t, []string{"kept"}, e.History().Entries(), "reset preserves history entries")

	out := e.Feed([]byte("a"))
	text, _ = e.Line()
	assert.Equal(t, "a", text, "pending bytes from before the reset are gone")
	assert.NoError(t, out.Err)
}

func TestSetHistoryAndSetProvider(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	h := NewHistory(2)
	h.Push("one")
	e.SetHistory(h)
	assert.Equal(t, []string{"one"}, e.History().Entries())

	e.SetHistory(nil)
	assert.NotNil(t, e.History(), "nil falls back to a fresh default history")
	assert.Empty(t, e.History().Entries())

	e.SetProvider(StaticProvider([]string{"word"}))
	feedString(e, "w")
	e.HandleKey(KeyEvent{Kind: KeyComplete})
	text, _ := e.Line()
	assert.Equal(t, "word", text)
}

func TestIgnoredKeyHasNoEffect(t *testing.T) {
	t.Parallel()

	e := NewEditor(nil)
	feedString(e, "ab")
	out := e.HandleKey(KeyEvent{Kind: KeyIgnored})

	assert.Equal(t, OutcomeContinue, out.Kind)
	text, cursor := e.Line()
	assert.Equal(t, "ab", text)
	assert.Equal(t, 2, cursor)
}
