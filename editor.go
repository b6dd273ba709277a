package lineedit

import "errors"

// OutcomeKind classifies the result of processing input.
type OutcomeKind int

// Outcome kinds returned by Feed and HandleKey.
const (
	OutcomeContinue    OutcomeKind = iota // keep editing, redraw from Render
	OutcomeSubmitted                      // a finished line, in Line
	OutcomeInterrupted                    // interrupt key pressed
	OutcomeEOF                            // end of input
)

// Render is a declarative redraw instruction. The editor never writes to a
// terminal itself; the host draws Text with the cursor at Cursor and, when
// Candidates is non-empty, a completion menu with Selected highlighted.
type Render struct {
	Text       string
	Cursor     int // cursor column in runes
	Candidates []string
	Selected   int
}

// Outcome is the result of processing one chunk of input or one key event.
// Err, when set, is a recoverable *DecodeError or *ProviderError that the
// host may surface to its users; the editing session always continues.
type Outcome struct {
	Kind   OutcomeKind
	Line   string // submitted text, valid when Kind is OutcomeSubmitted
	Render Render
	Err    error
}

// Editor is the line-editing state machine. It consumes raw input bytes
// (or already-decoded key events), mutates its line buffer, drives history
// browsing and the completion lifecycle, and reports an Outcome after every
// step.
//
// An Editor exclusively owns its buffer, history, and completion state; it
// is not safe for concurrent use, and a host embedding several independent
// prompts must create one Editor per prompt.
type Editor struct {
	decoder    *Decoder
	buf        Buffer
	history    *History
	provider   Provider
	completion *completionState
	pending    []byte
}

// NewEditor creates an editor with the default key map and history limit.
// A nil provider disables completion.
func NewEditor(provider Provider) *Editor {
	return &Editor{
		decoder:  NewDecoder(nil),
		history:  NewHistory(0),
		provider: provider,
	}
}

// SetProvider replaces the completion provider.
func (e *Editor) SetProvider(provider Provider) {
	e.provider = provider
}

// SetKeyMap replaces the key bindings used to decode input bytes.
func (e *Editor) SetKeyMap(keyMap *KeyMap) {
	e.decoder = NewDecoder(keyMap)
}

// SetHistory replaces the history instance, for example to change the
// entry limit. A nil history resets to the default.
func (e *Editor) SetHistory(h *History) {
	if h == nil {
		h = NewHistory(0)
	}
	e.history = h
}

// History returns the editor's history for host-managed persistence.
func (e *Editor) History() *History {
	return e.history
}

// Line returns the current buffer text and cursor position.
func (e *Editor) Line() (text string, cursor int) {
	return e.buf.Text(), e.buf.Cursor()
}

// Completing reports whether a completion candidate list is active.
func (e *Editor) Completing() bool {
	return e.completion != nil
}

// SelectedCandidate returns the highlighted completion candidate, if a
// candidate list is active. Hosts with a dedicated accept key can commit
// it with AcceptCandidate.
func (e *Editor) SelectedCandidate() (string, bool) {
	if e.completion == nil {
		return "", false
	}
	return e.completion.candidates[e.completion.selected], true
}

// Feed appends p to the pending input and processes as many complete keys
// as the bytes allow. It stops early at the first terminal outcome
// (submission, interrupt, end of input), keeping any remaining bytes for
// the next call. Incomplete trailing sequences are kept as well, so hosts
// can feed arbitrary chunks, single bytes included.
func (e *Editor) Feed(p []byte) Outcome {
	e.pending = append(e.pending, p...)
	var lastErr error
	for len(e.pending) > 0 {
		ev, n, err := e.decoder.Decode(e.pending)
		if err != nil {
			if errors.Is(err, ErrNeedMore) {
				break
			}
			// Unrecognized sequence: drop the consumed byte and resume.
			e.pending = e.pending[n:]
			lastErr = err
			continue
		}
		e.pending = e.pending[n:]
		out := e.HandleKey(ev)
		if out.Err != nil {
			lastErr = out.Err
		}
		if out.Kind != OutcomeContinue {
			out.Err = lastErr
			return out
		}
	}
	return Outcome{Kind: OutcomeContinue, Render: e.render(), Err: lastErr}
}

// HandleKey processes one decoded key event. Hosts that do their own key
// decoding can call it directly instead of Feed.
func (e *Editor) HandleKey(ev KeyEvent) Outcome {
	switch ev.Kind {
	case KeyRune:
		e.dismissCompletion()
		e.history.EndBrowse()
		e.buf.InsertRune(ev.Rune)

	case KeyBackspace:
		e.dismissCompletion()
		e.history.EndBrowse()
		e.buf.Backspace()

	case KeyDelete:
		e.dismissCompletion()
		e.history.EndBrowse()
		e.buf.Delete()

	case KeyDeleteWordBack:
		e.dismissCompletion()
		e.history.EndBrowse()
		e.buf.DeleteWordBack()

	case KeyKillLine:
		e.dismissCompletion()
		e.history.EndBrowse()
		e.buf.KillLine()

	case KeyKillToEnd:
		e.dismissCompletion()
		e.history.EndBrowse()
		e.buf.KillToEnd()

	case KeyLeft:
		e.dismissCompletion()
		e.buf.Left()

	case KeyRight:
		e.dismissCompletion()
		e.buf.Right()

	case KeyHome:
		e.dismissCompletion()
		e.buf.Home()

	case KeyEnd:
		e.dismissCompletion()
		e.buf.End()

	case KeyHistoryPrev:
		e.dismissCompletion()
		e.history.BeginBrowse(e.buf.Text())
		e.buf.Set(e.history.Prev())

	case KeyHistoryNext:
		e.dismissCompletion()
		// BeginBrowse is a no-op while browsing; on first use Next walks
		// straight past the newest entry and hands back the snapshot.
		e.history.BeginBrowse(e.buf.Text())
		e.buf.Set(e.history.Next())

	case KeyComplete:
		return e.complete()

	case KeySubmit:
		if e.completion != nil {
			// Enter while the menu is shown commits the highlighted
			// candidate and keeps editing.
			e.AcceptCandidate()
			break
		}
		text := e.buf.Text()
		e.history.EndBrowse()
		e.history.Push(text)
		e.buf.Set("")
		return Outcome{Kind: OutcomeSubmitted, Line: text, Render: e.render()}

	case KeyInterrupt:
		e.dismissCompletion()
		e.history.EndBrowse()
		e.buf.Set("")
		return Outcome{Kind: OutcomeInterrupted, Render: e.render()}

	case KeyEOF:
		return Outcome{Kind: OutcomeEOF, Render: e.render()}

	case KeyIgnored:
		// no effect
	}
	return Outcome{Kind: OutcomeContinue, Render: e.render()}
}

// complete drives the completion lifecycle for the trigger key: first press
// queries the provider, later presses cycle the highlighted candidate.
func (e *Editor) complete() Outcome {
	if e.completion != nil {
		e.completion.cycle()
		return Outcome{Kind: OutcomeContinue, Render: e.render()}
	}
	if e.provider == nil {
		return Outcome{Kind: OutcomeContinue, Render: e.render()}
	}

	prefix := e.buf.wordBeforeCursor()
	candidates, err := e.provider(prefix)
	if err != nil {
		return Outcome{
			Kind:   OutcomeContinue,
			Render: e.render(),
			Err:    &ProviderError{Prefix: prefix, Err: err},
		}
	}

	switch len(candidates) {
	case 0:
		// no match, nothing to do
	case 1:
		e.buf.replaceWordBeforeCursor(candidates[0])
	default:
		state := &completionState{
			prefix:      prefix,
			candidates:  candidates,
			savedText:   e.buf.Text(),
			savedCursor: e.buf.Cursor(),
		}
		if lcp := longestCommonPrefix(candidates); len([]rune(lcp)) > len([]rune(prefix)) {
			e.buf.replaceWordBeforeCursor(lcp)
		}
		e.completion = state
	}
	return Outcome{Kind: OutcomeContinue, Render: e.render()}
}

// AcceptCandidate replaces the completion prefix with the highlighted
// candidate and ends completion. It reports whether a candidate list was
// active.
func (e *Editor) AcceptCandidate() bool {
	if e.completion == nil {
		return false
	}
	e.buf.replaceWordBeforeCursor(e.completion.candidates[e.completion.selected])
	e.completion = nil
	return true
}

// CancelCompletion restores the buffer to its state from before completion
// began and ends completion. It reports whether a candidate list was
// active.
func (e *Editor) CancelCompletion() bool {
	if e.completion == nil {
		return false
	}
	e.buf.Set(e.completion.savedText)
	e.buf.cursor = e.completion.savedCursor
	e.completion = nil
	return true
}

// Reset clears the buffer, any pending input bytes, the completion state,
// and any browse in progress, leaving history entries intact. Hosts call
// it before prompting for a fresh line.
func (e *Editor) Reset() {
	e.buf.Set("")
	e.pending = nil
	e.completion = nil
	e.history.EndBrowse()
}

// dismissCompletion drops the candidate list without touching the buffer.
func (e *Editor) dismissCompletion() {
	e.completion = nil
}

func (e *Editor) render() Render {
	r := Render{Text: e.buf.Text(), Cursor: e.buf.Cursor()}
	if e.completion != nil {
		r.Candidates = append([]string{}, e.completion.candidates...)
		r.Selected = e.completion.selected
	}
	return r
}
