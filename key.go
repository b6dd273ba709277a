package lineedit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNeedMore is returned by Decoder.Decode when the pending bytes form an
// incomplete but still valid key (a partial escape sequence or a partial
// UTF-8 rune). The caller should append more input and retry.
var ErrNeedMore = errors.New("need more bytes")

// DecodeError reports a byte sequence that matches no bound key. Decode
// consumes a single byte alongside this error so that decoding resumes at
// the next byte instead of desynchronizing permanently.
type DecodeError struct {
	Seq []byte // the offending prefix, starting at the consumed byte
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("unrecognized key sequence %q", e.Seq)
}

// KeyKind identifies the logical key a byte sequence decodes to.
type KeyKind int

// Key kinds produced by the decoder and consumed by the editor.
const (
	KeyIgnored KeyKind = iota // unbound key, no effect
	KeyRune                   // printable character, Rune field is set
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyHistoryPrev
	KeyHistoryNext
	KeyComplete
	KeySubmit
	KeyInterrupt
	KeyEOF
	KeyDeleteWordBack
	KeyKillLine
	KeyKillToEnd
)

// KeyEvent is one decoded logical key.
type KeyEvent struct {
	Kind KeyKind
	Rune rune // valid when Kind is KeyRune
}

// KeyMap holds the key binding configuration: single-rune bindings for
// control characters and escape-sequence bindings for special keys.
type KeyMap struct {
	bindings  map[rune]KeyKind
	sequences map[string]KeyKind
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default bindings:
//   - Enter/Return: submit the line
//   - Ctrl+C: interrupt
//   - Ctrl+D: end of input
//   - Tab: completion
//   - Backspace: delete character backwards
//   - Delete: delete character forwards
//   - Arrow up/down: history browsing
//   - Arrow left/right: cursor movement
//   - Ctrl+A/Home, Ctrl+E/End: line start/end
//   - Ctrl+K: delete to end of line
//   - Ctrl+U: delete entire line
//   - Ctrl+W, Alt+Backspace: delete word backwards
//
// Custom bindings can be added with Bind and BindSequence:
//
//	km := lineedit.NewDefaultKeyMap()
//	km.BindSequence("[Z", lineedit.KeyHistoryPrev) // Shift+Tab
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyKind),
		sequences: make(map[string]KeyKind),
	}

	km.bindings['\r'] = KeySubmit
	km.bindings['\n'] = KeySubmit
	km.bindings['\x03'] = KeyInterrupt // Ctrl+C
	km.bindings['\x04'] = KeyEOF       // Ctrl+D
	km.bindings['\x01'] = KeyHome      // Ctrl+A
	km.bindings['\x05'] = KeyEnd       // Ctrl+E
	km.bindings['\x0B'] = KeyKillToEnd // Ctrl+K
	km.bindings['\x15'] = KeyKillLine  // Ctrl+U
	km.bindings['\x17'] = KeyDeleteWordBack
	km.bindings['\t'] = KeyComplete
	km.bindings['\x7f'] = KeyBackspace
	km.bindings['\b'] = KeyBackspace

	// Escape sequences, without the initial ESC byte.
	km.sequences["[A"] = KeyHistoryPrev
	km.sequences["[B"] = KeyHistoryNext
	km.sequences["[C"] = KeyRight
	km.sequences["[D"] = KeyLeft
	km.sequences["[H"] = KeyHome
	km.sequences["[F"] = KeyEnd
	km.sequences["[1~"] = KeyHome
	km.sequences["[4~"] = KeyEnd
	km.sequences["[3~"] = KeyDelete          // Delete
	km.sequences["\x7f"] = KeyDeleteWordBack // Alt+Backspace

	return km
}

// Bind adds or updates a single-rune key binding.
func (km *KeyMap) Bind(key rune, kind KeyKind) {
	km.bindings[key] = kind
}

// BindSequence adds or updates an escape sequence binding. The sequence
// should not include the initial ESC byte.
func (km *KeyMap) BindSequence(seq string, kind KeyKind) {
	km.sequences[seq] = kind
}

func (km *KeyMap) lookup(key rune) (KeyKind, bool) {
	if km == nil || km.bindings == nil {
		return KeyIgnored, false
	}
	kind, ok := km.bindings[key]
	return kind, ok
}

func (km *KeyMap) lookupSequence(seq string) (KeyKind, bool) {
	if km == nil || km.sequences == nil {
		return KeyIgnored, false
	}
	kind, ok := km.sequences[seq]
	return kind, ok
}

// hasSequencePrefix reports whether s is a proper prefix of any bound
// escape sequence.
func (km *KeyMap) hasSequencePrefix(s string) bool {
	for seq := range km.sequences {
		if len(s) < len(seq) && strings.HasPrefix(seq, s) {
			return true
		}
	}
	return false
}

const escByte = 0x1b

// Decoder turns a raw byte stream into KeyEvents using a KeyMap.
//
// The decoder is incremental: Decode inspects the pending bytes and either
// produces one event together with the number of bytes consumed, or reports
// ErrNeedMore when the bytes so far are a valid prefix of a longer key.
// A bare ESC is such a prefix; distinguishing a standalone Escape press from
// the start of an arrow sequence requires a read timeout, which is the
// caller's responsibility, not the decoder's.
type Decoder struct {
	keyMap *KeyMap
}

// NewDecoder creates a decoder with the given key map. A nil keyMap uses
// the default bindings.
func NewDecoder(keyMap *KeyMap) *Decoder {
	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}
	return &Decoder{keyMap: keyMap}
}

// Decode decodes one key event from p. It returns the event and the number
// of bytes consumed. On an incomplete prefix it returns ErrNeedMore with
// zero bytes consumed. On a sequence that matches no binding it returns a
// *DecodeError with exactly one byte consumed, so the caller can report the
// error and keep decoding.
func (d *Decoder) Decode(p []byte) (KeyEvent, int, error) {
	if len(p) == 0 {
		return KeyEvent{}, 0, ErrNeedMore
	}
	if p[0] == escByte {
		return d.decodeEscape(p)
	}
	if !utf8.FullRune(p) {
		return KeyEvent{}, 0, ErrNeedMore
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size == 1 {
		return KeyEvent{}, 1, &DecodeError{Seq: clone(p[:1])}
	}
	if kind, ok := d.keyMap.lookup(r); ok {
		return KeyEvent{Kind: kind, Rune: r}, size, nil
	}
	if isPrintable(r) {
		return KeyEvent{Kind: KeyRune, Rune: r}, size, nil
	}
	return KeyEvent{Kind: KeyIgnored, Rune: r}, size, nil
}

func (d *Decoder) decodeEscape(p []byte) (KeyEvent, int, error) {
	for n := 2; n <= len(p); n++ {
		s := string(p[1:n])
		if kind, ok := d.keyMap.lookupSequence(s); ok {
			return KeyEvent{Kind: kind}, n, nil
		}
		if !d.keyMap.hasSequencePrefix(s) {
			return KeyEvent{}, 1, &DecodeError{Seq: clone(p[:n])}
		}
	}
	// Every byte so far is a valid prefix of some bound sequence.
	return KeyEvent{}, 0, ErrNeedMore
}

func isPrintable(r rune) bool {
	return r >= 32 && r != 0x7f
}

func clone(p []byte) []byte {
	return append([]byte(nil), p...)
}
