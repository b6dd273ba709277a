package lineedit

// Buffer is an editable line of text with a cursor. The cursor always
// satisfies 0 <= cursor <= len(text); every operation clamps at the bounds
// and is a no-op when it would move past them.
type Buffer struct {
	text   []rune
	cursor int
}

// Text returns the buffer contents as a string.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Cursor returns the cursor position in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// InsertRune inserts r at the cursor and advances the cursor by one.
func (b *Buffer) InsertRune(r rune) {
	b.text = append(b.text[:b.cursor], append([]rune{r}, b.text[b.cursor:]...)...)
	b.cursor++
}

// InsertText inserts text at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(text string) {
	runes := []rune(text)
	b.text = append(b.text[:b.cursor], append(runes, b.text[b.cursor:]...)...)
	b.cursor += len(runes)
}

// Backspace deletes the rune immediately before the cursor. It reports
// whether a rune was deleted; at position 0 it is a no-op.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	return true
}

// Delete deletes the rune at the cursor. It reports whether a rune was
// deleted; at the end of the buffer it is a no-op.
func (b *Buffer) Delete() bool {
	if b.cursor >= len(b.text) {
		return false
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
	return true
}

// Left moves the cursor one rune to the left, clamped at the start.
func (b *Buffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// Right moves the cursor one rune to the right, clamped at the end.
func (b *Buffer) Right() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// Home moves the cursor to the start of the buffer.
func (b *Buffer) Home() {
	b.cursor = 0
}

// End moves the cursor to the end of the buffer.
func (b *Buffer) End() {
	b.cursor = len(b.text)
}

// Set replaces the entire contents with text and places the cursor at the
// end. Used for history recall and completion acceptance.
func (b *Buffer) Set(text string) {
	b.text = []rune(text)
	b.cursor = len(b.text)
}

// KillLine deletes the entire line.
func (b *Buffer) KillLine() {
	b.text = b.text[:0]
	b.cursor = 0
}

// KillToEnd deletes from the cursor to the end of the line.
func (b *Buffer) KillToEnd() {
	b.text = b.text[:b.cursor]
}

// DeleteWordBack deletes from the start of the word before the cursor to
// the cursor. It reports whether anything was deleted.
func (b *Buffer) DeleteWordBack() bool {
	if b.cursor == 0 {
		return false
	}
	start := b.wordStart()
	b.text = append(b.text[:start], b.text[b.cursor:]...)
	b.cursor = start
	return true
}

// wordStart finds the start of the word before the cursor: skip separators,
// then skip word characters.
func (b *Buffer) wordStart() int {
	pos := b.cursor
	for pos > 0 && !isWordRune(b.text[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(b.text[pos-1]) {
		pos--
	}
	return pos
}

// wordBeforeCursor returns the partial word immediately before the cursor,
// the current completion prefix. It is empty when the cursor sits right
// after whitespace.
func (b *Buffer) wordBeforeCursor() string {
	start := b.cursor
	for start > 0 && !isSpaceRune(b.text[start-1]) {
		start--
	}
	return string(b.text[start:b.cursor])
}

// replaceWordBeforeCursor replaces the partial word before the cursor with
// text and places the cursor after the replacement.
func (b *Buffer) replaceWordBeforeCursor(text string) {
	start := b.cursor
	for start > 0 && !isSpaceRune(b.text[start-1]) {
		start--
	}
	runes := []rune(text)
	b.text = append(b.text[:start], append(runes, b.text[b.cursor:]...)...)
	b.cursor = start + len(runes)
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t'
}
