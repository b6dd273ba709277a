package lineedit

import "io"

// mockTerminal implements terminalInterface with a pre-scripted input
// sequence, giving prompt-level tests deterministic behavior without a
// real tty. It tracks raw mode switches so tests can verify the terminal
// is restored, and reports io.EOF once the script runs out.
type mockTerminal struct {
	input        []rune
	inputPos     int
	rawMode      bool
	terminalSize [2]int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	return nil
}
