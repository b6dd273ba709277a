package lineedit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D or input ends
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
)

// Config holds the configuration for a Prompt.
type Config struct {
	Prefix      string         // prompt prefix (e.g. "$ ")
	Provider    Provider       // completion provider
	Commands    Commands       // command tree completion (overrides Provider)
	KeyMap      *KeyMap        // key bindings (nil for default)
	ColorScheme *ColorScheme   // color scheme (nil for default)
	MaxHistory  int            // in-memory history limit (0 for default)
	HistoryFile string         // plain-text history file (empty for none)
	History     HistoryBackend // history backend (overrides HistoryFile)
}

// Option configures a Prompt.
type Option func(*Config)

// WithProvider sets the completion provider.
func WithProvider(provider Provider) Option {
	return func(c *Config) {
		c.Provider = provider
	}
}

// WithCommands completes input against a command tree. It takes precedence
// over WithProvider.
func WithCommands(commands Commands) Option {
	return func(c *Config) {
		c.Commands = commands
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithColorScheme sets the color scheme.
func WithColorScheme(scheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = scheme
	}
}

// WithMemoryHistory keeps at most maxEntries history lines in memory, with
// no persistence.
func WithMemoryHistory(maxEntries int) Option {
	return func(c *Config) {
		c.MaxHistory = maxEntries
	}
}

// WithHistoryFile persists history to a plain-text file, one line per
// entry. The path may start with "~/".
//
//	p, err := lineedit.New("$ ", lineedit.WithHistoryFile("~/.myapp_history"))
func WithHistoryFile(path string) Option {
	return func(c *Config) {
		c.HistoryFile = path
	}
}

// WithHistoryBackend persists history through the given backend, for
// example a bbolt database from the store subpackage:
//
//	db, err := store.Open(dbPath)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, err := lineedit.New("$ ", lineedit.WithHistoryBackend(db))
//
// The prompt takes ownership of the backend and closes it in Close.
func WithHistoryBackend(backend HistoryBackend) Option {
	return func(c *Config) {
		c.History = backend
	}
}

// Prompt is an interactive terminal prompt driving an Editor. Create one
// with New, read lines with Run, and always Close it to restore the
// terminal and release the history backend.
type Prompt struct {
	config    Config
	output    io.Writer
	editor    *Editor
	renderer  *renderer
	terminal  terminalInterface
	backend   HistoryBackend
	lastSaved string
}

// New creates a new prompt with the given prefix and options.
//
//	p, err := lineedit.New("$ ",
//		lineedit.WithProvider(lineedit.StaticProvider([]string{"print", "printf", "exit"})),
//		lineedit.WithHistoryFile("~/.myapp_history"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	line, err := p.Run()
func New(prefix string, options ...Option) (*Prompt, error) {
	config := Config{Prefix: prefix}
	for _, option := range options {
		option(&config)
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	output, colors := colorOutput()
	return newPrompt(config, terminal, output, colors)
}

// newPrompt wires a Prompt from already-constructed collaborators. Tests
// use it with a mockTerminal and a bytes.Buffer.
func newPrompt(config Config, terminal terminalInterface, output io.Writer, colors bool) (*Prompt, error) {
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}

	editor := NewEditor(config.Provider)
	editor.SetKeyMap(config.KeyMap)
	editor.SetHistory(NewHistory(config.MaxHistory))
	if config.Commands != nil {
		editor.SetProvider(config.Commands.Provider(func() string {
			text, cursor := editor.Line()
			return string([]rune(text)[:cursor])
		}))
	}

	backend := config.History
	if backend == nil && config.HistoryFile != "" {
		fb, err := NewFileBackend(config.HistoryFile)
		if err != nil {
			terminal.Close()
			return nil, fmt.Errorf("failed to set up history file: %w", err)
		}
		backend = fb
	}

	p := &Prompt{
		config:   config,
		output:   output,
		editor:   editor,
		renderer: newRenderer(output, config.ColorScheme, colors),
		terminal: terminal,
		backend:  backend,
	}

	if backend != nil {
		entries, err := backend.Load()
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
		editor.History().SetEntries(entries)
		if len(entries) > 0 {
			p.lastSaved = entries[len(entries)-1]
		}
	}
	return p, nil
}

// colorOutput picks the output writer and decides whether to emit colors.
// Windows goes through go-colorable for ANSI support; elsewhere colors are
// enabled only when stdout is a terminal.
func colorOutput() (io.Writer, bool) {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout(), true
	}
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return os.Stdout, true
	}
	return os.Stdout, false
}

// Run reads one line interactively. It is a convenience wrapper around
// RunWithContext with a background context.
func (p *Prompt) Run() (string, error) {
	return p.RunWithContext(context.Background())
}

// RunWithContext reads one line interactively, supporting cancellation via
// ctx. It returns the submitted line, or ErrInterrupted on Ctrl+C, ErrEOF
// on Ctrl+D or input exhaustion, and the context error on cancellation.
func (p *Prompt) RunWithContext(ctx context.Context) (string, error) {
	if err := p.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	restored := false
	defer func() {
		if !restored {
			if err := p.terminal.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
			}
		}
	}()

	p.editor.Reset()
	if err := p.draw(Render{}); err != nil {
		return "", err
	}

	encoded := make([]byte, utf8.UTFMax)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		r, _, err := p.terminal.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		n := utf8.EncodeRune(encoded, r)
		outcome := p.editor.Feed(encoded[:n])
		switch outcome.Kind {
		case OutcomeSubmitted:
			p.renderer.clearMenu()
			fmt.Fprint(p.output, "\r\n")
			p.persist(outcome.Line)
			return outcome.Line, nil

		case OutcomeInterrupted:
			if err := p.terminal.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
			}
			restored = true
			fmt.Fprint(p.output, "^C\r\n")
			return "", ErrInterrupted

		case OutcomeEOF:
			fmt.Fprint(p.output, "\r\n")
			return "", ErrEOF

		default:
			if err := p.draw(outcome.Render); err != nil {
				return "", err
			}
		}
	}
}

func (p *Prompt) draw(fr Render) error {
	if err := p.renderer.draw(p.config.Prefix, fr); err != nil {
		return fmt.Errorf("failed to render prompt: %w", err)
	}
	return nil
}

// persist appends line to the history backend, mirroring the in-memory
// policy: empty lines and consecutive duplicates are not written.
func (p *Prompt) persist(line string) {
	if p.backend == nil || line == "" || line == p.lastSaved {
		return
	}
	if err := p.backend.Append(line); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to persist history: %v\n", err)
		return
	}
	p.lastSaved = line
}

// History returns a copy of the current in-memory history.
func (p *Prompt) History() []string {
	return p.editor.History().Entries()
}

// AddHistory adds a line to the in-memory history, subject to the usual
// empty/duplicate policy.
func (p *Prompt) AddHistory(line string) {
	p.editor.History().Push(line)
}

// SetHistory replaces the in-memory history.
func (p *Prompt) SetHistory(lines []string) {
	p.editor.History().SetEntries(lines)
}

// ClearHistory clears the in-memory history.
func (p *Prompt) ClearHistory() {
	p.editor.History().Clear()
}

// SetPrefix changes the prompt prefix.
func (p *Prompt) SetPrefix(prefix string) {
	p.config.Prefix = prefix
}

// Editor returns the underlying editor, for hosts that need direct access
// to the state machine (for example to bind a custom accept key).
func (p *Prompt) Editor() *Editor {
	return p.editor
}

// Close restores cursor visibility, closes the history backend, and
// releases the terminal. It is safe to call multiple times; all cleanup
// steps run and their errors are aggregated.
func (p *Prompt) Close() error {
	var result *multierror.Error

	if p.output != nil {
		fmt.Fprint(p.output, "\x1b[?25h")
	}
	if p.backend != nil {
		if err := p.backend.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to close history backend: %w", err))
		}
		p.backend = nil
	}
	if p.terminal != nil {
		if err := p.terminal.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to close terminal: %w", err))
		}
	}
	return result.ErrorOrNil()
}
