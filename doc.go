// Package lineedit provides the reusable engine behind shell-like
// interactive prompts, as seen in tools like nslookup or shelldap.
//
// The heart of the package is the Editor: a state machine that consumes
// raw input bytes, maintains an editable line with a cursor, browses
// history, and drives tab completion. The Editor never touches a terminal;
// it returns declarative render instructions and terminal outcomes
// (a submitted line, an interrupt, end of input) that the host acts on.
// A host can therefore embed the engine behind any transport: a real tty,
// an SSH channel, or a test harness feeding scripted bytes.
//
// Embedding the engine directly:
//
//	editor := lineedit.NewEditor(lineedit.StaticProvider([]string{"print", "printf"}))
//	for {
//		outcome := editor.Feed(readBytesSomehow())
//		switch outcome.Kind {
//		case lineedit.OutcomeSubmitted:
//			handle(outcome.Line)
//		case lineedit.OutcomeEOF, lineedit.OutcomeInterrupted:
//			return
//		default:
//			redraw(outcome.Render)
//		}
//	}
//
// For the common case of a real terminal, the package also bundles a
// Prompt front end that handles raw mode, rune input, colored rendering,
// and history persistence:
//
//	package main
//
//	import (
//		"errors"
//		"fmt"
//		"log"
//
//		"github.com/nao1215/lineedit"
//	)
//
//	func main() {
//		p, err := lineedit.New("> ",
//			lineedit.WithCommands(lineedit.Commands{
//				lineedit.NewCommand("print"),
//				lineedit.NewCommand("exit"),
//			}),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		for {
//			line, err := p.Run()
//			if errors.Is(err, lineedit.ErrEOF) {
//				return
//			}
//			if err != nil {
//				log.Fatal(err)
//			}
//			fmt.Printf("You entered: %s\n", line)
//		}
//	}
//
// Key handling:
//
// Input bytes are decoded through a configurable KeyMap. The defaults
// cover Enter, Ctrl+C, Ctrl+D, Tab completion, Backspace/Delete, arrow
// keys (cursor movement and history browsing), Home/End, Ctrl+A/E/K/U/W,
// and Alt+Backspace. Unrecognized escape sequences are consumed and
// reported as recoverable errors; they never derail the session.
//
// Completion:
//
// A Provider maps the word before the cursor to candidate strings. With a
// single candidate the word is completed in place. With several, the line
// is extended to their longest common prefix and a candidate menu opens;
// further Tab presses cycle the highlighted candidate, and Enter commits
// it. The Commands type builds a provider from a tree of commands, flags,
// and subcommands.
//
// History:
//
// Submitted lines accumulate in memory (empty lines and consecutive
// duplicates are skipped) and can be persisted through a plain-text file
// (WithHistoryFile) or any HistoryBackend, such as the bbolt-backed store
// subpackage. Arrow-up browsing snapshots the in-progress line and
// arrow-down past the newest entry restores it exactly.
//
// Concurrency:
//
// An Editor or Prompt is not safe for concurrent use: it processes one key
// to completion before the next and must not be shared across goroutines.
// Run a separate instance per prompt. Prompt.RunWithContext supports
// cancellation from other goroutines via the context.
package lineedit
