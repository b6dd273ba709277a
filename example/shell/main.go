// Package main provides a tiny shell built on the command tree completer:
// words are split with quoting rules, the command tree drives completion,
// and a few built-in commands are dispatched on submission.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nao1215/lineedit"
)

func main() {
	fmt.Println("Mini Shell Example")
	fmt.Println("==================")
	fmt.Println("Commands:")
	fmt.Println("  print [args]  - print arguments, one per line")
	fmt.Println("  echo [args]   - print arguments on one line")
	fmt.Println("  cat [files]   - show file contents")
	fmt.Println("  exit          - exit")
	fmt.Println()
	fmt.Println("Use Tab for command and flag completion")
	fmt.Println("Quoting works: print \"A B C\" is a single argument")
	fmt.Println()

	cmds := lineedit.Commands{
		lineedit.NewCommand("print"),
		lineedit.NewCommand("echo").Flag("-n"),
		lineedit.NewCommand("cat").Flag("--number"),
		lineedit.NewCommand("exit"),
	}

	p, err := lineedit.New("shell> ",
		lineedit.WithCommands(cmds),
		lineedit.WithMemoryHistory(1000),
	)
	if err != nil {
		log.Fatalf("failed to create prompt: %v", err)
	}
	defer p.Close()

	for {
		result, err := p.Run()
		if err != nil {
			if errors.Is(err, lineedit.ErrEOF) {
				fmt.Println("\nGoodbye!")
				break
			}
			if errors.Is(err, lineedit.ErrInterrupted) {
				continue
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		if state := lineedit.ScanQuotes(result); state.WhitespaceEscaped() {
			fmt.Println("Error: unterminated quoting")
			continue
		}

		words := lineedit.Split(result)
		if len(words) == 0 {
			continue
		}
		if words[0] == "exit" {
			fmt.Println("Goodbye!")
			break
		}

		executeCommand(words[0], words[1:])
	}
}

func executeCommand(cmd string, args []string) {
	switch cmd {
	case "print":
		for _, arg := range args {
			fmt.Println(arg)
		}

	case "echo":
		newline := true
		if len(args) > 0 && args[0] == "-n" {
			newline = false
			args = args[1:]
		}
		fmt.Print(strings.Join(args, " "))
		if newline {
			fmt.Println()
		}

	case "cat":
		number := false
		if len(args) > 0 && args[0] == "--number" {
			number = true
			args = args[1:]
		}
		for _, name := range args {
			content, err := os.ReadFile(name)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if number {
				for i, line := range strings.Split(strings.TrimRight(string(content), "\n"), "\n") {
					fmt.Printf("%6d  %s\n", i+1, line)
				}
			} else {
				fmt.Print(string(content))
			}
		}

	default:
		fmt.Printf("unknown command: %s\n", cmd)
	}
}
