// Package main demonstrates persistent history backed by a bbolt database.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/lineedit"
	"github.com/nao1215/lineedit/store"
)

func main() {
	dbPath := filepath.Join(os.TempDir(), "lineedit-example-history.db")

	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("History Example with Database Persistence")
	fmt.Println("Use Up/Down arrow keys to navigate history")
	fmt.Println("Type 'history' to see command history")
	fmt.Println("Type 'clear' to clear the in-memory history")
	fmt.Println("Type 'exit' to exit")
	fmt.Printf("History is saved to %s\n", dbPath)
	fmt.Println()

	// The prompt takes ownership of the store and closes it in Close.
	// A plain-text file works too: lineedit.WithHistoryFile(lineedit.DefaultHistoryFile()).
	p, err := lineedit.New("history> ",
		lineedit.WithHistoryBackend(db),
	)
	if err != nil {
		log.Fatal(err)
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

		result = strings.TrimSpace(result)
		if result == "" {
			continue
		}

		switch result {
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "history":
			fmt.Println("Command History:")
			for i, cmd := range p.History() {
				fmt.Printf("  %3d: %s\n", i+1, cmd)
			}
		case "clear":
			p.ClearHistory()
			fmt.Println("History cleared")
		default:
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
