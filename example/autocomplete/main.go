// Package main demonstrates tab completion with a completion provider.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/lineedit"
)

func main() {
	fmt.Println("Autocomplete Example")
	fmt.Println("====================")
	fmt.Println("Press Tab to complete; press Tab again to cycle candidates")
	fmt.Println("Type 'exit' to quit")
	fmt.Println()

	provider := lineedit.StaticProvider([]string{
		"help", "list", "create", "delete", "update", "status", "exit",
	})

	p, err := lineedit.New("app> ",
		lineedit.WithProvider(provider),
		lineedit.WithColorScheme(lineedit.ThemeMonokai),
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
		case "help":
			fmt.Println("Available commands: help, list, create, delete, update, status, exit")
		case "status":
			fmt.Println("Status: Running")
		case "list":
			fmt.Println("Items: item1, item2, item3")
		default:
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
