// Package main demonstrates basic usage of the lineedit prompt.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/lineedit"
)

func main() {
	p, err := lineedit.New(">>> ")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Basic Prompt Example")
	fmt.Println("Type 'exit' to exit, or press Ctrl+D")
	fmt.Println()

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

		if result == "exit" {
			fmt.Println("Goodbye!")
			break
		}

		fmt.Printf("You typed: %s\n", result)
	}
}
