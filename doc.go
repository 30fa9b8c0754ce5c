/*
Package solitaire is a rules engine for Klondike solitaire driven by short
text commands.

The engine owns one game at a time: seven tableau columns, four foundation
stacks, and the stock with its waste. Every input line is parsed into a
typed command, validated against the Klondike placement rules and applied
atomically. A rejected move leaves the game exactly as it was.

# Concept

The engine never prints. Each call to Execute returns a domain.Outcome that
lists the messages to show and whether the board changed; hosts such as
pkg/runner decide how to render it. This keeps the rules testable with
plain strings and lets the same engine back a terminal, a script, or a test.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/solitaire"
	)

	func main() {
		eng, err := solitaire.New(solitaire.WithSeed(42))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		for _, line := range []string{"m", "w", "t 1 2", "q"} {
			out, err := eng.Execute(ctx, line)
			if err != nil {
				log.Fatal(err)
			}
			for _, msg := range out.Messages {
				fmt.Println(msg.Text)
			}
			if out.Quit {
				break
			}
		}
	}

# Commands

See pkg/command for the grammar. Columns are typed 1 to 7 and foundation
suits 1 to 4 (♠ ♥ ♦ ♣).
*/
package solitaire
