// Command gridpick shows a picker catalog in a window or dumps its layout to
// the terminal.
package main

import (
	"log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
