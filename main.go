package main

import (
	"htmljs-lsp/commands"

	"github.com/tebeka/atexit"
)

func main() {
	commands.Execute()
	atexit.Exit(0)
}
