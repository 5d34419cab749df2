package main

import (
	"os"

	"github.com/Makepad-fr/todolist/internal/cli"
)

func main() {
	// No subcommand => interactive TUI; see `todo --help`.
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
