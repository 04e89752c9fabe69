package main

import (
	"fmt"
	"os"
	"strings"

	"griddle/commands"
)

const CliVersion = "1.0.0"

// exit is swappable so tests can intercept termination.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the top-level CLI commands.
func RealMain() {
	if len(os.Args) < 2 {
		commands.PrintHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		commands.PrintHelp()
	case "version":
		fmt.Printf("griddle version %s\n", CliVersion)
	case "serve", "clean", "init", "backup", "restore":
		commands.HandleCommand(os.Args[1:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		commands.PrintHelp()
		exit(1)
	}
}
