package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling
var (
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Success prints a success message with green ✓ symbol
func Success(msg string, args ...interface{}) {
	fmt.Printf("%s %s\n", green("✓"), fmt.Sprintf(msg, args...))
}

// Error prints an error message with red ⚠ symbol
func Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", red("⚠"), fmt.Sprintf(msg, args...))
}

// Warning prints a warning message with yellow ! symbol
func Warning(msg string, args ...interface{}) {
	fmt.Printf("%s %s\n", yellow("!"), fmt.Sprintf(msg, args...))
}

// Info prints an informational message with cyan i symbol
func Info(msg string, args ...interface{}) {
	fmt.Printf("%s %s\n", cyan("i"), fmt.Sprintf(msg, args...))
}

// Action prints an action message with cyan → symbol
func Action(msg string, args ...interface{}) {
	fmt.Printf("%s %s\n", cyan("→"), fmt.Sprintf(msg, args...))
}
