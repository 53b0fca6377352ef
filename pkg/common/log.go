// Package common holds small, dependency-light helpers shared across
// commands: logging and the resolved worker count.
package common

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// VerboseEnabled controls whether verbose output is shown. Set from the
// root command's --verbose flag.
var VerboseEnabled = false

// Workers holds the resolved --workers value, set once by the root
// command's PersistentPreRunE so subcommand packages can read it without
// importing cmd (which would cycle back to them).
var Workers = 1

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// Info prints a message to stdout, always shown.
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		fmt.Println("[verbose] " + fmt.Sprintf(format, args...))
	}
}

// Error prints a colored error message to stderr, always shown.
func Error(format string, args ...interface{}) {
	errorColor.Fprintln(os.Stderr, "error: "+fmt.Sprintf(format, args...))
}

// Warning prints a colored warning message to stdout, always shown.
func Warning(format string, args ...interface{}) {
	warningColor.Fprintln(os.Stdout, "warning: "+fmt.Sprintf(format, args...))
}
