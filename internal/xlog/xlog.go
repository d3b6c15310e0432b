// Package xlog is the logging helper used by cmd/htddecomp: a single
// package-level *log.Logger toggled between stderr and discarded output.
package xlog

import (
	"io"
	"log"
	"os"
)

var logger = log.New(io.Discard, "", 0)

// SetVerbose switches the shared logger between stderr and discarded
// output.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(io.Discard)
	}
}

// Printf logs a formatted line through the shared logger.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Println logs a line through the shared logger.
func Println(args ...any) {
	logger.Println(args...)
}
