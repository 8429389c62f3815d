// Package log provides file-backed logging plus an env-gated debug mode
// with frame profiling. Enable debug traces by setting HERMES_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger

	logFile *os.File
)

var logFileName = filepath.Join(os.TempDir(), "hermesgcs.log")

func init() {
	// Loggers are usable before Initialize; output just goes nowhere.
	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
}

// Initialize opens the log file and wires the shared loggers. The TUI owns
// stdout, so everything goes to the file; callers that run headless (the
// debug subcommand) still get the same destinations.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Fall back to discard rather than panicking: logging must never
		// take the console down.
		fmt.Fprintf(os.Stderr, "could not open log file: %s\n", err)
		InfoLog = log.New(io.Discard, "", 0)
		WarningLog = log.New(io.Discard, "", 0)
		ErrorLog = log.New(io.Discard, "", 0)
		InitDebug()
		return
	}
	logFile = f
	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(f, "INFO: ", flags)
	WarningLog = log.New(f, "WARNING: ", flags)
	ErrorLog = log.New(f, "ERROR: ", flags)
	InitDebug()
}

// Close flushes and closes the log file.
func Close() {
	CloseDebug()
	if logFile != nil {
		_ = logFile.Close()
	}
}
