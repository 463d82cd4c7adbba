// Package satpack converts an arbitrary binary stream into framed,
// forward-error-corrected, serial-transportable packets for a half-duplex
// radio link such as a satellite downlink.
//
// Each input chunk passes through three stages:
//
//	AX.25 UI frame  ->  FX.25 RS(255,223) codeword  ->  KISS frame
//
// Everything happens in memory.  No scratch files, bounded buffers, one
// chunk in flight at a time.  This matters on the intended hosts (BeagleBone
// class flight computers) where flash wear and RAM are real constraints.
package satpack

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
)

// Diagnostics go to stderr so they never mix with KISS output on stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// SetLogger replaces the package logger.  Mostly for the CLI to install
// one with its preferred verbosity.
func SetLogger(l *log.Logger) {
	logger = l
}

// Can't be "assert" because of conflicts with stretchr/testify/assert, but otherwise, it's compatible enough
func Assert(t bool) {
	if !t {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("Assertion failed at %s:%d", file, line))
	}
}
