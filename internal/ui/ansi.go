package ui

import (
	"fmt"
	"os"
)

// Raw ANSI escapes. The TUI renders through lipgloss; these cover the
// plain CLI output path where a full style engine is overkill.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

const (
	symAdded  = "✔"
	symFailed = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides TTY detection: force paints even into a
// pipe, disable strips color everywhere (the mono theme sets it too).
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in color when stdout wants it.
func C(color, s string) string {
	if disableColor {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

// Dim renders s faint; quote list indexes and hints use it.
func Dim(s string) string { return C(dim, s) }

// OK and Fail are the notification capability quote operations report
// through: OK on stdout, Fail on stderr.
func OK(msg string)   { fmt.Println(C(fgGreen, symAdded+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(os.Stderr, C(fgRed, symFailed+" "+msg)) }
