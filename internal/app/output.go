package app

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const ttyPath = "/dev/tty"

// programOutput picks where the UI is drawn. stdout carries the outcome, so
// when it is redirected the UI goes to the controlling terminal, or to stderr
// when there is none. The returned func releases whatever was opened.
func programOutput(stdout *os.File, openTTY func() (*os.File, error)) (io.Writer, func() error) {
	if stdout != nil && term.IsTerminal(int(stdout.Fd())) {
		return stdout, noClose
	}
	if openTTY != nil {
		if tty, err := openTTY(); err == nil && tty != nil {
			return tty, tty.Close
		}
	}
	return os.Stderr, noClose
}

func openControllingTTY() (*os.File, error) {
	return os.OpenFile(ttyPath, os.O_WRONLY, 0)
}

// matchColorProfile makes styles detect colour support on out rather than
// on stdout.
func matchColorProfile(out io.Writer) {
	if out == io.Writer(os.Stdout) {
		return
	}
	lipgloss.SetColorProfile(lipgloss.NewRenderer(out).ColorProfile())
}

func noClose() error { return nil }
