package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// How many ticks between two frame redraws. The scanner ticks once per
// directory entry, so drawing every tick would dominate the scan.
const spinnerTickInterval = 32

// Spinner is a minimal terminal spinner for operations of unknown length.
// It renders only when the writer is a TTY; otherwise every call is a no-op
// so piped output stays clean.
type Spinner struct {
	writer  io.Writer
	message string
	frame   int
	ticks   int
	enabled bool
}

func NewSpinner(writer io.Writer, message string) *Spinner {
	return &Spinner{
		writer:  writer,
		message: message,
		enabled: writerIsTTY(writer),
	}
}

func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

func (s *Spinner) SetMessage(message string) {
	if s == nil {
		return
	}
	s.message = message
	s.render()
}

func (s *Spinner) Tick() {
	if s == nil || !s.enabled {
		return
	}
	s.ticks++
	if s.ticks%spinnerTickInterval != 0 {
		return
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	s.render()
}

func (s *Spinner) render() {
	if s == nil || !s.enabled {
		return
	}
	frame := color.GreenString(spinnerFrames[s.frame])
	fmt.Fprintf(s.writer, "\r%s %s", frame, s.message)
}

// Finish clears the spinner line and prints a final message.
func (s *Spinner) Finish(message string) {
	if s == nil {
		return
	}
	s.clearLine()
	fmt.Fprintln(s.writer, message)
}

// Abandon clears the spinner line without a success message; the caller is
// expected to report the failure itself.
func (s *Spinner) Abandon() {
	if s == nil {
		return
	}
	s.clearLine()
}

func (s *Spinner) clearLine() {
	if !s.enabled {
		return
	}
	fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
}
