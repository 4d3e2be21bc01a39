// Package replio is the interactive, history-backed front end used when
// stdin is a terminal. Go-Mix's repl package plays the equivalent role for
// a per-line eval loop; Grin has no such loop, so a session instead reads
// program lines until the "." terminator (driver.ReadProgramLines's
// contract), then keeps serving the same readline.Instance as the
// engine's INSTR/INNUM source, so a user typing a program and its input
// sees one continuous line-edited session.
package replio

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/dbgrin/grin/lexer"
)

var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Banner carries the startup banner text a Session prints before reading
// any program lines.
type Banner struct {
	Art     string
	Version string
	Author  string
	License string
	Rule    string
}

// Session is an interactive Grin front end: a readline.Instance used both
// to collect program source lines and, afterward, to satisfy the engine's
// LineReader interface for INSTR/INNUM.
type Session struct {
	rl     *readline.Instance
	banner Banner
}

// New opens a readline.Instance with the given prompt and history file.
// historyFile may be empty to disable persistent history.
func New(prompt, historyFile string, banner Banner) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".",
	})
	if err != nil {
		return nil, err
	}
	return &Session{rl: rl, banner: banner}, nil
}

// Close releases the underlying terminal state.
func (s *Session) Close() error {
	return s.rl.Close()
}

// PrintBanner writes the startup banner, one color per section, the way
// Go-Mix's Repl.PrintBannerInfo does.
func (s *Session) PrintBanner() {
	out := s.rl.Stdout()
	blueColor.Fprintf(out, "%s\n", s.banner.Rule)
	greenColor.Fprintf(out, "%s\n", s.banner.Art)
	blueColor.Fprintf(out, "%s\n", s.banner.Rule)
	yellowColor.Fprintf(out, "Version: %s | Author: %s | License: %s\n", s.banner.Version, s.banner.Author, s.banner.License)
	blueColor.Fprintf(out, "%s\n", s.banner.Rule)
	cyanColor.Fprintln(out, "Enter a Grin program, one statement per line.")
	cyanColor.Fprintln(out, "Finish with a line containing a single '.'")
	cyanColor.Fprintln(out, "Use up/down arrows to navigate history.")
	blueColor.Fprintf(out, "%s\n", s.banner.Rule)
}

// ReadProgramLines reads lines from the terminal until one whose trimmed
// content is a single period, matching driver.ReadProgramLines's contract.
// Ctrl-D or Ctrl-C before the terminator ends entry with whatever was typed
// so far.
func (s *Session) ReadProgramLines() []string {
	var lines []string
	for {
		line, err := s.rl.Readline()
		if err != nil {
			return lines
		}
		if lexer.TrimTerminator(line) {
			return lines
		}
		lines = append(lines, line)
	}
}

// ReadLine implements engine.LineReader so a Session can directly back
// INSTR/INNUM once program entry is complete.
func (s *Session) ReadLine() (string, error) {
	line, err := s.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
