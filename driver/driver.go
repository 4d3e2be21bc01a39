// Package driver wires the lexer, parser, and engine together the way
// original_source/new-lang/project3.py's main() does: read source lines
// from stdin until a "." terminator, parse them into a program, then run
// the engine against the same input stream for any subsequent INSTR/INNUM
// reads.
package driver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dbgrin/grin/config"
	"github.com/dbgrin/grin/engine"
	"github.com/dbgrin/grin/lexer"
	"github.com/dbgrin/grin/parser"
)

// scannerReader adapts a shared *bufio.Scanner to engine.LineReader so the
// engine's INSTR/INNUM reads continue exactly where program-line reading
// left off, rather than re-buffering the stream.
type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// ReadProgramLines reads from scanner until a line whose trimmed content is
// a single period; that terminator line is consumed but not returned.
func ReadProgramLines(scanner *bufio.Scanner) []string {
	var lines []string
	for scanner.Scan() {
		raw := scanner.Text()
		if lexer.TrimTerminator(raw) {
			return lines
		}
		lines = append(lines, raw)
	}
	return lines
}

// Run executes one full Grin session: read program text from in (until the
// "." terminator), parse it, and run it with any remaining input from in
// feeding INSTR/INNUM, writing PRINT output and error reports to out. It
// returns the process exit code: 0 on normal end, non-zero on a parse or
// runtime halt.
func Run(in io.Reader, out io.Writer, cfg config.Config) int {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := ReadProgramLines(scanner)
	return RunProgram(lines, &scannerReader{scanner: scanner}, out, cfg)
}

// RunProgram parses lines and runs them, reading any INSTR/INNUM input from
// in and writing PRINT output and error reports to out. It is the part of
// Run that doesn't care where the program lines came from, so a front end
// that already collected lines itself (replio's readline session) can reuse
// it without going through a bufio.Scanner.
func RunProgram(lines []string, in engine.LineReader, out io.Writer, cfg config.Config) int {
	prog, err := parser.Parse(lines)
	if err != nil {
		if perr, ok := err.(*parser.ParseError); ok {
			fmt.Fprintf(out, "ERROR AT LINE %d: %s\n", perr.Line, perr.Message)
			return 1
		}
		fmt.Fprintf(out, "ERROR AT LINE 0: FAILED TO PARSE INPUT\n")
		return 1
	}

	e := engine.New(prog, cfg.RecursionDepth, in, engine.NewLineWriter(out))
	if rerr := e.Run(); rerr != nil {
		return 1
	}
	return 0
}
