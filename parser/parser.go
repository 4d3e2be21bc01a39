// Package parser builds a program.Program from the raw source lines the
// driver reads from stdin. It owns the lexer invocation and surfaces the
// first lexical failure as a *ParseError carrying the offending 1-based
// source line: a lex or parse error halts the engine before any execution
// runs, using that reported line.
package parser

import (
	"fmt"

	"github.com/dbgrin/grin/lexer"
	"github.com/dbgrin/grin/program"
)

// ParseError reports that lexing or parsing failed at a specific line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse tokenizes every line and assembles them into a program.Program.
// lines is 0-indexed as received from the driver; the returned program is
// 1-indexed, matching Grin's source line numbers.
func Parse(lines []string) (*program.Program, error) {
	statements := make([]program.Statement, len(lines)+1)
	for i, raw := range lines {
		lineNo := i + 1
		toks, err := lexer.New(raw, lineNo).Tokenize()
		if err != nil {
			return nil, &ParseError{Line: lineNo, Message: "FAILED TO PARSE INPUT"}
		}
		if len(toks) == 0 {
			return nil, &ParseError{Line: lineNo, Message: "FAILED TO PARSE INPUT"}
		}
		if err := validateStatement(program.Statement(toks), lineNo); err != nil {
			return nil, err
		}
		statements[lineNo] = program.Statement(toks)
	}
	return program.Build(statements), nil
}

// validateStatement checks the effective (label-stripped) statement against
// the token shape its leading keyword requires, so every malformed or
// unrecognized line is rejected here rather than panicking deep inside the
// engine's dispatcher.
func validateStatement(s program.Statement, line int) error {
	eff := s.Effective()
	if len(eff) == 0 {
		return parseErr(line)
	}
	switch eff[0].Kind {
	case lexer.RETURN, lexer.END:
		return requireArity(eff, line, 1)
	case lexer.PRINT:
		return requireRvalue(eff, line)
	case lexer.INSTR, lexer.INNUM:
		return requireIdent(eff, line)
	case lexer.LET, lexer.ADD, lexer.SUB, lexer.MULT, lexer.DIV:
		return requireIdentRvalue(eff, line)
	case lexer.GOTO, lexer.GOSUB:
		return requireJump(eff, line)
	default:
		return parseErr(line)
	}
}

func parseErr(line int) *ParseError {
	return &ParseError{Line: line, Message: "FAILED TO PARSE INPUT"}
}

func requireArity(eff program.Statement, line, n int) error {
	if len(eff) != n {
		return parseErr(line)
	}
	return nil
}

// requireRvalue checks "KEYWORD rvalue", e.g. PRINT.
func requireRvalue(eff program.Statement, line int) error {
	if len(eff) != 2 || !isRvalue(eff[1].Kind) {
		return parseErr(line)
	}
	return nil
}

// requireIdent checks "KEYWORD ident", e.g. INSTR/INNUM.
func requireIdent(eff program.Statement, line int) error {
	if len(eff) != 2 || eff[1].Kind != lexer.IDENTIFIER {
		return parseErr(line)
	}
	return nil
}

// requireIdentRvalue checks "KEYWORD ident rvalue", e.g. LET/ADD/SUB/MULT/DIV.
func requireIdentRvalue(eff program.Statement, line int) error {
	if len(eff) != 3 || eff[1].Kind != lexer.IDENTIFIER || !isRvalue(eff[2].Kind) {
		return parseErr(line)
	}
	return nil
}

// requireJump checks "KEYWORD jumpop" or "KEYWORD jumpop IF rvalue relop
// rvalue", e.g. GOTO/GOSUB.
func requireJump(eff program.Statement, line int) error {
	if len(eff) < 2 || !isJumpOperand(eff[1].Kind) {
		return parseErr(line)
	}
	switch len(eff) {
	case 2:
		return nil
	case 6:
		if eff[2].Kind != lexer.IF || !isRvalue(eff[3].Kind) || !isRelOp(eff[4].Kind) || !isRvalue(eff[5].Kind) {
			return parseErr(line)
		}
		return nil
	default:
		return parseErr(line)
	}
}

func isRvalue(k lexer.Kind) bool {
	switch k {
	case lexer.IDENTIFIER, lexer.LITERAL_INTEGER, lexer.LITERAL_FLOAT, lexer.LITERAL_STRING:
		return true
	}
	return false
}

// isJumpOperand excludes LITERAL_FLOAT: a jump target is an integer offset,
// a string label, or an identifier holding either.
func isJumpOperand(k lexer.Kind) bool {
	switch k {
	case lexer.IDENTIFIER, lexer.LITERAL_INTEGER, lexer.LITERAL_STRING:
		return true
	}
	return false
}

func isRelOp(k lexer.Kind) bool {
	switch k {
	case lexer.LESS_THAN, lexer.LESS_THAN_OR_EQUAL, lexer.GREATER_THAN, lexer.GREATER_THAN_OR_EQUAL, lexer.EQUAL, lexer.NOT_EQUAL:
		return true
	}
	return false
}
