// Package program implements the parsed, 1-indexed Grin program model: an
// ordered statement table, a label→line index, and label-prefix stripping.
package program

import "github.com/dbgrin/grin/lexer"

// Statement is the ordered token sequence of one source line, optionally
// prefixed by an "IDENTIFIER COLON" label definition.
type Statement []lexer.Token

// HasLabel reports whether s begins with "IDENTIFIER COLON".
func (s Statement) HasLabel() bool {
	return len(s) >= 2 && s[0].Kind == lexer.IDENTIFIER && s[1].Kind == lexer.COLON
}

// LabelName returns the label name prefixing s. Callers must check
// HasLabel first.
func (s Statement) LabelName() string {
	return s[0].StrValue()
}

// Effective returns s with any leading "label :" prefix stripped.
func (s Statement) Effective() Statement {
	if s.HasLabel() {
		return s[2:]
	}
	return s
}

// Program is the ordered, 1-indexed table of parsed statements plus the
// label index built over it.
type Program struct {
	// Statements is indexed 1..len(Statements); index 0 is unused so that
	// line numbers can be used directly as indices.
	Statements []Statement
	Labels     map[string]int
}

// Build constructs a Program from a 1-indexed slice of raw statements
// (index 0 must be a nil placeholder), recording the line index of every
// label definition. Duplicate label names: last definition wins (see
// DESIGN.md's Open Question resolution).
func Build(statements []Statement) *Program {
	p := &Program{
		Statements: statements,
		Labels:     make(map[string]int),
	}
	for line := 1; line < len(statements); line++ {
		s := statements[line]
		if s.HasLabel() {
			p.Labels[s.LabelName()] = line
		}
	}
	return p
}

// Len returns the number of statements in the program (not counting the
// unused index-0 placeholder).
func (p *Program) Len() int {
	return len(p.Statements) - 1
}

// Effective returns the effective (label-stripped) statement at the given
// 1-based line.
func (p *Program) Effective(line int) Statement {
	return p.Statements[line].Effective()
}

// InBounds reports whether line is a valid statement index or the
// past-the-end terminal value (Len()+1), the instruction pointer's
// natural halting position.
func (p *Program) InBounds(line int) bool {
	return line >= 1 && line <= p.Len()+1
}
