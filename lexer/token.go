// Package lexer implements tokenization of Grin source lines.
//
// A Grin program is supplied line by line; each line is tokenized in
// isolation (Grin statements never span lines), producing the flat token
// stream the parser consumes to build a program.Program.
package lexer

import "fmt"

// Kind identifies the lexical category of a Token. It is defined as a
// string to make debugging and test fixtures readable.
type Kind string

const (
	// Commands
	LET    Kind = "LET"
	PRINT  Kind = "PRINT"
	INNUM  Kind = "INNUM"
	INSTR  Kind = "INSTR"
	ADD    Kind = "ADD"
	SUB    Kind = "SUB"
	MULT   Kind = "MULT"
	DIV    Kind = "DIV"
	GOTO   Kind = "GOTO"
	GOSUB  Kind = "GOSUB"
	RETURN Kind = "RETURN"
	END    Kind = "END"
	IF     Kind = "IF"

	// Punctuation
	COLON Kind = "COLON"

	// Literals
	LITERAL_INTEGER Kind = "LITERAL_INTEGER"
	LITERAL_FLOAT   Kind = "LITERAL_FLOAT"
	LITERAL_STRING  Kind = "LITERAL_STRING"

	// Names
	IDENTIFIER Kind = "IDENTIFIER"

	// Relational operators
	LESS_THAN             Kind = "LESS_THAN"
	LESS_THAN_OR_EQUAL    Kind = "LESS_THAN_OR_EQUAL"
	GREATER_THAN          Kind = "GREATER_THAN"
	GREATER_THAN_OR_EQUAL Kind = "GREATER_THAN_OR_EQUAL"
	EQUAL                 Kind = "EQUAL"
	NOT_EQUAL             Kind = "NOT_EQUAL"

	// End-of-program sentinel. The "." terminator is consumed by the driver
	// before any line reaches the lexer; DOT exists for completeness and is
	// recognized defensively.
	DOT Kind = "DOT"
)

// keywords maps the reserved, case-sensitive command spellings to their
// token Kind. Anything else that looks like an identifier is IDENTIFIER.
var keywords = map[string]Kind{
	"LET":    LET,
	"PRINT":  PRINT,
	"INNUM":  INNUM,
	"INSTR":  INSTR,
	"ADD":    ADD,
	"SUB":    SUB,
	"MULT":   MULT,
	"DIV":    DIV,
	"GOTO":   GOTO,
	"GOSUB":  GOSUB,
	"RETURN": RETURN,
	"END":    END,
	"IF":     IF,
}

// lookupIdent classifies a bare word as a keyword Kind or IDENTIFIER.
func lookupIdent(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return IDENTIFIER
}

// Token is the consumed view of the lexer's output: the engine dispatches
// on Kind, reads Value for literal payloads and for an identifier's
// spelling, falls back to Text for the raw spelling, and uses Line for
// error reports and for computing integer GOTO/GOSUB targets.
type Token struct {
	Kind  Kind        // category used for dispatch
	Text  string      // raw spelling as it appeared in the source line
	Value interface{} // literal payload (int64, float64, string) or identifier spelling
	Line  int         // 1-based source line
}

// NewToken builds a Token with no literal payload, e.g. for keywords and
// punctuation where Text alone is sufficient.
func NewToken(kind Kind, text string, line int) Token {
	return Token{Kind: kind, Text: text, Line: line}
}

// IntValue returns the token's literal payload as an int64. It panics if
// the token is not a LITERAL_INTEGER; callers must check Kind first.
func (t Token) IntValue() int64 {
	return t.Value.(int64)
}

// FloatValue returns the token's literal payload as a float64. It panics if
// the token is not a LITERAL_FLOAT; callers must check Kind first.
func (t Token) FloatValue() float64 {
	return t.Value.(float64)
}

// StrValue returns the token's literal payload (for LITERAL_STRING) or
// spelling (for IDENTIFIER) as a string.
func (t Token) StrValue() string {
	return t.Value.(string)
}

// String renders the token as "literal:kind" for debug printing.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Text, t.Kind)
}
