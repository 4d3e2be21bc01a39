package engine

import (
	"github.com/dbgrin/grin/lexer"
	"github.com/dbgrin/grin/program"
	"github.com/dbgrin/grin/value"
)

// JumpKind distinguishes GOTO from GOSUB for the dispatcher. It avoids
// reproducing the GoTo/GoSub inheritance relationship of
// original_source/new-lang/grin/go.py: JumpKind plus the explicit
// CallStack deliver the same behavior without a class hierarchy.
type JumpKind int

const (
	Goto JumpKind = iota
	Gosub
)

// resolveTarget classifies the jump operand (integer literal, string
// literal label, or identifier holding either) and computes the 1-based
// next line, relative to the source line of the jump statement itself.
func resolveTarget(prog *program.Program, env valueGetter, stmt program.Statement, sourceLine int) (int, *RuntimeError) {
	operand := stmt[1]
	switch operand.Kind {
	case lexer.LITERAL_INTEGER:
		return resolveOffset(prog, sourceLine, operand.IntValue(), sourceLine)
	case lexer.LITERAL_STRING:
		return resolveLabel(prog, operand.StrValue(), sourceLine)
	case lexer.IDENTIFIER:
		return resolveIdentifierTarget(prog, env, operand.StrValue(), sourceLine)
	default:
		return 0, newRuntimeError(OutOfBoundsKind, sourceLine)
	}
}

// valueGetter is the subset of *env.Environment the jump resolver needs;
// it is an interface purely to keep this file testable without importing
// the env package's concrete type into its own tests.
type valueGetter interface {
	Get(name string) value.Value
	Has(name string) bool
}

func resolveOffset(prog *program.Program, anchorLine int, offset int64, reportLine int) (int, *RuntimeError) {
	if offset == 0 {
		// Would be an infinite self-loop; detected statically instead of
		// letting the dispatcher spin forever.
		return 0, newRuntimeError(OutOfBoundsKind, reportLine)
	}
	next := int64(anchorLine) + offset
	if next < 1 || next > int64(prog.Len()+1) || !prog.InBounds(int(next)) {
		return 0, newRuntimeError(OutOfBoundsKind, reportLine)
	}
	return int(next), nil
}

func resolveLabel(prog *program.Program, name string, reportLine int) (int, *RuntimeError) {
	if line, ok := prog.Labels[name]; ok {
		return line, nil
	}
	// An unknown label has no dedicated error kind in the fixed taxonomy;
	// an unresolvable target is reported as OutOfBounds (see DESIGN.md's
	// Open Question decisions).
	return 0, newRuntimeError(OutOfBoundsKind, reportLine)
}

func resolveIdentifierTarget(prog *program.Program, env valueGetter, name string, sourceLine int) (int, *RuntimeError) {
	if !env.Has(name) {
		// Absent identifier reads as Int(0), and offset 0 is always
		// OutOfBounds.
		return resolveOffset(prog, sourceLine, 0, sourceLine)
	}
	switch v := env.Get(name).(type) {
	case value.Int:
		return resolveOffset(prog, sourceLine, v.Value, sourceLine)
	case value.Str:
		return resolveLabel(prog, v.Value, sourceLine)
	case value.Float:
		// Underspecified: "numeric treatment applies" to a Float-valued
		// jump target without saying how. Truncate toward zero and treat
		// it as an integer offset.
		return resolveOffset(prog, sourceLine, int64(v.Value), sourceLine)
	default:
		return 0, newRuntimeError(OutOfBoundsKind, sourceLine)
	}
}

// guardPasses evaluates the optional "IF lhs op rhs" suffix of a GOTO/GOSUB
// statement. stmt is the effective (label-stripped) statement; a bare
// GOTO/GOSUB with no IF suffix always passes.
func guardPasses(env valueGetter, stmt program.Statement, line int) (bool, *RuntimeError) {
	if len(stmt) <= 2 {
		return true, nil
	}
	// Tokens: [GOTO/GOSUB target IF lhs op rhs]
	lhsTok := stmt[3]
	opTok := stmt[4]
	rhsTok := stmt[5]

	lhs := resolveOperand(env, lhsTok)
	rhs := resolveOperand(env, rhsTok)
	op := relOpFor(opTok.Kind)

	ok, err := value.Compare(lhs, op, rhs)
	if err != nil {
		return false, newRuntimeError(CompareTypeKind, line)
	}
	return ok, nil
}

func relOpFor(k lexer.Kind) value.RelOp {
	switch k {
	case lexer.LESS_THAN:
		return value.LessThan
	case lexer.LESS_THAN_OR_EQUAL:
		return value.LessThanOrEqual
	case lexer.GREATER_THAN:
		return value.GreaterThan
	case lexer.GREATER_THAN_OR_EQUAL:
		return value.GreaterThanOrEqual
	case lexer.EQUAL:
		return value.Equal
	default:
		return value.NotEqual
	}
}

// resolveOperand reads an rvalue token: an identifier reads via
// default-on-read, a literal yields its typed value directly.
func resolveOperand(env valueGetter, tok lexer.Token) value.Value {
	switch tok.Kind {
	case lexer.IDENTIFIER:
		return env.Get(tok.StrValue())
	case lexer.LITERAL_INTEGER:
		return value.Int{Value: tok.IntValue()}
	case lexer.LITERAL_FLOAT:
		return value.Float{Value: tok.FloatValue()}
	case lexer.LITERAL_STRING:
		return value.Str{Value: tok.StrValue()}
	default:
		return value.Default()
	}
}
