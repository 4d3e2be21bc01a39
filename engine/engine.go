// Package engine implements the Grin execution engine: the statement
// dispatcher, instruction pointer, call stack, jump resolver, and error
// reporter. This is the core of the interpreter — everything else in this
// repository exists to feed it a program.Program and a stream of source
// lines.
package engine

import (
	"io"
	"strconv"

	"github.com/dbgrin/grin/env"
	"github.com/dbgrin/grin/lexer"
	"github.com/dbgrin/grin/program"
	"github.com/dbgrin/grin/value"
)

// Engine holds everything one Grin run needs: the immutable parsed
// program, the mutable environment and call stack, the instruction
// pointer, and the injected I/O adapters.
type Engine struct {
	Prog  *program.Program
	Env   *env.Environment
	Stack *CallStack
	IP    int

	In  LineReader
	Out LineWriter
}

// New creates an Engine ready to Run prog. maxRecursionDepth bounds GOSUB
// nesting (config.Config.RecursionDepth); in is read by INSTR/INNUM; out
// receives PRINT output and, on a halt, the single error line, since both
// share the same output stream.
func New(prog *program.Program, maxRecursionDepth int, in LineReader, out LineWriter) *Engine {
	return &Engine{
		Prog:  prog,
		Env:   env.New(),
		Stack: NewCallStack(maxRecursionDepth),
		IP:    1,
		In:    in,
		Out:   out,
	}
}

// Run executes the dispatcher loop until the program ends (IP past the
// last statement, an END, an empty-stack RETURN, or end of input on an
// INSTR/INNUM read) or a runtime error
// halts it. On a halt, the error is both returned and already reported to
// Out: errors halt the program immediately after writing a single line to
// the output stream.
func (e *Engine) Run() *RuntimeError {
	for e.IP <= e.Prog.Len() {
		line := e.IP
		stmt := e.Prog.Effective(line)
		if len(stmt) == 0 {
			e.IP++
			continue
		}
		halt, rerr := e.step(stmt, line)
		if rerr != nil {
			e.report(rerr)
			return rerr
		}
		if halt {
			return nil
		}
	}
	return nil
}

// step executes one statement. It returns halt=true when the program
// should stop running (END, RETURN with an empty call stack, or end of
// input on INSTR/INNUM).
func (e *Engine) step(stmt program.Statement, line int) (halt bool, rerr *RuntimeError) {
	switch stmt[0].Kind {
	case lexer.END:
		return true, nil

	case lexer.RETURN:
		target, ok := e.Stack.Pop()
		if !ok {
			return true, nil
		}
		e.IP = target
		return false, nil

	case lexer.LET:
		e.Env.Set(stmt[1].StrValue(), resolveOperand(e.Env, stmt[2]))
		e.IP++
		return false, nil

	case lexer.PRINT:
		e.write(resolveOperand(e.Env, stmt[1]).Display())
		e.IP++
		return false, nil

	case lexer.ADD, lexer.SUB, lexer.MULT, lexer.DIV:
		if err := e.doArithmetic(stmt, line); err != nil {
			return false, err
		}
		e.IP++
		return false, nil

	case lexer.INSTR:
		s, err := e.readLine()
		if err != nil {
			return true, nil
		}
		e.Env.Set(stmt[1].StrValue(), value.Str{Value: s})
		e.IP++
		return false, nil

	case lexer.INNUM:
		s, err := e.readLine()
		if err != nil {
			return true, nil
		}
		e.Env.Set(stmt[1].StrValue(), parseNumber(s))
		e.IP++
		return false, nil

	case lexer.GOTO:
		return false, e.jump(Goto, stmt, line)

	case lexer.GOSUB:
		return false, e.jump(Gosub, stmt, line)

	default:
		// parser.Parse rejects any leading keyword outside this switch.
		e.IP++
		return false, nil
	}
}

// jump evaluates a GOTO/GOSUB's optional guard, resolves its target, and
// moves the instruction pointer. A Gosub additionally pushes a return
// target onto the call stack before jumping, and fails with
// RecursionDepthKind if that would exceed the configured depth. A false
// guard is a no-op that just advances past the jump statement.
func (e *Engine) jump(kind JumpKind, stmt program.Statement, line int) *RuntimeError {
	ok, gerr := guardPasses(e.Env, stmt, line)
	if gerr != nil {
		return gerr
	}
	if !ok {
		e.IP++
		return nil
	}
	next, terr := resolveTarget(e.Prog, e.Env, stmt, line)
	if terr != nil {
		return terr
	}
	if kind == Gosub {
		if !e.Stack.Push(line + 1) {
			return newRuntimeError(RecursionDepthKind, line)
		}
	}
	e.IP = next
	return nil
}

func (e *Engine) doArithmetic(stmt program.Statement, line int) *RuntimeError {
	name := stmt[1].StrValue()
	left := e.Env.Get(name)
	right := resolveOperand(e.Env, stmt[2])

	var result value.Value
	var err error
	switch stmt[0].Kind {
	case lexer.ADD:
		result, err = value.Add(left, right)
	case lexer.SUB:
		result, err = value.Sub(left, right)
	case lexer.MULT:
		result, err = value.Mul(left, right)
	case lexer.DIV:
		result, err = value.Div(left, right)
	}
	if err != nil {
		if err == value.ErrDivByZero {
			return newRuntimeError(DivByZeroKind, line)
		}
		return newRuntimeError(TypeMismatchKind, line)
	}
	e.Env.Set(name, result)
	return nil
}

// parseNumber implements Grin's INNUM rule, carried from
// original_source/new-lang/grin/helper.py's to_int/to_float: try an
// integer parse first, fall back to a float parse. Input that is neither
// stores an Int(0) placeholder (see DESIGN.md's Open Question decision).
func parseNumber(s string) value.Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int{Value: n}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float{Value: f}
	}
	return value.Default()
}

func (e *Engine) readLine() (string, error) {
	s, err := e.In.ReadLine()
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && s == "" {
		return "", io.EOF
	}
	return s, nil
}

func (e *Engine) write(s string) {
	_ = e.Out.WriteLine(s)
}

func (e *Engine) report(err *RuntimeError) {
	_ = e.Out.WriteLine(err.Error())
}
