package vu

import (
	"github.com/GlaireDaggers/DBSDK-VU-ASM/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrUnknownOpcode      = translate.NewError("opcode unknown")
	ErrInvalidRegister    = translate.NewError("register invalid")
	ErrInvalidOutput      = translate.NewError("vertex output invalid")
	ErrInvalidSwizzle     = translate.NewError("shuffle subscript invalid")
	ErrInvalidOperandType = translate.NewError("operand type invalid")
	ErrOperandOutOfRange  = translate.NewError("operand out of range")

	// Program errors
	ErrProgramTooLarge      = translate.NewError("program too large (must be no more than %d instructions)", PROGRAM_MAX)
	ErrProgramUnterminated  = translate.NewError("program fills all %d instructions without end", PROGRAM_MAX)
	ErrUnexpectedEndOfInput = translate.NewError("unexpected end of input")
)

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	Pos   Pos
	Token string
	Err   error
}

func (err *ErrSyntax) Error() string {
	if len(err.Token) == 0 {
		return f("%v %v", err.Pos, err.Err)
	}
	return f("%v '%v' %v", err.Pos, err.Token, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrExpression reports a $(...) expression that did not evaluate to an integer.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not an integer expression", err.Expr)
	}
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
