package safecalc

import (
	"errors"
	"strconv"
)

// The two error categories callers see. Every error returned from Parse,
// Eval, or EvalString unwraps to exactly one of these; richer detail stays on
// the concrete error types for debugging but never adds a third category.
var (
	// ErrDivisionByZero categorizes a / or % whose right operand is zero.
	ErrDivisionByZero = errors.New("division by zero is not allowed")
	// ErrInvalidExpression categorizes every other rejected input: syntax
	// errors, malformed numbers, identifiers, empty input.
	ErrInvalidExpression = errors.New("invalid expression")
)

// DivisionError is an error from dividing by zero, whether via /, %, or a
// negative power of zero. It unwraps to ErrDivisionByZero.
type DivisionError struct {
	// Op is the operator whose right operand was zero.
	Op string
}

func (err *DivisionError) Error() string {
	return ErrDivisionByZero.Error()
}

func (err *DivisionError) Unwrap() error {
	return ErrDivisionByZero
}

// DomainError is an error from an operation whose result is not a real
// number, e.g. a negative base raised to a fractional exponent. It unwraps to
// ErrInvalidExpression.
type DomainError struct {
	// Op is the operator that left the real domain.
	Op string
}

func (err *DomainError) Error() string {
	return "operator " + err.Op + " has no real result here"
}

func (err *DomainError) Unwrap() error {
	return ErrInvalidExpression
}

// OperatorError is an error indicating an operator token in a position where
// it cannot apply, e.g. "*" at the start of an expression. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	return ErrInvalidExpression
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrInvalidExpression
}

// TokenError is an error indicating a well-formed token that cannot continue
// the expression, e.g. the second number in "2 3": there is no implicit
// multiplication. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the offending token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Unwrap() error {
	return ErrInvalidExpression
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrInvalidExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError; evaluation errors
// (DivisionError, DomainError, NodeError) do not, since the tree has no
// positions.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
