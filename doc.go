// Package safecalc evaluates arithmetic expressions and nothing else.
//
// The grammar admits numeric literals, the binary operators + - * / % and **
// (^ is an alias), unary sign, and matched brackets. There are no
// identifiers, no function calls, and no implicit multiplication, so an
// input like "__import__('os')" cannot even be tokenized; the unsafe
// constructs a general-purpose parser would need to filter out are simply
// unrepresentable here.
//
// Results keep the integer/floating-point distinction of their operands:
// integer arithmetic stays integral except division, which always yields a
// floating-point quotient. Failures fall into exactly two categories,
// ErrDivisionByZero and ErrInvalidExpression, checkable with errors.Is.
package safecalc
