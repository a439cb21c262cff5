package safecalc

import (
	"io"
	"strings"
)

// binaryOps and unaryOps are the fixed dispatch tables for evaluation. They
// are the whole operator whitelist: a node kind absent from both tables and
// not a literal does not evaluate, it fails.
var binaryOps = map[nodeKind]func(Number, Number) (Number, error){
	nodeAdd: func(l, r Number) (Number, error) { return add(l, r), nil },
	nodeSub: func(l, r Number) (Number, error) { return sub(l, r), nil },
	nodeMul: func(l, r Number) (Number, error) { return mul(l, r), nil },
	nodeDiv: div,
	nodeMod: mod,
	nodePow: pow,
}

var unaryOps = map[nodeKind]func(Number) Number{
	nodeNeg: neg,
	nodeNop: func(v Number) Number { return v },
}

// eval computes the node's value. The left operand is fully evaluated before
// the right.
func (n *node) eval() (Number, error) {
	if n.kind == nodeNum {
		return n.num, nil
	}
	if fn := binaryOps[n.kind]; fn != nil {
		l, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		r, err := n.right.eval()
		if err != nil {
			return Number{}, err
		}
		return fn(l, r)
	}
	if fn := unaryOps[n.kind]; fn != nil {
		v, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		return fn(v), nil
	}
	return Number{}, &NodeError{Kind: n.kind.String()}
}

// Eval evaluates the expression and returns its value. Expressions hold no
// state: evaluating is read-only, and the same Expr may be evaluated any
// number of times with the same result.
func (e *Expr) Eval() (Number, error) {
	return e.n.eval()
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (Number, error) {
	a, err := Parse(src)
	if err != nil {
		return Number{}, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
//
// Failures are one of exactly two kinds: errors.Is(err, ErrDivisionByZero)
// when a / or % right operand is zero, and errors.Is(err, ErrInvalidExpression)
// for everything else.
func EvalString(src string) (Number, error) {
	return Eval(strings.NewReader(src))
}

// NodeError is an error from evaluating a syntax tree node that is not a
// numeric literal or a whitelisted operation. The parser cannot produce such
// a node; the evaluator still refuses to touch one. It unwraps to
// ErrInvalidExpression.
type NodeError struct {
	// Kind describes the rejected node.
	Kind string
}

func (err *NodeError) Error() string {
	return "unsupported expression node " + err.Kind
}

func (err *NodeError) Unwrap() error {
	return ErrInvalidExpression
}
