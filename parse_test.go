package safecalc

import (
	"errors"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two ASTs are equal. If any node is nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	if n.kind == nodeNum {
		if n.num != m.num {
			return n, m
		}
		return nil, nil
	}
	if d, e := n.left.diff(m.left); d != nil || e != nil {
		return d, e
	}
	return n.right.diff(m.right)
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		b := binop(string(r))
		u := unop(string(r))
		if b.op == nodeNone && u.op == nodeNone {
			t.Errorf("no operator for %c", r)
		}
	}
	if binop("**").op != nodePow {
		t.Error("no binary operator for **")
	}
}

func TestPowSpellingsAgree(t *testing.T) {
	if binop("**") != binop("^") {
		t.Errorf("** and ^ disagree: %v versus %v", binop("**"), binop("^"))
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(1)", "1"},
		{"square", "[1]", "1"},
		{"curly", "{1}", "1"},
		{"multi", "([{((1))}])", "1"},

		{"plus", "+1", "+(1)"},
		{"neg", "-1", "-(1)"},
		{"negneg", "--1", "-(-1)"},
		{"add", "1+2", "(1)+(2)"},
		{"sub", "1-2", "(1)-(2)"},
		{"mul", "3*4", "(3)*(4)"},
		{"div", "3/4", "(3)/(4)"},
		{"mod", "7%3", "(7)%(3)"},
		{"pow", "2**3", "(2)**(3)"},
		{"caret", "2^3", "2**3"},

		{"add-left", "1+2+3", "(1+2)+3"},
		{"sub-left", "1-2-3", "(1-2)-3"},
		{"mul-left", "2*3*4", "(2*3)*4"},
		{"div-left", "24/4/2", "(24/4)/2"},
		{"mod-left", "17%7%3", "(17%7)%3"},
		{"pow-right", "2**3**2", "2**(3**2)"},

		{"mul-over-add", "2+3*4", "2+(3*4)"},
		{"mul-over-add-2", "2*3+4", "(2*3)+4"},
		{"mod-over-sub", "10-9%4", "10-(9%4)"},
		{"pow-over-mul", "2*3**4", "2*(3**4)"},
		{"paren-override", "(1+2)*3", "(1+2)*(3)"},

		{"neg-over-pow", "-5**2", "(-5)**2"},
		{"neg-exponent", "2**-3", "2**(-3)"},
		{"neg-mul", "-2*3", "(-2)*3"},
		{"neg-add", "-2+3", "(-2)+3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.a))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.a, err)
			}
			b, err := Parse(strings.NewReader(c.b))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.b, err)
			}
			if d, e := a.n.diff(b.n); d != nil || e != nil {
				t.Errorf("parsing %q and %q gave different trees:\n\t%v versus %v\n\tdiffering at %v versus %v", c.a, c.b, a, b, d, e)
			}
		})
	}
}

func TestParseNumbers(t *testing.T) {
	cases := []struct {
		src   string
		isInt bool
		v     float64
	}{
		{"1", true, 1},
		{"0", true, 0},
		{"1234567890", true, 1234567890},
		{"1.0", false, 1},
		{".5", false, 0.5},
		{"1e3", false, 1000},
		{"1.5E2", false, 150},
		// Out of int64 range: kept as floating point rather than wrapped.
		{"9223372036854775808", false, 9.223372036854775808e18},
	}
	for _, c := range cases {
		a, err := Parse(strings.NewReader(c.src))
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if a.n.kind != nodeNum {
			t.Errorf("%q parsed to %v, not a literal", c.src, a)
			continue
		}
		if a.n.num.IsInt() != c.isInt {
			t.Errorf("%q: IsInt = %t, want %t", c.src, a.n.num.IsInt(), c.isInt)
		}
		if f := a.n.num.Float64(); f != c.v {
			t.Errorf("%q: value %g, want %g", c.src, f, c.v)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		as   interface{}
	}{
		{"empty", "", new(*EmptyExpressionError)},
		{"spaces", "   ", new(*EmptyExpressionError)},
		{"empty-brackets", "()", new(*EmptyExpressionError)},
		{"trailing-op", "1+", new(*EmptyExpressionError)},
		{"trailing-pow", "2 ** ", new(*EmptyExpressionError)},
		{"lone-minus", "-", new(*EmptyExpressionError)},
		{"open", "(", new(*BracketError)},
		{"unclosed", "(1", new(*BracketError)},
		{"unopened", "1)", new(*BracketError)},
		{"mismatched", "(1]", new(*BracketError)},
		{"close-only", ")", new(*BracketError)},
		{"lead-mul", "*1", new(*OperatorError)},
		{"lead-mod", "%1", new(*OperatorError)},
		{"double-mul", "1**%2", new(*OperatorError)},
		{"adjacent-nums", "2 3", new(*TokenError)},
		{"implicit-mul", "2(3)", new(*TokenError)},
		{"adjacent-groups", "(1)(2)", new(*TokenError)},
		{"ident", "x", new(*LexError)},
		{"ident-add", "x+1", new(*LexError)},
		{"call", "__import__('os')", new(*LexError)},
		{"string", "'abc'", new(*LexError)},
		{"comparison", "2==2", new(*LexError)},
		{"bad-number", "1..2", new(*LexError)},
		{"bad-exponent", "1e", new(*LexError)},
		{"separator", "1,2", new(*LexError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.src))
			if err == nil {
				t.Fatalf("%q parsed to %v with no error", c.src, a)
			}
			if !errors.Is(err, ErrInvalidExpression) {
				t.Errorf("error from %q is not ErrInvalidExpression: %#v", c.src, err)
			}
			if errors.Is(err, ErrDivisionByZero) {
				t.Errorf("error from %q is ErrDivisionByZero: %#v", c.src, err)
			}
			if !errors.As(err, c.as) {
				t.Errorf("error from %q has wrong type: %#v", c.src, err)
			}
		})
	}
}

func TestParseErrorPositions(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"12 34", 4},
		{"1+(2", 5},
		{"*1", 1},
		{"1+x", 4},
	}
	for _, c := range cases {
		_, err := Parse(strings.NewReader(c.src))
		if err == nil {
			t.Errorf("%q parsed with no error", c.src)
			continue
		}
		ie, ok := err.(InputError)
		if !ok {
			t.Errorf("error from %q is %#v, not InputError", c.src, err)
			continue
		}
		if ie.Pos() != c.pos {
			t.Errorf("error from %q at position %d, want %d", c.src, ie.Pos(), c.pos)
		}
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1", "(1)"},
		{"-1", "(-[1])"},
		{"1+2", "([1] + [2])"},
		{"2+3*4", "([2] + [(3) * (4)])"},
		{"2**3", "([2] ** [3])"},
	}
	for _, c := range cases {
		a, err := Parse(strings.NewReader(c.src))
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if s := a.String(); s != c.want {
			t.Errorf("%q formatted as %q, want %q", c.src, s, c.want)
		}
	}
}
