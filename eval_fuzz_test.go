package safecalc_test

import (
	"errors"
	"testing"

	"safecalc"
)

// FuzzEval checks the external error contract: every failure is exactly one
// of the two advertised categories.
func FuzzEval(f *testing.F) {
	f.Add("1/0")
	f.Add("5%0")
	f.Add("2+3*4")
	f.Add("x+1")
	f.Add("0**-1")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := safecalc.EvalString(s)
		if err == nil {
			return
		}
		dz := errors.Is(err, safecalc.ErrDivisionByZero)
		iv := errors.Is(err, safecalc.ErrInvalidExpression)
		if dz == iv {
			t.Errorf("error from %q is not exactly one category: %#v", s, err)
		}
	})
}
