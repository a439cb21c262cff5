package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "2+2", "7/2", "2**10")
	require.NoError(t, err)
	assert.Equal(t, "4\n3.5\n1024\n", out)
}

func TestEvalFmt(t *testing.T) {
	out, err := run(t, "eval", "--fmt", "%.2f", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", out)
}

func TestEvalEcho(t *testing.T) {
	out, err := run(t, "eval", "--echo", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "([2] + [(3) * (4)]) = 14\n", out)
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := run(t, "eval", "1/0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "math error")
}

func TestEvalInvalid(t *testing.T) {
	_, err := run(t, "eval", "1+")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input error")
}

func TestEvalNoArgs(t *testing.T) {
	_, err := run(t, "eval")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-02")
	defer SetVersion("dev", "none", "unknown")
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "safecalc 1.2.3 (commit abc123, built 2026-01-02)\n", out)
}
