package history_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safecalc/internal/history"
)

func TestAddAndRecall(t *testing.T) {
	l := history.New(50)
	l.Add("2+2", "4")
	l.Add("10/4", "2.5")

	require.Equal(t, 2, l.Len())
	e, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, "2+2 = 4", e.String())

	expr, ok := l.Recall(1)
	require.True(t, ok)
	assert.Equal(t, "10/4", expr)

	_, ok = l.Recall(2)
	assert.False(t, ok)
	_, ok = l.Recall(-1)
	assert.False(t, ok)
}

func TestBound(t *testing.T) {
	l := history.New(50)
	for i := 0; i < 51; i++ {
		l.Add(fmt.Sprintf("%d+0", i), fmt.Sprint(i))
	}

	require.Equal(t, 50, l.Len())
	// The oldest entry (0+0) is gone; entries 1..50 remain in order.
	e, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, "1+0", e.Expr)
	e, ok = l.At(49)
	require.True(t, ok)
	assert.Equal(t, "50+0", e.Expr)
}

func TestEntriesIsACopy(t *testing.T) {
	l := history.New(3)
	l.Add("1+1", "2")
	es := l.Entries()
	es[0].Expr = "mutated"

	e, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, "1+1", e.Expr)
}

func TestParseEntry(t *testing.T) {
	expr, result, ok := history.ParseEntry("(1+2)*3 = 9")
	require.True(t, ok)
	assert.Equal(t, "(1+2)*3", expr)
	assert.Equal(t, "9", result)

	_, _, ok = history.ParseEntry("no separator")
	assert.False(t, ok)
}
