package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safecalc/internal/config"
	"safecalc/internal/log"
)

func testModel() Model {
	return New(config.Default(), log.Discard())
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return got
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func enter(t *testing.T, m Model) Model {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestTypeAndEvaluate(t *testing.T) {
	m := typeRunes(t, testModel(), "1+2*3")
	assert.Equal(t, "1+2*3", m.input.Value())

	m = enter(t, m)
	assert.Equal(t, "7", m.input.Value())
	require.Equal(t, 1, m.hist.Len())
	e, ok := m.hist.At(0)
	require.True(t, ok)
	assert.Equal(t, "1+2*3 = 7", e.String())
	assert.Empty(t, m.dialogTitle)
}

func TestInputRejectsForeignRunes(t *testing.T) {
	m := typeRunes(t, testModel(), "1a+b2#")
	assert.Equal(t, "1+2", m.input.Value())
}

func TestEmptyBufferEnterIsNoop(t *testing.T) {
	m := enter(t, testModel())
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 0, m.hist.Len())
	assert.Empty(t, m.dialogTitle)
}

func TestDivisionByZeroDialog(t *testing.T) {
	m := enter(t, typeRunes(t, testModel(), "1/0"))
	assert.Equal(t, "Math Error", m.dialogTitle)
	// buffer stays so the expression can be fixed
	assert.Equal(t, "1/0", m.input.Value())
	assert.Equal(t, 0, m.hist.Len())

	// any key dismisses
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	assert.Empty(t, m.dialogTitle)
	assert.Equal(t, "1/0", m.input.Value())
}

func TestInvalidExpressionDialog(t *testing.T) {
	m := enter(t, typeRunes(t, testModel(), "(1+2"))
	assert.Equal(t, "Input Error", m.dialogTitle)
	assert.Equal(t, "(1+2", m.input.Value())
}

func TestDialogFor(t *testing.T) {
	title, msg := dialogFor(errors.New("wat"))
	assert.Equal(t, "Error", title)
	assert.Equal(t, "Something went wrong.", msg)
}

func TestHistoryRecall(t *testing.T) {
	m := enter(t, typeRunes(t, testModel(), "2*3"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = enter(t, typeRunes(t, m, "10-4"))
	require.Equal(t, 2, m.hist.Len())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusHistory, m.focus)
	assert.Equal(t, 1, m.sel)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.sel)

	m = enter(t, m)
	assert.Equal(t, focusInput, m.focus)
	assert.Equal(t, "2*3", m.input.Value())
}

func TestHistoryToggleEmptyIsNoop(t *testing.T) {
	m := press(t, testModel(), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusInput, m.focus)
}

func TestEscClears(t *testing.T) {
	m := typeRunes(t, testModel(), "12+3")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.input.Value())
}

func TestCtrlCQuits(t *testing.T) {
	_, cmd := testModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewSmoke(t *testing.T) {
	m := enter(t, typeRunes(t, testModel(), "6/4"))
	v := m.View()
	assert.Contains(t, v, "History")
	assert.Contains(t, v, "6/4 = 1.5")
}
