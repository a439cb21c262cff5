// Package ui implements the interactive calculator shell as a bubbletea
// program. The shell owns an input buffer, a button legend, and a recallable
// history pane; all arithmetic goes through the safecalc evaluator.
package ui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"safecalc"
	"safecalc/internal/config"
	"safecalc/internal/history"
)

// inputRunes is the character set the input buffer accepts. It mirrors the
// button grid; everything else is dropped before it reaches the buffer, so
// the display can never hold a character the evaluator has no token for.
const inputRunes = "0123456789.+-*/%^() "

// buttonRows is the legend layout. The empty cell marks where the equals
// button spans two columns.
var buttonRows = [][]string{
	{"AC", "C", "⌫", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"(", "0", ")", "%"},
	{".", "**", "=", ""},
}

// historyShown is how many history entries the pane displays at once.
const historyShown = 6

type focusArea int

const (
	focusInput focusArea = iota
	focusHistory
)

// Model is the bubbletea model for the calculator shell.
type Model struct {
	input  textinput.Model
	hist   *history.Log
	keys   keyMap
	styles Styles
	log    *slog.Logger

	focus  focusArea
	sel    int
	width  int
	height int

	dialogTitle string
	dialogMsg   string
}

// New builds the shell from configuration.
func New(cfg *config.Config, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.Width = displayWidth - 3
	ti.Focus()
	return Model{
		input:  ti,
		hist:   history.New(cfg.HistorySize),
		keys:   defaultKeyMap(),
		styles: DefaultStyles(cfg.Accent),
		log:    logger,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.dialogTitle != "" {
		// Any key dismisses the dialog. The buffer is left as it was so
		// the mistake can be fixed rather than retyped.
		m.dialogTitle, m.dialogMsg = "", ""
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.History):
		return m.toggleHistory()
	case key.Matches(msg, m.keys.Clear):
		if m.focus == focusHistory {
			return m.backToInput()
		}
		m.input.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.Evaluate):
		if m.focus == focusHistory {
			return m.recall()
		}
		return m.evaluate()
	case key.Matches(msg, m.keys.Up):
		if m.focus == focusHistory && m.sel > 0 {
			m.sel--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.focus == focusHistory && m.sel < m.hist.Len()-1 {
			m.sel++
		}
		return m, nil
	}
	if m.focus != focusInput {
		return m, nil
	}
	if msg.Type == tea.KeyRunes && !runesAllowed(msg.Runes) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func runesAllowed(rs []rune) bool {
	for _, r := range rs {
		if !strings.ContainsRune(inputRunes, r) {
			return false
		}
	}
	return true
}

func (m Model) toggleHistory() (tea.Model, tea.Cmd) {
	if m.focus == focusHistory {
		return m.backToInput()
	}
	if m.hist.Len() == 0 {
		return m, nil
	}
	m.focus = focusHistory
	m.sel = m.hist.Len() - 1
	m.input.Blur()
	return m, nil
}

func (m Model) backToInput() (tea.Model, tea.Cmd) {
	m.focus = focusInput
	return m, m.input.Focus()
}

// evaluate runs the buffer through the evaluator. On success the entry is
// logged to history and the display shows the result; on failure the buffer
// is untouched and a dialog reports what went wrong.
func (m Model) evaluate() (tea.Model, tea.Cmd) {
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		return m, nil
	}
	r, err := safecalc.EvalString(expr)
	if err != nil {
		m.dialogTitle, m.dialogMsg = dialogFor(err)
		m.log.Debug("evaluation failed", slog.String("expr", expr), slog.Any("err", err))
		return m, nil
	}
	m.hist.Add(expr, r.String())
	m.input.SetValue(r.String())
	m.input.CursorEnd()
	m.log.Debug("evaluated", slog.String("expr", expr), slog.String("result", r.String()))
	return m, nil
}

// dialogFor maps an evaluation failure to the dialog the user sees. Division
// failures get their own title; every malformed input collapses to a single
// generic message regardless of cause.
func dialogFor(err error) (title, msg string) {
	switch {
	case errors.Is(err, safecalc.ErrDivisionByZero):
		return "Math Error", safecalc.ErrDivisionByZero.Error()
	case errors.Is(err, safecalc.ErrInvalidExpression):
		return "Input Error", safecalc.ErrInvalidExpression.Error()
	default:
		return "Error", "Something went wrong."
	}
}

func (m Model) recall() (tea.Model, tea.Cmd) {
	if expr, ok := m.hist.Recall(m.sel); ok {
		m.input.SetValue(expr)
		m.input.CursorEnd()
	}
	return m.backToInput()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Display.Render(m.input.View()))
	b.WriteByte('\n')
	if m.dialogTitle != "" {
		b.WriteString(m.dialogView())
		b.WriteByte('\n')
	}
	b.WriteString(m.gridView())
	b.WriteByte('\n')
	b.WriteString(m.historyView())
	b.WriteByte('\n')
	b.WriteString(m.styles.Help.Render("enter evaluate · esc clear · tab history · ctrl+c quit"))
	return b.String()
}

// gridView renders the button legend. The shell is keyboard driven; the
// grid documents the accepted keys in the layout of a desk calculator.
func (m Model) gridView() string {
	rows := make([]string, 0, len(buttonRows))
	for _, row := range buttonRows {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			if label == "" {
				continue
			}
			st := m.styles.Button
			if label == "=" {
				st = m.styles.Equals
			}
			cells = append(cells, st.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) historyView() string {
	title := m.styles.HistoryTitle.Render("History")
	if m.hist.Len() == 0 {
		return title + "\n" + m.styles.HistoryItem.Render("(empty)")
	}
	es := m.hist.Entries()
	start := len(es) - historyShown
	if start < 0 {
		start = 0
	}
	if m.focus == focusHistory && m.sel < start {
		start = m.sel
	}
	lines := []string{title}
	for i := start; i < len(es) && i < start+historyShown; i++ {
		st := m.styles.HistoryItem
		if m.focus == focusHistory && i == m.sel {
			st = m.styles.HistorySel
		}
		lines = append(lines, st.Render(es[i].String()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) dialogView() string {
	title := m.styles.DialogTitle.Render(m.dialogTitle)
	return m.styles.Dialog.Render(title + "\n" + m.dialogMsg + "\n\npress any key")
}
