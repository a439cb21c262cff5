// Package history keeps the most recent calculations for recall.
package history

import "strings"

// Entry is one completed calculation.
type Entry struct {
	// Expr is the expression as the user typed it, trimmed.
	Expr string
	// Result is the displayed result.
	Result string
}

// String formats the entry the way the history pane shows it.
func (e Entry) String() string {
	return e.Expr + " = " + e.Result
}

// Log is a bounded first-in-first-out record of calculations. When the log is
// full, adding a new entry evicts the oldest. The zero value is not usable;
// use New.
//
// A Log is not safe for concurrent use; the UI owns it and touches it from a
// single goroutine.
type Log struct {
	cap     int
	entries []Entry
}

// New creates a log holding at most capacity entries. Panics if capacity is
// not positive; the caller validates configuration before getting here.
func New(capacity int) *Log {
	if capacity <= 0 {
		panic("history: capacity must be positive")
	}
	return &Log{cap: capacity}
}

// Cap returns the maximum number of entries the log retains.
func (l *Log) Cap() int {
	return l.cap
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Add records a calculation, evicting the oldest entry if the log is full.
func (l *Log) Add(expr, result string) {
	if len(l.entries) == l.cap {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.cap-1]
	}
	l.entries = append(l.entries, Entry{Expr: expr, Result: result})
}

// At returns the i-th entry, oldest first.
func (l *Log) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Recall returns the expression half of the i-th entry, for loading a past
// calculation back into the input buffer.
func (l *Log) Recall(i int) (string, bool) {
	e, ok := l.At(i)
	if !ok {
		return "", false
	}
	return e.Expr, true
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// ParseEntry splits a formatted entry back into its halves. The expression
// itself can contain no "=", so splitting on the first separator is exact.
func ParseEntry(s string) (expr, result string, ok bool) {
	i := strings.Index(s, " = ")
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+3:], true
}
