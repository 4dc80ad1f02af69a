// Package history implements a bounded linear undo/redo log.
//
// A Log stores snapshots in save order with a cursor on the current one.
// Saving after an undo discards every snapshot past the cursor; saving past
// the limit drops the oldest snapshot.
//
//	log := history.New[State](100)
//	log.Save(initial)
//	log.Save(edited)
//	prev, _ := log.Undo() // initial
package history

import "github.com/gogpu/sprite"

// Log is a bounded undo/redo history of snapshots.
// The zero value is an unbounded empty log.
type Log[T any] struct {
	entries []T
	pos     int // entries[pos-1] is current; 0 when empty
	max     int
}

// New returns an empty log holding at most max entries.
// max < 1 means unbounded.
func New[T any](max int) *Log[T] {
	return &Log[T]{max: max}
}

// Save appends s after the current entry, discarding any redo branch.
func (l *Log[T]) Save(s T) {
	clear(l.entries[l.pos:])
	l.entries = append(l.entries[:l.pos], s)
	if l.max > 0 && len(l.entries) > l.max {
		n := len(l.entries) - l.max
		clear(l.entries[:n])
		l.entries = l.entries[n:]
		sprite.Logger().Debug("history trimmed", "dropped", n, "max", l.max)
	}
	l.pos = len(l.entries)
}

// Current returns the current entry.
func (l *Log[T]) Current() (T, bool) {
	if l.pos == 0 {
		var zero T
		return zero, false
	}
	return l.entries[l.pos-1], true
}

// Undo moves back one entry and returns it.
// It returns false, leaving the log unchanged, when there is nothing to undo.
func (l *Log[T]) Undo() (T, bool) {
	if !l.CanUndo() {
		var zero T
		return zero, false
	}
	l.pos--
	return l.entries[l.pos-1], true
}

// Redo moves forward one entry and returns it.
func (l *Log[T]) Redo() (T, bool) {
	if !l.CanRedo() {
		var zero T
		return zero, false
	}
	l.pos++
	return l.entries[l.pos-1], true
}

// CanUndo reports whether an entry precedes the current one.
func (l *Log[T]) CanUndo() bool { return l.pos > 1 }

// CanRedo reports whether an entry follows the current one.
func (l *Log[T]) CanRedo() bool { return l.pos < len(l.entries) }

// Len returns the number of stored entries.
func (l *Log[T]) Len() int { return len(l.entries) }

// Max returns the entry limit, or 0 when unbounded.
func (l *Log[T]) Max() int { return max(0, l.max) }

// Reset discards every entry.
func (l *Log[T]) Reset() {
	clear(l.entries)
	l.entries = l.entries[:0]
	l.pos = 0
}
