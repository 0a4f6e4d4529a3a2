// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history keeps the log of past calculations shown beside the
// keypad. Entries have the form "expr = result", newest first. The log
// holds at most one entry per result and has a fixed capacity; when it
// is full the oldest entry is dropped.
package history // import "robpike.io/keypad/history"

import "strings"

// Log is a bounded history of calculations. It is not safe for
// concurrent use.
type Log struct {
	entries []string // Newest first.
	max     int
}

// New returns an empty log holding at most max entries.
func New(max int) *Log {
	if max <= 0 {
		panic("history: capacity must be positive")
	}
	return &Log{max: max}
}

// Entry formats a calculation as a history entry.
func Entry(expr, result string) string {
	return expr + " = " + result
}

// Result returns the result part of an entry: the text after the last
// '=', trimmed.
func Result(entry string) string {
	if i := strings.LastIndexByte(entry, '='); i >= 0 {
		entry = entry[i+1:]
	}
	return strings.TrimSpace(entry)
}

// Add records the calculation expr = result.
func (l *Log) Add(expr, result string) bool {
	return l.Record(Entry(expr, result))
}

// Record adds the entry at the front of the log unless an entry with
// the same result is already present. It reports whether the entry was
// added.
func (l *Log) Record(entry string) bool {
	result := Result(entry)
	for _, e := range l.entries {
		if Result(e) == result {
			return false
		}
	}
	l.entries = append(l.entries, "")
	copy(l.entries[1:], l.entries)
	l.entries[0] = entry
	l.trim()
	return true
}

// trim evicts the oldest entries beyond the capacity.
func (l *Log) trim() {
	if len(l.entries) > l.max {
		clear(l.entries[l.max:])
		l.entries = l.entries[:l.max]
	}
}

// SetCapacity changes the capacity of the log, dropping the oldest
// entries if there are now too many.
func (l *Log) SetCapacity(max int) {
	if max <= 0 {
		panic("history: capacity must be positive")
	}
	l.max = max
	l.trim()
}

// Capacity returns the maximum number of entries.
func (l *Log) Capacity() int {
	return l.max
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries, newest first.
func (l *Log) Entries() []string {
	return append([]string{}, l.entries...)
}
