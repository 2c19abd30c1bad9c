// Package gamelog is the player-facing message log: append-only, tick
// stamped, newest last.
package gamelog

import "fmt"

// Entry is one line of the log.
type Entry struct {
	Tick    uint64
	Message string
}

func (e Entry) String() string { return fmt.Sprintf("[%d] %s", e.Tick, e.Message) }

// Log collects entries for the renderer. The zero value is ready to use.
type Log struct {
	entries []Entry
}

// Add appends a message stamped with tick.
func (l *Log) Add(tick uint64, msg string) {
	l.entries = append(l.entries, Entry{Tick: tick, Message: msg})
}

// Addf is Add with fmt.Sprintf formatting.
func (l *Log) Addf(tick uint64, format string, args ...any) {
	l.Add(tick, fmt.Sprintf(format, args...))
}

// Entries returns every entry, oldest first. The slice must not be modified.
func (l *Log) Entries() []Entry { return l.entries }

// Len returns the number of entries.
func (l *Log) Len() int { return len(l.entries) }

// Last returns up to n of the newest entries, oldest first.
func (l *Log) Last(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	return l.entries[start:]
}
