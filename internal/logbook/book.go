package logbook

import (
	"fmt"
	"sync"
	"time"
)

// Kind classifies a log entry
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// Entry is a single immutable console line. Entries are never mutated or
// removed individually once appended.
type Entry struct {
	Kind    Kind
	Message string
	Time    time.Time
}

// Counters summarize the book. Total always equals the number of entries;
// info and warning entries count toward Total only, so
// Success + Errors <= Total holds for every append sequence.
type Counters struct {
	Total   int
	Success int
	Errors  int
}

// Book is an append-only in-memory event log with running counters,
// intended to back an incremental console view.
type Book struct {
	mu       sync.Mutex
	entries  []Entry
	counters Counters
	onChange func()
	now      func() time.Time
}

// New creates an empty book
func New() *Book {
	return &Book{now: time.Now}
}

// OnChange registers fn to run after every append and clear, outside the
// book's lock. Intended for triggering a re-render of the visible log.
func (b *Book) OnChange(fn func()) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Append adds one entry and bumps exactly one counter bucket for its kind
func (b *Book) Append(kind Kind, message string) {
	b.mu.Lock()
	b.entries = append(b.entries, Entry{
		Kind:    kind,
		Message: message,
		Time:    b.now(),
	})
	b.counters.Total++
	switch kind {
	case KindSuccess:
		b.counters.Success++
	case KindError:
		b.counters.Errors++
	}
	notify := b.onChange
	b.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Infof appends a formatted info entry
func (b *Book) Infof(format string, args ...any) {
	b.Append(KindInfo, fmt.Sprintf(format, args...))
}

// Successf appends a formatted success entry
func (b *Book) Successf(format string, args ...any) {
	b.Append(KindSuccess, fmt.Sprintf(format, args...))
}

// Errorf appends a formatted error entry
func (b *Book) Errorf(format string, args ...any) {
	b.Append(KindError, fmt.Sprintf(format, args...))
}

// Warningf appends a formatted warning entry
func (b *Book) Warningf(format string, args ...any) {
	b.Append(KindWarning, fmt.Sprintf(format, args...))
}

// Clear resets the entry list and all counters together; no partial state
// is observable between the two.
func (b *Book) Clear() {
	b.mu.Lock()
	b.entries = nil
	b.counters = Counters{}
	notify := b.onChange
	b.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Entries returns a snapshot copy of the current log sequence
func (b *Book) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot := make([]Entry, len(b.entries))
	copy(snapshot, b.entries)
	return snapshot
}

// Counters returns the current counter values
func (b *Book) Counters() Counters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counters
}

// Len returns the number of entries
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
