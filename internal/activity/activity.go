// Package activity records per-symbol events from analysis passes so
// callers can inspect what a pass skipped and why, after the fact.
package activity

import (
	"sync"
	"time"
)

// Level is the severity of a recorded event.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry represents a single recorded event with symbol context.
type Entry struct {
	// Timestamp is when the event was recorded.
	Timestamp time.Time
	// Symbol is the trading symbol associated with this event.
	Symbol string
	// Level is the severity level of the event.
	Level Level
	// Message is the event message content.
	Message string
	// Err is the underlying error, when the event reports a failure.
	Err error
}

// Recorder is the interface for storing pass activity.
type Recorder interface {
	// Record stores an entry.
	Record(entry Entry)
	// Entries retrieves all stored entries.
	Entries() []Entry
}

// MemoryRecorder keeps entries in memory. It is safe for concurrent use
// and doubles as an engine activity sink through OnSymbolFailure.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryRecorder creates an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record stores an entry.
func (r *MemoryRecorder) Record(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
}

// Entries returns a copy of all stored entries in recording order.
func (r *MemoryRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// OnSymbolFailure records a failed symbol analysis.
func (r *MemoryRecorder) OnSymbolFailure(symbol string, err error) {
	r.Record(Entry{
		Timestamp: time.Now(),
		Symbol:    symbol,
		Level:     LevelError,
		Message:   "symbol analysis failed",
		Err:       err,
	})
}

// Failures returns only the error-level entries.
func (r *MemoryRecorder) Failures() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var failures []Entry
	for _, entry := range r.entries {
		if entry.Level == LevelError {
			failures = append(failures, entry)
		}
	}

	return failures
}
