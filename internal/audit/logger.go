package audit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// maxEntries bounds the in-memory audit log; the oldest entries are dropped
// once the buffer is full.
const maxEntries = 1000

// defaultEntryLimit is how many entries Entries returns when no limit is
// given.
const defaultEntryLimit = 100

// Entry is a single retained audit log record.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
}

// Logger writes structured audit events through zap and retains a bounded
// in-memory buffer for inspection. Safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	log     *zap.Logger
	entries []Entry
}

// NewLogger creates an audit logger backed by the given zap logger. A nil
// logger is replaced with a no-op one; the in-memory buffer still records.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log}
}

func (l *Logger) record(level, message string, context map[string]any) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		Context:   context,
	})
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
	l.mu.Unlock()
}

func zapFields(context map[string]any) []zap.Field {
	fields := make([]zap.Field, 0, len(context))
	for k, v := range context {
		fields = append(fields, zap.Any(k, v))
	}
	return fields
}

// Info records an informational audit event.
func (l *Logger) Info(message string, context map[string]any) {
	l.record("info", message, context)
	l.log.Info(message, zapFields(context)...)
}

// Warn records an audit warning.
func (l *Logger) Warn(message string, context map[string]any) {
	l.record("warn", message, context)
	l.log.Warn(message, zapFields(context)...)
}

// Error records an audit error.
func (l *Logger) Error(message string, context map[string]any) {
	l.record("error", message, context)
	l.log.Error(message, zapFields(context)...)
}

// Debug records a debug-level audit event.
func (l *Logger) Debug(message string, context map[string]any) {
	l.record("debug", message, context)
	l.log.Debug(message, zapFields(context)...)
}

// Entries returns up to limit retained entries, newest last. When level is
// non-empty only entries of that level are returned; a limit <= 0 uses the
// default of 100.
func (l *Logger) Entries(level string, limit int) []Entry {
	if limit <= 0 {
		limit = defaultEntryLimit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := l.entries
	if level != "" {
		filtered = make([]Entry, 0, len(l.entries))
		for _, e := range l.entries {
			if e.Level == level {
				filtered = append(filtered, e)
			}
		}
	}
	if len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	out := make([]Entry, len(filtered))
	copy(out, filtered)
	return out
}

// Clear discards all retained entries.
func (l *Logger) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}
