package game

import "fmt"

// EventEntry is one recorded simulation event.
type EventEntry struct {
	Tick     int
	Category string  // spawn, move, clear, score, over
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] clear   rows   1 row at 19
func (e EventEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-7s %-12s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog collects structured session events. It is unbounded and
// machine-readable, intended for headless runs and tests rather than the UI.
type EventLog struct {
	entries []EventEntry
}

// NewEventLog creates an empty EventLog.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records a new entry.
func (l *EventLog) Add(tick int, category, key, value string, numVal float64) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, EventEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries in order.
func (l *EventLog) Entries() []EventEntry {
	return l.entries
}

// Count returns how many entries match the given category.
func (l *EventLog) Count(category string) int {
	n := 0
	for _, e := range l.entries {
		if e.Category == category {
			n++
		}
	}
	return n
}

// SumNum returns the sum of NumVal over entries matching category and key.
func (l *EventLog) SumNum(category, key string) float64 {
	var sum float64
	for _, e := range l.entries {
		if e.Category == category && e.Key == key {
			sum += e.NumVal
		}
	}
	return sum
}
