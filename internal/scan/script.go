package scan

import (
	"context"
	"strings"
)

// Script replays a fixed list of readings, in order. An empty entry is a
// cancelled reading. Once the list is exhausted every Scan returns ErrInputClosed.
type Script struct {
	readings []string
	next     int
	labels   []string
}

// NewScript returns a Script that replays readings.
func NewScript(readings ...string) *Script {
	return &Script{readings: readings}
}

// ParseScript splits a comma-separated list of readings, e.g.
// "BP123,TAG456,50,30,15". Entries are trimmed; empty entries are kept.
func ParseScript(s string) *Script {
	if strings.TrimSpace(s) == "" {
		return NewScript()
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return NewScript(parts...)
}

// Scan returns the next reading.
func (s *Script) Scan(ctx context.Context, label string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if s.next >= len(s.readings) {
		return "", false, ErrInputClosed
	}
	value := s.readings[s.next]
	s.next++
	s.labels = append(s.labels, label)
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// Labels returns the labels of every reading taken so far.
func (s *Script) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Remaining reports how many readings have not been consumed.
func (s *Script) Remaining() int {
	return len(s.readings) - s.next
}
