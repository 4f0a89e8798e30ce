package handler

import (
	"sync/atomic"

	"github.com/philipp01105/logcat/core"
)

// Stats tracks handler statistics. The zero value is ready to use.
type Stats struct {
	dropped   [len(core.Levels)]atomic.Uint64
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level.
// Invalid levels are ignored.
func (s *Stats) IncrementDropped(level core.Level) {
	if level.Valid() {
		s.dropped[level].Add(1)
	}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.dropped[level].Load()
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return s.processed.Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, len(core.Levels))
	for _, l := range core.Levels {
		dropped[l] = s.GetDropped(l)
	}
	return Snapshot{
		DroppedTotal:   dropped,
		ProcessedTotal: s.GetProcessed(),
	}
}
