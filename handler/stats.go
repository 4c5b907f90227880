package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	processed atomic.Uint64
	failed    atomic.Uint64
	dropped   atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed counts a record written successfully
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFailed counts a record whose write returned an error
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// IncrementDropped counts a record discarded because the handler was closed
func (s *Stats) IncrementDropped() {
	s.dropped.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.processed.Store(0)
	s.failed.Store(0)
	s.dropped.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
	DroppedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.processed.Load(),
		FailedTotal:    s.failed.Load(),
		DroppedTotal:   s.dropped.Load(),
	}
}

// Record updates the counters for the outcome of one write
func (s *Stats) Record(err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed()
}
