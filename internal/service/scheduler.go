package service

import (
	"time"

	"greenfund-demo/internal/core/ports"
)

// ClockScheduler implements ports.Scheduler on top of the runtime timer.
type ClockScheduler struct{}

// NewClockScheduler creates a wall-clock scheduler.
func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{}
}

// AfterFunc schedules f to run once after d. The returned handle cancels it.
func (s *ClockScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
