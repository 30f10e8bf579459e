package core

import "fmt"

// Interval is one contiguous allocation of the cpu on the timeline.
// ProcessId is IdleProcessId when the cpu sat idle.
type Interval struct {
	ProcessId string
	Start     int
	End       int
}

// Timeline accumulates execution intervals in start order and tracks the
// simulation clock. Intervals are contiguous except for explicit idle gaps.
type Timeline struct {
	start     int
	clock     int
	idleTime  int
	intervals []Interval
}

func NewTimeline(startTime int) *Timeline {
	return &Timeline{start: startTime, clock: startTime}
}

func (t *Timeline) StartTime() int {
	return t.start
}

func (t *Timeline) CurrentTime() int {
	return t.clock
}

// AdvanceTo moves the clock forward to tick, recording the gap as an idle
// interval. Moving backwards is a no-op.
func (t *Timeline) AdvanceTo(tick int) {
	if tick <= t.clock {
		return
	}
	t.intervals = append(t.intervals, Interval{ProcessId: IdleProcessId, Start: t.clock, End: tick})
	t.idleTime += tick - t.clock
	t.clock = tick
}

// Run allocates the cpu to process for duration ticks starting at the
// current clock. A non-positive duration can only come from a broken
// scheduler, never from caller input, so it fails loudly.
func (t *Timeline) Run(process *Process, duration int) {
	if duration <= 0 {
		panic(fmt.Sprintf("timeline: pid %s scheduled for non-positive duration %d", process.Id, duration))
	}
	t.intervals = append(t.intervals, Interval{ProcessId: process.Id, Start: t.clock, End: t.clock + duration})
	t.clock += duration
}

func (t *Timeline) Intervals() []Interval {
	return t.intervals
}

// IdleTime is the total duration of all idle gaps recorded so far.
func (t *Timeline) IdleTime() int {
	return t.idleTime
}
