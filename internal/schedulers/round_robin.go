package schedulers

import (
	"fmt"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// RoundRobin dispatches a fifo ready queue in fixed time slices. The
// quantum comes from the caller; there is no default.
type RoundRobin struct {
	TimeQuantum int
}

func NewRoundRobin(timeQuantum int) (RoundRobin, error) {
	if timeQuantum < 1 {
		return RoundRobin{}, fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, timeQuantum)
	}
	return RoundRobin{TimeQuantum: timeQuantum}, nil
}

func (r RoundRobin) Name() string { return PolicyRoundRobin }

func (r RoundRobin) Simulate(processes []*core.Process) *core.Timeline {
	arrivals := make([]*core.Process, len(processes))
	copy(arrivals, processes)
	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime
	})

	timeline := core.NewTimeline(arrivals[0].ArrivalTime)
	queue := make([]*core.Process, 0, len(arrivals))
	next := 0
	admit := func() {
		for next < len(arrivals) && arrivals[next].ArrivalTime <= timeline.CurrentTime() {
			queue = append(queue, arrivals[next])
			next++
		}
	}

	admit()
	for len(queue) > 0 || next < len(arrivals) {
		if len(queue) == 0 {
			timeline.AdvanceTo(arrivals[next].ArrivalTime)
			admit()
			continue
		}

		process := queue[0]
		queue = queue[1:]
		slice := r.TimeQuantum
		if process.RemainingTime < slice {
			slice = process.RemainingTime
		}
		timeline.Run(process, slice)
		process.RemainingTime -= slice

		// processes that arrived during the slice enter the queue ahead
		// of the preempted process
		admit()
		if process.RemainingTime > 0 {
			queue = append(queue, process)
		}
	}
	return timeline
}

func ScheduleRoundRobin(request *requests.ScheduleRequest, timeQuantum int) (responses.ScheduleResponse, error) {
	policy, err := NewRoundRobin(timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return Schedule(policy, request)
}
