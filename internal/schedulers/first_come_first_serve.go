package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// FirstComeFirstServe runs processes to completion in arrival order.
// Ties on arrival time keep the caller's input order (stable sort), so
// the schedule is deterministic for any input.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string { return PolicyFirstComeFirstServe }

func (FirstComeFirstServe) Simulate(processes []*core.Process) *core.Timeline {
	ordered := make([]*core.Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})

	// clock starts at the first arrival, same as the other policies
	timeline := core.NewTimeline(ordered[0].ArrivalTime)
	for _, process := range ordered {
		timeline.AdvanceTo(process.ArrivalTime)
		timeline.Run(process, process.BurstTime)
		process.RemainingTime = 0
	}
	return timeline
}

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	return Schedule(FirstComeFirstServe{}, request)
}
