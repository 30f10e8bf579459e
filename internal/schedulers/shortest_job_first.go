package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ShortestJobFirst is non-preemptive: among the processes that have
// arrived it always picks the one with the smallest burst time and runs
// it to completion. Ties go to the earlier arrival, then to input order.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string { return PolicyShortestJobFirst }

func (ShortestJobFirst) Simulate(processes []*core.Process) *core.Timeline {
	return simulateNonPreemptive(processes, func(candidate, best *core.Process) bool {
		if candidate.BurstTime != best.BurstTime {
			return candidate.BurstTime < best.BurstTime
		}
		return candidate.ArrivalTime < best.ArrivalTime
	})
}

// simulateNonPreemptive runs the shared control flow of the SJF and
// priority schedulers: re-scan the remaining set each step so arrivals
// during the previous run are picked up, jump the clock to the next
// arrival when nobody is ready, and run the selected process fully.
// The strict less function never prefers a later slot on a full tie,
// which is what keeps input order as the final tie-break.
func simulateNonPreemptive(processes []*core.Process, less func(candidate, best *core.Process) bool) *core.Timeline {
	remaining := make([]*core.Process, len(processes))
	copy(remaining, processes)

	// clock starts at the first arrival, same as the other policies
	earliest := remaining[0].ArrivalTime
	for _, process := range remaining[1:] {
		if process.ArrivalTime < earliest {
			earliest = process.ArrivalTime
		}
	}
	timeline := core.NewTimeline(earliest)
	for len(remaining) > 0 {
		selected := -1
		for i, candidate := range remaining {
			if candidate.ArrivalTime > timeline.CurrentTime() {
				continue
			}
			if selected == -1 || less(candidate, remaining[selected]) {
				selected = i
			}
		}

		if selected == -1 {
			// nobody has arrived yet: idle until the next arrival
			next := remaining[0].ArrivalTime
			for _, candidate := range remaining[1:] {
				if candidate.ArrivalTime < next {
					next = candidate.ArrivalTime
				}
			}
			timeline.AdvanceTo(next)
			continue
		}

		process := remaining[selected]
		timeline.Run(process, process.BurstTime)
		process.RemainingTime = 0
		remaining = append(remaining[:selected], remaining[selected+1:]...)
	}
	return timeline
}

func ScheduleShortestJobFirst(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	return Schedule(ShortestJobFirst{}, request)
}
