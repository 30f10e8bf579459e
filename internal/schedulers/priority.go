package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Priority is non-preemptive priority scheduling: lower priority value
// wins. Same control flow as shortest job first, only the selection key
// differs; ties go to the earlier arrival, then to input order.
type Priority struct{}

func (Priority) Name() string { return PolicyPriority }

func (Priority) Simulate(processes []*core.Process) *core.Timeline {
	return simulateNonPreemptive(processes, func(candidate, best *core.Process) bool {
		if candidate.Priority != best.Priority {
			return candidate.Priority < best.Priority
		}
		return candidate.ArrivalTime < best.ArrivalTime
	})
}

func SchedulePriority(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	return Schedule(Priority{}, request)
}
