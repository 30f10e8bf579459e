package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

type ProcessInput struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequest struct {
	Processes   []ProcessInput `json:"processes"`
	TimeQuantum int            `json:"time_quantum"`
}

var (
	ErrEmptyProcessSet    = errors.New("process set is empty")
	ErrInvalidBurstTime   = errors.New("burst time must be positive")
	ErrInvalidArrivalTime = errors.New("arrival time must be non-negative")
	ErrDuplicateProcessId = errors.New("duplicate process id")
	ErrReservedProcessId  = errors.New("process id is reserved")
)

// Validate checks the whole request before any simulation starts. A bad
// process rejects the request outright: skipping it would silently change
// every other process's metrics.
func (r *ScheduleRequest) Validate() error {
	if len(r.Processes) == 0 {
		return ErrEmptyProcessSet
	}
	seen := make(map[string]struct{}, len(r.Processes))
	for _, input := range r.Processes {
		if input.BurstTime < 1 {
			return fmt.Errorf("%w: pid %s has burst time %d", ErrInvalidBurstTime, input.ProcessId, input.BurstTime)
		}
		if input.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %s has arrival time %d", ErrInvalidArrivalTime, input.ProcessId, input.ArrivalTime)
		}
		if input.ProcessId == core.IdleProcessId {
			return fmt.Errorf("%w: %q", ErrReservedProcessId, input.ProcessId)
		}
		if _, ok := seen[input.ProcessId]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateProcessId, input.ProcessId)
		}
		seen[input.ProcessId] = struct{}{}
	}
	return nil
}

// Records materializes a fresh copy of the process set in input order.
// Every call returns new records, so simulations running concurrently on
// the same request never share mutable state.
func (r *ScheduleRequest) Records() []*core.Process {
	processes := make([]*core.Process, len(r.Processes))
	for i, input := range r.Processes {
		processes[i] = core.NewProcess(input.ProcessId, input.ArrivalTime, input.BurstTime, input.Priority)
	}
	return processes
}
