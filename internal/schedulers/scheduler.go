package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

const (
	PolicyFirstComeFirstServe = "FCFS"
	PolicyShortestJobFirst    = "SJF"
	PolicyPriority            = "PRIORITY"
	PolicyRoundRobin          = "ROUND_ROBIN"
)

var (
	ErrUnknownPolicy      = errors.New("unknown scheduling policy")
	ErrInvalidTimeQuantum = errors.New("round robin needs a positive time quantum")
)

// Policy is one scheduling algorithm. Simulate consumes a fresh copy of
// the process set and returns the timeline it produced; input validation
// has already happened, so a Policy reports defects by panicking rather
// than returning errors.
type Policy interface {
	Name() string
	Simulate(processes []*core.Process) *core.Timeline
}

// PolicyForName resolves a policy selector. The time quantum is only
// meaningful for round robin and must be positive there; there is no
// engine default.
func PolicyForName(name string, timeQuantum int) (Policy, error) {
	switch name {
	case PolicyFirstComeFirstServe:
		return FirstComeFirstServe{}, nil
	case PolicyShortestJobFirst:
		return ShortestJobFirst{}, nil
	case PolicyPriority:
		return Priority{}, nil
	case PolicyRoundRobin:
		return NewRoundRobin(timeQuantum)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// PolicyNames lists every supported policy selector in display order.
func PolicyNames() []string {
	return []string{PolicyFirstComeFirstServe, PolicyShortestJobFirst, PolicyPriority, PolicyRoundRobin}
}

// Schedule validates the request, runs the policy over its own copy of
// the process set, and derives the metrics. Either the whole request is
// scheduled or nothing is.
func Schedule(policy Policy, request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	processes := request.Records()
	timeline := policy.Simulate(processes)
	return generateResponse(policy.Name(), processes, timeline), nil
}
