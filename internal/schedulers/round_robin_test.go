package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func TestRoundRobin(t *testing.T) {
	response, err := ScheduleRoundRobin(newRequest(0,
		proc("P1", 0, 5, 0),
		proc("P2", 1, 3, 0),
		proc("P3", 2, 1, 0),
	), 2)
	require.NoError(t, err)

	require.Equal(t, []responses.IntervalResponse{
		{ProcessId: "P1", StartTime: 0, EndTime: 2},
		{ProcessId: "P2", StartTime: 2, EndTime: 4},
		{ProcessId: "P3", StartTime: 4, EndTime: 5},
		{ProcessId: "P1", StartTime: 5, EndTime: 7},
		{ProcessId: "P2", StartTime: 7, EndTime: 8},
		{ProcessId: "P1", StartTime: 8, EndTime: 9},
	}, response.Gantt)

	completions := map[string]int{}
	for _, process := range response.Details {
		completions[process.ProcessId] = process.CompletionTime
	}
	assert.Equal(t, map[string]int{"P1": 9, "P2": 8, "P3": 5}, completions)
}

func TestRoundRobinRequiresPositiveQuantum(t *testing.T) {
	request := newRequest(0, proc("P1", 0, 5, 0))

	_, err := ScheduleRoundRobin(request, 0)
	require.ErrorIs(t, err, ErrInvalidTimeQuantum)
	_, err = ScheduleRoundRobin(request, -1)
	require.ErrorIs(t, err, ErrInvalidTimeQuantum)
}

func TestRoundRobinLargeQuantumMatchesFirstComeFirstServe(t *testing.T) {
	request := newRequest(0,
		proc("P1", 0, 7, 0),
		proc("P2", 2, 4, 0),
		proc("P3", 3, 9, 0),
		proc("P4", 11, 2, 0),
	)

	fcfs, err := ScheduleFirstComeFirstServe(request)
	require.NoError(t, err)
	roundRobin, err := ScheduleRoundRobin(request, 9)
	require.NoError(t, err)

	assert.Equal(t, busySlices(fcfs.Gantt), busySlices(roundRobin.Gantt))
	assert.Equal(t, fcfs.Details, roundRobin.Details)
	assert.Equal(t, fcfs.AverageWaitingTime, roundRobin.AverageWaitingTime)
	assert.Equal(t, fcfs.AverageTurnAroundTime, roundRobin.AverageTurnAroundTime)
}

func TestRoundRobinIdlesWhenQueueDrainsBeforeNextArrival(t *testing.T) {
	response, err := ScheduleRoundRobin(newRequest(0,
		proc("P1", 0, 2, 0),
		proc("P2", 6, 2, 0),
	), 4)
	require.NoError(t, err)

	require.Equal(t, []responses.IntervalResponse{
		{ProcessId: "P1", StartTime: 0, EndTime: 2},
		{ProcessId: core.IdleProcessId, StartTime: 2, EndTime: 6},
		{ProcessId: "P2", StartTime: 6, EndTime: 8},
	}, response.Gantt)
}

func TestRoundRobinAdmitsArrivalsBeforeRequeue(t *testing.T) {
	// P2 arrives exactly when P1's first slice ends, so it must run
	// before P1 gets the cpu back.
	response, err := ScheduleRoundRobin(newRequest(0,
		proc("P1", 0, 4, 0),
		proc("P2", 2, 2, 0),
	), 2)
	require.NoError(t, err)

	require.Equal(t, []responses.IntervalResponse{
		{ProcessId: "P1", StartTime: 0, EndTime: 2},
		{ProcessId: "P2", StartTime: 2, EndTime: 4},
		{ProcessId: "P1", StartTime: 4, EndTime: 6},
	}, response.Gantt)
}
