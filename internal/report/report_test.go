package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func TestLoadProcesses(t *testing.T) {
	csv := "P1,10,0\nP2,5,1,3\n"

	request, err := LoadProcesses(strings.NewReader(csv))
	require.NoError(t, err)

	require.Equal(t, []requests.ProcessInput{
		{ProcessId: "P1", ArrivalTime: 0, BurstTime: 10},
		{ProcessId: "P2", ArrivalTime: 1, BurstTime: 5, Priority: 3},
	}, request.Processes)
}

func TestLoadProcessesRejectsBadRows(t *testing.T) {
	_, err := LoadProcesses(strings.NewReader("P1,10\n"))
	require.Error(t, err)

	_, err = LoadProcesses(strings.NewReader("P1,ten,0\n"))
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	response, err := schedulers.ScheduleFirstComeFirstServe(&requests.ScheduleRequest{
		Processes: []requests.ProcessInput{
			{ProcessId: "P1", ArrivalTime: 0, BurstTime: 10},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 5},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Render(&buf, response)
	out := buf.String()

	assert.Contains(t, out, schedulers.PolicyFirstComeFirstServe)
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "4.50")
}

func TestRenderHandlesLongProcessIds(t *testing.T) {
	response, err := schedulers.ScheduleFirstComeFirstServe(&requests.ScheduleRequest{
		Processes: []requests.ProcessInput{
			{ProcessId: "batch-import-worker-01", ArrivalTime: 0, BurstTime: 3},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 2},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NotPanics(t, func() { Render(&buf, response) })
	assert.Contains(t, buf.String(), "batch-import-worker-01")
}
