package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// generateResponse derives every metric from the finished timeline in one
// pass: a process's completion time is the end of its last execution
// interval, turnaround and waiting follow from it.
func generateResponse(algorithm string, processes []*core.Process, timeline *core.Timeline) responses.ScheduleResponse {
	completions := make(map[string]int, len(processes))
	gantt := make([]responses.IntervalResponse, 0, len(timeline.Intervals()))
	var busyTime int
	for _, interval := range timeline.Intervals() {
		if interval.ProcessId != core.IdleProcessId {
			completions[interval.ProcessId] = interval.End
			busyTime += interval.End - interval.Start
		}
		gantt = append(gantt, responses.IntervalResponse{
			ProcessId: interval.ProcessId,
			StartTime: interval.Start,
			EndTime:   interval.End,
		})
	}

	processDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		if process.RemainingTime != 0 {
			panic(fmt.Sprintf("schedulers: pid %s finished with remaining time %d", process.Id, process.RemainingTime))
		}
		process.CompletionTime = completions[process.Id]
		process.TurnAroundTime = process.CompletionTime - process.ArrivalTime
		process.WaitingTime = process.TurnAroundTime - process.BurstTime

		processDetails = append(processDetails, responses.ProcessResponse{
			ProcessId:      process.Id,
			ArrivalTime:    process.ArrivalTime,
			BurstTime:      process.BurstTime,
			Priority:       process.Priority,
			CompletionTime: process.CompletionTime,
			TurnAroundTime: process.TurnAroundTime,
			WaitingTime:    process.WaitingTime,
		})
	}

	averageWaitingTime, averageTurnAroundTime := util.CalculateAverages(processDetails)

	// the schedule's span is measured from the timeline's start, not
	// from zero: a late first arrival is not idle time
	idleTime := timeline.IdleTime()
	totalTime := timeline.CurrentTime() - timeline.StartTime()
	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		Gantt:                 gantt,
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        float64(busyTime) / float64(totalTime),
		CpuThroughput:         float64(len(processes)) / float64(totalTime),
		Details:               processDetails,
	}
}
