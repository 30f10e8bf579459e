package util

import "cpu-scheduler/internal/responses"

// CalculateAverages returns the arithmetic mean of the waiting and
// turnaround times. Values stay unrounded; two-decimal rounding is a
// rendering concern.
func CalculateAverages(processDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
