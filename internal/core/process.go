package core

// IdleProcessId tags timeline gaps where no process was ready to run.
const IdleProcessId = "IDLE"

// Process is one schedulable unit of work. Id, ArrivalTime, BurstTime and
// Priority come from the caller and are never changed; RemainingTime is
// working state for the preemptive schedulers and must be exactly 0 once
// the process has finished. The remaining fields are derived from the
// timeline after simulation.
type Process struct {
	Id          string
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime  int
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
}

func NewProcess(id string, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		Id:            id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
	}
}
