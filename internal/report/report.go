package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

// RunFile loads a CSV of processes and prints the schedule produced by
// every policy, one section per policy. The quantum feeds round robin.
func RunFile(w io.Writer, path string, timeQuantum int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening scheduling file: %w", err)
	}
	defer f.Close()

	request, err := LoadProcesses(f)
	if err != nil {
		return err
	}
	request.TimeQuantum = timeQuantum

	for _, name := range schedulers.PolicyNames() {
		policy, err := schedulers.PolicyForName(name, request.TimeQuantum)
		if err != nil {
			return err
		}
		response, err := schedulers.Schedule(policy, request)
		if err != nil {
			return err
		}
		Render(w, response)
	}
	return nil
}

// LoadProcesses parses CSV rows of the form id,burst,arrival[,priority].
func LoadProcesses(r io.Reader) (*requests.ScheduleRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	request := &requests.ScheduleRequest{Processes: make([]requests.ProcessInput, len(rows))}
	for i := range rows {
		if len(rows[i]) < 3 {
			return nil, fmt.Errorf("row %d: want id,burst,arrival[,priority], got %d fields", i+1, len(rows[i]))
		}
		burst, err := parseField(rows[i][1], i, "burst")
		if err != nil {
			return nil, err
		}
		arrival, err := parseField(rows[i][2], i, "arrival")
		if err != nil {
			return nil, err
		}
		var priority int
		if len(rows[i]) >= 4 {
			if priority, err = parseField(rows[i][3], i, "priority"); err != nil {
				return nil, err
			}
		}
		request.Processes[i] = requests.ProcessInput{
			ProcessId:   strings.TrimSpace(rows[i][0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
			Priority:    priority,
		}
	}

	return request, nil
}

func parseField(s string, row int, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("row %d: bad %s value %q", row+1, name, s)
	}
	return v, nil
}

// Render prints one policy's result: title, Gantt chart, schedule table.
func Render(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response.Algorithm)
	outputGantt(w, response.Gantt)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.IntervalResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := gantt[i].ProcessId
		// ids are opaque caller strings and can outgrow the cell
		padding := ""
		if n := (8 - len(pid)) / 2; n > 0 {
			padding = strings.Repeat(" ", n)
		}
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, gantt[i].StartTime, "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, gantt[i].EndTime)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	for _, process := range response.Details {
		table.Append([]string{
			process.ProcessId,
			strconv.Itoa(process.Priority),
			strconv.Itoa(process.BurstTime),
			strconv.Itoa(process.ArrivalTime),
			strconv.Itoa(process.WaitingTime),
			strconv.Itoa(process.TurnAroundTime),
			strconv.Itoa(process.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
