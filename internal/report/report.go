// Package report renders a finished simulation Result as the exact
// textual format this simulator's wrapper programs expect. It performs
// no simulation logic, only formatting.
package report

import (
	"fmt"
	"io"

	"procsim/internal/procsim"
)

// Render writes the per-process lines, the scheduler header line, and
// the summary line, in that order, to w.
func Render(w io.Writer, res procsim.Result) error {
	for _, p := range res.Processes {
		if _, err := fmt.Fprintf(w, "%04d: %4d %4d %4d %4d %1d | %5d %5d %5d %5d\n",
			p.PID,
			p.ArrivalTime,
			p.TotalCPUTime,
			p.CPUBurstMax,
			p.IOBurstMax,
			p.StaticPrio,
			p.FinishingTime,
			p.TurnaroundTime,
			p.IOWaitingTime,
			p.CPUWaitingTime,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, res.SchedulerHeader); err != nil {
		return err
	}

	s := res.Summary
	_, err := fmt.Fprintf(w, "SUM: %d %.2f %.2f %.2f %.2f %.3f\n",
		s.EndTime,
		s.CPUUtilization,
		s.IOUtilization,
		s.AvgTurnaround,
		s.AvgCPUWaiting,
		s.Throughput,
	)
	return err
}
