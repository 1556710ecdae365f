package procsim

import "procsim/internal/procsim/trace"

// Simulation bundles everything the event loop needs — the DES queue,
// the random oracle, the scheduler under test, the roster, and the
// running totals — as an explicit value. Nothing here is a hidden
// singleton; a caller can run two Simulations concurrently without them
// interfering.
type Simulation struct {
	DES       *DES
	Oracle    *RandomOracle
	Scheduler Scheduler
	Roster    []*Process
	Trace     trace.Sink

	Now     int
	Running *Process

	cpuBusy         int
	ioBusy          int
	concurrentIO    int
	ioIntervalStart int
}

// NewSimulation creates an empty Simulation ready for LoadProcesses then
// Run. Trace defaults to a no-op sink.
func NewSimulation(scheduler Scheduler, oracle *RandomOracle) *Simulation {
	return &Simulation{
		DES:       NewDES(),
		Oracle:    oracle,
		Scheduler: scheduler,
		Trace:     trace.NopSink{},
	}
}

// Run drains the event queue to completion and returns the finished
// run's report data. The loop terminates as soon as the DES queue is
// empty — by that point every process has reached DONE, since a DONE
// transition is the only kind that doesn't re-insert a follow-up event.
func (sim *Simulation) Run() Result {
	for {
		event, ok := sim.DES.Pop()
		if !ok {
			break
		}
		sim.step(event)
	}

	return sim.summarize()
}

func (sim *Simulation) step(event *Event) {
	p := event.Process
	now := event.Timestamp
	sim.Now = now

	switch event.From {
	case StateRunning:
		sim.cpuBusy += now - p.StateEntryTime
	case StateBlocked:
		sim.concurrentIO--
		if sim.concurrentIO == 0 {
			sim.ioBusy += now - sim.ioIntervalStart
		}
	}

	callScheduler := false

	switch event.To {
	case StateReady:
		sim.Scheduler.Add(p)
		sim.Trace.Emit(trace.Event{Time: now, Kind: trace.KindReady, PID: int(p.PID)})

		switch {
		case p.RemainingBurstTime > 0:
			// tail of a just-expired RUNNING quantum
			sim.Running = nil
		case sim.Scheduler.PreprioCapable() && sim.Running != nil &&
			sim.Scheduler.TestPreempt(sim.Running, p, now):
			sim.preempt(sim.Running, now)
		}
		callScheduler = true

	case StateRunning:
		p.CPUWaitingTime += now - p.StateEntryTime
		sim.dispatch(p, now)
		sim.Trace.Emit(trace.Event{Time: now, Kind: trace.KindRunning, PID: int(p.PID)})

	case StateBlocked:
		sim.Running = nil
		sim.concurrentIO++
		if sim.concurrentIO == 1 {
			sim.ioIntervalStart = now
		}
		d := sim.Oracle.Next(p.IOBurstMax)
		p.IOWaitingTime += d
		sim.DES.Insert(&Event{Timestamp: now + d, Process: p, From: StateBlocked, To: StateReady})
		sim.Trace.Emit(trace.Event{Time: now, Kind: trace.KindBlocked, PID: int(p.PID)})
		callScheduler = true

	case StateDone:
		sim.Running = nil
		p.FinishingTime = now
		p.TurnaroundTime = now - p.ArrivalTime
		sim.Trace.Emit(trace.Event{Time: now, Kind: trace.KindDone, PID: int(p.PID)})
		callScheduler = true

	case StateCreated:
		// unreachable: no event's To is ever StateCreated.
	}

	p.StateEntryTime = now

	if callScheduler {
		sim.callScheduler(now)
	}
}

// preempt cuts running off mid-slice: its stale RUNNING-exit event is
// cancelled and superseded by an immediate RUNNING→READY event, and its
// counters are rolled back by the unused tail of its slice.
func (sim *Simulation) preempt(running *Process, now int) {
	sim.DES.RemoveFor(running.PID)
	sim.DES.Insert(&Event{Timestamp: now, Process: running, From: StateRunning, To: StateReady})

	unused := running.StopRunningTime - now
	running.RemainingBurstTime += unused
	running.RemainingCPUTime += unused
	running.StopRunningTime = now

	sim.Trace.Emit(trace.Event{Time: now, Kind: trace.KindPreempt, PID: int(running.PID)})
}

// dispatch computes p's CPU slice length and emits the follow-up event:
// DONE if the slice exhausts the process's remaining CPU time, READY if
// the quantum expires first, otherwise BLOCKED once the drawn burst runs
// out.
func (sim *Simulation) dispatch(p *Process, now int) {
	quantum := sim.Scheduler.Quantum()

	var slice int
	preemptAfter := false

	if p.RemainingBurstTime > 0 {
		if p.RemainingBurstTime > quantum {
			slice = quantum
			p.RemainingBurstTime -= quantum
			preemptAfter = true
		} else {
			slice = p.RemainingBurstTime
			p.RemainingBurstTime = 0
		}
	} else {
		b := sim.Oracle.Next(p.CPUBurstMax)
		if b > quantum {
			slice = quantum
			p.RemainingBurstTime = b - quantum
			preemptAfter = true
		} else {
			slice = b
		}
	}

	switch {
	case p.RemainingCPUTime <= slice:
		slice = p.RemainingCPUTime
		p.RemainingBurstTime = 0
		p.RemainingCPUTime = 0
		sim.DES.Insert(&Event{Timestamp: now + slice, Process: p, From: StateRunning, To: StateDone})
	case preemptAfter:
		p.RemainingCPUTime -= slice
		sim.DES.Insert(&Event{Timestamp: now + slice, Process: p, From: StateRunning, To: StateReady})
	default:
		p.RemainingCPUTime -= slice
		sim.DES.Insert(&Event{Timestamp: now + slice, Process: p, From: StateRunning, To: StateBlocked})
	}

	p.StopRunningTime = now + slice
}

// callScheduler implements the dispatch-deferral rule: more events at
// the current timestamp are drained before a new process is picked, so
// a CREATED→READY arriving at t is visible to the scheduler before it
// chooses who runs next at t.
func (sim *Simulation) callScheduler(now int) {
	if sim.DES.PeekNextTime() == now {
		return
	}
	if sim.Running != nil {
		return
	}
	q, ok := sim.Scheduler.Next()
	if !ok {
		return
	}
	sim.Running = q
	sim.DES.Insert(&Event{Timestamp: now, Process: q, From: StateReady, To: StateRunning})
}

func (sim *Simulation) summarize() Result {
	n := len(sim.Roster)
	stats := make([]ProcessStat, n)

	var totalTAT, totalCW float64
	for i, p := range sim.Roster {
		stats[i] = ProcessStat{
			PID:            int(p.PID),
			ArrivalTime:    p.ArrivalTime,
			TotalCPUTime:   p.TotalCPUTime,
			CPUBurstMax:    p.CPUBurstMax,
			IOBurstMax:     p.IOBurstMax,
			StaticPrio:     p.StaticPrio,
			FinishingTime:  p.FinishingTime,
			TurnaroundTime: p.TurnaroundTime,
			IOWaitingTime:  p.IOWaitingTime,
			CPUWaitingTime: p.CPUWaitingTime,
		}
		totalTAT += float64(p.TurnaroundTime)
		totalCW += float64(p.CPUWaitingTime)
	}

	end := sim.Now
	summary := Summary{EndTime: end}
	if end > 0 {
		summary.CPUUtilization = 100 * float64(sim.cpuBusy) / float64(end)
		summary.IOUtilization = 100 * float64(sim.ioBusy) / float64(end)
		summary.Throughput = 100 * float64(n) / float64(end)
	}
	if n > 0 {
		summary.AvgTurnaround = totalTAT / float64(n)
		summary.AvgCPUWaiting = totalCW / float64(n)
	}

	return Result{
		Processes:       stats,
		Summary:         summary,
		SchedulerHeader: sim.Scheduler.HeaderLine(),
	}
}
