package procsim

// InfiniteQuantum is the sentinel quantum used by schedulers that never
// preempt a running process on a timer (FCFS, LCFS, SRTF): large enough
// that no real CPU burst will ever exceed it.
const InfiniteQuantum = 10_000

// Scheduler is the policy interface the simulation loop drives. Each
// implementation owns its own run-queue shape; the loop never inspects
// it directly.
type Scheduler interface {
	// Add inserts a READY process into the run queue.
	Add(p *Process)

	// Next removes and returns the process the scheduler wants to run,
	// or reports false when the run queue is empty.
	Next() (*Process, bool)

	// TestPreempt reports whether arriving should preempt running right
	// now. Every policy but PREPRIO always returns false.
	TestPreempt(running, arriving *Process, now int) bool

	// Quantum is the maximum CPU slice a process may run before being
	// preempted back to READY.
	Quantum() int

	// MaxPrio is the number of dynamic priority levels, in [0, MaxPrio-1].
	// Zero for policies that don't use priority (FCFS, LCFS, SRTF, RR).
	MaxPrio() int

	// PreprioCapable reports whether this policy ever preempts a running
	// process mid-slice because of an arriving READY process.
	PreprioCapable() bool

	// HeaderLine is the scheduler name line printed above the summary,
	// e.g. "FCFS", "RR 5", "PRIO 10", "PREPRIO 5".
	HeaderLine() string
}
