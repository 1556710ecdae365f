package procsim

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// prioLevels holds the active/expired pair of priority-indexed FIFO
// tables shared by PRIO and PREPRIO: an array of queues indexed by
// dynamic priority in [0, maxprio-1], plus its sibling table that a
// process drops into once it ages down to level -1.
type prioLevels struct {
	quantum int
	maxprio int
	active  []*linkedlistqueue.Queue
	expired []*linkedlistqueue.Queue
}

func newPrioLevels(quantum, maxprio int) *prioLevels {
	active := make([]*linkedlistqueue.Queue, maxprio)
	expired := make([]*linkedlistqueue.Queue, maxprio)
	for i := 0; i < maxprio; i++ {
		active[i] = linkedlistqueue.New()
		expired[i] = linkedlistqueue.New()
	}
	return &prioLevels{quantum: quantum, maxprio: maxprio, active: active, expired: expired}
}

// Add implements the shared PRIO/PREPRIO enqueue rule: a process
// returning mid-burst from a preempted RUNNING slice drops one dynamic
// priority level, routing to the expired table and resetting to
// static_prio-1 once it falls to level -1; a process arriving from
// BLOCKED or CREATED always resets straight to static_prio-1 on the
// active table.
func (l *prioLevels) Add(p *Process) {
	if p.RemainingBurstTime > 0 {
		p.DynamicPrio--
		if p.DynamicPrio == -1 {
			p.DynamicPrio = p.StaticPrio - 1
			l.expired[p.DynamicPrio].Enqueue(p)
			return
		}
	} else {
		p.DynamicPrio = p.StaticPrio - 1
	}
	l.active[p.DynamicPrio].Enqueue(p)
}

// Next scans active levels from highest to lowest; if all are empty it
// swaps active and expired and scans again.
func (l *prioLevels) Next() (*Process, bool) {
	if p, ok := popHighest(l.active); ok {
		return p, true
	}
	l.active, l.expired = l.expired, l.active
	return popHighest(l.active)
}

func popHighest(levels []*linkedlistqueue.Queue) (*Process, bool) {
	for i := len(levels) - 1; i >= 0; i-- {
		if v, ok := levels[i].Dequeue(); ok {
			return v.(*Process), true
		}
	}
	return nil, false
}

func (l *prioLevels) Quantum() int { return l.quantum }
func (l *prioLevels) MaxPrio() int { return l.maxprio }

// PRIO is non-preemptive priority scheduling with active/expired aging.
type PRIO struct {
	*prioLevels
}

// NewPRIO creates an empty PRIO scheduler. maxprio defaults to 4 when
// the caller passes 0 or less, matching the CLI's "P<quantum>" (no
// ":maxprio") form.
func NewPRIO(quantum, maxprio int) *PRIO {
	if maxprio <= 0 {
		maxprio = 4
	}
	return &PRIO{newPrioLevels(quantum, maxprio)}
}

func (s *PRIO) TestPreempt(running, arriving *Process, now int) bool { return false }
func (s *PRIO) PreprioCapable() bool                                 { return false }
func (s *PRIO) HeaderLine() string                                   { return fmt.Sprintf("PRIO %d", s.quantum) }

// PREPRIO is preemptive priority scheduling: identical run-queue shape
// to PRIO, but a newly READY process can cut off the currently running
// process when it strictly outranks it and the running process's slice
// hasn't actually expired yet.
type PREPRIO struct {
	*prioLevels
}

// NewPREPRIO creates an empty PREPRIO scheduler. maxprio defaults to 4
// the same way NewPRIO's does.
func NewPREPRIO(quantum, maxprio int) *PREPRIO {
	if maxprio <= 0 {
		maxprio = 4
	}
	return &PREPRIO{newPrioLevels(quantum, maxprio)}
}

func (s *PREPRIO) TestPreempt(running, arriving *Process, now int) bool {
	return running.DynamicPrio < arriving.DynamicPrio && now < running.StopRunningTime
}
func (s *PREPRIO) PreprioCapable() bool { return true }
func (s *PREPRIO) HeaderLine() string   { return fmt.Sprintf("PREPRIO %d", s.quantum) }
