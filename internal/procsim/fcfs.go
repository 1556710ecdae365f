package procsim

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// FCFS is first-come-first-served: a plain FIFO run queue.
type FCFS struct {
	ready *linkedlistqueue.Queue
}

// NewFCFS creates an empty FCFS scheduler.
func NewFCFS() *FCFS {
	return &FCFS{ready: linkedlistqueue.New()}
}

func (s *FCFS) Add(p *Process) { s.ready.Enqueue(p) }

func (s *FCFS) Next() (*Process, bool) {
	v, ok := s.ready.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*Process), true
}

func (s *FCFS) TestPreempt(running, arriving *Process, now int) bool { return false }
func (s *FCFS) Quantum() int                                         { return InfiniteQuantum }
func (s *FCFS) MaxPrio() int                                         { return 0 }
func (s *FCFS) PreprioCapable() bool                                 { return false }
func (s *FCFS) HeaderLine() string                                   { return "FCFS" }
