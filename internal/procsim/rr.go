package procsim

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// RR is round-robin: a FIFO run queue identical to FCFS, but with a
// caller-supplied positive quantum. It carries no priority-aging state.
type RR struct {
	ready   *linkedlistqueue.Queue
	quantum int
}

// NewRR creates an empty RR scheduler with the given quantum.
func NewRR(quantum int) *RR {
	return &RR{ready: linkedlistqueue.New(), quantum: quantum}
}

func (s *RR) Add(p *Process) { s.ready.Enqueue(p) }

func (s *RR) Next() (*Process, bool) {
	v, ok := s.ready.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*Process), true
}

func (s *RR) TestPreempt(running, arriving *Process, now int) bool { return false }
func (s *RR) Quantum() int                                         { return s.quantum }
func (s *RR) MaxPrio() int                                         { return 0 }
func (s *RR) PreprioCapable() bool                                 { return false }
func (s *RR) HeaderLine() string                                   { return fmt.Sprintf("RR %d", s.quantum) }
