package procsim

import "github.com/emirpasic/gods/stacks/arraystack"

// LCFS is last-come-first-served: a plain LIFO run queue.
type LCFS struct {
	ready *arraystack.Stack
}

// NewLCFS creates an empty LCFS scheduler.
func NewLCFS() *LCFS {
	return &LCFS{ready: arraystack.New()}
}

func (s *LCFS) Add(p *Process) { s.ready.Push(p) }

func (s *LCFS) Next() (*Process, bool) {
	v, ok := s.ready.Pop()
	if !ok {
		return nil, false
	}
	return v.(*Process), true
}

func (s *LCFS) TestPreempt(running, arriving *Process, now int) bool { return false }
func (s *LCFS) Quantum() int                                         { return InfiniteQuantum }
func (s *LCFS) MaxPrio() int                                         { return 0 }
func (s *LCFS) PreprioCapable() bool                                 { return false }
func (s *LCFS) HeaderLine() string                                   { return "LCFS" }
