package procsim

import "github.com/emirpasic/gods/lists/arraylist"

// SRTF is shortest-remaining-time-first. The run queue is kept ordered
// by RemainingCPUTime ascending; Add does a linear-scan insertion after
// every existing element whose RemainingCPUTime is less than or equal to
// the arriving process's, which keeps arrivals with equal remaining time
// in FIFO order. SRTF never preempts a RUNNING process — "shortest
// remaining time first" only governs queue ordering, despite the name.
type SRTF struct {
	ready *arraylist.List
}

// NewSRTF creates an empty SRTF scheduler.
func NewSRTF() *SRTF {
	return &SRTF{ready: arraylist.New()}
}

func (s *SRTF) Add(p *Process) {
	n := s.ready.Size()
	insertAt := n
	for i := 0; i < n; i++ {
		v, _ := s.ready.Get(i)
		if v.(*Process).RemainingCPUTime > p.RemainingCPUTime {
			insertAt = i
			break
		}
	}
	s.ready.Insert(insertAt, p)
}

func (s *SRTF) Next() (*Process, bool) {
	v, ok := s.ready.Get(0)
	if !ok {
		return nil, false
	}
	s.ready.Remove(0)
	return v.(*Process), true
}

func (s *SRTF) TestPreempt(running, arriving *Process, now int) bool { return false }
func (s *SRTF) Quantum() int                                         { return InfiniteQuantum }
func (s *SRTF) MaxPrio() int                                         { return 0 }
func (s *SRTF) PreprioCapable() bool                                 { return false }
func (s *SRTF) HeaderLine() string                                   { return "SRTF" }
