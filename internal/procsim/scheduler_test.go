package procsim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"procsim/internal/procsim"
)

var _ = Describe("FCFS", func() {
	It("is a FIFO", func() {
		s := procsim.NewFCFS()
		a := &procsim.Process{PID: 1}
		b := &procsim.Process{PID: 2}
		s.Add(a)
		s.Add(b)

		next, ok := s.Next()
		Expect(ok).To(BeTrue())
		Expect(next.PID).To(Equal(procsim.PID(1)))

		next, ok = s.Next()
		Expect(ok).To(BeTrue())
		Expect(next.PID).To(Equal(procsim.PID(2)))

		_, ok = s.Next()
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("LCFS", func() {
	It("is a LIFO", func() {
		s := procsim.NewLCFS()
		a := &procsim.Process{PID: 1}
		b := &procsim.Process{PID: 2}
		s.Add(a)
		s.Add(b)

		next, _ := s.Next()
		Expect(next.PID).To(Equal(procsim.PID(2)))

		next, _ = s.Next()
		Expect(next.PID).To(Equal(procsim.PID(1)))
	})
})

var _ = Describe("SRTF", func() {
	It("orders by remaining CPU time ascending, stable on ties", func() {
		s := procsim.NewSRTF()
		a := &procsim.Process{PID: 1, RemainingCPUTime: 10}
		b := &procsim.Process{PID: 2, RemainingCPUTime: 5}
		c := &procsim.Process{PID: 3, RemainingCPUTime: 5}
		d := &procsim.Process{PID: 4, RemainingCPUTime: 20}

		s.Add(a)
		s.Add(b)
		s.Add(c)
		s.Add(d)

		var order []procsim.PID
		for {
			p, ok := s.Next()
			if !ok {
				break
			}
			order = append(order, p.PID)
		}

		Expect(order).To(Equal([]procsim.PID{2, 3, 1, 4}))
	})

	It("never preempts a running process", func() {
		s := procsim.NewSRTF()
		running := &procsim.Process{PID: 1, RemainingCPUTime: 100}
		arriving := &procsim.Process{PID: 2, RemainingCPUTime: 1}
		Expect(s.TestPreempt(running, arriving, 0)).To(BeFalse())
	})
})

var _ = Describe("RR", func() {
	It("is a FIFO with a caller-supplied quantum", func() {
		s := procsim.NewRR(5)
		Expect(s.Quantum()).To(Equal(5))
		Expect(s.HeaderLine()).To(Equal("RR 5"))

		a := &procsim.Process{PID: 1}
		b := &procsim.Process{PID: 2}
		s.Add(a)
		s.Add(b)

		next, _ := s.Next()
		Expect(next.PID).To(Equal(procsim.PID(1)))
	})
})

var _ = Describe("PRIO", func() {
	It("dispatches the highest active priority level first", func() {
		s := procsim.NewPRIO(10, 4)
		low := &procsim.Process{PID: 1, StaticPrio: 1}
		high := &procsim.Process{PID: 2, StaticPrio: 4}

		s.Add(low)
		s.Add(high)

		next, ok := s.Next()
		Expect(ok).To(BeTrue())
		Expect(next.PID).To(Equal(procsim.PID(2)))
		Expect(next.DynamicPrio).To(Equal(3))

		next, ok = s.Next()
		Expect(ok).To(BeTrue())
		Expect(next.PID).To(Equal(procsim.PID(1)))
		Expect(next.DynamicPrio).To(Equal(0))
	})

	It("ages a preempted process down one level, and routes level -1 to expired reset to static_prio-1", func() {
		s := procsim.NewPRIO(10, 4)
		p := &procsim.Process{PID: 1, StaticPrio: 1, DynamicPrio: 0, RemainingBurstTime: 3}

		s.Add(p) // dynamic_prio 0 -> -1 -> reset to static_prio-1=0, routed to expired
		Expect(p.DynamicPrio).To(Equal(0))

		// active is empty, so Next swaps in the expired table
		next, ok := s.Next()
		Expect(ok).To(BeTrue())
		Expect(next.PID).To(Equal(procsim.PID(1)))
	})

	It("resets dynamic priority on return from BLOCKED or CREATED", func() {
		s := procsim.NewPRIO(10, 4)
		p := &procsim.Process{PID: 1, StaticPrio: 3, DynamicPrio: -1, RemainingBurstTime: 0}
		s.Add(p)
		Expect(p.DynamicPrio).To(Equal(2))
	})

	It("never preempts", func() {
		s := procsim.NewPRIO(10, 4)
		running := &procsim.Process{PID: 1, DynamicPrio: 0, StopRunningTime: 1000}
		arriving := &procsim.Process{PID: 2, DynamicPrio: 3}
		Expect(s.TestPreempt(running, arriving, 5)).To(BeFalse())
		Expect(s.PreprioCapable()).To(BeFalse())
	})
})

var _ = Describe("PREPRIO", func() {
	It("preempts only when the arriving process outranks the runner and the runner's slice hasn't expired", func() {
		s := procsim.NewPREPRIO(5, 4)
		Expect(s.PreprioCapable()).To(BeTrue())

		running := &procsim.Process{PID: 1, DynamicPrio: 0, StopRunningTime: 100}
		higherArriving := &procsim.Process{PID: 2, DynamicPrio: 3}
		lowerArriving := &procsim.Process{PID: 3, DynamicPrio: 0}

		Expect(s.TestPreempt(running, higherArriving, 50)).To(BeTrue())
		Expect(s.TestPreempt(running, lowerArriving, 50)).To(BeFalse())
		Expect(s.TestPreempt(running, higherArriving, 100)).To(BeFalse()) // stop is not strictly in the future
	})
})
