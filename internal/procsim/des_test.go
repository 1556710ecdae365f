package procsim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"procsim/internal/procsim"
)

var _ = Describe("DES", func() {
	var (
		des *procsim.DES
		p1  *procsim.Process
		p2  *procsim.Process
		p3  *procsim.Process
	)

	BeforeEach(func() {
		des = procsim.NewDES()
		p1 = &procsim.Process{PID: 1}
		p2 = &procsim.Process{PID: 2}
		p3 = &procsim.Process{PID: 3}
	})

	It("pops events in timestamp order", func() {
		des.Insert(&procsim.Event{Timestamp: 10, Process: p1, To: procsim.StateReady})
		des.Insert(&procsim.Event{Timestamp: 5, Process: p2, To: procsim.StateReady})
		des.Insert(&procsim.Event{Timestamp: 20, Process: p3, To: procsim.StateReady})

		first, ok := des.Pop()
		Expect(ok).To(BeTrue())
		Expect(first.Process.PID).To(Equal(procsim.PID(2)))

		second, ok := des.Pop()
		Expect(ok).To(BeTrue())
		Expect(second.Process.PID).To(Equal(procsim.PID(1)))

		third, ok := des.Pop()
		Expect(ok).To(BeTrue())
		Expect(third.Process.PID).To(Equal(procsim.PID(3)))

		_, ok = des.Pop()
		Expect(ok).To(BeFalse())
	})

	It("breaks ties on equal timestamps by insertion order", func() {
		des.Insert(&procsim.Event{Timestamp: 7, Process: p1, To: procsim.StateReady})
		des.Insert(&procsim.Event{Timestamp: 7, Process: p2, To: procsim.StateReady})
		des.Insert(&procsim.Event{Timestamp: 7, Process: p3, To: procsim.StateReady})

		first, _ := des.Pop()
		second, _ := des.Pop()
		third, _ := des.Pop()

		Expect([]procsim.PID{first.Process.PID, second.Process.PID, third.Process.PID}).
			To(Equal([]procsim.PID{1, 2, 3}))
	})

	It("reports -1 for the next timestamp when empty", func() {
		Expect(des.PeekNextTime()).To(Equal(-1))
	})

	It("peeks the next timestamp without removing it", func() {
		des.Insert(&procsim.Event{Timestamp: 42, Process: p1, To: procsim.StateReady})
		Expect(des.PeekNextTime()).To(Equal(42))
		Expect(des.Len()).To(Equal(1))
	})

	It("removes the single pending event for a pid", func() {
		des.Insert(&procsim.Event{Timestamp: 1, Process: p1, To: procsim.StateRunning})
		des.Insert(&procsim.Event{Timestamp: 2, Process: p2, To: procsim.StateRunning})

		removed := des.RemoveFor(p1.PID)
		Expect(removed.Process.PID).To(Equal(p1.PID))
		Expect(des.Len()).To(Equal(1))

		remaining, ok := des.Pop()
		Expect(ok).To(BeTrue())
		Expect(remaining.Process.PID).To(Equal(p2.PID))
	})
})
