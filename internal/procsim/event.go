package procsim

// Event is a single pending state transition. Two events with the same
// Timestamp are ordered by their insertion sequence, assigned by the DES
// queue at insert time — this is what gives same-time events their FIFO
// discipline.
type Event struct {
	Timestamp int
	Process   *Process
	From      State
	To        State

	seq int64
}
