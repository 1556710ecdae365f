package procsim

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// eventKey orders pending events by (timestamp, seq): the stable
// insertion discipline required so that events sharing a timestamp are
// drained in the order they were scheduled.
type eventKey struct {
	timestamp int
	seq       int64
}

func compareEventKeys(a, b any) int {
	ka, kb := a.(eventKey), b.(eventKey)
	switch {
	case ka.timestamp < kb.timestamp:
		return -1
	case ka.timestamp > kb.timestamp:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// DES is the simulator's event queue: a stable priority queue of Events
// ordered by (timestamp, seq), backed by a red-black tree so insert, pop,
// and peek are all O(log n). A side index from PID to tree key makes
// RemoveFor O(log n) too.
type DES struct {
	tree  *redblacktree.Tree
	byPID map[PID]eventKey
	seq   int64
}

// NewDES creates an empty event queue.
func NewDES() *DES {
	return &DES{
		tree:  redblacktree.NewWith(compareEventKeys),
		byPID: make(map[PID]eventKey),
	}
}

// Insert schedules e. Only one outstanding event per process may exist at
// any moment; callers are responsible for upholding that invariant (the
// Simulation loop never inserts a second event for a process that
// already has one pending).
func (d *DES) Insert(e *Event) {
	key := eventKey{timestamp: e.Timestamp, seq: d.seq}
	d.seq++
	e.seq = key.seq

	assertf(!d.hasPending(e.Process.PID), "pid %d already has a pending event", e.Process.PID)

	d.tree.Put(key, e)
	d.byPID[e.Process.PID] = key
}

func (d *DES) hasPending(pid PID) bool {
	_, ok := d.byPID[pid]
	return ok
}

// Pop removes and returns the earliest pending event, or reports false
// when the queue is empty.
func (d *DES) Pop() (*Event, bool) {
	node := d.tree.Left()
	if node == nil {
		return nil, false
	}
	e := node.Value.(*Event)
	d.tree.Remove(node.Key)
	delete(d.byPID, e.Process.PID)
	return e, true
}

// PeekNextTime returns the timestamp of the earliest pending event, or
// -1 when the queue is empty.
func (d *DES) PeekNextTime() int {
	node := d.tree.Left()
	if node == nil {
		return -1
	}
	return node.Key.(eventKey).timestamp
}

// RemoveFor removes the single pending event belonging to pid.
// Precondition: exactly one such event exists — this is the PREPRIO
// preemption path's way of invalidating the victim's stale RUNNING-exit
// event before superseding it.
func (d *DES) RemoveFor(pid PID) *Event {
	key, ok := d.byPID[pid]
	assertf(ok, "removeFor: no pending event for pid %d", pid)

	value, found := d.tree.Get(key)
	assertf(found, "removeFor: tree missing key for pid %d", pid)

	d.tree.Remove(key)
	delete(d.byPID, pid)
	return value.(*Event)
}

// Len reports the number of pending events.
func (d *DES) Len() int {
	return d.tree.Size()
}
