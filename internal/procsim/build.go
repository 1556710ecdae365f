package procsim

import (
	"bufio"
	"io"
)

// LoadProcesses reads whitespace-separated 4-tuples (at, tc, cb, ib) from
// r, in arrival order, and for each one:
//  1. allocates a Process with the next pid,
//  2. draws its static priority from the oracle NOW, before any burst
//     randomness — this is the first oracle consumer in canonical order,
//  3. derives its initial dynamic priority,
//  4. appends it to the roster,
//  5. pushes a CREATED→READY event into the DES queue.
//
// A malformed token or a short trailing record is treated as
// end-of-stream and silently dropped; LoadProcesses never reports it as
// an error, even when no well-formed record precedes it.
func (sim *Simulation) LoadProcesses(r io.Reader) error {
	maxprio := sim.Scheduler.MaxPrio()
	if maxprio <= 0 {
		maxprio = 4
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v := 0
		neg := false
		text := sc.Text()
		if len(text) == 0 {
			return 0, false
		}
		i := 0
		if text[0] == '-' {
			neg = true
			i = 1
		}
		if i == len(text) {
			return 0, false
		}
		for ; i < len(text); i++ {
			c := text[i]
			if c < '0' || c > '9' {
				return 0, false
			}
			v = v*10 + int(c-'0')
		}
		if neg {
			v = -v
		}
		return v, true
	}

	for {
		at, ok := nextInt()
		if !ok {
			break
		}
		tc, ok := nextInt()
		if !ok {
			break
		}
		cb, ok := nextInt()
		if !ok {
			break
		}
		ib, ok := nextInt()
		if !ok {
			break
		}

		pid := PID(len(sim.Roster))
		p := newProcess(pid, at, tc, cb, ib)
		p.StaticPrio = sim.Oracle.Next(maxprio)
		p.DynamicPrio = p.StaticPrio - 1

		sim.Roster = append(sim.Roster, p)
		sim.DES.Insert(&Event{Timestamp: at, Process: p, From: StateCreated, To: StateReady})
	}

	return nil
}
