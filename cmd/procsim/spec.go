package main

import (
	"fmt"
	"strings"

	"procsim/internal/procsim"
)

// parseSchedulerSpec parses the -s<SPEC> syntax: F, L, S, R<q>,
// P<q>[:<maxprio>], E<q>[:<maxprio>]. defaultMaxPrio fills in the
// maxprio when a P/E spec omits the ":<maxprio>" suffix.
func parseSchedulerSpec(spec string, defaultMaxPrio int) (procsim.Scheduler, error) {
	if spec == "" {
		return nil, fmt.Errorf("you must indicate the scheduler")
	}

	switch spec[0] {
	case 'F':
		return procsim.NewFCFS(), nil
	case 'L':
		return procsim.NewLCFS(), nil
	case 'S':
		return procsim.NewSRTF(), nil
	case 'R':
		q, _, err := parseQuantumMaxprio(spec)
		if err != nil {
			return nil, fmt.Errorf("you must give a quantum for round robin scheduler")
		}
		return procsim.NewRR(q), nil
	case 'P':
		q, maxprio, err := parseQuantumMaxprio(spec)
		if err != nil {
			return nil, fmt.Errorf("you must give a quantum for PRIO scheduler")
		}
		if maxprio <= 0 {
			maxprio = defaultMaxPrio
		}
		return procsim.NewPRIO(q, maxprio), nil
	case 'E':
		q, maxprio, err := parseQuantumMaxprio(spec)
		if err != nil {
			return nil, fmt.Errorf("you must give a quantum for PREPRIO scheduler")
		}
		if maxprio <= 0 {
			maxprio = defaultMaxPrio
		}
		return procsim.NewPREPRIO(q, maxprio), nil
	default:
		return nil, fmt.Errorf("scheduler doesn't exist. Choose between F, L, S, R, P and E")
	}
}

// parseQuantumMaxprio parses the "<letter><quantum>[:<maxprio>]" tail
// shared by R, P, and E specs. maxprio is 0 when the ":<maxprio>" suffix
// is absent; parseSchedulerSpec then substitutes defaultMaxPrio.
func parseQuantumMaxprio(spec string) (quantum, maxprio int, err error) {
	body := spec[1:]
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		if _, err = fmt.Sscanf(body[:idx], "%d", &quantum); err != nil {
			return 0, 0, err
		}
		if _, err = fmt.Sscanf(body[idx+1:], "%d", &maxprio); err != nil {
			return 0, 0, err
		}
		return quantum, maxprio, nil
	}
	if _, err = fmt.Sscanf(body, "%d", &quantum); err != nil {
		return 0, 0, err
	}
	return quantum, 0, nil
}
