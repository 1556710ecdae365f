package procsim

import "fmt"

// assertf panics with a formatted message. It guards runtime invariants
// (at most one pending event per process in the DES queue, a pending
// event present for RemoveFor, a positive modulus for the oracle) that
// are programmer errors, not
// user-facing failures — by the time one trips, the input has already
// been accepted and the simulation is committed to running to
// completion.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
