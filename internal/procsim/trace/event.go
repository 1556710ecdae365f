// Package trace carries an optional, purely observational stream of
// simulation events out of the core loop. Nothing here feeds back into
// scheduling decisions or the random stream; a simulation produces
// byte-identical output whether or not a Sink is attached.
package trace

import "fmt"

// Kind identifies what kind of transition a traced Event reports.
type Kind int

const (
	KindReady Kind = iota
	KindRunning
	KindBlocked
	KindDone
	KindPreempt
)

func (k Kind) String() string {
	switch k {
	case KindReady:
		return "Ready"
	case KindRunning:
		return "Running"
	case KindBlocked:
		return "Blocked"
	case KindDone:
		return "Done"
	case KindPreempt:
		return "Preempt"
	default:
		return "Unknown"
	}
}

// Event is one traced transition.
type Event struct {
	Time   int
	Kind   Kind
	PID    int
	Detail string
}

// Sink receives traced events. NopSink discards everything and is the
// default when no tracing flag is set.
type Sink interface {
	Emit(Event)
}

type NopSink struct{}

func (NopSink) Emit(Event) {}

// FuncSink adapts a plain function to Sink, for tests that want to
// assert on the emitted sequence without standing up a CSV file.
type FuncSink func(Event)

func (f FuncSink) Emit(e Event) { f(e) }

func (e Event) String() string {
	return fmt.Sprintf("t=%d pid=%d %s %s", e.Time, e.PID, e.Kind, e.Detail)
}
