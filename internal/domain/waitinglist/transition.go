package waitinglist

import "fmt"

// legalEdges is the complete state machine. Anything not listed is rejected.
var legalEdges = map[Status][]Status{
	StatusWaiting: {StatusOffered, StatusCancelled},
	StatusOffered: {StatusPurchased, StatusExpired, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, next := range legalEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a single status change. It is the only place edges are checked;
// time-dependent guards live on Entry.
func Transition(from, to Status) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidStatus, from, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}
