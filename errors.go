package routefsm

import "errors"

// Sentinel errors reported by the engine. All of them signal programmer
// mistakes and are surfaced synchronously to the immediate caller; there is
// no retry or internal recovery.
var (
	// ErrInvalidConfiguration reports an empty or duplicated state domain,
	// or a configuration call referencing a state outside the domain.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownState reports a runtime call (Go, SetState) with a state
	// that is not part of the machine's domain.
	ErrUnknownState = errors.New("unknown state")

	// ErrNoPathFound reports a Go call for which no sequence of configured
	// transitions connects the current state to the target.
	ErrNoPathFound = errors.New("no path found")
)
