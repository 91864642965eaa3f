// Package routefsm implements a finite state machine able to move between
// any two states over the shortest configured path.
//
// A machine is configured with a fixed, finite state domain and a directed
// graph of permitted direct transitions, each carrying an ordered list of
// side-effecting actions. Asking the machine to Go to a state resolves the
// fewest-hops sequence of configured transitions from the current state and
// fires every action along every hop, in order, exactly once per hop.
//
// Usage:
//
//	type State int
//
//	const (
//		Disconnected State = iota
//		Connected
//		LoggedIn
//	)
//
//	m, err := routefsm.New(Disconnected, Connected, LoggedIn).
//		From(Disconnected).To(Connected, dial).
//		From(Connected).To(LoggedIn, login).To(Disconnected, hangUp).
//		From(LoggedIn).To(Disconnected, hangUp).
//		StartAt(Disconnected)
//	if err != nil {
//		// invalid configuration
//	}
//
//	// No direct edge exists, so this resolves Disconnected -> Connected ->
//	// LoggedIn, firing dial then login and counting two hops.
//	err = m.Go(LoggedIn)
//
// Machines started from the same builder own independent copies of the
// transition table and never interfere with each other. A single machine is
// not safe for concurrent use; callers sharing one across goroutines must
// serialize access.
package routefsm
