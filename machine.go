package routefsm

import (
	"fmt"
	"log/slog"
)

// Machine is a state machine able to move between two states over the
// shortest sequence of configured transitions, firing every transition
// action along the way.
//
// Each Machine owns an independent copy of the transition table it was
// started from; configuring the originating Builder afterwards never
// affects it, and sibling machines never affect each other.
//
// A single Machine is not safe for concurrent use. Callers sharing one
// across goroutines must serialize access; distinct machines need no
// coordination.
type Machine[S comparable] struct {
	table *transitionTable[S]

	initialState    S
	currentState    S
	transitionsDone int

	logger *slog.Logger
}

// MachineOption is a functional option for configuring a Machine.
type MachineOption[S comparable] func(*Machine[S])

// WithLogger sets the diagnostic logger for the machine. Diagnostics are
// emitted at debug level, are purely observational, and never affect
// control flow or errors.
func WithLogger[S comparable](logger *slog.Logger) MachineOption[S] {
	return func(m *Machine[S]) {
		m.logger = logger
	}
}

func newMachine[S comparable](table *transitionTable[S], initialState S, opts ...MachineOption[S]) *Machine[S] {
	m := &Machine[S]{
		table:        table,
		initialState: initialState,
		currentState: initialState,
		logger:       Logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger.Debug("machine started", "initial", initialState, "transitions", table.String())

	return m
}

// Go moves the machine to target over the fewest configured hops, firing
// every action on every traversed edge in registration order. Each hop
// increments the transition counter by one; asking for the current state
// is a no-op. When no sequence of configured transitions connects the
// current state to target, Go fails with ErrNoPathFound and changes
// nothing.
//
// A multi-hop move is executed as a chain of single-hop Go calls, so the
// route is re-derived hop by hop rather than run as a precomputed plan.
func (m *Machine[S]) Go(target S) error {
	if target == m.currentState {
		return nil
	}
	if !m.table.contains(target) {
		return fmt.Errorf("%w: %v", ErrUnknownState, target)
	}

	if actions, ok := m.table.actions(m.currentState, target); ok {
		m.logger.Debug("transition", "from", m.currentState, "to", target, "actions", len(actions))

		for _, action := range actions {
			action()
		}
		m.currentState = target
		m.transitionsDone++

		return nil
	}

	path := m.shortestPath(m.currentState, target, make(map[S]struct{}))
	if path == nil {
		return fmt.Errorf("%w: from %v to %v", ErrNoPathFound, m.currentState, target)
	}

	// path[0] is the current state; Go treats it as a no-op anyway.
	for _, s := range path[1:] {
		if err := m.Go(s); err != nil {
			return err
		}
	}

	return nil
}

// shortestPath returns the fewest-hops state sequence connecting from and
// to, both included, or nil when no sequence of configured transitions
// connects them. Ties between equal-length routes are broken arbitrarily.
//
// visited holds the states already on the candidate path. The search never
// re-enters such a state, so it terminates on any graph: a reachability
// cycle that does not lead to the target yields nil instead of unbounded
// recursion, and the result stays exact because a shortest path never
// repeats a state.
func (m *Machine[S]) shortestPath(from, to S, visited map[S]struct{}) []S {
	if _, ok := m.table.actions(from, to); ok {
		return []S{from, to}
	}

	visited[from] = struct{}{}
	defer delete(visited, from)

	var shortest []S
	for _, r := range m.table.reachable(from) {
		if _, seen := visited[r]; seen {
			continue
		}
		if p := m.shortestPath(r, to, visited); p != nil && (shortest == nil || len(p) < len(shortest)) {
			shortest = p
		}
	}
	if shortest == nil {
		return nil
	}

	return append([]S{from}, shortest...)
}

// Reset restores the machine to its initial state and zeroes the
// transition counter. No actions fire.
func (m *Machine[S]) Reset() {
	m.logger.Debug("reset", "from", m.currentState, "to", m.initialState)

	m.currentState = m.initialState
	m.transitionsDone = 0
}

// SetState overwrites the current state without traversing any edge,
// firing any action, or touching the transition counter. The new state
// does not need to be reachable from the current one; SetState exists to
// resynchronize the machine after an externally observed state change.
func (m *Machine[S]) SetState(state S) error {
	if !m.table.contains(state) {
		return fmt.Errorf("%w: %v", ErrUnknownState, state)
	}

	m.logger.Debug("state forced", "from", m.currentState, "to", state)
	m.currentState = state

	return nil
}

// CurrentState returns the state the machine is currently in.
func (m *Machine[S]) CurrentState() S {
	return m.currentState
}

// InitialState returns the state the machine was started at.
func (m *Machine[S]) InitialState() S {
	return m.initialState
}

// TransitionsDone returns how many single-edge hops the machine has
// executed since creation or the last Reset.
func (m *Machine[S]) TransitionsDone() int {
	return m.transitionsDone
}
