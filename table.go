package routefsm

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// transitionTable stores every configured transition and its actions for a
// fixed state domain. Edge presence alone marks a state pair as directly
// traversable; the action list may be empty.
type transitionTable[S comparable] struct {
	states []S // domain in registration order, for String
	domain map[S]struct{}
	edges  map[S]map[S][]Action
}

// newTransitionTable creates an empty table over exactly the given finite,
// non-empty, duplicate-free set of states.
func newTransitionTable[S comparable](states []S) (*transitionTable[S], error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: state domain must not be empty", ErrInvalidConfiguration)
	}

	t := &transitionTable[S]{
		states: make([]S, 0, len(states)),
		domain: make(map[S]struct{}, len(states)),
		edges:  make(map[S]map[S][]Action),
	}
	for _, s := range states {
		if _, ok := t.domain[s]; ok {
			return nil, fmt.Errorf("%w: duplicate state %v", ErrInvalidConfiguration, s)
		}
		t.domain[s] = struct{}{}
		t.states = append(t.states, s)
	}

	return t, nil
}

// contains reports whether s is part of the configured state domain.
func (t *transitionTable[S]) contains(s S) bool {
	_, ok := t.domain[s]
	return ok
}

// add registers that to is directly reachable from from and appends the
// given actions to that edge in call order. Nil actions are skipped; a
// call adding no actions still registers the edge.
func (t *transitionTable[S]) add(from, to S, actions ...Action) error {
	if !t.contains(from) {
		return fmt.Errorf("%w: state %v is not part of the domain", ErrInvalidConfiguration, from)
	}
	if !t.contains(to) {
		return fmt.Errorf("%w: state %v is not part of the domain", ErrInvalidConfiguration, to)
	}

	row := t.edges[from]
	if row == nil {
		row = make(map[S][]Action)
		t.edges[from] = row
	}
	if _, ok := row[to]; !ok {
		row[to] = []Action{}
	}
	for _, action := range actions {
		if action != nil {
			row[to] = append(row[to], action)
		}
	}

	return nil
}

// actions returns the action list for the direct edge from -> to. The
// second return value reports edge presence; a present edge always carries
// a non-nil, possibly empty list.
func (t *transitionTable[S]) actions(from, to S) ([]Action, bool) {
	row, ok := t.edges[from]
	if !ok {
		return nil, false
	}
	acts, ok := row[to]
	return acts, ok
}

// reachable returns every state with a direct edge from from, including
// edges carrying no actions. The order is unspecified.
func (t *transitionTable[S]) reachable(from S) []S {
	row := t.edges[from]
	if len(row) == 0 {
		return nil
	}

	out := make([]S, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	return out
}

// clone returns an independent copy: adding transitions to either table
// never affects the other. Action values are shared by reference; they are
// never mutated once configuration ends.
func (t *transitionTable[S]) clone() *transitionTable[S] {
	c := &transitionTable[S]{
		states: slices.Clone(t.states),
		domain: maps.Clone(t.domain),
		edges:  make(map[S]map[S][]Action, len(t.edges)),
	}
	for from, row := range t.edges {
		cloned := make(map[S][]Action, len(row))
		for to, acts := range row {
			cloned[to] = slices.Clone(acts)
		}
		c.edges[from] = cloned
	}
	return c
}

// String renders one line per state listing its directly reachable states.
func (t *transitionTable[S]) String() string {
	var b strings.Builder
	for i, from := range t.states {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%v:", from)
		for _, to := range t.reachable(from) {
			fmt.Fprintf(&b, " %v", to)
		}
	}
	return b.String()
}
