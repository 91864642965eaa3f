package routefsm

import "fmt"

// Builder accumulates permitted transitions over a fixed state domain and
// mints independent Machine instances from them.
//
// Configuration is fluent: From opens an edge context scoped to a source
// state, To registers transitions, StartAt snapshots the accumulated table
// into a new machine. The clause types narrow which calls are legal next,
// so a To is only reachable after a From. The zero Builder is not usable;
// construct one with New.
type Builder[S comparable] struct {
	table *transitionTable[S]
	err   error
}

// New creates a Builder over exactly the given states. The domain is fixed
// for the builder's lifetime: it must be non-empty and duplicate-free, and
// every state referenced by later calls must be part of it.
//
// Go offers no enumerable-type introspection, so iota-style enums are
// passed as their explicit constants.
func New[S comparable](states ...S) *Builder[S] {
	table, err := newTransitionTable(states)
	return &Builder[S]{table: table, err: err}
}

// fail latches the first configuration error; later calls keep it.
func (b *Builder[S]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first configuration error encountered so far, or nil.
// StartAt returns the same error; Err allows checking mid-configuration.
func (b *Builder[S]) Err() error {
	return b.err
}

// From opens the configuration context for transitions starting at state.
func (b *Builder[S]) From(state S) *FromClause[S] {
	if b.err == nil && !b.table.contains(state) {
		b.fail(fmt.Errorf("%w: state %v is not part of the domain", ErrInvalidConfiguration, state))
	}
	return &FromClause[S]{builder: b, from: state}
}

// StartAt snapshots the accumulated transitions into a new Machine bound
// to initialState. Every machine owns an independent copy of the table:
// configuring the builder afterwards never affects machines already
// started, and the builder stays usable for minting further machines.
//
// StartAt returns the first configuration error latched by earlier New,
// From, or To calls, if any.
func (b *Builder[S]) StartAt(initialState S, opts ...MachineOption[S]) (*Machine[S], error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.table.contains(initialState) {
		return nil, fmt.Errorf("%w: initial state %v is not part of the domain", ErrInvalidConfiguration, initialState)
	}

	return newMachine(b.table.clone(), initialState, opts...), nil
}

// FromClause is the configuration context opened by Builder.From. Only To
// is legal next; the clause To returns widens the choices again.
type FromClause[S comparable] struct {
	builder *Builder[S]
	from    S
}

// To registers a transition from the clause's source state to state,
// firing the given actions, in order, whenever that edge is traversed.
// Repeated To calls for the same state pair append to that edge's action
// list. Nil actions are ignored, and a call with no actions still marks
// the pair as traversable.
func (f *FromClause[S]) To(state S, actions ...Action) *TransitionClause[S] {
	b := f.builder
	if b.err == nil {
		if err := b.table.add(f.from, state, actions...); err != nil {
			b.fail(err)
		}
	}
	return &TransitionClause[S]{FromClause[S]{builder: b, from: f.from}}
}

// TransitionClause continues configuration after at least one To: further
// To calls on the same source state, a new From, or StartAt.
type TransitionClause[S comparable] struct {
	FromClause[S]
}

// From opens a new configuration context, see Builder.From.
func (t *TransitionClause[S]) From(state S) *FromClause[S] {
	return t.builder.From(state)
}

// StartAt finalizes this configuration round, see Builder.StartAt.
func (t *TransitionClause[S]) StartAt(initialState S, opts ...MachineOption[S]) (*Machine[S], error) {
	return t.builder.StartAt(initialState, opts...)
}
