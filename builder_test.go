package routefsm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routefsm/routefsm"
)

func TestBuilderDomainValidation(t *testing.T) {
	t.Run("empty domain", func(t *testing.T) {
		b := routefsm.New[string]()

		assert.ErrorIs(t, b.Err(), routefsm.ErrInvalidConfiguration)

		_, err := b.StartAt(stateA)
		assert.ErrorIs(t, err, routefsm.ErrInvalidConfiguration)
	})

	t.Run("duplicate states", func(t *testing.T) {
		_, err := routefsm.New(stateA, stateB, stateA).StartAt(stateA)
		assert.ErrorIs(t, err, routefsm.ErrInvalidConfiguration)
	})
}

func TestBuilderRejectsUnknownStates(t *testing.T) {
	t.Run("from outside the domain", func(t *testing.T) {
		b := routefsm.New(stateA, stateB)
		b.From("z").To(stateA)

		_, err := b.StartAt(stateA)
		require.ErrorIs(t, err, routefsm.ErrInvalidConfiguration)
		assert.ErrorContains(t, err, "z")
	})

	t.Run("to outside the domain", func(t *testing.T) {
		_, err := routefsm.New(stateA, stateB).
			From(stateA).To("z").
			StartAt(stateA)
		assert.ErrorIs(t, err, routefsm.ErrInvalidConfiguration)
	})

	t.Run("unknown initial state", func(t *testing.T) {
		_, err := routefsm.New(stateA, stateB).
			From(stateA).To(stateB).
			StartAt("z")
		assert.ErrorIs(t, err, routefsm.ErrInvalidConfiguration)
	})
}

func TestBuilderFirstErrorWins(t *testing.T) {
	b := routefsm.New(stateA, stateB)
	b.From("y").To(stateA)
	b.From("z").To(stateB)

	_, err := b.StartAt(stateA)
	require.ErrorIs(t, err, routefsm.ErrInvalidConfiguration)
	assert.ErrorContains(t, err, "y")
	assert.NotContains(t, err.Error(), "z")
}

func TestBuilderErrNilOnValidConfiguration(t *testing.T) {
	b := routefsm.New(stateA, stateB).
		From(stateA).To(stateB)

	m, err := b.StartAt(stateA)
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestBuilderRemainsUsableAfterStartAt(t *testing.T) {
	b := routefsm.New(stateA, stateB, stateC).
		From(stateA).To(stateB)

	first, err := b.StartAt(stateA)
	require.NoError(t, err)

	b.From(stateB).To(stateC)

	second, err := b.StartAt(stateB)
	require.NoError(t, err)

	require.NoError(t, second.Go(stateC))
	assert.Equal(t, stateC, second.CurrentState())

	assert.Equal(t, stateA, first.CurrentState())
	assert.Equal(t, stateA, first.InitialState())
	assert.Equal(t, stateB, second.InitialState())
}

func TestBuilderWithIntegerStates(t *testing.T) {
	type phase int
	const (
		idle phase = iota
		running
		done
	)

	m, err := routefsm.New(idle, running, done).
		From(idle).To(running).
		From(running).To(done).To(idle).
		StartAt(idle)
	require.NoError(t, err)

	require.NoError(t, m.Go(done))
	assert.Equal(t, done, m.CurrentState())
	assert.Equal(t, 2, m.TransitionsDone())
}
