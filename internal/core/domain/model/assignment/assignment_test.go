package assignment_test

import (
	"testing"

	"marketplace/internal/core/domain/model/assignment"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestedAssignment(t *testing.T) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	t.Run("starts in requested", func(t *testing.T) {
		workerID := kernel.NewUUID()
		a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), workerID)

		require.NoError(t, err)
		assert.Equal(t, assignment.Requested, a.Status())
		assert.True(t, a.IsHeldBy(workerID))
		assert.False(t, a.IsHeldBy(kernel.NewUUID()))
	})

	t.Run("rejects zero-value worker id", func(t *testing.T) {
		var workerID kernel.UUID
		_, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), workerID)

		require.Error(t, err)
	})
}

func TestAssignment_MarkAccepted(t *testing.T) {
	t.Run("accepts requested assignment", func(t *testing.T) {
		a := newRequestedAssignment(t)

		require.NoError(t, a.MarkAccepted())
		assert.Equal(t, assignment.Accepted, a.Status())
	})

	t.Run("cannot accept twice", func(t *testing.T) {
		a := newRequestedAssignment(t)
		require.NoError(t, a.MarkAccepted())

		err := a.MarkAccepted()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestAssignment_MarkPickedUp(t *testing.T) {
	t.Run("picks up from requested", func(t *testing.T) {
		a := newRequestedAssignment(t)

		require.NoError(t, a.MarkPickedUp())
		assert.Equal(t, assignment.PickedUp, a.Status())
	})

	t.Run("picks up from accepted", func(t *testing.T) {
		a := newRequestedAssignment(t)
		require.NoError(t, a.MarkAccepted())

		require.NoError(t, a.MarkPickedUp())
		assert.Equal(t, assignment.PickedUp, a.Status())
	})

	t.Run("cannot pick up twice", func(t *testing.T) {
		a := newRequestedAssignment(t)
		require.NoError(t, a.MarkPickedUp())

		err := a.MarkPickedUp()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestAssignment_MarkDelivered(t *testing.T) {
	t.Run("delivers picked up assignment", func(t *testing.T) {
		a := newRequestedAssignment(t)
		require.NoError(t, a.MarkPickedUp())

		require.NoError(t, a.MarkDelivered())
		assert.Equal(t, assignment.Delivered, a.Status())
	})

	t.Run("cannot deliver before pickup", func(t *testing.T) {
		a := newRequestedAssignment(t)

		err := a.MarkDelivered()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		a := newRequestedAssignment(t)
		require.NoError(t, a.MarkPickedUp())
		require.NoError(t, a.MarkDelivered())

		require.Error(t, a.MarkPickedUp())
		require.Error(t, a.MarkDelivered())
		require.Error(t, a.MarkAccepted())
		assert.Equal(t, assignment.Delivered, a.Status())
	})
}

func TestAssignmentStatus(t *testing.T) {
	t.Run("string names", func(t *testing.T) {
		assert.Equal(t, "requested", assignment.Requested.String())
		assert.Equal(t, "accepted", assignment.Accepted.String())
		assert.Equal(t, "picked_up", assignment.PickedUp.String())
		assert.Equal(t, "delivered", assignment.Delivered.String())
	})

	t.Run("only delivered is terminal", func(t *testing.T) {
		assert.False(t, assignment.Requested.IsTerminal())
		assert.False(t, assignment.Accepted.IsTerminal())
		assert.False(t, assignment.PickedUp.IsTerminal())
		assert.True(t, assignment.Delivered.IsTerminal())
	})

	t.Run("validate rejects unknown", func(t *testing.T) {
		require.Error(t, assignment.Unknown.Validate())
		require.NoError(t, assignment.Requested.Validate())
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("rehydrates delivered assignment", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), assignment.Delivered)

		require.NoError(t, err)
		assert.Equal(t, assignment.Delivered, a.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), assignment.Unknown)

		require.Error(t, err)
	})
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var a assignment.Assignment

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, assignment.ErrAssignmentIsNotConstructed, err)
	})
}
