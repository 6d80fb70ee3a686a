package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.PendingPayment))
		assert.Equal(t, 2, int(order.PaymentFrozen))
		assert.Equal(t, 3, int(order.SellerAccepted))
		assert.Equal(t, 4, int(order.WorkerAssigned))
		assert.Equal(t, 5, int(order.PickedUp))
		assert.Equal(t, 6, int(order.Completed))
		assert.Equal(t, 7, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.PendingPayment,
			order.PaymentFrozen,
			order.SellerAccepted,
			order.WorkerAssigned,
			order.PickedUp,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(8), order.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "pending_payment", order.PendingPayment.String())
		assert.Equal(t, "payment_frozen", order.PaymentFrozen.String())
		assert.Equal(t, "seller_accepted", order.SellerAccepted.String())
		assert.Equal(t, "worker_assigned", order.WorkerAssigned.String())
		assert.Equal(t, "picked_up", order.PickedUp.String())
		assert.Equal(t, "completed", order.Completed.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.PendingPayment,
			order.PaymentFrozen,
			order.SellerAccepted,
			order.WorkerAssigned,
			order.PickedUp,
			order.Completed,
			order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("delivered_maybe")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition struct {
		name  string
		apply func(order.Status) (order.Status, error)
		from  order.Status
		to    order.Status
	}

	transitions := []transition{
		{"freeze", order.Status.Freeze, order.PendingPayment, order.PaymentFrozen},
		{"accept", order.Status.Accept, order.PaymentFrozen, order.SellerAccepted},
		{"assign worker", order.Status.AssignWorker, order.SellerAccepted, order.WorkerAssigned},
		{"pick up", order.Status.PickUp, order.WorkerAssigned, order.PickedUp},
		{"complete", order.Status.Complete, order.PickedUp, order.Completed},
	}

	allStatuses := []order.Status{
		order.PendingPayment,
		order.PaymentFrozen,
		order.SellerAccepted,
		order.WorkerAssigned,
		order.PickedUp,
		order.Completed,
		order.Cancelled,
	}

	for _, tr := range transitions {
		t.Run(fmt.Sprintf("%s succeeds only from %s", tr.name, tr.from), func(t *testing.T) {
			for _, from := range allStatuses {
				next, err := tr.apply(from)
				if from == tr.from {
					require.NoError(t, err)
					assert.Equal(t, tr.to, next)
				} else {
					require.Error(t, err, "%s from %s should fail", tr.name, from)
					require.ErrorIs(t, err, errs.ErrInvalidState)
				}
			}
		})
	}

	t.Run("cancel succeeds from every non-terminal status", func(t *testing.T) {
		for _, from := range allStatuses {
			next, err := from.Cancel()
			if from.IsTerminal() {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidState)
			} else {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, next)
			}
		}
	})

	t.Run("cancel rejects Unknown", func(t *testing.T) {
		_, err := order.Unknown.Cancel()

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.PendingPayment.IsTerminal())
	assert.False(t, order.PaymentFrozen.IsTerminal())
	assert.False(t, order.SellerAccepted.IsTerminal())
	assert.False(t, order.WorkerAssigned.IsTerminal())
	assert.False(t, order.PickedUp.IsTerminal())
}

func TestStatus_ValidateCanHaveEscrow(t *testing.T) {
	t.Run("pending payment must not have escrow", func(t *testing.T) {
		require.NoError(t, order.PendingPayment.ValidateCanHaveEscrow(false))
		require.Error(t, order.PendingPayment.ValidateCanHaveEscrow(true))
	})

	t.Run("frozen and later statuses require escrow", func(t *testing.T) {
		for _, status := range []order.Status{
			order.PaymentFrozen,
			order.SellerAccepted,
			order.WorkerAssigned,
			order.PickedUp,
			order.Completed,
		} {
			require.NoError(t, status.ValidateCanHaveEscrow(true), "status %s", status)
			require.Error(t, status.ValidateCanHaveEscrow(false), "status %s", status)
		}
	})

	t.Run("cancelled allows both", func(t *testing.T) {
		require.NoError(t, order.Cancelled.ValidateCanHaveEscrow(true))
		require.NoError(t, order.Cancelled.ValidateCanHaveEscrow(false))
	})
}
