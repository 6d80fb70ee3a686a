package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetEscrowInconsistenciesQueryIsNotConstructed = errors.New(
	"GetEscrowInconsistenciesQuery must be created via NewGetEscrowInconsistenciesQuery constructor",
)

// Inconsistency kinds reported by GetEscrowInconsistenciesQuery.
const (
	InconsistencyAmountMismatch  = "amount_mismatch"
	InconsistencyCompletedFrozen = "completed_order_escrow_not_released"
	InconsistencyCancelledFrozen = "cancelled_order_escrow_frozen"
	InconsistencyOrphanedEscrow  = "escrow_without_order"
)

// GetEscrowInconsistenciesQuery sweeps the live data for violations of the
// escrow invariants: every escrow holds exactly the order's total, completed
// orders have released escrows, cancelled orders hold no frozen funds, and
// no escrow exists without its order. A healthy system returns no rows.
type GetEscrowInconsistenciesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEscrowInconsistenciesQuery creates a parameterless reconciliation query.
func NewGetEscrowInconsistenciesQuery() GetEscrowInconsistenciesQuery {
	return GetEscrowInconsistenciesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEscrowInconsistenciesQuery) Validate() error {
	return q.guard.Validate(ErrGetEscrowInconsistenciesQueryIsNotConstructed)
}

// GetEscrowInconsistenciesQueryResponse is one detected invariant violation.
type GetEscrowInconsistenciesQueryResponse struct {
	Kind        string
	EscrowID    kernel.UUID
	OrderID     kernel.UUID
	AmountCents int64
	TotalCents  int64
}
