// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and an audit entry written in the same transaction.
package commands

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EscrowRepoFactory provides access to escrow repository within a transaction.
	EscrowRepoFactory interface {
		EscrowRepository() ports.EscrowRepository
	}

	// AssignmentRepoFactory provides access to assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ProfileRepoFactory provides access to profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// AuditRepoFactory provides access to audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderFlowUoW manages transactions for order lifecycle operations.
	// Every order transition touches the order plus some subset of escrow,
	// assignment, product and profile, and always appends an audit entry.
	OrderFlowUoW interface {
		TxManager
		OrderRepoFactory
		EscrowRepoFactory
		AssignmentRepoFactory
		ProductRepoFactory
		ProfileRepoFactory
		AuditRepoFactory
	}

	// OrderFlowUoWFactory creates new order flow unit of work instances.
	OrderFlowUoWFactory interface {
		Create() OrderFlowUoW
	}

	// ProductUoW manages transactions for product catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		ProfileRepoFactory
		AuditRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// ProfileUoW manages transactions for profile registration operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
		AuditRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}
)

// recordAudit appends an audit entry for a state-changing operation within
// the caller's transaction. A failed audit write aborts the whole operation.
func recordAudit(
	ctx context.Context,
	repo ports.AuditRepository,
	actorID kernel.UUID,
	action string,
	entityType string,
	entityID kernel.UUID,
	meta map[string]any,
) error {
	entry, err := audit.NewEntry(kernel.NewUUID(), actorID, action, entityType, entityID, meta)
	if err != nil {
		return err
	}

	return repo.Add(ctx, entry)
}
