package ports

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for audit entries.
// The audit log is append-only; entries are never updated or deleted.
type AuditRepository interface {
	// Add persists a new audit entry within the current transaction.
	// The entry becomes visible only when the surrounding transaction commits,
	// so a state change and its audit record land atomically.
	Add(ctx context.Context, entry *audit.Entry) error
}
