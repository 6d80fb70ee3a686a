package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves the audit history of one entity, oldest first.
// This is the dispute resolution view: every state change, who triggered it,
// and the pre/post payload recorded at the time.
type GetAuditTrailQuery struct {
	entityType string
	entityID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for an entity's audit history.
func NewGetAuditTrailQuery(entityType string, entityID kernel.UUID) (GetAuditTrailQuery, error) {
	if entityType == "" {
		return GetAuditTrailQuery{}, errs.NewValueIsRequiredError("entityType")
	}
	if err := entityID.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}

	return GetAuditTrailQuery{
		entityType: entityType,
		entityID:   entityID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// EntityType returns the type tag of the audited entity.
func (q GetAuditTrailQuery) EntityType() string {
	return q.entityType
}

// EntityID returns the audited entity's identifier.
func (q GetAuditTrailQuery) EntityID() kernel.UUID {
	return q.entityID
}

// GetAuditTrailQueryResponse is one audit entry in the trail.
type GetAuditTrailQueryResponse struct {
	ID             kernel.UUID    `json:"id"`
	ActorProfileID kernel.UUID    `json:"actorProfileId"`
	Action         string         `json:"action"`
	EntityType     string         `json:"entityType"`
	EntityID       kernel.UUID    `json:"entityId"`
	Meta           map[string]any `json:"meta"`
	CreatedAt      time.Time      `json:"createdAt"`
}
