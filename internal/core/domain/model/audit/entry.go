// Package audit contains the append-only audit record written alongside every
// state-changing operation. Entries are immutable once written and are
// persisted in the same atomic unit as the state change they record: a failed
// audit write rolls back the whole transition, because an unaudited state
// change is treated as worse than a rejected request.
package audit

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Action tags recorded for each state-changing operation.
const (
	ActionOrderCreated      = "order_created"
	ActionOrderAccepted     = "order_accepted"
	ActionWorkerAssigned    = "worker_assigned"
	ActionPickupVerified    = "pickup_verified"
	ActionDeliveryVerified  = "delivery_verified"
	ActionOrderCancelled    = "order_cancelled"
	ActionEscrowReleased    = "escrow_released"
	ActionEscrowRefunded    = "escrow_refunded"
	ActionProductCreated    = "product_created"
	ActionProfileRegistered = "profile_registered"
)

// Entity type tags identifying what an entry refers to.
const (
	EntityTypeOrder   = "order"
	EntityTypeEscrow  = "escrow"
	EntityTypeProduct = "product"
	EntityTypeProfile = "profile"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")
)

// Entry is one immutable audit record: who did what to which entity, with a
// structured meta payload capturing pre/post state for dispute resolution.
type Entry struct {
	id             kernel.UUID
	actorProfileID kernel.UUID
	action         string
	entityType     string
	entityID       kernel.UUID
	meta           map[string]any
	createdAt      time.Time

	isConstructed bool
}

// NewEntry creates an audit record stamped with the current UTC time.
// A nil meta is stored as an empty payload.
func NewEntry(
	id kernel.UUID,
	actorProfileID kernel.UUID,
	action string,
	entityType string,
	entityID kernel.UUID,
	meta map[string]any,
) (*Entry, error) {
	return RestoreEntry(id, actorProfileID, action, entityType, entityID, meta, time.Now().UTC())
}

// RestoreEntry reconstructs an audit record from persistence.
func RestoreEntry(
	id kernel.UUID,
	actorProfileID kernel.UUID,
	action string,
	entityType string,
	entityID kernel.UUID,
	meta map[string]any,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setActorProfileID(actorProfileID),
		e.setAction(action),
		e.setEntityType(entityType),
		e.setEntityID(entityID),
	); err != nil {
		return nil, err
	}

	if meta == nil {
		meta = map[string]any{}
	}
	e.meta = meta
	e.createdAt = createdAt

	return e, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ActorProfileID returns the profile that performed the action.
func (e *Entry) ActorProfileID() kernel.UUID {
	return e.actorProfileID
}

// Action returns the action tag.
func (e *Entry) Action() string {
	return e.action
}

// EntityType returns the type tag of the affected entity.
func (e *Entry) EntityType() string {
	return e.entityType
}

// EntityID returns the ID of the affected entity.
func (e *Entry) EntityID() kernel.UUID {
	return e.entityID
}

// Meta returns the structured payload of the entry.
func (e *Entry) Meta() map[string]any {
	return e.meta
}

// CreatedAt returns when the entry was recorded.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setActorProfileID(actorProfileID kernel.UUID) error {
	if err := actorProfileID.Validate(); err != nil {
		return err
	}
	e.actorProfileID = actorProfileID
	return nil
}

func (e *Entry) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	e.action = action
	return nil
}

func (e *Entry) setEntityType(entityType string) error {
	if entityType == "" {
		return errs.NewValueIsRequiredError("entityType")
	}
	e.entityType = entityType
	return nil
}

func (e *Entry) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}
	e.entityID = entityID
	return nil
}
