package domain

import "time"

// AuditAction names a mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCreate      AuditAction = "create"
	AuditUpdate      AuditAction = "update"
	AuditDelete      AuditAction = "delete"
	AuditActivate    AuditAction = "activate"
	AuditDeactivate  AuditAction = "deactivate"
	AuditRecalculate AuditAction = "recalculate"
)

// AuditEntry records who changed which entity, and how.
type AuditEntry struct {
	ID        string      `json:"id" bson:"_id"`
	Action    AuditAction `json:"action" bson:"action"`
	Entity    string      `json:"entity" bson:"entity"`
	EntityID  int64       `json:"entity_id" bson:"entity_id"`
	ActorID   int64       `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	ActorRole Role        `json:"actor_role,omitempty" bson:"actor_role,omitempty"`
	At        time.Time   `json:"at" bson:"at"`
}
