package history

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ActorGuard string

const (
	GuardAdmin    ActorGuard = "admin"
	GuardCustomer ActorGuard = "customer"
	GuardSystem   ActorGuard = "system"
)

func (g ActorGuard) IsValid() bool {
	switch g {
	case GuardAdmin, GuardCustomer, GuardSystem:
		return true
	default:
		return false
	}
}

// Meta is free-form structured context stored with a transition (comment, correlation ids).
type Meta map[string]any

func (m Meta) JSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func ParseMeta(raw []byte) Meta {
	if len(raw) == 0 {
		return Meta{}
	}
	m := Meta{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return Meta{"raw": string(raw)}
	}
	return m
}

// Entry is one immutable row of a status ledger. ActorID is nil for system transitions.
type Entry struct {
	Status     string
	ActorGuard ActorGuard
	ActorID    *uuid.UUID
	Meta       Meta
	CreatedAt  time.Time
}

func NewEntry(status string, guard ActorGuard, actorID *uuid.UUID, meta Meta, at time.Time) Entry {
	if meta == nil {
		meta = Meta{}
	}
	return Entry{
		Status:     status,
		ActorGuard: guard,
		ActorID:    actorID,
		Meta:       meta,
		CreatedAt:  at,
	}
}
