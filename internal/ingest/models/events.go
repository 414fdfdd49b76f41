package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

// MediumIngested is written to the outbox in the same transaction as the
// medium row and the counter update, then published to Kafka.
type MediumIngested struct {
	eventID    uuid.UUID
	mediumID   uuid.UUID
	accountID  uuid.UUID
	externalID string
	captioned  bool
	occurredAt time.Time
}

func NewMediumIngested(m *Medium) *MediumIngested {
	return &MediumIngested{
		eventID:    uuid.New(),
		mediumID:   m.ID,
		accountID:  m.AccountID,
		externalID: m.ExternalID,
		captioned:  m.CaptionsURL != nil,
		occurredAt: time.Now(),
	}
}

func (e *MediumIngested) EventID() uuid.UUID     { return e.eventID }
func (e *MediumIngested) EventType() string      { return "MediumIngested" }
func (e *MediumIngested) AggregateID() uuid.UUID { return e.mediumID }
func (e *MediumIngested) OccurredAt() time.Time  { return e.occurredAt }

func (e *MediumIngested) Captioned() bool { return e.captioned }

func (e *MediumIngested) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		MediumID   uuid.UUID `json:"medium_id"`
		AccountID  uuid.UUID `json:"account_id"`
		ExternalID string    `json:"external_id"`
		Captioned  bool      `json:"captioned"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		MediumID:   e.mediumID,
		AccountID:  e.accountID,
		ExternalID: e.externalID,
		Captioned:  e.captioned,
		OccurredAt: e.occurredAt,
	})
}
