package protocol

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ingestkit/eventschema"
)

// EventId is the unique identifier of an event. The wire form is the
// 32-character lowercase hex rendering without dashes; dashed input is
// accepted.
type EventId struct {
	uuid.UUID
}

// NewEventId returns a fresh random id.
func NewEventId() EventId {
	return EventId{UUID: uuid.New()}
}

// ParseEventId reads a dashed or undashed hex id.
func ParseEventId(s string) (EventId, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return EventId{}, err
	}
	return EventId{UUID: id}, nil
}

func (id EventId) String() string {
	return strings.ReplaceAll(id.UUID.String(), "-", "")
}

func (id EventId) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *EventId) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEventId(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *EventId) ValueTypes() eventschema.ValueTypeSet { return eventschema.StringType }

func (id *EventId) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return id.AcceptChildren(p, state)
}

func (id *EventId) AcceptChildren(eventschema.Processor, *eventschema.ProcessingState) error {
	return nil
}
