package protocol

import (
	"github.com/ingestkit/eventschema"
)

// EventType classifies the payload.
type EventType string

const (
	DefaultEvent     EventType = "default"
	ErrorEvent       EventType = "error"
	TransactionEvent EventType = "transaction"
	CspEvent         EventType = "csp"
)

func (t *EventType) ValueTypes() eventschema.ValueTypeSet { return eventschema.StringType }

func (t *EventType) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return t.AcceptChildren(p, state)
}

func (t *EventType) AcceptChildren(eventschema.Processor, *eventschema.ProcessingState) error {
	return nil
}

// TransactionInfo carries metadata about how the transaction name came to be.
type TransactionInfo struct {
	Source eventschema.Annotated[eventschema.String] `json:"source"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (t *TransactionInfo) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (t *TransactionInfo) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return t.AcceptChildren(p, state)
}

func (t *TransactionInfo) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&t.Source, p, state, "source", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(t.Other, p, state)
}
