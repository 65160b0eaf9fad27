package protocol

import (
	"github.com/ingestkit/eventschema"
)

// LogEntry is the log-message interface of the payload: an optional
// unformatted message with parameters plus the formatted result.
type LogEntry struct {
	Formatted eventschema.Annotated[LenientString]     `json:"formatted"`
	Message   eventschema.Annotated[LenientString]     `json:"message"`
	Params    eventschema.Annotated[eventschema.Value] `json:"params"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (l *LogEntry) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (l *LogEntry) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return l.AcceptChildren(p, state)
}

func (l *LogEntry) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&l.Formatted, p, state, "formatted", messageAttrs); err != nil {
		return err
	}
	if err := processField(&l.Message, p, state, "message", messageAttrs); err != nil {
		return err
	}
	if err := processField(&l.Params, p, state, "params", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(l.Other, p, state)
}
