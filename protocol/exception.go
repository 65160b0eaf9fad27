package protocol

import (
	"github.com/ingestkit/eventschema"
)

// Exception is one entry of the error chain, newest last.
type Exception struct {
	Ty         eventschema.Annotated[eventschema.String] `json:"type"`
	Value      eventschema.Annotated[JsonLenientString]  `json:"value"`
	Module     eventschema.Annotated[eventschema.String] `json:"module"`
	Stacktrace eventschema.Annotated[Stacktrace]         `json:"stacktrace"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (e *Exception) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (e *Exception) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if ep, ok := p.(ExceptionProcessor); ok {
		return ep.ProcessException(e, meta, state)
	}
	return e.AcceptChildren(p, state)
}

func (e *Exception) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&e.Ty, p, state, "type", nil); err != nil {
		return err
	}
	if err := processField(&e.Value, p, state, "value", exceptionValueAttrs); err != nil {
		return err
	}
	if err := processField(&e.Module, p, state, "module", nil); err != nil {
		return err
	}
	if err := processField(&e.Stacktrace, p, state, "stacktrace", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(e.Other, p, state)
}

// GetValue resolves a field path relative to the exception. It backs the
// per-item lookups of the error-chain iterator.
func (e *Exception) GetValue(path string) (eventschema.Val, bool) {
	switch path {
	case "ty", "type":
		if s, ok := annotatedString(&e.Ty); ok {
			return eventschema.StringVal(s), true
		}
	case "value":
		if e.Value.Value != nil {
			return eventschema.StringVal(e.Value.Value.String()), true
		}
	case "module":
		if s, ok := annotatedString(&e.Module); ok {
			return eventschema.StringVal(s), true
		}
	}
	return eventschema.Val{}, false
}
