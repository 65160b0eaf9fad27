package protocol

import (
	"github.com/ingestkit/eventschema"
)

// Breadcrumb is one entry of the trail of actions leading up to the event.
type Breadcrumb struct {
	Timestamp eventschema.Annotated[Timestamp]                           `json:"timestamp"`
	Ty        eventschema.Annotated[eventschema.String]                  `json:"type"`
	Category  eventschema.Annotated[eventschema.String]                  `json:"category"`
	Level     eventschema.Annotated[eventschema.String]                  `json:"level"`
	Message   eventschema.Annotated[eventschema.String]                  `json:"message"`
	Data      eventschema.Annotated[*eventschema.Map[eventschema.Value]] `json:"data"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (b *Breadcrumb) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (b *Breadcrumb) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if bp, ok := p.(BreadcrumbProcessor); ok {
		return bp.ProcessBreadcrumb(b, meta, state)
	}
	return b.AcceptChildren(p, state)
}

func (b *Breadcrumb) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&b.Timestamp, p, state, "timestamp", nil); err != nil {
		return err
	}
	if err := processField(&b.Ty, p, state, "type", nil); err != nil {
		return err
	}
	if err := processField(&b.Category, p, state, "category", nil); err != nil {
		return err
	}
	if err := processField(&b.Level, p, state, "level", levelAttrs); err != nil {
		return err
	}
	if err := processField(&b.Message, p, state, "message", messageAttrs); err != nil {
		return err
	}
	if err := processMapField[eventschema.Value](&b.Data, p, state, "data", breadcrumbDataAttrs); err != nil {
		return err
	}
	return eventschema.ProcessOther(b.Other, p, state)
}

// GetValue resolves a field path relative to the breadcrumb. It backs the
// per-item lookups of the trail iterator.
func (b *Breadcrumb) GetValue(path string) (eventschema.Val, bool) {
	switch path {
	case "type":
		return stringField(&b.Ty)
	case "category":
		return stringField(&b.Category)
	case "level":
		return stringField(&b.Level)
	case "message":
		return stringField(&b.Message)
	}
	return eventschema.Val{}, false
}
