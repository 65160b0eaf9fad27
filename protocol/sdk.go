package protocol

import (
	"github.com/ingestkit/eventschema"
)

// ClientSdkInfo names the SDK that produced the payload.
type ClientSdkInfo struct {
	Name         eventschema.Annotated[eventschema.String]                    `json:"name"`
	Version      eventschema.Annotated[eventschema.String]                    `json:"version"`
	Integrations eventschema.Annotated[eventschema.Array[eventschema.String]] `json:"integrations"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (s *ClientSdkInfo) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (s *ClientSdkInfo) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return s.AcceptChildren(p, state)
}

func (s *ClientSdkInfo) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&s.Name, p, state, "name", nil); err != nil {
		return err
	}
	if err := processField(&s.Version, p, state, "version", nil); err != nil {
		return err
	}
	if err := processArrayField[eventschema.String](&s.Integrations, p, state, "integrations", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(s.Other, p, state)
}
