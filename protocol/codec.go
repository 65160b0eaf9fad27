package protocol

import (
	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// EventFromJSON decodes a payload into an annotated event tree. Object key
// order of open bags survives decoding.
func EventFromJSON(data []byte) (eventschema.Annotated[Event], error) {
	var a eventschema.Annotated[Event]
	if err := json.Unmarshal(data, &a); err != nil {
		return eventschema.Annotated[Event]{}, err
	}
	return a, nil
}

// EventToJSON encodes an annotated event tree back to the wire form.
func EventToJSON(a eventschema.Annotated[Event]) ([]byte, error) {
	return json.Marshal(a)
}

// ProcessEvent runs one processor over a whole event tree from a fresh root
// state. The raw traversal outcome is returned so the caller can decide how
// to fold it, typically with Annotated.Apply:
//
//	if err := event.Apply(protocol.ProcessEvent(&event, pass)); err != nil {
//	    // the input was rejected as a whole
//	}
func ProcessEvent(a *eventschema.Annotated[Event], p eventschema.Processor) error {
	return eventschema.Process[Event](a, p, eventschema.Root(eventschema.ObjectType, nil))
}
