package protocol

import (
	"github.com/ingestkit/eventschema"
)

// processField visits one named child of an entity. A nil attrs inherits the
// policy in effect at state.
func processField[T any, PT eventschema.ProcessablePtr[T]](a *eventschema.Annotated[T], p eventschema.Processor, state *eventschema.ProcessingState, name string, attrs *eventschema.FieldAttrs) error {
	return eventschema.Process[T, PT](a, p, state.EnterStatic(name, attrs, eventschema.TypesForField[T, PT](a)))
}

func processArrayField[T any, PT eventschema.ProcessablePtr[T]](a *eventschema.Annotated[eventschema.Array[T]], p eventschema.Processor, state *eventschema.ProcessingState, name string, attrs *eventschema.FieldAttrs) error {
	return eventschema.ProcessArrayField[T, PT](a, p, state.EnterStatic(name, attrs, eventschema.ArrayType))
}

func processMapField[T any, PT eventschema.ProcessablePtr[T]](a *eventschema.Annotated[*eventschema.Map[T]], p eventschema.Processor, state *eventschema.ProcessingState, name string, attrs *eventschema.FieldAttrs) error {
	return eventschema.ProcessMapField[T, PT](a, p, state.EnterStatic(name, attrs, eventschema.ObjectType))
}

// annotatedString reads an annotated string-typed field as a plain string.
func annotatedString(a *eventschema.Annotated[eventschema.String]) (string, bool) {
	if a == nil || a.Value == nil {
		return "", false
	}
	return string(*a.Value), true
}
