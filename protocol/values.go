package protocol

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// Values wraps a homogeneous list of sub-entities under a "values" key. The
// wire accepts either the wrapped object form or a bare array.
type Values[T any, PT eventschema.ProcessablePtr[T]] struct {
	Values eventschema.Annotated[eventschema.Array[T]] `json:"values"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (v *Values[T, PT]) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (v *Values[T, PT]) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return v.AcceptChildren(p, state)
}

func (v *Values[T, PT]) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := eventschema.ProcessArrayField[T, PT](&v.Values, p, state.EnterStatic("values", nil, eventschema.ArrayType)); err != nil {
		return err
	}
	return eventschema.ProcessOther(v.Other, p, state)
}

func (v Values[T, PT]) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal(v.Values)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"values":`)
	buf.Write(inner)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (v *Values[T, PT]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &v.Values)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	if raw, ok := obj["values"]; ok {
		return json.Unmarshal(raw, &v.Values)
	}
	return nil
}
