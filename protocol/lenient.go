package protocol

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// LenientString is a string field that tolerates scalar JSON of any kind on
// the wire. Numbers and booleans are coerced to their textual form.
//
// It is transparent to processing: it forwards straight to the wrapped
// string's dispatch and introduces no path segment of its own.
type LenientString struct {
	S eventschema.String
}

func (l *LenientString) String() string { return string(l.S) }

func (l *LenientString) ValueTypes() eventschema.ValueTypeSet { return eventschema.StringType }

func (l *LenientString) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return (&l.S).Accept(meta, p, state)
}

func (l *LenientString) AcceptChildren(eventschema.Processor, *eventschema.ProcessingState) error {
	return nil
}

func (l LenientString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l.S))
}

func (l *LenientString) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		l.S = eventschema.String(v)
	case json.Number:
		l.S = eventschema.String(v.String())
	case bool:
		l.S = eventschema.String(strconv.FormatBool(v))
	default:
		l.S = eventschema.String(bytes.TrimSpace(data))
	}
	return nil
}

// JsonLenientString is a string field that accepts arbitrary JSON on the
// wire; non-string content is kept as its compact JSON text.
type JsonLenientString struct {
	S eventschema.String
}

func (l *JsonLenientString) String() string { return string(l.S) }

func (l *JsonLenientString) ValueTypes() eventschema.ValueTypeSet { return eventschema.StringType }

func (l *JsonLenientString) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return (&l.S).Accept(meta, p, state)
}

func (l *JsonLenientString) AcceptChildren(eventschema.Processor, *eventschema.ProcessingState) error {
	return nil
}

func (l JsonLenientString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l.S))
}

func (l *JsonLenientString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.S = eventschema.String(s)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	l.S = eventschema.String(buf.String())
	return nil
}
