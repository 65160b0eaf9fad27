package protocol

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// HeaderName is an HTTP header name. Lookup treats names case-insensitively;
// the stored casing is whatever the wire carried.
type HeaderName struct {
	S eventschema.String
}

func (h *HeaderName) String() string { return string(h.S) }

func (h *HeaderName) ValueTypes() eventschema.ValueTypeSet { return eventschema.StringType }

// Accept fires the header-name hook when present, then always forwards to
// the wrapped string's dispatch, so a name is observed once at each level.
func (h *HeaderName) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if hp, ok := p.(HeaderNameProcessor); ok {
		if err := hp.ProcessHeaderName(h, meta, state); err != nil {
			return err
		}
	}
	return (&h.S).Accept(meta, p, state)
}

func (h *HeaderName) AcceptChildren(eventschema.Processor, *eventschema.ProcessingState) error {
	return nil
}

func (h HeaderName) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h.S))
}

func (h *HeaderName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	h.S = eventschema.String(s)
	return nil
}

// HeaderEntry is one name/value pair. On the wire it is a two-element array;
// its children carry positional index segments.
type HeaderEntry struct {
	Name  eventschema.Annotated[HeaderName]
	Value eventschema.Annotated[LenientString]
}

func (h *HeaderEntry) ValueTypes() eventschema.ValueTypeSet { return eventschema.ArrayType }

func (h *HeaderEntry) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return h.AcceptChildren(p, state)
}

func (h *HeaderEntry) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := eventschema.Process[HeaderName](&h.Name, p, state.EnterIndex(0, nil, eventschema.StringType)); err != nil {
		return err
	}
	return eventschema.Process[LenientString](&h.Value, p, state.EnterIndex(1, nil, eventschema.StringType))
}

func (h HeaderEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{h.Name, h.Value})
}

func (h *HeaderEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if pair[0] != nil {
		if err := json.Unmarshal(pair[0], &h.Name); err != nil {
			return err
		}
	}
	if pair[1] != nil {
		if err := json.Unmarshal(pair[1], &h.Value); err != nil {
			return err
		}
	}
	return nil
}

// Headers is the ordered list of request headers. The wire accepts either a
// JSON object (entries keep wire order) or an array of two-element pairs.
type Headers struct {
	Entries eventschema.Array[HeaderEntry]
}

// Get returns the first value stored under name, compared case-insensitively.
func (h *Headers) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	for i := range h.Entries {
		entry := h.Entries[i].Value
		if entry == nil {
			continue
		}
		if entry.Name.Value == nil || entry.Value.Value == nil {
			continue
		}
		if strings.EqualFold(string(entry.Name.Value.S), name) {
			return string(entry.Value.Value.S), true
		}
	}
	return "", false
}

func (h *Headers) ValueTypes() eventschema.ValueTypeSet { return eventschema.ArrayType }

func (h *Headers) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return h.AcceptChildren(p, state)
}

func (h *Headers) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	return eventschema.ProcessArrayChildren[HeaderEntry](&h.Entries, p, state)
}

func (h Headers) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Entries)
}

func (h *Headers) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty headers payload")
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &h.Entries)
	}
	var obj eventschema.Map[LenientString]
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	h.Entries = nil
	for name, value := range obj.All() {
		entry := HeaderEntry{
			Name: eventschema.NewAnnotated(HeaderName{S: eventschema.String(name)}),
		}
		entry.Value.Value = value.Value
		entry.Value.Meta = value.Meta
		h.Entries = append(h.Entries, eventschema.NewAnnotated(entry))
	}
	return nil
}
