package protocol

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// TagEntry is one key/value tag pair with positional index segments.
type TagEntry struct {
	Key   eventschema.Annotated[eventschema.String]
	Value eventschema.Annotated[eventschema.String]
}

func (t *TagEntry) ValueTypes() eventschema.ValueTypeSet { return eventschema.ArrayType }

func (t *TagEntry) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return t.AcceptChildren(p, state)
}

func (t *TagEntry) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := eventschema.Process[eventschema.String](&t.Key, p, state.EnterIndex(0, nil, eventschema.StringType)); err != nil {
		return err
	}
	return eventschema.Process[eventschema.String](&t.Value, p, state.EnterIndex(1, nil, eventschema.StringType))
}

func (t TagEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{t.Key, t.Value})
}

func (t *TagEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if pair[0] != nil {
		if err := json.Unmarshal(pair[0], &t.Key); err != nil {
			return err
		}
	}
	if pair[1] != nil {
		if err := json.Unmarshal(pair[1], &t.Value); err != nil {
			return err
		}
	}
	return nil
}

// Tags is the ordered tag list. Duplicate keys are kept; lookup returns the
// first match. The wire accepts a JSON object or an array of pairs.
type Tags struct {
	Entries eventschema.Array[TagEntry]
}

// Get returns the first value stored under key.
func (t *Tags) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	for i := range t.Entries {
		entry := t.Entries[i].Value
		if entry == nil || entry.Key.Value == nil || entry.Value.Value == nil {
			continue
		}
		if string(*entry.Key.Value) == key {
			return string(*entry.Value.Value), true
		}
	}
	return "", false
}

func (t *Tags) ValueTypes() eventschema.ValueTypeSet { return eventschema.ArrayType }

func (t *Tags) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return t.AcceptChildren(p, state)
}

func (t *Tags) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	return eventschema.ProcessArrayChildren[TagEntry](&t.Entries, p, state)
}

func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Entries)
}

func (t *Tags) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty tags payload")
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &t.Entries)
	}
	var obj eventschema.Map[LenientString]
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	t.Entries = nil
	for key, value := range obj.All() {
		entry := TagEntry{
			Key: eventschema.NewAnnotated(eventschema.String(key)),
		}
		if value.Value != nil {
			s := value.Value.S
			entry.Value = eventschema.NewAnnotated(s)
		}
		entry.Value.Meta = value.Meta
		t.Entries = append(t.Entries, eventschema.NewAnnotated(entry))
	}
	return nil
}
