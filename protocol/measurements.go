package protocol

import (
	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// Measurement is a single named numeric reading with an optional unit.
type Measurement struct {
	Value eventschema.Annotated[eventschema.Float64] `json:"value"`
	Unit  eventschema.Annotated[eventschema.String]  `json:"unit"`
}

func (m *Measurement) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (m *Measurement) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return m.AcceptChildren(p, state)
}

func (m *Measurement) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&m.Value, p, state, "value", nil); err != nil {
		return err
	}
	return processField(&m.Unit, p, state, "unit", nil)
}

// Measurements is the keyed set of readings attached to a transaction.
// Insertion order follows the wire.
type Measurements struct {
	Items *eventschema.Map[Measurement]
}

// Get returns the numeric value of the named reading.
func (m *Measurements) Get(name string) (float64, bool) {
	if m == nil || m.Items == nil {
		return 0, false
	}
	entry := m.Items.Get(name)
	if entry == nil || entry.Value == nil || entry.Value.Value.Value == nil {
		return 0, false
	}
	return float64(*entry.Value.Value.Value), true
}

func (m *Measurements) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (m *Measurements) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return m.AcceptChildren(p, state)
}

func (m *Measurements) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	return eventschema.ProcessMapChildren[Measurement](m.Items, p, state)
}

func (m Measurements) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Items)
}

func (m *Measurements) UnmarshalJSON(data []byte) error {
	m.Items = eventschema.NewMap[Measurement]()
	return json.Unmarshal(data, m.Items)
}

// Breakdowns groups measurement sets under a named axis, for example span
// operations.
type Breakdowns struct {
	Items *eventschema.Map[Measurements]
}

// Get returns the numeric value of measurement name under breakdown axis.
func (b *Breakdowns) Get(axis, name string) (float64, bool) {
	if b == nil || b.Items == nil {
		return 0, false
	}
	entry := b.Items.Get(axis)
	if entry == nil || entry.Value == nil {
		return 0, false
	}
	return entry.Value.Get(name)
}

func (b *Breakdowns) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (b *Breakdowns) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return b.AcceptChildren(p, state)
}

func (b *Breakdowns) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	return eventschema.ProcessMapChildren[Measurements](b.Items, p, state)
}

func (b Breakdowns) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Items)
}

func (b *Breakdowns) UnmarshalJSON(data []byte) error {
	b.Items = eventschema.NewMap[Measurements]()
	return json.Unmarshal(data, b.Items)
}
