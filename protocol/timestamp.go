package protocol

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// Timestamp is a point in time carried by the payload. The wire accepts an
// RFC 3339 string or a float/integer epoch-seconds number; encoding always
// emits epoch seconds so round-trips are canonical.
type Timestamp struct {
	time.Time
}

// TimestampFrom wraps a concrete time.
func TimestampFrom(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	secs := float64(t.UnixNano()) / float64(time.Second)
	return json.Marshal(secs)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return err
		}
		t.Time = parsed.UTC()
		return nil
	case json.Number:
		secs, err := v.Float64()
		if err != nil {
			return err
		}
		whole, frac := math.Modf(secs)
		t.Time = time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
		return nil
	}
	return fmt.Errorf("invalid timestamp %s", data)
}

func (t *Timestamp) ValueTypes() eventschema.ValueTypeSet { return eventschema.NumberType }

func (t *Timestamp) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if tp, ok := p.(TimestampProcessor); ok {
		return tp.ProcessTimestamp(t, meta, state)
	}
	return t.AcceptChildren(p, state)
}

func (t *Timestamp) AcceptChildren(eventschema.Processor, *eventschema.ProcessingState) error {
	return nil
}
