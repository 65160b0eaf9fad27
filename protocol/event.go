package protocol

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
	"github.com/ingestkit/eventschema/release"
)

// Event is the root entity of the payload.
type Event struct {
	Id              eventschema.Annotated[EventId]            `json:"event_id"`
	Ty              eventschema.Annotated[EventType]          `json:"type"`
	Level           eventschema.Annotated[eventschema.String] `json:"level"`
	Transaction     eventschema.Annotated[eventschema.String] `json:"transaction"`
	TransactionInfo eventschema.Annotated[TransactionInfo]    `json:"transaction_info"`
	Logger          eventschema.Annotated[eventschema.String] `json:"logger"`
	Platform        eventschema.Annotated[eventschema.String] `json:"platform"`

	Timestamp      eventschema.Annotated[Timestamp] `json:"timestamp"`
	StartTimestamp eventschema.Annotated[Timestamp] `json:"start_timestamp"`
	Received       eventschema.Annotated[Timestamp] `json:"received"`

	Release     eventschema.Annotated[eventschema.String] `json:"release"`
	Dist        eventschema.Annotated[eventschema.String] `json:"dist"`
	Environment eventschema.Annotated[eventschema.String] `json:"environment"`

	User     eventschema.Annotated[User]          `json:"user"`
	Request  eventschema.Annotated[Request]       `json:"request"`
	Logentry eventschema.Annotated[LogEntry]      `json:"logentry"`
	Sdk      eventschema.Annotated[ClientSdkInfo] `json:"sdk"`
	Contexts eventschema.Annotated[Contexts]      `json:"contexts"`

	Exceptions  eventschema.Annotated[Values[Exception, *Exception]]   `json:"exception"`
	Stacktrace  eventschema.Annotated[Stacktrace]                      `json:"stacktrace"`
	Breadcrumbs eventschema.Annotated[Values[Breadcrumb, *Breadcrumb]] `json:"breadcrumbs"`

	Tags         eventschema.Annotated[Tags]                                 `json:"tags"`
	Extra        eventschema.Annotated[*eventschema.Map[eventschema.Value]]  `json:"extra"`
	Modules      eventschema.Annotated[*eventschema.Map[eventschema.String]] `json:"modules"`
	Measurements eventschema.Annotated[Measurements]                         `json:"measurements"`
	Breakdowns   eventschema.Annotated[Breakdowns]                           `json:"breakdowns"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (e *Event) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (e *Event) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if ep, ok := p.(EventProcessor); ok {
		return ep.ProcessEvent(e, meta, state)
	}
	return e.AcceptChildren(p, state)
}

func (e *Event) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&e.Id, p, state, "event_id", nil); err != nil {
		return err
	}
	if err := processField(&e.Ty, p, state, "type", nil); err != nil {
		return err
	}
	if err := processField(&e.Level, p, state, "level", levelAttrs); err != nil {
		return err
	}
	if err := processField(&e.Transaction, p, state, "transaction", transactionAttrs); err != nil {
		return err
	}
	if err := processField(&e.TransactionInfo, p, state, "transaction_info", nil); err != nil {
		return err
	}
	if err := processField(&e.Logger, p, state, "logger", loggerAttrs); err != nil {
		return err
	}
	if err := processField(&e.Platform, p, state, "platform", platformAttrs); err != nil {
		return err
	}
	if err := processField(&e.Timestamp, p, state, "timestamp", nil); err != nil {
		return err
	}
	if err := processField(&e.StartTimestamp, p, state, "start_timestamp", nil); err != nil {
		return err
	}
	if err := processField(&e.Received, p, state, "received", nil); err != nil {
		return err
	}
	if err := processField(&e.Release, p, state, "release", releaseAttrs); err != nil {
		return err
	}
	if err := processField(&e.Dist, p, state, "dist", distAttrs); err != nil {
		return err
	}
	if err := processField(&e.Environment, p, state, "environment", environmentAttrs); err != nil {
		return err
	}
	if err := processField(&e.User, p, state, "user", userAttrs); err != nil {
		return err
	}
	if err := processField(&e.Request, p, state, "request", nil); err != nil {
		return err
	}
	if err := processField(&e.Logentry, p, state, "logentry", nil); err != nil {
		return err
	}
	if err := processField(&e.Sdk, p, state, "sdk", nil); err != nil {
		return err
	}
	if err := processField(&e.Contexts, p, state, "contexts", contextAttrs); err != nil {
		return err
	}
	if err := processField(&e.Exceptions, p, state, "exception", nil); err != nil {
		return err
	}
	if err := processField(&e.Stacktrace, p, state, "stacktrace", nil); err != nil {
		return err
	}
	if err := processField(&e.Breadcrumbs, p, state, "breadcrumbs", nil); err != nil {
		return err
	}
	if err := processField(&e.Tags, p, state, "tags", tagsAttrs); err != nil {
		return err
	}
	if err := processMapField[eventschema.Value](&e.Extra, p, state, "extra", extraAttrs); err != nil {
		return err
	}
	if err := processMapField[eventschema.String](&e.Modules, p, state, "modules", modulesAttrs); err != nil {
		return err
	}
	if err := processField(&e.Measurements, p, state, "measurements", nil); err != nil {
		return err
	}
	if err := processField(&e.Breakdowns, p, state, "breakdowns", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(e.Other, p, state)
}

// EventType returns the classified type, defaulting by payload shape: an
// event with a transaction name is a transaction, everything else an error.
func (e *Event) EventType() EventType {
	if e.Ty.Value != nil {
		return *e.Ty.Value
	}
	if e.Transaction.Value != nil {
		return TransactionEvent
	}
	return ErrorEvent
}

// TagValue returns the first tag stored under key.
func (e *Event) TagValue(key string) (string, bool) {
	if e.Tags.Value == nil {
		return "", false
	}
	return e.Tags.Value.Get(key)
}

// HasModule reports whether the named dependency appears in the module map.
func (e *Event) HasModule(name string) bool {
	return e.Modules.Value != nil && (*e.Modules.Value).Contains(name)
}

// SdkName returns the reporting SDK's name.
func (e *Event) SdkName() (string, bool) {
	if e.Sdk.Value == nil {
		return "", false
	}
	return annotatedString(&e.Sdk.Value.Name)
}

// SdkVersion returns the reporting SDK's version.
func (e *Event) SdkVersion() (string, bool) {
	if e.Sdk.Value == nil {
		return "", false
	}
	return annotatedString(&e.Sdk.Value.Version)
}

// UserAgent returns the request's user agent header, case-insensitively.
func (e *Event) UserAgent() (string, bool) {
	if e.Request.Value == nil {
		return "", false
	}
	return e.Request.Value.Header("User-Agent")
}

// ExtraAt descends the extra bag along a dotted path and returns the dynamic
// value found there.
func (e *Event) ExtraAt(path string) (*eventschema.Value, bool) {
	if e.Extra.Value == nil {
		return nil, false
	}
	return valueAt(*e.Extra.Value, path)
}

func valueAt(m *eventschema.Map[eventschema.Value], path string) (*eventschema.Value, bool) {
	head, rest, nested := strings.Cut(path, ".")
	entry := m.Get(head)
	if entry == nil || entry.Value == nil {
		return nil, false
	}
	if !nested {
		return entry.Value, true
	}
	obj, ok := entry.Value.AsObject()
	if !ok {
		return nil, false
	}
	return valueAt(obj, rest)
}

// ParseRelease parses the release field into its components.
func (e *Event) ParseRelease() (*release.Release, bool) {
	s, ok := annotatedString(&e.Release)
	if !ok {
		return nil, false
	}
	r, err := release.Parse(s)
	if err != nil {
		return nil, false
	}
	return r, true
}

// Measurement returns the numeric value of the named reading.
func (e *Event) Measurement(name string) (float64, bool) {
	if e.Measurements.Value == nil {
		return 0, false
	}
	return e.Measurements.Value.Get(name)
}

// Breakdown returns the numeric value of measurement name under axis.
func (e *Event) Breakdown(axis, name string) (float64, bool) {
	if e.Breakdowns.Value == nil {
		return 0, false
	}
	return e.Breakdowns.Value.Get(axis, name)
}

// Context returns the context stored under name.
func (e *Event) Context(name string) *Context {
	if e.Contexts.Value == nil {
		return nil
	}
	return e.Contexts.Value.Get(name)
}

// eventWire mirrors Event for codec purposes without its methods, so the
// catch-all capture below can reuse the standard struct decoding.
type eventWire Event

var eventWireKeys = map[string]struct{}{
	"event_id": {}, "type": {}, "level": {}, "transaction": {},
	"transaction_info": {}, "logger": {}, "platform": {}, "timestamp": {},
	"start_timestamp": {}, "received": {}, "release": {}, "dist": {},
	"environment": {}, "user": {}, "request": {}, "logentry": {}, "sdk": {},
	"contexts": {}, "exception": {}, "stacktrace": {}, "breadcrumbs": {},
	"tags": {}, "extra": {}, "modules": {}, "measurements": {},
	"breakdowns": {},
}

// MarshalJSON emits the declared fields and then splices in the unrecognized
// top-level keys captured at decode time, so they survive a round trip.
func (e Event) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(eventWire(e))
	if err != nil {
		return nil, err
	}
	if e.Other == nil || e.Other.Len() == 0 {
		return base, nil
	}
	extra, err := json.Marshal(e.Other)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(base) + len(extra))
	buf.Write(base[:len(base)-1])
	buf.WriteByte(',')
	buf.Write(extra[1:])
	return buf.Bytes(), nil
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var w eventWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var all eventschema.Map[eventschema.Value]
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	*e = Event(w)
	for key, entry := range all.All() {
		if _, known := eventWireKeys[key]; known {
			continue
		}
		if e.Other == nil {
			e.Other = eventschema.NewMap[eventschema.Value]()
		}
		e.Other.Set(key, *entry)
	}
	return nil
}
