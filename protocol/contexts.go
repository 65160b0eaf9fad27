package protocol

import (
	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// RuntimeContext describes the language runtime.
type RuntimeContext struct {
	Name    eventschema.Annotated[eventschema.String] `json:"name"`
	Version eventschema.Annotated[eventschema.String] `json:"version"`
	Build   eventschema.Annotated[eventschema.String] `json:"build"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *RuntimeContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.Name, p, state, "name", nil); err != nil {
		return err
	}
	if err := processField(&c.Version, p, state, "version", nil); err != nil {
		return err
	}
	if err := processField(&c.Build, p, state, "build", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *RuntimeContext) getValue(field string) (eventschema.Val, bool) {
	switch field {
	case "name":
		return stringField(&c.Name)
	case "version":
		return stringField(&c.Version)
	case "build":
		return stringField(&c.Build)
	}
	return eventschema.Val{}, false
}

// OsContext describes the operating system.
type OsContext struct {
	Name          eventschema.Annotated[eventschema.String] `json:"name"`
	Version       eventschema.Annotated[eventschema.String] `json:"version"`
	Build         eventschema.Annotated[eventschema.String] `json:"build"`
	KernelVersion eventschema.Annotated[eventschema.String] `json:"kernel_version"`
	Rooted        eventschema.Annotated[eventschema.Bool]   `json:"rooted"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *OsContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.Name, p, state, "name", nil); err != nil {
		return err
	}
	if err := processField(&c.Version, p, state, "version", nil); err != nil {
		return err
	}
	if err := processField(&c.Build, p, state, "build", nil); err != nil {
		return err
	}
	if err := processField(&c.KernelVersion, p, state, "kernel_version", nil); err != nil {
		return err
	}
	if err := processField(&c.Rooted, p, state, "rooted", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *OsContext) getValue(field string) (eventschema.Val, bool) {
	switch field {
	case "name":
		return stringField(&c.Name)
	case "version":
		return stringField(&c.Version)
	case "build":
		return stringField(&c.Build)
	case "kernel_version":
		return stringField(&c.KernelVersion)
	case "rooted":
		if c.Rooted.Value != nil {
			return eventschema.BoolVal(bool(*c.Rooted.Value)), true
		}
	}
	return eventschema.Val{}, false
}

// DeviceContext describes the device hardware.
type DeviceContext struct {
	Name         eventschema.Annotated[eventschema.String]  `json:"name"`
	Family       eventschema.Annotated[eventschema.String]  `json:"family"`
	Model        eventschema.Annotated[eventschema.String]  `json:"model"`
	Arch         eventschema.Annotated[eventschema.String]  `json:"arch"`
	Manufacturer eventschema.Annotated[eventschema.String]  `json:"manufacturer"`
	Brand        eventschema.Annotated[eventschema.String]  `json:"brand"`
	BatteryLevel eventschema.Annotated[eventschema.Float64] `json:"battery_level"`
	Simulator    eventschema.Annotated[eventschema.Bool]    `json:"simulator"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *DeviceContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.Name, p, state, "name", nil); err != nil {
		return err
	}
	if err := processField(&c.Family, p, state, "family", nil); err != nil {
		return err
	}
	if err := processField(&c.Model, p, state, "model", nil); err != nil {
		return err
	}
	if err := processField(&c.Arch, p, state, "arch", nil); err != nil {
		return err
	}
	if err := processField(&c.Manufacturer, p, state, "manufacturer", nil); err != nil {
		return err
	}
	if err := processField(&c.Brand, p, state, "brand", nil); err != nil {
		return err
	}
	if err := processField(&c.BatteryLevel, p, state, "battery_level", nil); err != nil {
		return err
	}
	if err := processField(&c.Simulator, p, state, "simulator", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *DeviceContext) getValue(field string) (eventschema.Val, bool) {
	switch field {
	case "name":
		return stringField(&c.Name)
	case "family":
		return stringField(&c.Family)
	case "model":
		return stringField(&c.Model)
	case "arch":
		return stringField(&c.Arch)
	case "manufacturer":
		return stringField(&c.Manufacturer)
	case "brand":
		return stringField(&c.Brand)
	case "battery_level":
		if c.BatteryLevel.Value != nil {
			return eventschema.Float64Val(float64(*c.BatteryLevel.Value)), true
		}
	case "simulator":
		if c.Simulator.Value != nil {
			return eventschema.BoolVal(bool(*c.Simulator.Value)), true
		}
	}
	return eventschema.Val{}, false
}

// BrowserContext describes the browser.
type BrowserContext struct {
	Name    eventschema.Annotated[eventschema.String] `json:"name"`
	Version eventschema.Annotated[eventschema.String] `json:"version"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *BrowserContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.Name, p, state, "name", nil); err != nil {
		return err
	}
	if err := processField(&c.Version, p, state, "version", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *BrowserContext) getValue(field string) (eventschema.Val, bool) {
	switch field {
	case "name":
		return stringField(&c.Name)
	case "version":
		return stringField(&c.Version)
	}
	return eventschema.Val{}, false
}

// AppContext describes the application build.
type AppContext struct {
	AppIdentifier eventschema.Annotated[eventschema.String] `json:"app_identifier"`
	AppName       eventschema.Annotated[eventschema.String] `json:"app_name"`
	AppVersion    eventschema.Annotated[eventschema.String] `json:"app_version"`
	AppBuild      eventschema.Annotated[eventschema.String] `json:"app_build"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *AppContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.AppIdentifier, p, state, "app_identifier", nil); err != nil {
		return err
	}
	if err := processField(&c.AppName, p, state, "app_name", nil); err != nil {
		return err
	}
	if err := processField(&c.AppVersion, p, state, "app_version", nil); err != nil {
		return err
	}
	if err := processField(&c.AppBuild, p, state, "app_build", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *AppContext) getValue(field string) (eventschema.Val, bool) {
	switch field {
	case "app_identifier":
		return stringField(&c.AppIdentifier)
	case "app_name":
		return stringField(&c.AppName)
	case "app_version":
		return stringField(&c.AppVersion)
	case "app_build":
		return stringField(&c.AppBuild)
	}
	return eventschema.Val{}, false
}

// TraceContext ties the event into a distributed trace.
type TraceContext struct {
	TraceId eventschema.Annotated[eventschema.String] `json:"trace_id"`
	SpanId  eventschema.Annotated[eventschema.String] `json:"span_id"`
	Op      eventschema.Annotated[eventschema.String] `json:"op"`
	Status  eventschema.Annotated[eventschema.String] `json:"status"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *TraceContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.TraceId, p, state, "trace_id", nil); err != nil {
		return err
	}
	if err := processField(&c.SpanId, p, state, "span_id", nil); err != nil {
		return err
	}
	if err := processField(&c.Op, p, state, "op", nil); err != nil {
		return err
	}
	if err := processField(&c.Status, p, state, "status", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *TraceContext) getValue(field string) (eventschema.Val, bool) {
	switch field {
	case "trace_id":
		return stringField(&c.TraceId)
	case "span_id":
		return stringField(&c.SpanId)
	case "op":
		return stringField(&c.Op)
	case "status":
		return stringField(&c.Status)
	}
	return eventschema.Val{}, false
}

// ProfileContext links the event to a captured profile.
type ProfileContext struct {
	ProfileId eventschema.Annotated[eventschema.String] `json:"profile_id"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *ProfileContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.ProfileId, p, state, "profile_id", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *ProfileContext) getValue(field string) (eventschema.Val, bool) {
	if field == "profile_id" {
		return stringField(&c.ProfileId)
	}
	return eventschema.Val{}, false
}

// ResponseContext describes the HTTP response of the traced request.
type ResponseContext struct {
	StatusCode eventschema.Annotated[eventschema.Uint64] `json:"status_code"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (c *ResponseContext) acceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&c.StatusCode, p, state, "status_code", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(c.Other, p, state)
}

func (c *ResponseContext) getValue(field string) (eventschema.Val, bool) {
	if field == "status_code" && c.StatusCode.Value != nil {
		return eventschema.Uint64Val(uint64(*c.StatusCode.Value)), true
	}
	return eventschema.Val{}, false
}

// Context is one entry of the contexts bag: exactly one variant is set.
// Unrecognized context types are kept verbatim in Raw.
type Context struct {
	Runtime  *RuntimeContext
	Os       *OsContext
	Device   *DeviceContext
	Browser  *BrowserContext
	App      *AppContext
	Trace    *TraceContext
	Profile  *ProfileContext
	Response *ResponseContext
	Raw      *eventschema.Map[eventschema.Value]
}

func stringField(a *eventschema.Annotated[eventschema.String]) (eventschema.Val, bool) {
	if s, ok := annotatedString(a); ok {
		return eventschema.StringVal(s), true
	}
	return eventschema.Val{}, false
}

func (c *Context) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (c *Context) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if cp, ok := p.(ContextProcessor); ok {
		return cp.ProcessContext(c, meta, state)
	}
	return c.AcceptChildren(p, state)
}

func (c *Context) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	switch {
	case c.Runtime != nil:
		return c.Runtime.acceptChildren(p, state)
	case c.Os != nil:
		return c.Os.acceptChildren(p, state)
	case c.Device != nil:
		return c.Device.acceptChildren(p, state)
	case c.Browser != nil:
		return c.Browser.acceptChildren(p, state)
	case c.App != nil:
		return c.App.acceptChildren(p, state)
	case c.Trace != nil:
		return c.Trace.acceptChildren(p, state)
	case c.Profile != nil:
		return c.Profile.acceptChildren(p, state)
	case c.Response != nil:
		return c.Response.acceptChildren(p, state)
	case c.Raw != nil:
		return eventschema.ProcessMapChildren[eventschema.Value](c.Raw, p, state)
	}
	return nil
}

// GetValue resolves one field of whichever variant is set. Raw contexts
// resolve scalar entries directly.
func (c *Context) GetValue(field string) (eventschema.Val, bool) {
	switch {
	case c.Runtime != nil:
		return c.Runtime.getValue(field)
	case c.Os != nil:
		return c.Os.getValue(field)
	case c.Device != nil:
		return c.Device.getValue(field)
	case c.Browser != nil:
		return c.Browser.getValue(field)
	case c.App != nil:
		return c.App.getValue(field)
	case c.Trace != nil:
		return c.Trace.getValue(field)
	case c.Profile != nil:
		return c.Profile.getValue(field)
	case c.Response != nil:
		return c.Response.getValue(field)
	case c.Raw != nil:
		entry := c.Raw.Get(field)
		if entry == nil {
			return eventschema.Val{}, false
		}
		return eventschema.ValOf(entry.Value)
	}
	return eventschema.Val{}, false
}

func (c Context) MarshalJSON() ([]byte, error) {
	switch {
	case c.Runtime != nil:
		return json.Marshal(c.Runtime)
	case c.Os != nil:
		return json.Marshal(c.Os)
	case c.Device != nil:
		return json.Marshal(c.Device)
	case c.Browser != nil:
		return json.Marshal(c.Browser)
	case c.App != nil:
		return json.Marshal(c.App)
	case c.Trace != nil:
		return json.Marshal(c.Trace)
	case c.Profile != nil:
		return json.Marshal(c.Profile)
	case c.Response != nil:
		return json.Marshal(c.Response)
	case c.Raw != nil:
		return json.Marshal(c.Raw)
	}
	return []byte("null"), nil
}

// Contexts is the keyed context bag. The variant of each entry is chosen by
// the entry's "type" field, falling back to the well-known key names.
type Contexts struct {
	Items *eventschema.Map[Context]
}

// Get returns the context stored under name.
func (c *Contexts) Get(name string) *Context {
	if c == nil || c.Items == nil {
		return nil
	}
	entry := c.Items.Get(name)
	if entry == nil {
		return nil
	}
	return entry.Value
}

func (c *Contexts) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (c *Contexts) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return c.AcceptChildren(p, state)
}

func (c *Contexts) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	return eventschema.ProcessMapChildren[Context](c.Items, p, state)
}

func (c Contexts) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items)
}

func (c *Contexts) UnmarshalJSON(data []byte) error {
	var raw eventschema.Map[json.RawMessage]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Items = eventschema.NewMap[Context]()
	for key, entry := range raw.All() {
		if entry.Value == nil {
			c.Items.Set(key, eventschema.Annotated[Context]{Meta: entry.Meta})
			continue
		}
		ctx, err := decodeContext(key, *entry.Value)
		if err != nil {
			return err
		}
		c.Items.Set(key, eventschema.NewAnnotated(ctx))
	}
	return nil
}

func decodeContext(key string, data []byte) (Context, error) {
	kind := struct {
		Type string `json:"type"`
	}{}
	if err := json.Unmarshal(data, &kind); err != nil {
		return Context{}, err
	}
	ty := kind.Type
	if ty == "" {
		ty = key
	}
	var c Context
	var err error
	switch ty {
	case "runtime":
		c.Runtime = &RuntimeContext{}
		err = json.Unmarshal(data, c.Runtime)
	case "os":
		c.Os = &OsContext{}
		err = json.Unmarshal(data, c.Os)
	case "device":
		c.Device = &DeviceContext{}
		err = json.Unmarshal(data, c.Device)
	case "browser":
		c.Browser = &BrowserContext{}
		err = json.Unmarshal(data, c.Browser)
	case "app":
		c.App = &AppContext{}
		err = json.Unmarshal(data, c.App)
	case "trace":
		c.Trace = &TraceContext{}
		err = json.Unmarshal(data, c.Trace)
	case "profile":
		c.Profile = &ProfileContext{}
		err = json.Unmarshal(data, c.Profile)
	case "response":
		c.Response = &ResponseContext{}
		err = json.Unmarshal(data, c.Response)
	default:
		raw := eventschema.NewMap[eventschema.Value]()
		err = json.Unmarshal(data, raw)
		c.Raw = raw
	}
	return c, err
}
