package protocol

import (
	"github.com/ingestkit/eventschema"
)

// Request describes the HTTP request during which the event occurred.
type Request struct {
	Url         eventschema.Annotated[eventschema.String]                  `json:"url"`
	Method      eventschema.Annotated[eventschema.String]                  `json:"method"`
	QueryString eventschema.Annotated[eventschema.String]                  `json:"query_string"`
	Data        eventschema.Annotated[eventschema.Value]                   `json:"data"`
	Headers     eventschema.Annotated[Headers]                             `json:"headers"`
	Env         eventschema.Annotated[*eventschema.Map[eventschema.Value]] `json:"env"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

// Header returns the first header value stored under name,
// case-insensitively.
func (r *Request) Header(name string) (string, bool) {
	if r == nil || r.Headers.Value == nil {
		return "", false
	}
	return r.Headers.Value.Get(name)
}

func (r *Request) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (r *Request) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if rp, ok := p.(RequestProcessor); ok {
		return rp.ProcessRequest(r, meta, state)
	}
	return r.AcceptChildren(p, state)
}

func (r *Request) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&r.Url, p, state, "url", urlAttrs); err != nil {
		return err
	}
	if err := processField(&r.Method, p, state, "method", nil); err != nil {
		return err
	}
	if err := processField(&r.QueryString, p, state, "query_string", urlAttrs); err != nil {
		return err
	}
	if err := processField(&r.Data, p, state, "data", requestDataAttrs); err != nil {
		return err
	}
	if err := processField(&r.Headers, p, state, "headers", headersAttrs); err != nil {
		return err
	}
	if err := processMapField[eventschema.Value](&r.Env, p, state, "env", requestEnvAttrs); err != nil {
		return err
	}
	return eventschema.ProcessOther(r.Other, p, state)
}
