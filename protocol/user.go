package protocol

import (
	"github.com/ingestkit/eventschema"
)

// Geo is the location information resolved for a user.
type Geo struct {
	CountryCode eventschema.Annotated[eventschema.String] `json:"country_code"`
	City        eventschema.Annotated[eventschema.String] `json:"city"`
	Region      eventschema.Annotated[eventschema.String] `json:"region"`
	Subdivision eventschema.Annotated[eventschema.String] `json:"subdivision"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (g *Geo) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (g *Geo) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	return g.AcceptChildren(p, state)
}

func (g *Geo) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&g.CountryCode, p, state, "country_code", nil); err != nil {
		return err
	}
	if err := processField(&g.City, p, state, "city", nil); err != nil {
		return err
	}
	if err := processField(&g.Region, p, state, "region", nil); err != nil {
		return err
	}
	if err := processField(&g.Subdivision, p, state, "subdivision", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(g.Other, p, state)
}

// User identifies the person or service affected by the event. Every field
// is sensitive by default.
type User struct {
	Id        eventschema.Annotated[eventschema.String] `json:"id"`
	Email     eventschema.Annotated[eventschema.String] `json:"email"`
	IpAddress eventschema.Annotated[eventschema.String] `json:"ip_address"`
	Username  eventschema.Annotated[eventschema.String] `json:"username"`
	Name      eventschema.Annotated[eventschema.String] `json:"name"`
	Segment   eventschema.Annotated[eventschema.String] `json:"segment"`
	Geo       eventschema.Annotated[Geo]                `json:"geo"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (u *User) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (u *User) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if up, ok := p.(UserProcessor); ok {
		return up.ProcessUser(u, meta, state)
	}
	return u.AcceptChildren(p, state)
}

func (u *User) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&u.Id, p, state, "id", userIdAttrs); err != nil {
		return err
	}
	if err := processField(&u.Email, p, state, "email", emailAttrs); err != nil {
		return err
	}
	if err := processField(&u.IpAddress, p, state, "ip_address", ipAttrs); err != nil {
		return err
	}
	if err := processField(&u.Username, p, state, "username", userIdAttrs); err != nil {
		return err
	}
	if err := processField(&u.Name, p, state, "name", userIdAttrs); err != nil {
		return err
	}
	if err := processField(&u.Segment, p, state, "segment", nil); err != nil {
		return err
	}
	if err := processField(&u.Geo, p, state, "geo", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(u.Other, p, state)
}
