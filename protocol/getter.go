package protocol

import (
	"iter"
	"strings"

	"github.com/ingestkit/eventschema"
	"github.com/ingestkit/eventschema/release"
)

// GetValue resolves a dotted path of the form "event.<field-path>". Fixed
// fields are matched exactly; open bags (tags, extra, headers, measurements,
// breakdowns, contexts, release components) are matched by prefix after the
// exact cases fail, so an exact case always shadows a prefix rule sharing
// its leading segment. Lookup is total: any miss is (zero, false).
func (e *Event) GetValue(path string) (eventschema.Val, bool) {
	rest, ok := strings.CutPrefix(path, "event.")
	if !ok {
		return eventschema.Val{}, false
	}

	switch rest {
	case "event_id":
		if e.Id.Value != nil {
			return eventschema.UUIDVal(e.Id.Value.UUID), true
		}
		return eventschema.Val{}, false
	case "type":
		return eventschema.StringVal(string(e.EventType())), true
	case "level":
		return stringField(&e.Level)
	case "transaction":
		return stringField(&e.Transaction)
	case "transaction.source":
		if e.TransactionInfo.Value != nil {
			return stringField(&e.TransactionInfo.Value.Source)
		}
		return eventschema.Val{}, false
	case "logger":
		return stringField(&e.Logger)
	case "platform":
		if v, ok := stringField(&e.Platform); ok {
			return v, true
		}
		return eventschema.StringVal("other"), true
	case "release":
		return stringField(&e.Release)
	case "dist":
		return stringField(&e.Dist)
	case "environment":
		return stringField(&e.Environment)
	case "duration":
		if ms, ok := e.Duration(); ok {
			return eventschema.Float64Val(ms), true
		}
		return eventschema.Val{}, false
	case "user.id":
		return userString(e, func(u *User) *eventschema.Annotated[eventschema.String] { return &u.Id })
	case "user.email":
		return userString(e, func(u *User) *eventschema.Annotated[eventschema.String] { return &u.Email })
	case "user.ip_address":
		return userString(e, func(u *User) *eventschema.Annotated[eventschema.String] { return &u.IpAddress })
	case "user.username":
		return userString(e, func(u *User) *eventschema.Annotated[eventschema.String] { return &u.Username })
	case "user.name":
		return userString(e, func(u *User) *eventschema.Annotated[eventschema.String] { return &u.Name })
	case "user.segment":
		return userString(e, func(u *User) *eventschema.Annotated[eventschema.String] { return &u.Segment })
	case "user.geo.city":
		return geoString(e, func(g *Geo) *eventschema.Annotated[eventschema.String] { return &g.City })
	case "user.geo.country_code":
		return geoString(e, func(g *Geo) *eventschema.Annotated[eventschema.String] { return &g.CountryCode })
	case "user.geo.region":
		return geoString(e, func(g *Geo) *eventschema.Annotated[eventschema.String] { return &g.Region })
	case "user.geo.subdivision":
		return geoString(e, func(g *Geo) *eventschema.Annotated[eventschema.String] { return &g.Subdivision })
	case "sdk.name":
		if s, ok := e.SdkName(); ok {
			return eventschema.StringVal(s), true
		}
		return eventschema.Val{}, false
	case "sdk.version":
		if s, ok := e.SdkVersion(); ok {
			return eventschema.StringVal(s), true
		}
		return eventschema.Val{}, false
	case "logentry.formatted":
		if e.Logentry.Value != nil && e.Logentry.Value.Formatted.Value != nil {
			return eventschema.StringVal(e.Logentry.Value.Formatted.Value.String()), true
		}
		return eventschema.Val{}, false
	case "logentry.message":
		if e.Logentry.Value != nil && e.Logentry.Value.Message.Value != nil {
			return eventschema.StringVal(e.Logentry.Value.Message.Value.String()), true
		}
		return eventschema.Val{}, false
	case "request.method":
		if e.Request.Value != nil {
			return stringField(&e.Request.Value.Method)
		}
		return eventschema.Val{}, false
	case "request.url":
		if e.Request.Value != nil {
			return stringField(&e.Request.Value.Url)
		}
		return eventschema.Val{}, false
	}

	if key, ok := strings.CutPrefix(rest, "release."); ok {
		return e.releaseComponent(key)
	}
	if key, ok := strings.CutPrefix(rest, "tags."); ok {
		if v, ok := e.TagValue(key); ok {
			return eventschema.StringVal(v), true
		}
		return eventschema.Val{}, false
	}
	if key, ok := strings.CutPrefix(rest, "extra."); ok {
		if v, ok := e.ExtraAt(key); ok {
			return eventschema.ValOf(v)
		}
		return eventschema.Val{}, false
	}
	if name, ok := strings.CutPrefix(rest, "request.headers."); ok {
		if e.Request.Value != nil {
			if v, ok := e.Request.Value.Header(name); ok {
				return eventschema.StringVal(v), true
			}
		}
		return eventschema.Val{}, false
	}
	if key, ok := strings.CutPrefix(rest, "measurements."); ok {
		// Measurement names may themselves contain dots, so only the
		// trailing ".value" selector is split off.
		name, ok := strings.CutSuffix(key, ".value")
		if !ok {
			return eventschema.Val{}, false
		}
		if v, ok := e.Measurement(name); ok {
			return eventschema.Float64Val(v), true
		}
		return eventschema.Val{}, false
	}
	if key, ok := strings.CutPrefix(rest, "breakdowns."); ok {
		axis, name, nested := strings.Cut(key, ".")
		if !nested {
			return eventschema.Val{}, false
		}
		if v, ok := e.Breakdown(axis, name); ok {
			return eventschema.Float64Val(v), true
		}
		return eventschema.Val{}, false
	}
	if key, ok := strings.CutPrefix(rest, "contexts."); ok {
		name, field, nested := strings.Cut(key, ".")
		if !nested {
			return eventschema.Val{}, false
		}
		if c := e.Context(name); c != nil {
			return c.GetValue(field)
		}
		return eventschema.Val{}, false
	}
	return eventschema.Val{}, false
}

// GetIter resolves a path to a restartable sequence of sub-entities.
// "event.exception.values" yields the error chain and
// "event.breadcrumbs.values" the breadcrumb trail, oldest first.
func (e *Event) GetIter(path string) (iter.Seq[eventschema.Getter], bool) {
	switch path {
	case "event.exception.values":
		if e.Exceptions.Value == nil || e.Exceptions.Value.Values.Value == nil {
			return nil, false
		}
		items := *e.Exceptions.Value.Values.Value
		return func(yield func(eventschema.Getter) bool) {
			for i := range items {
				if items[i].Value == nil {
					continue
				}
				if !yield(items[i].Value) {
					return
				}
			}
		}, true
	case "event.breadcrumbs.values":
		if e.Breadcrumbs.Value == nil || e.Breadcrumbs.Value.Values.Value == nil {
			return nil, false
		}
		items := *e.Breadcrumbs.Value.Values.Value
		return func(yield func(eventschema.Getter) bool) {
			for i := range items {
				if items[i].Value == nil {
					continue
				}
				if !yield(items[i].Value) {
					return
				}
			}
		}, true
	}
	return nil, false
}

// Duration computes the transaction duration in milliseconds. It is defined
// only for transaction events whose start does not exceed its end.
func (e *Event) Duration() (float64, bool) {
	if e.EventType() != TransactionEvent {
		return 0, false
	}
	if e.StartTimestamp.Value == nil || e.Timestamp.Value == nil {
		return 0, false
	}
	start, end := e.StartTimestamp.Value.Time, e.Timestamp.Value.Time
	if start.After(end) {
		return 0, false
	}
	return float64(end.Sub(start).Nanoseconds()) / 1e6, true
}

func (e *Event) releaseComponent(key string) (eventschema.Val, bool) {
	s, ok := annotatedString(&e.Release)
	if !ok {
		return eventschema.Val{}, false
	}
	r, err := release.Parse(s)
	if err != nil {
		return eventschema.Val{}, false
	}
	switch key {
	case "package":
		if p := r.Package(); p != "" {
			return eventschema.StringVal(p), true
		}
	case "version":
		return eventschema.StringVal(r.Version()), true
	case "build", "build_hash":
		if b := r.BuildHash(); b != "" {
			return eventschema.StringVal(b), true
		}
	case "version.short", "short":
		return eventschema.StringVal(r.Short()), true
	}
	return eventschema.Val{}, false
}

func userString(e *Event, field func(*User) *eventschema.Annotated[eventschema.String]) (eventschema.Val, bool) {
	if e.User.Value == nil {
		return eventschema.Val{}, false
	}
	return stringField(field(e.User.Value))
}

func geoString(e *Event, field func(*Geo) *eventschema.Annotated[eventschema.String]) (eventschema.Val, bool) {
	if e.User.Value == nil || e.User.Value.Geo.Value == nil {
		return eventschema.Val{}, false
	}
	return stringField(field(e.User.Value.Geo.Value))
}
