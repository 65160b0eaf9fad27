package protocol

import (
	"github.com/ingestkit/eventschema"
)

// Per-entity processor hooks. Like the scalar hooks of the engine, these are
// optional interfaces: a processor that does not implement one simply lets
// the entity recurse into its children. A hook that wants both its own logic
// and the structural recursion calls the entity's AcceptChildren itself.

type EventProcessor interface {
	ProcessEvent(e *Event, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type ExceptionProcessor interface {
	ProcessException(e *Exception, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type UserProcessor interface {
	ProcessUser(u *User, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type RequestProcessor interface {
	ProcessRequest(r *Request, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type StacktraceProcessor interface {
	ProcessStacktrace(s *Stacktrace, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type FrameProcessor interface {
	ProcessFrame(f *Frame, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type BreadcrumbProcessor interface {
	ProcessBreadcrumb(b *Breadcrumb, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type ContextProcessor interface {
	ProcessContext(c *Context, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

type TimestampProcessor interface {
	ProcessTimestamp(t *Timestamp, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}

// HeaderNameProcessor observes header names before they dispatch as strings.
// Unlike the entity hooks above it does not replace the inner dispatch: the
// wrapped string still reaches the string hook exactly once afterwards.
type HeaderNameProcessor interface {
	ProcessHeaderName(h *HeaderName, meta *eventschema.Meta, state *eventschema.ProcessingState) error
}
