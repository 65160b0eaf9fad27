package eventschema

// ErrorKind classifies an error recorded into a value's metadata. The engine
// never interprets kinds; processors agree on them by convention.
type ErrorKind string

const (
	ErrInvalidData      ErrorKind = "invalid_data"
	ErrMissingAttribute ErrorKind = "missing_attribute"
	ErrValueTooLong     ErrorKind = "value_too_long"
	ErrPastTimestamp    ErrorKind = "past_timestamp"
	ErrFutureTimestamp  ErrorKind = "future_timestamp"
	ErrInvalidAttribute ErrorKind = "invalid_attribute"
	ErrRemoved          ErrorKind = "removed"
)

// MetaError is one recorded error: a kind plus free-form context.
type MetaError struct {
	Kind ErrorKind
	Data map[string]any
}

// Meta is the metadata side channel of an annotated value. It records an
// ordered sequence of errors and, after a soft delete, a snapshot of the
// original value. Reading and writing meta is always possible independent of
// whether the value itself is present.
type Meta struct {
	errors   []MetaError
	original any
	hasOrig  bool
}

// AddError appends an error of the given kind.
func (m *Meta) AddError(kind ErrorKind) {
	m.errors = append(m.errors, MetaError{Kind: kind})
}

// AddErrorData appends an error of the given kind with context data.
func (m *Meta) AddErrorData(kind ErrorKind, data map[string]any) {
	m.errors = append(m.errors, MetaError{Kind: kind, Data: data})
}

// Errors returns the recorded errors in insertion order.
func (m *Meta) Errors() []MetaError { return m.errors }

// HasErrors reports whether any error was recorded.
func (m *Meta) HasErrors() bool { return len(m.errors) > 0 }

// SetOriginal snapshots the original value. The first snapshot wins; later
// calls are ignored so the earliest deleted form survives repeated passes.
func (m *Meta) SetOriginal(v any) {
	if m.hasOrig {
		return
	}
	m.original = v
	m.hasOrig = true
}

// Original returns the snapshot taken on soft delete, if any.
func (m *Meta) Original() (any, bool) { return m.original, m.hasOrig }

// IsEmpty reports whether the meta carries no information.
func (m *Meta) IsEmpty() bool { return len(m.errors) == 0 && !m.hasOrig }

// Annotated pairs a value with its Meta. A nil Value is the regular,
// inspectable "absent" state, not an exceptional one.
type Annotated[T any] struct {
	Value *T
	Meta  Meta
}

// NewAnnotated wraps v into a present annotated value with empty meta.
func NewAnnotated[T any](v T) Annotated[T] {
	return Annotated[T]{Value: &v}
}

// Apply folds a traversal outcome back into the annotated value.
//
// A nil error is a no-op. A hard delete drops the value and the metadata with
// no further detail retained. A soft delete snapshots the value into the
// meta's original slot and then drops it. Anything else, including an Invalid
// action, is returned to the caller unchanged.
func (a *Annotated[T]) Apply(err error) error {
	act, ok := AsAction(err)
	if !ok {
		return err
	}
	switch {
	case act.IsDeleteHard():
		a.Value = nil
		a.Meta = Meta{}
		return nil
	case act.IsDeleteSoft():
		if a.Value != nil {
			a.Meta.SetOriginal(*a.Value)
		}
		a.Value = nil
		return nil
	default:
		return err
	}
}
