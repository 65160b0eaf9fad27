package eventschema

// Processor is a tree walker. The base interface carries no methods; behavior
// is attached through the optional hook interfaces below, discovered by type
// assertion at each node. Missing hooks mean the walk recurses as if the hook
// had returned nil.
type Processor interface{}

// BeforeProcessor brackets the front of every dynamic-value visit,
// regardless of the kind the value holds.
type BeforeProcessor interface {
	BeforeProcess(meta *Meta, state *ProcessingState) error
}

// AfterProcessor brackets the end of every dynamic-value visit.
type AfterProcessor interface {
	AfterProcess(meta *Meta, state *ProcessingState) error
}

// StringProcessor intercepts string nodes.
type StringProcessor interface {
	ProcessString(v *String, meta *Meta, state *ProcessingState) error
}

// BoolProcessor intercepts boolean nodes.
type BoolProcessor interface {
	ProcessBool(v *Bool, meta *Meta, state *ProcessingState) error
}

// Int64Processor intercepts signed integer nodes.
type Int64Processor interface {
	ProcessInt64(v *Int64, meta *Meta, state *ProcessingState) error
}

// Uint64Processor intercepts unsigned integer nodes.
type Uint64Processor interface {
	ProcessUint64(v *Uint64, meta *Meta, state *ProcessingState) error
}

// Float64Processor intercepts float nodes.
type Float64Processor interface {
	ProcessFloat64(v *Float64, meta *Meta, state *ProcessingState) error
}

// ValueProcessor intercepts untyped dynamic nodes before they dispatch on
// their concrete kind.
type ValueProcessor interface {
	ProcessValue(v *Value, meta *Meta, state *ProcessingState) error
}

// ArrayProcessor intercepts untyped arrays. Returning nil stops the walk at
// the array; call ProcessArrayChildren to keep descending.
type ArrayProcessor interface {
	ProcessArray(v *Array[Value], meta *Meta, state *ProcessingState) error
}

// ObjectProcessor intercepts untyped objects. Returning nil stops the walk at
// the object; call ProcessMapChildren to keep descending.
type ObjectProcessor interface {
	ProcessObject(v *Map[Value], meta *Meta, state *ProcessingState) error
}

// Processable is a node of an annotated tree. Accept routes the node through
// the processor's matching hook, falling back to AcceptChildren when the hook
// is absent. AcceptChildren recurses into child fields without re-running the
// node's own hook.
type Processable interface {
	// ValueTypes reports the type classes the node belongs to, used to
	// seed per-node ProcessingState.
	ValueTypes() ValueTypeSet

	Accept(meta *Meta, p Processor, state *ProcessingState) error
	AcceptChildren(p Processor, state *ProcessingState) error
}

// ProcessablePtr constrains a pointer type whose pointee is a tree node. It
// lets the generic traversal helpers address fields in place.
type ProcessablePtr[T any] interface {
	*T
	Processable
}
