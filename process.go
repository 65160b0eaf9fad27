package eventschema

// Process runs processor p over one annotated cell. Absent values are
// skipped; the cell's meta stays reachable through the hooks of enclosing
// nodes. Any aborting action returned by a hook is propagated to the caller
// unchanged; folding a delete back into the cell is the driver's decision,
// made after the traversal returns (see Annotated.Apply).
func Process[T any, PT ProcessablePtr[T]](a *Annotated[T], p Processor, state *ProcessingState) error {
	if a == nil || a.Value == nil {
		return nil
	}
	return PT(a.Value).Accept(&a.Meta, p, state)
}

// TypesForField reports the value types of a field's current content. For
// statically typed fields this equals the type's declared set; for dynamic
// values it reflects the kind actually held, so traversal states describe
// the data rather than the schema slot.
func TypesForField[T any, PT ProcessablePtr[T]](a *Annotated[T]) ValueTypeSet {
	if a == nil || a.Value == nil {
		var zero T
		return PT(&zero).ValueTypes()
	}
	return PT(a.Value).ValueTypes()
}

// ProcessArrayField processes an annotated array-typed field, visiting every
// element in index order under a numeric path segment.
func ProcessArrayField[T any, PT ProcessablePtr[T]](a *Annotated[Array[T]], p Processor, state *ProcessingState) error {
	if a == nil || a.Value == nil {
		return nil
	}
	return ProcessArrayChildren[T, PT](a.Value, p, state)
}

// ProcessMapField processes an annotated map-typed field, visiting every
// entry in insertion order under its key as the path segment.
func ProcessMapField[T any, PT ProcessablePtr[T]](a *Annotated[*Map[T]], p Processor, state *ProcessingState) error {
	if a == nil || a.Value == nil {
		return nil
	}
	return ProcessMapChildren[T, PT](*a.Value, p, state)
}

// ProcessArrayChildren visits the elements of arr in index order. The first
// aborting action stops the walk; later elements are not visited.
func ProcessArrayChildren[T any, PT ProcessablePtr[T]](arr *Array[T], p Processor, state *ProcessingState) error {
	if arr == nil {
		return nil
	}
	for i := range *arr {
		elem := &(*arr)[i]
		if err := Process[T, PT](elem, p, state.EnterIndex(i, nil, TypesForField[T, PT](elem))); err != nil {
			return err
		}
	}
	return nil
}

// ProcessMapChildren visits the entries of m in insertion order. The first
// aborting action stops the walk; later entries are not visited.
func ProcessMapChildren[T any, PT ProcessablePtr[T]](m *Map[T], p Processor, state *ProcessingState) error {
	if m == nil {
		return nil
	}
	for _, key := range m.keys {
		entry := m.items[key]
		if err := Process[T, PT](entry, p, state.EnterKey(key, nil, TypesForField[T, PT](entry))); err != nil {
			return err
		}
	}
	return nil
}

var additionalPropsAttrs = &FieldAttrs{AdditionalProperties: true}

// ProcessOther visits an entity's open additional-properties bag. Entries
// inherit the additional-properties policy instead of the parent field's.
func ProcessOther(m *Map[Value], p Processor, state *ProcessingState) error {
	if m == nil {
		return nil
	}
	for _, key := range m.keys {
		entry := m.items[key]
		if err := Process[Value, *Value](entry, p, state.EnterKey(key, additionalPropsAttrs, TypesForField[Value, *Value](entry))); err != nil {
			return err
		}
	}
	return nil
}

func (v *String) ValueTypes() ValueTypeSet { return StringType }

func (v *String) Accept(meta *Meta, p Processor, state *ProcessingState) error {
	if sp, ok := p.(StringProcessor); ok {
		return sp.ProcessString(v, meta, state)
	}
	return v.AcceptChildren(p, state)
}

func (v *String) AcceptChildren(Processor, *ProcessingState) error { return nil }

func (v *Bool) ValueTypes() ValueTypeSet { return BooleanType }

func (v *Bool) Accept(meta *Meta, p Processor, state *ProcessingState) error {
	if bp, ok := p.(BoolProcessor); ok {
		return bp.ProcessBool(v, meta, state)
	}
	return v.AcceptChildren(p, state)
}

func (v *Bool) AcceptChildren(Processor, *ProcessingState) error { return nil }

func (v *Int64) ValueTypes() ValueTypeSet { return NumberType }

func (v *Int64) Accept(meta *Meta, p Processor, state *ProcessingState) error {
	if ip, ok := p.(Int64Processor); ok {
		return ip.ProcessInt64(v, meta, state)
	}
	return v.AcceptChildren(p, state)
}

func (v *Int64) AcceptChildren(Processor, *ProcessingState) error { return nil }

func (v *Uint64) ValueTypes() ValueTypeSet { return NumberType }

func (v *Uint64) Accept(meta *Meta, p Processor, state *ProcessingState) error {
	if up, ok := p.(Uint64Processor); ok {
		return up.ProcessUint64(v, meta, state)
	}
	return v.AcceptChildren(p, state)
}

func (v *Uint64) AcceptChildren(Processor, *ProcessingState) error { return nil }

func (v *Float64) ValueTypes() ValueTypeSet { return NumberType }

func (v *Float64) Accept(meta *Meta, p Processor, state *ProcessingState) error {
	if fp, ok := p.(Float64Processor); ok {
		return fp.ProcessFloat64(v, meta, state)
	}
	return v.AcceptChildren(p, state)
}

func (v *Float64) AcceptChildren(Processor, *ProcessingState) error { return nil }

// ValueTypes of a dynamic value reflects the kind it currently holds. An
// invalid (zero) value reports the unconstrained set.
func (v *Value) ValueTypes() ValueTypeSet {
	switch v.kind {
	case KindString:
		return StringType
	case KindBool:
		return BooleanType
	case KindInt64, KindUint64, KindFloat64:
		return NumberType
	case KindArray:
		return ArrayType
	case KindObject:
		return ObjectType
	}
	return 0
}

// Accept dispatches a dynamic value in two phases. The value hook sees the
// node with its tag intact and the current state. The concrete kind then
// dispatches under a derived no-segment state, bracketed by the before and
// after hooks, so that instrumentation written against either level fires
// exactly once per real node with consistent path accounting. Unwrapping a
// variant does not consume a path component, so children of a wrapped array
// stay numbered relative to the array's own position.
func (v *Value) Accept(meta *Meta, p Processor, state *ProcessingState) error {
	if vp, ok := p.(ValueProcessor); ok {
		if err := vp.ProcessValue(v, meta, state); err != nil {
			return err
		}
	}
	inner := state.EnterNothing(nil)
	if bp, ok := p.(BeforeProcessor); ok {
		if err := bp.BeforeProcess(meta, inner); err != nil {
			return err
		}
	}
	if err := v.acceptKind(meta, p, inner); err != nil {
		return err
	}
	if ap, ok := p.(AfterProcessor); ok {
		if err := ap.AfterProcess(meta, inner); err != nil {
			return err
		}
	}
	return nil
}

func (v *Value) acceptKind(meta *Meta, p Processor, state *ProcessingState) error {
	switch v.kind {
	case KindString:
		return (&v.str).Accept(meta, p, state)
	case KindBool:
		return (&v.b).Accept(meta, p, state)
	case KindInt64:
		return (&v.i).Accept(meta, p, state)
	case KindUint64:
		return (&v.u).Accept(meta, p, state)
	case KindFloat64:
		return (&v.f).Accept(meta, p, state)
	case KindArray:
		if ap, ok := p.(ArrayProcessor); ok {
			return ap.ProcessArray(&v.arr, meta, state)
		}
		return ProcessArrayChildren[Value, *Value](&v.arr, p, state)
	case KindObject:
		if op, ok := p.(ObjectProcessor); ok {
			return op.ProcessObject(v.obj, meta, state)
		}
		return ProcessMapChildren[Value, *Value](v.obj, p, state)
	}
	return nil
}

func (v *Value) AcceptChildren(p Processor, state *ProcessingState) error {
	switch v.kind {
	case KindArray:
		return ProcessArrayChildren[Value, *Value](&v.arr, p, state)
	case KindObject:
		return ProcessMapChildren[Value, *Value](v.obj, p, state)
	}
	return nil
}
