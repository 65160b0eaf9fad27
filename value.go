package eventschema

import "iter"

// Kind tags the variant an untyped dynamic Value currently holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindInt64
	KindUint64
	KindFloat64
	KindArray
	KindObject
)

// Scalar node types. Schema fields declare these so every node of the tree,
// scalars included, can carry a processor dispatch.
type (
	String  string
	Bool    bool
	Int64   int64
	Uint64  uint64
	Float64 float64
)

// Array is an ordered sequence of annotated elements.
type Array[T any] []Annotated[T]

// Map is a string-keyed collection of annotated values that iterates in
// insertion order. Insertion order is contractual: it keeps path-derived
// diagnostics and order-sensitive processors reproducible.
type Map[T any] struct {
	keys  []string
	items map[string]*Annotated[T]
}

// NewMap returns an empty map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{items: make(map[string]*Annotated[T])}
}

// Len returns the number of entries. Safe on a nil map.
func (m *Map[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the entry for key, or nil when absent. Safe on a nil map.
func (m *Map[T]) Get(key string) *Annotated[T] {
	if m == nil {
		return nil
	}
	return m.items[key]
}

// Set stores v under key, appending the key on first insertion.
func (m *Map[T]) Set(key string, v Annotated[T]) {
	if m.items == nil {
		m.items = make(map[string]*Annotated[T])
	}
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = &v
}

// Delete removes the entry for key, keeping the order of the rest.
func (m *Map[T]) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.items[key]; !ok {
		return
	}
	delete(m.items, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Contains reports whether key is present.
func (m *Map[T]) Contains(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.items[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map[T]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates entries in insertion order. Entries are yielded by pointer so
// processors can mutate them in place.
func (m *Map[T]) All() iter.Seq2[string, *Annotated[T]] {
	return func(yield func(string, *Annotated[T]) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}

// Value is an untyped dynamic value: a tagged union over the concrete kinds a
// schema-less subtree may hold. The tag preserves exhaustive dispatch.
type Value struct {
	kind Kind
	str  String
	b    Bool
	i    Int64
	u    Uint64
	f    Float64
	arr  Array[Value]
	obj  *Map[Value]
}

func StringValue(s string) Value      { return Value{kind: KindString, str: String(s)} }
func BoolValue(b bool) Value          { return Value{kind: KindBool, b: Bool(b)} }
func Int64Value(i int64) Value        { return Value{kind: KindInt64, i: Int64(i)} }
func Uint64Value(u uint64) Value      { return Value{kind: KindUint64, u: Uint64(u)} }
func Float64Value(f float64) Value    { return Value{kind: KindFloat64, f: Float64(f)} }
func ArrayValue(a Array[Value]) Value { return Value{kind: KindArray, arr: a} }
func ObjectValue(o *Map[Value]) Value { return Value{kind: KindObject, obj: o} }

// Kind returns the variant tag.
func (v *Value) Kind() Kind { return v.kind }

// AsString unwraps a string variant.
func (v *Value) AsString() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return string(v.str), true
}

// AsBool unwraps a boolean variant.
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return bool(v.b), true
}

// AsInt64 unwraps a signed integer variant.
func (v *Value) AsInt64() (int64, bool) {
	if v == nil || v.kind != KindInt64 {
		return 0, false
	}
	return int64(v.i), true
}

// AsUint64 unwraps an unsigned integer variant.
func (v *Value) AsUint64() (uint64, bool) {
	if v == nil || v.kind != KindUint64 {
		return 0, false
	}
	return uint64(v.u), true
}

// AsFloat64 unwraps a float variant.
func (v *Value) AsFloat64() (float64, bool) {
	if v == nil || v.kind != KindFloat64 {
		return 0, false
	}
	return float64(v.f), true
}

// AsArray unwraps an array variant.
func (v *Value) AsArray() (*Array[Value], bool) {
	if v == nil || v.kind != KindArray {
		return nil, false
	}
	return &v.arr, true
}

// AsObject unwraps an object variant.
func (v *Value) AsObject() (*Map[Value], bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}
