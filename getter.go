package eventschema

import (
	"iter"

	"github.com/google/uuid"
)

// ValKind tags the variant a Val holds.
type ValKind uint8

const (
	ValNone ValKind = iota
	ValString
	ValBool
	ValInt64
	ValUint64
	ValFloat64
	ValUUID
)

// Val is the read-only scalar view returned by path lookup. It is a snapshot
// of a leaf at lookup time; mutating the tree afterwards does not change it.
type Val struct {
	kind ValKind
	str  string
	b    bool
	i    int64
	u    uint64
	f    float64
	id   uuid.UUID
}

func StringVal(s string) Val   { return Val{kind: ValString, str: s} }
func BoolVal(b bool) Val       { return Val{kind: ValBool, b: b} }
func Int64Val(i int64) Val     { return Val{kind: ValInt64, i: i} }
func Uint64Val(u uint64) Val   { return Val{kind: ValUint64, u: u} }
func Float64Val(f float64) Val { return Val{kind: ValFloat64, f: f} }
func UUIDVal(id uuid.UUID) Val { return Val{kind: ValUUID, id: id} }

// Kind returns the variant tag.
func (v Val) Kind() ValKind { return v.kind }

// AsString unwraps a string view.
func (v Val) AsString() (string, bool) {
	if v.kind != ValString {
		return "", false
	}
	return v.str, true
}

// AsBool unwraps a boolean view.
func (v Val) AsBool() (bool, bool) {
	if v.kind != ValBool {
		return false, false
	}
	return v.b, true
}

// AsInt64 unwraps a signed integer view.
func (v Val) AsInt64() (int64, bool) {
	if v.kind != ValInt64 {
		return 0, false
	}
	return v.i, true
}

// AsUint64 unwraps an unsigned integer view.
func (v Val) AsUint64() (uint64, bool) {
	if v.kind != ValUint64 {
		return 0, false
	}
	return v.u, true
}

// AsFloat64 unwraps a float view.
func (v Val) AsFloat64() (float64, bool) {
	if v.kind != ValFloat64 {
		return 0, false
	}
	return v.f, true
}

// AsUUID unwraps a UUID view.
func (v Val) AsUUID() (uuid.UUID, bool) {
	if v.kind != ValUUID {
		return uuid.UUID{}, false
	}
	return v.id, true
}

// Getter resolves a dotted path string to a scalar view. Lookup is total: a
// missing field, an absent intermediate container, or a wrong-kind value all
// report ok=false, never an error.
type Getter interface {
	GetValue(path string) (Val, bool)
}

// IterGetter resolves a dotted path to a finite, restartable sequence of
// sub-entities. An absent underlying collection reports ok=false.
type IterGetter interface {
	GetIter(path string) (iter.Seq[Getter], bool)
}

// ValOf snapshots a dynamic value as a scalar view. Containers and nil
// report ok=false.
func ValOf(v *Value) (Val, bool) {
	if v == nil {
		return Val{}, false
	}
	switch v.kind {
	case KindString:
		return StringVal(string(v.str)), true
	case KindBool:
		return BoolVal(bool(v.b)), true
	case KindInt64:
		return Int64Val(int64(v.i)), true
	case KindUint64:
		return Uint64Val(uint64(v.u)), true
	case KindFloat64:
		return Float64Val(float64(v.f)), true
	}
	return Val{}, false
}
