package eventschema

import "strings"

// ValueTypeSet is a bitset of the runtime kinds a node's value may present
// as. The zero value is the unconstrained sentinel: no expectation recorded.
//
// Concrete typed fields always declare a single-element set; only untyped
// dynamic values produce multi-kind or content-derived sets, and only
// transiently to route dispatch.
type ValueTypeSet uint8

const (
	StringType ValueTypeSet = 1 << iota
	BooleanType
	NumberType
	ArrayType
	ObjectType
)

// Contains reports whether every kind in o is present in s.
func (s ValueTypeSet) Contains(o ValueTypeSet) bool { return s&o == o && o != 0 }

// With returns the union of s and o.
func (s ValueTypeSet) With(o ValueTypeSet) ValueTypeSet { return s | o }

// IsEmpty reports whether the set carries no expectation.
func (s ValueTypeSet) IsEmpty() bool { return s == 0 }

func (s ValueTypeSet) String() string {
	if s == 0 {
		return "any"
	}
	names := [...]struct {
		t ValueTypeSet
		n string
	}{
		{StringType, "string"},
		{BooleanType, "boolean"},
		{NumberType, "number"},
		{ArrayType, "array"},
		{ObjectType, "object"},
	}
	parts := make([]string, 0, len(names))
	for _, e := range names {
		if s&e.t != 0 {
			parts = append(parts, e.n)
		}
	}
	return strings.Join(parts, "|")
}
