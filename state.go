package eventschema

import (
	"strconv"
	"strings"
)

type segmentKind uint8

const (
	segNone segmentKind = iota
	segStatic
	segKey
	segIndex
)

// ProcessingState is the immutable traversal context of one node: its path
// segment, the field policy in effect, the value types expected at this
// position, and a link to the parent state. Derivations produce a new child
// state and never mutate the parent; children do not outlive the recursive
// call that created them.
type ProcessingState struct {
	parent     *ProcessingState
	segKind    segmentKind
	name       string
	index      int
	attrs      *FieldAttrs
	attrsDepth int
	types      ValueTypeSet
	depth      int
}

// Root constructs the state for the root of a traversal.
func Root(types ValueTypeSet, attrs *FieldAttrs) *ProcessingState {
	return &ProcessingState{attrs: attrs, types: types}
}

func (s *ProcessingState) enter(child ProcessingState, attrs *FieldAttrs) *ProcessingState {
	child.parent = s
	if attrs != nil {
		child.attrs = attrs
		child.attrsDepth = child.depth
	} else {
		child.attrs = s.attrs
		child.attrsDepth = s.attrsDepth
	}
	return &child
}

// EnterStatic derives the state for a named struct field. A nil attrs
// inherits the policy in effect at s.
func (s *ProcessingState) EnterStatic(name string, attrs *FieldAttrs, types ValueTypeSet) *ProcessingState {
	return s.enter(ProcessingState{segKind: segStatic, name: name, types: types, depth: s.depth + 1}, attrs)
}

// EnterKey derives the state for a map entry keyed by an arbitrary string.
func (s *ProcessingState) EnterKey(key string, attrs *FieldAttrs, types ValueTypeSet) *ProcessingState {
	return s.enter(ProcessingState{segKind: segKey, name: key, types: types, depth: s.depth + 1}, attrs)
}

// EnterIndex derives the state for a sequence element or tuple slot.
func (s *ProcessingState) EnterIndex(i int, attrs *FieldAttrs, types ValueTypeSet) *ProcessingState {
	return s.enter(ProcessingState{segKind: segIndex, index: i, types: types, depth: s.depth + 1}, attrs)
}

// EnterNothing derives a state that introduces no new path segment. It is
// used when unwrapping a dynamic value: the variant being unwrapped does not
// consume a path component, so children of a wrapped array stay numbered
// relative to the array's own position. Depth is unchanged for the same
// reason.
func (s *ProcessingState) EnterNothing(attrs *FieldAttrs) *ProcessingState {
	return s.enter(ProcessingState{segKind: segNone, types: s.types, depth: s.depth}, attrs)
}

// Parent returns the state this one was derived from, or nil at the root.
func (s *ProcessingState) Parent() *ProcessingState { return s.parent }

// Attrs returns the field policy in effect, never nil.
func (s *ProcessingState) Attrs() *FieldAttrs {
	if s.attrs == nil {
		return defaultFieldAttrs
	}
	return s.attrs
}

// ValueTypes returns the value types expected at this position.
func (s *ProcessingState) ValueTypes() ValueTypeSet { return s.types }

// Depth returns the nesting depth: the number of path components above the
// root.
func (s *ProcessingState) Depth() int { return s.depth }

// AttrsDepth returns the depth at which the current field policy was
// attached. Depth-limit enforcement measures nesting relative to it.
func (s *ProcessingState) AttrsDepth() int { return s.attrsDepth }

// KeySegment returns the textual segment of this state when it is a static
// field name or a map key.
func (s *ProcessingState) KeySegment() (string, bool) {
	if s.segKind == segStatic || s.segKind == segKey {
		return s.name, true
	}
	return "", false
}

// Path materializes the full dotted path of this state. It is computed by
// walking the parent chain only when requested, never eagerly during descent.
func (s *ProcessingState) Path() string {
	n := 0
	for c := s; c != nil; c = c.parent {
		if c.segKind != segNone {
			n++
		}
	}
	if n == 0 {
		return ""
	}
	segs := make([]string, n)
	for c := s; c != nil; c = c.parent {
		switch c.segKind {
		case segNone:
			continue
		case segIndex:
			n--
			segs[n] = strconv.Itoa(c.index)
		default:
			n--
			segs[n] = c.name
		}
	}
	return strings.Join(segs, ".")
}

func (s *ProcessingState) String() string { return s.Path() }
