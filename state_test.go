package eventschema_test

import (
	"testing"

	"github.com/ingestkit/eventschema"
)

func TestStatePathBuilding(t *testing.T) {
	root := eventschema.Root(eventschema.ObjectType, nil)
	if got := root.Path(); got != "" {
		t.Fatalf("root path = %q, want empty", got)
	}

	attrs := &eventschema.FieldAttrs{MaxDepth: 3}
	user := root.EnterStatic("user", attrs, eventschema.ObjectType)
	idx := user.EnterIndex(2, nil, eventschema.ObjectType)
	key := idx.EnterKey("k", nil, eventschema.StringType)
	if got := key.Path(); got != "user.2.k" {
		t.Fatalf("path = %q, want user.2.k", got)
	}
	if got := key.Depth(); got != 3 {
		t.Fatalf("depth = %d, want 3", got)
	}
}

func TestStateEnterNothingAddsNoSegment(t *testing.T) {
	root := eventschema.Root(eventschema.ObjectType, nil)
	field := root.EnterStatic("extra", nil, eventschema.ObjectType)
	inner := field.EnterNothing(nil)
	if got := inner.Path(); got != "extra" {
		t.Fatalf("path after EnterNothing = %q, want extra", got)
	}
	if got := inner.Depth(); got != field.Depth() {
		t.Fatalf("depth changed across EnterNothing: %d != %d", got, field.Depth())
	}
	child := inner.EnterIndex(0, nil, eventschema.StringType)
	if got := child.Path(); got != "extra.0" {
		t.Fatalf("child path = %q, want extra.0", got)
	}
}

func TestStateAttrsInheritance(t *testing.T) {
	attrs := &eventschema.FieldAttrs{MaxChars: 10}
	root := eventschema.Root(eventschema.ObjectType, nil)
	field := root.EnterStatic("msg", attrs, eventschema.StringType)
	deep := field.EnterKey("a", nil, eventschema.StringType).EnterIndex(0, nil, eventschema.StringType)

	if deep.Attrs() != attrs {
		t.Fatalf("attrs not inherited down the chain")
	}
	if got := deep.AttrsDepth(); got != field.Depth() {
		t.Fatalf("attrs depth = %d, want %d", got, field.Depth())
	}

	override := &eventschema.FieldAttrs{MaxChars: 5}
	redecl := deep.EnterStatic("inner", override, eventschema.StringType)
	if redecl.Attrs() != override {
		t.Fatalf("override not applied")
	}
	if got := redecl.AttrsDepth(); got != redecl.Depth() {
		t.Fatalf("override attrs depth = %d, want %d", got, redecl.Depth())
	}
}

func TestStateDefaultAttrsNeverNil(t *testing.T) {
	root := eventschema.Root(0, nil)
	if root.Attrs() == nil {
		t.Fatalf("Attrs returned nil")
	}
	if root.Attrs() != eventschema.DefaultAttrs() {
		t.Fatalf("unset attrs should resolve to the default policy")
	}
}

func TestStateKeySegment(t *testing.T) {
	root := eventschema.Root(eventschema.ObjectType, nil)
	if _, ok := root.EnterIndex(1, nil, 0).KeySegment(); ok {
		t.Fatalf("index segment reported as textual")
	}
	seg, ok := root.EnterKey("password", nil, 0).KeySegment()
	if !ok || seg != "password" {
		t.Fatalf("key segment = %q/%v, want password/true", seg, ok)
	}
	seg, ok = root.EnterStatic("user", nil, 0).KeySegment()
	if !ok || seg != "user" {
		t.Fatalf("static segment = %q/%v, want user/true", seg, ok)
	}
}
