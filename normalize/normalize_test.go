package normalize_test

import (
	"strings"
	"testing"

	"github.com/ingestkit/eventschema"
	"github.com/ingestkit/eventschema/normalize"
	"github.com/ingestkit/eventschema/protocol"
)

func TestTrimmerTruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("x", 100)
	a, err := protocol.EventFromJSON([]byte(`{"logger": "` + long + `"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if err := a.Apply(protocol.ProcessEvent(&a, normalize.NewTrimmer())); err != nil {
		t.Fatalf("trim: %v", err)
	}

	logger := a.Value.Logger
	got := string(*logger.Value)
	if len([]rune(got)) != 64 {
		t.Fatalf("truncated length = %d, want 64", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncation marker missing: %q", got)
	}
	if !logger.Meta.HasErrors() || logger.Meta.Errors()[0].Kind != eventschema.ErrValueTooLong {
		t.Fatalf("truncation not recorded: %v", logger.Meta.Errors())
	}
	if orig, ok := logger.Meta.Original(); !ok || orig != 100 {
		t.Fatalf("original length = %v/%v, want 100", orig, ok)
	}
}

func TestTrimmerAllowsSlack(t *testing.T) {
	// transaction allows 200 chars plus 20 of slack before enforcement.
	val := strings.Repeat("y", 210)
	a, err := protocol.EventFromJSON([]byte(`{"transaction": "` + val + `"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := protocol.ProcessEvent(&a, normalize.NewTrimmer()); err != nil {
		t.Fatalf("trim: %v", err)
	}
	if got := string(*a.Value.Transaction.Value); got != val {
		t.Fatalf("value inside the allowance was truncated")
	}
}

func TestTrimmerTrimsWhitespace(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{"transaction": "  GET /pets  "}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := protocol.ProcessEvent(&a, normalize.NewTrimmer()); err != nil {
		t.Fatalf("trim: %v", err)
	}
	if got := string(*a.Value.Transaction.Value); got != "GET /pets" {
		t.Fatalf("whitespace kept: %q", got)
	}
}

func buildNested(depth int) eventschema.Value {
	v := eventschema.StringValue("leaf")
	for i := 0; i < depth; i++ {
		m := eventschema.NewMap[eventschema.Value]()
		m.Set("d", eventschema.NewAnnotated(v))
		v = eventschema.ObjectValue(m)
	}
	return v
}

func TestTrimmerEnforcesMaxDepth(t *testing.T) {
	attrs := &eventschema.FieldAttrs{MaxDepth: 2}
	a := eventschema.NewAnnotated(buildNested(5))

	err := eventschema.Process[eventschema.Value](&a, normalize.NewTrimmer(), eventschema.Root(eventschema.ObjectType, attrs))
	if err != nil {
		t.Fatalf("trim: %v", err)
	}

	// Depth 0 and 1 survive; the object at depth 2 is emptied.
	obj, _ := a.Value.AsObject()
	inner, _ := obj.Get("d").Value.AsObject()
	cut := inner.Get("d")
	cutObj, ok := cut.Value.AsObject()
	if !ok {
		t.Fatalf("node at the limit changed kind: %v", cut.Value.Kind())
	}
	if cutObj.Len() != 0 {
		t.Fatalf("over-deep subtree kept %d entries", cutObj.Len())
	}
	if !cut.Meta.HasErrors() {
		t.Fatalf("depth enforcement not recorded")
	}
}

func TestTrimmerEnforcesMaxBytes(t *testing.T) {
	m := eventschema.NewMap[eventschema.Value]()
	m.Set("blob", eventschema.NewAnnotated(eventschema.StringValue(strings.Repeat("z", 64))))
	a := eventschema.NewAnnotated(eventschema.ObjectValue(m))

	attrs := &eventschema.FieldAttrs{MaxBytes: 16}
	err := eventschema.Process[eventschema.Value](&a, normalize.NewTrimmer(), eventschema.Root(eventschema.ObjectType, attrs))
	if err != nil {
		t.Fatalf("trim: %v", err)
	}

	obj, _ := a.Value.AsObject()
	if obj.Len() != 0 {
		t.Fatalf("oversized object kept %d entries", obj.Len())
	}
	if !a.Meta.HasErrors() {
		t.Fatalf("size enforcement not recorded")
	}
}

func TestTrimmerLeavesSmallValuesAlone(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{"logger": "app", "extra": {"k": "v"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := protocol.ProcessEvent(&a, normalize.NewTrimmer()); err != nil {
		t.Fatalf("trim: %v", err)
	}
	if got := string(*a.Value.Logger.Value); got != "app" {
		t.Fatalf("logger changed: %q", got)
	}
	if v, _ := a.Value.ExtraAt("k"); v == nil {
		t.Fatalf("extra entry lost")
	}
}
