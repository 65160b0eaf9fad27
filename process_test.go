package eventschema_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ingestkit/eventschema"
)

// recorder notes every hook invocation with its path.
type recorder struct {
	calls []string
	fail  map[string]error
}

func (r *recorder) note(hook string, state *eventschema.ProcessingState) error {
	r.calls = append(r.calls, fmt.Sprintf("%s(%s)", hook, state.Path()))
	return r.fail[hook+"("+state.Path()+")"]
}

func (r *recorder) ProcessValue(v *eventschema.Value, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	return r.note("value", state)
}

func (r *recorder) BeforeProcess(meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	return r.note("before", state)
}

func (r *recorder) AfterProcess(meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	return r.note("after", state)
}

func (r *recorder) ProcessString(v *eventschema.String, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	return r.note("string:"+string(*v), state)
}

func (r *recorder) ProcessInt64(v *eventschema.Int64, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	return r.note(fmt.Sprintf("int:%d", *v), state)
}

func TestDynamicDispatchFiresEachHookOnce(t *testing.T) {
	rec := &recorder{}
	a := eventschema.NewAnnotated(eventschema.StringValue("hi"))
	err := eventschema.Process[eventschema.Value](&a, rec, eventschema.Root(eventschema.StringType, nil))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	want := []string{"value()", "before()", "string:hi()", "after()"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Fatalf("hook sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayChildrenVisitedInIndexOrder(t *testing.T) {
	rec := &recorder{}
	a := eventschema.NewAnnotated(eventschema.ArrayValue(eventschema.Array[eventschema.Value]{
		eventschema.NewAnnotated(eventschema.StringValue("a")),
		eventschema.NewAnnotated(eventschema.Int64Value(7)),
	}))
	if err := eventschema.Process[eventschema.Value](&a, rec, eventschema.Root(eventschema.ArrayType, nil)); err != nil {
		t.Fatalf("process: %v", err)
	}
	want := []string{
		"value()", "before()",
		"value(0)", "before(0)", "string:a(0)", "after(0)",
		"value(1)", "before(1)", "int:7(1)", "after(1)",
		"after()",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Fatalf("traversal mismatch (-want +got):\n%s", diff)
	}
}

func TestMapChildrenVisitedInInsertionOrder(t *testing.T) {
	obj := eventschema.NewMap[eventschema.Value]()
	obj.Set("z", eventschema.NewAnnotated(eventschema.Int64Value(1)))
	obj.Set("a", eventschema.NewAnnotated(eventschema.Int64Value(2)))
	obj.Set("m", eventschema.NewAnnotated(eventschema.Int64Value(3)))

	rec := &recorder{}
	a := eventschema.NewAnnotated(eventschema.ObjectValue(obj))
	if err := eventschema.Process[eventschema.Value](&a, rec, eventschema.Root(eventschema.ObjectType, nil)); err != nil {
		t.Fatalf("process: %v", err)
	}
	var keys []string
	for _, c := range rec.calls {
		if len(c) > 4 && c[:4] == "int:" {
			keys = append(keys, c)
		}
	}
	want := []string{"int:1(z)", "int:2(a)", "int:3(m)"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("insertion order not honored (-want +got):\n%s", diff)
	}
}

func TestShortCircuitStopsSiblings(t *testing.T) {
	rec := &recorder{fail: map[string]error{
		"string:bad(1)": eventschema.Invalid("boom"),
	}}
	a := eventschema.NewAnnotated(eventschema.ArrayValue(eventschema.Array[eventschema.Value]{
		eventschema.NewAnnotated(eventschema.StringValue("a")),
		eventschema.NewAnnotated(eventschema.StringValue("bad")),
		eventschema.NewAnnotated(eventschema.StringValue("c")),
	}))
	err := eventschema.Process[eventschema.Value](&a, rec, eventschema.Root(eventschema.ArrayType, nil))
	action, ok := eventschema.AsAction(err)
	if !ok || !action.IsInvalid() {
		t.Fatalf("expected invalid action, got %v", err)
	}
	if got := action.Reason(); got != "boom" {
		t.Fatalf("reason = %q, want boom", got)
	}
	for _, c := range rec.calls {
		if c == "string:c(2)" {
			t.Fatalf("sibling after the aborting hook was visited: %v", rec.calls)
		}
	}
}

// objectCounter overrides the object hook and recurses on its own; the hook
// must fire exactly once per object along the way.
type objectCounter struct {
	seen []string
}

func (o *objectCounter) ProcessObject(v *eventschema.Map[eventschema.Value], meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	o.seen = append(o.seen, state.Path())
	return eventschema.ProcessMapChildren[eventschema.Value](v, o, state)
}

func TestContainerHookNotReenteredByChildRecursion(t *testing.T) {
	inner := eventschema.NewMap[eventschema.Value]()
	inner.Set("y", eventschema.NewAnnotated(eventschema.Int64Value(1)))
	outer := eventschema.NewMap[eventschema.Value]()
	outer.Set("x", eventschema.NewAnnotated(eventschema.ObjectValue(inner)))

	counter := &objectCounter{}
	a := eventschema.NewAnnotated(eventschema.ObjectValue(outer))
	if err := eventschema.Process[eventschema.Value](&a, counter, eventschema.Root(eventschema.ObjectType, nil)); err != nil {
		t.Fatalf("process: %v", err)
	}
	want := []string{"", "x"}
	if diff := cmp.Diff(want, counter.seen); diff != "" {
		t.Fatalf("object hook entries mismatch (-want +got):\n%s", diff)
	}
}

// attrsProbe captures the policy in effect at each visited leaf.
type attrsProbe struct {
	additional map[string]bool
}

func (a *attrsProbe) ProcessString(v *eventschema.String, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	a.additional[state.Path()] = state.Attrs().AdditionalProperties
	return nil
}

func TestProcessOtherAppliesAdditionalPropertiesPolicy(t *testing.T) {
	bag := eventschema.NewMap[eventschema.Value]()
	bag.Set("custom", eventschema.NewAnnotated(eventschema.StringValue("v")))

	probe := &attrsProbe{additional: map[string]bool{}}
	if err := eventschema.ProcessOther(bag, probe, eventschema.Root(eventschema.ObjectType, nil)); err != nil {
		t.Fatalf("process other: %v", err)
	}
	if !probe.additional["custom"] {
		t.Fatalf("bag entry did not carry the additional-properties policy")
	}
}

func TestValueTypesReflectRuntimeKind(t *testing.T) {
	cases := []struct {
		val  eventschema.Value
		want eventschema.ValueTypeSet
	}{
		{eventschema.StringValue("s"), eventschema.StringType},
		{eventschema.BoolValue(true), eventschema.BooleanType},
		{eventschema.Int64Value(-1), eventschema.NumberType},
		{eventschema.Uint64Value(1), eventschema.NumberType},
		{eventschema.Float64Value(0.5), eventschema.NumberType},
		{eventschema.ArrayValue(nil), eventschema.ArrayType},
		{eventschema.ObjectValue(eventschema.NewMap[eventschema.Value]()), eventschema.ObjectType},
	}
	for _, c := range cases {
		v := c.val
		if got := v.ValueTypes(); got != c.want {
			t.Fatalf("kind %v: value types = %v, want %v", v.Kind(), got, c.want)
		}
	}
}
