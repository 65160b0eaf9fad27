package protocol_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ingestkit/eventschema"
	"github.com/ingestkit/eventschema/protocol"
)

// walker records string-level hook invocations with their paths.
type walker struct {
	strings []string
	headers []string
}

func (w *walker) ProcessString(v *eventschema.String, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	w.strings = append(w.strings, state.Path()+"="+string(*v))
	return nil
}

func (w *walker) ProcessHeaderName(h *protocol.HeaderName, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	w.headers = append(w.headers, state.Path()+"="+h.String())
	return nil
}

func TestTraversalPaths(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{
		"transaction": "GET /pets",
		"user": {"id": "u-1", "geo": {"city": "Vienna"}},
		"request": {"headers": {"User-Agent": "curl/8.0"}},
		"exception": {"values": [{"type": "ValueError"}]},
		"tags": {"env": "prod"},
		"extra": {"nested": {"deep": "x"}},
		"other_bag": "kept"
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	w := &walker{}
	if err := a.Apply(protocol.ProcessEvent(&a, w)); err != nil {
		t.Fatalf("process: %v", err)
	}

	want := []string{
		"transaction=GET /pets",
		"user.id=u-1",
		"user.geo.city=Vienna",
		"request.headers.0.0=User-Agent",
		"request.headers.0.1=curl/8.0",
		"exception.values.0.type=ValueError",
		"tags.0.0=env",
		"tags.0.1=prod",
		"extra.nested.deep=x",
		"other_bag=kept",
	}
	if diff := cmp.Diff(want, w.strings); diff != "" {
		t.Fatalf("visited strings (-want +got):\n%s", diff)
	}
}

func TestHeaderNameDoubleDispatch(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{
		"request": {"headers": {"Accept": "text/html"}}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	w := &walker{}
	if err := protocol.ProcessEvent(&a, w); err != nil {
		t.Fatalf("process: %v", err)
	}

	wantHeaders := []string{"request.headers.0.0=Accept"}
	if diff := cmp.Diff(wantHeaders, w.headers); diff != "" {
		t.Fatalf("header hook (-want +got):\n%s", diff)
	}
	// The wrapped string dispatch still runs exactly once for the name.
	wantStrings := []string{
		"request.headers.0.0=Accept",
		"request.headers.0.1=text/html",
	}
	if diff := cmp.Diff(wantStrings, w.strings); diff != "" {
		t.Fatalf("string hook (-want +got):\n%s", diff)
	}
}

// invalidator rejects the event when it sees a marker value.
type invalidator struct{}

func (invalidator) ProcessString(v *eventschema.String, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	if string(*v) == "reject-me" {
		return eventschema.Invalid("marker found")
	}
	return nil
}

func TestDriverFoldsInvalidAction(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{"transaction": "reject-me"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	err = a.Apply(protocol.ProcessEvent(&a, invalidator{}))
	action, ok := eventschema.AsAction(err)
	if !ok || !action.IsInvalid() || action.Reason() != "marker found" {
		t.Fatalf("driver got %v, want invalid(marker found)", err)
	}
	if a.Value == nil {
		t.Fatalf("invalid action must leave the tree intact")
	}
}

// fieldPolicyProbe records the policy seen at selected paths.
type fieldPolicyProbe struct {
	pii map[string]eventschema.Pii
}

func (f *fieldPolicyProbe) ProcessString(v *eventschema.String, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	f.pii[state.Path()] = state.Attrs().Pii
	return nil
}

func TestFieldPolicyInheritedIntoChildren(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{
		"user": {"email": "jane@example.com", "segment": "b"},
		"logger": "app"
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	probe := &fieldPolicyProbe{pii: map[string]eventschema.Pii{}}
	if err := protocol.ProcessEvent(&a, probe); err != nil {
		t.Fatalf("process: %v", err)
	}

	if probe.pii["user.email"] != eventschema.PiiTrue {
		t.Fatalf("email policy = %v, want PiiTrue", probe.pii["user.email"])
	}
	// segment declares nothing and inherits the user entity's policy.
	if probe.pii["user.segment"] != eventschema.PiiTrue {
		t.Fatalf("segment policy = %v, want inherited PiiTrue", probe.pii["user.segment"])
	}
	if probe.pii["logger"] != eventschema.PiiFalse {
		t.Fatalf("logger policy = %v, want PiiFalse", probe.pii["logger"])
	}
}
