package eventschema_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/ingestkit/eventschema"
)

func TestValueDecodePreservesKeyOrder(t *testing.T) {
	payload := `{"z":1,"a":2,"m":{"second":true,"first":false}}`
	var v eventschema.Value
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	obj, ok := v.AsObject()
	if !ok {
		t.Fatalf("kind = %v, want object", v.Kind())
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, obj.Keys()); diff != "" {
		t.Fatalf("key order (-want +got):\n%s", diff)
	}
	nested, ok := obj.Get("m").Value.AsObject()
	if !ok {
		t.Fatalf("nested entry lost its object kind")
	}
	if diff := cmp.Diff([]string{"second", "first"}, nested.Keys()); diff != "" {
		t.Fatalf("nested key order (-want +got):\n%s", diff)
	}
}

func TestValueDecodeNumberKinds(t *testing.T) {
	payload := `{"i":-3,"u":18446744073709551615,"f":1.25,"e":2e3}`
	var v eventschema.Value
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	obj, _ := v.AsObject()

	if n, ok := obj.Get("i").Value.AsInt64(); !ok || n != -3 {
		t.Fatalf("i = %v/%v, want -3 int64", n, ok)
	}
	if n, ok := obj.Get("u").Value.AsUint64(); !ok || n != 18446744073709551615 {
		t.Fatalf("u = %v/%v, want max uint64", n, ok)
	}
	if n, ok := obj.Get("f").Value.AsFloat64(); !ok || n != 1.25 {
		t.Fatalf("f = %v/%v, want 1.25", n, ok)
	}
	if n, ok := obj.Get("e").Value.AsFloat64(); !ok || n != 2000 {
		t.Fatalf("e = %v/%v, want 2000 float", n, ok)
	}
}

func TestValueRoundTripKeepsOrder(t *testing.T) {
	payload := `{"z":[1,null,"s"],"a":{"y":true,"x":false}}`
	var v eventschema.Value
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(&v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != payload {
		t.Fatalf("round trip = %s, want %s", out, payload)
	}
}

func TestAnnotatedNullDecodesToAbsent(t *testing.T) {
	var a eventschema.Annotated[eventschema.String]
	if err := json.Unmarshal([]byte(`null`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Value != nil {
		t.Fatalf("null decoded to a present value")
	}
	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("absent value marshaled to %s", out)
	}
}

func TestMapSetDeleteKeepsOrder(t *testing.T) {
	m := eventschema.NewMap[eventschema.String]()
	m.Set("a", eventschema.NewAnnotated(eventschema.String("1")))
	m.Set("b", eventschema.NewAnnotated(eventschema.String("2")))
	m.Set("c", eventschema.NewAnnotated(eventschema.String("3")))
	m.Set("b", eventschema.NewAnnotated(eventschema.String("2b")))
	m.Delete("a")

	if diff := cmp.Diff([]string{"b", "c"}, m.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if got := string(*m.Get("b").Value); got != "2b" {
		t.Fatalf("overwrite lost: %q", got)
	}
	if m.Len() != 2 || !m.Contains("c") || m.Contains("a") {
		t.Fatalf("map bookkeeping off: len=%d", m.Len())
	}
}
