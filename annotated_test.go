package eventschema_test

import (
	"testing"

	"github.com/ingestkit/eventschema"
)

func TestApplyHardDeleteDropsValueAndMeta(t *testing.T) {
	a := eventschema.NewAnnotated(eventschema.String("secret"))
	a.Meta.AddError(eventschema.ErrInvalidData)

	if err := a.Apply(eventschema.DeleteValueHard); err != nil {
		t.Fatalf("apply returned %v, want nil", err)
	}
	if a.Value != nil {
		t.Fatalf("value survived a hard delete")
	}
	if !a.Meta.IsEmpty() {
		t.Fatalf("meta survived a hard delete")
	}
}

func TestApplySoftDeleteKeepsOriginal(t *testing.T) {
	a := eventschema.NewAnnotated(eventschema.String("secret"))
	if err := a.Apply(eventschema.DeleteValueSoft); err != nil {
		t.Fatalf("apply returned %v, want nil", err)
	}
	if a.Value != nil {
		t.Fatalf("value survived a soft delete")
	}
	orig, ok := a.Meta.Original()
	if !ok {
		t.Fatalf("soft delete recorded no original")
	}
	if s, _ := orig.(eventschema.String); s != "secret" {
		t.Fatalf("original = %v, want secret", orig)
	}
}

func TestApplyPassesOtherErrorsThrough(t *testing.T) {
	a := eventschema.NewAnnotated(eventschema.String("x"))
	action := eventschema.Invalid("bad transaction")
	if err := a.Apply(action); err != action {
		t.Fatalf("apply swallowed the invalid action: %v", err)
	}
	if a.Value == nil {
		t.Fatalf("invalid action must not drop the value")
	}
	if err := a.Apply(nil); err != nil {
		t.Fatalf("apply(nil) = %v", err)
	}
}

func TestMetaOriginalFirstWins(t *testing.T) {
	var m eventschema.Meta
	m.SetOriginal("first")
	m.SetOriginal("second")
	orig, ok := m.Original()
	if !ok || orig != "first" {
		t.Fatalf("original = %v/%v, want first/true", orig, ok)
	}
}

func TestMetaErrorsOrdered(t *testing.T) {
	var m eventschema.Meta
	m.AddError(eventschema.ErrValueTooLong)
	m.AddErrorData(eventschema.ErrInvalidData, map[string]any{"reason": "x"})
	errs := m.Errors()
	if len(errs) != 2 {
		t.Fatalf("len(errors) = %d, want 2", len(errs))
	}
	if errs[0].Kind != eventschema.ErrValueTooLong || errs[1].Kind != eventschema.ErrInvalidData {
		t.Fatalf("error order not preserved: %v", errs)
	}
	if errs[1].Data["reason"] != "x" {
		t.Fatalf("error data lost: %v", errs[1])
	}
	if !m.HasErrors() {
		t.Fatalf("HasErrors = false")
	}
}
