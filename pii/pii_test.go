package pii_test

import (
	"testing"

	"github.com/ingestkit/eventschema"
	"github.com/ingestkit/eventschema/pii"
	"github.com/ingestkit/eventschema/protocol"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := pii.ParseConfig([]byte("keys:\n  - password\n  - token\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Mask != pii.DefaultMask {
		t.Fatalf("mask default = %q", cfg.Mask)
	}
	if len(cfg.Keys) != 2 || cfg.Keys[0] != "password" {
		t.Fatalf("keys = %v", cfg.Keys)
	}
	if !cfg.ScrubPii {
		t.Fatalf("ScrubPii default should stay on")
	}

	cfg, err = pii.ParseConfig([]byte("mask: '[gone]'\nscrub_pii: false\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Mask != "[gone]" || cfg.ScrubPii {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	if _, err := pii.ParseConfig([]byte("keys: {bad")); err == nil {
		t.Fatalf("malformed yaml accepted")
	}
}

func TestScrubberMasksMarkedFields(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{
		"user": {"email": "jane@example.com"},
		"tags": {"env": "prod"},
		"logger": "app.http"
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	s := pii.NewScrubber(nil)
	if err := a.Apply(protocol.ProcessEvent(&a, s)); err != nil {
		t.Fatalf("scrub: %v", err)
	}

	email := a.Value.User.Value.Email
	if got := string(*email.Value); got != pii.DefaultMask {
		t.Fatalf("email = %q, want masked", got)
	}
	orig, ok := email.Meta.Original()
	if !ok || orig != "jane@example.com" {
		t.Fatalf("original not kept: %v/%v", orig, ok)
	}
	if !email.Meta.HasErrors() || email.Meta.Errors()[0].Kind != eventschema.ErrRemoved {
		t.Fatalf("redaction not recorded: %v", email.Meta.Errors())
	}

	// Unmarked fields pass through untouched.
	if v, _ := a.Value.TagValue("env"); v != "prod" {
		t.Fatalf("tag scrubbed: %q", v)
	}
	if got, _ := a.Value.GetValue("event.logger"); func() string { s, _ := got.AsString(); return s }() != "app.http" {
		t.Fatalf("logger scrubbed")
	}
}

func TestScrubberKeyDenylist(t *testing.T) {
	a, err := protocol.EventFromJSON([]byte(`{
		"extra": {
			"password": "hunter2",
			"api_token": {"id": "t1", "secret": "s"},
			"color": "green"
		}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	cfg, err := pii.ParseConfig([]byte("keys: [password, token]\n"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	s := pii.NewScrubber(cfg)
	if err := a.Apply(protocol.ProcessEvent(&a, s)); err != nil {
		t.Fatalf("scrub: %v", err)
	}

	extra := *a.Value.Extra.Value
	pw := extra.Get("password")
	if got, _ := pw.Value.AsString(); got != pii.DefaultMask {
		t.Fatalf("password = %q, want masked", got)
	}
	if orig, ok := pw.Meta.Original(); !ok || orig != "hunter2" {
		t.Fatalf("password original lost")
	}

	// Containers under a denylisted key are replaced whole.
	tok := extra.Get("api_token")
	if got, _ := tok.Value.AsString(); got != pii.DefaultMask {
		t.Fatalf("token subtree = %v, want masked", tok.Value.Kind())
	}
	if orig, ok := tok.Meta.Original(); !ok || orig == "" {
		t.Fatalf("token snapshot lost")
	}

	if got, _ := extra.Get("color").Value.AsString(); got != "green" {
		t.Fatalf("unrelated key scrubbed: %q", got)
	}
}

func TestScrubberMaybeMarking(t *testing.T) {
	payload := `{"extra": {"note": "free text"}}`

	a, _ := protocol.EventFromJSON([]byte(payload))
	s := pii.NewScrubber(&pii.Config{ScrubPii: true})
	if err := protocol.ProcessEvent(&a, s); err != nil {
		t.Fatalf("scrub: %v", err)
	}
	if got, _ := (*a.Value.Extra.Value).Get("note").Value.AsString(); got != "free text" {
		t.Fatalf("maybe-marked field scrubbed without opt-in: %q", got)
	}

	a, _ = protocol.EventFromJSON([]byte(payload))
	s = pii.NewScrubber(&pii.Config{ScrubPii: true, ScrubMaybe: true})
	if err := protocol.ProcessEvent(&a, s); err != nil {
		t.Fatalf("scrub: %v", err)
	}
	if got, _ := (*a.Value.Extra.Value).Get("note").Value.AsString(); got != pii.DefaultMask {
		t.Fatalf("maybe-marked field kept despite opt-in: %q", got)
	}
}
