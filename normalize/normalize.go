// Package normalize provides the trimming pass: enforcement of the size and
// nesting limits declared by the field policy. Oversized strings are
// truncated, over-deep or oversized subtrees are emptied, and whitespace is
// trimmed where the policy asks for it. Every enforcement records an error
// into the node's metadata so nothing is dropped silently.
package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/ingestkit/eventschema"
)

// Trimmer enforces field-policy limits in place. It never returns an
// aborting action: one pass covers the whole tree.
type Trimmer struct{}

// NewTrimmer builds a trimming pass.
func NewTrimmer() *Trimmer {
	return &Trimmer{}
}

// ProcessString trims whitespace when the policy asks for it and truncates
// values above the character limit, with the allowance as slack.
func (t *Trimmer) ProcessString(v *eventschema.String, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	attrs := state.Attrs()
	if attrs.TrimWhitespace {
		*v = eventschema.String(strings.TrimSpace(string(*v)))
	}
	if attrs.MaxChars == 0 {
		return nil
	}
	s := string(*v)
	n := utf8.RuneCountInString(s)
	if n <= attrs.MaxChars+attrs.MaxCharsAllowance {
		return nil
	}
	runes := []rune(s)
	if attrs.MaxChars > 3 {
		*v = eventschema.String(string(runes[:attrs.MaxChars-3]) + "...")
	} else {
		*v = eventschema.String(string(runes[:attrs.MaxChars]))
	}
	meta.SetOriginal(n)
	meta.AddErrorData(eventschema.ErrValueTooLong, map[string]any{
		"max_chars": attrs.MaxChars,
	})
	return nil
}

// depthExceeded measures nesting relative to where the active policy was
// attached, so a limit constrains the subtree it was declared on rather than
// the absolute position in the event.
func depthExceeded(state *eventschema.ProcessingState) bool {
	attrs := state.Attrs()
	return attrs.MaxDepth > 0 && state.Depth()-state.AttrsDepth() >= attrs.MaxDepth
}

func sizeExceeded(state *eventschema.ProcessingState, marshal func() ([]byte, error)) bool {
	attrs := state.Attrs()
	if attrs.MaxBytes == 0 {
		return false
	}
	data, err := marshal()
	return err == nil && len(data) > attrs.MaxBytes
}

// ProcessArray empties arrays that exceed the depth or byte limit and
// otherwise recurses normally.
func (t *Trimmer) ProcessArray(v *eventschema.Array[eventschema.Value], meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	if depthExceeded(state) || sizeExceeded(state, func() ([]byte, error) { return json.Marshal(v) }) {
		*v = (*v)[:0]
		meta.AddErrorData(eventschema.ErrInvalidData, map[string]any{"reason": "over_size_limit"})
		return nil
	}
	return eventschema.ProcessArrayChildren[eventschema.Value](v, t, state)
}

// ProcessObject empties objects that exceed the depth or byte limit and
// otherwise recurses normally.
func (t *Trimmer) ProcessObject(v *eventschema.Map[eventschema.Value], meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	if depthExceeded(state) || sizeExceeded(state, func() ([]byte, error) { return v.MarshalJSON() }) {
		for _, key := range v.Keys() {
			v.Delete(key)
		}
		meta.AddErrorData(eventschema.ErrInvalidData, map[string]any{"reason": "over_size_limit"})
		return nil
	}
	return eventschema.ProcessMapChildren[eventschema.Value](v, t, state)
}
