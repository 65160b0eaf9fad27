// Package pii provides the scrubbing pass: a processor that masks sensitive
// content in place, driven by the field-policy PII markers and a YAML-loaded
// key denylist. Redaction is recoverable per node: the original content is
// snapshotted into the value's metadata next to a "removed" error.
package pii

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ingestkit/eventschema"
)

// DefaultMask replaces scrubbed content when the config names no other.
const DefaultMask = "[Filtered]"

// Config controls the scrubbing pass.
type Config struct {
	// Mask is the replacement text for scrubbed values.
	Mask string `yaml:"mask"`
	// Keys are case-insensitive substrings; a path segment matching one
	// marks its subtree sensitive regardless of field policy.
	Keys []string `yaml:"keys"`
	// ScrubPii honors the PII markers of the field policy.
	ScrubPii bool `yaml:"scrub_pii"`
	// ScrubMaybe extends ScrubPii to fields only marked as possibly
	// sensitive.
	ScrubMaybe bool `yaml:"scrub_maybe"`
}

// ParseConfig reads a YAML scrubbing config and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{ScrubPii: true}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Mask == "" {
		cfg.Mask = DefaultMask
	}
	return cfg, nil
}

// Scrubber masks sensitive values during a traversal. It never returns an
// aborting action: redaction mutates nodes in place so one pass covers the
// whole tree.
type Scrubber struct {
	cfg *Config
}

// NewScrubber builds a scrubbing pass over cfg. A nil cfg scrubs marked
// fields with the default mask.
func NewScrubber(cfg *Config) *Scrubber {
	if cfg == nil {
		cfg = &Config{Mask: DefaultMask, ScrubPii: true}
	}
	if cfg.Mask == "" {
		cfg.Mask = DefaultMask
	}
	return &Scrubber{cfg: cfg}
}

// sensitive reports whether the node at state must be scrubbed: either the
// field policy marks it and policy scrubbing is on, or some path segment up
// to the root matches the key denylist.
func (s *Scrubber) sensitive(state *eventschema.ProcessingState) bool {
	switch state.Attrs().Pii {
	case eventschema.PiiTrue:
		if s.cfg.ScrubPii {
			return true
		}
	case eventschema.PiiMaybe:
		if s.cfg.ScrubPii && s.cfg.ScrubMaybe {
			return true
		}
	}
	if len(s.cfg.Keys) == 0 {
		return false
	}
	for st := state; st != nil; st = st.Parent() {
		seg, ok := st.KeySegment()
		if !ok {
			continue
		}
		for _, key := range s.cfg.Keys {
			if strings.Contains(strings.ToLower(seg), strings.ToLower(key)) {
				return true
			}
		}
	}
	return false
}

// ProcessString masks a sensitive string leaf, keeping the original in meta.
func (s *Scrubber) ProcessString(v *eventschema.String, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	if !s.sensitive(state) || string(*v) == s.cfg.Mask {
		return nil
	}
	meta.SetOriginal(string(*v))
	meta.AddErrorData(eventschema.ErrRemoved, map[string]any{"rule": "pii"})
	*v = eventschema.String(s.cfg.Mask)
	return nil
}

// ProcessValue masks sensitive dynamic containers whole: the subtree is
// snapshotted and replaced by the mask string, so nothing below it leaks
// through a later pass. Scalars fall through to their kind dispatch, where
// ProcessString handles the string leaves.
func (s *Scrubber) ProcessValue(v *eventschema.Value, meta *eventschema.Meta, state *eventschema.ProcessingState) error {
	switch v.Kind() {
	case eventschema.KindArray, eventschema.KindObject:
	default:
		return nil
	}
	if !s.sensitive(state) {
		return nil
	}
	if data, err := v.MarshalJSON(); err == nil {
		meta.SetOriginal(string(data))
	}
	meta.AddErrorData(eventschema.ErrRemoved, map[string]any{"rule": "pii"})
	*v = eventschema.StringValue(s.cfg.Mask)
	return nil
}
