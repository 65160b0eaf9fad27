package eventschema

// Pii marks how sensitive a field's content is.
type Pii int

const (
	PiiFalse Pii = iota
	PiiTrue
	PiiMaybe
)

// FieldAttrs is the per-field policy declared by the schema catalog: size and
// nesting limits, a PII sensitivity marker, legacy name aliases, and the flag
// marking an open additional-properties bag.
//
// Attr tables are process-wide immutable configuration: constructed once and
// passed by reference into traversal states. The engine reads them only to
// decide inheritance into child states; enforcement lives in processors.
type FieldAttrs struct {
	// MaxChars limits string length in characters. Zero means unlimited.
	MaxChars int
	// MaxCharsAllowance is slack above MaxChars before enforcement kicks in.
	MaxCharsAllowance int
	// MaxDepth limits nesting below the field carrying the attrs. Zero means
	// unlimited.
	MaxDepth int
	// MaxBytes limits the serialized size of the subtree. Zero means
	// unlimited.
	MaxBytes int
	// Pii marks the field's sensitivity.
	Pii Pii
	// Required marks a field that must be present after normalization.
	Required bool
	// Nonempty marks a field whose value must not be the empty string.
	Nonempty bool
	// TrimWhitespace marks a field whose value is trimmed on normalization.
	TrimWhitespace bool
	// LegacyAliases are alternative wire names accepted for this field.
	LegacyAliases []string
	// AdditionalProperties marks the open catch-all bag of an entity.
	AdditionalProperties bool
	// Retain keeps unknown content during trimming passes.
	Retain bool
}

var defaultFieldAttrs = &FieldAttrs{}

// DefaultAttrs returns the neutral field policy applied where a schema
// declares nothing.
func DefaultAttrs() *FieldAttrs { return defaultFieldAttrs }
