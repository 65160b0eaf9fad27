// Package eventschema provides:
//
// - Annotated values: a value paired with a metadata side channel (errors and
//   soft-deleted originals) where absence is a regular, inspectable state
// - A recursive processing engine that walks deep, heterogeneous telemetry
//   trees with path tracking, inherited field policy, and expected value types
// - Processing actions (hard delete, soft delete, invalid) that short-circuit
//   a traversal and are folded back by the driver via Annotated.Apply
// - The Getter contract: total dotted-path lookup of scalars and sub-entity
//   iterators, used by rule matching and sampling
//
// Design policy:
// - Keep the engine and the annotated-value primitives in the root package;
//   place the schema entity catalog under protocol/ and processing passes
//   under pii/ and normalize/.
// - Processor hooks are optional interfaces discovered at dispatch time; a
//   hook that is not implemented defaults to recursing into children.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	event, err := protocol.EventFromJSON(data)
//	if err := event.Apply(protocol.ProcessEvent(&event, pass)); err != nil {
//	    // the input was rejected as a whole
//	}
//
//	val, ok := event.Value.GetValue("event.user.id")
package eventschema
