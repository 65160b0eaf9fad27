// Package protocol provides:
//
// - The schema entity catalog of the ingestion payload: Event and the
//   entities hanging off it (Exception, User, Request, contexts, ...)
// - Per-entity processor hooks and the structural recursion rules that walk
//   an event tree with the eventschema engine
// - Dotted-path lookup on events for rule matching and sampling, including
//   prefix dispatch into open bags (tags, extra, headers, measurements) and
//   computed fields (transaction duration, release components)
//
// Design policy:
// - Field policy lives in package-level attr tables, built once and shared.
// - Entity dispatch follows one fixed template: optional hook, fall back to
//   children; AcceptChildren never re-fires the entity's own hook.
// - Wire decoding preserves object key order wherever order is meaningful.
package protocol
