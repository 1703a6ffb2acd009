// Package artifact defines the tagged result values produced by tool
// activities.
//
// Kinds:
//   - Text: textual payload, optionally named.
//   - Error: human-readable failure message.
//   - Info: short status confirmation.
//   - List: ordered collection of nested artifacts.
//
// Artifacts are immutable values; compare them with ==, or reflect.DeepEqual
// for lists. The JSON form is a tagged object carrying a "type" field.
package artifact
