// Package memory provides namespaced artifact stores and the named registry
// the FileManager uses to locate them.
//
// Stores:
//   - Store: process-local map, safe for reuse across activities.
//   - FileStore: single-JSON-file persistence for small artifact sets.
package memory
