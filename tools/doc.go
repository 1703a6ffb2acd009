// Package tools defines activity contracts and the two built-in adapters.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - TextManager: query/summarize stored text records through an injected
//     storage driver; captures textual tool output as storage references.
//   - FileManager: load and save files under a validated work directory.
//
// Activities never return Go errors to the caller; every failure is wrapped
// in an Error artifact at the method boundary.
package tools
