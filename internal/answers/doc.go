// Package answers decodes the template answers the finalizer acts on. Raw
// values arrive as a flat key/value map (strings or booleans, as written by
// the template engine); they are validated against an embedded JSON Schema
// and decoded once into the typed Answers struct.
package answers
