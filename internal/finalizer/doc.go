// Package finalizer applies the post-generation steps to a freshly
// instantiated project: it removes files the answers opt out of, links the
// documentation placeholders to their canonical files and writes the
// optional fixed-content config files.
//
// Work is split in two: Plan turns typed answers and a Layout into an ordered
// list of Actions, and a Finalizer applies (or verifies) them. Removal of a
// missing path is fatal; linking and writing check before acting so the
// finalizer can be run again on the same tree.
package finalizer
