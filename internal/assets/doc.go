// Package assets holds the fixed-content files the finalizer can add to a
// generated project (the editor debug configuration and the package-manager
// configuration). They are embedded at build time and written byte-for-byte.
package assets
