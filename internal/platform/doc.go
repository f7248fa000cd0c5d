// Package platform wraps the symlink primitives the finalizer needs. On Unix
// systems it uses native symlinks directly. On Windows without symlink
// privileges, file links fall back to a copy with a .target sidecar; directory
// links cannot be emulated and fail.
package platform
