// Package cli defines the Cobra command tree for the postgen CLI. Each file
// in this package registers one top-level command (run, plan, check, version)
// with the root command. Commands share the answer-loading pipeline in
// session.go and delegate the filesystem work to the finalizer package.
package cli
