// Package compat decides whether the running finalizer satisfies the minimum
// version a template asks for. Templates declare it with a semver constraint
// such as "1.2.0" or ">= 1.2, < 2".
package compat
