// Package config gathers the raw template answers from their sources: an
// answers file (YAML or JSON, including cookiecutter replay files), POSTGEN_*
// environment variables and explicit key=value overrides, in increasing
// precedence. Decoding into typed answers is left to the answers package.
package config
