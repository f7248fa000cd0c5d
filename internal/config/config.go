package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scaffoldkit/postgen/internal/answers"
	"github.com/scaffoldkit/postgen/internal/branding"
	"github.com/spf13/viper"
)

// replayKey is the top-level object cookiecutter nests answers under in its
// replay files.
const replayKey = "cookiecutter"

// StdinPath reads the answers document from Sources.Stdin.
const StdinPath = "-"

// Sources describes where answers are read from.
type Sources struct {
	AnswersFile string            // optional YAML/JSON file, or StdinPath
	Stdin       io.Reader         // read when AnswersFile is StdinPath
	Overrides   map[string]string // highest precedence, e.g. from --set
	EnvPrefix   string            // defaults to the branding prefix
}

// Keys returns every answer key the finalizer looks up in the environment
// and overrides.
func Keys() []string {
	return append(answers.Keys(), branding.MinVersionKey())
}

// Load merges all sources into a flat raw answer map. Keys from the answers
// file are kept even when unrecognized; environment and overrides only apply
// to recognized keys.
func Load(src Sources) (map[string]interface{}, error) {
	var (
		base map[string]interface{}
		err  error
	)
	if src.AnswersFile == StdinPath {
		base, err = readAnswersStream(src.Stdin)
	} else {
		base, err = readAnswersFile(src.AnswersFile)
	}
	if err != nil {
		return nil, err
	}

	prefix := src.EnvPrefix
	if prefix == "" {
		prefix = branding.EnvPrefix()
	}

	v := viper.New()
	if err := v.MergeConfigMap(base); err != nil {
		return nil, fmt.Errorf("merging answers: %w", err)
	}
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	for key, value := range src.Overrides {
		v.Set(strings.ToLower(strings.TrimSpace(key)), value)
	}

	raw := make(map[string]interface{}, len(base))
	for k, val := range base {
		raw[k] = val
	}
	for _, key := range Keys() {
		if v.IsSet(key) {
			raw[key] = v.Get(key)
		}
	}
	for key := range src.Overrides {
		key = strings.ToLower(strings.TrimSpace(key))
		raw[key] = v.Get(key)
	}
	return raw, nil
}

// readAnswersFile reads path with viper and unwraps replay files. An empty
// path yields an empty map.
func readAnswersFile(path string) (map[string]interface{}, error) {
	if path == "" {
		return map[string]interface{}{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		v.SetConfigType("json")
	default:
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}

	if inner, ok := v.Get(replayKey).(map[string]interface{}); ok {
		return inner, nil
	}
	return v.AllSettings(), nil
}

// readAnswersStream parses a YAML or JSON document piped in by the template
// engine.
func readAnswersStream(r io.Reader) (map[string]interface{}, error) {
	if r == nil {
		return nil, fmt.Errorf("reading answers from stdin: no input")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading answers from stdin: %w", err)
	}

	raw, err := answers.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	if inner, ok := raw[replayKey].(map[string]interface{}); ok {
		raw = inner
	}

	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}
	return out, nil
}

// ParseOverrides converts "key=value" pairs into a map.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: expected key=value", p)
		}
		out[strings.ToLower(key)] = value
	}
	return out, nil
}
