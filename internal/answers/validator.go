package answers

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/answers.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/project_slug")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// InvalidError is returned by Load when the answers fail validation.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid answers: %s", strings.Join(msgs, "; "))
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("answers.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("answers.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate validates raw answers against the answers JSON schema.
// The error return is for conversion or schema compilation failures.
// Validation issues are returned in the ValidationResult.
func Validate(raw map[string]interface{}) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so numbers become json.Number for the validator.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: issuesFrom(validationErr),
	}, nil
}

// ParseDocument parses a YAML or JSON answers document into a raw map.
func ParseDocument(data []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return raw, nil
}

// Load validates raw answers and decodes them. Validation failures are
// returned as *InvalidError listing every issue.
func Load(raw map[string]interface{}) (*Answers, error) {
	result, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}
	return Decode(raw)
}

// toggleMessage replaces the per-branch errors of a toggle that is neither
// a boolean nor a short yes/no string.
const toggleMessage = "must be a boolean or a short yes/no string"

// issuesFrom reduces the error tree to one issue per answer, ordered by
// path. A toggle failing both of its alternatives yields a single issue.
func issuesFrom(ve *jsonschema.ValidationError) []ValidationIssue {
	byPath := make(map[string]ValidationIssue)
	for _, leaf := range leaves(ve) {
		issue, ok := leafIssue(leaf)
		if !ok {
			continue
		}
		if isToggle(issue.Path) {
			issue.Keyword = "oneOf"
			issue.Message = toggleMessage
		}
		if _, seen := byPath[issue.Path]; !seen {
			byPath[issue.Path] = issue
		}
	}

	if len(byPath) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}

	issues := make([]ValidationIssue, 0, len(byPath))
	for _, issue := range byPath {
		issues = append(issues, issue)
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

// isToggle reports whether path points at a yes/no answer.
func isToggle(path string) bool {
	switch strings.TrimPrefix(path, "/") {
	case KeyCodeOfConduct, KeyContributing, KeySecurityPolicy, KeyCodeowners,
		KeyFunding, KeyCitation, KeyEditorLaunchConfig, KeyPackageManagerConfig:
		return true
	}
	return false
}

// leaves returns the errors at the bottom of the tree.
func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		out = append(out, leaves(cause)...)
	}
	return out
}

// leafIssue converts a leaf error. Combinator and reference errors carry no
// detail of their own and are dropped.
func leafIssue(leaf *jsonschema.ValidationError) (ValidationIssue, bool) {
	if leaf.ErrorKind == nil {
		return ValidationIssue{}, false
	}
	kwPath := leaf.ErrorKind.KeywordPath()
	if len(kwPath) == 0 {
		return ValidationIssue{}, false
	}
	switch keyword := kwPath[len(kwPath)-1]; keyword {
	case "oneOf", "allOf", "$ref":
		return ValidationIssue{}, false
	default:
		path := ""
		if len(leaf.InstanceLocation) > 0 {
			path = "/" + strings.Join(leaf.InstanceLocation, "/")
		}
		return ValidationIssue{
			Path:    path,
			Keyword: keyword,
			Message: leaf.ErrorKind.LocalizedString(printer),
		}, true
	}
}
