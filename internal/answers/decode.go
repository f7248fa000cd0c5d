package answers

import (
	"fmt"
	"strings"

	"github.com/scaffoldkit/postgen/internal/branding"
)

// Decode converts raw answers into Answers. Missing keys decode to their
// "not wanted" value, so every flag resolves to a defined action. Values
// must be strings or booleans; anything else is an error.
func Decode(raw map[string]interface{}) (*Answers, error) {
	var (
		a    Answers
		errs []string
	)

	str := func(key string) string {
		v, ok := raw[key]
		if !ok || v == nil {
			return ""
		}
		switch val := v.(type) {
		case string:
			return val
		case bool:
			if val {
				return "y"
			}
			return "n"
		default:
			errs = append(errs, fmt.Sprintf("%s: expected a string or boolean, got %T", key, v))
			return ""
		}
	}

	a.ProjectSlug = strings.TrimSpace(str(KeyProjectSlug))
	a.Interface = ParseInterface(str(KeyInterface))
	a.License = ParseLicense(str(KeyLicense))
	a.CodeOfConduct = parseYes(str(KeyCodeOfConduct))
	a.Contributing = parseYes(str(KeyContributing))
	a.SecurityPolicy = parseYes(str(KeySecurityPolicy))
	a.Codeowners = parseYes(str(KeyCodeowners))
	a.Funding = parseYes(str(KeyFunding))
	a.Citation = parseYes(str(KeyCitation))
	a.EditorLaunchConfig = parseYes(str(KeyEditorLaunchConfig))
	a.PackageManagerConfig = parseYes(str(KeyPackageManagerConfig))
	a.MinVersion = strings.TrimSpace(str(branding.MinVersionKey()))

	if len(errs) > 0 {
		return nil, fmt.Errorf("decoding answers: %s", strings.Join(errs, "; "))
	}
	return &a, nil
}

// parseYes reports whether a toggle answer means "wanted".
func parseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}
