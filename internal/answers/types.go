package answers

import "strings"

// Recognized answer keys.
const (
	KeyProjectSlug          = "project_slug"
	KeyInterface            = "command_line_interface"
	KeyLicense              = "open_source_license"
	KeyCodeOfConduct        = "add_code_of_conduct"
	KeyContributing         = "add_contributing_file"
	KeySecurityPolicy       = "add_security_file"
	KeyCodeowners           = "add_codeowners_file"
	KeyFunding              = "add_funding_file"
	KeyCitation             = "add_citation_file"
	KeyEditorLaunchConfig   = "add_vscode_launch_json_file"
	KeyPackageManagerConfig = "add_poetry_toml_file"
)

// Keys lists every recognized answer key in a stable order.
func Keys() []string {
	return []string{
		KeyProjectSlug,
		KeyInterface,
		KeyLicense,
		KeyCodeOfConduct,
		KeyContributing,
		KeySecurityPolicy,
		KeyCodeowners,
		KeyFunding,
		KeyCitation,
		KeyEditorLaunchConfig,
		KeyPackageManagerConfig,
	}
}

// Interface is the kind of command-line interface the project ships with.
type Interface int

const (
	InterfaceUnspecified Interface = iota
	InterfaceNone
	InterfaceTyper
	InterfaceArgparse
	InterfaceClick
	InterfaceOther
)

// NoInterfaceSentinel is the template's choice label for "no CLI".
const NoInterfaceSentinel = "No command-line interface"

var interfaceNames = map[Interface]string{
	InterfaceUnspecified: "unspecified",
	InterfaceNone:        "none",
	InterfaceTyper:       "typer",
	InterfaceArgparse:    "argparse",
	InterfaceClick:       "click",
	InterfaceOther:       "other",
}

func (i Interface) String() string { return interfaceNames[i] }

// HasCLI reports whether the CLI module and its tests are kept.
func (i Interface) HasCLI() bool { return i != InterfaceNone }

// ParseInterface maps a choice label to an Interface. The "no CLI" label is
// matched as a substring, so decorated labels still count.
func ParseInterface(s string) Interface {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return InterfaceUnspecified
	case strings.Contains(s, NoInterfaceSentinel):
		return InterfaceNone
	}
	switch strings.ToLower(s) {
	case "typer":
		return InterfaceTyper
	case "argparse":
		return InterfaceArgparse
	case "click":
		return InterfaceClick
	default:
		return InterfaceOther
	}
}

// License is the license the project is published under.
type License int

const (
	LicenseUnspecified License = iota
	LicenseNone
	LicenseMIT
	LicenseBSD
	LicenseISC
	LicenseApache2
	LicenseGPLv3
	LicenseOther
)

// NotOpenSourceSentinel is the template's choice label for "no license".
const NotOpenSourceSentinel = "Not open source"

var licenseLabels = map[string]License{
	"MIT license":                   LicenseMIT,
	"BSD license":                   LicenseBSD,
	"ISC license":                   LicenseISC,
	"Apache Software License 2.0":   LicenseApache2,
	"GNU General Public License v3": LicenseGPLv3,
	NotOpenSourceSentinel:           LicenseNone,
}

var licenseNames = map[License]string{
	LicenseUnspecified: "unspecified",
	LicenseNone:        "not open source",
	LicenseMIT:         "MIT",
	LicenseBSD:         "BSD",
	LicenseISC:         "ISC",
	LicenseApache2:     "Apache-2.0",
	LicenseGPLv3:       "GPL-3.0",
	LicenseOther:       "other",
}

func (l License) String() string { return licenseNames[l] }

// OpenSource reports whether a license file is kept and linked into the docs.
// Only an explicit "Not open source" answer removes it.
func (l License) OpenSource() bool { return l != LicenseNone }

// ParseLicense maps a choice label to a License. Labels are matched exactly.
func ParseLicense(s string) License {
	if s == "" {
		return LicenseUnspecified
	}
	if l, ok := licenseLabels[s]; ok {
		return l
	}
	return LicenseOther
}

// Answers is the decoded, typed form of the template answers.
type Answers struct {
	ProjectSlug          string
	Interface            Interface
	License              License
	CodeOfConduct        bool
	Contributing         bool
	SecurityPolicy       bool
	Codeowners           bool
	Funding              bool
	Citation             bool
	EditorLaunchConfig   bool
	PackageManagerConfig bool
	MinVersion           string // semver requirement on the finalizer, may be empty
}
