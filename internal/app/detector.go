package app

import (
	"net/url"
	"strings"

	"github.com/quantmind-br/create-example/internal/utils"
)

// RefKind represents how the example argument was written
type RefKind string

const (
	RefName    RefKind = "name"
	RefTreeURL RefKind = "tree-url"
	RefUnknown RefKind = "unknown"
)

// ExampleRef is the parsed example argument. Fields not present in the
// argument are empty and keep their configured values.
type ExampleRef struct {
	Kind         RefKind
	Host         string
	Organization string
	Repository   string
	Branch       string
	Example      string
}

// DetectExampleRef accepts either a bare example name ("antd") or a
// browsable tree URL of an example directory, with or without scheme:
//
//	https://github.com/refinedev/refine/tree/master/examples/antd
//	github.com/refinedev/refine/tree/release/v4/examples/antd
func DetectExampleRef(arg string) ExampleRef {
	arg = utils.NormalizeName(arg)
	if arg == "" {
		return ExampleRef{Kind: RefUnknown}
	}

	if !strings.Contains(arg, "/") {
		if !utils.IsValidFilename(arg) {
			return ExampleRef{Kind: RefUnknown}
		}
		return ExampleRef{Kind: RefName, Example: arg}
	}

	return parseTreeURL(arg)
}

func parseTreeURL(arg string) ExampleRef {
	raw := arg
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ExampleRef{Kind: RefUnknown}
	}

	// org/repo/tree/<branch...>/examples/<name>
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 6 || parts[2] != "tree" {
		return ExampleRef{Kind: RefUnknown}
	}

	examplesAt := -1
	for i := len(parts) - 2; i >= 4; i-- {
		if parts[i] == "examples" {
			examplesAt = i
			break
		}
	}
	if examplesAt < 0 || examplesAt != len(parts)-2 {
		return ExampleRef{Kind: RefUnknown}
	}

	example := parts[len(parts)-1]
	if !utils.IsValidFilename(example) {
		return ExampleRef{Kind: RefUnknown}
	}

	return ExampleRef{
		Kind:         RefTreeURL,
		Host:         strings.TrimPrefix(strings.ToLower(u.Host), "www."),
		Organization: parts[0],
		Repository:   parts[1],
		Branch:       strings.Join(parts[3:examplesAt], "/"),
		Example:      example,
	}
}
