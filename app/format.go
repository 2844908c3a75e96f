package app

import (
	"fmt"
	"strings"
)

// Format is how results are written to Deps.Out.
type Format string

const (
	FormatJSON    Format = "json"
	FormatPretty  Format = "pretty"
	FormatCompact Format = "compact"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatPretty, FormatCompact}
}

// ParseFormat accepts a format name case-insensitively. An empty name is pretty.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatPretty, nil
	case FormatJSON, FormatPretty, FormatCompact:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected one of json, pretty or compact", name)
	}
}
