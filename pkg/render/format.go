package render

import "strings"

// Format represents an output format.
type Format string

// Output formats supported by the renderers.
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ParseFormat parses a format string, case-insensitively. Anything other
// than "html" (including the empty string) selects the text format; unknown
// keys are never an error.
func ParseFormat(formatStr string) Format {
	if strings.ToLower(formatStr) == "html" {
		return FormatHTML
	}
	return FormatText
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Ext returns the canonical file extension for the format, including the
// leading dot. The value is normalized like ParseFormat, so anything that
// is not the html format maps to ".txt".
func (f Format) Ext() string {
	if ParseFormat(f.String()) == FormatHTML {
		return ".html"
	}
	return ".txt"
}
