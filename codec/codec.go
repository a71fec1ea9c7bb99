package codec

import (
	"bytes"
	"log/slog"
	"path/filepath"
)

// codecLogger is used for incidental logging in codec functions.
// Tests can replace this with a discard logger.
var codecLogger = slog.Default()

// Format identifies a table document encoding.
type Format string

const (
	// FormatYAML is a YAML table document.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON table document.
	FormatJSON Format = "json"
	// FormatCSV is a comma-separated table with a header row.
	FormatCSV Format = "csv"
	// FormatUnknown means the format could not be determined.
	FormatUnknown Format = "unknown"
)

// DetectFormatFromPath detects the document format from a file path.
func DetectFormatFromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent attempts to detect the format from content bytes.
// JSON documents start with '{' or '['; a comma or semicolon in the first
// line suggests CSV; anything else is assumed to be YAML.
func DetectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r\ufeff")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	firstLine := trimmed
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		firstLine = trimmed[:i]
	}
	if !bytes.Contains(firstLine, []byte(":")) && bytes.ContainsAny(firstLine, ",;") {
		return FormatCSV
	}
	return FormatYAML
}
